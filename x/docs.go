/*
Package x contains the shared pieces of the token extensions.

Extensions implement common functionality (Handler, Decorator,
etc.) and are combined together to construct the application.
This package holds what all of them need: the Authenticator
abstraction used to learn who signed a transaction, and small
validation helpers.

Note that protobuf types in exported code will be prefixed by
the package, so follow standard go naming conventions and avoid
stutter. Use eg. `multitoken.MintMsg` in place of `multitoken.MintTokenMsg`.
*/
package x
