/*
Package weave defines the interfaces shared by every token extension:
storage, transactions, messages, handlers and decorators, queries and the
block context.

Extensions (x/multitoken, x/nft, x/sale) only depend on this package and on
the helpers in orm, gconf and x. The application wiring that glues them into
an ABCI application lives in the app package.
*/
package weave
