/*
Package sigs provides basic authentication
middleware to verify the signatures on the transaction,
and maintain nonces for replay protection.

Every signer is represented by a UserData entity stored under the address
of its public key. The sequence stored there must be used by the next
signature of that key and is incremented after each verified signature.
*/
package sigs
