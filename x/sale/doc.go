/*
Package sale implements a fixed price sale of non fungible tokens.

Buyers pay the unit price in a multitoken asset. The payment is moved to
the sale owner and a new token, identified by a sequential number, is
minted to the buyer. The sale closes once the maximum number of tokens is
sold.
*/
package sale
