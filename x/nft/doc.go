/*
Package nft implements a registry of non fungible tokens.

Every token has a unique ID and exactly one owner. The owner can approve a
spender to transfer, send or burn a single token, or approve an operator to
act on all of its tokens. Approvals of a single token are cleared whenever the
token changes hands. Both kinds of approval can expire at a block height or
time.

New tokens are created by the minter declared in the genesis configuration.
*/
package nft
