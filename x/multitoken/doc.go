/*
Package multitoken implements a multi-asset token ledger.

Every owner holds a balance of any number of assets, each identified by a
string asset id. Tokens are created by the configured minter, moved between
owners and destroyed by their holders. An owner can approve an operator to
move or burn all of its assets until the approval expires or is revoked.

A per asset supply counter is kept next to the balances. It is increased by
every mint and decreased by every burn so that it always equals the sum of
all balances of that asset.

Moving or burning more tokens than held is not an error: the requested
quantity is clamped to the owner balance.

All handlers must run inside of a savepoint so that a failing batch item
reverts the already applied ones.
*/
package multitoken
