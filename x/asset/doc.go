/*
Package asset keeps track of who owns how much of which asset type.

Balances are not grouped into wallets. Every (owner, asset type) pair
has its own holding account, stored under an address derived from those
two values. Any party, including non-signing entities like an escrow
record, can own holdings, and a holding for a recipient is created on
the fly when the first transfer arrives.

An optional transfer policy can be plugged into the controller to veto
moves before they touch any balance.
*/
package asset
