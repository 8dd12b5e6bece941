/*
Package escrow implements a time-locked, two-party atomic asset
exchange.

A maker locks an amount of one asset type in a vault and declares the
amount of another asset type wanted in return. The vault is the derived
holding account of the escrow record itself, so no signing key controls
it. Once the shared lock window has elapsed, any taker can settle the
exchange by paying the declared amount, or the maker can cancel and
reclaim the deposit. Both terminal transitions drain and close the
vault, return the storage deposit and remove the record, so exactly one
of them can ever succeed.

Records are stored under the address derived from (maker, seed). The
existence of the record is the only concurrency token the package
needs: the loser of a settle/cancel race finds no record.
*/
package escrow
