/*
Package lockswap defines the core interfaces and primitives for a
deterministic, time-locked asset exchange over a key-value store.

An exchange is driven by messages routed to handlers. Handlers operate
on a cache-wrappable KVStore so every state transition is atomic: either
all writes of a transition land, or none do.

Identifiers are never allocated. Every record and holding account lives
at an address derived from its logical inputs (see Derive), so the same
inputs always name the same slot and uniqueness is enforced by the store
itself.
*/
package lockswap
