// Package recency maintains per-user "recently viewed boards" rankings in a
// Redis sorted set.
//
// Each user gets one key; members are board ids scored by the unix time of
// the last view, so re-viewing a board reorders it (last-write-wins) rather
// than accumulating entries.
//
// Recency is an enhancement, not a correctness path: every operation here is
// best-effort. A Redis outage logs a warning and yields an empty result; it
// never fails the surrounding request. The client is constructed at the
// composition root and injected, so tests run against miniredis.
//
// Entries are never expired. A deleted board can leave a dangling id behind;
// readers filter those out when loading the boards.
package recency
