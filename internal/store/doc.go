// Package store provides the SQLite-backed calendar store.
//
// The store is a deliberately dumb container: Insert appends
// unconditionally and performs no overlap validation. The non-overlap
// invariant is enforced one layer up by the scheduler, which runs its
// conflict scan and the subsequent Insert as a single critical section.
//
// # Ordering
//
// Every insert is stamped with a monotonic seq counter. The seq carries no
// scheduling meaning - it exists only so ListSorted can break start-time
// ties by original insertion order, keeping listings stable and repeatable.
//
// # Database configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON
//
// Use ":memory:" for an ephemeral in-process calendar (tests, harness
// scenarios); a file path gives a calendar that survives restarts.
package store
