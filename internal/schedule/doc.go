// Package schedule implements the scheduling engine.
//
// The Scheduler orchestrates one request at a time: extraction, conflict
// checking against the calendar store, insertion, and the bounded
// alternative-slot search.
//
// Request state machine:
//
//	Received → Extracted → {Rejected(ParseFailure) | Checked}
//	Checked  → {Scheduled | Conflicted → {ResolvedWithAlternative | Unresolved}}
//
// Every Schedule call resolves to exactly one of four terminal outcomes
// (scheduled, conflict with suggestion, conflict without suggestion, parse
// failure). Failures never escape the Scheduler boundary as faults; only
// store I/O errors propagate as errors.
//
// CRITICAL SECTION:
//
// The conflict scan and the subsequent insert execute under one mutex.
// Splitting them would let two concurrent requests both observe a free
// slot and both insert - a classic check-then-act race that breaks the
// store's non-overlap invariant. The extraction call happens outside the
// lock: it is the only long-running, possibly-failing external call, and
// a failed or canceled extraction must never hold up or mutate the store.
//
// Suggested alternatives are reported, never auto-booked. The store stays
// untouched on every non-Scheduled outcome.
package schedule
