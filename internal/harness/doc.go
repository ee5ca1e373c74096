// Package harness provides scenario-based conformance testing for the
// scheduling engine.
//
// Scenarios are defined in YAML files:
//
//	name: demo_flow
//	description: "Original three-request flow"
//	duration: 1h
//	seed:
//	  - name: standup
//	    start_time: "2025-09-19 09:00"
//	steps:
//	  - text: "Team meeting with Carol on 2025-09-19 17:30."
//	    extract:
//	      name: team meeting
//	      start_time: "2025-09-19 17:30"
//	      participants: [Carol]
//	    no_plan: false
//	    expect:
//	      outcome: conflict_suggested
//	      suggested_start: "2025-09-19 18:30"
//	      calendar_size: 1
//
// Each step scripts the extraction gateway's reply (or its failure), runs
// one schedule call, and optionally validates the outcome. The run
// produces a line-oriented transcript ending with the final sorted
// calendar.
//
// # Deterministic execution
//
// Every run uses a fresh in-memory SQLite store, a scripted extractor,
// and fixed request tokens (req-001, req-002, ...), so transcripts are
// identical across runs and suitable for golden file comparison via
// goldie (run with -update to regenerate).
package harness
