// Package extract converts free-form text into structured calendar events.
//
// The package defines the Extractor boundary the scheduler consumes, the
// live Client that asks an OpenAI-compatible chat-completions API to do the
// extraction, and the Scripted test double.
//
// Validation is all-or-nothing at this boundary: either a fully valid
// event.Event comes back, or a failure. Partially-valid records never
// escape. Any failure - transport, non-JSON model output, schema violation,
// bad timestamp - surfaces as an error; the scheduler maps every extractor
// error to its parse-failure outcome without touching the store.
package extract
