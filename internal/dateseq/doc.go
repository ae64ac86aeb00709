// Package dateseq implements the dseq sequence engine.
//
// The engine is the heart of dseq - it iterates a cursor date from a start
// point, stepping by a calendar increment, filtering by business-day mode,
// and formatting each surviving cursor with an strftime pattern.
//
// ARCHITECTURE:
//
// Two generation modes share one loop discipline:
//
// Mode A (bounded): an end date and/or a row limit is set. Generate walks
// the cursor eagerly and returns the full ordered slice of lines in one
// call.
//
// Mode B (unbounded): neither bound is set. Iterator produces one line per
// Next call and never terminates on its own; the caller stops pulling.
// The iterator is an explicit state machine (pending-header, iterating,
// failed) rather than a closure over hidden mutable captures, so the
// cursor and the header flag are inspectable state, not shared mutation.
//
// Boundary semantics are deliberately asymmetric: a forward walk excludes
// the end date (stop once cursor >= to), a reverse walk includes it (stop
// once cursor < to). Swapping from/to and setting reverse therefore yields
// the exact mirror of the forward element set. Downstream pipelines depend
// on this; do not "fix" it.
//
// The engine is pure: no I/O, no clock reads, no mutation of its inputs.
// Each Generate or Iterator call owns its cursor exclusively, so distinct
// invocations never share state.
package dateseq
