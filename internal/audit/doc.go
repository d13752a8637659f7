// Package audit reconciles catalog photos against the remote account.
//
// Run drives a prioritized cascade of matching strategies over every local
// photo whose stored remote ID no longer resolves: exact capture/upload
// timestamp equality first, then case-sensitive file name equality, then —
// when deep scan is enabled — embedded XMP document ID equality. The first
// strategy producing candidates wins and all of its candidates are kept,
// so downstream consumers can distinguish confident single matches from
// ambiguous ones. Ambiguity is surfaced, never resolved here.
//
// The engine is a pure function over in-memory snapshots: it performs no
// I/O, never mutates its inputs, and places every local photo in exactly
// one report bucket. ApplySingles is the only bridge to side effects; it
// feeds exactly-one-candidate entries to a repoint sink and keeps going
// when an individual record fails.
package audit
