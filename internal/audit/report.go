package audit

import (
	"photoaudit/internal/catalog"
	"photoaudit/internal/services/flickr"
)

// Strategy identifies which comparison produced an entry's candidates.
type Strategy string

const (
	StrategyTimestamp  Strategy = "timestamp"
	StrategyFileName   Strategy = "filename"
	StrategyDocumentID Strategy = "document_id"
	StrategyNone       Strategy = "none"
)

// Entry associates one unlinked local photo with the remote candidates a
// single strategy produced. Zero candidates means the whole cascade came
// up empty.
type Entry struct {
	Local    catalog.Photo
	Strategy Strategy
	Matches  []flickr.Photo
}

// Single reports whether the entry has exactly one candidate and is
// therefore safe to auto-apply.
func (e Entry) Single() bool {
	return len(e.Matches) == 1
}

// Report partitions one audit pass. Every input photo lands in Linked or
// in exactly one of the four strategy buckets; Unlinked repeats the four
// buckets' entries in input order for reporting, so
// len(Unlinked) == len(TimestampMatches) + len(FilenameMatches) +
// len(DocumentIDMatches) + len(NoMatches) always holds.
type Report struct {
	// Linked holds photos whose stored remote ID resolved against the
	// fetched account inventory; they need no reconciliation.
	Linked []catalog.Photo

	// Unlinked holds every photo requiring reconciliation.
	Unlinked []Entry

	TimestampMatches  []Entry
	FilenameMatches   []Entry
	DocumentIDMatches []Entry
	NoMatches         []Entry

	// DeepScan records whether the document ID strategy was in play.
	DeepScan bool
}

// TotalPhotos returns the number of local photos classified.
func (r *Report) TotalPhotos() int {
	return len(r.Linked) + len(r.Unlinked)
}
