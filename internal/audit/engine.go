package audit

import (
	"photoaudit/internal/catalog"
	"photoaudit/internal/services/flickr"
)

// remoteIndex holds the lookup tables one audit pass classifies against.
type remoteIndex struct {
	byID       map[string]struct{}
	byUpload   map[int64][]flickr.Photo
	byFileName map[string][]flickr.Photo
	byDocID    map[string][]flickr.Photo
}

func indexRemotes(remotes []flickr.Photo) remoteIndex {
	idx := remoteIndex{
		byID:       make(map[string]struct{}, len(remotes)),
		byUpload:   make(map[int64][]flickr.Photo),
		byFileName: make(map[string][]flickr.Photo),
		byDocID:    make(map[string][]flickr.Photo),
	}
	for _, remote := range remotes {
		idx.byID[remote.ID] = struct{}{}
		if !remote.Uploaded.IsZero() {
			key := remote.Uploaded.Unix()
			idx.byUpload[key] = append(idx.byUpload[key], remote)
		}
		if remote.FileName != "" {
			idx.byFileName[remote.FileName] = append(idx.byFileName[remote.FileName], remote)
		}
		if remote.DocumentID != "" {
			idx.byDocID[remote.DocumentID] = append(idx.byDocID[remote.DocumentID], remote)
		}
	}
	return idx
}

// Run classifies every local photo against the remote inventory.
//
// A photo whose stored remote ID resolves against any fetched remote photo
// is presumed correctly linked and excluded from reconciliation. The
// lookup deliberately spans the whole account, not just the current set:
// the original tool behaved this way and narrowing it would reclassify
// photos published into multiple sets.
//
// Everything else runs the cascade. Strategies are tried in priority
// order and the first one yielding candidates determines the bucket:
//
//  1. capture timestamp equals upload timestamp (exact, no tolerance;
//     photos without a capture timestamp never match)
//  2. file name equality (case-sensitive)
//  3. embedded document ID equality, only when deepScan is true and the
//     local side-car produced an ID
//
// Run is pure: no I/O, no mutation of inputs, deterministic output order.
func Run(locals []catalog.Photo, remotes []flickr.Photo, deepScan bool) *Report {
	idx := indexRemotes(remotes)
	report := &Report{DeepScan: deepScan}

	for _, local := range locals {
		if local.RemoteID != "" {
			if _, ok := idx.byID[local.RemoteID]; ok {
				report.Linked = append(report.Linked, local)
				continue
			}
		}

		entry := classify(local, idx, deepScan)
		report.Unlinked = append(report.Unlinked, entry)
		switch entry.Strategy {
		case StrategyTimestamp:
			report.TimestampMatches = append(report.TimestampMatches, entry)
		case StrategyFileName:
			report.FilenameMatches = append(report.FilenameMatches, entry)
		case StrategyDocumentID:
			report.DocumentIDMatches = append(report.DocumentIDMatches, entry)
		default:
			report.NoMatches = append(report.NoMatches, entry)
		}
	}

	return report
}

func classify(local catalog.Photo, idx remoteIndex, deepScan bool) Entry {
	if local.CaptureTime != nil {
		if matches := idx.byUpload[local.CaptureTime.Unix()]; len(matches) > 0 {
			return Entry{Local: local, Strategy: StrategyTimestamp, Matches: cloneMatches(matches)}
		}
	}

	if local.FileName != "" {
		if matches := idx.byFileName[local.FileName]; len(matches) > 0 {
			return Entry{Local: local, Strategy: StrategyFileName, Matches: cloneMatches(matches)}
		}
	}

	if deepScan {
		if docID := local.DocumentID(); docID != "" {
			if matches := idx.byDocID[docID]; len(matches) > 0 {
				return Entry{Local: local, Strategy: StrategyDocumentID, Matches: cloneMatches(matches)}
			}
		}
	}

	return Entry{Local: local, Strategy: StrategyNone}
}

func cloneMatches(matches []flickr.Photo) []flickr.Photo {
	return append([]flickr.Photo(nil), matches...)
}
