package audit

import (
	"context"
	"errors"
	"log/slog"

	"photoaudit/internal/catalog"
	"photoaudit/internal/logging"
)

// RepointSink applies one remote ID retarget. catalog.Store satisfies it.
type RepointSink interface {
	Repoint(ctx context.Context, oldID, newID string) error
}

// ApplyOutcome summarizes one write-back pass.
type ApplyOutcome struct {
	Applied        int
	AlreadyApplied int
	Ambiguous      int
	Skipped        int
	Failed         int
}

// ApplySingles walks the three match buckets and repoints every entry with
// exactly one candidate. Entries with multiple candidates are counted as
// ambiguous and left alone; entries without a stored remote ID cannot be
// retargeted and are skipped. A sink failure is logged and counted but
// never stops the loop.
func ApplySingles(ctx context.Context, sink RepointSink, report *Report, logger *slog.Logger) ApplyOutcome {
	log := logging.NewComponentLogger(logger, "repoint")
	var outcome ApplyOutcome

	for _, bucket := range [][]Entry{report.TimestampMatches, report.FilenameMatches, report.DocumentIDMatches} {
		for _, entry := range bucket {
			if !entry.Single() {
				outcome.Ambiguous++
				continue
			}
			oldID := entry.Local.RemoteID
			newID := entry.Matches[0].ID
			if oldID == "" {
				outcome.Skipped++
				log.Warn("photo has no stored remote id to retarget",
					logging.Int64(logging.FieldPhotoID, entry.Local.ID),
					logging.String("file_name", entry.Local.FileName),
				)
				continue
			}

			err := sink.Repoint(ctx, oldID, newID)
			switch {
			case err == nil:
				outcome.Applied++
				log.Info("repointed remote id",
					logging.Int64(logging.FieldPhotoID, entry.Local.ID),
					logging.String("old_remote_id", oldID),
					logging.String(logging.FieldRemoteID, newID),
					logging.String("strategy", string(entry.Strategy)),
				)
			case errors.Is(err, catalog.ErrAlreadyApplied):
				outcome.AlreadyApplied++
				log.Info("repoint already applied",
					logging.Int64(logging.FieldPhotoID, entry.Local.ID),
					logging.String(logging.FieldRemoteID, newID),
				)
			default:
				outcome.Failed++
				log.Error("repoint failed",
					logging.Int64(logging.FieldPhotoID, entry.Local.ID),
					logging.String("old_remote_id", oldID),
					logging.String(logging.FieldRemoteID, newID),
					logging.Error(err),
				)
			}
		}
	}

	return outcome
}
