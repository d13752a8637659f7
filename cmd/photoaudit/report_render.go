package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"photoaudit/internal/audit"
	"photoaudit/internal/services/flickr"
)

// renderReport prints one set's audit outcome: a count summary always, and
// per-photo detail for the unlinked buckets unless brief is set.
func renderReport(out io.Writer, setID string, report *audit.Report, brief, colorize bool) {
	for _, line := range renderSectionHeader("Set "+setID, colorize) {
		fmt.Fprintln(out, line)
	}

	rows := [][]string{
		{"Linked", strconv.Itoa(len(report.Linked))},
		{"Timestamp match", strconv.Itoa(len(report.TimestampMatches))},
		{"Filename match", strconv.Itoa(len(report.FilenameMatches))},
		{"Document ID match", strconv.Itoa(len(report.DocumentIDMatches))},
		{"No match", strconv.Itoa(len(report.NoMatches))},
		{"Total", strconv.Itoa(report.TotalPhotos())},
	}
	fmt.Fprintln(out, renderTable([]string{"Bucket", "Photos"}, rows, 2))

	if !report.DeepScan {
		fmt.Fprintln(out, "Document ID matching was off for this pass.")
	}
	if brief || len(report.Unlinked) == 0 {
		fmt.Fprintln(out)
		return
	}

	detail := make([][]string, 0, len(report.Unlinked))
	for _, entry := range report.Unlinked {
		detail = append(detail, []string{
			entry.Local.FileName,
			strategyLabel(entry.Strategy),
			entry.Local.RemoteID,
			describeCandidates(entry.Matches),
		})
	}
	fmt.Fprintln(out, renderTable([]string{"Photo", "Strategy", "Stored ID", "Candidates"}, detail))
	fmt.Fprintln(out)
}

func renderApplyOutcome(out io.Writer, outcome audit.ApplyOutcome, colorize bool) {
	kind := statusOK
	if outcome.Failed > 0 {
		kind = statusError
	} else if outcome.Ambiguous > 0 || outcome.Skipped > 0 {
		kind = statusWarn
	}
	fmt.Fprintln(out, renderStatusLine("Repoint", kind, describeOutcome(outcome), colorize))
	fmt.Fprintln(out)
}

// renderQuotedTitles warns about remote titles carrying double quotes, which
// Lightroom's publish plumbing mangles on its next metadata push.
func renderQuotedTitles(out io.Writer, quoted []flickr.Photo, colorize bool) {
	if len(quoted) == 0 {
		return
	}
	message := fmt.Sprintf("%d Flickr titles contain double quotes and may be mangled on republish", len(quoted))
	fmt.Fprintln(out, renderStatusLine("Titles", statusWarn, message, colorize))
	for _, photo := range quoted {
		fmt.Fprintf(out, "%s%s (%s)\n", statusIndent+statusIndent, photo.Title, photo.ID)
	}
}

func describeOutcome(outcome audit.ApplyOutcome) string {
	parts := []string{fmt.Sprintf("%d applied", outcome.Applied)}
	if outcome.AlreadyApplied > 0 {
		parts = append(parts, fmt.Sprintf("%d already applied", outcome.AlreadyApplied))
	}
	if outcome.Ambiguous > 0 {
		parts = append(parts, fmt.Sprintf("%d ambiguous", outcome.Ambiguous))
	}
	if outcome.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", outcome.Skipped))
	}
	if outcome.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", outcome.Failed))
	}
	return strings.Join(parts, ", ")
}

func strategyLabel(strategy audit.Strategy) string {
	switch strategy {
	case audit.StrategyTimestamp:
		return "timestamp"
	case audit.StrategyFileName:
		return "filename"
	case audit.StrategyDocumentID:
		return "document id"
	default:
		return "none"
	}
}

func describeCandidates(matches []flickr.Photo) string {
	if len(matches) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(matches))
	for _, match := range matches {
		parts = append(parts, fmt.Sprintf("%s (%s)", match.ID, match.DisplayTitle()))
	}
	return strings.Join(parts, ", ")
}
