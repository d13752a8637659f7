package audit

import (
	"strings"

	"photoaudit/internal/services/flickr"
)

// QuotedTitles returns the remote photos whose title contains a double
// quote. The Lightroom publish plugin cannot round-trip those titles, so
// the audit surfaces them for manual cleanup; it never rewrites a title.
func QuotedTitles(remotes []flickr.Photo) []flickr.Photo {
	var flagged []flickr.Photo
	for _, remote := range remotes {
		if strings.Contains(remote.Title, `"`) {
			flagged = append(flagged, remote)
		}
	}
	return flagged
}
