package flickr

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Photo is a read-only snapshot of one remote photo.
type Photo struct {
	// ID is the identifier Flickr assigned at upload.
	ID string
	// Title is the free-text title. It may contain characters (double
	// quotes in particular) that break the Lightroom publish plugin; the
	// audit flags those, it never rewrites them.
	Title string
	// Uploaded is the upload timestamp, second precision.
	Uploaded time.Time
	// FileName is synthesized from the title and original format because
	// the service does not preserve original file names. Empty when the
	// photo has no title.
	FileName string
	// DocumentID is the embedded document identifier when the remote
	// service exposes one. Flickr does not, so deep-scan matching against
	// a live account always degrades to zero candidates.
	DocumentID string
}

// synthesizeFileName rebuilds the probable original file name. Flickr
// defaults a photo's title to the upload file name minus its extension, so
// title plus original format round-trips for untouched titles.
func synthesizeFileName(title, originalFormat string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	ext := strings.TrimSpace(strings.ToLower(originalFormat))
	if ext == "" {
		ext = "jpg"
	}
	return title + "." + ext
}

// DisplayTitle returns a human-friendly title for report rendering,
// deriving one from the file name when the photo is untitled.
func (p Photo) DisplayTitle() string {
	if title := strings.TrimSpace(p.Title); title != "" {
		return title
	}
	base := p.FileName
	if dot := strings.LastIndexByte(base, '.'); dot > 0 {
		base = base[:dot]
	}
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "Untitled"
	}
	return cases.Title(language.Und).String(title)
}
