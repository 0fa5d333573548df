// Package youtube validates YouTube video URLs and derives the video
// identifier and thumbnail preview from them. Nothing here touches the
// network.
package youtube

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrEmptyURL is returned when no URL was entered.
	ErrEmptyURL = errors.New("youtube url is empty")
	// ErrInvalidURL is returned when the URL does not look like a single video link.
	ErrInvalidURL = errors.New("not a youtube video url")
)

// Message returns the text shown to the user for a validation error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrEmptyURL):
		return "Please enter a YouTube URL."
	case errors.Is(err, ErrInvalidURL):
		return "Please enter a valid YouTube URL."
	case err != nil:
		return err.Error()
	}
	return ""
}

// ThumbnailTemplate is the image host URL for a video's default thumbnail.
const ThumbnailTemplate = "https://img.youtube.com/vi/%s/0.jpg"

const (
	watchMarker = "watch?v="
	shortMarker = "youtu.be/"
)

// The trailing group excludes Unicode spaces too, not only RE2's ASCII \s.
var videoURLPattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})([^\s\v\p{Z}\x{FEFF}]*)?$`)

// Validate applies the acceptance test used to gate submission.
func Validate(rawURL string) error {
	if rawURL == "" {
		return ErrEmptyURL
	}
	if !videoURLPattern.MatchString(rawURL) {
		return ErrInvalidURL
	}
	return nil
}

// IsValid reports whether rawURL passes Validate.
func IsValid(rawURL string) bool {
	return Validate(rawURL) == nil
}

// ExtractVideoID finds the video identifier by substring search. It is more
// lenient than Validate and may return a token for URLs Validate rejects.
// Returns "" when neither marker is present.
func ExtractVideoID(rawURL string) string {
	for _, marker := range []string{watchMarker, shortMarker} {
		idx := strings.Index(rawURL, marker)
		if idx == -1 {
			continue
		}
		rest := rawURL[idx+len(marker):]
		if next := strings.Index(rest, marker); next != -1 {
			rest = rest[:next]
		}
		if end := strings.IndexAny(rest, "&?"); end != -1 {
			rest = rest[:end]
		}
		return rest
	}
	return ""
}

// ThumbnailURL returns the preview image for videoID, or "" for an empty id.
func ThumbnailURL(videoID string) string {
	if videoID == "" {
		return ""
	}
	return fmt.Sprintf(ThumbnailTemplate, videoID)
}

// Thumbnail derives the preview image straight from a raw URL. Anything
// without a recognizable marker yields "".
func Thumbnail(rawURL string) string {
	return ThumbnailURL(ExtractVideoID(rawURL))
}
