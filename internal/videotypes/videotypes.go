package videotypes

import (
	"path/filepath"
	"strings"
)

// Extensions maps file extensions to whether they are accepted video formats
// for upload. The analysis service decodes with OpenCV, which handles all of
// these containers.
var Extensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
	".webm": true,
	".m4v":  true,
	".mpeg": true,
	".mpg":  true,
	".3gp":  true,
}

// MimeTypes maps file extensions to their MIME types.
var MimeTypes = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
	".m4v":  "video/x-m4v",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
	".3gp":  "video/3gpp",
}

// IsVideoFile reports whether the filename has an accepted video extension.
func IsVideoFile(name string) bool {
	return Extensions[ext(name)]
}

// MimeType returns the MIME type for a video filename. Skeleton videos are
// always rendered as MP4, so that is also the fallback for unknown
// extensions.
func MimeType(name string) string {
	if mime, ok := MimeTypes[ext(name)]; ok {
		return mime
	}
	return "video/mp4"
}

func ext(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
