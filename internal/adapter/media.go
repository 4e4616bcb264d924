package adapter

import (
	"path"
	"strings"
)

// resourceTypeFor buckets a MIME type the way Cloudinary does.
func resourceTypeFor(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	default:
		return "raw"
	}
}

var formatsByContentType = map[string]string{
	"image/jpeg":      "jpg",
	"image/png":       "png",
	"image/gif":       "gif",
	"image/webp":      "webp",
	"video/mp4":       "mp4",
	"video/mpeg":      "mpeg",
	"video/quicktime": "mov",
}

// formatFor returns the file format without a leading dot, preferring the
// extension of the original file name.
func formatFor(name, contentType string) string {
	if ext := strings.TrimPrefix(strings.ToLower(path.Ext(name)), "."); ext != "" {
		if ext == "jpeg" {
			return "jpg"
		}
		return ext
	}
	return formatsByContentType[contentType]
}

func optionalInt(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
