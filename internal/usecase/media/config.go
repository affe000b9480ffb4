package media

import "time"

const (
	ThumbWidth  = 100
	ThumbHeight = 100

	// listings are cheap to rebuild, keep the cache short-lived
	listCacheTTL = time.Minute
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ExtensionFor returns the canonical file extension of a supported image
// MIME type, dot included.
func ExtensionFor(mimeType string) (string, error) {
	ext, ok := extensions[mimeType]
	if !ok {
		return "", ErrUnsupportedType
	}
	return ext, nil
}
