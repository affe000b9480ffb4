package port

import "io"

// Thumbnailer produces fixed-size JPEG thumbnails from uploaded image bytes.
type Thumbnailer interface {
	Thumbnail(r io.Reader, width, height int) ([]byte, error)
}
