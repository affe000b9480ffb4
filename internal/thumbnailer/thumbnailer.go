package thumbnailer

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/persnickety/venues-ms-go/internal/port"
)

// Thumbnailer scales an image so the shorter side fills the target box, then
// center-crops to the exact dimensions. Output is always JPEG, whatever the
// input format.
type Thumbnailer struct {
	quality int
}

// compile-time check: *Thumbnailer must satisfy port.Thumbnailer
var _ port.Thumbnailer = (*Thumbnailer)(nil)

func New() *Thumbnailer {
	log.Println("initialising thumbnailer...")
	return &Thumbnailer{quality: 85}
}

func (t *Thumbnailer) Thumbnail(r io.Reader, width, height int) ([]byte, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("thumbnailer: failed to decode image: %w", err)
	}

	thumb := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)

	buf := &bytes.Buffer{}
	if err := imaging.Encode(buf, thumb, imaging.JPEG, imaging.JPEGQuality(t.quality)); err != nil {
		return nil, fmt.Errorf("thumbnailer: failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}
