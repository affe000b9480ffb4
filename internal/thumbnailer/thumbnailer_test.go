package thumbnailer

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func pngFixture(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 0, A: 255})
		}
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf
}

func TestThumbnail_CropsToExactSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"landscape", 300, 120},
		{"portrait", 120, 300},
		{"small upscaled", 40, 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := New().Thumbnail(pngFixture(t, tc.w, tc.h), 100, 100)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
			if err != nil {
				t.Fatalf("decode thumbnail: %v", err)
			}
			if format != "jpeg" {
				t.Errorf("format = %q; want jpeg", format)
			}
			if cfg.Width != 100 || cfg.Height != 100 {
				t.Errorf("size = %dx%d; want 100x100", cfg.Width, cfg.Height)
			}
		})
	}
}

func TestThumbnail_RejectsGarbage(t *testing.T) {
	_, err := New().Thumbnail(strings.NewReader("definitely not an image"), 100, 100)
	if err == nil {
		t.Fatal("expected a decode error")
	}
}
