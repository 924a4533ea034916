package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/bmp"
	"golang.org/x/image/colornames"
)

func TestPaletteColor(t *testing.T) {
	palette := []color.Color{colornames.Red, colornames.Blue}
	cases := []struct {
		name    string
		palette []color.Color
		index   int
		want    color.Color
	}{
		{"first", palette, 0, colornames.Red},
		{"wraps", palette, 3, colornames.Blue},
		{"negative", palette, -2, colornames.Red},
		{"fallback", nil, 1, fallbackPalette[1]},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := PaletteColor(c.palette, c.index); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestShade(t *testing.T) {
	c := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	if got := Shade(c, 0); got != c {
		t.Fatalf("zero shade should keep the color, got %v", got)
	}
	if got := Shade(c, 0.5); got != (color.NRGBA{R: 100, G: 50, B: 25, A: 255}) {
		t.Fatalf("unexpected half shade %v", got)
	}
	if got := Shade(c, 2); got != (color.NRGBA{A: 255}) {
		t.Fatalf("shade should clamp to black, got %v", got)
	}
}

func TestDecodeImageMissing(t *testing.T) {
	if _, err := DecodeImage(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestDecodeImageGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := DecodeImage(path); err == nil {
		t.Fatalf("expected a decode error")
	}
}

func TestDecodeImageFormats(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	src.Set(1, 1, color.NRGBA{R: 255, A: 255})

	cases := []struct {
		name   string
		encode func(*bytes.Buffer) error
	}{
		{"disc.png", func(b *bytes.Buffer) error { return png.Encode(b, src) }},
		{"disc.bmp", func(b *bytes.Buffer) error { return bmp.Encode(b, src) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := c.encode(&buf); err != nil {
				t.Fatalf("encode: %v", err)
			}
			path := filepath.Join(t.TempDir(), c.name)
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			im, err := DecodeImage(path)
			if err != nil {
				t.Fatalf("DecodeImage: %v", err)
			}
			if im.Bounds().Dx() != 4 || im.Bounds().Dy() != 3 {
				t.Fatalf("unexpected bounds %v", im.Bounds())
			}
			r, _, _, _ := im.At(1, 1).RGBA()
			if r>>8 != 255 {
				t.Fatalf("expected a red pixel, got %v", im.At(1, 1))
			}
		})
	}
}

func TestImageSetPad(t *testing.T) {
	cases := []struct {
		name      string
		have      int
		count     int
		wantAdded int
		wantLen   int
	}{
		{"grows", 1, 4, 3, 4},
		{"already_full", 3, 2, 0, 3},
		{"empty", 0, 2, 2, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := &ImageSet{}
			for i := 0; i < c.have; i++ {
				s.images = append(s.images, new(ebiten.Image))
			}
			var indices []int
			added := s.pad(c.count, func(i int) *ebiten.Image {
				indices = append(indices, i)
				return new(ebiten.Image)
			})
			if added != c.wantAdded || s.Len() != c.wantLen {
				t.Fatalf("expected %d added and %d total, got %d and %d", c.wantAdded, c.wantLen, added, s.Len())
			}
			for k, i := range indices {
				if i != c.have+k {
					t.Fatalf("padded index %d, want %d", i, c.have+k)
				}
			}
			for i := 0; i < c.count; i++ {
				if s.Image(i) == nil {
					t.Fatalf("index %d has no image", i)
				}
			}
		})
	}
}
