package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
)

// LoadImage loads a png or bmp file and caches it by path.
func LoadImage(path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("empty image path")
	}
	if img := GetImage(path); img != nil {
		return img, nil
	}
	im, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(im)
	RegisterImage(path, img)
	return img, nil
}

// DecodeImage reads path, falling back to the prefabs directory and the
// bare file name.
func DecodeImage(path string) (image.Image, error) {
	tried := []string{path, filepath.Join("prefabs", path), filepath.Base(path)}
	var lastErr error
	for _, p := range tried {
		b, err := os.ReadFile(p)
		if err != nil {
			lastErr = err
			continue
		}
		im, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("decode image %s: %w", p, err)
		}
		return im, nil
	}
	return nil, fmt.Errorf("failed to load image %s: %w", path, lastErr)
}
