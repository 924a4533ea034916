package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DiscSize is the side of a procedural disc image before scaling.
const DiscSize = 64

// ImageSet holds the images bodies select by index.
type ImageSet struct {
	images []*ebiten.Image
}

// NewImageSet loads the listed files, or draws count procedural discs when
// none are listed.
func NewImageSet(paths []string, count int, palette []color.Color) (*ImageSet, error) {
	set := &ImageSet{}
	if len(paths) > 0 {
		for _, p := range paths {
			img, err := LoadImage(p)
			if err != nil {
				return nil, err
			}
			set.images = append(set.images, img)
		}
		return set, nil
	}
	if count < 1 {
		return nil, fmt.Errorf("render: no images to draw")
	}
	for i := 0; i < count; i++ {
		set.images = append(set.images, Disc(DiscSize, PaletteColor(palette, i)))
	}
	return set, nil
}

func (s *ImageSet) Len() int { return len(s.images) }

// Image returns image i, or nil when i is out of range.
func (s *ImageSet) Image(i int) *ebiten.Image {
	if i < 0 || i >= len(s.images) {
		return nil
	}
	return s.images[i]
}

// Pad appends procedural discs until the set holds count images, so every
// index below count draws something. It returns how many were added.
func (s *ImageSet) Pad(count int, palette []color.Color) int {
	return s.pad(count, func(i int) *ebiten.Image {
		return Disc(DiscSize, PaletteColor(palette, i))
	})
}

func (s *ImageSet) pad(count int, newImage func(i int) *ebiten.Image) int {
	added := 0
	for i := len(s.images); i < count; i++ {
		s.images = append(s.images, newImage(i))
		added++
	}
	return added
}

// Disc draws a filled circle with a darker spoke so rotation shows.
func Disc(size int, fill color.Color) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	r := float32(size) / 2
	vector.DrawFilledCircle(img, r, r, r, fill, true)
	vector.StrokeCircle(img, r, r, r-1, 2, Shade(fill, 0.4), true)
	vector.StrokeLine(img, r, r, float32(size)-2, r, 3, Shade(fill, 0.6), true)
	return img
}
