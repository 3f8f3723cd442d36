package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Screen is the ebiten-backed Surface.
type Screen struct {
	Target *ebiten.Image

	// converted caches GPU copies of sheets that arrived as plain image.Image.
	converted map[Sheet]*ebiten.Image
}

// NewScreen wraps target.
func NewScreen(target *ebiten.Image) *Screen {
	return &Screen{
		Target:    target,
		converted: make(map[Sheet]*ebiten.Image),
	}
}

// Reset retargets the screen for the next frame, keeping the conversion cache.
func (s *Screen) Reset(target *ebiten.Image) {
	s.Target = target
}

func (s *Screen) ebitenImage(sheet Sheet) *ebiten.Image {
	if img, ok := sheet.(*ebiten.Image); ok {
		return img
	}
	if img, ok := s.converted[sheet]; ok {
		return img
	}
	src, ok := sheet.(image.Image)
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	s.converted[sheet] = img
	return img
}

func (s *Screen) DrawSubImage(sheet Sheet, src image.Rectangle, x, y, scale float64) {
	img := s.ebitenImage(sheet)
	if img == nil || src.Empty() {
		return
	}
	frame := img.SubImage(src).(*ebiten.Image)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	// Pixel art: never smooth when scaling.
	drawOp.Filter = ebiten.FilterNearest
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(x, y)
	s.Target.DrawImage(frame, drawOp)
}

func (s *Screen) FillRect(x, y, w, h float64, clr color.Color) {
	vector.FillRect(s.Target, float32(x), float32(y), float32(w), float32(h), clr, false)
}
