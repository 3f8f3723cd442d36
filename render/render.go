// Package render holds the drawing capabilities handed to entities. Nothing in
// the game reads a process-wide canvas: whoever draws receives a Surface.
package render

import (
	"image"
	"image/color"
)

// Sheet is a sprite strip. *ebiten.Image and any image.Image satisfy it.
type Sheet interface {
	Bounds() image.Rectangle
}

// Surface accepts the two primitives the game needs.
type Surface interface {
	// DrawSubImage blits src of sheet with its top-left at (x, y), scaled uniformly.
	DrawSubImage(sheet Sheet, src image.Rectangle, x, y, scale float64)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, clr color.Color)
}

// Drawable can render itself onto a Surface.
type Drawable interface {
	Draw(s Surface)
}

// Updatable advances one game tick.
type Updatable interface {
	Update()
}

// Entity is what the render queue holds.
type Entity interface {
	Drawable
	Updatable
}

// FrameRect returns the source rectangle of column frame in a horizontal strip
// of frames equally wide columns.
func FrameRect(sheet Sheet, frame, frames int) image.Rectangle {
	b := sheet.Bounds()
	if frames <= 0 {
		frames = 1
	}
	fw := b.Dx() / frames
	sx := b.Min.X + frame*fw
	return image.Rect(sx, b.Min.Y, sx+fw, b.Max.Y)
}
