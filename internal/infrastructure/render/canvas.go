// Package render adapts ebiten images to the drawing contract used by the projector.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas draws filled rectangles onto an ebiten image
type Canvas struct {
	dst *ebiten.Image
}

// NewCanvas wraps the destination image
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

// DrawFilledRect fills an axis-aligned rectangle. Rectangles that extend past
// the image are clipped by ebiten.
func (c *Canvas) DrawFilledRect(x, y, width, height float32, clr color.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, x, y, width, height, clr, false)
}

// Clear fills the whole image with a single color
func (c *Canvas) Clear(clr color.Color) {
	c.dst.Fill(clr)
}

// Image returns the destination image
func (c *Canvas) Image() *ebiten.Image {
	return c.dst
}
