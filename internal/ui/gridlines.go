package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridLines draws rule-of-thirds lines over the preview area.
type GridLines struct {
	Visible bool
}

func (g *GridLines) Draw(dst *ebiten.Image, area image.Rectangle) {
	if !g.Visible {
		return
	}
	w := float32(area.Dx())
	h := float32(area.Dy())
	x0 := float32(area.Min.X)
	y0 := float32(area.Min.Y)

	for i := 1; i <= 2; i++ {
		x := x0 + w*float32(i)/3
		vector.StrokeLine(dst, x, y0, x, y0+h, 1, ColorGridLine, false)
		y := y0 + h*float32(i)/3
		vector.StrokeLine(dst, x0, y, x0+w, y, 1, ColorGridLine, false)
	}
}
