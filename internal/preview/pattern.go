package preview

import (
	"image"
	"image/color"
	"time"
)

// barColors are the classic color bars drawn by the test pattern.
var barColors = []color.RGBA{
	{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}, // white
	{R: 0xC0, G: 0xC0, B: 0x00, A: 0xFF}, // yellow
	{R: 0x00, G: 0xC0, B: 0xC0, A: 0xFF}, // cyan
	{R: 0x00, G: 0xC0, B: 0x00, A: 0xFF}, // green
	{R: 0xC0, G: 0x00, B: 0xC0, A: 0xFF}, // magenta
	{R: 0xC0, G: 0x00, B: 0x00, A: 0xFF}, // red
	{R: 0x00, G: 0x00, B: 0xC0, A: 0xFF}, // blue
}

// Pattern is a frame source that renders animated color bars with a sweeping
// highlight, for running the app without camera hardware or screen capture.
type Pattern struct {
	width, height int
	start         time.Time
	now           func() time.Time
	buf           *image.RGBA
}

func NewPattern(width, height int) *Pattern {
	return &Pattern{
		width:  width,
		height: height,
		start:  time.Now(),
		now:    time.Now,
		buf:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

func (p *Pattern) Size() (int, int) {
	return p.width, p.height
}

func (p *Pattern) Frame() (*image.RGBA, error) {
	elapsed := p.now().Sub(p.start).Seconds()
	// Sweep crosses the frame once every four seconds.
	sweep := int(elapsed/4.0*float64(p.width)) % p.width

	barWidth := p.width / len(barColors)
	if barWidth == 0 {
		barWidth = 1
	}

	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			bar := x / barWidth
			if bar >= len(barColors) {
				bar = len(barColors) - 1
			}
			c := barColors[bar]
			if dist := x - sweep; dist >= 0 && dist < 24 {
				c = brighten(c, 0x30)
			}
			o := p.buf.PixOffset(x, y)
			p.buf.Pix[o+0] = c.R
			p.buf.Pix[o+1] = c.G
			p.buf.Pix[o+2] = c.B
			p.buf.Pix[o+3] = c.A
		}
	}
	return p.buf, nil
}

func brighten(c color.RGBA, by uint8) color.RGBA {
	add := func(v, d uint8) uint8 {
		if int(v)+int(d) > 0xFF {
			return 0xFF
		}
		return v + d
	}
	return color.RGBA{R: add(c.R, by), G: add(c.G, by), B: add(c.B, by), A: c.A}
}
