package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const flashTicks = 8

// CaptureOverlay plays the short white flash when a capture is taken.
type CaptureOverlay struct {
	width, height int
	ticks         int
	active        bool
}

func NewCaptureOverlay(width, height int) *CaptureOverlay {
	return &CaptureOverlay{width: width, height: height}
}

func (c *CaptureOverlay) Resize(width, height int) {
	c.width, c.height = width, height
}

// Flash starts the animation, restarting it if already running.
func (c *CaptureOverlay) Flash() {
	c.active = true
	c.ticks = 0
}

// Cancel stops the animation. Safe to call when nothing is running.
func (c *CaptureOverlay) Cancel() {
	c.active = false
	c.ticks = 0
}

// Active reports whether the flash is still playing.
func (c *CaptureOverlay) Active() bool {
	return c.active
}

func (c *CaptureOverlay) Update() {
	if !c.active {
		return
	}
	c.ticks++
	if c.ticks >= flashTicks {
		c.active = false
	}
}

func (c *CaptureOverlay) Draw(dst *ebiten.Image) {
	if !c.active {
		return
	}
	a := 1 - float32(c.ticks)/flashTicks
	clr := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: uint8(a * 0xB0)}
	vector.DrawFilledRect(dst, 0, 0, float32(c.width), float32(c.height), clr, false)
}
