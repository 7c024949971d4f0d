package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/viewfinder/internal/cache"
)

const (
	peekHoldTicks  = 90
	peekSlideTicks = 12
	peekSize       = 110
)

// Peek shows the just-captured thumbnail sliding in at the right edge for a
// moment after each capture. Clicking it opens the reviewer.
type Peek struct {
	// OnOpen fires with the capture path when the peek is clicked.
	OnOpen func(path string)

	thumbs *cache.ThumbCache

	width, height int
	path          string
	ticks         int
	active        bool
}

func NewPeek(thumbs *cache.ThumbCache, width, height int) *Peek {
	return &Peek{thumbs: thumbs, width: width, height: height}
}

func (p *Peek) Resize(width, height int) {
	p.width, p.height = width, height
}

// Show starts (or restarts) the peek for the given capture.
func (p *Peek) Show(path string) {
	p.path = path
	p.ticks = 0
	p.active = true
	p.thumbs.LoadAsync(path, func(*ebiten.Image) {})
}

// Dismiss hides the peek immediately.
func (p *Peek) Dismiss() {
	p.active = false
}

// HandleClick opens the reviewer when the peek is clicked.
func (p *Peek) HandleClick(x, y int) bool {
	if !p.active {
		return false
	}
	px, py := p.pos()
	if !PointInRect(x, y, float64(px), float64(py), peekSize, peekSize) {
		return false
	}
	p.active = false
	if p.OnOpen != nil {
		p.OnOpen(p.path)
	}
	return true
}

func (p *Peek) Update() {
	if !p.active {
		return
	}
	p.ticks++
	if p.ticks >= peekHoldTicks {
		p.active = false
	}
}

func (p *Peek) pos() (int, int) {
	x := p.width - peekSize - 16
	if p.ticks < peekSlideTicks {
		// Slide in from the right edge.
		x += (peekSize + 16) * (peekSlideTicks - p.ticks) / peekSlideTicks
	}
	y := p.height - BottomBarHeight - peekSize - 16
	return x, y
}

func (p *Peek) Draw(dst *ebiten.Image) {
	if !p.active {
		return
	}
	x, y := p.pos()
	vector.DrawFilledRect(dst, float32(x)-2, float32(y)-2, peekSize+4, peekSize+4, ColorBottomBar, false)

	img := p.thumbs.Get(p.path)
	if img == nil {
		vector.DrawFilledRect(dst, float32(x), float32(y), peekSize, peekSize, ColorDisabled, false)
		return
	}
	op := &ebiten.DrawImageOptions{}
	b := img.Bounds()
	scale := float64(peekSize) / float64(b.Dx())
	if s := float64(peekSize) / float64(b.Dy()); s < scale {
		scale = s
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(img, op)
}
