package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// shadeDuration and revealDuration are in ticks (60/s).
const (
	shadeDuration  = 14
	revealDuration = 18
)

// AnimationFinished reports whether a transition animation ran to completion.
type AnimationFinished func(success bool)

// ModeCover is the transition view: an opaque cover shown over the preview
// during mode switches and at resume, a shade that is pulled in from the top
// or bottom for quick-switch transitions, and a reveal animation that fades
// the cover out once the preview is live.
type ModeCover struct {
	width, height int

	covered  bool
	modeName string

	shadeActive  bool
	shadeFromTop bool
	shadeTicks   int
	shadeDone    AnimationFinished

	revealActive bool
	revealTicks  int
}

func NewModeCover(width, height int) *ModeCover {
	return &ModeCover{width: width, height: height}
}

func (m *ModeCover) Resize(width, height int) {
	m.width, m.height = width, height
}

// Setup names the mode the cover represents without changing visibility.
func (m *ModeCover) Setup(modeName string) {
	m.modeName = modeName
}

// ShowCover puts the opaque cover up immediately.
func (m *ModeCover) ShowCover() {
	m.covered = true
	m.revealActive = false
	m.revealTicks = 0
}

// HideCover removes the cover immediately, with no animation.
func (m *ModeCover) HideCover() {
	m.covered = false
	m.revealActive = false
}

// StartReveal begins fading the cover out to expose the live preview.
func (m *ModeCover) StartReveal() {
	if !m.covered {
		return
	}
	m.revealActive = true
	m.revealTicks = 0
}

// PrepareShade starts pulling a shade across the screen toward the given
// mode. done fires once, with success=true when the shade fully lands, or
// success=false if the animation is cancelled first.
func (m *ModeCover) PrepareShade(fromTop bool, modeName string, done AnimationFinished) {
	// A shade in flight is superseded; its callback reports failure.
	if m.shadeActive && m.shadeDone != nil {
		m.shadeDone(false)
	}
	m.modeName = modeName
	m.shadeActive = true
	m.shadeFromTop = fromTop
	m.shadeTicks = 0
	m.shadeDone = done
}

// CancelAnimations stops any running animation. Safe to call when nothing is
// running.
func (m *ModeCover) CancelAnimations() {
	if m.shadeActive {
		m.shadeActive = false
		if m.shadeDone != nil {
			done := m.shadeDone
			m.shadeDone = nil
			done(false)
		}
	}
	m.revealActive = false
}

// Animating reports whether a shade or reveal is in flight.
func (m *ModeCover) Animating() bool {
	return m.shadeActive || m.revealActive
}

// ShadeInFlight reports whether a quick-switch shade is still being pulled.
func (m *ModeCover) ShadeInFlight() bool {
	return m.shadeActive
}

// Covered reports whether the cover currently obscures the preview.
func (m *ModeCover) Covered() bool {
	return m.covered
}

// Update advances animations by one tick.
func (m *ModeCover) Update() {
	if m.shadeActive {
		m.shadeTicks++
		if m.shadeTicks >= shadeDuration {
			m.shadeActive = false
			m.covered = true
			if m.shadeDone != nil {
				done := m.shadeDone
				m.shadeDone = nil
				done(true)
			}
		}
	}
	if m.revealActive {
		m.revealTicks++
		if m.revealTicks >= revealDuration {
			m.revealActive = false
			m.covered = false
		}
	}
}

func (m *ModeCover) Draw(dst *ebiten.Image) {
	w := float32(m.width)
	h := float32(m.height)

	if m.shadeActive {
		p := float32(m.shadeTicks) / shadeDuration
		sh := h * p
		y := float32(0)
		if !m.shadeFromTop {
			y = h - sh
		}
		vector.DrawFilledRect(dst, 0, y, w, sh, ColorCover, false)
		return
	}

	if !m.covered {
		return
	}

	cover := ColorCover
	if m.revealActive {
		a := 1 - float32(m.revealTicks)/revealDuration
		cover.A = uint8(a * float32(ColorCover.A))
	}
	vector.DrawFilledRect(dst, 0, 0, w, h, cover, false)
	if !m.revealActive && m.modeName != "" {
		DrawTextCentered(dst, m.modeName, float64(m.width)/2, float64(m.height)/2, FontSizeCover, ColorText)
	}
}
