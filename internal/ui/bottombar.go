package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BarLayout selects which control set the bottom bar presents.
type BarLayout int

const (
	LayoutCapture BarLayout = iota
	LayoutCancel
	LayoutIntentCapture
	LayoutIntentReview
)

// BottomBar renders the shutter button and the option buttons along the
// bottom edge, and hit-tests clicks against them.
type BottomBar struct {
	Buttons *ButtonManager

	// OnShutter fires when the shutter is pressed and capture is enabled.
	OnShutter func()

	Visible        bool
	CaptureEnabled bool

	width, height int
	layout        BarLayout
	shutterLabel  string
	shutterColor  color.RGBA
	pressed       bool
}

func NewBottomBar(buttons *ButtonManager, width, height int) *BottomBar {
	return &BottomBar{
		Buttons:        buttons,
		Visible:        true,
		CaptureEnabled: true,
		width:          width,
		height:         height,
		shutterLabel:   "Photo",
		shutterColor:   ColorShutter,
	}
}

// Resize adjusts the bar to a new window size.
func (b *BottomBar) Resize(width, height int) {
	b.width, b.height = width, height
}

// SetShutter sets the shutter label and accent for the active mode.
func (b *BottomBar) SetShutter(label string, clr color.RGBA) {
	b.shutterLabel = label
	b.shutterColor = clr
}

// TransitionTo switches the bar's control layout.
func (b *BottomBar) TransitionTo(layout BarLayout) {
	b.layout = layout
}

// Layout returns the current control layout.
func (b *BottomBar) Layout() BarLayout {
	return b.layout
}

// Top returns the y coordinate of the bar's upper edge, or the window height
// when the bar is hidden (the preview then extends to the bottom).
func (b *BottomBar) Top() int {
	if !b.Visible {
		return b.height
	}
	return b.height - BottomBarHeight
}

// HandleClick routes a click at (x, y). Returns whether the bar consumed it.
func (b *BottomBar) HandleClick(x, y int) bool {
	if !b.Visible || y < b.Top() {
		return false
	}

	cx := float64(b.width) / 2
	cy := float64(b.Top()) + BottomBarHeight/2
	if PointInCircle(x, y, cx, cy, ShutterRadius) {
		if b.CaptureEnabled && b.OnShutter != nil {
			b.pressed = true
			b.OnShutter()
		}
		return true
	}

	for i, id := range b.visibleButtons() {
		bx, by := b.buttonPos(i)
		if PointInCircle(x, y, bx, by, OptionRadius+4) {
			b.Buttons.Click(id)
			return true
		}
	}
	return true // clicks on the bar never fall through to the preview
}

// Update clears transient press state once the button is released.
func (b *BottomBar) Update() {
	if b.pressed && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		b.pressed = false
	}
}

func (b *BottomBar) Draw(dst *ebiten.Image) {
	if !b.Visible {
		return
	}

	top := float32(b.Top())
	bg := ColorBottomBar
	if b.pressed {
		bg = ColorBottomBarPressed
	}
	vector.DrawFilledRect(dst, 0, top, float32(b.width), BottomBarHeight, bg, false)

	// Shutter
	cx := float32(b.width) / 2
	cy := top + BottomBarHeight/2
	shutter := b.shutterColor
	if !b.CaptureEnabled {
		shutter = ColorDisabled
	}
	vector.StrokeCircle(dst, cx, cy, ShutterRadius, 3, shutter, true)
	vector.DrawFilledCircle(dst, cx, cy, ShutterRadius-7, shutter, true)
	DrawTextCentered(dst, b.shutterLabel, float64(cx), float64(cy)+ShutterRadius+14, FontSizeLabel, ColorTextDim)

	for i, id := range b.visibleButtons() {
		bx, by := b.buttonPos(i)
		state, _ := b.Buttons.State(id)
		clr := ColorText
		if state == ButtonDisabledState {
			clr = ColorDisabled
		}
		vector.StrokeCircle(dst, float32(bx), float32(by), OptionRadius, 2, clr, true)
		DrawTextCentered(dst, buttonGlyph(id), bx, by, FontSizeLabel, clr)
	}
}

// visibleButtons filters the manager's visible set by the current layout:
// option buttons in capture layouts, intent buttons in intent layouts.
func (b *BottomBar) visibleButtons() []ButtonID {
	var out []ButtonID
	for _, id := range b.Buttons.Visible() {
		intent := id == ButtonCancel || id == ButtonDone || id == ButtonRetake || id == ButtonReview
		switch b.layout {
		case LayoutIntentCapture, LayoutIntentReview:
			if intent {
				out = append(out, id)
			}
		case LayoutCancel:
			if id == ButtonCancel {
				out = append(out, id)
			}
		default:
			if !intent {
				out = append(out, id)
			}
		}
	}
	return out
}

func (b *BottomBar) buttonPos(i int) (x, y float64) {
	// Options march left-to-right from the left edge of the bar.
	x = float64(OptionGap+OptionRadius) + float64(i)*(2*OptionRadius+OptionGap)
	y = float64(b.Top()) + BottomBarHeight/2
	return
}

func buttonGlyph(id ButtonID) string {
	switch id {
	case ButtonCamera:
		return "Cam"
	case ButtonFlash:
		return "Fl"
	case ButtonTorch:
		return "To"
	case ButtonHDR:
		return "HDR"
	case ButtonHDRPlus:
		return "H+"
	case ButtonGridLines:
		return "#"
	case ButtonPanoOrientation:
		return "Pan"
	case ButtonCancel:
		return "X"
	case ButtonDone:
		return "OK"
	case ButtonRetake:
		return "Re"
	case ButtonReview:
		return ">"
	default:
		return "?"
	}
}
