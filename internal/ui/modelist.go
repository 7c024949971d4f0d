package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/viewfinder/internal/modes"
)

const modeListSlideTicks = 10

// ModeList is the mode drawer that slides in from the left edge. It opens on
// a rightward swipe or the mode-list key and closes on selection, back, or a
// click outside the panel.
type ModeList struct {
	// OnModeSelected fires with the chosen mode. The list closes first.
	OnModeSelected func(id modes.ID)

	modules []*modes.Module
	current modes.ID

	height  int
	focused bool
	slide   int // 0 = closed, modeListSlideTicks = fully open
}

func NewModeList(modules []*modes.Module, height int) *ModeList {
	return &ModeList{modules: modules, height: height}
}

func (ml *ModeList) Resize(height int) {
	ml.height = height
}

// SetCurrent highlights the active mode.
func (ml *ModeList) SetCurrent(id modes.ID) {
	ml.current = id
}

// Focus opens the drawer.
func (ml *ModeList) Focus() {
	ml.focused = true
}

// Hide closes the drawer.
func (ml *ModeList) Hide() {
	ml.focused = false
}

// Focused reports whether the drawer is open or opening.
func (ml *ModeList) Focused() bool {
	return ml.focused
}

// BackPressed closes the drawer if open. Returns whether it consumed the event.
func (ml *ModeList) BackPressed() bool {
	if !ml.focused {
		return false
	}
	ml.focused = false
	return true
}

// HandleClick routes a click. Clicks outside an open panel close it and are
// consumed; clicks on an item select its mode.
func (ml *ModeList) HandleClick(x, y int) bool {
	if !ml.focused {
		return false
	}
	if x >= ModeListWidth {
		ml.focused = false
		return true
	}
	idx := y / ModeItemHeight
	if idx >= 0 && idx < len(ml.modules) {
		id := ml.modules[idx].ID
		ml.focused = false
		if ml.OnModeSelected != nil {
			ml.OnModeSelected(id)
		}
	}
	return true
}

func (ml *ModeList) Update() {
	if ml.focused && ml.slide < modeListSlideTicks {
		ml.slide++
	}
	if !ml.focused && ml.slide > 0 {
		ml.slide--
	}
}

func (ml *ModeList) Draw(dst *ebiten.Image) {
	if ml.slide == 0 {
		return
	}
	p := float32(ml.slide) / modeListSlideTicks
	offset := float64(ModeListWidth) * float64(p-1)

	if ml.focused {
		w := dst.Bounds().Dx()
		vector.DrawFilledRect(dst, 0, 0, float32(w), float32(ml.height), ColorScrim, false)
	}
	vector.DrawFilledRect(dst, float32(offset), 0, ModeListWidth, float32(ml.height), ColorBottomBar, false)

	for i, m := range ml.modules {
		y := float64(i * ModeItemHeight)
		clr := ColorText
		if m.ID == ml.current {
			clr = ColorAccent
			vector.DrawFilledRect(dst, float32(offset), float32(y), 4, ModeItemHeight, ColorAccent, false)
		}
		DrawText(dst, m.Name, offset+24, y+float64(ModeItemHeight)/2-FontSizeMode/2, FontSizeMode, clr)
	}
}
