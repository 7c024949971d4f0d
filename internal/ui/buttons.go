package ui

import "log"

// ButtonID identifies a logical bottom-bar option button.
type ButtonID int

const (
	ButtonCamera ButtonID = iota
	ButtonFlash
	ButtonTorch
	ButtonHDR
	ButtonHDRPlus
	ButtonGridLines
	ButtonPanoOrientation
	ButtonCancel
	ButtonDone
	ButtonRetake
	ButtonReview
)

func (id ButtonID) String() string {
	switch id {
	case ButtonCamera:
		return "camera"
	case ButtonFlash:
		return "flash"
	case ButtonTorch:
		return "torch"
	case ButtonHDR:
		return "hdr"
	case ButtonHDRPlus:
		return "hdr+"
	case ButtonGridLines:
		return "grid"
	case ButtonPanoOrientation:
		return "pano"
	case ButtonCancel:
		return "cancel"
	case ButtonDone:
		return "done"
	case ButtonRetake:
		return "retake"
	case ButtonReview:
		return "review"
	default:
		return "unknown"
	}
}

// ButtonState is the visibility/enablement of one button.
type ButtonState int

const (
	ButtonHiddenState ButtonState = iota
	ButtonDisabledState
	ButtonEnabledState
)

type button struct {
	state   ButtonState
	push    bool
	onClick func()
}

// ButtonManager tracks enablement and visibility of the logical option
// buttons. Commands against a button that was never registered are logged
// and dropped rather than failing the session.
type ButtonManager struct {
	buttons map[ButtonID]*button
	order   []ButtonID
}

// NewButtonManager registers the given buttons, all hidden initially.
func NewButtonManager(ids ...ButtonID) *ButtonManager {
	bm := &ButtonManager{buttons: make(map[ButtonID]*button, len(ids))}
	for _, id := range ids {
		if _, ok := bm.buttons[id]; ok {
			continue
		}
		bm.buttons[id] = &button{}
		bm.order = append(bm.order, id)
	}
	return bm
}

// Enable makes the button visible and clickable with the given callback.
func (bm *ButtonManager) Enable(id ButtonID, onClick func()) {
	b := bm.lookup(id)
	if b == nil {
		return
	}
	b.state = ButtonEnabledState
	b.push = false
	b.onClick = onClick
}

// EnablePush enables a momentary (push) button, used by the intent layouts.
func (bm *ButtonManager) EnablePush(id ButtonID, onClick func()) {
	b := bm.lookup(id)
	if b == nil {
		return
	}
	b.state = ButtonEnabledState
	b.push = true
	b.onClick = onClick
}

// Disable keeps the button visible but inert.
func (bm *ButtonManager) Disable(id ButtonID) {
	b := bm.lookup(id)
	if b == nil {
		return
	}
	b.state = ButtonDisabledState
	b.onClick = nil
}

// Hide removes the button from the bar.
func (bm *ButtonManager) Hide(id ButtonID) {
	b := bm.lookup(id)
	if b == nil {
		return
	}
	b.state = ButtonHiddenState
	b.onClick = nil
}

// HideAll hides every registered button, e.g. before applying a new module's spec.
func (bm *ButtonManager) HideAll() {
	for _, b := range bm.buttons {
		b.state = ButtonHiddenState
		b.onClick = nil
	}
}

// State returns the state of a button; ok is false for unregistered buttons.
func (bm *ButtonManager) State(id ButtonID) (ButtonState, bool) {
	b, ok := bm.buttons[id]
	if !ok {
		return ButtonHiddenState, false
	}
	return b.state, true
}

// Click invokes the button's callback if it is enabled. Returns whether the
// click was consumed.
func (bm *ButtonManager) Click(id ButtonID) bool {
	b := bm.lookup(id)
	if b == nil || b.state != ButtonEnabledState {
		return false
	}
	if b.onClick != nil {
		b.onClick()
	}
	return true
}

// Visible returns the registered buttons that are not hidden, in
// registration order.
func (bm *ButtonManager) Visible() []ButtonID {
	var out []ButtonID
	for _, id := range bm.order {
		if bm.buttons[id].state != ButtonHiddenState {
			out = append(out, id)
		}
	}
	return out
}

func (bm *ButtonManager) lookup(id ButtonID) *button {
	b, ok := bm.buttons[id]
	if !ok {
		log.Printf("button %v not present in layout, ignoring", id)
		return nil
	}
	return b
}
