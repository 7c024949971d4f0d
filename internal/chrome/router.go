package chrome

import "github.com/depeter/viewfinder/internal/modes"

// ModeController is the slice of the host controller the router needs.
type ModeController interface {
	CurrentModuleIndex() modes.ID
	QuickSwitchTarget(modes.ID) modes.ID
	SelectMode(modes.ID)
}

// Router dispatches a classified swipe to the view that handles it: vertical
// swipes quick-switch between modes, left reveals the filmstrip, right opens
// the mode list. It keeps no state of its own.
type Router struct {
	Controller ModeController

	// BeginQuickSwitch redirects the touch sequence to the mode transition
	// view and prepares the shade in the swipe direction. done reports
	// whether the transition animation completed.
	BeginQuickSwitch func(dir SwipeState, target modes.ID, done func(success bool))

	// ArmCover re-arms the mode cover once a quick-switch transition lands,
	// before the new mode is selected.
	ArmCover func()

	// FocusFilmstrip and FocusModeList redirect the rest of the touch
	// sequence to the respective view.
	FocusFilmstrip func()
	FocusModeList  func()

	// SwipedToFilmstrip records the usage event for a left swipe.
	SwipedToFilmstrip func()
}

// Route handles one detected swipe.
func (r *Router) Route(s SwipeState) {
	switch s {
	case SwipeUp, SwipeDown:
		if r.Controller == nil {
			return
		}
		current := r.Controller.CurrentModuleIndex()
		target := r.Controller.QuickSwitchTarget(current)
		if target == current || r.BeginQuickSwitch == nil {
			return
		}
		r.BeginQuickSwitch(s, target, func(success bool) {
			if !success {
				return
			}
			if r.ArmCover != nil {
				r.ArmCover()
			}
			r.Controller.SelectMode(target)
		})

	case SwipeLeft:
		if r.SwipedToFilmstrip != nil {
			r.SwipedToFilmstrip()
		}
		if r.FocusFilmstrip != nil {
			r.FocusFilmstrip()
		}

	case SwipeRight:
		if r.FocusModeList != nil {
			r.FocusModeList()
		}
	}
}
