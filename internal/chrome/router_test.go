package chrome

import (
	"testing"

	"github.com/depeter/viewfinder/internal/modes"
)

type fakeController struct {
	current  modes.ID
	target   modes.ID
	selected []modes.ID
}

func (f *fakeController) CurrentModuleIndex() modes.ID        { return f.current }
func (f *fakeController) QuickSwitchTarget(modes.ID) modes.ID { return f.target }
func (f *fakeController) SelectMode(id modes.ID)              { f.selected = append(f.selected, id) }

func TestRouterQuickSwitch(t *testing.T) {
	ctrl := &fakeController{current: modes.Photo, target: modes.Video}
	r := &Router{Controller: ctrl}

	var gotDir SwipeState
	var gotTarget modes.ID
	var finish func(bool)
	r.BeginQuickSwitch = func(dir SwipeState, target modes.ID, done func(bool)) {
		gotDir, gotTarget, finish = dir, target, done
	}
	armed := 0
	r.ArmCover = func() { armed++ }

	r.Route(SwipeUp)
	if gotDir != SwipeUp || gotTarget != modes.Video {
		t.Fatalf("dir=%v target=%v", gotDir, gotTarget)
	}
	if len(ctrl.selected) != 0 {
		t.Fatal("mode selected before the transition finished")
	}

	finish(true)
	if armed != 1 {
		t.Errorf("cover armed %d times, want 1", armed)
	}
	if len(ctrl.selected) != 1 || ctrl.selected[0] != modes.Video {
		t.Errorf("selected %v, want [video]", ctrl.selected)
	}
}

func TestRouterQuickSwitchFailedTransition(t *testing.T) {
	ctrl := &fakeController{current: modes.Photo, target: modes.Video}
	r := &Router{Controller: ctrl}
	var finish func(bool)
	r.BeginQuickSwitch = func(_ SwipeState, _ modes.ID, done func(bool)) { finish = done }
	r.ArmCover = func() { t.Error("cover armed on failed transition") }

	r.Route(SwipeDown)
	finish(false)
	if len(ctrl.selected) != 0 {
		t.Errorf("selected %v, want none", ctrl.selected)
	}
}

func TestRouterQuickSwitchSameTargetIsNoop(t *testing.T) {
	ctrl := &fakeController{current: modes.Photo, target: modes.Photo}
	r := &Router{Controller: ctrl}
	r.BeginQuickSwitch = func(SwipeState, modes.ID, func(bool)) {
		t.Error("transition started for identical target")
	}
	r.Route(SwipeUp)
}

func TestRouterLeftGoesToFilmstrip(t *testing.T) {
	r := &Router{Controller: &fakeController{}}
	order := []string{}
	r.SwipedToFilmstrip = func() { order = append(order, "stats") }
	r.FocusFilmstrip = func() { order = append(order, "focus") }

	r.Route(SwipeLeft)
	if len(order) != 2 || order[0] != "stats" || order[1] != "focus" {
		t.Errorf("got %v, want stats then focus", order)
	}
}

func TestRouterRightGoesToModeList(t *testing.T) {
	r := &Router{Controller: &fakeController{}}
	focused := false
	r.FocusModeList = func() { focused = true }
	r.Route(SwipeRight)
	if !focused {
		t.Error("mode list not focused")
	}
}

func TestRouterIdleIsNoop(t *testing.T) {
	r := &Router{Controller: &fakeController{}}
	r.FocusModeList = func() { t.Error("routed an idle state") }
	r.FocusFilmstrip = func() { t.Error("routed an idle state") }
	r.Route(SwipeIdle)
}
