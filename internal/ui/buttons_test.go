package ui

import "testing"

func TestButtonManagerLifecycle(t *testing.T) {
	bm := NewButtonManager(ButtonFlash, ButtonHDR)

	if st, ok := bm.State(ButtonFlash); !ok || st != ButtonHiddenState {
		t.Fatalf("initial state = %v ok=%v, want hidden", st, ok)
	}

	clicks := 0
	bm.Enable(ButtonFlash, func() { clicks++ })
	if st, _ := bm.State(ButtonFlash); st != ButtonEnabledState {
		t.Fatalf("after enable: %v", st)
	}
	if !bm.Click(ButtonFlash) || clicks != 1 {
		t.Fatalf("click consumed=%v clicks=%d", false, clicks)
	}

	bm.Disable(ButtonFlash)
	if bm.Click(ButtonFlash) {
		t.Error("disabled button consumed a click")
	}
	if clicks != 1 {
		t.Errorf("disabled button ran its callback, clicks=%d", clicks)
	}

	bm.Hide(ButtonFlash)
	if st, _ := bm.State(ButtonFlash); st != ButtonHiddenState {
		t.Errorf("after hide: %v", st)
	}
}

func TestButtonManagerUnregisteredIsNoop(t *testing.T) {
	bm := NewButtonManager(ButtonFlash)

	// None of these may panic or register the button.
	bm.Enable(ButtonReview, func() {})
	bm.Disable(ButtonReview)
	bm.Hide(ButtonReview)
	if bm.Click(ButtonReview) {
		t.Error("unregistered button consumed a click")
	}
	if _, ok := bm.State(ButtonReview); ok {
		t.Error("unregistered button reported present")
	}
}

func TestButtonManagerVisibleOrder(t *testing.T) {
	bm := NewButtonManager(ButtonCamera, ButtonFlash, ButtonHDR, ButtonGridLines)
	bm.Enable(ButtonHDR, nil)
	bm.Disable(ButtonCamera)
	bm.Enable(ButtonGridLines, nil)

	got := bm.Visible()
	want := []ButtonID{ButtonCamera, ButtonHDR, ButtonGridLines}
	if len(got) != len(want) {
		t.Fatalf("visible = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("visible = %v, want %v", got, want)
		}
	}

	bm.HideAll()
	if len(bm.Visible()) != 0 {
		t.Errorf("visible after HideAll = %v", bm.Visible())
	}
}
