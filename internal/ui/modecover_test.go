package ui

import "testing"

func TestModeCoverCancelIsIdempotent(t *testing.T) {
	m := NewModeCover(800, 600)

	// Nothing running: cancel must be a no-op.
	m.CancelAnimations()
	if m.Animating() || m.Covered() {
		t.Fatal("cancel on an idle cover changed state")
	}

	var results []bool
	m.PrepareShade(true, "Video", func(ok bool) { results = append(results, ok) })
	m.Update()
	if !m.ShadeInFlight() {
		t.Fatal("shade not running after prepare")
	}

	m.CancelAnimations()
	m.CancelAnimations() // second cancel must not re-fire the callback

	if len(results) != 1 || results[0] {
		t.Fatalf("callback results %v, want exactly one failure", results)
	}
	if m.Animating() {
		t.Error("still animating after cancel")
	}
	if m.Covered() {
		t.Error("cancelled shade left the cover up")
	}
}

func TestModeCoverShadeSupersession(t *testing.T) {
	m := NewModeCover(800, 600)

	var first, second []bool
	m.PrepareShade(true, "Video", func(ok bool) { first = append(first, ok) })
	m.PrepareShade(false, "Photo", func(ok bool) { second = append(second, ok) })

	if len(first) != 1 || first[0] {
		t.Fatalf("superseded shade results %v, want one failure", first)
	}

	for i := 0; i < 60 && m.ShadeInFlight(); i++ {
		m.Update()
	}
	if len(second) != 1 || !second[0] {
		t.Fatalf("replacement shade results %v, want one success", second)
	}
	if !m.Covered() {
		t.Error("landed shade did not leave the cover up")
	}
}

func TestModeCoverRevealLifecycle(t *testing.T) {
	m := NewModeCover(800, 600)

	// Reveal without a cover is a no-op.
	m.StartReveal()
	if m.Animating() {
		t.Fatal("reveal started with no cover up")
	}

	m.ShowCover()
	m.StartReveal()
	for i := 0; i < 60 && m.Animating(); i++ {
		m.Update()
	}
	if m.Covered() {
		t.Error("cover still up after the reveal finished")
	}
}
