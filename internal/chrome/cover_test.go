package chrome

import (
	"testing"
	"time"
)

func testClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}

func TestCoverFrameCallbackPath(t *testing.T) {
	c := NewCover()
	requested := 0
	c.RequestFrameCallback = func() { requested++ }

	dispatched := 0
	c.Show(func() { dispatched++ })
	if c.State() != CoverShown {
		t.Fatalf("after Show: %v", c.State())
	}

	c.PreviewReadyToStart()
	if c.State() != CoverWillHideAtNextFrame {
		t.Fatalf("after ready-to-start: %v", c.State())
	}
	if requested != 1 {
		t.Fatalf("frame callback requested %d times, want 1", requested)
	}

	// Texture updates do nothing on this path; only the frame callback fires.
	c.TextureUpdated()
	if c.State() != CoverWillHideAtNextFrame {
		t.Fatalf("texture update should be a no-op here, got %v", c.State())
	}

	c.NewFrame()
	if c.State() != CoverHidden {
		t.Fatalf("after first frame: %v", c.State())
	}
	if dispatched != 1 {
		t.Fatalf("hide action ran %d times, want 1", dispatched)
	}
}

func TestCoverTextureUpdatePath(t *testing.T) {
	c := NewCover()
	c.RequestFrameCallback = func() {}

	dispatched := 0
	c.Show(func() { dispatched++ })
	c.PreviewReadyToStart()

	c.TextureUpdated() // still waiting for the started signal
	if c.State() != CoverWillHideAtNextFrame {
		t.Fatalf("got %v, want will-hide-at-next-frame", c.State())
	}

	c.PreviewStarted()
	if c.State() != CoverWillHideAtNextTextureUpdate {
		t.Fatalf("after started: %v", c.State())
	}

	c.TextureUpdated()
	if c.State() != CoverHidden {
		t.Fatalf("after texture update: %v", c.State())
	}
	if dispatched != 1 {
		t.Fatalf("hide action ran %d times, want 1", dispatched)
	}
}

func TestCoverPreviewStartedRequiresFramePending(t *testing.T) {
	c := NewCover()
	c.Show(func() {})
	c.PreviewStarted()
	if c.State() != CoverShown {
		t.Fatalf("started without ready-to-start should be a no-op, got %v", c.State())
	}
}

func TestCoverForceHideIsSynchronous(t *testing.T) {
	c := NewCover()
	dispatched := 0
	c.Show(func() { dispatched++ })
	c.ForceHide()
	if c.State() != CoverHidden || dispatched != 1 {
		t.Fatalf("state=%v dispatched=%d", c.State(), dispatched)
	}
}

func TestCoverPendingActionLastWriterWins(t *testing.T) {
	c := NewCover()
	var ran []string
	c.Show(func() { ran = append(ran, "first") })
	c.Show(func() { ran = append(ran, "second") })
	c.ForceHide()
	c.ForceHide() // no pending action left; must not re-run

	if len(ran) != 1 || ran[0] != "second" {
		t.Fatalf("ran %v, want only the latest action once", ran)
	}
}

func TestCoverHiddenTimestampWriteOnce(t *testing.T) {
	c := NewCover()
	c.SetClock(testClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)))

	if !c.HiddenAt().IsZero() {
		t.Fatal("timestamp set before first hide")
	}

	c.Show(func() {})
	c.ForceHide()
	first := c.HiddenAt()
	if first.IsZero() {
		t.Fatal("timestamp not set on first hide")
	}

	c.Show(func() {})
	c.ForceHide()
	if !c.HiddenAt().Equal(first) {
		t.Fatalf("timestamp overwritten: %v != %v", c.HiddenAt(), first)
	}
}

func TestCoverReadyToStartOnlyFromShown(t *testing.T) {
	c := NewCover()
	requested := 0
	c.RequestFrameCallback = func() { requested++ }

	c.PreviewReadyToStart() // hidden: no-op
	if c.State() != CoverHidden || requested != 0 {
		t.Fatalf("state=%v requested=%d", c.State(), requested)
	}

	c.Show(func() {})
	c.PreviewReadyToStart()
	c.PreviewReadyToStart() // already armed: no second request
	if requested != 1 {
		t.Fatalf("requested %d times, want 1", requested)
	}
}

func TestCoverDirectFrameFromAnyWaitingState(t *testing.T) {
	for _, prep := range []struct {
		name string
		prep func(*Cover)
	}{
		{"shown", func(c *Cover) {}},
		{"will-hide-at-next-frame", func(c *Cover) { c.PreviewReadyToStart() }},
		{"will-hide-at-next-texture-update", func(c *Cover) {
			c.PreviewReadyToStart()
			c.PreviewStarted()
		}},
	} {
		t.Run(prep.name, func(t *testing.T) {
			c := NewCover()
			c.RequestFrameCallback = func() {}
			dispatched := 0
			c.Show(func() { dispatched++ })
			prep.prep(c)
			c.NewFrame()
			if c.State() != CoverHidden || dispatched != 1 {
				t.Fatalf("state=%v dispatched=%d", c.State(), dispatched)
			}
		})
	}
}
