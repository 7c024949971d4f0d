package chrome

import (
	"testing"
	"time"
)

var t0 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestClassifierDirections(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   SwipeState
	}{
		{"right dominant", 40, 10, SwipeRight},
		{"left dominant", -40, 10, SwipeLeft},
		{"down dominant", 10, 40, SwipeDown},
		{"up dominant", 10, -40, SwipeUp},
		{"diagonal tie goes right", 30, 30, SwipeRight},
		{"negative diagonal tie goes left", -30, 30, SwipeLeft},
		{"tie with negative dy goes right", 30, -30, SwipeRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(24, false)
			c.Down(100, 100, t0)
			if !c.Scroll(100+tt.dx, 100+tt.dy, t0.Add(50*time.Millisecond)) {
				t.Fatal("scroll was rejected")
			}
			if got := c.State(); got != tt.want {
				t.Errorf("dx=%d dy=%d: got %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestClassifierBelowSlopStaysIdle(t *testing.T) {
	c := NewClassifier(24, false)
	c.Down(0, 0, t0)
	if !c.Scroll(10, 5, t0.Add(time.Millisecond)) {
		t.Fatal("scroll below slop should still be handled")
	}
	if c.State() != SwipeIdle {
		t.Errorf("got %v, want idle", c.State())
	}
}

func TestClassifierTimeout(t *testing.T) {
	c := NewClassifier(24, false)
	c.Down(0, 0, t0)
	if c.Scroll(100, 0, t0.Add(501*time.Millisecond)) {
		t.Error("scroll after timeout should be rejected")
	}
	if c.State() != SwipeIdle {
		t.Errorf("got %v, want idle", c.State())
	}
}

func TestClassifierEmitsExactlyOnce(t *testing.T) {
	c := NewClassifier(24, false)
	var got []SwipeState
	c.OnSwipe = func(s SwipeState) { got = append(got, s) }

	c.Down(0, 0, t0)
	c.Scroll(50, 0, t0.Add(10*time.Millisecond))
	// Further motion in the same sequence is rejected.
	if c.Scroll(120, 0, t0.Add(20*time.Millisecond)) {
		t.Error("scroll after classification should be rejected")
	}
	c.Scroll(-120, 0, t0.Add(30*time.Millisecond))

	if len(got) != 1 || got[0] != SwipeRight {
		t.Fatalf("got emissions %v, want exactly one SwipeRight", got)
	}

	// A new down resets and allows a fresh classification.
	c.Down(0, 0, t0.Add(time.Second))
	c.Scroll(-50, 0, t0.Add(time.Second+10*time.Millisecond))
	if len(got) != 2 || got[1] != SwipeLeft {
		t.Fatalf("got emissions %v, want SwipeRight then SwipeLeft", got)
	}
}

func TestClassifierSecondPointerSuppresses(t *testing.T) {
	c := NewClassifier(24, false)
	c.Down(0, 0, t0)
	c.PointerDown()
	if c.Scroll(100, 0, t0.Add(10*time.Millisecond)) {
		t.Error("scroll during pinch should be rejected")
	}
	if c.State() != SwipeIdle {
		t.Errorf("got %v, want idle for the rest of the sequence", c.State())
	}

	// Suppression is cleared by the next down.
	c.Down(0, 0, t0.Add(time.Second))
	c.Scroll(100, 0, t0.Add(time.Second+10*time.Millisecond))
	if c.State() != SwipeRight {
		t.Errorf("got %v after new down, want right", c.State())
	}
}

func TestClassifierDisabledAndCaptureIntent(t *testing.T) {
	c := NewClassifier(24, false)
	c.SetEnabled(false)
	c.Down(0, 0, t0)
	if c.Scroll(100, 0, t0.Add(time.Millisecond)) {
		t.Error("scroll while disabled should be rejected")
	}

	ci := NewClassifier(24, true)
	ci.Down(0, 0, t0)
	if ci.Scroll(100, 0, t0.Add(time.Millisecond)) {
		t.Error("scroll in capture-intent mode should be rejected")
	}
}

func TestClassifierScrollWithoutDown(t *testing.T) {
	c := NewClassifier(24, false)
	if c.Scroll(100, 0, t0) {
		t.Error("scroll with no recorded down should be rejected")
	}
}
