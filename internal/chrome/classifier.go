// Package chrome holds the shared on-screen chrome logic: swipe gesture
// classification, the preview mode-cover lifecycle, and the routing of
// detected swipes to the views that handle them.
package chrome

import "time"

// SwipeState is the classification of a single touch sequence.
type SwipeState int

const (
	SwipeIdle SwipeState = iota
	SwipeUp
	SwipeDown
	SwipeLeft
	SwipeRight
)

func (s SwipeState) String() string {
	switch s {
	case SwipeIdle:
		return "idle"
	case SwipeUp:
		return "up"
	case SwipeDown:
		return "down"
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	default:
		return "unknown"
	}
}

// DefaultSwipeTimeout is how long after touch-down a drag may still be
// classified as a swipe.
const DefaultSwipeTimeout = 500 * time.Millisecond

// Classifier turns raw pointer motion into at most one swipe per touch
// sequence. State resets on every new touch-down; once a sequence has been
// classified it stays classified until the next down event.
type Classifier struct {
	// OnSwipe fires exactly once per sequence, at the moment of classification.
	OnSwipe func(SwipeState)

	slop          int
	timeout       time.Duration
	captureIntent bool
	enabled       bool

	state        SwipeState
	hasDown      bool
	scaleStarted bool
	downX, downY int
	downTime     time.Time
}

// NewClassifier creates a classifier with the given slop threshold in pixels.
// captureIntent disables swipe handling entirely, for modes launched to
// capture a single image on behalf of another application.
func NewClassifier(slop int, captureIntent bool) *Classifier {
	return &Classifier{
		slop:          slop,
		timeout:       DefaultSwipeTimeout,
		captureIntent: captureIntent,
		enabled:       true,
	}
}

// SetTimeout overrides the classification timeout.
func (c *Classifier) SetTimeout(d time.Duration) {
	c.timeout = d
}

// SetEnabled enables or disables swipe classification, e.g. while recording.
func (c *Classifier) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// Enabled reports whether swipe classification is currently on.
func (c *Classifier) Enabled() bool {
	return c.enabled
}

// Down starts a new touch sequence at (x, y).
func (c *Classifier) Down(x, y int, at time.Time) {
	c.state = SwipeIdle
	c.scaleStarted = false
	c.hasDown = true
	c.downX, c.downY = x, y
	c.downTime = at
}

// PointerDown marks a second simultaneous pointer (pinch start). The rest of
// the sequence is never classified; only the next Down clears the flag.
func (c *Classifier) PointerDown() {
	c.scaleStarted = true
}

// Scroll feeds a move sample into the classifier. It reports whether the
// sample was handled; rejected samples leave the state untouched.
func (c *Classifier) Scroll(x, y int, at time.Time) bool {
	if !c.hasDown || c.scaleStarted {
		return false
	}
	if at.Sub(c.downTime) > c.timeout ||
		c.state != SwipeIdle ||
		c.captureIntent ||
		!c.enabled {
		return false
	}

	dx := x - c.downX
	dy := y - c.downY
	if abs(dx) > c.slop || abs(dy) > c.slop {
		// Ties between axes go to the horizontal directions.
		if dx >= abs(dy) {
			c.classify(SwipeRight)
		} else if dx <= -abs(dy) {
			c.classify(SwipeLeft)
		} else if dy > 0 {
			c.classify(SwipeDown)
		} else {
			c.classify(SwipeUp)
		}
	}
	return true
}

// State returns the classification of the current touch sequence.
func (c *Classifier) State() SwipeState {
	return c.state
}

func (c *Classifier) classify(s SwipeState) {
	c.state = s
	if c.OnSwipe != nil {
		c.OnSwipe(s)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
