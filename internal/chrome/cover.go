package chrome

import "time"

// CoverState tracks whether the opaque mode cover is obscuring the preview.
type CoverState int

const (
	CoverHidden CoverState = iota
	CoverShown
	CoverWillHideAtNextFrame
	CoverWillHideAtNextTextureUpdate
)

func (s CoverState) String() string {
	switch s {
	case CoverHidden:
		return "hidden"
	case CoverShown:
		return "shown"
	case CoverWillHideAtNextFrame:
		return "will-hide-at-next-frame"
	case CoverWillHideAtNextTextureUpdate:
		return "will-hide-at-next-texture-update"
	default:
		return "unknown"
	}
}

// Cover owns the mode-cover lifecycle. The cover is shown whenever a mode is
// selected or the app resumes, and stays up until the preview pipeline
// delivers a live frame. At most one hide action is pending at a time; arming
// a new one replaces the old, and a pending action runs exactly once.
type Cover struct {
	// RequestFrameCallback asks the preview pipeline to deliver a one-shot
	// callback when the next camera frame arrives.
	RequestFrameCallback func()

	now      func() time.Time
	state    CoverState
	pending  func()
	hiddenAt time.Time
}

func NewCover() *Cover {
	return &Cover{now: time.Now}
}

// SetClock overrides the time source. Used by tests.
func (c *Cover) SetClock(now func() time.Time) {
	c.now = now
}

// Show puts the cover up and arms hide as the action that will reveal the
// preview. A previously armed action is dropped without running.
func (c *Cover) Show(hide func()) {
	c.state = CoverShown
	c.pending = hide
}

// PreviewReadyToStart is called when the preview is about to start. It
// requests a one-shot frame callback so the cover can come down on the first
// live frame.
func (c *Cover) PreviewReadyToStart() {
	if c.state != CoverShown {
		return
	}
	c.state = CoverWillHideAtNextFrame
	if c.RequestFrameCallback != nil {
		c.RequestFrameCallback()
	}
}

// PreviewStarted is the fallback path for pipelines that manage their own
// frame callbacks: the next texture update will hide the cover instead.
func (c *Cover) PreviewStarted() {
	if c.state == CoverWillHideAtNextFrame {
		c.state = CoverWillHideAtNextTextureUpdate
	}
}

// TextureUpdated is called whenever the preview texture receives new content.
func (c *Cover) TextureUpdated() {
	if c.state == CoverWillHideAtNextTextureUpdate {
		c.hide()
	}
}

// NewFrame is the direct path: the first camera frame hides the cover no
// matter which intermediate state it is in.
func (c *Cover) NewFrame() {
	c.hide()
}

// ForceHide hides the cover immediately, e.g. when the current mode is
// re-selected and there is no preview restart to wait for.
func (c *Cover) ForceHide() {
	c.hide()
}

// State returns the current cover state.
func (c *Cover) State() CoverState {
	return c.state
}

// HiddenAt returns the time the cover first revealed the preview this
// session, or the zero time if that has not happened yet. It is recorded once
// and never overwritten, so it measures startup-to-first-frame latency.
func (c *Cover) HiddenAt() time.Time {
	return c.hiddenAt
}

func (c *Cover) hide() {
	if f := c.pending; f != nil {
		c.pending = nil
		f()
	}
	c.state = CoverHidden
	if c.hiddenAt.IsZero() {
		c.hiddenAt = c.now()
	}
}
