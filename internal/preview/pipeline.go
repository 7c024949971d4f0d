// Package preview models the preview pipeline: the surface the camera frames
// land on, the listeners that observe its lifecycle, and the frame sources
// that stand in for camera hardware.
package preview

// Listener observes preview surface lifecycle events. Listeners are notified
// synchronously, in registration order.
type Listener interface {
	SurfaceAvailable(width, height int)
	SurfaceSizeChanged(width, height int)
	SurfaceDestroyed()
	SurfaceUpdated()
	// PreviewFlipped is emitted when the display rotated 180 degrees without
	// an intervening size change.
	PreviewFlipped()
}

// Pipeline fans surface signals out to registered listeners and owns the
// one-shot frame callback used to detect the first live camera frame.
type Pipeline struct {
	listeners []Listener

	width, height int
	valid         bool

	frameCallback func()
}

func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// AddListener registers l. Notification order follows registration order.
func (p *Pipeline) AddListener(l Listener) {
	for _, existing := range p.listeners {
		if existing == l {
			return
		}
	}
	p.listeners = append(p.listeners, l)
}

// RemoveListener unregisters l.
func (p *Pipeline) RemoveListener(l Listener) {
	for i, existing := range p.listeners {
		if existing == l {
			p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
			return
		}
	}
}

// SurfaceAvailable records the surface and notifies listeners.
func (p *Pipeline) SurfaceAvailable(width, height int) {
	p.width, p.height, p.valid = width, height, true
	for _, l := range p.listeners {
		l.SurfaceAvailable(width, height)
	}
}

// SurfaceSizeChanged records the new size and notifies listeners.
func (p *Pipeline) SurfaceSizeChanged(width, height int) {
	p.width, p.height = width, height
	for _, l := range p.listeners {
		l.SurfaceSizeChanged(width, height)
	}
}

// SurfaceDestroyed invalidates the surface and notifies listeners.
func (p *Pipeline) SurfaceDestroyed() {
	p.valid = false
	for _, l := range p.listeners {
		l.SurfaceDestroyed()
	}
}

// SurfaceUpdated signals that the preview texture received new content.
func (p *Pipeline) SurfaceUpdated() {
	for _, l := range p.listeners {
		l.SurfaceUpdated()
	}
}

// PreviewFlipped signals a 180-degree display flip.
func (p *Pipeline) PreviewFlipped() {
	for _, l := range p.listeners {
		l.PreviewFlipped()
	}
}

// RequestFrameCallback arms fn to run when the next camera frame arrives.
// A later request replaces one that has not fired yet.
func (p *Pipeline) RequestFrameCallback(fn func()) {
	p.frameCallback = fn
}

// FrameArrived delivers a camera frame: the armed one-shot callback, if any,
// fires exactly once and is cleared before it runs.
func (p *Pipeline) FrameArrived() {
	if f := p.frameCallback; f != nil {
		p.frameCallback = nil
		f()
	}
}

// SurfaceSize returns the last reported surface dimensions.
func (p *Pipeline) SurfaceSize() (int, int) {
	return p.width, p.height
}

// Valid reports whether a surface is currently available.
func (p *Pipeline) Valid() bool {
	return p.valid
}
