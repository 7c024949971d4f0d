package preview

import (
	"fmt"
	"image"

	"github.com/vova616/screenshot"
)

// Screen is a frame source backed by desktop capture, a stand-in camera for
// machines without one.
type Screen struct {
	width, height int
}

// NewScreen probes the display once to learn the capture dimensions.
func NewScreen() (*Screen, error) {
	r, err := screenshot.ScreenRect()
	if err != nil {
		return nil, fmt.Errorf("screen capture unavailable: %w", err)
	}
	return &Screen{width: r.Dx(), height: r.Dy()}, nil
}

func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

func (s *Screen) Frame() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, fmt.Errorf("screen capture: %w", err)
	}
	return img, nil
}
