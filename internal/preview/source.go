package preview

import "image"

// Source produces preview frames in place of real camera hardware.
type Source interface {
	// Size returns the frame dimensions in pixels.
	Size() (int, int)
	// Frame returns the next preview frame.
	Frame() (*image.RGBA, error)
}
