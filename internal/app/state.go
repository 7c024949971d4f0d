package app

// AppState represents the top-level application mode.
type AppState int

const (
	// StateViewfinder is the live preview with the camera chrome.
	StateViewfinder AppState = iota
	// StateReview is fullscreen review of a capture via mpv.
	StateReview
)
