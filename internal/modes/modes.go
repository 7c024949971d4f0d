// Package modes describes the camera modules the app can run and the chrome
// each of them wants: hardware capabilities, bottom-bar options, and the
// quick-switch relationships between modes.
package modes

// ID identifies a camera module.
type ID int

const (
	Photo ID = iota
	Video
	Panorama
)

func (id ID) String() string {
	switch id {
	case Photo:
		return "photo"
	case Video:
		return "video"
	case Panorama:
		return "panorama"
	default:
		return "unknown"
	}
}

// HardwareSpec is the capability surface the camera hardware exposes while a
// given module is active.
type HardwareSpec struct {
	FrontCamera bool
	Flash       bool
	HDR         bool
	HDRPlus     bool
}

// Settings is a snapshot of the user-facing camera settings.
type Settings struct {
	FlashOn     bool
	HDROn       bool
	GridLinesOn bool
	// BackFacing reports whether the rear camera is selected.
	BackFacing bool
	// FlashSupportedBackCamera reports whether the rear camera has a flash
	// unit at all.
	FlashSupportedBackCamera bool
}

// BottomBarSpec declares which bottom-bar options a module wants and how each
// reacts. Hide flags win over enable flags. Callbacks may be nil, in which
// case the app supplies its defaults.
type BottomBarSpec struct {
	EnableCamera   bool
	CameraCallback func()

	EnableFlash      bool
	EnableTorchFlash bool
	HideFlash        bool
	FlashCallback    func()

	EnableHDR   bool
	HideHDR     bool
	HDRCallback func()

	EnableGridLines   bool
	HideGridLines     bool
	GridLinesCallback func()

	EnablePanoOrientation   bool
	PanoOrientationCallback func()

	// Capture-intent layout buttons.
	ShowCancel     bool
	CancelCallback func()
	ShowDone       bool
	DoneCallback   func()
	ShowRetake     bool
	RetakeCallback func()
	ShowReview     bool
	ReviewCallback func()
}

// Module describes one camera mode.
type Module struct {
	ID            ID
	Name          string
	UsesBottomBar bool
	Hardware      HardwareSpec
	BottomBar     BottomBarSpec
}

// QuickSwitchTarget returns the module a vertical swipe transitions to.
// Photo and video switch between each other; everything else lands on photo.
func QuickSwitchTarget(id ID) ID {
	switch id {
	case Photo:
		return Video
	case Video:
		return Photo
	default:
		return Photo
	}
}

// Builtin returns the built-in modules in mode-list order.
func Builtin() []*Module {
	return []*Module{
		{
			ID:            Photo,
			Name:          "Photo",
			UsesBottomBar: true,
			Hardware:      HardwareSpec{FrontCamera: true, Flash: true, HDR: true, HDRPlus: false},
			BottomBar: BottomBarSpec{
				EnableCamera:    true,
				EnableFlash:     true,
				EnableHDR:       true,
				EnableGridLines: true,
			},
		},
		{
			ID:            Video,
			Name:          "Video",
			UsesBottomBar: true,
			Hardware:      HardwareSpec{FrontCamera: true, Flash: true},
			BottomBar: BottomBarSpec{
				EnableCamera:     true,
				EnableTorchFlash: true,
				HideHDR:          true,
				EnableGridLines:  true,
			},
		},
		{
			ID:            Panorama,
			Name:          "Panorama",
			UsesBottomBar: true,
			Hardware:      HardwareSpec{},
			BottomBar: BottomBarSpec{
				HideFlash:             true,
				HideHDR:               true,
				HideGridLines:         true,
				EnablePanoOrientation: true,
			},
		},
	}
}

// Lookup returns the built-in module for id, or nil.
func Lookup(all []*Module, id ID) *Module {
	for _, m := range all {
		if m.ID == id {
			return m
		}
	}
	return nil
}
