package app

import (
	"image"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/viewfinder/internal/cache"
	"github.com/depeter/viewfinder/internal/capture"
	"github.com/depeter/viewfinder/internal/chrome"
	"github.com/depeter/viewfinder/internal/config"
	"github.com/depeter/viewfinder/internal/modes"
	"github.com/depeter/viewfinder/internal/preview"
	"github.com/depeter/viewfinder/internal/sound"
	"github.com/depeter/viewfinder/internal/stats"
	"github.com/depeter/viewfinder/internal/ui"
)

// AppUI mediates between the preview pipeline, the gesture chrome, and the
// widgets. It owns mode selection and the bottom-bar button policy, and it is
// the single place where swipes, clicks, and keys converge on the same
// operations.
type AppUI struct {
	Classifier *chrome.Classifier
	Cover      *chrome.Cover
	Router     *chrome.Router
	Pipeline   *preview.Pipeline
	Rotation   *preview.RotationMonitor

	Buttons   *ui.ButtonManager
	BottomBar *ui.BottomBar
	ModeCover *ui.ModeCover
	Grid      *ui.GridLines
	ModeList  *ui.ModeList
	Filmstrip *ui.Filmstrip
	Overlay   *ui.CaptureOverlay
	Peek      *ui.Peek

	Store  *capture.Store
	Thumbs *cache.ThumbCache
	Sounds *sound.Player
	Stats  *stats.Recorder

	// OnReview fires with a capture path when the user opens the reviewer,
	// from the filmstrip, the peek, or the review intent button.
	OnReview func(path string)

	// OnShutter fires when a capture is requested; the frame source supplies
	// the image to Capture.
	OnShutter func()

	// OnIntentDone and OnIntentCancel report the outcome of a capture-intent
	// session to the host.
	OnIntentDone   func(path string)
	OnIntentCancel func()

	modules       []*modes.Module
	current       modes.ID
	settings      modes.Settings
	captureIntent bool
	pendingCause  stats.Cause

	width, height int
}

// NewAppUI builds the full widget tree and wires the chrome signal graph.
func NewAppUI(cfg *config.Config, store *capture.Store, sounds *sound.Player, rec *stats.Recorder, captureIntent bool) *AppUI {
	w, h := cfg.UI.Width, cfg.UI.Height

	a := &AppUI{
		Store:  store,
		Sounds: sounds,
		Stats:  rec,

		modules:       modes.Builtin(),
		current:       modes.Photo,
		captureIntent: captureIntent,
		pendingCause:  stats.CauseButton,
		settings: modes.Settings{
			BackFacing:               true,
			FlashSupportedBackCamera: true,
		},
		width:  w,
		height: h,
	}

	a.Thumbs = cache.NewThumbCache(256, 256)

	a.Classifier = chrome.NewClassifier(cfg.Gesture.Slop, captureIntent)
	if cfg.Gesture.SwipeTimeoutMS > 0 {
		a.Classifier.SetTimeout(millis(cfg.Gesture.SwipeTimeoutMS))
	}
	a.Cover = chrome.NewCover()
	a.Pipeline = preview.NewPipeline()
	a.Rotation = preview.NewRotationMonitor(cfg.Preview.Rotation)

	a.Buttons = ui.NewButtonManager(
		ui.ButtonCamera, ui.ButtonFlash, ui.ButtonTorch,
		ui.ButtonHDR, ui.ButtonHDRPlus,
		ui.ButtonGridLines, ui.ButtonPanoOrientation,
		ui.ButtonCancel, ui.ButtonDone, ui.ButtonRetake, ui.ButtonReview,
	)
	a.BottomBar = ui.NewBottomBar(a.Buttons, w, h)
	a.ModeCover = ui.NewModeCover(w, h)
	a.Grid = &ui.GridLines{}
	a.ModeList = ui.NewModeList(a.modules, h)
	a.Filmstrip = ui.NewFilmstrip(store, a.Thumbs, w)
	a.Overlay = ui.NewCaptureOverlay(w, h)
	a.Peek = ui.NewPeek(a.Thumbs, w, h)

	a.Router = &chrome.Router{
		Controller: a,
		BeginQuickSwitch: func(dir chrome.SwipeState, target modes.ID, done func(bool)) {
			name := ""
			if m := modes.Lookup(a.modules, target); m != nil {
				name = m.Name
			}
			a.ModeCover.PrepareShade(dir == chrome.SwipeDown, name, done)
		},
		ArmCover:       a.armCover,
		FocusFilmstrip: a.Filmstrip.Focus,
		FocusModeList: func() {
			a.ModeList.SetCurrent(a.current)
			a.ModeList.Focus()
		},
		SwipedToFilmstrip: func() {
			a.Stats.ChangeScreen("filmstrip", stats.CauseSwipeLeft)
		},
	}

	// Signal graph: swipes route through the router, the cover pulls its
	// one-shot frame callback from the pipeline, and surface events fan out
	// to the mediator.
	a.Classifier.OnSwipe = a.onSwipe
	a.Cover.RequestFrameCallback = func() {
		a.Pipeline.RequestFrameCallback(a.Cover.NewFrame)
	}
	a.Pipeline.AddListener(a)

	a.Rotation.OnFlipped = a.Pipeline.PreviewFlipped

	a.ModeList.OnModeSelected = func(id modes.ID) {
		a.OnModeSelected(id, stats.CauseButton)
	}
	a.Filmstrip.OnReview = a.openReview
	a.Peek.OnOpen = a.openReview
	a.BottomBar.OnShutter = func() {
		if a.OnShutter != nil {
			a.OnShutter()
		}
	}

	return a
}

// Resume puts the cover up and applies the current module's chrome. Called
// once at startup and whenever the app returns from review.
func (a *AppUI) Resume() {
	mod := modes.Lookup(a.modules, a.current)
	if mod != nil {
		a.ModeCover.Setup(mod.Name)
	}
	a.ModeCover.ShowCover()
	a.Cover.Show(a.ModeCover.StartReveal)
	a.Filmstrip.Hide()
	a.applyModuleSpecs()
}

// CurrentModuleIndex returns the active mode.
func (a *AppUI) CurrentModuleIndex() modes.ID {
	return a.current
}

// QuickSwitchTarget returns the mode a vertical swipe lands on.
func (a *AppUI) QuickSwitchTarget(id modes.ID) modes.ID {
	return modes.QuickSwitchTarget(id)
}

// SelectMode activates the given mode: chrome is rebuilt for it and the cover
// stays up until the restarted preview delivers a frame.
func (a *AppUI) SelectMode(id modes.ID) {
	a.current = id
	mod := modes.Lookup(a.modules, id)
	if mod == nil {
		log.Printf("select mode: unknown module %v", id)
		return
	}
	a.ModeCover.Setup(mod.Name)
	a.applyModuleSpecs()

	if id == modes.Video {
		a.BottomBar.SetShutter("Video", ui.ColorShutterVideo)
	} else {
		a.BottomBar.SetShutter(mod.Name, ui.ColorShutter)
	}

	a.Stats.ModeSelected(id.String(), a.pendingCause)
	a.pendingCause = stats.CauseButton

	// The preview restarts for the new module; the cover comes down on its
	// first frame.
	a.Cover.PreviewReadyToStart()
}

// OnModeSelected is the user-facing entry point for mode selection, from the
// mode list, a quick-switch key, or an intent. Re-selecting the current mode
// skips the preview restart and drops the cover immediately.
func (a *AppUI) OnModeSelected(id modes.ID, cause stats.Cause) {
	last := a.current
	a.pendingCause = cause
	a.armCover()
	a.SelectMode(id)
	if last == id {
		a.Cover.ForceHide()
		a.ModeCover.HideCover()
	}
}

// QuickSwitch runs the keyboard path of a vertical swipe.
func (a *AppUI) QuickSwitch(dir chrome.SwipeState, cause stats.Cause) {
	a.pendingCause = cause
	a.Router.Route(dir)
}

func (a *AppUI) armCover() {
	a.ModeCover.ShowCover()
	a.Cover.Show(a.ModeCover.StartReveal)
}

func (a *AppUI) onSwipe(s chrome.SwipeState) {
	// An open panel owns the touch sequence.
	if a.Filmstrip.Focused() || a.ModeList.Focused() {
		return
	}
	switch s {
	case chrome.SwipeUp:
		a.pendingCause = stats.CauseSwipeUp
	case chrome.SwipeDown:
		a.pendingCause = stats.CauseSwipeDown
	}
	a.Router.Route(s)
}

// Capture persists img, plays feedback, and shows the peek.
func (a *AppUI) Capture(img image.Image) {
	if a.ModeCover.Covered() {
		return
	}
	path, err := a.Store.SavePNG(img)
	if err != nil {
		log.Printf("capture: %v", err)
		return
	}
	a.Overlay.Flash()
	a.Sounds.Shutter()
	a.Peek.Show(path)
	a.Stats.CaptureTaken(a.current.String())
	if a.Filmstrip.Focused() {
		a.Filmstrip.Reload()
	}
}

// retakeLatest discards the most recent capture so the next shutter press
// replaces it.
func (a *AppUI) retakeLatest() {
	entry, ok := a.Store.Latest()
	if !ok {
		return
	}
	if err := os.Remove(entry.Path); err != nil {
		log.Printf("retake: %v", err)
		return
	}
	a.Thumbs.Forget(entry.Path)
	a.Peek.Dismiss()
	if a.Filmstrip.Focused() {
		a.Filmstrip.Reload()
	}
}

// BackPressed unwinds one layer of chrome. Returns whether it was consumed.
// A quick-switch shade still in flight is aborted; its completion callback
// reports failure, so the pending mode change never happens.
func (a *AppUI) BackPressed() bool {
	if a.ModeCover.ShadeInFlight() {
		a.ModeCover.CancelAnimations()
		a.ModeCover.HideCover()
		return true
	}
	if a.Filmstrip.BackPressed() {
		return true
	}
	if a.ModeList.BackPressed() {
		return true
	}
	return false
}

// HandleClick routes a click through the chrome layers, topmost first.
func (a *AppUI) HandleClick(x, y int) bool {
	if a.ModeList.HandleClick(x, y) {
		return true
	}
	if a.Filmstrip.HandleClick(x, y) {
		return true
	}
	if a.Peek.HandleClick(x, y) {
		return true
	}
	if a.BottomBar.HandleClick(x, y) {
		return true
	}
	// Tap-to-focus: a click landing on the bare preview surface.
	if image.Pt(x, y).In(a.PreviewArea()) {
		a.Sounds.Focus()
		return true
	}
	return false
}

// PreviewArea returns the screen rectangle the live preview occupies.
func (a *AppUI) PreviewArea() image.Rectangle {
	return image.Rect(0, 0, a.width, a.BottomBar.Top())
}

// Resize propagates a window size change to the widgets and the pipeline.
func (a *AppUI) Resize(w, h int) {
	if w == a.width && h == a.height {
		return
	}
	a.width, a.height = w, h
	a.BottomBar.Resize(w, h)
	a.ModeCover.Resize(w, h)
	a.ModeList.Resize(h)
	a.Filmstrip.Resize(w)
	a.Overlay.Resize(w, h)
	a.Peek.Resize(w, h)
	if a.Pipeline.Valid() {
		a.Pipeline.SurfaceSizeChanged(w, h)
	}
}

// Update advances widget animations by one tick.
func (a *AppUI) Update() {
	a.BottomBar.Update()
	a.ModeCover.Update()
	a.ModeList.Update()
	a.Overlay.Update()
	a.Peek.Update()
}

// Draw renders the chrome over the preview, bottom to top.
func (a *AppUI) Draw(dst *ebiten.Image) {
	a.Grid.Draw(dst, a.PreviewArea())
	a.BottomBar.Draw(dst)
	a.ModeCover.Draw(dst)
	a.Overlay.Draw(dst)
	a.Peek.Draw(dst)
	a.Filmstrip.Draw(dst)
	a.ModeList.Draw(dst)
}

func (a *AppUI) openReview(path string) {
	a.ModeCover.CancelAnimations()
	a.Peek.Dismiss()
	a.Filmstrip.Hide()
	a.Stats.ChangeScreen("review", stats.CauseButton)
	if a.OnReview != nil {
		a.OnReview(path)
	}
}

// Settings returns the current camera settings snapshot.
func (a *AppUI) Settings() modes.Settings {
	return a.settings
}

// applyModuleSpecs rebuilds the bottom-bar buttons for the active module:
// each button is enabled, disabled, or hidden from the module's declared
// hardware and bottom-bar specs plus the current settings.
func (a *AppUI) applyModuleSpecs() {
	mod := modes.Lookup(a.modules, a.current)
	if mod == nil {
		return
	}
	hw := mod.Hardware
	bb := mod.BottomBar

	a.BottomBar.Visible = mod.UsesBottomBar
	a.Buttons.HideAll()

	// Camera switcher needs a second camera to switch to.
	if hw.FrontCamera {
		if bb.EnableCamera {
			cb := bb.CameraCallback
			if cb == nil {
				cb = a.toggleCamera
			}
			a.Buttons.Enable(ui.ButtonCamera, cb)
		} else {
			a.Buttons.Disable(ui.ButtonCamera)
		}
	} else {
		a.Buttons.Hide(ui.ButtonCamera)
	}

	// Flash is gone entirely when the module hides it or the rear camera has
	// no flash unit; otherwise it degrades to disabled without hardware flash.
	if bb.HideFlash || !a.settings.FlashSupportedBackCamera {
		a.Buttons.Hide(ui.ButtonFlash)
		a.Buttons.Hide(ui.ButtonTorch)
	} else if hw.Flash && bb.EnableFlash {
		a.Buttons.Enable(ui.ButtonFlash, a.flashCallback(bb))
		a.Buttons.Hide(ui.ButtonTorch)
	} else if hw.Flash && bb.EnableTorchFlash {
		a.Buttons.Enable(ui.ButtonTorch, a.flashCallback(bb))
		a.Buttons.Hide(ui.ButtonFlash)
	} else {
		a.Buttons.Disable(ui.ButtonFlash)
		a.Buttons.Hide(ui.ButtonTorch)
	}

	// HDR+ replaces plain HDR where the hardware supports it. Both are
	// front-camera and capture-intent restricted.
	if bb.HideHDR || a.captureIntent {
		a.Buttons.Hide(ui.ButtonHDR)
		a.Buttons.Hide(ui.ButtonHDRPlus)
	} else if hw.HDRPlus && bb.EnableHDR && a.settings.BackFacing {
		a.Buttons.Enable(ui.ButtonHDRPlus, a.hdrCallback(bb))
		a.Buttons.Hide(ui.ButtonHDR)
	} else if hw.HDR && bb.EnableHDR && a.settings.BackFacing {
		a.Buttons.Enable(ui.ButtonHDR, a.hdrCallback(bb))
		a.Buttons.Hide(ui.ButtonHDRPlus)
	} else {
		a.Buttons.Disable(ui.ButtonHDR)
		a.Buttons.Hide(ui.ButtonHDRPlus)
	}

	if bb.HideGridLines {
		a.Buttons.Hide(ui.ButtonGridLines)
		a.Grid.Visible = false
	} else if bb.EnableGridLines {
		cb := bb.GridLinesCallback
		if cb == nil {
			cb = a.toggleGridLines
		}
		a.Buttons.Enable(ui.ButtonGridLines, cb)
		a.Grid.Visible = a.settings.GridLinesOn
	} else {
		a.Buttons.Disable(ui.ButtonGridLines)
	}

	if bb.EnablePanoOrientation {
		a.Buttons.Enable(ui.ButtonPanoOrientation, bb.PanoOrientationCallback)
	} else {
		a.Buttons.Hide(ui.ButtonPanoOrientation)
	}

	// Intent buttons are push buttons: momentary, no toggled state. A
	// capture-intent session always shows the full set.
	if bb.ShowCancel || a.captureIntent {
		cb := bb.CancelCallback
		if cb == nil {
			cb = func() {
				if a.OnIntentCancel != nil {
					a.OnIntentCancel()
				}
			}
		}
		a.Buttons.EnablePush(ui.ButtonCancel, cb)
	}
	if bb.ShowDone || a.captureIntent {
		cb := bb.DoneCallback
		if cb == nil {
			cb = func() {
				if entry, ok := a.Store.Latest(); ok && a.OnIntentDone != nil {
					a.OnIntentDone(entry.Path)
				}
			}
		}
		a.Buttons.EnablePush(ui.ButtonDone, cb)
	}
	if bb.ShowRetake || a.captureIntent {
		cb := bb.RetakeCallback
		if cb == nil {
			cb = a.retakeLatest
		}
		a.Buttons.EnablePush(ui.ButtonRetake, cb)
	}
	if bb.ShowReview || a.captureIntent {
		a.Buttons.EnablePush(ui.ButtonReview, func() {
			if entry, ok := a.Store.Latest(); ok {
				a.openReview(entry.Path)
			}
		})
	}

	if a.captureIntent {
		a.BottomBar.TransitionTo(ui.LayoutIntentCapture)
	} else {
		a.BottomBar.TransitionTo(ui.LayoutCapture)
	}
}

func (a *AppUI) flashCallback(bb modes.BottomBarSpec) func() {
	if bb.FlashCallback != nil {
		return bb.FlashCallback
	}
	return func() {
		a.settings.FlashOn = !a.settings.FlashOn
	}
}

func (a *AppUI) hdrCallback(bb modes.BottomBarSpec) func() {
	if bb.HDRCallback != nil {
		return bb.HDRCallback
	}
	return func() {
		a.settings.HDROn = !a.settings.HDROn
	}
}

func (a *AppUI) toggleCamera() {
	a.settings.BackFacing = !a.settings.BackFacing
	// Facing affects the flash and HDR policy, so the bar is rebuilt.
	a.applyModuleSpecs()
}

func (a *AppUI) toggleGridLines() {
	a.settings.GridLinesOn = !a.settings.GridLinesOn
	a.Grid.Visible = a.settings.GridLinesOn
}

// Pipeline listener hooks. The mediator reacts to surface lifecycle changes
// on behalf of the cover.

func (a *AppUI) SurfaceAvailable(width, height int) {
	a.Cover.PreviewReadyToStart()
}

func (a *AppUI) SurfaceSizeChanged(width, height int) {}

func (a *AppUI) SurfaceDestroyed() {}

func (a *AppUI) SurfaceUpdated() {
	a.Cover.TextureUpdated()
}

func (a *AppUI) PreviewFlipped() {
	log.Printf("preview flipped 180 degrees, forcing texture refresh")
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
