package app

import (
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/viewfinder/internal/chrome"
	"github.com/depeter/viewfinder/internal/config"
	"github.com/depeter/viewfinder/internal/player"
	"github.com/depeter/viewfinder/internal/preview"
	"github.com/depeter/viewfinder/internal/stats"
	"github.com/depeter/viewfinder/internal/ui"
)

// Game implements ebiten.Game and manages the overall application: the live
// viewfinder with its chrome, and fullscreen capture review via mpv.
type Game struct {
	Config *config.Config
	UI     *AppUI
	Player *player.Player
	Source preview.Source

	State         AppState
	Width, Height int

	// Set to true when mpv playback ends and we need to return to the viewfinder
	playbackEnded bool
	// Set to true when a capture-intent session finishes or is cancelled
	quit bool

	started    bool
	tick       int
	frameEvery int
	frameImg   *ebiten.Image
	lastFrame  *image.RGBA

	dragging     bool
	dragConsumed bool
	downX, downY int
	touchIDs     []ebiten.TouchID
}

// NewGame creates the Game with all dependencies.
func NewGame(cfg *config.Config, appUI *AppUI, source preview.Source) *Game {
	fps := cfg.Preview.FPS
	if fps <= 0 || fps > 60 {
		fps = 30
	}
	g := &Game{
		Config:     cfg,
		UI:         appUI,
		Source:     source,
		State:      StateViewfinder,
		Width:      cfg.UI.Width,
		Height:     cfg.UI.Height,
		frameEvery: 60 / fps,
	}
	appUI.OnReview = g.StartReview
	appUI.OnShutter = g.capture
	appUI.OnIntentDone = func(path string) {
		log.Printf("capture intent result: %s", path)
		g.quit = true
	}
	appUI.OnIntentCancel = func() {
		g.quit = true
	}
	return g
}

// InitPlayer creates the mpv player instance. Call after the window is visible.
func (g *Game) InitPlayer() error {
	p, err := player.New(g.Config)
	if err != nil {
		return err
	}
	p.OnPlaybackEnd = func() {
		g.playbackEnded = true
	}
	g.Player = p
	return nil
}

// StartReview transitions to review mode for the given capture.
func (g *Game) StartReview(path string) {
	if g.Player == nil {
		if err := g.InitPlayer(); err != nil {
			log.Printf("Failed to init player: %v", err)
			return
		}
	}

	wid, err := player.GetWindowHandle()
	if err != nil {
		log.Printf("Failed to get window handle: %v", err)
		return
	}
	if err := g.Player.SetWindowID(wid); err != nil {
		log.Printf("Failed to set window ID: %v", err)
	}

	if err := g.Player.LoadFile(path); err != nil {
		log.Printf("Failed to load capture: %v", err)
		return
	}

	g.State = StateReview
	g.playbackEnded = false
}

// StopReview transitions back to the viewfinder. The preview surface was
// owned by mpv during review, so it is re-announced to bring the cover down
// again on the first live frame.
func (g *Game) StopReview() {
	if g.Player != nil && g.Player.Playing() {
		if err := g.Player.Stop(); err != nil {
			log.Printf("Failed to stop review: %v", err)
		}
	}
	g.State = StateViewfinder
	g.UI.Resume()
	g.UI.Pipeline.SurfaceAvailable(g.Width, g.UI.PreviewArea().Dy())
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	// Alt+Enter toggles fullscreen (works in all modes)
	if keyJustPressed(g.Config.Keybinds.Fullscreen) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	switch g.State {
	case StateViewfinder:
		if !g.started {
			g.started = true
			g.UI.Resume()
			g.UI.Pipeline.SurfaceAvailable(g.Width, g.UI.PreviewArea().Dy())
		}

		g.pumpFrames()
		g.handleViewfinderInput()
		g.UI.Update()

	case StateReview:
		if g.playbackEnded {
			g.playbackEnded = false
			g.StopReview()
			return nil
		}
		g.handleReviewInput()
	}

	return nil
}

// pumpFrames pulls preview frames from the source at the configured rate and
// feeds the pipeline: the armed frame callback first, then the texture update.
func (g *Game) pumpFrames() {
	g.tick++
	if g.tick%g.frameEvery != 0 {
		return
	}

	frame, err := g.Source.Frame()
	if err != nil {
		log.Printf("preview source: %v", err)
		return
	}
	g.lastFrame = frame

	if g.frameImg == nil || g.frameImg.Bounds() != frame.Bounds() {
		g.frameImg = ebiten.NewImage(frame.Bounds().Dx(), frame.Bounds().Dy())
	}
	g.frameImg.WritePixels(frame.Pix)

	g.UI.Cover.PreviewStarted()
	g.UI.Pipeline.FrameArrived()
	g.UI.Pipeline.SurfaceUpdated()
}

func (g *Game) handleViewfinderInput() {
	now := time.Now()
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.UI.Classifier.Down(x, y, now)
		g.dragging = true
		g.dragConsumed = false
		g.downX, g.downY = x, y
	}
	if g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		before := g.UI.Classifier.State()
		g.UI.Classifier.Scroll(x, y, now)
		if before == chrome.SwipeIdle && g.UI.Classifier.State() != chrome.SwipeIdle {
			g.dragConsumed = true
		}
	}
	if g.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
		// A release that never classified and barely moved is a click.
		if !g.dragConsumed && absInt(x-g.downX) <= 4 && absInt(y-g.downY) <= 4 {
			g.UI.HandleClick(x, y)
		}
	}

	// A second simultaneous touch is a pinch start; the sequence is never
	// classified after that.
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	if g.dragging && len(g.touchIDs) > 0 {
		g.UI.Classifier.PointerDown()
	}

	kb := &g.Config.Keybinds

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.UI.QuickSwitch(chrome.SwipeUp, stats.CauseKey)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.UI.QuickSwitch(chrome.SwipeDown, stats.CauseKey)
	}

	if keyJustPressed(kb.Shutter) {
		g.capture()
	}
	if keyJustPressed(kb.ModeList) {
		g.UI.Stats.ChangeScreen("mode_list", stats.CauseKey)
		g.UI.ModeList.SetCurrent(g.UI.CurrentModuleIndex())
		g.UI.ModeList.Focus()
	}
	if keyJustPressed(kb.Filmstrip) {
		g.UI.Stats.ChangeScreen("filmstrip", stats.CauseKey)
		g.UI.Filmstrip.Focus()
	}
	if keyJustPressed(kb.GridLines) {
		g.UI.Buttons.Click(ui.ButtonGridLines)
	}
	if keyJustPressed(kb.Camera) {
		g.UI.Buttons.Click(ui.ButtonCamera)
	}
	if keyJustPressed(kb.Flash) {
		g.UI.Buttons.Click(ui.ButtonFlash)
	}
	if keyJustPressed(kb.HDR) {
		if !g.UI.Buttons.Click(ui.ButtonHDR) {
			g.UI.Buttons.Click(ui.ButtonHDRPlus)
		}
	}

	// R simulates a 180-degree display rotation, which has no size-change
	// event of its own and must be detected by the rotation monitor.
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.UI.Rotation.RotationChanged((g.UI.Rotation.Rotation() + 180) % 360)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButton3) {
		g.UI.BackPressed()
	}

	// Wheel scrolls the filmstrip while it is open.
	if g.UI.Filmstrip.Focused() {
		_, scrollY := ebiten.Wheel()
		if scrollY > 0 {
			g.UI.Filmstrip.Scroll(-1)
		} else if scrollY < 0 {
			g.UI.Filmstrip.Scroll(1)
		}
	}
}

func (g *Game) handleReviewInput() {
	if g.Player == nil {
		g.State = StateViewfinder
		return
	}

	backPressed := inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButton3)
	if backPressed {
		g.StopReview()
		return
	}

	if keyJustPressed(g.Config.Keybinds.Shutter) {
		if err := g.Player.TogglePause(); err != nil {
			log.Printf("Failed to toggle pause: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.Player.Seek(5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.Player.Seek(-5)
	}
}

// capture copies the latest preview frame and hands it to the mediator. The
// source reuses its frame buffer, so the capture gets its own copy.
func (g *Game) capture() {
	if g.lastFrame == nil {
		return
	}
	cp := image.NewRGBA(g.lastFrame.Bounds())
	copy(cp.Pix, g.lastFrame.Pix)
	g.UI.Capture(cp)
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.State {
	case StateViewfinder:
		screen.Fill(ui.ColorBackground)
		g.drawPreview(screen)
		g.UI.Draw(screen)

	case StateReview:
		// In review mode, mpv owns the window surface via --wid.
		// We don't draw anything — mpv renders directly.
	}
}

// drawPreview letterboxes the latest frame into the preview area.
func (g *Game) drawPreview(screen *ebiten.Image) {
	if g.frameImg == nil {
		return
	}
	area := g.UI.PreviewArea()
	b := g.frameImg.Bounds()

	scale := float64(area.Dx()) / float64(b.Dx())
	if s := float64(area.Dy()) / float64(b.Dy()); s < scale {
		scale = s
	}
	w := float64(b.Dx()) * scale
	h := float64(b.Dy()) * scale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		float64(area.Min.X)+(float64(area.Dx())-w)/2,
		float64(area.Min.Y)+(float64(area.Dy())-h)/2,
	)
	screen.DrawImage(g.frameImg, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Width, g.Height = outsideWidth, outsideHeight
	g.UI.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
