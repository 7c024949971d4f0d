package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/viewfinder/assets/icon"
	"github.com/depeter/viewfinder/internal/app"
	"github.com/depeter/viewfinder/internal/capture"
	"github.com/depeter/viewfinder/internal/config"
	"github.com/depeter/viewfinder/internal/preview"
	"github.com/depeter/viewfinder/internal/sound"
	"github.com/depeter/viewfinder/internal/stats"
	"github.com/depeter/viewfinder/internal/ui"
)

func main() {
	captureIntent := flag.Bool("capture-intent", false, "single-capture mode: swipes disabled, intent buttons shown")
	flag.Parse()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Init fonts
	if err := ui.InitFonts(goregular.TTF); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	// Init capture store
	store, err := capture.NewStore(cfg.Capture.Dir)
	if err != nil {
		log.Fatalf("Failed to init capture store: %v", err)
	}

	// Pick the preview frame source
	var source preview.Source
	switch cfg.Preview.Source {
	case "screen":
		source, err = preview.NewScreen()
		if err != nil {
			log.Printf("Screen capture unavailable, falling back to pattern: %v", err)
			source = preview.NewPattern(1280, 720)
		}
	default:
		source = preview.NewPattern(1280, 720)
	}

	rec := stats.NewRecorder()
	sounds := sound.NewPlayer(cfg.Capture.Sound)

	appUI := app.NewAppUI(cfg, store, sounds, rec, *captureIntent)
	game := app.NewGame(cfg, appUI, source)

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("Viewfinder")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	defer rec.Dump()
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
