package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Gesture.SwipeTimeoutMS != 500 {
		t.Errorf("swipe timeout = %d, want 500", cfg.Gesture.SwipeTimeoutMS)
	}
	if cfg.Gesture.Slop <= 0 {
		t.Errorf("slop = %d, want positive", cfg.Gesture.Slop)
	}
	if cfg.UI.Width <= 0 || cfg.UI.Height <= 0 {
		t.Errorf("window size = %dx%d", cfg.UI.Width, cfg.UI.Height)
	}
	if cfg.Preview.Source != "pattern" {
		t.Errorf("preview source = %q, want pattern", cfg.Preview.Source)
	}
	if cfg.Capture.Dir == "" {
		t.Error("capture dir empty")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gesture.SwipeTimeoutMS != 500 {
		t.Errorf("swipe timeout = %d, want default", cfg.Gesture.SwipeTimeoutMS)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "viewfinder")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("[gesture]\nslop = 40\n\n[preview]\nsource = \"screen\"\n")
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gesture.Slop != 40 {
		t.Errorf("slop = %d, want 40", cfg.Gesture.Slop)
	}
	if cfg.Preview.Source != "screen" {
		t.Errorf("source = %q, want screen", cfg.Preview.Source)
	}
	// Unset sections keep their defaults.
	if cfg.Gesture.SwipeTimeoutMS != 500 {
		t.Errorf("swipe timeout = %d, want 500", cfg.Gesture.SwipeTimeoutMS)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Gesture.Slop = 32
	cfg.Capture.Sound = false
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Gesture.Slop != 32 {
		t.Errorf("slop = %d, want 32", loaded.Gesture.Slop)
	}
	if loaded.Capture.Sound {
		t.Error("capture sound = true, want false")
	}
}
