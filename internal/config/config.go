package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	UI       UIConfig       `toml:"ui"`
	Gesture  GestureConfig  `toml:"gesture"`
	Preview  PreviewConfig  `toml:"preview"`
	Capture  CaptureConfig  `toml:"capture"`
	Playback PlaybackConfig `toml:"playback"`
	Keybinds KeybindConfig  `toml:"keybinds"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

type GestureConfig struct {
	// SwipeTimeoutMS bounds how long after touch-down a drag may still be
	// classified as a swipe.
	SwipeTimeoutMS int `toml:"swipe_timeout_ms"`
	// Slop is the minimum pointer displacement in pixels before a drag is
	// treated as intentional.
	Slop int `toml:"slop"`
}

type PreviewConfig struct {
	// Source selects the preview frame source: "pattern" or "screen".
	Source string `toml:"source"`
	FPS    int    `toml:"fps"`
	// Rotation is the initial display rotation in degrees.
	Rotation int `toml:"rotation"`
}

type CaptureConfig struct {
	Dir   string `toml:"dir"`
	Sound bool   `toml:"sound"`
}

type PlaybackConfig struct {
	HWAccel string `toml:"hwdec"`
	Volume  int    `toml:"volume"`
}

type KeybindConfig struct {
	Shutter    string `toml:"shutter"`
	ModeList   string `toml:"mode_list"`
	Filmstrip  string `toml:"filmstrip"`
	GridLines  string `toml:"grid_lines"`
	Camera     string `toml:"camera"`
	Flash      string `toml:"flash"`
	HDR        string `toml:"hdr"`
	Fullscreen string `toml:"fullscreen"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     800,
		},
		Gesture: GestureConfig{
			SwipeTimeoutMS: 500,
			Slop:           24,
		},
		Preview: PreviewConfig{
			Source:   "pattern",
			FPS:      30,
			Rotation: 0,
		},
		Capture: CaptureConfig{
			Dir:   defaultCaptureDir(),
			Sound: true,
		},
		Playback: PlaybackConfig{
			HWAccel: "auto-safe",
			Volume:  100,
		},
		Keybinds: KeybindConfig{
			Shutter:    "Space",
			ModeList:   "M",
			Filmstrip:  "F",
			GridLines:  "G",
			Camera:     "C",
			Flash:      "L",
			HDR:        "H",
			Fullscreen: "Enter",
		},
	}
}

func defaultCaptureDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "viewfinder")
	}
	return filepath.Join(home, "Pictures", "viewfinder")
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "viewfinder"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
