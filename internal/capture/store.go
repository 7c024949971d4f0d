// Package capture persists captured frames to disk and lists them for the
// filmstrip.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const nameLayout = "20060102_150405.000"

// Entry is one captured file, newest first in listings.
type Entry struct {
	Path  string
	Taken time.Time
}

// Store keeps captures as PNG files in a single directory.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates the capture directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("capture dir: %w", err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

// Dir returns the capture directory.
func (s *Store) Dir() string {
	return s.dir
}

// SavePNG writes img as a new timestamped capture and returns its path.
func (s *Store) SavePNG(img image.Image) (string, error) {
	name := "IMG_" + strings.ReplaceAll(s.now().Format(nameLayout), ".", "_") + ".png"
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create capture: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("encode capture: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// List returns all captures, newest first.
func (s *Store) List() ([]Entry, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var out []Entry
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".png") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, Entry{
			Path:  filepath.Join(s.dir, e.Name()),
			Taken: info.ModTime(),
		})
	}
	// Names embed the capture timestamp, so they break mod-time ties.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Taken.Equal(out[j].Taken) {
			return out[i].Path > out[j].Path
		}
		return out[i].Taken.After(out[j].Taken)
	})
	return out, nil
}

// Latest returns the newest capture, if any.
func (s *Store) Latest() (Entry, bool) {
	list, err := s.List()
	if err != nil || len(list) == 0 {
		return Entry{}, false
	}
	return list[0], true
}
