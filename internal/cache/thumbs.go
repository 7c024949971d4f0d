// Package cache provides an in-memory thumbnail cache for the filmstrip.
// Decoding and downscaling happen off the game loop; thumbnails stay resident
// once built.
package cache

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// ThumbCache builds and retains downscaled thumbnails keyed by file path.
type ThumbCache struct {
	maxW, maxH int
	memory     sync.Map // path -> *ebiten.Image
	loading    sync.Map // path -> *loadEntry (in-flight dedup with waiters)
	sem        chan struct{}
}

// loadEntry tracks in-flight decodes and their waiters.
type loadEntry struct {
	mu        sync.Mutex
	callbacks []func(*ebiten.Image)
}

// NewThumbCache creates a cache producing thumbnails that fit maxW x maxH.
func NewThumbCache(maxW, maxH int) *ThumbCache {
	return &ThumbCache{
		maxW: maxW,
		maxH: maxH,
		sem:  make(chan struct{}, 4),
	}
}

// Get returns a cached thumbnail if available, or nil.
func (tc *ThumbCache) Get(path string) *ebiten.Image {
	if v, ok := tc.memory.Load(path); ok {
		return v.(*ebiten.Image)
	}
	return nil
}

// LoadAsync builds the thumbnail for path in the background. The callback is
// called with the thumbnail when ready (may be called from a goroutine).
func (tc *ThumbCache) LoadAsync(path string, callback func(*ebiten.Image)) {
	if v, ok := tc.memory.Load(path); ok {
		callback(v.(*ebiten.Image))
		return
	}

	// Dedup in-flight decodes — add callback to existing entry or create new one
	entry := &loadEntry{}
	entry.callbacks = append(entry.callbacks, callback)

	if existing, loaded := tc.loading.LoadOrStore(path, entry); loaded {
		existingEntry := existing.(*loadEntry)
		existingEntry.mu.Lock()
		existingEntry.callbacks = append(existingEntry.callbacks, callback)
		existingEntry.mu.Unlock()
		return
	}

	go func() {
		defer tc.loading.Delete(path)

		tc.sem <- struct{}{}
		defer func() { <-tc.sem }()

		img, err := tc.buildThumb(path)
		if err != nil {
			return
		}

		eimg := ebiten.NewImageFromImage(img)
		tc.memory.Store(path, eimg)

		entry.mu.Lock()
		cbs := make([]func(*ebiten.Image), len(entry.callbacks))
		copy(cbs, entry.callbacks)
		entry.mu.Unlock()

		for _, cb := range cbs {
			cb(eimg)
		}
	}()
}

func (tc *ThumbCache) buildThumb(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	if b.Dx() <= tc.maxW && b.Dy() <= tc.maxH {
		return src, nil
	}

	scale := float64(tc.maxW) / float64(b.Dx())
	if s := float64(tc.maxH) / float64(b.Dy()); s < scale {
		scale = s
	}
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}

// Forget drops a single path, e.g. after a retake deleted the file.
func (tc *ThumbCache) Forget(path string) {
	tc.memory.Delete(path)
}
