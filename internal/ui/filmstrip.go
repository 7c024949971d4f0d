package ui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/viewfinder/internal/cache"
	"github.com/depeter/viewfinder/internal/capture"
)

const filmstripThumbGap = 8

// Filmstrip is the capture browser panel along the top edge. It opens on a
// leftward swipe or the filmstrip key, shows thumbnails newest first, and
// opens the reviewer when a thumbnail is clicked.
type Filmstrip struct {
	// OnReview fires with the capture path when a thumbnail is clicked.
	OnReview func(path string)

	store  *capture.Store
	thumbs *cache.ThumbCache

	entries []capture.Entry
	width   int
	focused bool
	scroll  int // index of the leftmost visible thumbnail
}

func NewFilmstrip(store *capture.Store, thumbs *cache.ThumbCache, width int) *Filmstrip {
	return &Filmstrip{store: store, thumbs: thumbs, width: width}
}

func (f *Filmstrip) Resize(width int) {
	f.width = width
}

// Focus opens the panel and refreshes the capture listing.
func (f *Filmstrip) Focus() {
	f.focused = true
	f.Reload()
}

// Hide closes the panel.
func (f *Filmstrip) Hide() {
	f.focused = false
}

// Focused reports whether the panel is open.
func (f *Filmstrip) Focused() bool {
	return f.focused
}

// BackPressed closes the panel if open. Returns whether it consumed the event.
func (f *Filmstrip) BackPressed() bool {
	if !f.focused {
		return false
	}
	f.focused = false
	return true
}

// Reload re-lists the capture directory. Called on focus and after a capture.
func (f *Filmstrip) Reload() {
	entries, err := f.store.List()
	if err != nil {
		log.Printf("filmstrip: listing captures: %v", err)
		return
	}
	f.entries = entries
	if f.scroll > len(entries) {
		f.scroll = 0
	}
}

// Scroll shifts the visible window by delta thumbnails.
func (f *Filmstrip) Scroll(delta int) {
	f.scroll += delta
	if f.scroll < 0 {
		f.scroll = 0
	}
	if max := len(f.entries) - 1; f.scroll > max && max >= 0 {
		f.scroll = max
	}
}

// HandleClick routes a click. Clicks below an open panel close it.
func (f *Filmstrip) HandleClick(x, y int) bool {
	if !f.focused {
		return false
	}
	if y >= FilmstripPanelH {
		f.focused = false
		return true
	}
	thumbW := thumbSlotWidth()
	idx := f.scroll + x/thumbW
	if idx >= 0 && idx < len(f.entries) {
		path := f.entries[idx].Path
		if f.OnReview != nil {
			f.OnReview(path)
		}
	}
	return true
}

func (f *Filmstrip) Draw(dst *ebiten.Image) {
	if !f.focused {
		return
	}
	vector.DrawFilledRect(dst, 0, 0, float32(f.width), FilmstripPanelH, ColorBottomBar, false)

	if len(f.entries) == 0 {
		DrawTextCentered(dst, "No captures yet", float64(f.width)/2, FilmstripPanelH/2, FontSizeLabel, ColorTextDim)
		return
	}

	thumbW := thumbSlotWidth()
	x := filmstripThumbGap
	for i := f.scroll; i < len(f.entries) && x < f.width; i++ {
		f.drawThumb(dst, f.entries[i].Path, x)
		x += thumbW
	}
}

func (f *Filmstrip) drawThumb(dst *ebiten.Image, path string, x int) {
	img := f.thumbs.Get(path)
	if img == nil {
		// Kick off the decode; the placeholder fills in on a later frame.
		f.thumbs.LoadAsync(path, func(*ebiten.Image) {})
		vector.DrawFilledRect(dst, float32(x), filmstripThumbGap,
			float32(thumbSlotWidth()-filmstripThumbGap), FilmstripPanelH-2*filmstripThumbGap,
			ColorDisabled, false)
		return
	}
	op := &ebiten.DrawImageOptions{}
	b := img.Bounds()
	maxH := float64(FilmstripPanelH - 2*filmstripThumbGap)
	scale := maxH / float64(b.Dy())
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), filmstripThumbGap)
	dst.DrawImage(img, op)
}

func thumbSlotWidth() int {
	// Thumbnails are 4:3 landscape slots.
	return (FilmstripPanelH-2*filmstripThumbGap)*4/3 + filmstripThumbGap
}
