package capture

import (
	"image"
	"image/color"
	"testing"
	"time"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	img.SetRGBA(1, 1, color.RGBA{R: 0x80, A: 0xFF})
	return img
}

func TestStoreSaveAndList(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	s.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}

	first, err := s.SavePNG(testImage())
	if err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	second, err := s.SavePNG(testImage())
	if err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if first == second {
		t.Fatal("two captures share a path")
	}

	list, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d entries, want 2", len(list))
	}

	latest, ok := s.Latest()
	if !ok {
		t.Fatal("Latest found nothing")
	}
	if latest.Path != list[0].Path {
		t.Errorf("latest %q != first listed %q", latest.Path, list[0].Path)
	}
}

func TestStoreEmpty(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	list, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("got %d entries, want 0", len(list))
	}
	if _, ok := s.Latest(); ok {
		t.Error("Latest reported a capture in an empty store")
	}
}
