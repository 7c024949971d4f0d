package app

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
		ok   bool
	}{
		{"Space", ebiten.KeySpace, true},
		{"enter", ebiten.KeyEnter, true},
		{"Return", ebiten.KeyEnter, true},
		{"M", ebiten.KeyM, true},
		{"g", ebiten.KeyG, true},
		{"z", ebiten.KeyZ, true},
		{"0", ebiten.KeyDigit0, true},
		{"7", ebiten.KeyDigit7, true},
		{"f13", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseKey(tt.name)
		if ok != tt.ok {
			t.Errorf("parseKey(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("parseKey(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
