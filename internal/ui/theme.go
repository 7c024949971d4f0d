package ui

import "image/color"

// Colors — dark viewfinder theme
var (
	ColorBackground       = color.RGBA{R: 0x0A, G: 0x0A, B: 0x0C, A: 0xFF}
	ColorBottomBar        = color.RGBA{R: 0x14, G: 0x14, B: 0x18, A: 0xF0}
	ColorBottomBarPressed = color.RGBA{R: 0x24, G: 0x24, B: 0x2C, A: 0xF0}
	ColorCover            = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorAccent           = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorShutter          = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF4, A: 0xFF}
	ColorShutterVideo     = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
	ColorText             = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextDim          = color.RGBA{R: 0x80, G: 0x80, B: 0x8C, A: 0xFF}
	ColorDisabled         = color.RGBA{R: 0x48, G: 0x48, B: 0x50, A: 0xFF}
	ColorGridLine         = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x60}
	ColorScrim            = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
)

// Layout constants
const (
	BottomBarHeight = 96
	ShutterRadius   = 34
	OptionRadius    = 18
	OptionGap       = 22

	ModeListWidth  = 260
	ModeItemHeight = 64

	FilmstripPanelH = 72

	FontSizeLabel = 16
	FontSizeMode  = 22
	FontSizeCover = 30
)
