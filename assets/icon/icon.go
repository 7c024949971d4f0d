package icon

import (
	"image"
	"image/color"
)

// Theme colors from the app
var (
	accentBlue = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	darkBG     = color.RGBA{R: 0x0A, G: 0x0A, B: 0x0C, A: 0xFF}
	bodyGrey   = color.RGBA{R: 0x2A, G: 0x2A, B: 0x32, A: 0xFF}
	lensDark   = color.RGBA{R: 0x10, G: 0x10, B: 0x16, A: 0xFF}
	glassCol   = color.RGBA{R: 0x40, G: 0x70, B: 0x90, A: 0xFF}
	glintCol   = color.RGBA{R: 0xC0, G: 0xD8, B: 0xE8, A: 0xA0}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, darkBG)
	drawBody(img, s)
	drawLens(img, s)

	return img
}

func drawBody(img *image.RGBA, s float64) {
	// Camera body — wide rounded rectangle across the middle
	fillRoundedRect(img, s*0.08, s*0.28, s*0.84, s*0.52, s*0.08, bodyGrey)

	// Viewfinder hump above the body, left of center
	fillRoundedRect(img, s*0.18, s*0.18, s*0.24, s*0.14, s*0.04, bodyGrey)

	// Shutter button on the top right
	fillRoundedRect(img, s*0.68, s*0.20, s*0.14, s*0.10, s*0.03, accentBlue)

	// Accent stripe along the body
	fillRect(img, int(s*0.08), int(s*0.38), int(s*0.84), int(s*0.05), accentBlue)
}

func drawLens(img *image.RGBA, s float64) {
	cx := s * 0.50
	cy := s * 0.54
	r := s * 0.20

	// Lens barrel, glass, and a highlight glint
	fillCircle(img, cx, cy, r*1.18, lensDark)
	fillCircle(img, cx, cy, r, glassCol)
	fillCircle(img, cx, cy, r*0.55, lensDark)
	fillCircle(img, cx-r*0.35, cy-r*0.35, r*0.18, glintCol)
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	x0 := int(xf)
	y0 := int(yf)
	x1 := int(xf + wf)
	y1 := int(yf + hf)
	r := rf
	bounds := img.Bounds()

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			// Check if inside rounded rect
			fx := float64(x)
			fy := float64(y)
			inside := true

			// Check corners
			if fx < xf+r && fy < yf+r {
				// Top-left corner
				dx := xf + r - fx
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy < yf+r {
				// Top-right corner
				dx := fx - (xf + wf - r)
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx < xf+r && fy > yf+hf-r {
				// Bottom-left corner
				dx := xf + r - fx
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy > yf+hf-r {
				// Bottom-right corner
				dx := fx - (xf + wf - r)
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			}

			if inside {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	x0 := int(cx - r)
	y0 := int(cy - r)
	x1 := int(cx + r + 1)
	y1 := int(cy + r + 1)
	r2 := r * r

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// Existing pixel
	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// Alpha blend
	alpha := a0
	invAlpha := 0xFFFF - alpha
	nr := (r0*alpha + er*invAlpha) / 0xFFFF
	ng := (g0*alpha + eg*invAlpha) / 0xFFFF
	nb := (b0*alpha + eb*invAlpha) / 0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
