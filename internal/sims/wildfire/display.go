package wildfire

import "image/color"

const (
	displayClassMask  = 0x0f
	displayShadeShift = 4

	shadeBuckets = 8
)

var wildfirePalette = buildWildfirePalette()

// Palette exposes the color palette matching the packed display buffer.
func (w *World) Palette() []color.RGBA {
	return wildfirePalette
}

// updateDisplay repacks the display buffer: classification in the low nibble,
// shade bucket above it. Terrain shades were fixed at generation, ash shades
// at burn-out; fire shades track the ash timer so flames darken as they age.
func (w *World) updateDisplay() {
	maxAsh := w.cfg.Params.MaxAshTimer
	for i, c := range w.cells {
		shade := w.shades[i]
		if c == CellFire && maxAsh > 0 {
			b := int(w.ashTimers[i] / maxAsh * shadeBuckets)
			if b >= shadeBuckets {
				b = shadeBuckets - 1
			}
			shade = uint8(b)
		}
		w.display[i] = shade<<displayShadeShift | uint8(c)
	}
}

func buildWildfirePalette() []color.RGBA {
	palette := make([]color.RGBA, shadeBuckets<<displayShadeShift)
	for i := range palette {
		c := Cell(i & displayClassMask)
		if c >= cellCount {
			continue
		}
		shade := uint8(i >> displayShadeShift)
		palette[i] = cellColor(c, shade)
	}
	return palette
}

func cellColor(c Cell, shade uint8) color.RGBA {
	// Per-cell variation of a few units keeps flat terrain from banding.
	delta := int(shade)*2 - 7
	switch c {
	case CellForestDense:
		return vary(94, 178, 94, delta)
	case CellForestLight:
		return vary(14, 99, 14, delta)
	case CellGrassland:
		return vary(54, 162, 0, delta)
	case CellField:
		return vary(170, 130, 0, delta)
	case CellHouse:
		return vary(90, 30, 10, delta)
	case CellWater:
		return vary(60, 100, 180, delta)
	case CellBurnt:
		v := uint8(50 + int(shade)*3)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	case CellFire:
		// Young fire burns yellow and cools toward deep red with age.
		t := float64(shade) / (shadeBuckets - 1)
		return color.RGBA{R: 180, G: uint8(180 - t*150), B: 0, A: 255}
	case CellControlledBurn:
		return vary(180, 90, 0, delta)
	default:
		return color.RGBA{A: 255}
	}
}

func vary(r, g, b, delta int) color.RGBA {
	return color.RGBA{
		R: clampChannel(r + delta),
		G: clampChannel(g + delta),
		B: clampChannel(b + delta),
		A: 255,
	}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
