package wildfire

import (
	"log/slog"
	"math"
)

// Classification thresholds over the composite noise value, ordered
// water < field < grassland < light forest < dense forest.
const (
	thresholdWater       = -0.4
	thresholdField       = -0.15
	thresholdGrassland   = 0.05
	thresholdForestLight = 0.25
)

const placementAttempts = 50

// siteCoord picks a feature-center coordinate at least margin cells from
// either edge. Grids too small to honor the margin fall back to the full
// axis, so carving degrades gracefully instead of indexing out of range.
func (w *World) siteCoord(limit, margin int) int {
	if limit < 2*margin {
		return w.rng.Intn(limit)
	}
	return w.randRange(margin, limit-margin)
}

// generateTerrain classifies every cell from layered noise, then carves
// rivers, lakes, house clusters, and clearings, in that order. Water features
// must precede houses so no house lands in a riverbed.
func (w *World) generateTerrain() {
	field := newNoiseField(w.rng.Int63n(1000))

	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			// Small fixed jitter per cell breaks up grid-aligned artifacts.
			nx := float64(x)/float64(w.w) + w.rng.Float64()*0.05
			ny := float64(y)/float64(w.h) + w.rng.Float64()*0.05
			w.cells[w.idx(x, y)] = classify(field.sample(nx, ny))
		}
	}

	w.carveRivers()
	w.carveLakes()
	w.placeHouses()
	w.carveClearings()

	for i := range w.shades {
		w.shades[i] = uint8(w.rng.Intn(shadeBuckets))
	}
}

func classify(v float64) Cell {
	switch {
	case v < thresholdWater:
		return CellWater
	case v < thresholdField:
		return CellField
	case v < thresholdGrassland:
		return CellGrassland
	case v < thresholdForestLight:
		return CellForestLight
	default:
		return CellForestDense
	}
}

// carveRivers runs 1-3 biased random walks from a random edge, fattening the
// bed with a stochastic splash that decays with neighbor distance.
func (w *World) carveRivers() {
	for n := w.randRange(1, 3); n > 0; n-- {
		var x, y int
		horizontal := w.rng.Intn(2) == 0
		if horizontal {
			x, y = 0, w.randRange(w.h/4, 3*w.h/4)
		} else {
			x, y = w.randRange(w.w/4, 3*w.w/4), 0
		}
		drift := 1
		for steps := w.randRange(30, 80); steps > 0; steps-- {
			if w.inBounds(x, y) {
				w.cells[w.idx(x, y)] = CellWater
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						prob := 0.6 / (math.Abs(float64(dx)) + math.Abs(float64(dy)) + 0.5)
						if w.rng.Float64() < prob && w.inBounds(x+dx, y+dy) {
							w.cells[w.idx(x+dx, y+dy)] = CellWater
						}
					}
				}
			}
			if w.rng.Float64() < 0.3 {
				drift = w.randRange(-1, 1)
			}
			if horizontal {
				x++
				y += drift
			} else {
				y++
				x += drift
			}
			x = clamp(x, 0, w.w-1)
			y = clamp(y, 0, w.h-1)
		}
	}
}

// carveLakes stamps 1-3 roughly circular blobs. A lake center must land on a
// non-water cell; membership gets a jittered radius so shorelines wobble.
// Houses are never flooded (lakes are carved before houses today, but the
// guard keeps the order-independence of restarts honest).
func (w *World) carveLakes() {
	for n := w.randRange(1, 3); n > 0; n-- {
		placed := false
		for a := 0; a < placementAttempts; a++ {
			cx := w.siteCoord(w.w, 5)
			cy := w.siteCoord(w.h, 5)
			if w.cells[w.idx(cx, cy)] == CellWater {
				continue
			}
			radius := w.randRange(4, 8)
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					dist := math.Sqrt(float64(dx*dx + dy*dy))
					if dist > float64(radius)+(w.rng.Float64()*2-1) {
						continue
					}
					lx, ly := cx+dx, cy+dy
					if w.inBounds(lx, ly) && w.cells[w.idx(lx, ly)] != CellHouse {
						w.cells[w.idx(lx, ly)] = CellWater
					}
				}
			}
			placed = true
			break
		}
		if !placed {
			slog.Debug("lake placement exhausted attempts, skipping")
		}
	}
}

// placeHouses drops 3-7 clusters of 2-6 houses around centers that landed on
// grassland or field. Individual houses spill to small offsets but never onto
// water or an existing house.
func (w *World) placeHouses() {
	w.housesTotal = 0
	for n := w.randRange(3, 7); n > 0; n-- {
		placed := false
		for a := 0; a < placementAttempts; a++ {
			cx := w.siteCoord(w.w, 5)
			cy := w.siteCoord(w.h, 5)
			center := w.cells[w.idx(cx, cy)]
			if center != CellGrassland && center != CellField {
				continue
			}
			for houses := w.randRange(2, 6); houses > 0; houses-- {
				hx := cx + w.randRange(-3, 3)
				hy := cy + w.randRange(-3, 3)
				if !w.inBounds(hx, hy) {
					continue
				}
				c := w.cells[w.idx(hx, hy)]
				if c == CellWater || c == CellHouse {
					continue
				}
				w.cells[w.idx(hx, hy)] = CellHouse
				w.housesTotal++
			}
			placed = true
			break
		}
		if !placed {
			slog.Debug("house cluster placement exhausted attempts, skipping")
		}
	}
}

// carveClearings converts radius 2-5 patches of dense forest to grassland.
// Each attempt that misses dense forest is simply forfeited, yielding a
// slightly sparser map.
func (w *World) carveClearings() {
	for n := w.randRange(5, 10); n > 0; n-- {
		cx := w.siteCoord(w.w, 3)
		cy := w.siteCoord(w.h, 3)
		if w.cells[w.idx(cx, cy)] != CellForestDense {
			continue
		}
		size := w.randRange(2, 5)
		for dy := -size / 2; dy <= size/2; dy++ {
			for dx := -size / 2; dx <= size/2; dx++ {
				if !w.inBounds(cx+dx, cy+dy) {
					continue
				}
				i := w.idx(cx+dx, cy+dy)
				if w.cells[i] == CellForestDense && w.rng.Float64() < 0.6 {
					w.cells[i] = CellGrassland
				}
			}
		}
	}
}
