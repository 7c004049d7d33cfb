package wildfire

// SceneryKind enumerates decorative object types derived from the terrain.
type SceneryKind uint8

const (
	SceneryTree SceneryKind = iota
	SceneryGrassTuft
	SceneryHouse
)

// Placement anchors one decorative object to a grid cell. Offsets are
// sub-cell jitter in [-0.3, 0.3] so sprites don't sit on a visible lattice.
// Placements are visual only; the simulation never reads them.
type Placement struct {
	X, Y    int
	Kind    SceneryKind
	OffsetX float64
	OffsetY float64
}

// Scenery exposes the decorative placements derived at generation time.
func (w *World) Scenery() []Placement { return w.scenery }

// placeScenery derives decorative placements from the freshly generated
// classification: trees on most light-forest cells, grass tufts on every
// second field cell, and a marker per house.
func (w *World) placeScenery() {
	w.scenery = w.scenery[:0]
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			switch w.cells[w.idx(x, y)] {
			case CellForestLight:
				// Not every cell gets a tree, for a more natural look.
				if w.rng.Float64() < 0.75 {
					w.scenery = append(w.scenery, w.jitteredPlacement(x, y, SceneryTree))
				}
			case CellField:
				if (x+y)%2 == 0 {
					for n := w.randRange(1, 2); n > 0; n-- {
						w.scenery = append(w.scenery, w.jitteredPlacement(x, y, SceneryGrassTuft))
					}
				}
			case CellHouse:
				w.scenery = append(w.scenery, Placement{X: x, Y: y, Kind: SceneryHouse})
			}
		}
	}
}

func (w *World) jitteredPlacement(x, y int, kind SceneryKind) Placement {
	return Placement{
		X:       x,
		Y:       y,
		Kind:    kind,
		OffsetX: w.rng.Float64()*0.6 - 0.3,
		OffsetY: w.rng.Float64()*0.6 - 0.3,
	}
}
