package wildfire

import (
	"log/slog"
	"math/rand"

	"github.com/calistaint/fire-with-fire-game/internal/core"
)

// World holds the full state of one wildfire episode: the classification
// grid, the per-cell ash timers, and the spread clock. A single caller owns
// the world; nothing here is safe for concurrent mutation.
type World struct {
	cfg Config

	w, h int

	cells     []Cell
	ashTimers []float64
	shades    []uint8
	display   []uint8

	clock *core.SpreadClock

	totalBurnable int
	housesTotal   int
	burnsUsed     int

	victory bool
	defeat  bool

	scenery []Placement

	rng *rand.Rand
}

// New returns a wildfire world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a wildfire world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	total := cfg.Width * cfg.Height
	if total < 0 {
		total = 0
	}
	w := &World{
		cfg:       cfg,
		w:         cfg.Width,
		h:         cfg.Height,
		cells:     make([]Cell, total),
		ashTimers: make([]float64, total),
		shades:    make([]uint8, total),
		display:   make([]uint8, total),
		clock:     core.NewSpreadClock(cfg.Difficulty.SpreadDelay()),
		rng:       rand.New(rand.NewSource(cfg.Seed)),
	}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "wildfire" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the packed display buffer consumed by renderers.
func (w *World) Cells() []uint8 { return w.display }

// Cell returns the classification at (x, y); water for out-of-range reads so
// callers sampling past the island edge see ocean.
func (w *World) Cell(x, y int) Cell {
	if !w.inBounds(x, y) {
		return CellWater
	}
	return w.cells[w.idx(x, y)]
}

// AshAge returns the accumulated burn time at (x, y) in 60 Hz frame units.
// It is meaningful only while the cell classifies as fire.
func (w *World) AshAge(x, y int) float64 {
	if !w.inBounds(x, y) {
		return 0
	}
	return w.ashTimers[w.idx(x, y)]
}

// Each calls fn for every cell in row-major order.
func (w *World) Each(fn func(x, y int, c Cell)) {
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			fn(x, y, w.cells[y*w.w+x])
		}
	}
}

// HousesTotal reports how many house cells the generator placed.
func (w *World) HousesTotal() int { return w.housesTotal }

// Difficulty reports the currently configured difficulty.
func (w *World) Difficulty() Difficulty { return w.cfg.Difficulty }

// SetDifficulty changes the spread rate. It takes effect on the next Reset,
// matching the episode lifecycle: difficulty is fixed before setup.
func (w *World) SetDifficulty(d Difficulty) {
	w.cfg.Difficulty = d
}

// Victory reports whether the fire has been fully contained.
func (w *World) Victory() bool { return w.victory }

// Defeat reports whether too little of the island survived.
func (w *World) Defeat() bool { return w.defeat }

// Over reports whether the episode has resolved either way.
func (w *World) Over() bool { return w.victory || w.defeat }

// Reset builds a fresh island and ignites the starting fires using
// deterministic randomness. The previous episode state is discarded wholesale.
func (w *World) Reset(seed int64) {
	if w.w <= 0 || w.h <= 0 {
		return
	}
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)

	total := w.w * w.h
	for i := 0; i < total; i++ {
		w.cells[i] = CellForestDense
		w.ashTimers[i] = 0
		w.shades[i] = 0
		w.display[i] = 0
	}
	w.victory = false
	w.defeat = false
	w.burnsUsed = 0

	w.generateTerrain()
	w.placeScenery()

	w.totalBurnable = 0
	for i := 0; i < total; i++ {
		if w.cells[i] != CellWater {
			w.totalBurnable++
		}
	}

	w.clock = core.NewSpreadClock(w.cfg.Difficulty.SpreadDelay())
	w.igniteStartingFires()
	w.updateDisplay()
}

// Update advances the episode by one frame of dt seconds. Ash aging and
// counter-burn decay run every frame; ignition and the defeat census run only
// when the spread clock fires. A resolved episode no longer mutates.
func (w *World) Update(dt float64) {
	if w.w <= 0 || w.h <= 0 || w.Over() {
		return
	}

	w.ageFire(dt)

	if w.clock.Advance(dt) {
		w.spreadFire()
		if float64(w.burnableLeft()) < float64(w.totalBurnable)*w.cfg.Params.DefeatRatio {
			w.defeat = true
		}
	}

	w.decayControlledBurns(dt)

	if !w.defeat && !w.hasFire() {
		w.victory = true
	}

	w.updateDisplay()
}

// igniteStartingFires places two fire sources on random border cells, each
// with a small splash of extra ignitions. A source that cannot find a
// flammable border cell within its attempt budget is skipped.
func (w *World) igniteStartingFires() {
	const attempts = 100
	for source := 0; source < 2; source++ {
		found := false
		for a := 0; a < attempts; a++ {
			var sx, sy int
			switch w.rng.Intn(4) {
			case 0:
				sx, sy = w.rng.Intn(w.w), 0
			case 1:
				sx, sy = w.w-1, w.rng.Intn(w.h)
			case 2:
				sx, sy = w.rng.Intn(w.w), w.h-1
			default:
				sx, sy = 0, w.rng.Intn(w.h)
			}
			i := w.idx(sx, sy)
			if w.cells[i].Flammability() <= 0 || w.cells[i] == CellFire {
				continue
			}
			w.cells[i] = CellFire
			w.ashTimers[i] = 0
			w.splashFire(sx, sy)
			found = true
			break
		}
		if !found {
			slog.Warn("no flammable border cell for fire source", "source", source)
		}
	}
}

func (w *World) splashFire(sx, sy int) {
	for n := w.randRange(1, 3); n > 0; n-- {
		fx := clamp(sx+w.randRange(-1, 1), 0, w.w-1)
		fy := clamp(sy+w.randRange(-1, 1), 0, w.h-1)
		i := w.idx(fx, fy)
		c := w.cells[i]
		if c != CellWater && c != CellFire && c != CellBurnt && c.Flammability() > 0 {
			w.cells[i] = CellFire
			w.ashTimers[i] = 0
		}
	}
}

func (w *World) hasFire() bool {
	for _, c := range w.cells {
		if c == CellFire {
			return true
		}
	}
	return false
}

func (w *World) burnableLeft() int {
	count := 0
	for _, c := range w.cells {
		if c.burnable() {
			count++
		}
	}
	return count
}

func (w *World) idx(x, y int) int { return y*w.w + x }

func (w *World) inBounds(x, y int) bool {
	return x >= 0 && x < w.w && y >= 0 && y < w.h
}

// randRange returns a uniform value in [lo, hi], collapsing to lo when the
// range is empty. Callers using the result as a grid index must pass a lo
// that is itself in bounds; ranges derived from the grid size go through
// siteCoord instead.
func (w *World) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Intn(hi-lo+1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
