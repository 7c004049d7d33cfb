package wildfire

var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// spreadFire evaluates one ignition pass over the whole grid. Every fire cell
// rolls an independent chance against each ignitable neighbor; the winners are
// collected first and committed only after the scan, so a cell ignited this
// tick can never ignite others within the same tick.
func (w *World) spreadFire() {
	var pending []int
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			if w.cells[w.idx(x, y)] != CellFire {
				continue
			}
			for _, off := range neighborOffsets {
				nx, ny := x+off[0], y+off[1]
				if !w.inBounds(nx, ny) {
					continue
				}
				n := w.idx(nx, ny)
				c := w.cells[n]
				if !c.ignitable() {
					continue
				}
				if w.rng.Float64() < c.Flammability()*w.cfg.Params.SpreadFactor {
					pending = append(pending, n)
				}
			}
		}
	}
	for _, i := range pending {
		w.cells[i] = CellFire
		w.ashTimers[i] = 0
	}
}

// ageFire accumulates burn time on every fire cell and converts the ones past
// the ash threshold to burnt, fixing their ash shade at that moment so the
// rendered gray stays stable afterwards.
func (w *World) ageFire(dt float64) {
	for i, c := range w.cells {
		if c != CellFire {
			continue
		}
		w.ashTimers[i] += dt * 60
		if w.ashTimers[i] >= w.cfg.Params.MaxAshTimer {
			w.cells[i] = CellBurnt
			w.ashTimers[i] = 0
			w.shades[i] = uint8(w.rng.Intn(shadeBuckets))
		}
	}
}

// decayControlledBurns settles controlled-burn cells to ash with a small
// frame-scaled chance each update, independent of the spread gate.
func (w *World) decayControlledBurns(dt float64) {
	chance := w.cfg.Params.BurnDecayChance * dt * 60
	for i, c := range w.cells {
		if c != CellControlledBurn {
			continue
		}
		if w.rng.Float64() < chance {
			w.cells[i] = CellBurnt
			w.ashTimers[i] = 0
			w.shades[i] = uint8(w.rng.Intn(shadeBuckets))
		}
	}
}
