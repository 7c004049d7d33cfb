package wildfire

// Trigger starts a controlled burn at (x, y). It is the only mutating entry
// point exposed to the input layer and silently ignores out-of-range
// coordinates, ineligible cells, and resolved episodes — the ray-to-grid
// projection upstream may legitimately miss.
//
// The burn spends a random budget of ember units through a breadth-first
// frontier: each eligible neighbor of a burning cell converts with probability
// flammability * BurnFactor while budget remains, producing a self-limiting,
// randomly shaped firebreak rather than a fixed-radius stamp.
func (w *World) Trigger(x, y int) {
	if w.Over() || !w.inBounds(x, y) {
		return
	}
	start := w.idx(x, y)
	if !w.cells[start].burnEligible() {
		return
	}
	w.cells[start] = CellControlledBurn
	w.burnsUsed++

	budget := w.randRange(w.cfg.Params.BurnBudgetMin, w.cfg.Params.BurnBudgetMax)
	queue := [][2]int{{x, y}}
	for len(queue) > 0 && budget > 0 {
		cx, cy := queue[0][0], queue[0][1]
		queue = queue[1:]
		for _, off := range neighborOffsets {
			if budget == 0 {
				break
			}
			nx, ny := cx+off[0], cy+off[1]
			if !w.inBounds(nx, ny) {
				continue
			}
			n := w.idx(nx, ny)
			c := w.cells[n]
			if !c.burnEligible() {
				continue
			}
			if w.rng.Float64() < c.Flammability()*w.cfg.Params.BurnFactor {
				w.cells[n] = CellControlledBurn
				queue = append(queue, [2]int{nx, ny})
				budget--
			}
		}
	}
	w.updateDisplay()
}
