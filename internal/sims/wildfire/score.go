package wildfire

// Stats summarizes an episode outcome. All fields derive from the current
// grid plus the burnable total captured at generation time.
type Stats struct {
	HousesSaved int
	ForestSaved float64 // percentage of the starting burnable area
	Score       int
	BurnsUsed   int
}

// Stats recomputes the live statistics. Safe to call after the episode has
// resolved; it never mutates the world.
func (w *World) Stats() Stats {
	houses := 0
	remaining := 0
	for _, c := range w.cells {
		if c == CellHouse {
			houses++
		}
		if c.burnable() {
			remaining++
		}
	}
	s := Stats{HousesSaved: houses, BurnsUsed: w.burnsUsed}
	if w.totalBurnable > 0 {
		s.ForestSaved = float64(remaining) / float64(w.totalBurnable) * 100
	}
	s.Score = houses*100 + int(s.ForestSaved*10)
	return s
}
