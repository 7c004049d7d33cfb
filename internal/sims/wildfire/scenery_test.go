package wildfire

import "testing"

func TestSceneryAnchorsMatchTerrain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 32
	world := NewWithConfig(cfg)
	world.rng.Seed(11)
	world.generateTerrain()
	world.placeScenery()

	houseMarkers := 0
	for _, p := range world.Scenery() {
		cell := world.Cell(p.X, p.Y)
		switch p.Kind {
		case SceneryTree:
			if cell != CellForestLight {
				t.Fatalf("tree anchored to %v at (%d,%d)", cell, p.X, p.Y)
			}
		case SceneryGrassTuft:
			if cell != CellField {
				t.Fatalf("grass tuft anchored to %v at (%d,%d)", cell, p.X, p.Y)
			}
			if (p.X+p.Y)%2 != 0 {
				t.Fatalf("grass tuft on odd-parity cell (%d,%d)", p.X, p.Y)
			}
		case SceneryHouse:
			houseMarkers++
			if cell != CellHouse {
				t.Fatalf("house marker anchored to %v at (%d,%d)", cell, p.X, p.Y)
			}
			if p.OffsetX != 0 || p.OffsetY != 0 {
				t.Fatal("house markers sit on the cell center")
			}
		}
		if p.OffsetX < -0.3 || p.OffsetX > 0.3 || p.OffsetY < -0.3 || p.OffsetY > 0.3 {
			t.Fatalf("placement offset (%f,%f) escapes the cell", p.OffsetX, p.OffsetY)
		}
	}
	if houseMarkers != world.HousesTotal() {
		t.Fatalf("house markers %d disagree with placed houses %d", houseMarkers, world.HousesTotal())
	}
}
