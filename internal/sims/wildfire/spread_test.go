package wildfire

import "testing"

// chebyshev returns the chessboard distance between two cells.
func chebyshev(ax, ay, bx, by int) int {
	dx := ax - bx
	if dx < 0 {
		dx = -dx
	}
	dy := ay - by
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

func TestWaterAndAshNonFlammable(t *testing.T) {
	if CellWater.Flammability() != 0 {
		t.Fatal("water must have zero flammability")
	}
	if CellBurnt.Flammability() != 0 {
		t.Fatal("ash must have zero flammability")
	}

	world := newBareWorld(5, 5, CellWater)
	world.cells[world.idx(2, 2)] = CellFire
	world.totalBurnable = 1

	for i := 0; i < 50; i++ {
		world.Update(1.0 / 60)
	}
	world.Each(func(x, y int, c Cell) {
		if c == CellFire && (x != 2 || y != 2) {
			t.Fatalf("water at (%d,%d) caught fire", x, y)
		}
	})
}

func TestIsolatedFireAshesAfterExactTimer(t *testing.T) {
	// 5x5: fire in the middle, walled in by water, grassland outside the
	// wall so the defeat census stays comfortably above threshold.
	world := newBareWorld(5, 5, CellGrassland)
	for _, off := range neighborOffsets {
		world.cells[world.idx(2+off[0], 2+off[1])] = CellWater
	}
	world.cells[world.idx(2, 2)] = CellFire
	world.totalBurnable = 17 // 16 grassland + the burning cell

	// dt of 0.5s accumulates 30 frame units per update: 420/30 = 14 updates.
	const dt = 0.5
	for i := 1; i <= 13; i++ {
		world.Update(dt)
		if world.Cell(2, 2) != CellFire {
			t.Fatalf("fire ashed early, after %d updates", i)
		}
	}
	world.Update(dt)
	if world.Cell(2, 2) != CellBurnt {
		t.Fatal("fire should turn to ash exactly when the timer elapses")
	}
	if !world.Victory() {
		t.Fatal("victory must follow once no fire remains")
	}
	world.Each(func(x, y int, c Cell) {
		if chebyshev(x, y, 2, 2) > 1 && c != CellGrassland {
			t.Fatalf("walled-in fire leaked to (%d,%d)", x, y)
		}
	})
}

func TestIgnitionNeverJumpsTwoCellsInOneTick(t *testing.T) {
	// One gated spread pass may only reach the original fire's own
	// neighborhood: pending ignitions commit after the scan.
	const dt = 35.0 / 60 // crosses the normal-difficulty gate every update
	for seed := int64(1); seed <= 20; seed++ {
		world := newBareWorld(7, 7, CellGrassland)
		world.rng.Seed(seed)
		world.cells[world.idx(3, 3)] = CellFire
		world.totalBurnable = 49

		world.Update(dt)
		world.Each(func(x, y int, c Cell) {
			if c == CellFire && chebyshev(x, y, 3, 3) > 1 {
				t.Fatalf("seed %d: cell (%d,%d) ignited beyond the pre-tick frontier", seed, x, y)
			}
		})
	}
}

func TestFireContainedByWaterRing(t *testing.T) {
	// 10x10 grassland with a water ring at chessboard distance 3 from
	// (5,5) and a single fire at the center. The fire must burn itself out
	// inside the ring and resolve as a victory.
	world := newBareWorld(10, 10, CellGrassland)
	world.Each(func(x, y int, c Cell) {
		if chebyshev(x, y, 5, 5) == 3 {
			world.cells[world.idx(x, y)] = CellWater
		}
	})
	world.cells[world.idx(5, 5)] = CellFire
	world.totalBurnable = 0
	for _, c := range world.cells {
		if c != CellWater {
			world.totalBurnable++
		}
	}

	const dt = 35.0 / 60
	for i := 0; i < 200 && !world.Over(); i++ {
		world.Update(dt)
		world.Each(func(x, y int, c Cell) {
			if c == CellFire && chebyshev(x, y, 5, 5) > 2 {
				t.Fatalf("fire escaped the water ring at (%d,%d)", x, y)
			}
		})
	}
	if world.hasFire() {
		t.Fatal("fire still alive after 200 updates inside a sealed ring")
	}
	if !world.Victory() {
		t.Fatal("sealed-ring episode must end in victory")
	}
	if world.Defeat() {
		t.Fatal("sealed-ring episode must not register a defeat")
	}
}

func TestDefeatWhenBurnableDropsBelowThreshold(t *testing.T) {
	world := newBareWorld(5, 5, CellFire)
	world.cells[world.idx(0, 0)] = CellGrassland
	world.totalBurnable = 25

	// One grassland cell out of 25 is well under the 15% defeat line, so
	// the first gated census must end the episode.
	world.Update(35.0 / 60)
	if !world.Defeat() {
		t.Fatal("expected defeat once burnable terrain fell below threshold")
	}
	if world.Victory() {
		t.Fatal("defeat and victory are mutually exclusive")
	}
}

func TestControlledBurnsSettleToAsh(t *testing.T) {
	// A lone walled-in fire keeps the episode unresolved while the
	// controlled burns roll their per-frame decay.
	world := newBareWorld(7, 7, CellGrassland)
	for _, off := range neighborOffsets {
		world.cells[world.idx(1+off[0], 1+off[1])] = CellWater
	}
	world.cells[world.idx(1, 1)] = CellFire
	burns := [][2]int{{5, 5}, {5, 4}, {4, 5}}
	for _, b := range burns {
		world.cells[world.idx(b[0], b[1])] = CellControlledBurn
	}
	world.totalBurnable = 0
	for _, c := range world.cells {
		if c.burnable() {
			world.totalBurnable++
		}
	}

	for i := 0; i < 400; i++ {
		world.Update(1.0 / 60)
	}
	for _, b := range burns {
		if got := world.Cell(b[0], b[1]); got != CellBurnt {
			t.Fatalf("controlled burn at (%d,%d) never settled, still %v", b[0], b[1], got)
		}
	}
}
