package wildfire

import "testing"

func TestTriggerIgnoresIneligibleTargets(t *testing.T) {
	world := newBareWorld(6, 6, CellGrassland)
	world.totalBurnable = 36
	world.cells[world.idx(1, 1)] = CellWater
	world.cells[world.idx(2, 2)] = CellHouse
	world.cells[world.idx(3, 3)] = CellFire
	world.cells[world.idx(4, 4)] = CellBurnt

	before := append([]Cell(nil), world.cells...)

	world.Trigger(-1, 0)
	world.Trigger(0, 6)
	world.Trigger(1, 1)
	world.Trigger(2, 2)
	world.Trigger(3, 3)
	world.Trigger(4, 4)

	for i, c := range world.cells {
		if c != before[i] {
			t.Fatalf("ineligible trigger mutated cell %d: %v -> %v", i, before[i], c)
		}
	}
	if world.Stats().BurnsUsed != 0 {
		t.Fatal("rejected triggers must not count as burns used")
	}
}

func TestTriggerNoOpAfterOutcome(t *testing.T) {
	world := newBareWorld(6, 6, CellGrassland)
	world.totalBurnable = 36
	world.defeat = true

	world.Trigger(3, 3)
	if world.Cell(3, 3) != CellGrassland {
		t.Fatal("trigger must be inert once the episode has resolved")
	}
}

func TestTriggerBudgetBoundsBurnSize(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		world := newBareWorld(21, 21, CellGrassland)
		world.rng.Seed(seed)
		world.totalBurnable = 21 * 21

		world.Trigger(10, 10)

		burned := 0
		for _, c := range world.cells {
			if c == CellControlledBurn {
				burned++
			}
		}
		if burned < 1 {
			t.Fatalf("seed %d: trigger on eligible terrain must convert the target", seed)
		}
		// Target cell plus at most BurnBudgetMax ember conversions.
		if limit := 1 + world.cfg.Params.BurnBudgetMax; burned > limit {
			t.Fatalf("seed %d: burn converted %d cells, budget caps it at %d", seed, burned, limit)
		}
	}
}

func TestTriggerNeverConvertsHousesOrWater(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 32
	world := NewWithConfig(cfg)

	for seed := int64(1); seed <= 30; seed++ {
		world.Reset(seed)

		houses, water, fires := 0, 0, 0
		world.Each(func(x, y int, c Cell) {
			switch c {
			case CellHouse:
				houses++
			case CellWater:
				water++
			case CellFire:
				fires++
			}
		})

		size := world.Size()
		for y := 0; y < size.H; y++ {
			for x := 0; x < size.W; x++ {
				world.Trigger(x, y)
			}
		}

		housesAfter, waterAfter, firesAfter := 0, 0, 0
		world.Each(func(x, y int, c Cell) {
			switch c {
			case CellHouse:
				housesAfter++
			case CellWater:
				waterAfter++
			case CellFire:
				firesAfter++
			}
		})
		if housesAfter != houses {
			t.Fatalf("seed %d: trigger consumed houses: %d -> %d", seed, houses, housesAfter)
		}
		if waterAfter != water {
			t.Fatalf("seed %d: trigger consumed water: %d -> %d", seed, water, waterAfter)
		}
		if firesAfter != fires {
			t.Fatalf("seed %d: trigger touched live fire: %d -> %d", seed, fires, firesAfter)
		}
	}
}
