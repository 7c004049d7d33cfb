package wildfire

// Cell enumerates the classification of a grid cell.
type Cell uint8

const (
	CellForestDense Cell = iota
	CellForestLight
	CellGrassland
	CellField
	CellHouse
	CellWater
	CellBurnt
	CellFire
	CellControlledBurn

	cellCount
)

// Flammability returns the fixed ignition weight for a classification.
// Water and ash never ignite; cells already burning report 1.
func (c Cell) Flammability() float64 {
	switch c {
	case CellForestDense:
		return 0.8
	case CellForestLight:
		return 0.6
	case CellGrassland:
		return 0.4
	case CellField:
		return 0.3
	case CellHouse:
		return 0.9
	case CellFire, CellControlledBurn:
		return 1
	default:
		return 0
	}
}

// ignitable reports whether wildfire may roll an ignition check against the
// cell. Burning, burnt, and water cells are excluded; houses are not.
func (c Cell) ignitable() bool {
	switch c {
	case CellFire, CellBurnt, CellControlledBurn, CellWater:
		return false
	}
	return true
}

// burnEligible reports whether a counter-burn may claim the cell. The
// exclusion set is the ignition one plus houses: an operator never torches a
// house on purpose.
func (c Cell) burnEligible() bool {
	return c.ignitable() && c != CellHouse
}

// burnable reports whether the cell still counts toward the surviving
// burnable census used for the defeat check and the forest-saved stat.
func (c Cell) burnable() bool {
	switch c {
	case CellWater, CellFire, CellBurnt, CellControlledBurn:
		return false
	}
	return true
}

func (c Cell) String() string {
	switch c {
	case CellForestDense:
		return "forest-dense"
	case CellForestLight:
		return "forest-light"
	case CellGrassland:
		return "grassland"
	case CellField:
		return "field"
	case CellHouse:
		return "house"
	case CellWater:
		return "water"
	case CellBurnt:
		return "burnt"
	case CellFire:
		return "fire"
	case CellControlledBurn:
		return "controlled-burn"
	default:
		return "unknown"
	}
}
