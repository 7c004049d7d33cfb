package wildfire

import "strconv"

// Difficulty selects how frequently the fire gets to spread.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

// SpreadDelay returns the spread-gate threshold in 60 Hz frame units.
func (d Difficulty) SpreadDelay() float64 {
	switch d {
	case DifficultyEasy:
		return 55
	case DifficultyHard:
		return 20
	default:
		return 35
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "normal"
	}
}

// ParseDifficulty maps a flag-style name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch s {
	case "easy":
		return DifficultyEasy, true
	case "normal":
		return DifficultyNormal, true
	case "hard":
		return DifficultyHard, true
	}
	return DifficultyNormal, false
}

// Params holds the tuned probabilities and thresholds of the simulation.
// The values are part of the game balance contract and are not re-tuned here.
type Params struct {
	SpreadFactor    float64 // scales flammability into a per-check ignition chance
	BurnFactor      float64 // same, for counter-burn conversion
	BurnBudgetMin   int     // minimum ember units per counter-burn
	BurnBudgetMax   int     // maximum ember units per counter-burn
	BurnDecayChance float64 // per-frame chance a controlled burn settles to ash
	MaxAshTimer     float64 // frame units a cell burns before turning to ash
	DefeatRatio     float64 // burnable fraction below which the episode is lost
}

// Config controls the wildfire simulation dimensions and tuning.
type Config struct {
	Width  int
	Height int

	Seed int64

	Difficulty Difficulty

	Params Params
}

// DefaultConfig returns the standard island configuration.
func DefaultConfig() Config {
	return Config{
		Width:      80,
		Height:     45,
		Seed:       1337,
		Difficulty: DifficultyNormal,
		Params: Params{
			SpreadFactor:    0.39,
			BurnFactor:      0.4,
			BurnBudgetMin:   10,
			BurnBudgetMax:   20,
			BurnDecayChance: 0.2,
			MaxAshTimer:     420,
			DefeatRatio:     0.15,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["difficulty"]; ok {
		if parsed, ok := ParseDifficulty(v); ok {
			c.Difficulty = parsed
		}
	}
	if v, ok := cfg["spread_factor"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SpreadFactor = parsed
		}
	}
	if v, ok := cfg["burn_factor"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.BurnFactor = parsed
		}
	}
	if v, ok := cfg["burn_budget_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.BurnBudgetMin = parsed
		}
	}
	if v, ok := cfg["burn_budget_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.BurnBudgetMax = parsed
		}
	}
	if c.Params.BurnBudgetMax < c.Params.BurnBudgetMin {
		c.Params.BurnBudgetMax = c.Params.BurnBudgetMin
	}
	if v, ok := cfg["max_ash_timer"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.MaxAshTimer = parsed
		}
	}
	if v, ok := cfg["defeat_ratio"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.DefeatRatio = parsed
		}
	}
	return c
}
