package app

import "flag"

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Scale      int
	TPS        int
	Seed       int64
	Width      int
	Height     int
	Difficulty string
}

// NewConfig returns a Config populated with sensible defaults. A zero seed
// means "pick one from the clock" at startup.
func NewConfig() *Config {
	return &Config{Scale: 16, TPS: 60, Seed: 0, Width: 80, Height: 45, Difficulty: "normal"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "updates per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "island seed (0 = random)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Difficulty, "difficulty", c.Difficulty, "spread rate: easy, normal, or hard")
}
