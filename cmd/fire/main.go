//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/calistaint/fire-with-fire-game/internal/app"
	"github.com/calistaint/fire-with-fire-game/internal/sims/wildfire"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	difficulty, ok := wildfire.ParseDifficulty(cfg.Difficulty)
	if !ok {
		log.Fatalf("unknown difficulty %q", cfg.Difficulty)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	wcfg := wildfire.DefaultConfig()
	wcfg.Width = cfg.Width
	wcfg.Height = cfg.Height
	wcfg.Seed = seed
	wcfg.Difficulty = difficulty

	world := wildfire.NewWithConfig(wcfg)
	world.Reset(seed)

	game := app.New(world, cfg.Scale, cfg.TPS, seed)
	size := world.Size()

	ebiten.SetWindowTitle("fire with fire")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
