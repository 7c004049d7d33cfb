package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/calistaint/fire-with-fire-game/internal/app"
	"github.com/calistaint/fire-with-fire-game/internal/core"
	"github.com/calistaint/fire-with-fire-game/internal/sims/wildfire"

	"github.com/gdamore/tcell/v2"
)

// cellGlyphs maps each classification to its terminal representation.
var cellGlyphs = map[wildfire.Cell]struct {
	r     rune
	style tcell.Style
}{
	wildfire.CellForestDense:    {'T', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	wildfire.CellForestLight:    {'t', tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)},
	wildfire.CellGrassland:      {',', tcell.StyleDefault.Foreground(tcell.ColorLightGreen)},
	wildfire.CellField:          {'.', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
	wildfire.CellHouse:          {'H', tcell.StyleDefault.Foreground(tcell.ColorMaroon)},
	wildfire.CellWater:          {'~', tcell.StyleDefault.Foreground(tcell.ColorBlue)},
	wildfire.CellBurnt:          {'x', tcell.StyleDefault.Foreground(tcell.ColorGray)},
	wildfire.CellFire:           {'*', tcell.StyleDefault.Foreground(tcell.ColorRed)},
	wildfire.CellControlledBurn: {'+', tcell.StyleDefault.Foreground(tcell.ColorOrange)},
}

type termGame struct {
	screen tcell.Screen
	world  *wildfire.World
	paused bool
	seed   int64
}

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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	g := &termGame{screen: screen, world: world, seed: seed}
	g.run(cfg.TPS)
}

func (g *termGame) run(tps int) {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	step := core.NewFixedStep(tps)
	dt := 1.0 / float64(tps)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if quit := g.handleEvent(ev); quit {
				return
			}
		default:
		}
		if step.ShouldStep() {
			if !g.paused {
				g.world.Update(dt)
			}
			g.draw()
		}
		time.Sleep(time.Millisecond)
	}
}

func (g *termGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyEscape:
			g.paused = !g.paused
		case ev.Rune() == 'q':
			return true
		case ev.Rune() == ' ':
			g.paused = !g.paused
		case ev.Rune() == 'r':
			g.world.Reset(g.seed)
			g.paused = false
		case ev.Rune() == 's':
			g.seed = time.Now().UnixNano()
			g.world.Reset(g.seed)
			g.paused = false
		case ev.Rune() == '1':
			g.restartWith(wildfire.DifficultyEasy)
		case ev.Rune() == '2':
			g.restartWith(wildfire.DifficultyNormal)
		case ev.Rune() == '3':
			g.restartWith(wildfire.DifficultyHard)
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 && !g.paused {
			x, y := ev.Position()
			g.world.Trigger(x, y-1)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return false
}

func (g *termGame) restartWith(d wildfire.Difficulty) {
	g.world.SetDifficulty(d)
	g.world.Reset(g.seed)
	g.paused = false
}

// draw paints the status line on row 0 and the island below it, so mouse
// clicks map to grid cells with a one-row offset.
func (g *termGame) draw() {
	g.screen.Clear()

	stats := g.world.Stats()
	status := fmt.Sprintf("houses %d/%d  forest %.1f%%  score %d  [%s]",
		stats.HousesSaved, g.world.HousesTotal(), stats.ForestSaved, stats.Score, g.world.Difficulty())
	switch {
	case g.world.Victory():
		status += "  VICTORY - press s for a new island"
	case g.world.Defeat():
		status += "  DEFEAT - press s for a new island"
	case g.paused:
		status += "  PAUSED"
	}
	drawString(g.screen, 0, 0, status, tcell.StyleDefault.Bold(true))

	g.world.Each(func(x, y int, c wildfire.Cell) {
		glyph, ok := cellGlyphs[c]
		if !ok {
			return
		}
		g.screen.SetContent(x, y+1, glyph.r, nil, glyph.style)
	})

	g.screen.Show()
}

func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, style)
	}
}
