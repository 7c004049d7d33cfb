//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/calistaint/fire-with-fire-game/internal/render"
	"github.com/calistaint/fire-with-fire-game/internal/sims/wildfire"
	"github.com/calistaint/fire-with-fire-game/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var difficultyKeys = [...]struct {
	key ebiten.Key
	d   wildfire.Difficulty
}{
	{ebiten.Key1, wildfire.DifficultyEasy},
	{ebiten.Key2, wildfire.DifficultyNormal},
	{ebiten.Key3, wildfire.DifficultyHard},
}

// Game adapts the wildfire world to the ebiten.Game interface. The world is
// only mutated here: one Update per frame plus the click-to-burn command.
type Game struct {
	world   *wildfire.World
	painter *render.GridPainter
	hud     *ui.HUD
	pixel   *ebiten.Image

	scale  int
	dt     float64
	paused bool
	seed   int64
}

// New constructs a Game for the provided world.
func New(world *wildfire.World, scale, tps int, seed int64) *Game {
	if tps <= 0 {
		tps = 60
	}
	size := world.Size()
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(world),
		pixel:   pixel,
		scale:   scale,
		dt:      1.0 / float64(tps),
		seed:    seed,
	}
}

// Reset starts a fresh episode with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.paused = false
}

// Update handles input and advances the simulation by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	for _, dk := range difficultyKeys {
		if inpututil.IsKeyJustPressed(dk.key) {
			g.world.SetDifficulty(dk.d)
			g.Reset(g.seed)
		}
	}

	if !g.paused {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			mx, my := ebiten.CursorPosition()
			g.world.Trigger(mx/g.scale, my/g.scale)
		}
		g.world.Update(g.dt)
	}
	return nil
}

// Draw renders the map, the decorative placements, and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.world.Palette(), g.scale)
	g.drawScenery(screen)
	g.hud.Draw(screen, g.paused)
}

// drawScenery stamps small markers for trees, grass tufts, and houses. The
// marker is skipped once its anchor cell has burned away.
func (g *Game) drawScenery(screen *ebiten.Image) {
	fs := float64(g.scale)
	for _, p := range g.world.Scenery() {
		var col color.RGBA
		var size float64
		switch p.Kind {
		case wildfire.SceneryTree:
			if g.world.Cell(p.X, p.Y) != wildfire.CellForestLight {
				continue
			}
			col = color.RGBA{R: 10, G: 70, B: 10, A: 255}
			size = fs / 3
		case wildfire.SceneryGrassTuft:
			if g.world.Cell(p.X, p.Y) != wildfire.CellField {
				continue
			}
			col = color.RGBA{R: 150, G: 150, B: 30, A: 255}
			size = fs / 5
		case wildfire.SceneryHouse:
			if g.world.Cell(p.X, p.Y) != wildfire.CellHouse {
				continue
			}
			col = color.RGBA{R: 140, G: 60, B: 30, A: 255}
			size = fs / 2
		}
		if size < 1 {
			size = 1
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(size, size)
		op.GeoM.Translate(
			(float64(p.X)+0.5+p.OffsetX)*fs-size/2,
			(float64(p.Y)+0.5+p.OffsetY)*fs-size/2,
		)
		op.ColorScale.ScaleWithColor(col)
		screen.DrawImage(g.pixel, op)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W * g.scale, s.H * g.scale
}
