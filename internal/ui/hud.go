//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/calistaint/fire-with-fire-game/internal/sims/wildfire"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the live episode statistics and the outcome banner over the map.
type HUD struct {
	world *wildfire.World
	strip *ebiten.Image
}

// NewHUD constructs a HUD bound to the provided world.
func NewHUD(world *wildfire.World) *HUD {
	return &HUD{world: world}
}

// Draw renders the stats line at the top edge and, when the episode has
// resolved, a centered banner.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if h == nil || h.world == nil {
		return
	}
	sw := screen.Bounds().Dx()
	if h.strip == nil || h.strip.Bounds().Dx() != sw {
		h.strip = ebiten.NewImage(sw, 14)
	}
	h.strip.Fill(color.RGBA{A: 160})
	screen.DrawImage(h.strip, nil)

	stats := h.world.Stats()
	line := fmt.Sprintf("houses %d/%d   forest %.1f%%   score %d   burns %d   [%s]",
		stats.HousesSaved, h.world.HousesTotal(), stats.ForestSaved, stats.Score,
		stats.BurnsUsed, h.world.Difficulty())
	if paused {
		line += "   PAUSED"
	}
	text.Draw(screen, line, basicfont.Face7x13, 4, 11, color.White)

	if banner := h.banner(); banner != "" {
		bounds := text.BoundString(basicfont.Face7x13, banner)
		x := (sw - bounds.Dx()) / 2
		y := screen.Bounds().Dy() / 2
		text.Draw(screen, banner, basicfont.Face7x13, x, y, color.White)
	}
}

func (h *HUD) banner() string {
	switch {
	case h.world.Victory():
		return "VICTORY - fire contained. Press S for a new island."
	case h.world.Defeat():
		return "DEFEAT - the island is lost. Press S for a new island."
	default:
		return ""
	}
}
