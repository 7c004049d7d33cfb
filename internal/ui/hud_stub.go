//go:build !ebiten

package ui

import "github.com/calistaint/fire-with-fire-game/internal/sims/wildfire"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*wildfire.World) *HUD { return nil }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, bool) {}
