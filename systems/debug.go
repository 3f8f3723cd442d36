package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
)

// DebugStats are the counters printed with the hitbox overlay.
type DebugStats struct {
	Queued int
	Timers int
	Now    string
}

// DrawDebug outlines every collision object in space and prints the
// counters. It draws nothing while the overlay is off.
func DrawDebug(screen *ebiten.Image, space *resolv.Space, stats DebugStats) {
	if !cfg.Env.DisplayAttackBoxes {
		return
	}

	if space != nil {
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvFighter) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			}
			drawOutline(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), c)
		}
	}

	ebitenutil.DebugPrintAt(screen, DebugLine(stats), 8, cfg.C.Height-48)
}

// DebugLine formats the counters shown in the corner.
func DebugLine(stats DebugStats) string {
	return fmt.Sprintf("TPS %.0f  queued %d  timers %d  t=%s", ebiten.ActualTPS(), stats.Queued, stats.Timers, stats.Now)
}

func drawOutline(screen *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
