package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudBarWidth  = 300
	hudBarHeight = 16
	hudMargin    = 16
	hudNameGap   = 6
)

var (
	hudBarBack = color.RGBA{40, 40, 40, 255}
	hudBarFill = color.RGBA{40, 220, 40, 255}
	hudBarLow  = color.RGBA{220, 60, 40, 255}
)

// Combatant is what the HUD reads from a fighter.
type Combatant interface {
	Name() string
	Health() float64
	MaxHealth() float64
}

// HUDState is everything drawn over the arena in one frame.
type HUDState struct {
	Fighters []Combatant
	Wins     []int
	Banner   string // Centered message, e.g. the round winner; empty hides it
	Muted    bool
	Overlay  bool
}

// DrawHUD renders health bars, names and round wins for the first two
// fighters, plus the banner and toggle hints.
func DrawHUD(screen *ebiten.Image, st HUDState) {
	for i, f := range st.Fighters {
		if i > 1 {
			break
		}
		wins := 0
		if i < len(st.Wins) {
			wins = st.Wins[i]
		}
		drawFighterBar(screen, i, f, wins)
	}

	if st.Banner != "" {
		drawBanner(screen, st.Banner)
	}
	drawToggles(screen, st)
}

func drawFighterBar(screen *ebiten.Image, slot int, f Combatant, wins int) {
	x := hudBarX(slot, cfg.C.Width)
	y := float32(hudMargin + 20)

	vector.FillRect(screen, x, y, hudBarWidth, hudBarHeight, hudBarBack, false)

	ratio := HealthRatio(f.Health(), f.MaxHealth())
	fill := hudBarFill
	if ratio < 0.25 {
		fill = hudBarLow
	}
	w := hudBarWidth * ratio
	if slot == 1 {
		// Right bar drains toward the screen edge.
		vector.FillRect(screen, x+hudBarWidth-w, y, w, hudBarHeight, fill, false)
	} else {
		vector.FillRect(screen, x, y, w, hudBarHeight, fill, false)
	}

	face := fonts.HUDBold.Get()
	label := fmt.Sprintf("%s  %d", f.Name(), wins)
	lx := int(x)
	if slot == 1 {
		lx = int(x) + hudBarWidth - text.BoundString(face, label).Dx()
	}
	text.Draw(screen, label, face, lx, int(y)-hudNameGap, cfg.White)
}

func drawBanner(screen *ebiten.Image, msg string) {
	width, height := cfg.C.Width, cfg.C.Height
	vector.FillRect(screen, 0, float32(height)/2-40, float32(width), 80, cfg.BlackOverlay, false)

	face := fonts.HUDTitle.Get()
	bounds := text.BoundString(face, msg)
	text.Draw(screen, msg, face, (width-bounds.Dx())/2, height/2+bounds.Dy()/2, cfg.Yellow)
}

func drawToggles(screen *ebiten.Image, st HUDState) {
	hint := "F1 hitboxes"
	if st.Overlay {
		hint += " [on]"
	}
	hint += "   M sound"
	if st.Muted {
		hint += " [muted]"
	}
	text.Draw(screen, hint, fonts.HUD.Get(), hudMargin, cfg.C.Height-hudMargin, cfg.TranslucentGray)
}

// HealthRatio is the filled share of a health bar, clamped to [0, 1].
func HealthRatio(current, max float64) float32 {
	if max <= 0 || current <= 0 {
		return 0
	}
	if current >= max {
		return 1
	}
	return float32(current / max)
}

// hudBarX is the left edge of the health bar for slot 0 (left) or 1 (right).
func hudBarX(slot, screenWidth int) float32 {
	if slot == 0 {
		return hudMargin
	}
	return float32(screenWidth - hudMargin - hudBarWidth)
}
