package config

import (
	"image/color"
	"time"
)

// FighterSlot describes one side of the arena
type FighterSlot struct {
	Name   string
	Set    string // Key in the sprite-set file
	Facing Direction
	Color  color.Color // Overlay color of the fighter's hitbox
}

// ArenaConfig contains the match setup
type ArenaConfig struct {
	Slots           [2]FighterSlot
	ProjectileSet   string
	RoundResetDelay time.Duration // Pause between a knockout and the next round
	BotSeed         int64
}

var Arena ArenaConfig

func init() {
	Arena = ArenaConfig{
		Slots: [2]FighterSlot{
			{Name: "Blaze", Set: "blaze", Facing: DirectionRight, Color: TranslucentGray},
			{Name: "Frost", Set: "frost", Facing: DirectionLeft, Color: TranslucentGray},
		},
		ProjectileSet:   "projectile",
		RoundResetDelay: 2500 * time.Millisecond,
		BotSeed:         1,
	}
}
