package config

import (
	"image/color"
	"time"

	"github.com/automoto/brawler/gamemath"
)

// EnvConfig is the read-only environment every sprite and attack box consults.
type EnvConfig struct {
	DisplayAttackBoxes bool    // Draw hitbox overlays and keep attack boxes in the render queue
	Gravity            float64 // Per-tick vertical acceleration
	GroundY            float64 // Ground line; bodies land when their bottom reaches it
}

// SpriteConfig holds fallback values for animated sprites
type SpriteConfig struct {
	Width  float64
	Height float64
	Color  color.Color
}

// AttackConfig describes one attack slot of a fighter
type AttackConfig struct {
	Shooting  bool
	Cooldown  time.Duration
	Duration  time.Duration // Only applies to shooting attacks
	Width     float64
	Height    float64
	Color     color.Color
	Damage    float64
	Knockback gamemath.Vec2
	Velocity  gamemath.Vec2 // Projectile velocity, applied only while a shot is in flight
	API       string        // Optional remote sprite endpoint for shots
}

// CombatConfig contains the attack slots every fighter gets
type CombatConfig struct {
	Melee AttackConfig
	Shot  AttackConfig

	// Fighter side of a hit
	Health            float64
	KnockbackDistance float64 // Pixels a unit knockback glides the target
	KnockbackDuration float64 // Seconds for the glide
}

// FighterConfig contains arena fighter movement values
type FighterConfig struct {
	Speed     float64
	JumpSpeed float64
	Friction  float64
	MaxSpeed  float64
	Width     float64
	Height    float64
}

// RemoteConfig configures the remote sprite client
type RemoteConfig struct {
	SpriteAPI string
	Timeout   time.Duration
	Scale     float64 // Scale applied to a fetched projectile image
}

// LogConfig configures the zerolog logger
type LogConfig struct {
	Level string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Bot bool // Second fighter is driven by the bot instead of the keyboard
}

// Global configuration instances
var C *Config
var Env *EnvConfig
var Sprite SpriteConfig
var Combat CombatConfig
var Fighter FighterConfig
var Remote RemoteConfig
var Log LogConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White           = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	TranslucentGray = color.NRGBA{R: 255, G: 255, B: 255, A: 128}
	Green           = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	Red             = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Yellow          = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange          = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	DarkBlue        = color.RGBA{R: 20, G: 24, B: 48, A: 255}
	BlackOverlay    = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// TickDuration is the wall-clock length of one game tick.
func (c *Config) TickDuration() time.Duration {
	if c.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TPS)
}

func init() {
	C = &Config{
		Width:  1024,
		Height: 576,
		TPS:    60,
	}

	Env = &EnvConfig{
		DisplayAttackBoxes: false,
		Gravity:            0.7,
		GroundY:            576 - 96,
	}

	Sprite = SpriteConfig{
		Width:  70,
		Height: 150,
		Color:  TranslucentGray,
	}

	Combat = CombatConfig{
		Melee: AttackConfig{
			Shooting:  false,
			Cooldown:  400 * time.Millisecond,
			Width:     150,
			Height:    60,
			Color:     Green,
			Damage:    10,
			Knockback: gamemath.Vec2{X: 1, Y: 0},
		},
		Shot: AttackConfig{
			Shooting:  true,
			Cooldown:  800 * time.Millisecond,
			Duration:  3000 * time.Millisecond,
			Width:     40,
			Height:    20,
			Color:     Orange,
			Damage:    15,
			Knockback: gamemath.Vec2{X: 1, Y: 0},
			Velocity:  gamemath.Vec2{X: 6, Y: 0},
		},

		Health:            100,
		KnockbackDistance: 40,
		KnockbackDuration: 0.25,
	}

	Fighter = FighterConfig{
		Speed:     5,
		JumpSpeed: 15,
		Friction:  0.5,
		MaxSpeed:  8,
		Width:     50,
		Height:    150,
	}

	Remote = RemoteConfig{
		SpriteAPI: "",
		Timeout:   5 * time.Second,
		Scale:     0.1,
	}

	Log = LogConfig{
		Level: "info",
	}
}

// DefaultAttack returns the attack box defaults used when a slot leaves values unset.
func DefaultAttack() AttackConfig {
	return AttackConfig{
		Duration:  3000 * time.Millisecond,
		Width:     150,
		Height:    60,
		Color:     Green,
		Damage:    50,
		Knockback: gamemath.Vec2{X: 1, Y: 0},
		Velocity:  gamemath.Vec2{X: 3, Y: 0},
	}
}
