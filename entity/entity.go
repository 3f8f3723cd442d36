// Package entity holds the animated sprite, the attack box built on it and
// the arena fighter that owns attack boxes.
package entity

import (
	"context"

	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/assets/animations"
	"github.com/automoto/brawler/config"
	"github.com/automoto/brawler/gamemath"
	"github.com/automoto/brawler/render"
	"github.com/automoto/brawler/systems"
)

// ImageSource resolves a clip source to its sheet.
type ImageSource interface {
	Image(source string) (render.Sheet, error)
}

// SoundPlayer plays sound effects.
type SoundPlayer interface {
	PlaySFX(id config.SoundID)
}

// SpriteFetcher retrieves a projectile image from a remote sprite API.
type SpriteFetcher interface {
	FetchSprite(ctx context.Context, api string) (*assets.RemoteSprite, error)
}

// Opponent is whatever an attack can hit.
type Opponent interface {
	gamemath.Boxed
	TakeDamage(amount float64, knockback gamemath.Vec2)
}

// Owner is the character an attack box belongs to.
type Owner interface {
	Position() gamemath.Vec2
	LastDirection() config.Direction
	SpriteSet() *animations.Set
	PlayAnimation(frame *animations.Frame, playOnce bool, onComplete func()) bool
	IsAttacking() bool
	SetAttacking(attacking bool)
	Enemy() Opponent
}

// World bundles the shared collaborators entities act on. Only Queue and
// Timers are required.
type World struct {
	Queue   *systems.RenderQueue
	Timers  *systems.Scheduler
	Images  ImageSource
	Sound   SoundPlayer
	Fetcher SpriteFetcher
}

func (w World) playSFX(id config.SoundID) {
	if w.Sound != nil {
		w.Sound.PlaySFX(id)
	}
}
