package entity

import (
	"context"
	"errors"
	"sync"

	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/assets/animations"
	"github.com/automoto/brawler/config"
	"github.com/automoto/brawler/gamemath"
	"github.com/automoto/brawler/logging"
	"github.com/automoto/brawler/render"
	"github.com/automoto/brawler/systems"
	"github.com/rs/zerolog"
)

// AttackBox is one attack slot of an owner: a melee swing resolved on the
// spot, or a projectile that flies until it hits or its duration runs out.
// The same box is re-triggered by every Attack call.
type AttackBox struct {
	sprite *Sprite
	owner  Owner
	world  World
	cfg    config.AttackConfig

	animation string
	state     State

	handle   systems.Handle
	queued   bool
	cooldown systems.TimerHandle
	expiry   systems.TimerHandle

	// episode numbers projectile flights; callbacks from an older flight are stale.
	episode     uint64
	cancelFetch context.CancelFunc
	inbox       fetchInbox

	log zerolog.Logger
}

type fetchResult struct {
	episode uint64
	sprite  *assets.RemoteSprite
	err     error
}

// fetchInbox hands fetch results from the fetch goroutine to the game loop.
type fetchInbox struct {
	mu      sync.Mutex
	results []fetchResult
}

func (in *fetchInbox) post(r fetchResult) {
	in.mu.Lock()
	in.results = append(in.results, r)
	in.mu.Unlock()
}

func (in *fetchInbox) take() []fetchResult {
	in.mu.Lock()
	defer in.mu.Unlock()
	out := in.results
	in.results = nil
	return out
}

func (in *fetchInbox) len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.results)
}

// NewAttackBox creates the attack slot described by cfg for owner. Unset
// size, color and shot values take config.DefaultAttack. When set is given
// the box shows its idle clip, which projectiles carry while flying.
func NewAttackBox(owner Owner, world World, cfg config.AttackConfig, set *animations.Set) *AttackBox {
	cfg = withAttackDefaults(cfg)

	b := &AttackBox{
		owner:     owner,
		world:     world,
		cfg:       cfg,
		animation: config.AnimAttack,
		log:       logging.For("attackbox"),
	}
	if cfg.Shooting {
		b.animation = config.AnimShotAttack
	}

	b.sprite = NewSprite(SpriteOptions{
		Position: owner.Position(),
		Width:    cfg.Width,
		Height:   cfg.Height,
		Color:    cfg.Color,
		Facing:   owner.LastDirection(),
		Set:      set,
		Images:   world.Images,
	})
	if set != nil {
		b.sprite.PlayAnimation(set.Get(config.AnimIdle, config.DirectionRight), false, nil)
	}

	b.SyncRenderMembership()
	return b
}

func withAttackDefaults(cfg config.AttackConfig) config.AttackConfig {
	def := config.DefaultAttack()
	if cfg.Width == 0 {
		cfg.Width = def.Width
	}
	if cfg.Height == 0 {
		cfg.Height = def.Height
	}
	if cfg.Color == nil {
		cfg.Color = def.Color
	}
	if cfg.Shooting {
		if cfg.Duration == 0 {
			cfg.Duration = def.Duration
		}
		if cfg.Velocity == (gamemath.Vec2{}) {
			cfg.Velocity = def.Velocity
		}
	}
	return cfg
}

// Attack triggers the slot. It returns false when the request is dropped:
// during cooldown, or for a shot while the previous one is still in flight.
// A dropped shot is still moved back to the owner and keeps its velocity.
func (b *AttackBox) Attack() bool {
	if b.state.Has(StateOnCooldown) {
		b.log.Debug().Str("animation", b.animation).Msg("attack dropped, on cooldown")
		return false
	}

	dir := b.owner.LastDirection()
	b.owner.PlayAnimation(b.owner.SpriteSet().Get(b.animation, dir), true, func() {
		b.owner.SetAttacking(false)
	})
	b.owner.SetAttacking(true)

	b.state |= StateOnCooldown
	b.cooldown = b.world.Timers.After(b.cfg.Cooldown, "attack cooldown", b.endCooldown)

	pos := b.owner.Position()
	if dir == config.DirectionLeft {
		pos.X -= b.Width() / 2
	}
	b.sprite.SetPosition(pos)

	if b.cfg.Shooting && b.state.Has(StateProjectileActive) {
		b.log.Debug().Msg("shot dropped, projectile still in flight")
		return false
	}
	b.sprite.SetFacing(dir)

	if b.cfg.Shooting {
		b.shoot(dir)
	} else {
		b.swing()
	}
	return true
}

func (b *AttackBox) endCooldown() {
	b.state &^= StateOnCooldown
}

func (b *AttackBox) swing() {
	b.world.playSFX(config.SoundPunch)

	b.state |= StateMeleeResolving
	defer func() { b.state &^= StateMeleeResolving }()

	if opp := b.owner.Enemy(); opp != nil && gamemath.IsColliding(b, opp) {
		opp.TakeDamage(b.cfg.Damage, b.cfg.Knockback)
	}
}

func (b *AttackBox) shoot(dir config.Direction) {
	b.world.playSFX(config.SoundShot)

	b.sprite.SetVelocity(gamemath.MirrorX(b.cfg.Velocity, dir == config.DirectionLeft))
	if clip := b.sprite.SpriteSet().Get(config.AnimIdle, dir); clip != nil {
		b.sprite.PlayAnimation(clip, false, nil)
	}
	b.state |= StateProjectileActive
	b.episode++
	episode := b.episode

	b.SyncRenderMembership()
	b.expiry = b.world.Timers.After(b.cfg.Duration, "projectile expiry", func() {
		b.expire(episode)
	})

	if b.cfg.API != "" && b.world.Fetcher != nil {
		b.startFetch(episode)
	}
}

func (b *AttackBox) expire(episode uint64) {
	if episode != b.episode || !b.state.Has(StateProjectileActive) {
		b.log.Debug().Uint64("episode", episode).Msg("ignoring stale projectile expiry")
		return
	}
	b.endFlight()
}

// endFlight stops the current projectile. It runs exactly once per flight,
// from either the expiry timer or a hit.
func (b *AttackBox) endFlight() {
	b.state &^= StateProjectileActive
	b.sprite.SetVelocity(gamemath.Vec2{})
	b.SyncRenderMembership()
	if b.cancelFetch != nil {
		b.cancelFetch()
		b.cancelFetch = nil
	}
}

func (b *AttackBox) resolveHit(opp Opponent) {
	b.world.Timers.Cancel(b.expiry)
	b.endFlight()
	b.world.playSFX(config.SoundHit)
	opp.TakeDamage(b.cfg.Damage, b.cfg.Knockback)
}

func (b *AttackBox) startFetch(episode uint64) {
	if b.cancelFetch != nil {
		b.cancelFetch()
	}
	ctx, cancel := context.WithTimeout(context.Background(), config.Remote.Timeout)
	b.cancelFetch = cancel

	fetcher, api := b.world.Fetcher, b.cfg.API
	go func() {
		defer cancel()
		sprite, err := fetcher.FetchSprite(ctx, api)
		b.inbox.post(fetchResult{episode: episode, sprite: sprite, err: err})
	}()
}

func (b *AttackBox) applyFetches() {
	for _, r := range b.inbox.take() {
		switch {
		case errors.Is(r.err, context.Canceled):
			b.log.Debug().Uint64("episode", r.episode).Msg("sprite fetch cancelled")
		case r.err != nil:
			b.log.Warn().Err(r.err).Str("api", b.cfg.API).Msg("could not fetch projectile sprite")
		case r.episode != b.episode || !b.state.Has(StateProjectileActive):
			b.log.Debug().Uint64("episode", r.episode).Msg("discarding sprite for a finished projectile")
		default:
			b.sprite.AddSheet(r.sprite.URL, r.sprite.Image)
			b.sprite.PlayAnimation(animations.Single(r.sprite.URL, config.Remote.Scale, gamemath.Vec2{}), false, nil)
		}
	}
}

// Update advances the sprite, applies finished fetches and resolves a
// projectile hit.
func (b *AttackBox) Update() {
	b.sprite.Update()
	b.applyFetches()

	if !b.state.Has(StateProjectileActive) {
		return
	}
	if opp := b.owner.Enemy(); opp != nil && gamemath.IsColliding(b, opp) {
		b.resolveHit(opp)
	}
}

// Draw draws the sprite; the overlay uses the attack color.
func (b *AttackBox) Draw(dst render.Surface) {
	b.sprite.Draw(dst)
}

// SyncRenderMembership puts the box in the render queue while the overlay is
// on or a projectile flies, and takes it out otherwise. A box is never queued
// twice.
func (b *AttackBox) SyncRenderMembership() {
	want := config.Env.DisplayAttackBoxes || b.state.Has(StateProjectileActive)
	if b.queued && !b.world.Queue.Contains(b.handle) {
		b.queued = false
	}
	switch {
	case want && !b.queued:
		b.handle = b.world.Queue.Push(b)
		b.queued = true
	case !want && b.queued:
		b.world.Queue.Remove(b.handle)
		b.queued = false
	}
}

// InRenderQueue reports whether the box is currently queued.
func (b *AttackBox) InRenderQueue() bool {
	return b.queued && b.world.Queue.Contains(b.handle)
}

// RenderIndex returns the box's current position in the render queue, or -1.
func (b *AttackBox) RenderIndex() int {
	if !b.queued {
		return -1
	}
	return b.world.Queue.IndexOf(b.handle)
}

// Reset cancels pending timers, ends any flight and clears every flag.
func (b *AttackBox) Reset() {
	b.world.Timers.Cancel(b.cooldown)
	b.world.Timers.Cancel(b.expiry)
	if b.state.Has(StateProjectileActive) {
		b.endFlight()
	}
	b.state = StateIdle
	b.SyncRenderMembership()
}

// SetSize overrides the fallback hitbox size.
func (b *AttackBox) SetSize(w, h float64) {
	b.cfg.Width, b.cfg.Height = w, h
	b.sprite.SetSize(w, h)
}

func (b *AttackBox) State() State { return b.state }

func (b *AttackBox) IsOnCooldown() bool { return b.state.Has(StateOnCooldown) }

func (b *AttackBox) IsShooting() bool { return b.cfg.Shooting }

// CurrentlyShooting reports whether a projectile from this box is in flight.
func (b *AttackBox) CurrentlyShooting() bool { return b.state.Has(StateProjectileActive) }

func (b *AttackBox) Config() config.AttackConfig { return b.cfg }

func (b *AttackBox) Sprite() *Sprite { return b.sprite }

func (b *AttackBox) Position() gamemath.Vec2 { return b.sprite.Position() }

func (b *AttackBox) Velocity() gamemath.Vec2 { return b.sprite.Velocity() }

func (b *AttackBox) Width() float64 { return b.sprite.Width() }

func (b *AttackBox) Height() float64 { return b.sprite.Height() }
