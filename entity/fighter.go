package entity

import (
	"image/color"

	"github.com/automoto/brawler/assets/animations"
	"github.com/automoto/brawler/config"
	"github.com/automoto/brawler/gamemath"
	"github.com/automoto/brawler/logging"
	"github.com/automoto/brawler/tags"
	"github.com/rs/zerolog"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Intent is what a controller asks a fighter to do this tick.
type Intent struct {
	Left   bool
	Right  bool
	Jump   bool
	Attack bool
	Shoot  bool
	Face   config.Direction // Turn without moving; ignored while moving
}

// FighterOptions configures a new Fighter.
type FighterOptions struct {
	Name       string
	Set        *animations.Set
	Projectile *animations.Set // Clips for the shot slot's projectile
	Spawn      gamemath.Vec2
	Facing     config.Direction
	Color      color.Color
}

// Fighter is an arena character: a falling sprite with health, a melee slot
// and a shot slot. It is both the Owner of its attack boxes and the Opponent
// of the other fighter's.
type Fighter struct {
	*Sprite

	name      string
	world     World
	health    float64
	maxHealth float64
	attacking bool
	dead      bool
	grounded  bool
	enemy     *Fighter
	intent    Intent

	melee *AttackBox
	shot  *AttackBox

	knock    *gween.Tween
	knockPos float32

	body  *resolv.Object
	space *resolv.Space

	spawn       gamemath.Vec2
	spawnFacing config.Direction

	log zerolog.Logger
}

func NewFighter(opts FighterOptions, world World) *Fighter {
	if opts.Facing == "" {
		opts.Facing = config.DirectionRight
	}
	f := &Fighter{
		name:        opts.Name,
		world:       world,
		health:      config.Combat.Health,
		maxHealth:   config.Combat.Health,
		spawn:       opts.Spawn,
		spawnFacing: opts.Facing,
		log:         logging.For("fighter").With().Str("fighter", opts.Name).Logger(),
	}
	f.Sprite = NewSprite(SpriteOptions{
		Position:   opts.Spawn,
		Width:      config.Fighter.Width,
		Height:     config.Fighter.Height,
		Color:      opts.Color,
		HasGravity: true,
		Facing:     opts.Facing,
		Set:        opts.Set,
		Images:     world.Images,
	})
	f.PlayAnimation(opts.Set.Get(config.AnimIdle, opts.Facing), false, nil)

	f.body = resolv.NewObject(opts.Spawn.X, opts.Spawn.Y, f.Width(), f.Height(), tags.ResolvFighter)
	f.melee = NewAttackBox(f, world, config.Combat.Melee, nil)
	f.shot = NewAttackBox(f, world, config.Combat.Shot, opts.Projectile)
	return f
}

// SetEnemy makes other the target of this fighter's attacks.
func (f *Fighter) SetEnemy(other *Fighter) {
	f.enemy = other
}

// AttachSpace adds the fighter's body to space so walls block it.
func (f *Fighter) AttachSpace(space *resolv.Space) {
	f.space = space
	f.syncBody()
	space.Add(f.body)
}

// Control sets the intent applied on the next Update.
func (f *Fighter) Control(in Intent) {
	f.intent = in
}

func (f *Fighter) Update() {
	if f.dead {
		f.SetVelocity(gamemath.Vec2{Y: f.Velocity().Y})
	} else {
		f.steer()
	}
	v := f.Velocity()
	v.X = f.wallClip(v.X)
	f.SetVelocity(v)

	falling := f.Velocity().Y >= 0
	f.Sprite.Update()
	f.grounded = falling && f.Velocity().Y == 0
	if f.grounded {
		p := f.Position()
		p.Y = config.Env.GroundY - f.Height()
		f.SetPosition(p)
	}

	f.applyKnockback()
	f.syncBody()

	if !f.dead {
		f.animate()
	}
}

func (f *Fighter) steer() {
	in := f.intent
	v := f.Velocity()

	switch {
	case in.Left && !in.Right:
		v.X = -config.Fighter.Speed
		f.SetFacing(config.DirectionLeft)
	case in.Right && !in.Left:
		v.X = config.Fighter.Speed
		f.SetFacing(config.DirectionRight)
	default:
		v.X = gamemath.ApplyFriction(v.X, config.Fighter.Friction)
		if in.Face != "" {
			f.SetFacing(in.Face)
		}
	}
	v.X = gamemath.ClampSpeed(v.X, config.Fighter.MaxSpeed)

	if in.Jump && f.grounded {
		v.Y = -config.Fighter.JumpSpeed
		f.grounded = false
		f.world.playSFX(config.SoundJump)
	}
	f.SetVelocity(v)

	if in.Attack {
		f.melee.Attack()
	}
	if in.Shoot {
		f.shot.Attack()
	}
}

// applyKnockback moves the fighter along the active knockback glide.
func (f *Fighter) applyKnockback() {
	if f.knock == nil {
		return
	}
	pos, done := f.knock.Update(float32(config.C.TickDuration().Seconds()))
	dx := f.wallClip(float64(pos - f.knockPos))
	f.knockPos = pos
	if done {
		f.knock = nil
	}

	p := f.Position()
	p.X += dx
	f.SetPosition(p)
}

// wallClip shortens a horizontal move so the fighter stops at a wall.
func (f *Fighter) wallClip(dx float64) float64 {
	if f.space == nil || dx == 0 {
		return dx
	}
	f.syncBody()
	if check := f.body.Check(dx, 0, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			return check.ContactWithObject(solids[0]).X()
		}
	}
	return dx
}

func (f *Fighter) syncBody() {
	p := f.Position()
	f.body.X, f.body.Y = p.X, p.Y
	f.body.W, f.body.H = f.Width(), f.Height()
	if f.space != nil {
		f.body.Update()
	}
}

func (f *Fighter) animate() {
	if f.playback.PlayOnce() {
		return
	}
	switch {
	case !f.grounded:
		f.play(config.AnimJump)
	case f.Velocity().X != 0 && (f.intent.Left || f.intent.Right):
		f.play(config.AnimRun)
	default:
		f.play(config.AnimIdle)
	}
}

func (f *Fighter) play(name string) {
	frame := f.SpriteSet().Get(name, f.Facing())
	if frame == nil || frame == f.Active() {
		return
	}
	f.PlayAnimation(frame, false, nil)
}

// TakeDamage lowers health and glides the fighter away from its enemy.
func (f *Fighter) TakeDamage(amount float64, knockback gamemath.Vec2) {
	if f.dead {
		return
	}
	f.health -= amount
	if f.health < 0 {
		f.health = 0
	}
	f.log.Debug().Float64("amount", amount).Float64("health", f.health).Msg("hit")

	away := 1.0
	if f.enemy != nil && f.enemy.Position().X > f.Position().X {
		away = -1
	}
	dist := float32(knockback.X * away * config.Combat.KnockbackDistance)
	f.knock = gween.New(0, dist, float32(config.Combat.KnockbackDuration), ease.OutQuad)
	f.knockPos = 0
	if knockback.Y != 0 {
		v := f.Velocity()
		v.Y = -knockback.Y * config.Fighter.JumpSpeed / 2
		f.SetVelocity(v)
	}

	if f.health <= 0 {
		f.die()
	}
}

func (f *Fighter) die() {
	f.dead = true
	f.attacking = false
	f.world.playSFX(config.SoundDeath)
	if f.PlayAnimation(f.SpriteSet().Get(config.AnimDeath, f.Facing()), true, nil) {
		f.HoldLastFrame()
	}
	f.log.Info().Msg("knocked out")
}

// Reset puts the fighter back on its spawn at full health.
func (f *Fighter) Reset() {
	f.health = f.maxHealth
	f.dead = false
	f.attacking = false
	f.grounded = false
	f.knock = nil
	f.intent = Intent{}
	f.SetPosition(f.spawn)
	f.SetVelocity(gamemath.Vec2{})
	f.SetFacing(f.spawnFacing)
	f.melee.Reset()
	f.shot.Reset()
	f.ResetAnimation()
	f.PlayAnimation(f.SpriteSet().Get(config.AnimIdle, f.spawnFacing), false, nil)
	f.syncBody()
}

// LastDirection is the facing used for directional clips and attacks.
func (f *Fighter) LastDirection() config.Direction { return f.Facing() }

func (f *Fighter) IsAttacking() bool { return f.attacking }

func (f *Fighter) SetAttacking(attacking bool) { f.attacking = attacking }

// Enemy returns the opponent, or nil.
func (f *Fighter) Enemy() Opponent {
	if f.enemy == nil {
		return nil
	}
	return f.enemy
}

func (f *Fighter) Name() string { return f.name }

func (f *Fighter) Health() float64 { return f.health }

func (f *Fighter) MaxHealth() float64 { return f.maxHealth }

func (f *Fighter) IsDead() bool { return f.dead }

func (f *Fighter) IsGrounded() bool { return f.grounded }

func (f *Fighter) Melee() *AttackBox { return f.melee }

func (f *Fighter) Shot() *AttackBox { return f.shot }

func (f *Fighter) Body() *resolv.Object { return f.body }

// AttackBoxes returns both slots.
func (f *Fighter) AttackBoxes() []*AttackBox { return []*AttackBox{f.melee, f.shot} }
