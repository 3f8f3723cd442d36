package entity

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/config"
	"github.com/automoto/brawler/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meleeConfig() config.AttackConfig {
	return config.AttackConfig{
		Cooldown:  500 * time.Millisecond,
		Width:     150,
		Height:    60,
		Color:     config.Green,
		Damage:    50,
		Knockback: gamemath.V(1, 0),
	}
}

func shotConfig() config.AttackConfig {
	return config.AttackConfig{
		Shooting:  true,
		Cooldown:  200 * time.Millisecond,
		Duration:  time.Second,
		Width:     40,
		Height:    20,
		Color:     config.Orange,
		Damage:    15,
		Knockback: gamemath.V(1, 0),
		Velocity:  gamemath.V(6, 0),
	}
}

func newOwner(x float64, dir config.Direction) *stubOwner {
	return &stubOwner{pos: gamemath.V(x, 100), dir: dir, set: fighterSet()}
}

func TestAttackBoxDefaults(t *testing.T) {
	world, _ := newTestWorld()
	box := NewAttackBox(newOwner(0, config.DirectionRight), world, config.AttackConfig{Shooting: true}, nil)

	def := config.DefaultAttack()
	cfg := box.Config()
	assert.Equal(t, def.Width, cfg.Width)
	assert.Equal(t, def.Height, cfg.Height)
	assert.Equal(t, def.Duration, cfg.Duration)
	assert.Equal(t, def.Velocity, cfg.Velocity)
	assert.Equal(t, def.Color, cfg.Color)
	assert.True(t, box.IsShooting())
	assert.Equal(t, StateIdle, box.State())
	assert.False(t, box.InRenderQueue())
}

func TestMeleeHit(t *testing.T) {
	world, sound := newTestWorld()
	owner := newOwner(100, config.DirectionRight)
	owner.enemy = &dummy{pos: gamemath.V(100, 100), w: 10, h: 10}
	box := NewAttackBox(owner, world, meleeConfig(), nil)

	require.True(t, box.Attack())

	require.Len(t, owner.enemy.hits, 1)
	assert.Equal(t, hit{amount: 50, knockback: gamemath.V(1, 0)}, owner.enemy.hits[0])
	assert.Equal(t, []config.SoundID{config.SoundPunch}, sound.played)

	require.Len(t, owner.plays, 1)
	assert.Same(t, owner.set.Get(config.AnimAttack, config.DirectionRight), owner.plays[0].frame)
	assert.True(t, owner.plays[0].playOnce)
	assert.True(t, owner.attacking)

	assert.True(t, box.IsOnCooldown())
	assert.False(t, box.State().Has(StateMeleeResolving))
	assert.False(t, box.InRenderQueue(), "melee boxes are only drawn with the overlay")

	owner.complete()
	assert.False(t, owner.attacking)
}

func TestMeleeMiss(t *testing.T) {
	world, _ := newTestWorld()
	owner := newOwner(100, config.DirectionRight)
	owner.enemy = &dummy{pos: gamemath.V(600, 100), w: 10, h: 10}
	box := NewAttackBox(owner, world, meleeConfig(), nil)

	require.True(t, box.Attack())
	assert.Empty(t, owner.enemy.hits)
	assert.True(t, box.IsOnCooldown())
}

func TestMeleeTouchingEdgeIsNotAHit(t *testing.T) {
	world, _ := newTestWorld()
	owner := newOwner(100, config.DirectionRight)
	owner.enemy = &dummy{pos: gamemath.V(250, 100), w: 10, h: 10}
	box := NewAttackBox(owner, world, meleeConfig(), nil)

	box.Attack()
	assert.Empty(t, owner.enemy.hits)
}

func TestMeleeWithoutEnemy(t *testing.T) {
	world, _ := newTestWorld()
	box := NewAttackBox(newOwner(100, config.DirectionRight), world, meleeConfig(), nil)
	assert.True(t, box.Attack())
}

func TestMeleeFacingLeftShiftsBox(t *testing.T) {
	world, _ := newTestWorld()
	owner := newOwner(300, config.DirectionLeft)
	box := NewAttackBox(owner, world, meleeConfig(), nil)

	box.Attack()
	assert.Equal(t, gamemath.V(225, 100), box.Position())
	assert.Equal(t, config.DirectionLeft, box.Sprite().Facing())
	assert.Same(t, owner.set.Get(config.AnimAttack, config.DirectionLeft), owner.plays[0].frame)
}

func TestAttackDuringCooldownIsDropped(t *testing.T) {
	world, _ := newTestWorld()
	owner := newOwner(100, config.DirectionRight)
	owner.enemy = &dummy{pos: gamemath.V(100, 100), w: 10, h: 10}
	box := NewAttackBox(owner, world, meleeConfig(), nil)

	require.True(t, box.Attack())
	owner.attacking = false

	assert.False(t, box.Attack())
	assert.Len(t, owner.enemy.hits, 1)
	assert.Len(t, owner.plays, 1)
	assert.False(t, owner.attacking)

	world.Timers.Advance(499 * time.Millisecond)
	assert.True(t, box.IsOnCooldown())
	world.Timers.Advance(time.Millisecond)
	assert.False(t, box.IsOnCooldown())

	assert.True(t, box.Attack())
	assert.Len(t, owner.enemy.hits, 2)
}

func TestShotFliesAndExpires(t *testing.T) {
	world, sound := newTestWorld()
	owner := newOwner(100, config.DirectionRight)
	box := NewAttackBox(owner, world, shotConfig(), nil)

	require.True(t, box.Attack())
	assert.Equal(t, gamemath.V(6, 0), box.Velocity())
	assert.True(t, box.CurrentlyShooting())
	assert.True(t, box.InRenderQueue())
	assert.Equal(t, 0, box.RenderIndex())
	assert.Equal(t, []config.SoundID{config.SoundShot}, sound.played)
	assert.Same(t, owner.set.Get(config.AnimShotAttack, config.DirectionRight), owner.plays[0].frame)

	world.Queue.Update()
	world.Queue.Update()
	assert.Equal(t, gamemath.V(112, 100), box.Position())

	world.Timers.Advance(999 * time.Millisecond)
	assert.True(t, box.CurrentlyShooting())
	assert.False(t, box.IsOnCooldown())

	world.Timers.Advance(time.Millisecond)
	assert.False(t, box.CurrentlyShooting())
	assert.Equal(t, gamemath.Vec2{}, box.Velocity())
	assert.False(t, box.InRenderQueue())
	assert.Equal(t, -1, box.RenderIndex())
	assert.Zero(t, world.Queue.Len())

	world.Queue.Update()
	assert.Equal(t, gamemath.V(112, 100), box.Position(), "spent shot stays put")
}

func TestShotMirrorsWhenFacingLeft(t *testing.T) {
	world, _ := newTestWorld()
	owner := newOwner(300, config.DirectionLeft)
	box := NewAttackBox(owner, world, shotConfig(), nil)

	require.True(t, box.Attack())
	assert.Equal(t, gamemath.V(-6, 0), box.Velocity())
	assert.Equal(t, gamemath.V(280, 100), box.Position())
}

func TestShotHitBeforeExpiry(t *testing.T) {
	world, sound := newTestWorld()
	owner := newOwner(100, config.DirectionRight)
	owner.enemy = &dummy{pos: gamemath.V(200, 100), w: 20, h: 20}

	bystander := NewSprite(SpriteOptions{})
	world.Queue.Push(bystander)

	box := NewAttackBox(owner, world, shotConfig(), nil)
	require.True(t, box.Attack())
	assert.Equal(t, 1, box.RenderIndex())

	for i := 0; i < 60 && box.CurrentlyShooting(); i++ {
		world.Queue.Update()
	}
	require.Len(t, owner.enemy.hits, 1)
	assert.Equal(t, hit{amount: 15, knockback: gamemath.V(1, 0)}, owner.enemy.hits[0])
	assert.Contains(t, sound.played, config.SoundHit)

	assert.Equal(t, gamemath.Vec2{}, box.Velocity())
	assert.False(t, box.InRenderQueue())
	require.Equal(t, 1, world.Queue.Len(), "only the shot leaves the queue")
	assert.Same(t, bystander, world.Queue.Entities()[0])

	world.Timers.Advance(2 * time.Second)
	world.Queue.Update()
	assert.Len(t, owner.enemy.hits, 1, "expiry does not act after a hit")
	assert.Equal(t, 1, world.Queue.Len())
	assert.Zero(t, world.Timers.Len())
}

func TestShotInFlightRejectsRetrigger(t *testing.T) {
	world, _ := newTestWorld()
	owner := newOwner(100, config.DirectionRight)
	cfg := shotConfig()
	cfg.Cooldown = 10 * time.Millisecond
	box := NewAttackBox(owner, world, cfg, nil)

	require.True(t, box.Attack())
	world.Queue.Update()
	world.Timers.Advance(10 * time.Millisecond)
	require.False(t, box.IsOnCooldown())

	owner.pos = gamemath.V(300, 100)
	assert.False(t, box.Attack())
	assert.Equal(t, gamemath.V(300, 100), box.Position(), "flying shot returns to the owner")
	assert.Equal(t, gamemath.V(6, 0), box.Velocity())
	assert.True(t, box.CurrentlyShooting())
	assert.True(t, box.IsOnCooldown())
	assert.Len(t, owner.plays, 2)
	assert.Equal(t, 1, world.Queue.Len())
}

func TestRenderMembershipFollowsOverlay(t *testing.T) {
	setDisplayAttackBoxes(t, true)
	world, _ := newTestWorld()
	box := NewAttackBox(newOwner(100, config.DirectionRight), world, shotConfig(), nil)
	require.True(t, box.InRenderQueue())

	box.Attack()
	assert.Equal(t, 1, world.Queue.Len())
	world.Timers.Advance(time.Second)
	assert.True(t, box.InRenderQueue(), "overlay keeps a spent shot visible")
	assert.Equal(t, 1, world.Queue.Len())

	config.Env.DisplayAttackBoxes = false
	box.SyncRenderMembership()
	assert.False(t, box.InRenderQueue())
	box.SyncRenderMembership()
	assert.Zero(t, world.Queue.Len())

	config.Env.DisplayAttackBoxes = true
	box.SyncRenderMembership()
	box.SyncRenderMembership()
	assert.Equal(t, 1, world.Queue.Len())
	assert.Equal(t, 0, box.RenderIndex())
}

func TestAttackBoxDrawsOverlay(t *testing.T) {
	setDisplayAttackBoxes(t, true)
	world, _ := newTestWorld()
	box := NewAttackBox(newOwner(100, config.DirectionRight), world, meleeConfig(), nil)
	box.Attack()

	surface := &recordingSurface{}
	world.Queue.Draw(surface)
	require.Len(t, surface.fills, 1)
	assert.Equal(t, fill{x: 100, y: 100, w: 150, h: 60, clr: config.Green}, surface.fills[0])
}

func TestRemoteSpriteApplied(t *testing.T) {
	world, _ := newTestWorld()
	world.Fetcher = fetchFunc(func(ctx context.Context, api string) (*assets.RemoteSprite, error) {
		return &assets.RemoteSprite{URL: "http://img/shot.png", Image: strip(100, 50)}, nil
	})
	cfg := shotConfig()
	cfg.API = "http://api/random"
	box := NewAttackBox(newOwner(100, config.DirectionRight), world, cfg, nil)

	require.True(t, box.Attack())
	require.Eventually(t, func() bool { return box.inbox.len() == 1 }, time.Second, time.Millisecond)

	box.Update()
	require.NotNil(t, box.Sprite().Active())
	assert.Equal(t, "http://img/shot.png", box.Sprite().Active().Source)
	assert.Equal(t, 100*config.Remote.Scale, box.Width())
	assert.Equal(t, 50*config.Remote.Scale, box.Height())
}

func TestRemoteSpriteForOldShotIsDiscarded(t *testing.T) {
	world, _ := newTestWorld()
	gates := []chan struct{}{make(chan struct{}), make(chan struct{})}
	var calls int32
	world.Fetcher = fetchFunc(func(ctx context.Context, api string) (*assets.RemoteSprite, error) {
		i := atomic.AddInt32(&calls, 1) - 1
		<-gates[i]
		return &assets.RemoteSprite{URL: fmt.Sprintf("http://img/%d.png", i), Image: strip(10, 10)}, nil
	})
	cfg := shotConfig()
	cfg.API = "http://api/random"
	box := NewAttackBox(newOwner(100, config.DirectionRight), world, cfg, nil)

	require.True(t, box.Attack())
	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, time.Millisecond)
	world.Timers.Advance(time.Second)
	require.False(t, box.CurrentlyShooting())
	require.True(t, box.Attack())
	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 2 }, time.Second, time.Millisecond)

	close(gates[0])
	require.Eventually(t, func() bool { return box.inbox.len() == 1 }, time.Second, time.Millisecond)
	box.Update()
	assert.Nil(t, box.Sprite().Active(), "first shot's sprite never shows on the second")

	close(gates[1])
	require.Eventually(t, func() bool { return box.inbox.len() == 1 }, time.Second, time.Millisecond)
	box.Update()
	require.NotNil(t, box.Sprite().Active())
	assert.Equal(t, "http://img/1.png", box.Sprite().Active().Source)
}

func TestRemoteSpriteFailureKeepsShotFlying(t *testing.T) {
	world, _ := newTestWorld()
	world.Fetcher = fetchFunc(func(ctx context.Context, api string) (*assets.RemoteSprite, error) {
		return nil, errors.New("boom")
	})
	cfg := shotConfig()
	cfg.API = "http://api/random"
	box := NewAttackBox(newOwner(100, config.DirectionRight), world, cfg, nil)

	require.True(t, box.Attack())
	require.Eventually(t, func() bool { return box.inbox.len() == 1 }, time.Second, time.Millisecond)
	box.Update()

	assert.Nil(t, box.Sprite().Active())
	assert.True(t, box.CurrentlyShooting())
	assert.Equal(t, 40.0, box.Width())
}

func TestAttackBoxReset(t *testing.T) {
	world, _ := newTestWorld()
	box := NewAttackBox(newOwner(100, config.DirectionRight), world, shotConfig(), nil)
	box.Attack()

	box.Reset()
	assert.Equal(t, StateIdle, box.State())
	assert.False(t, box.InRenderQueue())
	assert.Equal(t, gamemath.Vec2{}, box.Velocity())
	assert.Zero(t, world.Timers.Len())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Idle", StateIdle.String())
	assert.Equal(t, "OnCooldown|ProjectileActive", (StateOnCooldown | StateProjectileActive).String())
	assert.True(t, (StateOnCooldown | StateMeleeResolving).Has(StateMeleeResolving))
	assert.False(t, StateOnCooldown.Has(StateProjectileActive))
}
