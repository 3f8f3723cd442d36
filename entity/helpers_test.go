package entity

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/assets/animations"
	"github.com/automoto/brawler/config"
	"github.com/automoto/brawler/gamemath"
	"github.com/automoto/brawler/render"
	"github.com/automoto/brawler/systems"
)

type blit struct {
	sheet render.Sheet
	src   image.Rectangle
	x, y  float64
	scale float64
}

type fill struct {
	x, y, w, h float64
	clr        color.Color
}

type recordingSurface struct {
	blits []blit
	fills []fill
}

func (s *recordingSurface) DrawSubImage(sheet render.Sheet, src image.Rectangle, x, y, scale float64) {
	s.blits = append(s.blits, blit{sheet: sheet, src: src, x: x, y: y, scale: scale})
}

func (s *recordingSurface) FillRect(x, y, w, h float64, clr color.Color) {
	s.fills = append(s.fills, fill{x: x, y: y, w: w, h: h, clr: clr})
}

type imageMap map[string]render.Sheet

func (m imageMap) Image(source string) (render.Sheet, error) {
	if sheet, ok := m[source]; ok {
		return sheet, nil
	}
	return nil, errors.New("no image " + source)
}

type soundLog struct {
	played []config.SoundID
}

func (s *soundLog) PlaySFX(id config.SoundID) {
	s.played = append(s.played, id)
}

type fetchFunc func(ctx context.Context, api string) (*assets.RemoteSprite, error)

func (f fetchFunc) FetchSprite(ctx context.Context, api string) (*assets.RemoteSprite, error) {
	return f(ctx, api)
}

type hit struct {
	amount    float64
	knockback gamemath.Vec2
}

type dummy struct {
	pos  gamemath.Vec2
	w, h float64
	hits []hit
}

func (d *dummy) Position() gamemath.Vec2 { return d.pos }
func (d *dummy) Width() float64          { return d.w }
func (d *dummy) Height() float64         { return d.h }

func (d *dummy) TakeDamage(amount float64, knockback gamemath.Vec2) {
	d.hits = append(d.hits, hit{amount: amount, knockback: knockback})
}

type playCall struct {
	frame    *animations.Frame
	playOnce bool
}

type stubOwner struct {
	pos       gamemath.Vec2
	dir       config.Direction
	set       *animations.Set
	attacking bool
	enemy     *dummy
	plays     []playCall
	complete  func()
}

func (o *stubOwner) Position() gamemath.Vec2         { return o.pos }
func (o *stubOwner) LastDirection() config.Direction { return o.dir }
func (o *stubOwner) SpriteSet() *animations.Set      { return o.set }
func (o *stubOwner) IsAttacking() bool               { return o.attacking }
func (o *stubOwner) SetAttacking(attacking bool)     { o.attacking = attacking }

func (o *stubOwner) PlayAnimation(frame *animations.Frame, playOnce bool, onComplete func()) bool {
	o.plays = append(o.plays, playCall{frame: frame, playOnce: playOnce})
	o.complete = onComplete
	return true
}

// Enemy avoids handing back a typed nil.
func (o *stubOwner) Enemy() Opponent {
	if o.enemy == nil {
		return nil
	}
	return o.enemy
}

func newTestWorld() (World, *soundLog) {
	sound := &soundLog{}
	return World{
		Queue:  systems.NewRenderQueue(),
		Timers: systems.NewScheduler(),
		Sound:  sound,
	}, sound
}

func fighterSet() *animations.Set {
	set := &animations.Set{Frames: map[string]*animations.Frame{}}
	clips := map[string]int{
		config.AnimIdle:       4,
		config.AnimRun:        6,
		config.AnimJump:       2,
		config.AnimAttack:     3,
		config.AnimShotAttack: 3,
		config.AnimDeath:      5,
	}
	for name, n := range clips {
		for _, dir := range []config.Direction{config.DirectionRight, config.DirectionLeft} {
			set.Frames[animations.Key(name, dir)] = &animations.Frame{
				Source:     name + string(dir) + ".png",
				Frames:     n,
				FramesHold: 2,
			}
		}
	}
	return set
}

// setDisplayAttackBoxes flips the overlay for one test.
func setDisplayAttackBoxes(t *testing.T, on bool) {
	t.Helper()
	prev := config.Env.DisplayAttackBoxes
	config.Env.DisplayAttackBoxes = on
	t.Cleanup(func() { config.Env.DisplayAttackBoxes = prev })
}
