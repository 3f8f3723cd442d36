package entity

import (
	"image/color"
	"math/rand"

	"github.com/automoto/brawler/assets/animations"
	"github.com/automoto/brawler/config"
	"github.com/automoto/brawler/gamemath"
	"github.com/automoto/brawler/logging"
	"github.com/automoto/brawler/render"
	"github.com/rs/zerolog"
)

// SpriteOptions configures a new Sprite. Zero sizes and a nil color fall back
// to config.Sprite.
type SpriteOptions struct {
	Position   gamemath.Vec2
	Velocity   gamemath.Vec2
	Width      float64
	Height     float64
	Color      color.Color
	HasGravity bool
	Facing     config.Direction
	Set        *animations.Set
	Images     ImageSource

	// RandomSprite starts the sprite on a random clip of Set.
	RandomSprite bool
	Rand         *rand.Rand
}

// Sprite is an animated, optionally falling rectangle.
type Sprite struct {
	position   gamemath.Vec2
	velocity   gamemath.Vec2
	width      float64
	height     float64
	color      color.Color
	hasGravity bool
	facing     config.Direction

	set      *animations.Set
	playback animations.Playback
	offset   gamemath.Vec2
	scale    float64
	sheet    render.Sheet
	sheets   map[string]render.Sheet
	images   ImageSource

	log zerolog.Logger
}

func NewSprite(opts SpriteOptions) *Sprite {
	s := &Sprite{
		position:   opts.Position,
		velocity:   opts.Velocity,
		width:      opts.Width,
		height:     opts.Height,
		color:      opts.Color,
		hasGravity: opts.HasGravity,
		facing:     opts.Facing,
		set:        opts.Set,
		images:     opts.Images,
		scale:      1,
		sheets:     make(map[string]render.Sheet),
		log:        logging.For("sprite"),
	}
	if s.width == 0 {
		s.width = config.Sprite.Width
	}
	if s.height == 0 {
		s.height = config.Sprite.Height
	}
	if s.color == nil {
		s.color = config.Sprite.Color
	}
	if s.facing == "" {
		s.facing = config.DirectionRight
	}

	if s.set != nil && opts.RandomSprite {
		s.PlayAnimation(s.set.Random(opts.Rand), false, nil)
	}
	return s
}

// PlayAnimation switches to frame. It refuses, returning false, when the
// active clip is play-once and unfinished (only the death clip for the
// current facing may cut in) or when frame shows the same source already on
// screen. On a switch the previous clip's completion callback runs first,
// while that clip is still active.
func (s *Sprite) PlayAnimation(frame *animations.Frame, playOnce bool, onComplete func()) bool {
	if frame == nil {
		s.log.Debug().Msg("ignoring request for a missing animation")
		return false
	}

	if active := s.playback.Active(); active != nil {
		if frame != s.set.Get(config.AnimDeath, s.facing) &&
			s.playback.PlayOnce() && !s.playback.IsLastFrame() {
			s.log.Debug().
				Str("active", active.Source).
				Str("requested", frame.Source).
				Msg("play-once animation can't be interrupted")
			return false
		}
		if active.Source == frame.Source {
			s.log.Debug().Str("source", frame.Source).Msg("animation already playing")
			return false
		}
	}

	if prev := s.playback.TakeCallback(); prev != nil {
		prev()
	}
	s.playback.Start(frame, playOnce, onComplete)
	s.offset, s.scale = s.set.Resolve(frame)
	s.sheet = s.resolveSheet(frame.Source)
	return true
}

func (s *Sprite) resolveSheet(source string) render.Sheet {
	if sheet, ok := s.sheets[source]; ok {
		return sheet
	}
	if s.images == nil {
		return nil
	}
	sheet, err := s.images.Image(source)
	if err != nil {
		s.log.Warn().Err(err).Str("source", source).Msg("could not load sprite sheet")
		return nil
	}
	s.sheets[source] = sheet
	return sheet
}

// AddSheet makes sheet the image for source, ahead of the ImageSource.
func (s *Sprite) AddSheet(source string, sheet render.Sheet) {
	s.sheets[source] = sheet
}

// ResetAnimation drops the active clip without running its callback.
func (s *Sprite) ResetAnimation() {
	s.playback.Reset()
	s.sheet = nil
	s.offset = gamemath.Vec2{}
	s.scale = 1
}

// HoldLastFrame makes the active play-once clip stop on its last column
// instead of returning to idle.
func (s *Sprite) HoldLastFrame() {
	s.playback.HoldOnComplete()
}

// Update advances the animation and integrates velocity and gravity by one
// tick. Drawing is separate; see Tick.
func (s *Sprite) Update() {
	if s.playback.Step() {
		s.finishPlayOnce()
	}

	s.position.X += s.velocity.X
	s.position.Y += s.velocity.Y

	if s.hasGravity {
		if gamemath.Landed(s.position.Y, s.Height(), s.velocity.Y, config.Env.GroundY) {
			s.velocity.Y = 0
		} else {
			s.velocity.Y += config.Env.Gravity
		}
	}
}

func (s *Sprite) finishPlayOnce() {
	if s.playback.Holds() {
		s.playback.Stop()
		return
	}
	idle := s.set.Get(config.AnimIdle, s.facing)
	if idle != nil && s.PlayAnimation(idle, false, nil) {
		return
	}
	s.playback.Complete()
}

// Draw blits the current column at position+offset and, with the overlay
// enabled, fills the hitbox.
func (s *Sprite) Draw(dst render.Surface) {
	if f := s.playback.Active(); f != nil && s.sheet != nil {
		src := render.FrameRect(s.sheet, s.playback.Frame(), f.Count())
		dst.DrawSubImage(s.sheet, src, s.position.X+s.offset.X, s.position.Y+s.offset.Y, s.scale)
	}
	if config.Env.DisplayAttackBoxes {
		dst.FillRect(s.position.X, s.position.Y, s.Width(), s.Height(), s.color)
	}
}

// Tick draws the current state, then advances it.
func (s *Sprite) Tick(dst render.Surface) {
	s.Draw(dst)
	s.Update()
}

// Width is animation-driven once a sheet is loaded, the configured value otherwise.
func (s *Sprite) Width() float64 {
	if f := s.playback.Active(); f != nil && s.sheet != nil {
		return float64(s.sheet.Bounds().Dx()) / float64(f.Count()) * s.scale
	}
	return s.width
}

// Height is animation-driven once a sheet is loaded, the configured value otherwise.
func (s *Sprite) Height() float64 {
	if s.playback.Active() != nil && s.sheet != nil {
		return float64(s.sheet.Bounds().Dy()) * s.scale
	}
	return s.height
}

// SetSize changes the fallback dimensions.
func (s *Sprite) SetSize(w, h float64) {
	s.width = w
	s.height = h
}

// IsLastFrame reports whether the active clip shows its final column.
func (s *Sprite) IsLastFrame() bool {
	return s.playback.IsLastFrame()
}

// IsOnGround reports whether the next vertical step reaches the ground line.
func (s *Sprite) IsOnGround() bool {
	return gamemath.Landed(s.position.Y, s.Height(), s.velocity.Y, config.Env.GroundY)
}

func (s *Sprite) Position() gamemath.Vec2 { return s.position }

func (s *Sprite) SetPosition(p gamemath.Vec2) { s.position = p }

func (s *Sprite) Velocity() gamemath.Vec2 { return s.velocity }

func (s *Sprite) SetVelocity(v gamemath.Vec2) { s.velocity = v }

func (s *Sprite) Facing() config.Direction { return s.facing }

func (s *Sprite) SetFacing(d config.Direction) { s.facing = d }

func (s *Sprite) Color() color.Color { return s.color }

func (s *Sprite) SetColor(c color.Color) { s.color = c }

func (s *Sprite) SpriteSet() *animations.Set { return s.set }

// Active returns the clip on screen, or nil.
func (s *Sprite) Active() *animations.Frame { return s.playback.Active() }

func (s *Sprite) CurrentFrame() int { return s.playback.Frame() }

func (s *Sprite) ElapsedTicks() int { return s.playback.Elapsed() }

func (s *Sprite) Scale() float64 { return s.scale }

func (s *Sprite) Offset() gamemath.Vec2 { return s.offset }

func (s *Sprite) HasGravity() bool { return s.hasGravity }
