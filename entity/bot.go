package entity

import (
	"math"
	"math/rand"

	"github.com/automoto/brawler/config"
)

// BotState is what the bot is currently trying to do.
type BotState int

const (
	BotStateIdle BotState = iota
	BotStateChase
	BotStateAttack
	BotStateShoot
)

// Bot drives a fighter toward its target. It re-evaluates every
// config.Bot.ReactionDelay ticks and keeps moving in between.
type Bot struct {
	self   *Fighter
	target *Fighter
	rng    *rand.Rand

	State         BotState
	decisionTimer int
	move          Intent
}

// NewBot creates a bot for self. A fixed seed gives a repeatable fight.
func NewBot(self, target *Fighter, seed int64) *Bot {
	return &Bot{
		self:   self,
		target: target,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Decide returns this tick's intent.
func (b *Bot) Decide() Intent {
	if b.decisionTimer > 0 {
		b.decisionTimer--
		return b.move
	}
	b.decisionTimer = config.Bot.ReactionDelay

	if b.self.IsDead() || b.target == nil || b.target.IsDead() {
		b.State = BotStateIdle
		b.move = Intent{}
		return b.move
	}

	dx := center(b.target) - center(b.self)
	dist := math.Abs(dx)
	toward := config.DirectionRight
	if dx < 0 {
		toward = config.DirectionLeft
	}

	var in Intent
	switch {
	case dist <= config.Bot.AttackRange:
		b.State = BotStateAttack
		in.Face = toward
		in.Attack = true
	case dist <= config.Bot.ShootRange && !b.self.Shot().CurrentlyShooting():
		b.State = BotStateShoot
		in.Face = toward
		in.Shoot = true
	default:
		b.State = BotStateChase
		in.Left = toward == config.DirectionLeft
		in.Right = toward == config.DirectionRight
	}
	if b.rng.Float64() < config.Bot.JumpChance {
		in.Jump = true
	}

	// Only movement carries over to the ticks between decisions.
	b.move = Intent{Left: in.Left, Right: in.Right, Face: in.Face}
	return in
}

func center(f *Fighter) float64 {
	return f.Position().X + f.Width()/2
}
