package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/assets/animations"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/entity"
	"github.com/automoto/brawler/gamemath"
	"github.com/automoto/brawler/logging"
	"github.com/automoto/brawler/render"
	"github.com/automoto/brawler/systems"
	"github.com/automoto/brawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/solarlune/resolv"
)

// ArenaOptions are the collaborators an arena is built with.
type ArenaOptions struct {
	Sets    map[string]*animations.Set
	Arena   *assets.Arena
	Images  entity.ImageSource
	SFX     *systems.SFX
	Fetcher entity.SpriteFetcher
	Bot     bool // Second fighter is computer-controlled
}

// ArenaScene is a two-fighter round-based match.
type ArenaScene struct {
	world    entity.World
	sfx      *systems.SFX
	arena    *assets.Arena
	space    *resolv.Space
	fighters [2]*entity.Fighter
	bot      *entity.Bot

	inputs [2]systems.InputState
	global systems.InputState

	wins      [2]int
	banner    string
	roundOver bool

	screen *render.Screen
	log    zerolog.Logger
}

// NewArenaScene places both fighters on their spawns and registers them in
// the render queue.
func NewArenaScene(opts ArenaOptions) (*ArenaScene, error) {
	if opts.Arena == nil {
		return nil, fmt.Errorf("arena scene: no arena")
	}
	if len(opts.Arena.Spawns) < len(cfg.Arena.Slots) {
		return nil, fmt.Errorf("arena %s has %d spawns, need %d", opts.Arena.Name, len(opts.Arena.Spawns), len(cfg.Arena.Slots))
	}
	if opts.SFX == nil {
		opts.SFX = systems.NewSFX(nil)
	}

	s := &ArenaScene{
		world: entity.World{
			Queue:   systems.NewRenderQueue(),
			Timers:  systems.NewScheduler(),
			Images:  opts.Images,
			Sound:   opts.SFX,
			Fetcher: opts.Fetcher,
		},
		sfx:   opts.SFX,
		arena: opts.Arena,
		log:   logging.For("arena"),
	}

	if cfg.Env.GroundY != opts.Arena.GroundY {
		s.log.Debug().Float64("groundY", opts.Arena.GroundY).Msg("using arena ground line")
		cfg.Env.GroundY = opts.Arena.GroundY
	}

	s.space = resolv.NewSpace(opts.Arena.Width, opts.Arena.Height, 16, 16)
	for _, w := range opts.Arena.Walls {
		s.space.Add(resolv.NewObject(w.X, w.Y, w.Width, w.Height, tags.ResolvSolid))
	}

	projectile := opts.Sets[cfg.Arena.ProjectileSet]
	for i, slot := range cfg.Arena.Slots {
		set, ok := opts.Sets[slot.Set]
		if !ok {
			return nil, fmt.Errorf("no sprite set %q for %s", slot.Set, slot.Name)
		}
		spawn := opts.Arena.Spawns[i]
		f := entity.NewFighter(entity.FighterOptions{
			Name:       slot.Name,
			Set:        set,
			Projectile: projectile,
			Spawn:      gamemath.V(spawn.X-cfg.Fighter.Width/2, spawn.Y),
			Facing:     slot.Facing,
			Color:      slot.Color,
		}, s.world)
		f.AttachSpace(s.space)
		s.world.Queue.Push(f)
		s.fighters[i] = f
	}
	s.fighters[0].SetEnemy(s.fighters[1])
	s.fighters[1].SetEnemy(s.fighters[0])

	if opts.Bot {
		s.bot = entity.NewBot(s.fighters[1], s.fighters[0], cfg.Arena.BotSeed)
	}

	s.log.Info().
		Str("arena", opts.Arena.Name).
		Bool("bot", opts.Bot).
		Msg("arena ready")
	return s, nil
}

func (s *ArenaScene) Update() {
	probes := systems.DeviceProbes(len(s.fighters))
	var intents [2]entity.Intent
	for i := range s.fighters {
		s.inputs[i].Poll(cfg.Input.Players[i], probes[i])
		intents[i] = intentFrom(&s.inputs[i])
	}
	s.global.Poll(cfg.Input.Global, probes[0])

	if s.global.Action(cfg.ActionToggleHitboxes).JustPressed {
		s.ToggleOverlay()
	}
	if s.global.Action(cfg.ActionToggleMute).JustPressed {
		s.ToggleMute()
	}

	s.Step(intents)
}

// intentFrom maps held actions to a fighter intent. Attacks fire on the
// press edge so holding a button does not auto-repeat.
func intentFrom(in *systems.InputState) entity.Intent {
	return entity.Intent{
		Left:   in.Action(cfg.ActionMoveLeft).Pressed,
		Right:  in.Action(cfg.ActionMoveRight).Pressed,
		Jump:   in.Action(cfg.ActionJump).JustPressed,
		Attack: in.Action(cfg.ActionAttack).JustPressed,
		Shoot:  in.Action(cfg.ActionShoot).JustPressed,
	}
}

// Step runs one tick with the given intents. The bot, when enabled,
// replaces the second fighter's intent.
func (s *ArenaScene) Step(intents [2]entity.Intent) {
	if s.bot != nil {
		intents[1] = s.bot.Decide()
	}
	for i, f := range s.fighters {
		if s.roundOver {
			f.Control(entity.Intent{})
			continue
		}
		f.Control(intents[i])
	}

	s.world.Queue.Update()
	s.world.Timers.Advance(cfg.C.TickDuration())
	s.checkKnockout()
}

func (s *ArenaScene) checkKnockout() {
	if s.roundOver {
		return
	}
	for i, f := range s.fighters {
		if !f.IsDead() {
			continue
		}
		winner := s.fighters[1-i]
		s.wins[1-i]++
		s.roundOver = true
		s.banner = fmt.Sprintf("%s wins!", winner.Name())
		s.log.Info().
			Str("winner", winner.Name()).
			Ints("wins", s.wins[:]).
			Msg("round over")
		s.world.Timers.After(cfg.Arena.RoundResetDelay, "round reset", s.resetRound)
		return
	}
}

func (s *ArenaScene) resetRound() {
	for _, f := range s.fighters {
		f.Reset()
	}
	s.roundOver = false
	s.banner = ""
	s.log.Debug().Msg("round started")
}

// ToggleOverlay flips the hitbox overlay and re-syncs every attack box with
// the render queue.
func (s *ArenaScene) ToggleOverlay() {
	cfg.Env.DisplayAttackBoxes = !cfg.Env.DisplayAttackBoxes
	for _, f := range s.fighters {
		for _, box := range f.AttackBoxes() {
			box.SyncRenderMembership()
		}
	}
	s.saveSettings()
}

// ToggleMute flips sound effects on or off.
func (s *ArenaScene) ToggleMute() {
	s.sfx.ToggleMute()
	s.saveSettings()
}

func (s *ArenaScene) saveSettings() {
	if err := systems.SaveSettings(systems.CurrentSettings(s.sfx)); err != nil {
		s.log.Warn().Err(err).Msg("Could not save settings")
	}
}

func (s *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.DarkBlue)

	if s.screen == nil {
		s.screen = render.NewScreen(screen)
	} else {
		s.screen.Reset(screen)
	}
	s.drawArena(s.screen)
	s.world.Queue.Draw(s.screen)

	systems.DrawDebug(screen, s.space, systems.DebugStats{
		Queued: s.world.Queue.Len(),
		Timers: s.world.Timers.Len(),
		Now:    s.world.Timers.Now().String(),
	})
	systems.DrawHUD(screen, s.HUD())
}

var (
	groundColor = color.RGBA{52, 58, 88, 255}
	wallColor   = color.RGBA{70, 78, 112, 255}
)

func (s *ArenaScene) drawArena(dst render.Surface) {
	dst.FillRect(0, s.arena.GroundY, float64(s.arena.Width), float64(s.arena.Height)-s.arena.GroundY, groundColor)
	for _, w := range s.arena.Walls {
		dst.FillRect(w.X, w.Y, w.Width, w.Height, wallColor)
	}
}

// HUD returns what the overlay shows this frame.
func (s *ArenaScene) HUD() systems.HUDState {
	return systems.HUDState{
		Fighters: []systems.Combatant{s.fighters[0], s.fighters[1]},
		Wins:     s.wins[:],
		Banner:   s.banner,
		Muted:    s.sfx.Muted(),
		Overlay:  cfg.Env.DisplayAttackBoxes,
	}
}

// Fighters returns both fighters, left slot first.
func (s *ArenaScene) Fighters() [2]*entity.Fighter { return s.fighters }

// World exposes the queue and timers the scene drives.
func (s *ArenaScene) World() entity.World { return s.world }

func (s *ArenaScene) Wins() [2]int { return s.wins }

func (s *ArenaScene) RoundOver() bool { return s.roundOver }
