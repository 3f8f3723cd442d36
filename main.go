package main

import (
	"flag"
	"os"

	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/config"
	"github.com/automoto/brawler/fonts"
	"github.com/automoto/brawler/logging"
	"github.com/automoto/brawler/scenes"
	"github.com/automoto/brawler/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configDir := flag.String("config", ".", "directory containing brawler.yaml")
	logLevel := flag.String("log-level", "", "log level (overrides config)")
	bot := flag.Bool("bot", false, "let the computer control the second fighter")
	overlay := flag.Bool("hitboxes", false, "start with the hitbox overlay on")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		logging.Setup(nil, "error")
		logging.Logger.Fatal().Err(err).Msg("Could not load config")
	}
	if *logLevel != "" {
		config.Log.Level = *logLevel
	}
	if *bot {
		config.Debug.Bot = true
	}
	logging.Setup(nil, config.Log.Level)
	log := logging.For("main")

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("Could not load fonts")
	}

	sfx := systems.NewSFX(systems.AudioContext())
	sfx.Preload()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Warn().Err(err).Msg("Could not initialize persistence")
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Warn().Err(err).Msg("Could not load settings")
	}
	systems.ApplySavedSettings(saved, sfx)
	if *overlay {
		config.Env.DisplayAttackBoxes = true
	}

	sets, err := assets.LoadSpriteSets()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load sprite sets")
	}
	arena, err := assets.LoadArena()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load arena")
	}
	images := assets.NewImageLoader(nil)
	if err := images.Preload(sets); err != nil {
		log.Fatal().Err(err).Msg("Could not load sprite images")
	}

	opts := scenes.ArenaOptions{
		Sets:   sets,
		Arena:  arena,
		Images: images,
		SFX:    sfx,
		Bot:    config.Debug.Bot,
	}
	if config.Combat.Shot.API != "" {
		opts.Fetcher = assets.NewRemoteClient(config.Remote.Timeout)
	}
	scene, err := scenes.NewArenaScene(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not build arena")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("brawler")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		log.Error().Err(err).Msg("Game exited")
		os.Exit(1)
	}
}
