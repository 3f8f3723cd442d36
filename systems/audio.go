package systems

import (
	"bytes"
	"sync"

	"github.com/automoto/brawler/assets"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/logging"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
)

// Global audio context - ebiten allows exactly one per process
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

// AudioContext returns the shared audio context, creating it on first use.
func AudioContext() *audio.Context {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return globalAudioContext
}

// SFX plays synthesized sound effects. A nil context makes it silent, which
// keeps headless runs and tests free of audio devices.
type SFX struct {
	context *audio.Context
	bank    *assets.SFXBank
	volume  float64
	muted   bool
	played  []cfg.SoundID
	log     zerolog.Logger
}

// NewSFX creates a player on ctx.
func NewSFX(ctx *audio.Context) *SFX {
	return &SFX{
		context: ctx,
		bank:    assets.NewSFXBank(cfg.Audio.SampleRate),
		volume:  cfg.Audio.DefaultSFXVol,
		log:     logging.For("sfx"),
	}
}

// Preload renders every sound so the first play has no synthesis lag.
func (s *SFX) Preload() {
	s.bank.Preload()
}

// PlaySFX starts sound id. Muted or zero-volume players drop the request.
func (s *SFX) PlaySFX(id cfg.SoundID) {
	if s.muted || s.volume <= 0 || id == cfg.SoundNone {
		return
	}
	s.played = append(s.played, id)
	if s.context == nil {
		return
	}

	pcm := s.bank.Bytes(id)
	if pcm == nil {
		return
	}
	player, err := s.context.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		s.log.Warn().Err(err).Int("sound", int(id)).Msg("could not create sfx player")
		return
	}
	player.SetVolume(s.volume)
	player.Play()
}

// Played drains the sounds requested since the last call.
func (s *SFX) Played() []cfg.SoundID {
	out := s.played
	s.played = nil
	return out
}

// SetVolume changes the SFX volume, clamped to 0..1.
func (s *SFX) SetVolume(v float64) {
	switch {
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	s.volume = v
}

func (s *SFX) Volume() float64 {
	return s.volume
}

func (s *SFX) SetMuted(m bool) {
	s.muted = m
}

func (s *SFX) Muted() bool {
	return s.muted
}

// ToggleMute flips mute and returns the new state.
func (s *SFX) ToggleMute() bool {
	s.muted = !s.muted
	return s.muted
}
