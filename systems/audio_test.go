package systems

import (
	"testing"

	cfg "github.com/automoto/brawler/config"
	"github.com/stretchr/testify/assert"
)

func TestSFXMuteAndVolume(t *testing.T) {
	s := NewSFX(nil)
	s.PlaySFX(cfg.SoundPunch)
	s.PlaySFX(cfg.SoundNone)
	assert.Equal(t, []cfg.SoundID{cfg.SoundPunch}, s.Played())
	assert.Empty(t, s.Played(), "drained")

	assert.True(t, s.ToggleMute())
	s.PlaySFX(cfg.SoundHit)
	assert.Empty(t, s.Played())

	s.SetMuted(false)
	s.SetVolume(0)
	s.PlaySFX(cfg.SoundHit)
	assert.Empty(t, s.Played())

	s.SetVolume(2)
	assert.Equal(t, 1.0, s.Volume())
	s.SetVolume(-1)
	assert.Equal(t, 0.0, s.Volume())
}
