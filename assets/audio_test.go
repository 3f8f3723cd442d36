package assets

import (
	"testing"
	"time"

	"github.com/automoto/brawler/config"
	"github.com/stretchr/testify/assert"
)

func TestSynthesizeLength(t *testing.T) {
	tone := config.ToneConfig{Wave: config.WaveSine, StartFreq: 440, EndFreq: 440, Duration: 100 * time.Millisecond, Volume: 1}
	pcm := Synthesize(tone, 1000, 1)
	assert.Len(t, pcm, 100*4)

	assert.Nil(t, Synthesize(config.ToneConfig{}, 44100, 1))
}

func TestSynthesizeSilentAtZeroVolume(t *testing.T) {
	tone := config.ToneConfig{Wave: config.WaveNoise, Duration: 10 * time.Millisecond}
	for _, b := range Synthesize(tone, 8000, 1) {
		assert.Zero(t, b)
	}
}

func TestSFXBank(t *testing.T) {
	bank := NewSFXBank(8000)
	punch := bank.Bytes(config.SoundPunch)
	assert.NotEmpty(t, punch)
	assert.Same(t, &punch[0], &bank.Bytes(config.SoundPunch)[0], "cached")
	assert.Nil(t, bank.Bytes(config.SoundNone))
}
