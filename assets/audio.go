package assets

import (
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/automoto/brawler/config"
)

// SFXBank synthesizes sound effects from config.Sound and caches the PCM.
// Samples are 16-bit signed little-endian stereo, the layout ebiten's audio
// players expect.
type SFXBank struct {
	sampleRate int
	cache      map[config.SoundID][]byte
}

// NewSFXBank creates a bank rendering at sampleRate.
func NewSFXBank(sampleRate int) *SFXBank {
	return &SFXBank{
		sampleRate: sampleRate,
		cache:      make(map[config.SoundID][]byte),
	}
}

// Bytes returns the PCM for id, or nil when no tone is configured.
func (b *SFXBank) Bytes(id config.SoundID) []byte {
	if pcm, ok := b.cache[id]; ok {
		return pcm
	}
	tone, ok := config.Sound.Tones[id]
	if !ok {
		return nil
	}
	pcm := Synthesize(tone, b.sampleRate, int64(id))
	b.cache[id] = pcm
	return pcm
}

// Preload renders every configured tone.
func (b *SFXBank) Preload() {
	for id := range config.Sound.Tones {
		b.Bytes(id)
	}
}

// Synthesize renders tone with a linear frequency sweep and a linear fade out.
// seed fixes the noise pattern.
func Synthesize(tone config.ToneConfig, sampleRate int, seed int64) []byte {
	n := int(tone.Duration.Seconds() * float64(sampleRate))
	if n <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := tone.StartFreq + (tone.EndFreq-tone.StartFreq)*t
		phase += freq / float64(sampleRate)

		var v float64
		switch tone.Wave {
		case config.WaveSquare:
			if math.Mod(phase, 1) < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case config.WaveSine:
			v = math.Sin(2 * math.Pi * phase)
		default:
			v = rng.Float64()*2 - 1
		}

		s := int16(v * tone.Volume * (1 - t) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
