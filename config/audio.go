package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundPunch
	SoundShot
	SoundHit
	SoundDeath
	// Movement sounds
	SoundJump
)

// WaveKind selects the generator used to synthesize a sound effect
type WaveKind int

const (
	WaveNoise WaveKind = iota
	WaveSquare
	WaveSine
)

// ToneConfig describes a synthesized sound effect
type ToneConfig struct {
	Wave      WaveKind
	StartFreq float64 // Hz
	EndFreq   float64 // Hz, linear sweep from StartFreq
	Duration  time.Duration
	Volume    float64 // 0..1 before the global SFX volume
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones map[SoundID]ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundPunch: {Wave: WaveNoise, Duration: 90 * time.Millisecond, Volume: 0.8},
			SoundShot:  {Wave: WaveSquare, StartFreq: 880, EndFreq: 220, Duration: 180 * time.Millisecond, Volume: 0.4},
			SoundHit:   {Wave: WaveNoise, Duration: 140 * time.Millisecond, Volume: 1.0},
			SoundDeath: {Wave: WaveSine, StartFreq: 440, EndFreq: 60, Duration: 700 * time.Millisecond, Volume: 0.7},
			SoundJump:  {Wave: WaveSine, StartFreq: 300, EndFreq: 600, Duration: 120 * time.Millisecond, Volume: 0.3},
		},
	}
}
