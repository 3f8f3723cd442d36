package config

// Animation names used as the prefix of sprite-set keys.
const (
	AnimIdle       = "idle"
	AnimRun        = "run"
	AnimJump       = "jump"
	AnimAttack     = "attack"
	AnimShotAttack = "shotAttack"
	AnimDeath      = "death"
)

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	SpriteSetsPath string // Embedded YAML with every sprite set
	DefaultHold    int    // Ticks per frame when a clip leaves framesHold unset
	DefaultScale   float64
}

var Animation AnimationConfig

func init() {
	Animation = AnimationConfig{
		SpriteSetsPath: "spritesets.yaml",
		DefaultHold:    5,
		DefaultScale:   1,
	}
}
