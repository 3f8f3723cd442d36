package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConfigName is the file Load looks for (brawler.yaml, brawler.json, ...).
const ConfigName = "brawler"

// Load reads the optional config file in configDir plus BRAWLER_* environment
// variables and writes the result into the global configuration. A missing file
// is not an error: the init() defaults stay in place.
func Load(configDir string) error {
	setDefaults()

	viper.SetConfigName(ConfigName)
	viper.AddConfigPath(configDir)
	viper.SetEnvPrefix("BRAWLER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return apply()
}

func setDefaults() {
	viper.SetDefault("window.width", C.Width)
	viper.SetDefault("window.height", C.Height)
	viper.SetDefault("window.tps", C.TPS)

	viper.SetDefault("env.displayAttackBoxes", Env.DisplayAttackBoxes)
	viper.SetDefault("env.gravity", Env.Gravity)
	viper.SetDefault("env.groundY", Env.GroundY)

	setAttackDefaults("combat.melee", Combat.Melee)
	setAttackDefaults("combat.shot", Combat.Shot)
	viper.SetDefault("combat.health", Combat.Health)

	viper.SetDefault("remote.spriteApi", Remote.SpriteAPI)
	viper.SetDefault("remote.timeout", Remote.Timeout)

	viper.SetDefault("log.level", Log.Level)
	viper.SetDefault("debug.bot", Debug.Bot)
}

func setAttackDefaults(prefix string, a AttackConfig) {
	viper.SetDefault(prefix+".cooldown", a.Cooldown)
	viper.SetDefault(prefix+".duration", a.Duration)
	viper.SetDefault(prefix+".damage", a.Damage)
	viper.SetDefault(prefix+".knockbackX", a.Knockback.X)
	viper.SetDefault(prefix+".knockbackY", a.Knockback.Y)
	viper.SetDefault(prefix+".velocityX", a.Velocity.X)
	viper.SetDefault(prefix+".velocityY", a.Velocity.Y)
	viper.SetDefault(prefix+".width", a.Width)
	viper.SetDefault(prefix+".height", a.Height)
	viper.SetDefault(prefix+".api", a.API)
}

func apply() error {
	C.Width = viper.GetInt("window.width")
	C.Height = viper.GetInt("window.height")
	C.TPS = viper.GetInt("window.tps")
	if C.Width <= 0 || C.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", C.Width, C.Height)
	}

	Env.DisplayAttackBoxes = viper.GetBool("env.displayAttackBoxes")
	Env.Gravity = viper.GetFloat64("env.gravity")
	Env.GroundY = viper.GetFloat64("env.groundY")

	Combat.Melee = readAttack("combat.melee", Combat.Melee)
	Combat.Shot = readAttack("combat.shot", Combat.Shot)
	Combat.Health = viper.GetFloat64("combat.health")
	if Combat.Health <= 0 {
		return fmt.Errorf("combat.health must be positive, got %v", Combat.Health)
	}

	Remote.SpriteAPI = viper.GetString("remote.spriteApi")
	Remote.Timeout = viper.GetDuration("remote.timeout")
	if Combat.Shot.API == "" {
		Combat.Shot.API = Remote.SpriteAPI
	}

	Log.Level = viper.GetString("log.level")
	Debug.Bot = viper.GetBool("debug.bot")
	return nil
}

func readAttack(prefix string, a AttackConfig) AttackConfig {
	a.Cooldown = viper.GetDuration(prefix + ".cooldown")
	a.Duration = viper.GetDuration(prefix + ".duration")
	a.Damage = viper.GetFloat64(prefix + ".damage")
	a.Knockback.X = viper.GetFloat64(prefix + ".knockbackX")
	a.Knockback.Y = viper.GetFloat64(prefix + ".knockbackY")
	a.Velocity.X = viper.GetFloat64(prefix + ".velocityX")
	a.Velocity.Y = viper.GetFloat64(prefix + ".velocityY")
	a.Width = viper.GetFloat64(prefix + ".width")
	a.Height = viper.GetFloat64(prefix + ".height")
	a.API = viper.GetString(prefix + ".api")
	return a
}
