package config

// BotConfigData holds tuning values for the computer-controlled fighter
type BotConfigData struct {
	ReactionDelay int     // Ticks between decisions
	AttackRange   float64 // Horizontal distance to start punching
	ShootRange    float64 // Horizontal distance to start shooting
	JumpChance    float64 // Probability per decision of jumping
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		ReactionDelay: 15, // 0.25 second reaction time
		AttackRange:   120.0,
		ShootRange:    420.0,
		JumpChance:    0.05,
	}
}
