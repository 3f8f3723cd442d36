package tags

import "github.com/yohamta/donburi"

var (
	Queued = donburi.NewTag().SetName("Queued")
	Timer  = donburi.NewTag().SetName("Timer")
)

// Resolv tags for arena collision
const (
	ResolvSolid   = "solid"
	ResolvFighter = "Fighter"
)
