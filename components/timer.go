package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// TimerData is a deferred callback owned by the scheduler.
type TimerData struct {
	Due   time.Duration // Scheduler time at which Fire runs
	Seq   uint64        // Tie-breaker for timers due at the same instant
	Label string
	Fire  func()
}

var Timer = donburi.NewComponentType[TimerData]()
