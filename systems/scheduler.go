package systems

import (
	"sort"
	"time"

	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	"github.com/yohamta/donburi"
)

// TimerHandle is the cancellation token returned by After.
type TimerHandle = donburi.Entity

// Scheduler runs deferred callbacks on the game goroutine. Time only moves
// when Advance is called, once per tick with the tick duration, so callbacks
// never race the tick loop.
type Scheduler struct {
	world donburi.World
	now   time.Duration
	seq   uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{world: donburi.NewWorld()}
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once d has elapsed. A zero delay fires on the
// next Advance, never synchronously.
func (s *Scheduler) After(d time.Duration, label string, fn func()) TimerHandle {
	if d < 0 {
		d = 0
	}
	s.seq++
	entry := archetypes.Timer.Spawn(s.world)
	components.Timer.SetValue(entry, components.TimerData{
		Due:   s.now + d,
		Seq:   s.seq,
		Label: label,
		Fire:  fn,
	})
	return entry.Entity()
}

// Cancel guarantees the callback behind h never runs. It reports whether the
// timer was still pending.
func (s *Scheduler) Cancel(h TimerHandle) bool {
	if !s.world.Valid(h) {
		return false
	}
	s.world.Remove(h)
	return true
}

// Pending reports whether h has neither fired nor been cancelled.
func (s *Scheduler) Pending(h TimerHandle) bool {
	return s.world.Valid(h)
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	return s.world.Len()
}

type dueTimer struct {
	handle TimerHandle
	due    time.Duration
	seq    uint64
}

// Advance moves the clock by dt and fires every timer that came due, earliest
// first. Timers scheduled by a callback wait for the next Advance; timers
// cancelled by an earlier callback in the same pass do not fire.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	var due []dueTimer
	components.Timer.Each(s.world, func(e *donburi.Entry) {
		t := components.Timer.Get(e)
		if t.Due <= s.now {
			due = append(due, dueTimer{handle: e.Entity(), due: t.Due, seq: t.Seq})
		}
	})
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})

	fired := 0
	for _, d := range due {
		if !s.world.Valid(d.handle) {
			continue
		}
		fn := components.Timer.Get(s.world.Entry(d.handle)).Fire
		s.world.Remove(d.handle)
		if fn != nil {
			fn()
		}
		fired++
	}
	return fired
}
