package animations

// Playback is the per-sprite cursor over the active Frame. Play-time options
// live here so sharing a Frame between sprites never leaks state.
type Playback struct {
	active     *Frame
	frame      int
	elapsed    int
	playOnce   bool
	hold       bool // Stop on the last column instead of handing over to idle
	stopped    bool
	onComplete func()
}

// Active returns the clip being played, or nil.
func (p *Playback) Active() *Frame {
	return p.active
}

// Frame returns the current column, 0-indexed.
func (p *Playback) Frame() int {
	return p.frame
}

// Elapsed returns the ticks since the clip started.
func (p *Playback) Elapsed() int {
	return p.elapsed
}

// PlayOnce reports whether the active clip is a non-looping one.
func (p *Playback) PlayOnce() bool {
	return p.playOnce
}

// IsLastFrame reports whether the cursor sits on the final column.
func (p *Playback) IsLastFrame() bool {
	if p.active == nil {
		return false
	}
	return p.frame >= p.active.Count()-1
}

// TakeCallback returns the active clip's completion callback and clears it,
// so it runs at most once.
func (p *Playback) TakeCallback() func() {
	cb := p.onComplete
	p.onComplete = nil
	return cb
}

// Start installs f and rewinds the cursor. It returns the completion callback
// of the clip being replaced, if it was not taken already.
func (p *Playback) Start(f *Frame, playOnce bool, onComplete func()) func() {
	prev := p.onComplete
	p.active = f
	p.playOnce = playOnce
	p.onComplete = onComplete
	p.hold = false
	p.stopped = false
	p.frame = 0
	p.elapsed = 0
	return prev
}

// HoldOnComplete makes the active play-once clip stop on its last column.
func (p *Playback) HoldOnComplete() {
	p.hold = true
}

// Holds reports whether the active clip stops on its last column.
func (p *Playback) Holds() bool {
	return p.hold
}

// Stopped reports whether a held clip has finished.
func (p *Playback) Stopped() bool {
	return p.stopped
}

// Step advances one tick. It returns true when a play-once clip has shown
// its last column for a full hold; the cursor stays on that column so the
// caller can hand over to the next clip.
func (p *Playback) Step() bool {
	p.elapsed++
	if p.active == nil || p.stopped {
		return false
	}
	if p.elapsed%p.active.Hold() != 0 {
		return false
	}
	if p.IsLastFrame() {
		if p.playOnce {
			return true
		}
		p.frame = 0
		return false
	}
	p.frame++
	return false
}

// Complete ends a play-once clip in place: the clip loops from column 0 and
// its callback runs once.
func (p *Playback) Complete() {
	p.frame = 0
	p.finish()
}

// Stop ends a held clip on its last column and runs its callback once.
func (p *Playback) Stop() {
	p.stopped = true
	p.finish()
}

func (p *Playback) finish() {
	fn := p.onComplete
	p.playOnce = false
	p.onComplete = nil
	if fn != nil {
		fn()
	}
}

// Reset clears the active clip.
func (p *Playback) Reset() {
	*p = Playback{}
}
