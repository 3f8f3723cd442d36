package animations

import "github.com/automoto/brawler/gamemath"

// Frame describes one horizontal sprite strip. A Frame is shared by every
// sprite that plays it and is never modified after loading.
type Frame struct {
	Source     string         `yaml:"source"`
	Frames     int            `yaml:"frames"`     // Columns in the strip
	FramesHold int            `yaml:"framesHold"` // Ticks each column stays on screen
	Scale      float64        `yaml:"scale"`      // 0 means use the set's scale
	Offset     *gamemath.Vec2 `yaml:"offset"`     // nil means use the set's offset
}

// Count returns the number of columns, never less than one.
func (f *Frame) Count() int {
	if f.Frames < 1 {
		return 1
	}
	return f.Frames
}

// Hold returns the ticks per column, never less than one.
func (f *Frame) Hold() int {
	if f.FramesHold < 1 {
		return 1
	}
	return f.FramesHold
}

// Single returns a one-column frame for a standalone image, like a sprite
// fetched at runtime.
func Single(source string, scale float64, offset gamemath.Vec2) *Frame {
	return &Frame{
		Source:     source,
		Frames:     1,
		FramesHold: 1,
		Scale:      scale,
		Offset:     &offset,
	}
}
