package animations

import (
	"math/rand"
	"sort"

	"github.com/automoto/brawler/config"
	"github.com/automoto/brawler/gamemath"
)

// Options are the values a frame falls back to when it leaves them unset.
type Options struct {
	Offset gamemath.Vec2 `yaml:"offset"`
	Scale  float64       `yaml:"scale"`
}

// Set is every clip of one character, keyed by name and facing, e.g.
// "attackLeft" or "idleRight".
type Set struct {
	Options Options           `yaml:"options"`
	Frames  map[string]*Frame `yaml:"frames"`
}

// Key builds the lookup key for a clip name and facing.
func Key(name string, dir config.Direction) string {
	return name + string(dir)
}

// Get returns the clip for name facing dir, or nil.
func (s *Set) Get(name string, dir config.Direction) *Frame {
	if s == nil {
		return nil
	}
	return s.Frames[Key(name, dir)]
}

// Resolve returns the offset and scale f is drawn with.
func (s *Set) Resolve(f *Frame) (gamemath.Vec2, float64) {
	var opts Options
	if s != nil {
		opts = s.Options
	}

	offset := opts.Offset
	if f.Offset != nil {
		offset = *f.Offset
	}

	scale := f.Scale
	if scale == 0 {
		scale = opts.Scale
	}
	if scale == 0 {
		scale = config.Animation.DefaultScale
	}
	return offset, scale
}

// Random picks any clip of the set. Keys are sorted first so a seeded source
// gives the same pick every run.
func (s *Set) Random(r *rand.Rand) *Frame {
	if s == nil || len(s.Frames) == 0 {
		return nil
	}
	keys := make([]string, 0, len(s.Frames))
	for k := range s.Frames {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var i int
	if r != nil {
		i = r.Intn(len(keys))
	} else {
		i = rand.Intn(len(keys))
	}
	return s.Frames[keys[i]]
}

// Sources lists the distinct image sources used by the set.
func (s *Set) Sources() []string {
	seen := make(map[string]struct{}, len(s.Frames))
	var out []string
	for _, f := range s.Frames {
		if _, ok := seen[f.Source]; ok {
			continue
		}
		seen[f.Source] = struct{}{}
		out = append(out, f.Source)
	}
	sort.Strings(out)
	return out
}
