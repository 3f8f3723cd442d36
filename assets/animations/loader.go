package animations

import (
	"fmt"
	"io"
	"io/fs"
	"sort"

	"github.com/automoto/brawler/config"
	"gopkg.in/yaml.v3"
)

// LoadSets decodes a YAML document mapping character names to sprite sets.
//
//	fighter:
//	  options: {offset: {x: -40, y: -10}, scale: 1}
//	  frames:
//	    idleRight: {source: images/fighter_idle_right.svg, frames: 4, framesHold: 8}
func LoadSets(r io.Reader) (map[string]*Set, error) {
	var sets map[string]*Set
	if err := yaml.NewDecoder(r).Decode(&sets); err != nil {
		return nil, fmt.Errorf("failed to parse sprite sets: %w", err)
	}
	for name, s := range sets {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("invalid sprite set %q: %w", name, err)
		}
	}
	return sets, nil
}

// LoadSetsFS reads and decodes path from fsys.
func LoadSetsFS(fsys fs.FS, path string) (map[string]*Set, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite sets: %w", err)
	}
	defer f.Close()
	return LoadSets(f)
}

// Validate checks every clip and fills framesHold defaults.
func (s *Set) Validate() error {
	if s == nil {
		return fmt.Errorf("empty set")
	}
	if s.Options.Scale < 0 {
		return fmt.Errorf("options scale must be >= 0, got %v", s.Options.Scale)
	}

	keys := make([]string, 0, len(s.Frames))
	for k := range s.Frames {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		f := s.Frames[k]
		switch {
		case f == nil:
			return fmt.Errorf("clip %q is empty", k)
		case f.Source == "":
			return fmt.Errorf("clip %q has no source", k)
		case f.Frames < 1:
			return fmt.Errorf("clip %q must have at least one frame, got %d", k, f.Frames)
		case f.FramesHold < 0:
			return fmt.Errorf("clip %q has negative framesHold %d", k, f.FramesHold)
		case f.Scale < 0:
			return fmt.Errorf("clip %q has negative scale %v", k, f.Scale)
		}
		if f.FramesHold == 0 {
			f.FramesHold = config.Animation.DefaultHold
		}
	}
	return nil
}
