package assets

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ArenaPath is the embedded arena map.
const ArenaPath = "levels/arena.tmx"

// Arena is the static layout of a fight.
type Arena struct {
	Name    string
	Width   int
	Height  int
	GroundY float64
	Walls   []Wall
	Spawns  []Spawn
}

// Wall is a solid rectangle fighters cannot pass.
type Wall struct {
	X, Y, Width, Height float64
}

// Spawn is a fighter starting point.
type Spawn struct {
	X, Y  float64
	Index int
}

// LoadArena parses the embedded arena map.
func LoadArena() (*Arena, error) {
	return LoadArenaFS(levelFS, ArenaPath)
}

// LoadArenaFS parses a TMX arena from fsys. The map provides a Ground group
// (its topmost object is the ground line), a Walls group and a PlayerSpawn
// group whose objects carry a spawnIndex property.
func LoadArenaFS(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	ground := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Ground":
			for _, o := range og.Objects {
				if !ground || o.Y < arena.GroundY {
					arena.GroundY = o.Y
					ground = true
				}
			}
		case "Walls":
			for _, o := range og.Objects {
				arena.Walls = append(arena.Walls, Wall{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				arena.Spawns = append(arena.Spawns, Spawn{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if !ground {
		return nil, fmt.Errorf("arena %s has no Ground object", tmxPath)
	}
	if len(arena.Spawns) < 2 {
		return nil, fmt.Errorf("arena %s needs two spawns, found %d", tmxPath, len(arena.Spawns))
	}

	sort.Slice(arena.Spawns, func(i, j int) bool {
		return arena.Spawns[i].Index < arena.Spawns[j].Index
	})

	return arena, nil
}
