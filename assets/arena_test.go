package assets

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArena(t *testing.T) {
	arena, err := LoadArena()
	require.NoError(t, err)

	assert.Equal(t, "arena", arena.Name)
	assert.Equal(t, 1024, arena.Width)
	assert.Equal(t, 576, arena.Height)
	assert.Equal(t, 480.0, arena.GroundY)
	assert.Len(t, arena.Walls, 2)
	require.Len(t, arena.Spawns, 2)
	assert.Equal(t, 0, arena.Spawns[0].Index)
	assert.Equal(t, 1, arena.Spawns[1].Index)
	assert.Less(t, arena.Spawns[0].X, arena.Spawns[1].X)
}

func TestLoadArenaWithoutGround(t *testing.T) {
	fsys := fstest.MapFS{"bad.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="32" height="128"/>
 </objectgroup>
</map>`)}}

	_, err := LoadArenaFS(fsys, "bad.tmx")
	assert.ErrorContains(t, err, "no Ground")
}

func TestLoadArenaMissingFile(t *testing.T) {
	_, err := LoadArenaFS(fstest.MapFS{}, "nope.tmx")
	assert.Error(t, err)
}
