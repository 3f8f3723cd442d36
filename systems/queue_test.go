package systems

import (
	"image"
	"image/color"
	"testing"

	"github.com/automoto/brawler/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopSurface struct {
	fills int
}

func (s *nopSurface) DrawSubImage(render.Sheet, image.Rectangle, float64, float64, float64) {}
func (s *nopSurface) FillRect(float64, float64, float64, float64, color.Color) {
	s.fills++
}

type recorder struct {
	name    string
	log     *[]string
	onTick  func()
	updates int
}

func (r *recorder) Update() {
	r.updates++
	*r.log = append(*r.log, r.name)
	if r.onTick != nil {
		r.onTick()
	}
}

func (r *recorder) Draw(s render.Surface) {
	*r.log = append(*r.log, "draw:"+r.name)
	s.FillRect(0, 0, 1, 1, color.Black)
}

func TestRenderQueuePushRemove(t *testing.T) {
	var log []string
	q := NewRenderQueue()
	a := q.Push(&recorder{name: "a", log: &log})
	b := q.Push(&recorder{name: "b", log: &log})
	c := q.Push(&recorder{name: "c", log: &log})

	require.Equal(t, 3, q.Len())
	assert.Equal(t, 0, q.IndexOf(a))
	assert.Equal(t, 1, q.IndexOf(b))
	assert.Equal(t, 2, q.IndexOf(c))

	assert.True(t, q.Remove(a))
	assert.Equal(t, 0, q.IndexOf(b), "indices shift after an earlier member leaves")
	assert.Equal(t, 1, q.IndexOf(c))
	assert.Equal(t, -1, q.IndexOf(a))
	assert.False(t, q.Contains(a))
}

func TestRenderQueueStaleHandle(t *testing.T) {
	var log []string
	q := NewRenderQueue()
	a := q.Push(&recorder{name: "a", log: &log})
	require.True(t, q.Remove(a))

	b := q.Push(&recorder{name: "b", log: &log})
	assert.False(t, q.Remove(a), "a removed handle must not remove a later member")
	assert.True(t, q.Contains(b))
	assert.Equal(t, 1, q.Len())
}

func TestRenderQueueUpdateSkipsRemovedMembers(t *testing.T) {
	var log []string
	q := NewRenderQueue()
	var second Handle
	first := &recorder{name: "a", log: &log}
	first.onTick = func() {
		q.Remove(second)
		q.Push(&recorder{name: "late", log: &log})
	}
	q.Push(first)
	second = q.Push(&recorder{name: "b", log: &log})

	q.Update()
	assert.Equal(t, []string{"a"}, log)

	log = nil
	first.onTick = nil
	q.Update()
	assert.Equal(t, []string{"a", "late"}, log)
}

func TestRenderQueueDrawOrder(t *testing.T) {
	var log []string
	q := NewRenderQueue()
	q.Push(&recorder{name: "a", log: &log})
	h := q.Push(&recorder{name: "b", log: &log})
	q.Push(&recorder{name: "c", log: &log})
	q.Remove(h)
	q.Push(&recorder{name: "d", log: &log})

	s := &nopSurface{}
	q.Draw(s)
	assert.Equal(t, []string{"draw:a", "draw:c", "draw:d"}, log)
	assert.Equal(t, 3, s.fills)
	assert.Len(t, q.Entities(), 3)
}
