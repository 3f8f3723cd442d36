package systems

import (
	"sort"

	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/render"
	"github.com/yohamta/donburi"
)

// Handle identifies one render-queue membership. Handles carry a generation,
// so a removed handle never aliases a member added later.
type Handle = donburi.Entity

// RenderQueue is the ordered set of entities updated and drawn once per tick.
// Members leave by handle, never by a cached index.
type RenderQueue struct {
	world donburi.World
	seq   uint64
}

type member struct {
	handle Handle
	entity render.Entity
	seq    uint64
}

func NewRenderQueue() *RenderQueue {
	return &RenderQueue{world: donburi.NewWorld()}
}

// Push appends e and returns its handle.
func (q *RenderQueue) Push(e render.Entity) Handle {
	q.seq++
	entry := archetypes.Queued.Spawn(q.world)
	components.Drawable.SetValue(entry, components.DrawableData{Entity: e})
	components.RenderOrder.SetValue(entry, components.RenderOrderData{Seq: q.seq})
	return entry.Entity()
}

// Remove drops the member behind h. Removing a stale handle is a no-op and
// reports false.
func (q *RenderQueue) Remove(h Handle) bool {
	if !q.world.Valid(h) {
		return false
	}
	q.world.Remove(h)
	return true
}

// Contains reports whether h is a live member.
func (q *RenderQueue) Contains(h Handle) bool {
	return q.world.Valid(h)
}

// IndexOf returns the current draw position of h, or -1.
func (q *RenderQueue) IndexOf(h Handle) int {
	if !q.world.Valid(h) {
		return -1
	}
	for i, m := range q.members() {
		if m.handle == h {
			return i
		}
	}
	return -1
}

// Len returns the number of members.
func (q *RenderQueue) Len() int {
	return q.world.Len()
}

// Entities returns the members in draw order.
func (q *RenderQueue) Entities() []render.Entity {
	ms := q.members()
	out := make([]render.Entity, len(ms))
	for i, m := range ms {
		out[i] = m.entity
	}
	return out
}

// Update advances every member once. Members removed by an earlier member
// during the pass are skipped; members added during the pass wait a tick.
func (q *RenderQueue) Update() {
	for _, m := range q.members() {
		if !q.world.Valid(m.handle) {
			continue
		}
		m.entity.Update()
	}
}

// Draw renders every member in order.
func (q *RenderQueue) Draw(s render.Surface) {
	for _, m := range q.members() {
		m.entity.Draw(s)
	}
}

func (q *RenderQueue) members() []member {
	var ms []member
	components.Drawable.Each(q.world, func(e *donburi.Entry) {
		ms = append(ms, member{
			handle: e.Entity(),
			entity: components.Drawable.Get(e).Entity,
			seq:    components.RenderOrder.Get(e).Seq,
		})
	})
	sort.Slice(ms, func(i, j int) bool { return ms[i].seq < ms[j].seq })
	return ms
}
