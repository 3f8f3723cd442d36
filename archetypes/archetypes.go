package archetypes

import (
	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
)

var (
	Queued = newArchetype(
		tags.Queued,
		components.Drawable,
		components.RenderOrder,
	)
	Timer = newArchetype(
		tags.Timer,
		components.Timer,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
