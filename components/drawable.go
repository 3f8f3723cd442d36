package components

import (
	"github.com/automoto/brawler/render"
	"github.com/yohamta/donburi"
)

// DrawableData is a render-queue membership.
type DrawableData struct {
	Entity render.Entity
}

// RenderOrderData records insertion order; lower draws first.
type RenderOrderData struct {
	Seq uint64
}

var Drawable = donburi.NewComponentType[DrawableData]()
var RenderOrder = donburi.NewComponentType[RenderOrderData]()
