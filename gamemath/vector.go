package gamemath

import "github.com/yohamta/donburi/features/math"

// Vec2 is the position/velocity/knockback pair used throughout the game.
type Vec2 = math.Vec2

// V is shorthand for a Vec2 literal.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// MirrorX flips the horizontal component when facing left.
func MirrorX(v Vec2, left bool) Vec2 {
	if left {
		v.X = -v.X
	}
	return v
}
