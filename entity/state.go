package entity

import "strings"

// State is the set of attack flags. OnCooldown and ProjectileActive are
// independent: a shot can still be flying after the cooldown has ended.
type State uint8

const StateIdle State = 0

const (
	StateOnCooldown State = 1 << iota
	StateMeleeResolving
	StateProjectileActive
)

// Has reports whether every flag in f is set.
func (s State) Has(f State) bool {
	return s&f == f
}

func (s State) String() string {
	if s == StateIdle {
		return "Idle"
	}
	var parts []string
	if s.Has(StateOnCooldown) {
		parts = append(parts, "OnCooldown")
	}
	if s.Has(StateMeleeResolving) {
		parts = append(parts, "MeleeResolving")
	}
	if s.Has(StateProjectileActive) {
		parts = append(parts, "ProjectileActive")
	}
	return strings.Join(parts, "|")
}
