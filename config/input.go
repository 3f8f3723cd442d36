package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionShoot
	ActionToggleHitboxes
	ActionToggleMute
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	// Players holds per-fighter bindings, index 0 is the left fighter.
	Players [2]map[ActionID]InputBinding
	// Global actions are not tied to a fighter.
	Global map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Players: [2]map[ActionID]InputBinding{
			{
				ActionMoveLeft: {
					Keys:                   []ebiten.Key{ebiten.KeyA},
					StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
				},
				ActionMoveRight: {
					Keys:                   []ebiten.Key{ebiten.KeyD},
					StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
				},
				ActionJump: {
					Keys:                   []ebiten.Key{ebiten.KeyW},
					StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
				},
				ActionAttack: {
					Keys:                   []ebiten.Key{ebiten.KeySpace},
					StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
				},
				ActionShoot: {
					Keys:                   []ebiten.Key{ebiten.KeyF},
					StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
				},
			},
			{
				ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyArrowLeft}},
				ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyArrowRight}},
				ActionJump:      {Keys: []ebiten.Key{ebiten.KeyArrowUp}},
				ActionAttack:    {Keys: []ebiten.Key{ebiten.KeyArrowDown}},
				ActionShoot:     {Keys: []ebiten.Key{ebiten.KeyEnter}},
			},
		},
		Global: map[ActionID]InputBinding{
			ActionToggleHitboxes: {Keys: []ebiten.Key{ebiten.KeyF1}},
			ActionToggleMute:     {Keys: []ebiten.Key{ebiten.KeyM}},
		},
	}
}
