package systems

import (
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Reusable slices for gamepad IDs to avoid allocations
var (
	gamepadIDs   []ebiten.GamepadID
	justAttached []ebiten.GamepadID
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputProbe reports raw device state for one player.
type InputProbe interface {
	KeyPressed(key ebiten.Key) bool
	ButtonPressed(btn ebiten.StandardGamepadButton) bool
}

// InputState stores the current and previous tick's pressed state for all
// actions. JustPressed/JustReleased are computed on demand.
type InputState struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Poll swaps buffers and records which bound actions are held.
func (in *InputState) Poll(bindings map[cfg.ActionID]cfg.InputBinding, probe InputProbe) {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range bindings {
		for _, key := range binding.Keys {
			if probe.KeyPressed(key) {
				in.Current[actionID] = true
			}
		}
		for _, btn := range binding.StandardGamepadButtons {
			if probe.ButtonPressed(btn) {
				in.Current[actionID] = true
			}
		}
	}
}

// Action returns the full ActionState for an action ID.
func (in *InputState) Action(id cfg.ActionID) ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// DeviceProbe reads the keyboard and, when one is bound, a standard-layout gamepad.
type DeviceProbe struct {
	Gamepad    ebiten.GamepadID
	HasGamepad bool
}

func (p DeviceProbe) KeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (p DeviceProbe) ButtonPressed(btn ebiten.StandardGamepadButton) bool {
	if !p.HasGamepad || !ebiten.IsStandardGamepadLayoutAvailable(p.Gamepad) {
		return false
	}
	return ebiten.IsStandardGamepadButtonPressed(p.Gamepad, btn)
}

// DeviceProbes returns one probe per player slot. Slot i gets the i-th
// connected gamepad, if any.
func DeviceProbes(slots int) []DeviceProbe {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, id := range inpututil.AppendJustConnectedGamepadIDs(justAttached[:0]) {
		logging.Logger.Info().Int("gamepad", int(id)).Str("name", ebiten.GamepadName(id)).Msg("gamepad connected")
	}

	probes := make([]DeviceProbe, slots)
	for i := range probes {
		if i < len(gamepadIDs) {
			probes[i] = DeviceProbe{Gamepad: gamepadIDs[i], HasGamepad: true}
		}
	}
	return probes
}
