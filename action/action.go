// Package action defines the internal representation of key actions used by
// the keymap, combo, and report-processing packages.
//
// The zero value of [KeyAction] is the "no action" sentinel that marks unused
// trigger and output slots throughout the firmware.
package action

// Kind classifies a KeyAction.
type Kind uint8

// Key action kinds.
const (
	KindNo          Kind = iota // Empty slot, produces nothing
	KindTransparent             // Defer to the layer below
	KindKey                     // Single HID key
	KindModified                // HID key with held modifiers
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNo:
		return "no"
	case KindTransparent:
		return "transparent"
	case KindKey:
		return "key"
	case KindModified:
		return "modified"
	default:
		return "unknown"
	}
}

// Keycode is a HID usage ID from the keyboard/keypad usage page.
type Keycode uint8

// Modifiers is a bitmask of held modifier keys. Bits 0-3 select
// Ctrl/Shift/Alt/GUI; bit 4 selects the right-hand variants.
type Modifiers uint8

// KeyAction is one key behavior slot. The zero value is the "no action"
// sentinel. KeyAction is comparable; two actions are the same behavior
// exactly when they are ==.
type KeyAction struct {
	Kind Kind
	Key  Keycode
	Mods Modifiers
}

// No is the "no action" sentinel.
var No = KeyAction{}

// Transparent defers to the next lower layer.
var Transparent = KeyAction{Kind: KindTransparent}

// Key returns a plain single-key action.
func Key(k Keycode) KeyAction {
	return KeyAction{Kind: KindKey, Key: k}
}

// Modified returns a key action with held modifiers.
func Modified(k Keycode, mods Modifiers) KeyAction {
	return KeyAction{Kind: KindModified, Key: k, Mods: mods}
}

// IsNo reports whether the action is the "no action" sentinel.
func (a KeyAction) IsNo() bool {
	return a == No
}
