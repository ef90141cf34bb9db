package via

import "github.com/drindr/rmk/action"

// Wire keycode ranges of the VIA protocol. Basic keycodes are plain HID
// usages; the modified range packs held modifier bits into the high byte.
const (
	KeycodeNo          uint16 = 0x0000
	KeycodeTransparent uint16 = 0x0001

	basicKeycodeMin uint16 = 0x0004
	basicKeycodeMax uint16 = 0x00FF

	modifiedKeycodeMin uint16 = 0x0100
	modifiedKeycodeMax uint16 = 0x1FFF
)

// FromVia translates a wire keycode into the internal key action.
// Total over all 16-bit inputs: unsupported ranges map to the
// no-action sentinel.
func FromVia(keycode uint16) action.KeyAction {
	switch {
	case keycode == KeycodeNo:
		return action.No
	case keycode == KeycodeTransparent:
		return action.Transparent
	case keycode >= basicKeycodeMin && keycode <= basicKeycodeMax:
		return action.Key(action.Keycode(keycode))
	case keycode >= modifiedKeycodeMin && keycode <= modifiedKeycodeMax:
		mods := action.Modifiers(keycode >> 8)
		return action.Modified(action.Keycode(keycode&0xFF), mods)
	default:
		return action.No
	}
}

// ToVia translates an internal key action into its wire keycode.
// Total: unknown kinds encode as the no-action keycode.
func ToVia(a action.KeyAction) uint16 {
	switch a.Kind {
	case action.KindTransparent:
		return KeycodeTransparent
	case action.KindKey:
		return uint16(a.Key)
	case action.KindModified:
		return uint16(a.Mods)<<8 | uint16(a.Key)
	default:
		return KeycodeNo
	}
}
