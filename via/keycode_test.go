package via

import (
	"testing"

	"github.com/drindr/rmk/action"
)

func TestFromVia(t *testing.T) {
	tests := []struct {
		name    string
		keycode uint16
		want    action.KeyAction
	}{
		{"no action", 0x0000, action.No},
		{"transparent", 0x0001, action.Transparent},
		{"basic A", 0x0004, action.Key(0x04)},
		{"basic max", 0x00FF, action.Key(0xFF)},
		{"ctrl+Z", 0x011D, action.Modified(0x1D, 0x01)},
		{"shift+A", 0x0204, action.Modified(0x04, 0x02)},
		{"reserved gap", 0x0002, action.No},
		{"beyond modified range", 0x2000, action.No},
		{"max wire value", 0xFFFF, action.No},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromVia(tt.keycode); got != tt.want {
				t.Errorf("FromVia(0x%04X) = %+v, want %+v", tt.keycode, got, tt.want)
			}
		})
	}
}

func TestToVia(t *testing.T) {
	tests := []struct {
		name string
		act  action.KeyAction
		want uint16
	}{
		{"no action", action.No, 0x0000},
		{"transparent", action.Transparent, 0x0001},
		{"basic", action.Key(0x29), 0x0029},
		{"modified", action.Modified(0x04, 0x02), 0x0204},
		{"unknown kind", action.KeyAction{Kind: action.Kind(9)}, 0x0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToVia(tt.act); got != tt.want {
				t.Errorf("ToVia(%+v) = 0x%04X, want 0x%04X", tt.act, got, tt.want)
			}
		})
	}
}

// Wire-originated keycodes in the supported ranges survive a decode/encode
// round trip unchanged.
func TestKeycodeRoundTrip(t *testing.T) {
	codes := []uint16{0x0000, 0x0001, 0x0004, 0x0052, 0x00FF, 0x0104, 0x0E38, 0x1FFF}
	for _, kc := range codes {
		if got := ToVia(FromVia(kc)); got != kc {
			t.Errorf("ToVia(FromVia(0x%04X)) = 0x%04X, want identity", kc, got)
		}
	}
}
