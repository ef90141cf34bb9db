package keymap

import (
	"errors"
	"testing"

	"github.com/drindr/rmk/action"
	"github.com/drindr/rmk/pkg"
)

func TestNewAllSlotsCleared(t *testing.T) {
	km := New()
	km.ReadCombos(func(combos []Combo) {
		if len(combos) != MaxCombos {
			t.Fatalf("len(combos) = %d, want %d", len(combos), MaxCombos)
		}
		for i, c := range combos {
			if len(c.Triggers) != 0 {
				t.Errorf("slot %d: trigger list not empty", i)
			}
			if !c.Output.IsNo() {
				t.Errorf("slot %d: output not cleared", i)
			}
		}
	})
}

func TestUpdateCombosVisibleToReaders(t *testing.T) {
	km := New()
	km.UpdateCombos(func(combos []Combo) {
		combos[2].Triggers = []action.KeyAction{action.Key(0x04), action.Key(0x05)}
		combos[2].Output = action.Key(0x29)
	})

	km.ReadCombos(func(combos []Combo) {
		if len(combos[2].Triggers) != 2 {
			t.Fatalf("slot 2 trigger count = %d, want 2", len(combos[2].Triggers))
		}
		if combos[2].Output != action.Key(0x29) {
			t.Errorf("slot 2 output = %+v, want Key(0x29)", combos[2].Output)
		}
	})
}

func TestSetTriggersDropsSentinels(t *testing.T) {
	var c Combo
	err := c.SetTriggers([]action.KeyAction{
		action.Key(0x04), action.No, action.Key(0x05), action.No,
	})
	if err != nil {
		t.Fatalf("SetTriggers() err = %v", err)
	}
	if len(c.Triggers) != 2 {
		t.Fatalf("trigger count = %d, want 2", len(c.Triggers))
	}
	if c.Triggers[0] != action.Key(0x04) || c.Triggers[1] != action.Key(0x05) {
		t.Errorf("triggers = %+v, order not preserved", c.Triggers)
	}
}

func TestSetTriggersCapacity(t *testing.T) {
	var c Combo
	triggers := make([]action.KeyAction, MaxComboLength+1)
	for i := range triggers {
		triggers[i] = action.Key(action.Keycode(0x04 + i))
	}
	if err := c.SetTriggers(triggers); !errors.Is(err, pkg.ErrTooManyTriggers) {
		t.Errorf("SetTriggers() err = %v, want %v", err, pkg.ErrTooManyTriggers)
	}
}

func TestLoadCombo(t *testing.T) {
	km := New()
	combo := Combo{
		Triggers: []action.KeyAction{action.Key(0x08)},
		Output:   action.Key(0x09),
	}
	if err := km.LoadCombo(5, combo); err != nil {
		t.Fatalf("LoadCombo() err = %v", err)
	}

	km.ReadCombos(func(combos []Combo) {
		if combos[5].Output != action.Key(0x09) {
			t.Errorf("slot 5 output = %+v, want Key(0x09)", combos[5].Output)
		}
	})

	if err := km.LoadCombo(MaxCombos, combo); !errors.Is(err, pkg.ErrSlotOutOfRange) {
		t.Errorf("LoadCombo(out of range) err = %v, want %v", err, pkg.ErrSlotOutOfRange)
	}
	if err := km.LoadCombo(-1, combo); !errors.Is(err, pkg.ErrSlotOutOfRange) {
		t.Errorf("LoadCombo(-1) err = %v, want %v", err, pkg.ErrSlotOutOfRange)
	}
}
