package storage

import (
	"fmt"

	"github.com/drindr/rmk/action"
	"github.com/drindr/rmk/pkg"
)

// Slot record layout. Each action occupies 3 bytes: kind, keycode, modifier
// mask. A record holds the 4 persisted triggers followed by the output
// action; the final byte is reserved padding so records stay power-of-two
// sized for slot-addressed writes.
const (
	actionRecordSize = 3
	SlotRecordSize   = (ComboTriggerCount+1)*actionRecordSize + 1
)

// EncodeCombo serializes a combo edit into its fixed slot record.
func EncodeCombo(data ComboData) [SlotRecordSize]byte {
	var record [SlotRecordSize]byte
	for i, a := range data.Triggers {
		encodeAction(record[i*actionRecordSize:], a)
	}
	encodeAction(record[ComboTriggerCount*actionRecordSize:], data.Output)
	return record
}

// DecodeCombo parses a slot record back into combo data. The slot index is
// not part of the record; the caller supplies it from the record's position.
func DecodeCombo(index uint8, record []byte) (ComboData, error) {
	if len(record) < SlotRecordSize {
		return ComboData{}, errShortRecord(len(record))
	}
	data := ComboData{Index: index}
	for i := range data.Triggers {
		data.Triggers[i] = decodeAction(record[i*actionRecordSize:])
	}
	data.Output = decodeAction(record[ComboTriggerCount*actionRecordSize:])
	return data, nil
}

func errShortRecord(n int) error {
	return fmt.Errorf("%w: got %d bytes, want %d", pkg.ErrShortRecord, n, SlotRecordSize)
}

func encodeAction(dst []byte, a action.KeyAction) {
	dst[0] = byte(a.Kind)
	dst[1] = byte(a.Key)
	dst[2] = byte(a.Mods)
}

func decodeAction(src []byte) action.KeyAction {
	return action.KeyAction{
		Kind: action.Kind(src[0]),
		Key:  action.Keycode(src[1]),
		Mods: action.Modifiers(src[2]),
	}
}
