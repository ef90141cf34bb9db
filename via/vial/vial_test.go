package vial

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"

	"github.com/drindr/rmk/keymap"
	"github.com/drindr/rmk/storage"
	"github.com/drindr/rmk/via"
)

var testKeyboardID = [KeyboardIDSize]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}

// testDefinition is 80 bytes: two full pages and a 16-byte tail page.
func testDefinition() []byte {
	def := make([]byte, 80)
	for i := range def {
		def[i] = byte(i)
	}
	return def
}

func newTestHandler() (*Handler, *keymap.KeyMap, chan storage.Message) {
	km := keymap.New()
	flash := storage.NewChannel()
	h := NewHandler(testKeyboardID, testDefinition(), km, flash)
	return h, km, flash
}

// newRequest builds a Vial request for the given command byte.
func newRequest(cmd Command) via.Report {
	var r via.Report
	r.Output[0] = via.VialPrefix
	r.Output[1] = byte(cmd)
	return r
}

func process(t *testing.T, h *Handler, r *via.Report) {
	t.Helper()
	if err := h.Process(context.Background(), r); err != nil {
		t.Fatalf("Process() err = %v", err)
	}
}

func TestGetKeyboardID(t *testing.T) {
	h, _, _ := newTestHandler()
	r := newRequest(CommandGetKeyboardID)
	process(t, h, &r)

	if got := binary.LittleEndian.Uint32(r.Input[0:4]); got != ProtocolVersion {
		t.Errorf("protocol version = %d, want %d", got, ProtocolVersion)
	}
	if !bytes.Equal(r.Input[4:12], testKeyboardID[:]) {
		t.Errorf("keyboard id = % X, want % X", r.Input[4:12], testKeyboardID)
	}
}

func TestGetSize(t *testing.T) {
	h, _, _ := newTestHandler()
	r := newRequest(CommandGetSize)
	process(t, h, &r)

	if got := binary.LittleEndian.Uint32(r.Input[0:4]); got != 80 {
		t.Errorf("definition size = %d, want 80", got)
	}
}

func TestGetKeyboardDef(t *testing.T) {
	def := testDefinition()

	tests := []struct {
		name string
		page uint16
		want []byte
	}{
		{"first page", 0, def[0:32]},
		{"second page", 1, def[32:64]},
		{"partial tail page", 2, def[64:80]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newTestHandler()
			r := newRequest(CommandGetKeyboardDef)
			binary.LittleEndian.PutUint16(r.Output[2:4], tt.page)
			process(t, h, &r)

			if !bytes.Equal(r.Input[:len(tt.want)], tt.want) {
				t.Errorf("page data = % X, want % X", r.Input[:len(tt.want)], tt.want)
			}
			// Bytes past the copied page stay zero.
			for i := len(tt.want); i < via.ReportSize; i++ {
				if r.Input[i] != 0 {
					t.Errorf("Input[%d] = 0x%02X, want 0x00", i, r.Input[i])
				}
			}
		})
	}
}

func TestGetKeyboardDefPageOutOfRange(t *testing.T) {
	for _, page := range []uint16{3, 4, 0x1000, 0xFFFF} {
		h, _, _ := newTestHandler()
		r := newRequest(CommandGetKeyboardDef)
		binary.LittleEndian.PutUint16(r.Output[2:4], page)
		r.FillInput(0xAA) // canary: the buffer must not be touched
		process(t, h, &r)

		for i, b := range r.Input {
			if b != 0xAA {
				t.Fatalf("page %d: Input[%d] = 0x%02X, response buffer was modified", page, i, b)
			}
		}
	}
}

func TestGetUnlockStatus(t *testing.T) {
	h, _, _ := newTestHandler()
	r := newRequest(CommandGetUnlockStatus)
	// Arbitrary request payload must not change the canned response.
	r.Output[2] = 0x55
	r.Output[3] = 0x66
	process(t, h, &r)

	if r.Input[0] != 1 {
		t.Errorf("Input[0] = %d, want 1 (unlocked)", r.Input[0])
	}
	if r.Input[1] != 0 {
		t.Errorf("Input[1] = %d, want 0 (no unlock in progress)", r.Input[1])
	}
	for i := 2; i < via.ReportSize; i++ {
		if r.Input[i] != 0xFF {
			t.Errorf("Input[%d] = 0x%02X, want 0xFF", i, r.Input[i])
		}
	}
}

func TestQmkSettingsQuery(t *testing.T) {
	h, _, _ := newTestHandler()
	r := newRequest(CommandQmkSettingsQuery)
	process(t, h, &r)

	for i, b := range r.Input {
		if b != 0xFF {
			t.Fatalf("Input[%d] = 0x%02X, want 0xFF", i, b)
		}
	}
}

func TestGetEncoderStub(t *testing.T) {
	h, _, _ := newTestHandler()
	r := newRequest(CommandGetEncoder)
	r.Output[2] = 1 // layer
	r.Output[3] = 0 // encoder index
	r.FillInput(0xAA)
	process(t, h, &r)

	for i, b := range r.Input {
		if b != 0 {
			t.Fatalf("Input[%d] = 0x%02X, want 0x00", i, b)
		}
	}
}

func TestSetEncoderStub(t *testing.T) {
	h, km, flash := newTestHandler()
	r := newRequest(CommandSetEncoder)
	r.Output[2] = 1 // layer
	r.Output[3] = 0 // encoder index
	r.Output[4] = 1 // clockwise
	binary.LittleEndian.PutUint16(r.Output[5:7], 0x0004)
	r.FillInput(0xAA)
	process(t, h, &r)

	// No response, no store mutation, no persistence.
	for i, b := range r.Input {
		if b != 0xAA {
			t.Fatalf("Input[%d] = 0x%02X, response buffer was modified", i, b)
		}
	}
	km.ReadCombos(func(combos []keymap.Combo) {
		for i, c := range combos {
			if len(c.Triggers) != 0 || !c.Output.IsNo() {
				t.Errorf("slot %d mutated by SetEncoder", i)
			}
		}
	})
	assertNoFlashMessage(t, flash)
}

func TestSilentCommands(t *testing.T) {
	cmds := []Command{
		CommandUnlockStart,
		CommandUnlockPoll,
		CommandLock,
		CommandQmkSettingsGet,
		CommandQmkSettingsSet,
		CommandQmkSettingsReset,
	}

	for _, cmd := range cmds {
		t.Run(cmd.String(), func(t *testing.T) {
			h, _, _ := newTestHandler()
			r := newRequest(cmd)
			r.FillInput(0xAA)
			process(t, h, &r)

			for i, b := range r.Input {
				if b != 0xAA {
					t.Fatalf("Input[%d] = 0x%02X, response buffer was modified", i, b)
				}
			}
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	h, _, _ := newTestHandler()
	var r via.Report
	r.Output[0] = via.VialPrefix
	r.Output[1] = 0x7F
	r.FillInput(0xAA)
	process(t, h, &r)

	for i, b := range r.Input {
		if b != 0xAA {
			t.Fatalf("Input[%d] = 0x%02X, response buffer was modified", i, b)
		}
	}
}

func assertNoFlashMessage(t *testing.T, flash chan storage.Message) {
	t.Helper()
	select {
	case msg := <-flash:
		t.Fatalf("unexpected flash message: %+v", msg)
	default:
	}
}
