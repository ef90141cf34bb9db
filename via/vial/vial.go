package vial

import (
	"context"

	"github.com/drindr/rmk/keymap"
	"github.com/drindr/rmk/pkg"
	"github.com/drindr/rmk/storage"
	"github.com/drindr/rmk/via"
)

// Protocol constants.
const (
	// ProtocolVersion is returned by GetKeyboardId.
	ProtocolVersion = 6

	// KeyboardIDSize is the length of the keyboard identity.
	KeyboardIDSize = 8

	// DefPageSize is the page size of the definition-blob transfer.
	DefPageSize = 32

	// ComboMaxLength is the number of combo triggers the protocol exposes.
	// Slots with longer trigger lists exist in storage but are invisible.
	ComboMaxLength = 4
)

// Handler processes Vial commands against static keyboard identity data and
// the live keymap store.
type Handler struct {
	keyboardID [KeyboardIDSize]byte
	definition []byte
	keymap     *keymap.KeyMap
	flash      chan<- storage.Message
}

// NewHandler creates a Vial handler. definition is the compressed keyboard
// layout blob served page-wise to the client; both it and the identity are
// immutable after construction.
func NewHandler(keyboardID [KeyboardIDSize]byte, definition []byte, km *keymap.KeyMap, flash chan<- storage.Message) *Handler {
	return &Handler{
		keyboardID: keyboardID,
		definition: definition,
		keymap:     km,
		flash:      flash,
	}
}

// Process decodes one Vial request and writes the response into the report's
// input buffer in place. No input can make it fail or panic; the only error
// it returns is ctx cancellation while submitting a persistence request.
func (h *Handler) Process(ctx context.Context, report *via.Report) error {
	cmd := CommandFromByte(report.CommandByte())
	pkg.LogDebug(pkg.ComponentVial, "received vial command", "command", cmd)

	switch cmd {
	case CommandGetKeyboardID:
		// Protocol version followed by the keyboard identity.
		report.PutInputUint32(0, ProtocolVersion)
		copy(report.Input[4:4+KeyboardIDSize], h.keyboardID[:])

	case CommandGetSize:
		report.PutInputUint32(0, uint32(len(h.definition)))

	case CommandGetKeyboardDef:
		h.definitionPage(report)

	case CommandGetUnlockStatus:
		// The full 0xFF fill is required by the client.
		report.FillInput(0xFF)
		report.Input[0] = 1 // unlocked
		report.Input[1] = 0 // no unlock in progress

	case CommandQmkSettingsQuery:
		// All 0xFF: no QMK settings supported.
		report.FillInput(0xFF)

	case CommandDynamicEntryOp:
		return h.processDynamic(ctx, report)

	case CommandGetEncoder:
		layer := report.Output[2]
		index := report.Output[3]
		pkg.LogDebug(pkg.ComponentVial, "get encoder",
			"layer", layer, "index", index)
		// Encoder remapping is not implemented; report no action.
		report.FillInput(0x00)

	case CommandSetEncoder:
		layer := report.Output[2]
		index := report.Output[3]
		clockwise := report.Output[4]
		pkg.LogDebug(pkg.ComponentVial, "set encoder ignored",
			"layer", layer, "index", index, "clockwise", clockwise)
		// Encoder remapping is not implemented; parsed and dropped.

	default:
		// Unlock, QMK settings get/set/reset, and unrecognized commands
		// produce no response.
		pkg.LogInfo(pkg.ComponentVial, "unhandled vial command", "command", cmd)
	}
	return nil
}

// definitionPage serves one 32-byte page of the definition blob. Pages past
// the end of the blob produce no response at all.
func (h *Handler) definitionPage(report *via.Report) {
	page := int(report.OutputUint16(2))
	start := page * DefPageSize
	if start >= len(h.definition) {
		return
	}
	end := start + DefPageSize
	if end > len(h.definition) {
		end = len(h.definition)
	}
	copy(report.Input[:], h.definition[start:end])
	pkg.LogDebug(pkg.ComponentVial, "definition page served",
		"page", page, "start", start, "end", end)
}
