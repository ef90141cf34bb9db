package vial

import (
	"context"

	"github.com/drindr/rmk/action"
	"github.com/drindr/rmk/keymap"
	"github.com/drindr/rmk/pkg"
	"github.com/drindr/rmk/storage"
	"github.com/drindr/rmk/via"
)

// Dynamic-entry payload layout (offsets into the report buffers).
const (
	dynSubCommandOff = 2 // sub-command byte in the request
	dynComboIndexOff = 3 // visible combo index in the request

	comboGetTriggerOff = 1  // first trigger keycode in the response
	comboGetOutputOff  = 9  // output keycode in the response
	comboGetPayloadEnd = 11 // end of the combo payload in the response

	comboSetTriggerOff = 4  // first trigger keycode in the request
	comboSetOutputOff  = 12 // output keycode in the request
)

// processDynamic handles the DynamicEntryOp command family.
func (h *Handler) processDynamic(ctx context.Context, report *via.Report) error {
	sub := DynamicCommandFromByte(report.Output[dynSubCommandOff])

	switch sub {
	case DynamicGetNumberOfEntries:
		pkg.LogDebug(pkg.ComponentVial, "dynamic entry counts requested")
		// Tap dance and key override are unimplemented; their counts are 0.
		report.Input[0] = 0
		report.Input[1] = keymap.MaxCombos
		report.Input[2] = 0

	case DynamicComboGet:
		h.comboGet(report)

	case DynamicComboSet:
		return h.comboSet(ctx, report)

	default:
		// Tap dance, key override, and unknown sub-commands are
		// unimplemented placeholders.
		pkg.LogWarn(pkg.ComponentVial, "unimplemented dynamic entry op",
			"subcommand", sub)
		report.FillInput(0x00)
	}
	return nil
}

// comboGet answers with the protocol view of one combo slot: the first four
// triggers (sentinel-padded) and the output action. An index that resolves
// to no slot yields a zeroed payload; absence is not an error, so the
// success code stays 0 either way.
func (h *Handler) comboGet(report *via.Report) {
	report.Input[0] = 0 // return code, 0 means success

	idx := int(report.Output[dynComboIndexOff])
	resolved := false

	h.keymap.ReadCombos(func(combos []keymap.Combo) {
		_, combo := eligibleCombo(combos, idx)
		if combo == nil {
			return
		}
		resolved = true
		for i := 0; i < ComboMaxLength; i++ {
			trigger := action.No
			if i < len(combo.Triggers) {
				trigger = combo.Triggers[i]
			}
			report.PutInputUint16(comboGetTriggerOff+2*i, via.ToVia(trigger))
		}
		report.PutInputUint16(comboGetOutputOff, via.ToVia(combo.Output))
	})

	if !resolved {
		for i := comboGetTriggerOff; i < comboGetPayloadEnd; i++ {
			report.Input[i] = 0
		}
	}
}

// comboSet overwrites one combo slot from the request payload and submits a
// persistence request. The success code is written before resolution is
// attempted; an index that resolves to no slot aborts with no mutation and
// no persistence message, leaving that byte behind.
func (h *Handler) comboSet(ctx context.Context, report *via.Report) error {
	report.Input[0] = 0 // return code, 0 means success

	idx := int(report.Output[dynComboIndexOff])

	var (
		resolved bool
		data     storage.ComboData
	)

	// The store lock is confined to this callback; everything needed for
	// persistence is extracted into locals before the channel send below.
	h.keymap.UpdateCombos(func(combos []keymap.Combo) {
		real, combo := eligibleCombo(combos, idx)
		if combo == nil {
			return
		}
		resolved = true

		// Sentinel triggers are dropped rather than stored, so the slot's
		// trigger count stays equal to its count of real triggers and the
		// slot remains visible to the index projection.
		triggers := make([]action.KeyAction, 0, ComboMaxLength)
		for i := 0; i < ComboMaxLength; i++ {
			a := via.FromVia(report.OutputUint16(comboSetTriggerOff + 2*i))
			if !a.IsNo() {
				triggers = append(triggers, a)
			}
		}
		output := via.FromVia(report.OutputUint16(comboSetOutputOff))

		combo.Triggers = triggers
		combo.Output = output

		data.Index = uint8(real)
		copy(data.Triggers[:], triggers) // remainder stays the sentinel
		data.Output = output
	})

	if !resolved {
		pkg.LogDebug(pkg.ComponentVial, "combo set index unresolved", "index", idx)
		return nil
	}

	pkg.LogDebug(pkg.ComponentVial, "combo updated",
		"index", idx, "slot", data.Index)

	select {
	case h.flash <- storage.Message{Op: storage.OpWriteCombo, Combo: data}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
