package vial

import "github.com/drindr/rmk/keymap"

// eligibleCombo resolves a client-visible combo index to its storage slot.
//
// The client sees only slots whose trigger list fits the protocol limit,
// renumbered contiguously in storage order; the returned position is the
// slot's real index in the array. The projection is recomputed on every
// call and never cached: if another edit changes a lower slot's eligibility
// between a paired get and set, the same visible index resolves to a
// different slot. The protocol offers no way to detect that, and clients
// drive edits serially, so the drift is accepted rather than papered over.
//
// Returns a nil combo when the index falls past the last eligible slot.
func eligibleCombo(combos []keymap.Combo, idx int) (int, *keymap.Combo) {
	visible := 0
	for real := range combos {
		if len(combos[real].Triggers) > ComboMaxLength {
			continue
		}
		if visible == idx {
			return real, &combos[real]
		}
		visible++
	}
	return 0, nil
}
