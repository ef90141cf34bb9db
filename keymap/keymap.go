// Package keymap holds the live keyboard configuration shared between the
// report handlers and the rest of the firmware.
//
// Access to the combo slots is scoped: callers receive the slot slice only
// inside a callback, under the store's read or write lock. The slice must
// not be retained past the callback, and the callback must not perform
// channel operations or other blocking work — values needed afterwards
// (for example to submit a persistence request) are extracted into locals
// first, so the lock is never held across a suspension.
package keymap

import (
	"sync"

	"github.com/drindr/rmk/action"
	"github.com/drindr/rmk/pkg"
)

// MaxCombos is the number of combo slots in the store. All slots exist for
// the lifetime of the store; there is no dynamic allocation.
const MaxCombos = 8

// MaxComboLength is the storage capacity of one combo's trigger list. The
// configuration protocol exposes at most 4 triggers per combo; slots holding
// more are real but invisible to the protocol.
const MaxComboLength = 8

// Combo is one combo slot: an ordered trigger list and the single action
// produced when every trigger is pressed together. A cleared slot has an
// empty trigger list.
type Combo struct {
	Triggers []action.KeyAction
	Output   action.KeyAction
}

// SetTriggers replaces the trigger list, dropping no-action sentinels so the
// stored length equals the count of real triggers.
func (c *Combo) SetTriggers(triggers []action.KeyAction) error {
	if len(triggers) > MaxComboLength {
		return pkg.ErrTooManyTriggers
	}
	kept := make([]action.KeyAction, 0, len(triggers))
	for _, a := range triggers {
		if !a.IsNo() {
			kept = append(kept, a)
		}
	}
	c.Triggers = kept
	return nil
}

// KeyMap is the shared configuration store. The zero value is not usable;
// create instances with New.
type KeyMap struct {
	mu     sync.RWMutex
	combos [MaxCombos]Combo
}

// New creates a store with all combo slots cleared.
func New() *KeyMap {
	return &KeyMap{}
}

// ReadCombos calls fn with the combo slots under the read lock. fn must not
// modify or retain the slice.
func (k *KeyMap) ReadCombos(fn func(combos []Combo)) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	fn(k.combos[:])
}

// UpdateCombos calls fn with the combo slots under the write lock. Mutations
// through the slice are visible to subsequent readers. fn must not retain
// the slice or block on channel operations.
func (k *KeyMap) UpdateCombos(fn func(combos []Combo)) {
	k.mu.Lock()
	defer k.mu.Unlock()
	fn(k.combos[:])
}

// LoadCombo overwrites one slot, typically when restoring persisted combos
// at startup.
func (k *KeyMap) LoadCombo(index int, c Combo) error {
	if index < 0 || index >= MaxCombos {
		return pkg.ErrSlotOutOfRange
	}
	if len(c.Triggers) > MaxComboLength {
		return pkg.ErrTooManyTriggers
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.combos[index] = c
	return nil
}
