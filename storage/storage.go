package storage

import (
	"context"

	"github.com/drindr/rmk/action"
	"github.com/drindr/rmk/pkg"
)

// ComboTriggerCount is the fixed number of trigger entries persisted per
// combo slot. Shorter trigger lists are padded with the no-action sentinel.
const ComboTriggerCount = 4

// ComboData is the persisted form of one combo edit.
type ComboData struct {
	Index    uint8 // storage slot position
	Triggers [ComboTriggerCount]action.KeyAction
	Output   action.KeyAction
}

// Op identifies a flash operation.
type Op uint8

// Flash operations.
const (
	OpWriteCombo Op = iota // persist one combo slot
)

// Message is one flash operation request. Messages are immutable values;
// exactly one is submitted per successful combo edit.
type Message struct {
	Op    Op
	Combo ComboData
}

// ChannelCapacity is the flash channel buffer depth. A full channel blocks
// the submitter until the flash task drains it.
const ChannelCapacity = 4

// NewChannel creates the flash operation channel.
func NewChannel() chan Message {
	return make(chan Message, ChannelCapacity)
}

// Backend persists encoded slot records.
type Backend interface {
	// WriteSlot stores record for the given combo slot.
	WriteSlot(index uint8, record []byte) error
}

// Task drains the flash channel and applies each operation to the backend.
type Task struct {
	ch      <-chan Message
	backend Backend
}

// NewTask creates a flash task reading from ch and writing through backend.
func NewTask(ch <-chan Message, backend Backend) *Task {
	return &Task{ch: ch, backend: backend}
}

// Run processes messages until the context is cancelled or the channel is
// closed. Backend write failures are logged and do not stop the task.
func (t *Task) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-t.ch:
			if !ok {
				return pkg.ErrChannelClosed
			}
			t.apply(msg)
		}
	}
}

func (t *Task) apply(msg Message) {
	switch msg.Op {
	case OpWriteCombo:
		record := EncodeCombo(msg.Combo)
		if err := t.backend.WriteSlot(msg.Combo.Index, record[:]); err != nil {
			pkg.LogError(pkg.ComponentStorage, "combo write failed",
				"slot", msg.Combo.Index, "error", err)
			return
		}
		pkg.LogDebug(pkg.ComponentStorage, "combo persisted",
			"slot", msg.Combo.Index)
	default:
		pkg.LogWarn(pkg.ComponentStorage, "unknown flash operation",
			"op", uint8(msg.Op))
	}
}
