// Package storage implements the asynchronous persistence path for live
// configuration edits.
//
// Report handlers never touch flash directly. A successful edit submits one
// [Message] on the flash channel and continues; the [Task] goroutine drains
// the channel and writes fixed-size slot records through a [Backend]. The
// response to the configuration client is therefore emitted without waiting
// for durability, matching the wire contract.
//
// [FileBackend] stores slot records at fixed offsets in a single file,
// emulating the slot-addressed flash region of a real keyboard. [MemBackend]
// is the in-memory equivalent used by tests.
package storage
