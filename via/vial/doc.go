// Package vial implements the Vial extension of the VIA configuration
// protocol: keyboard identity and layout-definition queries, the paged
// definition transfer, and live editing of dynamic combo entries.
//
// The handler answers one request at a time. Every command reads from the
// report's output buffer and writes its exact-layout response into the input
// buffer in place; commands with nothing to say leave the input buffer
// untouched. Malformed or out-of-range requests never fault — the worst
// outcome is a sentinel-filled or absent response.
//
// Combo edits mutate the shared keymap store under its write lock, then
// submit one persistence message on the flash channel strictly after the
// lock is released. Tap dance and key override commands are recognized but
// unimplemented: they answer with zero-filled sentinel responses.
package vial
