// Package via provides the VIA report model shared by the configuration
// protocol handlers.
//
// A VIA exchange is a pair of fixed 32-byte buffers: the output report
// (host to device, the request) and the input report (device to host, the
// response). Command handlers read fields from the output buffer and write
// their response into the input buffer in place; a handler that recognizes
// no work leaves the input buffer untouched.
//
// The package also provides the translation between wire keycodes carried in
// VIA payloads and the firmware's internal [action.KeyAction] representation.
// Vial-specific payload fields are little-endian regardless of the byte order
// used elsewhere by the base protocol.
package via
