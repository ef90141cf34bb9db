package via

import (
	"encoding/binary"

	"github.com/drindr/rmk/pkg"
)

// ReportSize is the fixed size in bytes of each report buffer.
const ReportSize = 32

// VialPrefix is the command byte marking a report as a Vial extension
// command. It occupies output byte 0; the Vial command proper is at byte 1.
const VialPrefix = 0xFE

// Report is one VIA report exchange. Output carries the host request and is
// read-only to command handlers; Input carries the device response and is
// written in place.
type Report struct {
	Output [ReportSize]byte // host to device
	Input  [ReportSize]byte // device to host
}

// ParseRequest copies a raw request frame into the output buffer and clears
// the input buffer. Returns an error if the frame is shorter than ReportSize.
func (r *Report) ParseRequest(frame []byte) error {
	if len(frame) < ReportSize {
		return pkg.ErrReportTooShort
	}
	copy(r.Output[:], frame[:ReportSize])
	r.Input = [ReportSize]byte{}
	return nil
}

// MarshalResponse serializes the input buffer to buf.
// Returns the number of bytes written (ReportSize if buf is large enough).
func (r *Report) MarshalResponse(buf []byte) int {
	if len(buf) < ReportSize {
		return 0
	}
	copy(buf[:ReportSize], r.Input[:])
	return ReportSize
}

// IsVial reports whether the request carries a Vial extension command.
func (r *Report) IsVial() bool {
	return r.Output[0] == VialPrefix
}

// CommandByte returns the primary command byte of the request.
func (r *Report) CommandByte() byte {
	return r.Output[1]
}

// OutputUint16 reads a little-endian uint16 from the output buffer at off.
func (r *Report) OutputUint16(off int) uint16 {
	return binary.LittleEndian.Uint16(r.Output[off : off+2])
}

// PutInputUint16 writes v little-endian into the input buffer at off.
func (r *Report) PutInputUint16(off int, v uint16) {
	binary.LittleEndian.PutUint16(r.Input[off:off+2], v)
}

// PutInputUint32 writes v little-endian into the input buffer at off.
func (r *Report) PutInputUint32(off int, v uint32) {
	binary.LittleEndian.PutUint32(r.Input[off:off+4], v)
}

// FillInput sets every byte of the input buffer to b.
func (r *Report) FillInput(b byte) {
	for i := range r.Input {
		r.Input[i] = b
	}
}
