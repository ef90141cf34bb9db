package pkg

import "errors"

// Firmware core errors.
var (
	// ErrReportTooShort indicates a report frame shorter than the fixed size.
	ErrReportTooShort = errors.New("report too short")

	// ErrBufferTooSmall indicates the provided buffer is too small.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrSlotOutOfRange indicates a combo slot index beyond storage capacity.
	ErrSlotOutOfRange = errors.New("combo slot out of range")

	// ErrTooManyTriggers indicates a trigger list beyond storage capacity.
	ErrTooManyTriggers = errors.New("too many combo triggers")

	// ErrChannelClosed indicates the flash channel has been closed.
	ErrChannelClosed = errors.New("flash channel closed")

	// ErrInvalidKeyboardID indicates a keyboard id that is not 8 bytes of hex.
	ErrInvalidKeyboardID = errors.New("invalid keyboard id")

	// ErrDefinitionEmpty indicates a missing or empty keyboard definition blob.
	ErrDefinitionEmpty = errors.New("keyboard definition empty")

	// ErrFlashPathEmpty indicates a missing flash file path.
	ErrFlashPathEmpty = errors.New("flash path empty")

	// ErrShortRecord indicates a flash slot record of unexpected length.
	ErrShortRecord = errors.New("short flash record")
)
