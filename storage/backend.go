package storage

import (
	"encoding/binary"
	"fmt"
	"os"
	"sync"

	"github.com/drindr/rmk/pkg"
)

// File backend framing. Records follow the header at fixed slot offsets.
const (
	fileMagic      = "RMKF"
	fileVersion    = 1
	fileHeaderSize = 8 // magic + version u16 + slot count u16, little-endian
)

// FileBackend persists slot records at fixed offsets in a single file,
// emulating a slot-addressed flash region.
type FileBackend struct {
	f     *os.File
	slots int
}

// NewFileBackend opens or creates the flash file for the given slot count.
// A new or empty file is initialized with a header and zeroed records; an
// existing file must carry a matching header.
func NewFileBackend(path string, slots int) (*FileBackend, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("storage: open flash file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("storage: stat flash file: %w", err)
	}

	b := &FileBackend{f: f, slots: slots}
	if info.Size() == 0 {
		if err := b.format(); err != nil {
			f.Close()
			return nil, err
		}
		return b, nil
	}
	if err := b.verifyHeader(); err != nil {
		f.Close()
		return nil, err
	}
	return b, nil
}

func (b *FileBackend) format() error {
	buf := make([]byte, fileHeaderSize+b.slots*SlotRecordSize)
	copy(buf[0:4], fileMagic)
	binary.LittleEndian.PutUint16(buf[4:6], fileVersion)
	binary.LittleEndian.PutUint16(buf[6:8], uint16(b.slots))
	if _, err := b.f.WriteAt(buf, 0); err != nil {
		return fmt.Errorf("storage: format flash file: %w", err)
	}
	return nil
}

func (b *FileBackend) verifyHeader() error {
	var hdr [fileHeaderSize]byte
	if _, err := b.f.ReadAt(hdr[:], 0); err != nil {
		return fmt.Errorf("storage: read flash header: %w", err)
	}
	if string(hdr[0:4]) != fileMagic {
		return fmt.Errorf("storage: bad flash magic %q", hdr[0:4])
	}
	if v := binary.LittleEndian.Uint16(hdr[4:6]); v != fileVersion {
		return fmt.Errorf("storage: unsupported flash version %d", v)
	}
	if n := binary.LittleEndian.Uint16(hdr[6:8]); int(n) != b.slots {
		return fmt.Errorf("storage: flash slot count %d, want %d", n, b.slots)
	}
	return nil
}

// WriteSlot stores record at the slot's fixed offset.
func (b *FileBackend) WriteSlot(index uint8, record []byte) error {
	if int(index) >= b.slots {
		return pkg.ErrSlotOutOfRange
	}
	if len(record) < SlotRecordSize {
		return errShortRecord(len(record))
	}
	off := int64(fileHeaderSize + int(index)*SlotRecordSize)
	if _, err := b.f.WriteAt(record[:SlotRecordSize], off); err != nil {
		return fmt.Errorf("storage: write slot %d: %w", index, err)
	}
	return nil
}

// ReadSlot loads the record stored for the given slot.
func (b *FileBackend) ReadSlot(index uint8, record []byte) error {
	if int(index) >= b.slots {
		return pkg.ErrSlotOutOfRange
	}
	if len(record) < SlotRecordSize {
		return pkg.ErrBufferTooSmall
	}
	off := int64(fileHeaderSize + int(index)*SlotRecordSize)
	if _, err := b.f.ReadAt(record[:SlotRecordSize], off); err != nil {
		return fmt.Errorf("storage: read slot %d: %w", index, err)
	}
	return nil
}

// Close releases the underlying file.
func (b *FileBackend) Close() error {
	return b.f.Close()
}

// MemBackend stores slot records in memory. Used by tests and as a stand-in
// when no flash file is configured. Safe for concurrent use.
type MemBackend struct {
	mu    sync.Mutex
	slots map[uint8][]byte
}

// NewMemBackend creates an empty in-memory backend.
func NewMemBackend() *MemBackend {
	return &MemBackend{slots: make(map[uint8][]byte)}
}

// WriteSlot stores a copy of record for the given slot.
func (b *MemBackend) WriteSlot(index uint8, record []byte) error {
	if len(record) < SlotRecordSize {
		return errShortRecord(len(record))
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.slots[index] = append([]byte(nil), record[:SlotRecordSize]...)
	return nil
}

// Slot returns the record stored for the given slot, or nil.
func (b *MemBackend) Slot(index uint8) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.slots[index]
}

// Len returns the number of slots written.
func (b *MemBackend) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.slots)
}
