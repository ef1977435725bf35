// Package memory implements the addressable memory space of the CPU core.
package memory

import (
	"errors"
	"fmt"
)

// Size is the number of addressable bytes. The highest valid address is Size-1.
const Size = 0xFFFF

// Region base addresses of the memory map.
const (
	ROMStart         = 0x0000
	VideoRAMStart    = 0x8000
	ExternalRAMStart = 0xA000
	WorkRAMStart     = 0xC000
	ObjectRAMStart   = 0xFE00
	UnusableStart    = 0xFEA0
	IOStart          = 0xFF00
	HighRAMStart     = 0xFF80
)

// ImageBoundary is the maximum number of image bytes that LoadImage copies.
const ImageBoundary = VideoRAMStart

// ErrOutOfRange is matched by all errors caused by accessing an address outside
// of the memory space.
var ErrOutOfRange = errors.New("address out of range")

// OutOfRangeError is returned for a read or write beyond the end of the memory space.
type OutOfRangeError struct {
	Address int
	Write   bool
}

func (e *OutOfRangeError) Error() string {
	access := "read"
	if e.Write {
		access = "write"
	}
	return fmt.Sprintf("%s at 0x%04X: %s (size 0x%04X)", access, e.Address, ErrOutOfRange, Size)
}

// Is makes errors.Is match ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// LoadResult describes the outcome of an image load.
type LoadResult struct {
	Copied    int  // number of bytes copied to the start of memory
	Dropped   int  // number of image bytes beyond the boundary that were ignored
	Truncated bool // set if the image did not fit below the boundary
}

// Memory is the flat address space shared by all regions.
type Memory struct {
	data [Size]byte
}

// New returns a zeroed memory space.
func New() *Memory {
	return &Memory{}
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if int(address) >= Size {
		return 0, &OutOfRangeError{Address: int(address)}
	}
	return m.data[address], nil
}

// Write stores a byte at the given address.
func (m *Memory) Write(address uint16, value byte) error {
	if int(address) >= Size {
		return &OutOfRangeError{Address: int(address), Write: true}
	}
	m.data[address] = value
	return nil
}

// LoadImage copies the image to the start of memory. Images that extend past
// the ROM area are truncated at ImageBoundary, which is reported in the result.
func (m *Memory) LoadImage(image []byte) LoadResult {
	n := copy(m.data[:ImageBoundary], image)
	return LoadResult{
		Copied:    n,
		Dropped:   len(image) - n,
		Truncated: len(image) > ImageBoundary,
	}
}
