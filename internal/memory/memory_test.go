package memory

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestReadWrite(t *testing.T) {
	m := New()

	for _, address := range []uint16{0x0000, 0x0150, 0x8000, 0xC000, 0xFF80, Size - 1} {
		assert.NoError(t, m.Write(address, 0xA5))
		value, err := m.Read(address)
		assert.NoError(t, err)
		assert.Equal(t, byte(0xA5), value)
	}
}

func TestReadWrite_OutOfRange(t *testing.T) {
	m := New()

	_, err := m.Read(0xFFFF)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	var rangeErr *OutOfRangeError
	assert.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, 0xFFFF, rangeErr.Address)
	assert.False(t, rangeErr.Write)

	err = m.Write(0xFFFF, 1)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.True(t, errors.As(err, &rangeErr))
	assert.True(t, rangeErr.Write)
	assert.ErrorContains(t, err, "write at 0xFFFF")
}

func TestLoadImage(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		copied    int
		dropped   int
		truncated bool
	}{
		{"empty image", 0, 0, 0, false},
		{"small image", 0x150, 0x150, 0, false},
		{"exact boundary", ImageBoundary, ImageBoundary, 0, false},
		{"oversized image", ImageBoundary + 0x100, ImageBoundary, 0x100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			for address := uint16(0); address < 0x9000; address++ {
				assert.NoError(t, m.Write(address, 0xEE))
			}

			image := make([]byte, tt.length)
			for i := range image {
				image[i] = byte(i)
			}

			result := m.LoadImage(image)
			assert.Equal(t, tt.copied, result.Copied)
			assert.Equal(t, tt.dropped, result.Dropped)
			assert.Equal(t, tt.truncated, result.Truncated)

			for i := range tt.copied {
				value, err := m.Read(uint16(i))
				assert.NoError(t, err)
				assert.Equal(t, byte(i), value)
			}

			// bytes after the copied part stay untouched
			value, err := m.Read(uint16(tt.copied))
			assert.NoError(t, err)
			assert.Equal(t, byte(0xEE), value)
		})
	}
}

func TestRegionOf(t *testing.T) {
	tests := []struct {
		address uint16
		name    string
	}{
		{0x0000, "ROM"},
		{0x7FFF, "ROM"},
		{0x8000, "VRAM"},
		{0xA000, "External RAM"},
		{0xC000, "WRAM"},
		{0xFDFF, "WRAM"},
		{0xFE00, "OAM"},
		{0xFEA0, "Unusable"},
		{0xFF00, "I/O"},
		{0xFF80, "HRAM"},
		{0xFFFE, "HRAM"},
	}

	for _, tt := range tests {
		region, ok := RegionOf(tt.address)
		assert.True(t, ok)
		assert.Equal(t, tt.name, region.Name)
	}

	_, ok := RegionOf(0xFFFF)
	assert.False(t, ok)
}

func TestRegions_Contiguous(t *testing.T) {
	total := 0
	var next int
	for _, region := range Regions() {
		assert.Equal(t, next, int(region.Start))
		next = int(region.End) + 1
		total += region.Size()
	}
	assert.Equal(t, Size, total)
}
