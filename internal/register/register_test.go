package register

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestGet8Set8(t *testing.T) {
	for _, r := range Registers8() {
		f := New()
		for v := 0; v < 256; v++ {
			f.Set8(r, byte(v))
			assert.Equal(t, byte(v), f.Get8(r), r.String())
		}
	}
}

func TestSet8_Isolated(t *testing.T) {
	f := New()
	f.Set8(D, 0x99)

	for _, r := range Registers8() {
		if r == D {
			continue
		}
		assert.Equal(t, byte(0), f.Get8(r), r.String())
	}
}

func TestGet16Set16(t *testing.T) {
	values := []uint16{0x0000, 0x0001, 0x00FF, 0x0100, 0x1234, 0x8000, 0xABCD, 0xFFFF}

	for _, r := range append(Pairs(), SP) {
		t.Run(r.String(), func(t *testing.T) {
			f := New()
			for _, v := range values {
				f.Set16(r, v)
				assert.Equal(t, v, f.Get16(r))
			}
			for v := 0; v < 0x10000; v += 0x0101 {
				f.Set16(r, uint16(v))
				assert.Equal(t, uint16(v), f.Get16(r))
			}
		})
	}
}

func TestSet16_Halves(t *testing.T) {
	tests := []struct {
		pair Reg16
		high Reg8
		low  Reg8
	}{
		{AF, A, F},
		{BC, B, C},
		{DE, D, E},
		{HL, H, L},
	}

	for _, tt := range tests {
		t.Run(tt.pair.String(), func(t *testing.T) {
			f := New()
			f.Set16(tt.pair, 0x1234)
			assert.Equal(t, byte(0x12), f.Get8(tt.high))
			assert.Equal(t, byte(0x34), f.Get8(tt.low))

			f.Set8(tt.high, 0xBE)
			f.Set8(tt.low, 0xEF)
			assert.Equal(t, uint16(0xBEEF), f.Get16(tt.pair))

			high, low, ok := tt.pair.Halves()
			assert.True(t, ok)
			assert.Equal(t, tt.high, high)
			assert.Equal(t, tt.low, low)
		})
	}

	_, _, ok := SP.Halves()
	assert.False(t, ok)
}

func TestGet16Set16_ReadWriteBackIsNoop(t *testing.T) {
	f := New()
	for i, r := range Registers8() {
		f.Set8(r, byte(0x11*(i+1)))
	}
	f.SetSP(0xFFFE)
	before := *f

	for _, r := range append(Pairs(), SP) {
		f.Set16(r, f.Get16(r))
	}
	assert.Equal(t, before, *f)
}

func TestPCSP(t *testing.T) {
	f := New()
	f.SetPC(0x0100)
	f.SetSP(0xFFFE)
	assert.Equal(t, uint16(0x0100), f.PC())
	assert.Equal(t, uint16(0xFFFE), f.SP())
	assert.Equal(t, uint16(0xFFFE), f.Get16(SP))

	f.Set16(SP, 0xC000)
	assert.Equal(t, uint16(0xC000), f.SP())

	f.Reset()
	assert.Equal(t, uint16(0), f.PC())
	assert.Equal(t, uint16(0), f.SP())
}

func TestFlags(t *testing.T) {
	f := New()
	f.SetFlag(FlagZ, true)
	f.SetFlag(FlagC, true)
	assert.Equal(t, byte(0x90), f.Get8(F))
	assert.True(t, f.Flag(FlagZ))
	assert.False(t, f.Flag(FlagN))
	assert.False(t, f.Flag(FlagH))
	assert.True(t, f.Flag(FlagC))

	f.SetFlag(FlagZ, false)
	assert.Equal(t, byte(0x10), f.Get8(F))
}

func TestString(t *testing.T) {
	f := New()
	f.Set16(AF, 0x01B0)
	f.Set16(BC, 0x0013)
	f.Set16(DE, 0x00D8)
	f.Set16(HL, 0x014D)
	f.SetSP(0xFFFE)
	f.SetPC(0x0100)

	assert.Equal(t, "AF=01B0 BC=0013 DE=00D8 HL=014D SP=FFFE PC=0100 Z-HC", f.String())
}

func TestNames(t *testing.T) {
	assert.Equal(t, "A", A.String())
	assert.Equal(t, "L", L.String())
	assert.Equal(t, "Reg8(8)", reg8Count.String())
	assert.Equal(t, "HL", HL.String())
	assert.Equal(t, "SP", SP.String())
	assert.Equal(t, "Reg16(5)", reg16Count.String())
}
