// Package register implements the CPU register file.
package register

import "fmt"

// Reg8 identifies one of the 8-bit registers.
type Reg8 uint8

// 8-bit registers.
const (
	A Reg8 = iota
	B
	C
	D
	E
	F
	H
	L
	reg8Count
)

var reg8Names = [reg8Count]string{"A", "B", "C", "D", "E", "F", "H", "L"}

func (r Reg8) String() string {
	if r >= reg8Count {
		return fmt.Sprintf("Reg8(%d)", uint8(r))
	}
	return reg8Names[r]
}

// Reg16 identifies a 16-bit register view.
type Reg16 uint8

// 16-bit registers. All except SP are formed of two 8-bit registers.
const (
	AF Reg16 = iota
	BC
	DE
	HL
	SP
	reg16Count
)

// pairs maps a register pair to its high and low 8-bit register.
var pairs = [SP][2]Reg8{
	AF: {A, F},
	BC: {B, C},
	DE: {D, E},
	HL: {H, L},
}

var reg16Names = [reg16Count]string{"AF", "BC", "DE", "HL", "SP"}

func (r Reg16) String() string {
	if r >= reg16Count {
		return fmt.Sprintf("Reg16(%d)", uint8(r))
	}
	return reg16Names[r]
}

// Halves returns the high and low register of a pair. The last return value
// is false for SP which is not backed by 8-bit registers.
func (r Reg16) Halves() (Reg8, Reg8, bool) {
	if r >= SP {
		return 0, 0, false
	}
	p := pairs[r]
	return p[0], p[1], true
}

// Registers8 lists all 8-bit registers in encoding order.
func Registers8() []Reg8 {
	return []Reg8{A, B, C, D, E, F, H, L}
}

// Pairs lists the 16-bit registers that are formed of two 8-bit registers.
func Pairs() []Reg16 {
	return []Reg16{AF, BC, DE, HL}
}

// File is the register file of the CPU.
type File struct {
	regs [reg8Count]byte
	sp   uint16
	pc   uint16
}

// New returns a zeroed register file.
func New() *File {
	return &File{}
}

// Get8 returns the value of an 8-bit register.
func (f *File) Get8(r Reg8) byte {
	return f.regs[r]
}

// Set8 sets the value of an 8-bit register.
func (f *File) Set8(r Reg8, value byte) {
	f.regs[r] = value
}

// Get16 returns the value of a 16-bit register. Pairs are combined with the
// first named register as high byte.
func (f *File) Get16(r Reg16) uint16 {
	high, low, ok := r.Halves()
	if !ok {
		return f.sp
	}
	return uint16(f.regs[high])<<8 | uint16(f.regs[low])
}

// Set16 sets the value of a 16-bit register, for pairs the high byte is
// written before the low byte.
func (f *File) Set16(r Reg16, value uint16) {
	high, low, ok := r.Halves()
	if !ok {
		f.sp = value
		return
	}
	f.regs[high] = byte(value >> 8)
	f.regs[low] = byte(value)
}

// PC returns the program counter.
func (f *File) PC() uint16 {
	return f.pc
}

// SetPC sets the program counter.
func (f *File) SetPC(value uint16) {
	f.pc = value
}

// SP returns the stack pointer.
func (f *File) SP() uint16 {
	return f.sp
}

// SetSP sets the stack pointer.
func (f *File) SetSP(value uint16) {
	f.sp = value
}

// Reset zeroes all registers.
func (f *File) Reset() {
	*f = File{}
}

func (f *File) String() string {
	return fmt.Sprintf("AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X PC=%04X %s",
		f.Get16(AF), f.Get16(BC), f.Get16(DE), f.Get16(HL), f.sp, f.pc, f.flagString())
}
