// Package instruction contains the opcode table of the CPU and the handlers
// that implement the instruction semantics.
package instruction

import "github.com/retroenv/gbcore/internal/register"

// Processor is the view of the CPU that instruction handlers operate on.
type Processor interface {
	// Registers returns the register file.
	Registers() *register.File
	// ReadMemory reads a byte from the address space.
	ReadMemory(address uint16) (byte, error)
	// WriteMemory writes a byte to the address space.
	WriteMemory(address uint16, value byte) error
	// FetchByte reads the next operand byte and advances the program counter.
	FetchByte() (byte, error)
	// FetchWord reads the next two operand bytes as little-endian word.
	FetchWord() (uint16, error)
	// Push pushes a word onto the stack.
	Push(value uint16) error
	// Pop pops a word from the stack.
	Pop() (uint16, error)
	// Halt suspends execution until the processor is reset.
	Halt()
	// StopClock stops the processor clock, ending execution.
	StopClock()
}

// Handler implements the effect of an instruction.
type Handler func(p Processor) error

// Definition describes a single opcode for building a Table.
type Definition struct {
	Opcode   byte
	Name     string // mnemonic, operands are shown as n, nn or e placeholders
	Cycles   int    // base cycle cost in clock cycles
	Operands int    // number of operand bytes following the opcode
	Handler  Handler
}

// Instruction is a table entry. It is immutable, the values are taken from
// the Definition when the table is created.
type Instruction struct {
	opcode   byte
	name     string
	cycles   int
	operands int
	handler  Handler
}

// Opcode returns the encoding byte of the instruction.
func (ins *Instruction) Opcode() byte {
	return ins.opcode
}

// Name returns the mnemonic with operand placeholders.
func (ins *Instruction) Name() string {
	return ins.name
}

// Cycles returns the base cycle cost.
func (ins *Instruction) Cycles() int {
	return ins.cycles
}

// Operands returns the number of operand bytes following the opcode.
func (ins *Instruction) Operands() int {
	return ins.operands
}

// Size returns the encoded size of the instruction in bytes.
func (ins *Instruction) Size() int {
	return 1 + ins.operands
}

// Execute runs the instruction handler on the processor.
func (ins *Instruction) Execute(p Processor) error {
	return ins.handler(p)
}
