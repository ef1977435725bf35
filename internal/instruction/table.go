package instruction

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOpcode is matched by errors for opcodes without a registered instruction.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrDuplicateOpcode is returned when a table would contain an opcode twice.
	ErrDuplicateOpcode = errors.New("duplicate opcode")
	// ErrInvalidDefinition is returned for incomplete instruction definitions.
	ErrInvalidDefinition = errors.New("invalid instruction definition")
)

// UnknownOpcodeError is returned by Lookup for an opcode that is not part of the table.
type UnknownOpcodeError struct {
	Opcode byte
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("%s 0x%02X", ErrUnknownOpcode, e.Opcode)
}

// Is makes errors.Is match ErrUnknownOpcode.
func (e *UnknownOpcodeError) Is(target error) bool {
	return target == ErrUnknownOpcode
}

// maxOperands is the largest operand count of any instruction.
const maxOperands = 2

// Table maps opcodes to instructions. It is read-only after creation.
type Table struct {
	entries [256]*Instruction
	count   int
}

// New creates a table from the given definitions. Every opcode may only be
// defined once.
func New(definitions []Definition) (*Table, error) {
	t := &Table{}
	for _, def := range definitions {
		if err := validate(def); err != nil {
			return nil, err
		}
		if existing := t.entries[def.Opcode]; existing != nil {
			return nil, fmt.Errorf("%w 0x%02X: '%s' and '%s'",
				ErrDuplicateOpcode, def.Opcode, existing.name, def.Name)
		}
		t.entries[def.Opcode] = &Instruction{
			opcode:   def.Opcode,
			name:     def.Name,
			cycles:   def.Cycles,
			operands: def.Operands,
			handler:  def.Handler,
		}
		t.count++
	}
	return t, nil
}

func validate(def Definition) error {
	switch {
	case def.Name == "":
		return fmt.Errorf("%w: opcode 0x%02X has no name", ErrInvalidDefinition, def.Opcode)
	case def.Handler == nil:
		return fmt.Errorf("%w: opcode 0x%02X has no handler", ErrInvalidDefinition, def.Opcode)
	case def.Cycles <= 0:
		return fmt.Errorf("%w: opcode 0x%02X has no cycle cost", ErrInvalidDefinition, def.Opcode)
	case def.Operands < 0 || def.Operands > maxOperands:
		return fmt.Errorf("%w: opcode 0x%02X has %d operands", ErrInvalidDefinition, def.Opcode, def.Operands)
	}
	return nil
}

// Lookup returns the instruction for the opcode.
func (t *Table) Lookup(opcode byte) (*Instruction, error) {
	ins := t.entries[opcode]
	if ins == nil {
		return nil, &UnknownOpcodeError{Opcode: opcode}
	}
	return ins, nil
}

// Len returns the number of defined opcodes.
func (t *Table) Len() int {
	return t.count
}

// Instructions returns all defined instructions ordered by opcode.
func (t *Table) Instructions() []*Instruction {
	result := make([]*Instruction, 0, t.count)
	for _, ins := range t.entries {
		if ins != nil {
			result = append(result, ins)
		}
	}
	return result
}

var defaultTable = mustNew(definitions())

func mustNew(definitions []Definition) *Table {
	t, err := New(definitions)
	if err != nil {
		panic(fmt.Sprintf("building instruction table: %s", err))
	}
	return t
}

// Default returns the instruction table of the CPU.
func Default() *Table {
	return defaultTable
}

// Lookup returns the instruction for the opcode from the default table.
func Lookup(opcode byte) (*Instruction, error) {
	return defaultTable.Lookup(opcode)
}
