package instruction

import (
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDefault(t *testing.T) {
	table := Default()
	assert.Equal(t, 120, table.Len())
	assert.Len(t, table.Instructions(), 120)

	for _, ins := range table.Instructions() {
		found, err := table.Lookup(ins.Opcode())
		assert.NoError(t, err)
		assert.True(t, found == ins, "lookup returns the registered instance")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		opcode   byte
		name     string
		cycles   int
		operands int
	}{
		{0x00, "NOP", 4, 0},
		{0x01, "LD BC, nn", 12, 2},
		{0x06, "LD B, n", 8, 1},
		{0x36, "LD (HL), n", 12, 1},
		{0x41, "LD B, C", 4, 0},
		{0x46, "LD B, (HL)", 8, 0},
		{0x70, "LD (HL), B", 8, 0},
		{0x76, "HALT", 4, 0},
		{0x7F, "LD A, A", 4, 0},
		{0xC1, "POP BC", 12, 0},
		{0xF5, "PUSH AF", 16, 0},
		{0x31, "LD SP, nn", 12, 2},
		{0x39, "ADD HL, SP", 8, 0},
		{0xCD, "CALL nn", 24, 2},
		{0x10, "STOP n", 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, err := Lookup(tt.opcode)
			assert.NoError(t, err)
			assert.Equal(t, tt.opcode, ins.Opcode())
			assert.Equal(t, tt.name, ins.Name())
			assert.Equal(t, tt.cycles, ins.Cycles())
			assert.Equal(t, tt.operands, ins.Operands())
			assert.Equal(t, 1+tt.operands, ins.Size())
		})
	}
}

func TestLookup_UnknownOpcode(t *testing.T) {
	for _, opcode := range []byte{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		ins, err := Lookup(opcode)
		assert.Nil(t, ins)
		assert.True(t, errors.Is(err, ErrUnknownOpcode))

		var opErr *UnknownOpcodeError
		assert.True(t, errors.As(err, &opErr))
		assert.Equal(t, opcode, opErr.Opcode)
	}
}

func TestNew_Duplicate(t *testing.T) {
	defs := []Definition{
		{Opcode: 0x00, Name: "NOP", Cycles: 4, Handler: nop},
		{Opcode: 0x00, Name: "NOP2", Cycles: 4, Handler: nop},
	}
	table, err := New(defs)
	assert.Nil(t, table)
	assert.True(t, errors.Is(err, ErrDuplicateOpcode))
	assert.ErrorContains(t, err, "0x00")
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
	}{
		{"missing name", Definition{Opcode: 1, Cycles: 4, Handler: nop}},
		{"missing handler", Definition{Opcode: 1, Name: "X", Cycles: 4}},
		{"missing cycles", Definition{Opcode: 1, Name: "X", Handler: nop}},
		{"too many operands", Definition{Opcode: 1, Name: "X", Cycles: 4, Operands: 3, Handler: nop}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]Definition{tt.def})
			assert.True(t, errors.Is(err, ErrInvalidDefinition))
		})
	}
}

func TestNew_DoesNotAliasDefinitions(t *testing.T) {
	var calls int
	count := func(Processor) error {
		calls++
		return nil
	}
	defs := []Definition{{Opcode: 0x00, Name: "NOP", Cycles: 4, Handler: count}}
	table, err := New(defs)
	assert.NoError(t, err)

	defs[0].Name = "CHANGED"
	defs[0].Cycles = 1
	defs[0].Operands = 2
	defs[0].Handler = nil

	ins, err := table.Lookup(0x00)
	assert.NoError(t, err)
	assert.Equal(t, "NOP", ins.Name())
	assert.Equal(t, 4, ins.Cycles())
	assert.Equal(t, 0, ins.Operands())
	assert.NoError(t, ins.Execute(newMockProcessor()))
	assert.Equal(t, 1, calls)
}

// The operand placeholders of every mnemonic have to match the operand count.
func TestDefinitions_PlaceholdersMatchOperands(t *testing.T) {
	for _, ins := range Default().Instructions() {
		operands := 0
		switch {
		case strings.Contains(ins.Name(), "nn"):
			operands = 2
		case strings.Contains(ins.Name(), "n"), strings.Contains(ins.Name(), "e"):
			operands = 1
		}
		assert.Equal(t, operands, ins.Operands(), ins.Name())
	}
}
