package instruction

import (
	"fmt"
	"strings"
)

// Format returns the mnemonic with the operand placeholders replaced by the
// given operand bytes. Placeholders are kept if not enough operands are passed.
func (ins *Instruction) Format(operands []byte) string {
	if len(operands) < ins.operands || ins.operands == 0 {
		return ins.name
	}

	var replacer *strings.Replacer
	switch ins.operands {
	case 1:
		value := operands[0]
		replacer = strings.NewReplacer(
			"n", fmt.Sprintf("$%02X", value),
			"+e", signed(value),
			"e", signed(value),
		)
	default:
		value := uint16(operands[1])<<8 | uint16(operands[0])
		replacer = strings.NewReplacer("nn", fmt.Sprintf("$%04X", value))
	}
	return replacer.Replace(ins.name)
}

func signed(value byte) string {
	return fmt.Sprintf("%+d", int8(value))
}

// Reader reads a byte from an address.
type Reader func(address uint16) (byte, error)

// Disassemble decodes the instruction at the given address using the table.
// It returns the instruction text and the instruction size in bytes.
func (t *Table) Disassemble(read Reader, address uint16) (string, int, error) {
	opcode, err := read(address)
	if err != nil {
		return "", 0, fmt.Errorf("reading opcode: %w", err)
	}
	ins, err := t.Lookup(opcode)
	if err != nil {
		return fmt.Sprintf("DB $%02X", opcode), 1, err
	}

	operands := make([]byte, ins.operands)
	for i := range operands {
		operands[i], err = read(address + 1 + uint16(i))
		if err != nil {
			return "", 0, fmt.Errorf("reading operand: %w", err)
		}
	}
	return ins.Format(operands), ins.Size(), nil
}
