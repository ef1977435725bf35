package instruction

import (
	"fmt"

	"github.com/retroenv/gbcore/internal/register"
)

// pairs16 lists the 16-bit registers in the order of their 2-bit encoding for
// loads and arithmetic. stackPairs replaces SP by AF for push and pop.
var (
	pairs16    = [4]register.Reg16{register.BC, register.DE, register.HL, register.SP}
	stackPairs = [4]register.Reg16{register.BC, register.DE, register.HL, register.AF}
)

// definitions returns all supported instructions.
func definitions() []Definition {
	defs := []Definition{
		{Opcode: 0x00, Name: "NOP", Cycles: 4, Handler: nop},
		{Opcode: 0x10, Name: "STOP n", Cycles: 4, Operands: 1, Handler: stop},
		{Opcode: 0x76, Name: "HALT", Cycles: 4, Handler: halt},

		{Opcode: 0x02, Name: "LD (BC), A", Cycles: 8, Handler: storeAccumulator(register.BC, 0)},
		{Opcode: 0x12, Name: "LD (DE), A", Cycles: 8, Handler: storeAccumulator(register.DE, 0)},
		{Opcode: 0x22, Name: "LD (HL+), A", Cycles: 8, Handler: storeAccumulator(register.HL, 1)},
		{Opcode: 0x32, Name: "LD (HL-), A", Cycles: 8, Handler: storeAccumulator(register.HL, -1)},
		{Opcode: 0x0A, Name: "LD A, (BC)", Cycles: 8, Handler: loadAccumulator(register.BC, 0)},
		{Opcode: 0x1A, Name: "LD A, (DE)", Cycles: 8, Handler: loadAccumulator(register.DE, 0)},
		{Opcode: 0x2A, Name: "LD A, (HL+)", Cycles: 8, Handler: loadAccumulator(register.HL, 1)},
		{Opcode: 0x3A, Name: "LD A, (HL-)", Cycles: 8, Handler: loadAccumulator(register.HL, -1)},

		{Opcode: 0xEA, Name: "LD (nn), A", Cycles: 16, Operands: 2, Handler: storeAccumulatorAbsolute},
		{Opcode: 0xFA, Name: "LD A, (nn)", Cycles: 16, Operands: 2, Handler: loadAccumulatorAbsolute},
		{Opcode: 0xE0, Name: "LDH (n), A", Cycles: 12, Operands: 1, Handler: storeAccumulatorHigh},
		{Opcode: 0xF0, Name: "LDH A, (n)", Cycles: 12, Operands: 1, Handler: loadAccumulatorHigh},
		{Opcode: 0xE2, Name: "LD (C), A", Cycles: 8, Handler: storeAccumulatorHighC},
		{Opcode: 0xF2, Name: "LD A, (C)", Cycles: 8, Handler: loadAccumulatorHighC},

		{Opcode: 0x08, Name: "LD (nn), SP", Cycles: 20, Operands: 2, Handler: storeStackPointer},
		{Opcode: 0xF9, Name: "LD SP, HL", Cycles: 8, Handler: loadStackPointerHL},
		{Opcode: 0xF8, Name: "LD HL, SP+e", Cycles: 12, Operands: 1, Handler: loadHLStackOffset},

		{Opcode: 0xC3, Name: "JP nn", Cycles: 16, Operands: 2, Handler: jump},
		{Opcode: 0xE9, Name: "JP (HL)", Cycles: 4, Handler: jumpHL},
		{Opcode: 0x18, Name: "JR e", Cycles: 12, Operands: 1, Handler: jumpRelative},
		{Opcode: 0xCD, Name: "CALL nn", Cycles: 24, Operands: 2, Handler: call},
		{Opcode: 0xC9, Name: "RET", Cycles: 16, Handler: ret},
	}

	defs = append(defs, registerLoads()...)
	defs = append(defs, immediateLoads()...)
	defs = append(defs, pairInstructions()...)
	return defs
}

// registerLoads returns the LD r, r' block 0x40-0x7F. The opcode that would
// encode LD (HL), (HL) is HALT.
func registerLoads() []Definition {
	defs := make([]Definition, 0, 63)
	for d, dst := range targets8 {
		for s, src := range targets8 {
			if dst.indirect && src.indirect {
				continue
			}
			cycles := 4
			if dst.indirect || src.indirect {
				cycles = 8
			}
			defs = append(defs, Definition{
				Opcode:  byte(0x40 | d<<3 | s),
				Name:    fmt.Sprintf("LD %s, %s", dst, src),
				Cycles:  cycles,
				Handler: loadRegister(dst, src),
			})
		}
	}
	return defs
}

// immediateLoads returns the LD r, n instructions.
func immediateLoads() []Definition {
	defs := make([]Definition, 0, len(targets8))
	for d, dst := range targets8 {
		cycles := 8
		if dst.indirect {
			cycles = 12
		}
		defs = append(defs, Definition{
			Opcode:   byte(0x06 | d<<3),
			Name:     fmt.Sprintf("LD %s, n", dst),
			Cycles:   cycles,
			Operands: 1,
			Handler:  loadImmediate(dst),
		})
	}
	return defs
}

// pairInstructions returns the 16-bit loads, increments, decrements, additions
// and stack operations that share the register pair encoding in bits 4-5.
func pairInstructions() []Definition {
	defs := make([]Definition, 0, 6*len(pairs16))
	for i, pair := range pairs16 {
		base := byte(i << 4)
		defs = append(defs,
			Definition{Opcode: 0x01 | base, Name: fmt.Sprintf("LD %s, nn", pair), Cycles: 12, Operands: 2,
				Handler: loadImmediate16(pair)},
			Definition{Opcode: 0x03 | base, Name: fmt.Sprintf("INC %s", pair), Cycles: 8,
				Handler: increment16(pair)},
			Definition{Opcode: 0x0B | base, Name: fmt.Sprintf("DEC %s", pair), Cycles: 8,
				Handler: decrement16(pair)},
			Definition{Opcode: 0x09 | base, Name: fmt.Sprintf("ADD HL, %s", pair), Cycles: 8,
				Handler: addHL(pair)},
		)
	}
	for i, pair := range stackPairs {
		base := byte(i << 4)
		defs = append(defs,
			Definition{Opcode: 0xC5 | base, Name: fmt.Sprintf("PUSH %s", pair), Cycles: 16, Handler: push(pair)},
			Definition{Opcode: 0xC1 | base, Name: fmt.Sprintf("POP %s", pair), Cycles: 12, Handler: pop(pair)},
		)
	}
	return defs
}
