package instruction

import (
	"github.com/retroenv/gbcore/internal/register"
)

// mockProcessor is a minimal processor backed by a flat memory slice.
type mockProcessor struct {
	regs    *register.File
	memory  []byte
	fetched int
	halted  bool
	stopped bool
}

var _ Processor = (*mockProcessor)(nil)

func newMockProcessor(program ...byte) *mockProcessor {
	m := &mockProcessor{
		regs:   register.New(),
		memory: make([]byte, 0x10000),
	}
	copy(m.memory, program)
	m.regs.SetSP(0xFFFE)
	return m
}

func (m *mockProcessor) Registers() *register.File {
	return m.regs
}

func (m *mockProcessor) ReadMemory(address uint16) (byte, error) {
	return m.memory[address], nil
}

func (m *mockProcessor) WriteMemory(address uint16, value byte) error {
	m.memory[address] = value
	return nil
}

func (m *mockProcessor) FetchByte() (byte, error) {
	pc := m.regs.PC()
	m.regs.SetPC(pc + 1)
	m.fetched++
	return m.memory[pc], nil
}

func (m *mockProcessor) FetchWord() (uint16, error) {
	low, _ := m.FetchByte()
	high, _ := m.FetchByte()
	return uint16(high)<<8 | uint16(low), nil
}

func (m *mockProcessor) Push(value uint16) error {
	sp := m.regs.SP() - 1
	m.memory[sp] = byte(value)
	sp--
	m.memory[sp] = byte(value >> 8)
	m.regs.SetSP(sp)
	return nil
}

func (m *mockProcessor) Pop() (uint16, error) {
	sp := m.regs.SP()
	high := m.memory[sp]
	sp++
	low := m.memory[sp]
	sp++
	m.regs.SetSP(sp)
	return uint16(high)<<8 | uint16(low), nil
}

func (m *mockProcessor) Halt() {
	m.halted = true
}

func (m *mockProcessor) StopClock() {
	m.stopped = true
}

// execute runs the instruction at the program counter.
func (m *mockProcessor) execute() (*Instruction, error) {
	opcode, _ := m.FetchByte()
	m.fetched = 0
	ins, err := Lookup(opcode)
	if err != nil {
		return nil, err
	}
	return ins, ins.Execute(m)
}
