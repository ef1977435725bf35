package cpu

import "github.com/retroenv/retrogolib/log"

// ReadMemory reads a byte from the memory space.
func (c *CPU) ReadMemory(address uint16) (byte, error) {
	return c.mem.Read(address)
}

// WriteMemory writes a byte to the memory space.
func (c *CPU) WriteMemory(address uint16, value byte) error {
	return c.mem.Write(address, value)
}

// FetchByte reads the operand byte at the program counter and advances it.
func (c *CPU) FetchByte() (byte, error) {
	pc := c.regs.PC()
	value, err := c.mem.Read(pc)
	if err != nil {
		return 0, err
	}
	c.regs.SetPC(pc + 1)
	c.fetched++
	return value, nil
}

// FetchWord reads a little-endian operand word, the low byte comes first.
func (c *CPU) FetchWord() (uint16, error) {
	low, err := c.FetchByte()
	if err != nil {
		return 0, err
	}
	high, err := c.FetchByte()
	if err != nil {
		return 0, err
	}
	return uint16(high)<<8 | uint16(low), nil
}

// Push stores a word on the stack, which grows downwards. The low byte is
// written first, the high byte ends up at the lower address. The stack
// pointer only moves if both writes succeed.
func (c *CPU) Push(value uint16) error {
	sp := c.regs.SP()
	if err := c.mem.Write(sp-1, byte(value)); err != nil {
		return err
	}
	if err := c.mem.Write(sp-2, byte(value>>8)); err != nil {
		return err
	}
	c.regs.SetSP(sp - 2)
	return nil
}

// Pop is the inverse of Push: it reads the high byte at the stack pointer,
// then the low byte above it. The stack pointer only moves if both reads
// succeed.
func (c *CPU) Pop() (uint16, error) {
	sp := c.regs.SP()
	high, err := c.mem.Read(sp)
	if err != nil {
		return 0, err
	}
	low, err := c.mem.Read(sp + 1)
	if err != nil {
		return 0, err
	}
	c.regs.SetSP(sp + 2)
	return uint16(high)<<8 | uint16(low), nil
}

// Halt is called by the HALT instruction.
func (c *CPU) Halt() {
	c.state = StateHalted
	c.reason = ReasonHalt
	c.logger.Debug("Halted", log.Hex("pc", c.regs.PC()))
}

// StopClock is called by the STOP instruction.
func (c *CPU) StopClock() {
	c.state = StateHalted
	c.reason = ReasonStop
	c.logger.Debug("Stopped", log.Hex("pc", c.regs.PC()))
}
