package instruction

import "github.com/retroenv/gbcore/internal/register"

// increment16 and decrement16 do not affect flags.
func increment16(r register.Reg16) Handler {
	return func(p Processor) error {
		regs := p.Registers()
		regs.Set16(r, regs.Get16(r)+1)
		return nil
	}
}

func decrement16(r register.Reg16) Handler {
	return func(p Processor) error {
		regs := p.Registers()
		regs.Set16(r, regs.Get16(r)-1)
		return nil
	}
}

// addHL adds a 16-bit register to HL. Z is not affected, H and C are set on
// carry out of bit 11 and 15.
func addHL(r register.Reg16) Handler {
	return func(p Processor) error {
		regs := p.Registers()
		hl := regs.Get16(register.HL)
		value := regs.Get16(r)
		sum := uint32(hl) + uint32(value)

		regs.Set16(register.HL, uint16(sum))
		regs.SetFlag(register.FlagN, false)
		regs.SetFlag(register.FlagH, (hl&0x0FFF)+(value&0x0FFF) > 0x0FFF)
		regs.SetFlag(register.FlagC, sum > 0xFFFF)
		return nil
	}
}
