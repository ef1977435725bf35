package instruction

import "github.com/retroenv/gbcore/internal/register"

func nop(Processor) error {
	return nil
}

func halt(p Processor) error {
	p.Halt()
	return nil
}

// stop consumes the padding byte that follows the opcode.
func stop(p Processor) error {
	if _, err := p.FetchByte(); err != nil {
		return err
	}
	p.StopClock()
	return nil
}

func jump(p Processor) error {
	address, err := p.FetchWord()
	if err != nil {
		return err
	}
	p.Registers().SetPC(address)
	return nil
}

func jumpHL(p Processor) error {
	regs := p.Registers()
	regs.SetPC(regs.Get16(register.HL))
	return nil
}

// jumpRelative adds a signed offset to the address following the instruction.
func jumpRelative(p Processor) error {
	offset, err := p.FetchByte()
	if err != nil {
		return err
	}
	regs := p.Registers()
	regs.SetPC(regs.PC() + uint16(int8(offset)))
	return nil
}
