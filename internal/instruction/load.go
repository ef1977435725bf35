package instruction

import "github.com/retroenv/gbcore/internal/register"

// highPage is the base address of the LDH instructions.
const highPage = 0xFF00

func loadRegister(dst, src target8) Handler {
	return func(p Processor) error {
		value, err := src.read(p)
		if err != nil {
			return err
		}
		return dst.write(p, value)
	}
}

func loadImmediate(dst target8) Handler {
	return func(p Processor) error {
		value, err := p.FetchByte()
		if err != nil {
			return err
		}
		return dst.write(p, value)
	}
}

func loadImmediate16(dst register.Reg16) Handler {
	return func(p Processor) error {
		value, err := p.FetchWord()
		if err != nil {
			return err
		}
		p.Registers().Set16(dst, value)
		return nil
	}
}

// storeAccumulator writes A to the address held in a register pair and then
// adds delta to the pair.
func storeAccumulator(pair register.Reg16, delta int) Handler {
	return func(p Processor) error {
		regs := p.Registers()
		address := regs.Get16(pair)
		if err := p.WriteMemory(address, regs.Get8(register.A)); err != nil {
			return err
		}
		regs.Set16(pair, address+uint16(delta))
		return nil
	}
}

// loadAccumulator reads A from the address held in a register pair and then
// adds delta to the pair.
func loadAccumulator(pair register.Reg16, delta int) Handler {
	return func(p Processor) error {
		regs := p.Registers()
		address := regs.Get16(pair)
		value, err := p.ReadMemory(address)
		if err != nil {
			return err
		}
		regs.Set8(register.A, value)
		regs.Set16(pair, address+uint16(delta))
		return nil
	}
}

func storeAccumulatorAbsolute(p Processor) error {
	address, err := p.FetchWord()
	if err != nil {
		return err
	}
	return p.WriteMemory(address, p.Registers().Get8(register.A))
}

func loadAccumulatorAbsolute(p Processor) error {
	address, err := p.FetchWord()
	if err != nil {
		return err
	}
	value, err := p.ReadMemory(address)
	if err != nil {
		return err
	}
	p.Registers().Set8(register.A, value)
	return nil
}

func storeAccumulatorHigh(p Processor) error {
	offset, err := p.FetchByte()
	if err != nil {
		return err
	}
	return p.WriteMemory(highPage+uint16(offset), p.Registers().Get8(register.A))
}

func loadAccumulatorHigh(p Processor) error {
	offset, err := p.FetchByte()
	if err != nil {
		return err
	}
	value, err := p.ReadMemory(highPage + uint16(offset))
	if err != nil {
		return err
	}
	p.Registers().Set8(register.A, value)
	return nil
}

func storeAccumulatorHighC(p Processor) error {
	regs := p.Registers()
	return p.WriteMemory(highPage+uint16(regs.Get8(register.C)), regs.Get8(register.A))
}

func loadAccumulatorHighC(p Processor) error {
	regs := p.Registers()
	value, err := p.ReadMemory(highPage + uint16(regs.Get8(register.C)))
	if err != nil {
		return err
	}
	regs.Set8(register.A, value)
	return nil
}

// storeStackPointer writes SP little-endian to the immediate address.
func storeStackPointer(p Processor) error {
	address, err := p.FetchWord()
	if err != nil {
		return err
	}
	sp := p.Registers().SP()
	if err := p.WriteMemory(address, byte(sp)); err != nil {
		return err
	}
	return p.WriteMemory(address+1, byte(sp>>8))
}

func loadStackPointerHL(p Processor) error {
	regs := p.Registers()
	regs.SetSP(regs.Get16(register.HL))
	return nil
}

// loadHLStackOffset sets HL to SP plus a signed offset. The carry flags are
// calculated from the unsigned addition of the low byte.
func loadHLStackOffset(p Processor) error {
	value, err := p.FetchByte()
	if err != nil {
		return err
	}
	regs := p.Registers()
	sp := regs.SP()
	regs.Set16(register.HL, sp+uint16(int8(value)))

	regs.SetFlag(register.FlagZ, false)
	regs.SetFlag(register.FlagN, false)
	regs.SetFlag(register.FlagH, (sp&0x0F)+uint16(value&0x0F) > 0x0F)
	regs.SetFlag(register.FlagC, (sp&0xFF)+uint16(value) > 0xFF)
	return nil
}
