package instruction

import "github.com/retroenv/gbcore/internal/register"

func push(pair register.Reg16) Handler {
	return func(p Processor) error {
		return p.Push(p.Registers().Get16(pair))
	}
}

func pop(pair register.Reg16) Handler {
	return func(p Processor) error {
		value, err := p.Pop()
		if err != nil {
			return err
		}
		p.Registers().Set16(pair, value)
		return nil
	}
}

func call(p Processor) error {
	address, err := p.FetchWord()
	if err != nil {
		return err
	}
	regs := p.Registers()
	if err := p.Push(regs.PC()); err != nil {
		return err
	}
	regs.SetPC(address)
	return nil
}

func ret(p Processor) error {
	address, err := p.Pop()
	if err != nil {
		return err
	}
	p.Registers().SetPC(address)
	return nil
}
