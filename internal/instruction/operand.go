package instruction

import "github.com/retroenv/gbcore/internal/register"

// target8 is an 8-bit operand location, either a register or the memory
// byte addressed by HL.
type target8 struct {
	reg      register.Reg8
	indirect bool
}

var indirectHL = target8{indirect: true}

// targets8 lists the 8-bit operands in the order of their 3-bit encoding.
var targets8 = [8]target8{
	{reg: register.B},
	{reg: register.C},
	{reg: register.D},
	{reg: register.E},
	{reg: register.H},
	{reg: register.L},
	indirectHL,
	{reg: register.A},
}

func (t target8) String() string {
	if t.indirect {
		return "(HL)"
	}
	return t.reg.String()
}

func (t target8) read(p Processor) (byte, error) {
	regs := p.Registers()
	if t.indirect {
		return p.ReadMemory(regs.Get16(register.HL))
	}
	return regs.Get8(t.reg), nil
}

func (t target8) write(p Processor, value byte) error {
	regs := p.Registers()
	if t.indirect {
		return p.WriteMemory(regs.Get16(register.HL), value)
	}
	regs.Set8(t.reg, value)
	return nil
}
