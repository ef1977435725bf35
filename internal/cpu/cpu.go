// Package cpu implements the fetch, decode and execute cycle of the processor.
package cpu

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/retroenv/gbcore/internal/instruction"
	"github.com/retroenv/gbcore/internal/memory"
	"github.com/retroenv/gbcore/internal/options"
	"github.com/retroenv/gbcore/internal/register"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Compile-time check to ensure CPU implements instruction.Processor.
var _ instruction.Processor = (*CPU)(nil)

// CPU executes instructions from a memory space. It exclusively owns its
// registers and memory, only Stop may be called from another goroutine.
type CPU struct {
	logger  *log.Logger
	options options.Engine
	table   *instruction.Table

	regs *register.File
	mem  *memory.Memory

	breakpoints set.Set[uint16]

	cycles  uint64 // total clock cycles of all executed instructions
	steps   uint64 // number of executed instructions
	fetched int    // operand bytes read by the current instruction

	state  State
	reason StopReason
	fault  error

	// breakpoint the last run stopped at, it is passed when the next run
	// starts from it
	resumeFrom   uint16
	atBreakpoint bool

	stopRequested atomic.Bool
}

// New returns a processor that executes from the given memory using the
// default instruction table.
func New(logger *log.Logger, mem *memory.Memory, opts options.Engine) *CPU {
	c := &CPU{
		logger:      logger,
		options:     opts,
		table:       instruction.Default(),
		regs:        register.New(),
		mem:         mem,
		breakpoints: set.New[uint16](),
	}
	for _, address := range opts.Breakpoints {
		c.breakpoints.Add(address)
	}
	return c
}

// Registers returns the register file.
func (c *CPU) Registers() *register.File {
	return c.regs
}

// Memory returns the memory space.
func (c *CPU) Memory() *memory.Memory {
	return c.mem
}

// Cycles returns the total number of clock cycles executed.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Steps returns the number of instructions executed.
func (c *CPU) Steps() uint64 {
	return c.steps
}

// State returns the current run state.
func (c *CPU) State() State {
	return c.state
}

// StopReason returns why the last step or run ended execution.
func (c *CPU) StopReason() StopReason {
	return c.reason
}

// Fault returns the error that put the processor into the faulted state.
func (c *CPU) Fault() error {
	return c.fault
}

// AddBreakpoint makes Run return before executing the instruction at the address.
func (c *CPU) AddBreakpoint(address uint16) {
	c.breakpoints.Add(address)
}

// Stop requests the running loop to halt before the next instruction.
func (c *CPU) Stop() {
	c.stopRequested.Store(true)
}

// Resume leaves the halted state and drops a stop request that arrived while
// halted. A faulted processor can only be reset.
func (c *CPU) Resume() {
	if c.state == StateHalted {
		c.state = StateReady
		c.reason = ReasonNone
		c.stopRequested.Store(false)
	}
}

// Reset clears registers, counters and the run state. Memory is kept.
func (c *CPU) Reset() {
	c.regs.Reset()
	c.cycles = 0
	c.steps = 0
	c.state = StateReady
	c.reason = ReasonNone
	c.fault = nil
	c.atBreakpoint = false
	c.stopRequested.Store(false)
}

// Run executes instructions until the processor halts, a fatal error occurs,
// the context is canceled or a configured limit or breakpoint is reached.
// A run that starts at the breakpoint the previous run stopped at continues
// past it.
func (c *CPU) Run(ctx context.Context) error {
	if err := c.runnable(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			c.reason = ReasonCanceled
			return fmt.Errorf("running: %w", ctx.Err())
		default:
		}

		if reason, ok := c.checkLimits(); ok {
			c.reason = reason
			switch reason {
			case ReasonRequested:
				c.state = StateHalted
			case ReasonBreakpoint:
				c.resumeFrom = c.regs.PC()
				c.atBreakpoint = true
			}
			c.logger.Debug("Execution stopped",
				log.Stringer("reason", reason),
				log.Hex("pc", c.regs.PC()))
			return nil
		}

		if err := c.Step(); err != nil {
			return err
		}
		if c.state == StateHalted {
			return nil
		}
	}
}

func (c *CPU) checkLimits() (StopReason, bool) {
	pc := c.regs.PC()

	switch {
	case c.stopRequested.Swap(false):
		return ReasonRequested, true
	case c.options.MaxCycles > 0 && c.cycles >= c.options.MaxCycles:
		return ReasonCycleLimit, true
	case c.options.MaxSteps > 0 && c.steps >= c.options.MaxSteps:
		return ReasonStepLimit, true
	case c.breakpoints.Contains(pc) && (!c.atBreakpoint || c.resumeFrom != pc):
		return ReasonBreakpoint, true
	default:
		return ReasonNone, false
	}
}

func (c *CPU) runnable() error {
	switch c.state {
	case StateFaulted:
		return c.fault
	case StateHalted:
		return ErrHalted
	default:
		return nil
	}
}

// Step executes a single instruction.
func (c *CPU) Step() error {
	if err := c.runnable(); err != nil {
		return err
	}
	c.reason = ReasonNone

	pc := c.regs.PC()
	opcode, err := c.mem.Read(pc)
	if err != nil {
		return c.fail(PhaseFetch, pc, 0, err)
	}
	c.regs.SetPC(pc + 1)

	ins, err := c.table.Lookup(opcode)
	if err != nil {
		return c.fail(PhaseDecode, pc, opcode, err)
	}

	if c.options.Trace {
		c.trace(pc)
	}

	c.fetched = 0
	if err := ins.Execute(c); err != nil {
		return c.fail(PhaseExecute, pc, opcode, err)
	}
	if c.fetched != ins.Operands() {
		err = fmt.Errorf("%w: '%s' read %d of %d operand bytes", ErrOperandMismatch, ins.Name(), c.fetched, ins.Operands())
		return c.fail(PhaseExecute, pc, opcode, err)
	}

	// the program counter was advanced by the opcode fetch and the operand reads
	c.cycles += uint64(ins.Cycles())
	c.steps++
	c.atBreakpoint = false
	return nil
}

// fail moves the processor into the faulted state. For fetch and decode
// errors the program counter is kept at the opcode address.
func (c *CPU) fail(phase Phase, pc uint16, opcode byte, err error) error {
	if phase == PhaseFetch || phase == PhaseDecode {
		c.regs.SetPC(pc)
	}
	c.fault = &ExecutionError{
		Phase:  phase,
		PC:     pc,
		Opcode: opcode,
		Err:    err,
	}
	c.state = StateFaulted
	c.reason = ReasonFault
	return c.fault
}

func (c *CPU) trace(pc uint16) {
	text, _, err := c.table.Disassemble(c.mem.Read, pc)
	if err != nil {
		text = err.Error()
	}
	c.logger.Debug("Executing",
		log.Hex("pc", pc),
		log.String("instruction", text),
		log.String("registers", c.regs.String()))
}
