package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/gbcore/internal/cpu"
	"github.com/retroenv/gbcore/internal/dump"
	"github.com/retroenv/gbcore/internal/instruction"
)

const stepHelp = "[enter] step  [c] continue  [m] stack  [q] quit"

// stepper executes one instruction per key press.
type stepper struct {
	cpu    *cpu.CPU
	reader *bufio.Reader
	out    io.Writer
}

func newStepper(c *cpu.CPU, in io.Reader, out io.Writer) *stepper {
	return &stepper{
		cpu:    c,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// run returns when the processor halts or faults, the input ends or the user
// quits. Line based input is supported by ignoring the newline that
// terminates a command.
func (s *stepper) run(ctx context.Context) error {
	previous := byte('\n')
	s.printf("%s\n", stepHelp)
	s.printState()

	for s.cpu.State() == cpu.StateReady {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("stepping: %w", err)
		}

		key, err := s.reader.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading command: %w", err)
		}
		if key == '\n' && previous != '\n' {
			previous = key
			continue
		}
		previous = key

		switch key {
		case '\n', '\r', ' ', 's':
			if err := s.cpu.Step(); err != nil {
				return err
			}
			s.printState()

		case 'c':
			return s.cpu.Run(ctx)

		case 'm':
			s.printf("%s", dump.Stack(s.cpu.Memory(), s.cpu.Registers().SP(), stackWindow))

		case 'q', 0x03: // ctrl+c in raw terminal mode
			return nil

		default:
			s.printf("%s\n", stepHelp)
		}
	}
	return nil
}

func (s *stepper) printState() {
	regs := s.cpu.Registers()
	s.printf("%s%s\n",
		dump.Disassembly(instruction.Default(), s.cpu.Memory(), regs.PC(), 1),
		dump.Status(s.cpu))
}

func (s *stepper) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
