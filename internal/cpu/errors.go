package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrHalted is returned when stepping a processor that is halted or stopped.
	ErrHalted = errors.New("processor is halted")
	// ErrOperandMismatch is returned when a handler did not consume the
	// declared number of operand bytes.
	ErrOperandMismatch = errors.New("operand count mismatch")
)

// ExecutionError wraps a fatal error with the location it occurred at.
type ExecutionError struct {
	Phase  Phase
	PC     uint16 // address of the opcode of the failing instruction
	Opcode byte   // only valid for phases after fetch
	Err    error
}

func (e *ExecutionError) Error() string {
	if e.Phase == PhaseFetch {
		return fmt.Sprintf("%s at pc 0x%04X: %s", e.Phase, e.PC, e.Err)
	}
	return fmt.Sprintf("%s of opcode 0x%02X at pc 0x%04X: %s", e.Phase, e.Opcode, e.PC, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
