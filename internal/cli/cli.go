// Package cli handles command line interface logic
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/gbcore/internal/options"
	retrocli "github.com/retroenv/retrogolib/cli"
)

// positional contains the arguments following the flags.
type positional struct {
	File string `arg:"positional" usage:"image file to execute, can also be passed with -i"`
}

// ParseFlags parses command line flags and returns program and engine options
func ParseFlags() (options.Program, options.Engine, error) {
	return parseArgs(os.Args[0], os.Args[1:])
}

func parseArgs(name string, arguments []string) (options.Program, options.Engine, error) {
	var opts options.Program
	var engineOpts options.Engine
	var args positional

	flags := retrocli.NewFlagSet(name)
	flags.AddSection("Parameters", &opts.Parameters)
	flags.AddSection("Flags", &opts.Flags)
	flags.AddSection("Execution", &engineOpts)
	flags.AddPositional(&args)

	remaining, err := flags.Parse(arguments)
	if err != nil {
		// the flag set prints the usage itself when parsing fails
		usageErr := &UsageError{flags: flags, shown: true}
		if !errors.Is(err, retrocli.ErrHelpRequested) {
			usageErr.msg = err.Error()
		}
		return opts, options.Engine{}, usageErr
	}

	if opts.Input == "" {
		opts.Input = args.File
	}
	if opts.Input == "" {
		return opts, options.Engine{}, &UsageError{flags: flags}
	}
	if err := validateArgs(flags, remaining); err != nil {
		return opts, options.Engine{}, err
	}

	if err := normalizeOptions(&opts, &engineOpts); err != nil {
		return opts, options.Engine{}, err
	}
	return opts, engineOpts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *retrocli.FlagSet
	msg   string
	shown bool
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage unless it was already printed while parsing.
func (e *UsageError) ShowUsage() {
	if e.shown || e.flags == nil {
		return
	}
	e.flags.ShowUsage()
}

// validateArgs checks the arguments remaining after the image file for
// misplaced flags.
func validateArgs(flags *retrocli.FlagSet, remaining []string) error {
	for _, arg := range remaining {
		if arg != "" && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after image file, please pass the image file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions parses the address parameters and applies implied flags
func normalizeOptions(opts *options.Program, engineOpts *options.Engine) error {
	var err error
	if opts.ProgramStart != "" {
		if opts.PC, err = ParseAddress(opts.ProgramStart); err != nil {
			return fmt.Errorf("invalid program counter: %w", err)
		}
		opts.HasPC = true
	}
	if opts.StackPointer != "" {
		if opts.SP, err = ParseAddress(opts.StackPointer); err != nil {
			return fmt.Errorf("invalid stack pointer: %w", err)
		}
		opts.HasSP = true
	}
	if opts.Dump != "" {
		if opts.DumpStart, opts.DumpEnd, err = ParseRange(opts.Dump); err != nil {
			return fmt.Errorf("invalid dump range: %w", err)
		}
		opts.HasDump = true
	}
	if opts.Breakpoints != "" {
		if engineOpts.Breakpoints, err = parseAddressList(opts.Breakpoints); err != nil {
			return fmt.Errorf("invalid breakpoint: %w", err)
		}
	}

	if opts.Trace {
		opts.Debug = true
		engineOpts.Trace = true
	}
	return nil
}

// ParseAddress parses a hex address with an optional $ or 0x prefix.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	value, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("parsing address '%s': %w", s, err)
	}
	return uint16(value), nil
}

// ParseRange parses an inclusive address range in the form start:end.
func ParseRange(s string) (uint16, uint16, error) {
	first, second, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("missing ':' in range '%s'", s)
	}
	start, err := ParseAddress(first)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseAddress(second)
	if err != nil {
		return 0, 0, err
	}
	if end < start {
		return 0, 0, fmt.Errorf("range end 0x%04X is before start 0x%04X", end, start)
	}
	return start, end, nil
}

func parseAddressList(s string) ([]uint16, error) {
	var addresses []uint16
	for field := range strings.SplitSeq(s, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		address, err := ParseAddress(field)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}
	return addresses, nil
}
