// Package options contains the program options.
package options

// Parameters contains file and address options.
type Parameters struct {
	Input        string `flag:"i" usage:"name of the input image file"`
	Dump         string `flag:"dump" usage:"memory range to dump after execution in hex, for example c000:c0ff"`
	ProgramStart string `flag:"pc" usage:"initial program counter in hex (default: detected from the image)"`
	StackPointer string `flag:"sp" usage:"initial stack pointer in hex (default: fffe)"`
	Breakpoints  string `flag:"break" usage:"comma separated list of breakpoint addresses in hex"`
}

// Flags contains behavior options.
type Flags struct {
	Raw   bool `flag:"raw" usage:"load the image as raw binary without cartridge header detection"`
	Step  bool `flag:"step" usage:"single step through the program interactively"`
	Trace bool `flag:"trace" usage:"log every executed instruction, implies -debug"`
	Debug bool `flag:"debug" usage:"enable debugging options for extended logging"`
	Quiet bool `flag:"q,quiet" usage:"perform operations quietly"`
}

// Setup contains the values parsed from the parameters.
type Setup struct {
	PC    uint16
	HasPC bool
	SP    uint16
	HasSP bool

	DumpStart uint16
	DumpEnd   uint16
	HasDump   bool
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Setup
}

// Engine defines options to control the execution engine.
type Engine struct {
	Breakpoints []uint16 // addresses to stop at before executing them
	MaxCycles   uint64   `flag:"max-cycles" usage:"stop after this many clock cycles, 0 for no limit"`
	MaxSteps    uint64   `flag:"max-steps" usage:"stop after this many instructions, 0 for no limit"`
	Trace       bool     // log every executed instruction
}
