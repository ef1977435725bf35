// Package pipeline orchestrates the load, run and dump workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/gbcore/internal/cpu"
	"github.com/retroenv/gbcore/internal/detector"
	"github.com/retroenv/gbcore/internal/dump"
	"github.com/retroenv/gbcore/internal/instruction"
	"github.com/retroenv/gbcore/internal/loader"
	"github.com/retroenv/gbcore/internal/memory"
	"github.com/retroenv/gbcore/internal/options"
	"github.com/retroenv/retrogolib/log"
)

const stackWindow = 4

// Pipeline orchestrates the complete execution workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new execution pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute loads the image file and runs the complete pipeline. In step mode
// commands are read from in, all diagnostic output is written to out.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, engineOpts options.Engine,
	in io.Reader, out io.Writer) (*cpu.CPU, error) {

	image, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading image: %w", err)
	}
	return p.ExecuteWithImage(ctx, image, opts, engineOpts, in, out)
}

// ExecuteWithImage runs the pipeline with an image that is already in memory.
// The final state is dumped even if execution failed.
func (p *Pipeline) ExecuteWithImage(ctx context.Context, image []byte, opts options.Program,
	engineOpts options.Engine, in io.Reader, out io.Writer) (*cpu.CPU, error) {

	mem := memory.New()
	loaded := mem.LoadImage(image)
	if loaded.Truncated {
		p.logger.Warn("Image does not fit into the ROM area and was truncated",
			log.Int("size", len(image)),
			log.Int("loaded", loaded.Copied),
			log.Int("dropped", loaded.Dropped))
	}

	detected := p.detector.Detect(image, opts)
	p.printInfo(opts, detected, len(image))

	c := cpu.New(p.logger, mem, engineOpts)
	detected.State.Apply(c.Registers())

	var runErr error
	if opts.Step {
		runErr = newStepper(c, in, out).run(ctx)
	} else {
		runErr = c.Run(ctx)
	}

	if err := p.writeDump(out, c, opts); err != nil {
		return c, fmt.Errorf("writing dump: %w", err)
	}
	if runErr != nil {
		return c, fmt.Errorf("executing: %w", runErr)
	}

	p.logger.Info("Execution finished",
		log.Stringer("reason", c.StopReason()),
		log.Hex("pc", c.Registers().PC()))
	return c, nil
}

// writeDump writes the final processor state and the requested memory range.
func (p *Pipeline) writeDump(out io.Writer, c *cpu.CPU, opts options.Program) error {
	regs := c.Registers()
	sections := []string{
		dump.Status(c),
		dump.Disassembly(instruction.Default(), c.Memory(), regs.PC(), 1),
		dump.Stack(c.Memory(), regs.SP(), stackWindow),
	}
	if opts.Debug {
		sections = append(sections, dump.Regions())
	}
	if opts.HasDump {
		sections = append(sections, dump.Memory(c.Memory(), opts.DumpStart, opts.DumpEnd))
	}

	for _, section := range sections {
		if section == "" {
			continue
		}
		if _, err := io.WriteString(out, section); err != nil {
			return err
		}
		if section[len(section)-1] != '\n' {
			if _, err := io.WriteString(out, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// printInfo prints information about the image being executed.
func (p *Pipeline) printInfo(opts options.Program, detected detector.Result, size int) {
	if opts.Quiet {
		return
	}

	if detected.System != "" {
		p.logger.Info("Executing cartridge",
			log.String("file", opts.Input),
			log.Stringer("system", detected.System),
			log.String("title", detected.Title),
			log.Hex("type", detected.CartridgeType),
			log.Hex("pc", detected.State.PC))
		return
	}

	p.logger.Info("Executing raw image",
		log.String("file", opts.Input),
		log.Int("size", size),
		log.Hex("pc", detected.State.PC),
		log.Hex("sp", detected.State.SP))
}
