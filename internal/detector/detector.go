// Package detector handles cartridge header detection and selects the
// initial processor state for an image.
package detector

import (
	"strings"

	"github.com/retroenv/gbcore/internal/options"
	"github.com/retroenv/gbcore/internal/register"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Cartridge header layout.
const (
	titleStart           = 0x0134
	titleEnd             = 0x0143
	cartridgeTypeOffset  = 0x0147
	headerChecksumOffset = 0x014D

	// HeaderEnd is the first address after the cartridge header.
	HeaderEnd = 0x0150
)

// Entry points and default stack pointer.
const (
	RawEntryPoint       = 0x0000
	CartridgeEntryPoint = 0x0100
	DefaultStackPointer = 0xFFFE
)

// State is the initial register state of the processor.
type State struct {
	PC uint16
	SP uint16
	AF uint16
	BC uint16
	DE uint16
	HL uint16
}

// Apply writes the state to a register file.
func (s State) Apply(regs *register.File) {
	regs.Set16(register.AF, s.AF)
	regs.Set16(register.BC, s.BC)
	regs.Set16(register.DE, s.DE)
	regs.Set16(register.HL, s.HL)
	regs.SetSP(s.SP)
	regs.SetPC(s.PC)
}

// Result describes the detected image.
type Result struct {
	System        arch.System // empty for raw images
	Title         string
	CartridgeType byte
	State         State
}

// Detector handles image type detection.
type Detector struct {
	logger *log.Logger
}

// New creates a new image detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines whether the image is a cartridge with a valid header and
// returns the matching initial state. Explicit program counter and stack
// pointer options override the detected values.
func (d *Detector) Detect(image []byte, opts options.Program) Result {
	var result Result
	if !opts.Raw && HasHeader(image) {
		result.System = arch.GameBoy
	}

	switch result.System {
	case arch.GameBoy:
		result.Title = title(image)
		result.CartridgeType = image[cartridgeTypeOffset]
		result.State = postBootState()
		d.logger.Debug("Detected cartridge header",
			log.Stringer("system", result.System),
			log.String("title", result.Title),
			log.Hex("type", result.CartridgeType))

	default:
		result.State = State{
			PC: RawEntryPoint,
			SP: DefaultStackPointer,
		}
		d.logger.Debug("Using raw image", log.Int("size", len(image)))
	}

	if opts.HasPC {
		result.State.PC = opts.PC
	}
	if opts.HasSP {
		result.State.SP = opts.SP
	}
	return result
}

// HasHeader returns whether the image contains a cartridge header with a
// matching header checksum.
func HasHeader(image []byte) bool {
	if len(image) < HeaderEnd {
		return false
	}
	return HeaderChecksum(image) == image[headerChecksumOffset]
}

// HeaderChecksum calculates the checksum over the header bytes from the title
// up to the mask ROM version. The image must contain the complete header.
func HeaderChecksum(image []byte) byte {
	var checksum byte
	for _, b := range image[titleStart:headerChecksumOffset] {
		checksum = checksum - b - 1
	}
	return checksum
}

// postBootState is the register state the boot ROM leaves behind.
func postBootState() State {
	return State{
		PC: CartridgeEntryPoint,
		SP: DefaultStackPointer,
		AF: 0x01B0,
		BC: 0x0013,
		DE: 0x00D8,
		HL: 0x014D,
	}
}

func title(image []byte) string {
	var sb strings.Builder
	for _, b := range image[titleStart : titleEnd+1] {
		if b == 0 {
			break
		}
		if b < 0x20 || b > 0x7E {
			continue
		}
		sb.WriteByte(b)
	}
	return strings.TrimSpace(sb.String())
}
