// Package dump renders human readable views of the processor state.
// The output is meant for diagnostics only and has no stable format.
package dump

import (
	"fmt"
	"strings"

	"github.com/retroenv/gbcore/internal/cpu"
	"github.com/retroenv/gbcore/internal/instruction"
	"github.com/retroenv/gbcore/internal/memory"
)

const bytesPerLine = 16

// Status returns the register line followed by the counters and run state.
func Status(c *cpu.CPU) string {
	s := fmt.Sprintf("%s  cycles=%d steps=%d state=%s", c.Registers(), c.Cycles(), c.Steps(), c.State())
	if reason := c.StopReason(); reason != cpu.ReasonNone {
		s += fmt.Sprintf(" (%s)", reason)
	}
	return s
}

// Memory returns a hex and ASCII dump of the inclusive address range.
// A heading names the memory region whenever a line starts in a new one.
// Addresses outside of the memory space are shown as "--".
func Memory(mem *memory.Memory, start, end uint16) string {
	var sb strings.Builder
	var current memory.Region
	for line := int(start); line <= int(end); line += bytesPerLine {
		if region, ok := memory.RegionOf(uint16(line)); ok && region != current {
			fmt.Fprintf(&sb, "[%s]\n", region.Name)
			current = region
		}
		lineEnd := min(line+bytesPerLine-1, int(end))
		writeLine(&sb, mem, line, lineEnd)
	}
	return sb.String()
}

func writeLine(sb *strings.Builder, mem *memory.Memory, start, end int) {
	var ascii [bytesPerLine]byte
	fmt.Fprintf(sb, "%04X ", start)

	for i := range bytesPerLine {
		address := start + i
		if address > end {
			sb.WriteString("   ")
			ascii[i] = ' '
			continue
		}
		value, err := mem.Read(uint16(address))
		if err != nil {
			sb.WriteString(" --")
			ascii[i] = ' '
			continue
		}
		fmt.Fprintf(sb, " %02X", value)
		ascii[i] = printable(value)
	}

	fmt.Fprintf(sb, "  |%s|\n", strings.TrimRight(string(ascii[:]), " "))
}

func printable(b byte) byte {
	if b < 0x20 || b > 0x7E {
		return '.'
	}
	return b
}

// Regions returns the memory map with the start, end and size of every region.
func Regions() string {
	var sb strings.Builder
	for _, r := range memory.Regions() {
		fmt.Fprintf(&sb, "%-12s %04X-%04X %6d bytes\n", r.Name, r.Start, r.End, r.Size())
	}
	return sb.String()
}

// Stack returns up to count words starting at the stack pointer, read in the
// same byte order as a pop. The window ends at the end of the memory space.
func Stack(mem *memory.Memory, sp uint16, count int) string {
	var sb strings.Builder
	address := int(sp)
	for i := range count {
		if address+1 >= memory.Size {
			break
		}
		high, err := mem.Read(uint16(address))
		if err != nil {
			break
		}
		low, err := mem.Read(uint16(address + 1))
		if err != nil {
			break
		}

		marker := "  "
		if i == 0 {
			marker = "SP"
		}
		fmt.Fprintf(&sb, "%s %04X  %02X%02X\n", marker, address, high, low)
		address += 2
	}
	return sb.String()
}

// Disassembly returns count instructions starting at the address with their
// encoded bytes. Unknown opcodes are shown as data bytes.
func Disassembly(table *instruction.Table, mem *memory.Memory, address uint16, count int) string {
	var sb strings.Builder
	current := int(address)
	for range count {
		if current >= memory.Size {
			break
		}
		text, size, err := table.Disassemble(mem.Read, uint16(current))
		if size == 0 {
			fmt.Fprintf(&sb, "%04X  %s\n", current, err)
			break
		}

		encoded := make([]string, 0, size)
		for i := range size {
			value, _ := mem.Read(uint16(current + i))
			encoded = append(encoded, fmt.Sprintf("%02X", value))
		}
		fmt.Fprintf(&sb, "%04X  %-9s %s\n", current, strings.Join(encoded, " "), text)
		current += size
	}
	return sb.String()
}
