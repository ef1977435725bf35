package memory

// Region is a named contiguous part of the memory map. End is inclusive.
type Region struct {
	Name  string
	Start uint16
	End   uint16
}

// Contains returns whether the address belongs to the region.
func (r Region) Contains(address uint16) bool {
	return address >= r.Start && address <= r.End
}

// Size returns the number of bytes of the region.
func (r Region) Size() int {
	return int(r.End) - int(r.Start) + 1
}

var regions = [...]Region{
	{Name: "ROM", Start: ROMStart, End: VideoRAMStart - 1},
	{Name: "VRAM", Start: VideoRAMStart, End: ExternalRAMStart - 1},
	{Name: "External RAM", Start: ExternalRAMStart, End: WorkRAMStart - 1},
	{Name: "WRAM", Start: WorkRAMStart, End: ObjectRAMStart - 1},
	{Name: "OAM", Start: ObjectRAMStart, End: UnusableStart - 1},
	{Name: "Unusable", Start: UnusableStart, End: IOStart - 1},
	{Name: "I/O", Start: IOStart, End: HighRAMStart - 1},
	{Name: "HRAM", Start: HighRAMStart, End: Size - 1},
}

// Regions returns the memory map ordered by start address.
func Regions() []Region {
	return regions[:]
}

// RegionOf returns the region that contains the address. The second return
// value is false for addresses outside of the memory space.
func RegionOf(address uint16) (Region, bool) {
	for _, r := range regions {
		if r.Contains(address) {
			return r, true
		}
	}
	return Region{}, false
}
