package register

// Flag is a bit of the F register.
type Flag byte

// Flag bits, the low nibble of F is unused.
const (
	FlagZ Flag = 1 << 7 // zero
	FlagN Flag = 1 << 6 // subtract
	FlagH Flag = 1 << 5 // half carry
	FlagC Flag = 1 << 4 // carry
)

// Flag returns whether the flag bit is set in F.
func (f *File) Flag(flag Flag) bool {
	return f.regs[F]&byte(flag) != 0
}

// SetFlag sets or clears the flag bit in F.
func (f *File) SetFlag(flag Flag, set bool) {
	if set {
		f.regs[F] |= byte(flag)
	} else {
		f.regs[F] &^= byte(flag)
	}
}

func (f *File) flagString() string {
	b := []byte("----")
	for i, flag := range [...]Flag{FlagZ, FlagN, FlagH, FlagC} {
		if f.Flag(flag) {
			b[i] = "ZNHC"[i]
		}
	}
	return string(b)
}
