// Package registers implements the Sharp LR35902 register file: the
// eight 8-bit registers, their 16-bit pairings, and the flag
// register that packs into the high four bits of F.
package registers

import "fmt"

// ByteRegister names one of the eight 8-bit registers. Composite
// operations (register-to-register loads, CB-prefixed bit ops) carry
// a ByteRegister so they can report which register they touched
// without duplicating the read/write logic per name.
type ByteRegister uint8

const (
	A ByteRegister = iota
	B
	C
	D
	E
	H
	L
	F
)

// String returns the assembly mnemonic for the register.
func (r ByteRegister) String() string {
	switch r {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case H:
		return "H"
	case L:
		return "L"
	case F:
		return "F"
	default:
		return fmt.Sprintf("ByteRegister(%d)", uint8(r))
	}
}

// File holds the eight 8-bit registers backing the four 16-bit pairs
// AF, BC, DE and HL.
type File struct {
	A, B, C, D, E, F, H, L uint8
}

// Get returns the current value of the named register.
func (f *File) Get(r ByteRegister) uint8 {
	switch r {
	case A:
		return f.A
	case B:
		return f.B
	case C:
		return f.C
	case D:
		return f.D
	case E:
		return f.E
	case H:
		return f.H
	case L:
		return f.L
	case F:
		return f.F & 0xF0
	default:
		panic(fmt.Sprintf("registers: invalid register %d", r))
	}
}

// Set writes the named register. A write to F masks the low nibble
// to zero, since those bits carry no meaning on real hardware.
func (f *File) Set(r ByteRegister, v uint8) {
	switch r {
	case A:
		f.A = v
	case B:
		f.B = v
	case C:
		f.C = v
	case D:
		f.D = v
	case E:
		f.E = v
	case H:
		f.H = v
	case L:
		f.L = v
	case F:
		f.F = v & 0xF0
	default:
		panic(fmt.Sprintf("registers: invalid register %d", r))
	}
}

// Flags returns the unpacked flag register.
func (f *File) Flags() FlagRegister {
	return Unpack(f.F)
}

// SetFlags packs and stores the flag register.
func (f *File) SetFlags(fr FlagRegister) {
	f.F = fr.Pack()
}

// WordRegister is a 16-bit view over one of the register pairs, SP,
// or PC. It is the sum type spec.md describes: Paired(high,low),
// AF(A,F) with its low-nibble mask, and the two stand-alone 16-bit
// registers SP and PC.
type WordRegister interface {
	Get() uint16
	Set(uint16)
}

// pairRegister implements WordRegister over two 8-bit fields of the
// register file (BC, DE, HL).
type pairRegister struct {
	high, low *uint8
}

func (p pairRegister) Get() uint16 {
	return uint16(*p.high)<<8 | uint16(*p.low)
}

func (p pairRegister) Set(v uint16) {
	*p.high = uint8(v >> 8)
	*p.low = uint8(v)
}

// afRegister implements WordRegister over A and F, masking F's low
// nibble to zero on every write (including POP AF).
type afRegister struct {
	a, f *uint8
}

func (p afRegister) Get() uint16 {
	return uint16(*p.a)<<8 | uint16(*p.f&0xF0)
}

func (p afRegister) Set(v uint16) {
	*p.a = uint8(v >> 8)
	*p.f = uint8(v) & 0xF0
}

// standalone implements WordRegister over a lone 16-bit field (SP or
// PC), which has no byte-level decomposition.
type standalone struct {
	v *uint16
}

func (s standalone) Get() uint16  { return *s.v }
func (s standalone) Set(v uint16) { *s.v = v }

// BC returns a WordRegister view of the BC pair.
func (f *File) BC() WordRegister { return pairRegister{&f.B, &f.C} }

// DE returns a WordRegister view of the DE pair.
func (f *File) DE() WordRegister { return pairRegister{&f.D, &f.E} }

// HL returns a WordRegister view of the HL pair.
func (f *File) HL() WordRegister { return pairRegister{&f.H, &f.L} }

// AF returns a WordRegister view of the AF pair, masking F's low
// nibble on write.
func (f *File) AF() WordRegister { return afRegister{&f.A, &f.F} }

// Word wraps a stand-alone 16-bit register (SP or PC) as a
// WordRegister, so callers that generalize over register pairs don't
// need a special case for them.
func Word(v *uint16) WordRegister { return standalone{v} }
