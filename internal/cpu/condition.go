package cpu

import "github.com/thelolagemann/gomeboy-core/internal/registers"

// Condition is a branch predicate over the flag register, used by
// JR, JP, CALL and RET's conditional forms.
type Condition uint8

const (
	// None marks an unconditional instruction (always taken).
	None Condition = iota
	NZ
	Z
	NC
	C
)

// Eval is a pure function from (cc, flags) to bool.
func (cc Condition) Eval(f registers.FlagRegister) bool {
	switch cc {
	case NZ:
		return !f.Z
	case Z:
		return f.Z
	case NC:
		return !f.C
	case C:
		return f.C
	default:
		return true
	}
}

func (cc Condition) String() string {
	switch cc {
	case NZ:
		return "NZ"
	case Z:
		return "Z"
	case NC:
		return "NC"
	case C:
		return "C"
	default:
		return ""
	}
}
