package cpu

import "github.com/thelolagemann/gomeboy-core/internal/registers"

// aluOp names one of the eight ALU operations selected by the 3-bit
// field in 0x80-0xBF (register form) and 0xC6-0xFE (immediate form).
type aluOp struct {
	name string
	exec func(c *CPU, v uint8)
}

var aluOps = [8]aluOp{
	{"ADD", func(c *CPU, v uint8) { c.addA(v, false) }},
	{"ADC", func(c *CPU, v uint8) { c.addA(v, c.Flags().C) }},
	{"SUB", func(c *CPU, v uint8) { c.subA(v, false, false) }},
	{"SBC", func(c *CPU, v uint8) { c.subA(v, c.Flags().C, false) }},
	{"AND", func(c *CPU, v uint8) { c.andA(v) }},
	{"XOR", func(c *CPU, v uint8) { c.xorA(v) }},
	{"OR", func(c *CPU, v uint8) { c.orA(v) }},
	{"CP", func(c *CPU, v uint8) { c.subA(v, false, true) }},
}

func init() {
	// ALU r — 0x80-0xBF, register/(HL) operand.
	for i, op := range aluOps {
		base := uint8(0x80 + i*8)
		exec := op.exec
		for src := uint8(0); src < 8; src++ {
			cycles := uint8(4)
			if src == 6 {
				cycles = 8
			}
			s := src
			define(base+s, op.name+" A,"+regName(s), 1, cycles, func(c *CPU, _ []byte) bool {
				exec(c, c.readSrc(s))
				return true
			})
		}
	}

	// ALU n — 0xC6,0xCE,0xD6,0xDE,0xE6,0xEE,0xF6,0xFE, immediate
	// operand.
	for i, op := range aluOps {
		base := uint8(0xC6 + i*8)
		exec := op.exec
		define(base, op.name+" A,n", 2, 8, func(c *CPU, o []byte) bool {
			exec(c, o[0])
			return true
		})
	}

	// INC r / DEC r — 0x04/0x05 + 8*reg, register/(HL) operand.
	for src := uint8(0); src < 8; src++ {
		incCycles, decCycles := uint8(4), uint8(4)
		if src == 6 {
			incCycles, decCycles = 12, 12
		}
		s := src
		define(0x04|s<<3, "INC "+regName(s), 1, incCycles, func(c *CPU, _ []byte) bool {
			c.writeSrc(s, c.incR(c.readSrc(s)))
			return true
		})
		define(0x05|s<<3, "DEC "+regName(s), 1, decCycles, func(c *CPU, _ []byte) bool {
			c.writeSrc(s, c.decR(c.readSrc(s)))
			return true
		})
	}

	// 16-bit INC/DEC rr and ADD HL,rr — 0x03/0x0B/0x09 + 0x10*pair.
	wordRegs := [4]struct {
		name string
		get  func(c *CPU) registers.WordRegister
	}{
		{"BC", func(c *CPU) registers.WordRegister { return c.BC() }},
		{"DE", func(c *CPU) registers.WordRegister { return c.DE() }},
		{"HL", func(c *CPU) registers.WordRegister { return c.HL() }},
		{"SP", func(c *CPU) registers.WordRegister { return registers.Word(&c.SP) }},
	}
	for i, wr := range wordRegs {
		get := wr.get
		define(0x03|uint8(i)<<4, "INC "+wr.name, 1, 8, func(c *CPU, _ []byte) bool {
			r := get(c)
			r.Set(r.Get() + 1)
			return true
		})
		define(0x0B|uint8(i)<<4, "DEC "+wr.name, 1, 8, func(c *CPU, _ []byte) bool {
			r := get(c)
			r.Set(r.Get() - 1)
			return true
		})
		define(0x09|uint8(i)<<4, "ADD HL,"+wr.name, 1, 8, func(c *CPU, _ []byte) bool {
			c.addHL(get(c).Get())
			return true
		})
	}

	// ADD SP,e8 — signed displacement, shares arithmetic and flags
	// with LD HL,SP+e8: both clear Z and N unconditionally.
	define(0xE8, "ADD SP,e8", 2, 16, func(c *CPU, o []byte) bool {
		result, f := addSPSigned(c.SP, int8(o[0]))
		c.SetFlags(f)
		c.SP = result
		return true
	})

	// The four bare accumulator rotates. Unlike their CB-prefixed
	// counterparts these always clear Z regardless of the result.
	define(0x07, "RLCA", 1, 4, func(c *CPU, _ []byte) bool {
		result, carry := rlc(c.Get(registers.A))
		c.Set(registers.A, result)
		c.rotateAccFlags(carry)
		return true
	})
	define(0x17, "RLA", 1, 4, func(c *CPU, _ []byte) bool {
		result, carry := rl(c.Get(registers.A), c.Flags().C)
		c.Set(registers.A, result)
		c.rotateAccFlags(carry)
		return true
	})
	define(0x0F, "RRCA", 1, 4, func(c *CPU, _ []byte) bool {
		result, carry := rrc(c.Get(registers.A))
		c.Set(registers.A, result)
		c.rotateAccFlags(carry)
		return true
	})
	define(0x1F, "RRA", 1, 4, func(c *CPU, _ []byte) bool {
		result, carry := rr(c.Get(registers.A), c.Flags().C)
		c.Set(registers.A, result)
		c.rotateAccFlags(carry)
		return true
	})
}
