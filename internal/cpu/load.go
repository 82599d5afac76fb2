package cpu

import "github.com/thelolagemann/gomeboy-core/internal/registers"

// le16 decodes a little-endian word from a 2-byte operand slice.
func le16(operands []byte) uint16 {
	return uint16(operands[1])<<8 | uint16(operands[0])
}

// registerLoad installs LD r,r' for every (dst,src) pair in the 0-7
// register-index convention, including the (HL) forms at index 6 —
// except dst==src==6, which is HALT and is installed separately.
func registerLoad() {
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == 6 && src == 6 {
				continue // 0x76 is HALT, not LD (HL),(HL)
			}
			op := 0x40 | dst<<3 | src
			cycles := uint8(4)
			if dst == 6 || src == 6 {
				cycles = 8
			}
			d, s := dst, src
			define(op, "LD "+regName(d)+","+regName(s), 1, cycles, func(c *CPU, _ []byte) bool {
				c.writeSrc(d, c.readSrc(s))
				return true
			})
		}
	}
}

// immediateLoad installs LD r,n for every register index 0-7,
// including LD (HL),n at index 6.
func immediateLoad() {
	for dst := uint8(0); dst < 8; dst++ {
		op := 0x06 | dst<<3
		cycles := uint8(8)
		if dst == 6 {
			cycles = 12
		}
		d := dst
		define(op, "LD "+regName(d)+",n", 2, cycles, func(c *CPU, operands []byte) bool {
			c.writeSrc(d, operands[0])
			return true
		})
	}
}

func init() {
	registerLoad()
	immediateLoad()

	// 16-bit immediate loads: LD BC,nn / LD DE,nn / LD HL,nn / LD SP,nn.
	define(0x01, "LD BC,nn", 3, 12, func(c *CPU, o []byte) bool { c.BC().Set(le16(o)); return true })
	define(0x11, "LD DE,nn", 3, 12, func(c *CPU, o []byte) bool { c.DE().Set(le16(o)); return true })
	define(0x21, "LD HL,nn", 3, 12, func(c *CPU, o []byte) bool { c.HL().Set(le16(o)); return true })
	define(0x31, "LD SP,nn", 3, 12, func(c *CPU, o []byte) bool { c.SP = le16(o); return true })

	// LD (BC),A / LD (DE),A / LD A,(BC) / LD A,(DE).
	define(0x02, "LD (BC),A", 1, 8, func(c *CPU, _ []byte) bool { c.bus.Write8(c.BC().Get(), c.Get(registers.A)); return true })
	define(0x12, "LD (DE),A", 1, 8, func(c *CPU, _ []byte) bool { c.bus.Write8(c.DE().Get(), c.Get(registers.A)); return true })
	define(0x0A, "LD A,(BC)", 1, 8, func(c *CPU, _ []byte) bool { c.Set(registers.A, c.bus.Read8(c.BC().Get())); return true })
	define(0x1A, "LD A,(DE)", 1, 8, func(c *CPU, _ []byte) bool { c.Set(registers.A, c.bus.Read8(c.DE().Get())); return true })

	// LD (HLI),A / LD (HLD),A / LD A,(HLI) / LD A,(HLD).
	define(0x22, "LD (HL+),A", 1, 8, func(c *CPU, _ []byte) bool {
		c.bus.Write8(c.HL().Get(), c.Get(registers.A))
		c.HL().Set(c.HL().Get() + 1)
		return true
	})
	define(0x32, "LD (HL-),A", 1, 8, func(c *CPU, _ []byte) bool {
		c.bus.Write8(c.HL().Get(), c.Get(registers.A))
		c.HL().Set(c.HL().Get() - 1)
		return true
	})
	define(0x2A, "LD A,(HL+)", 1, 8, func(c *CPU, _ []byte) bool {
		c.Set(registers.A, c.bus.Read8(c.HL().Get()))
		c.HL().Set(c.HL().Get() + 1)
		return true
	})
	define(0x3A, "LD A,(HL-)", 1, 8, func(c *CPU, _ []byte) bool {
		c.Set(registers.A, c.bus.Read8(c.HL().Get()))
		c.HL().Set(c.HL().Get() - 1)
		return true
	})

	// LD (nn),A / LD A,(nn).
	define(0xEA, "LD (nn),A", 3, 16, func(c *CPU, o []byte) bool { c.bus.Write8(le16(o), c.Get(registers.A)); return true })
	define(0xFA, "LD A,(nn)", 3, 16, func(c *CPU, o []byte) bool { c.Set(registers.A, c.bus.Read8(le16(o))); return true })

	// LDH (n),A / LDH A,(n) / LDH (C),A / LDH A,(C) — the $FF00+n and
	// $FF00+C zero-page forms.
	define(0xE0, "LDH (n),A", 2, 12, func(c *CPU, o []byte) bool {
		c.bus.Write8(0xFF00+uint16(o[0]), c.Get(registers.A))
		return true
	})
	define(0xF0, "LDH A,(n)", 2, 12, func(c *CPU, o []byte) bool {
		c.Set(registers.A, c.bus.Read8(0xFF00+uint16(o[0])))
		return true
	})
	define(0xE2, "LDH (C),A", 1, 8, func(c *CPU, _ []byte) bool {
		c.bus.Write8(0xFF00+uint16(c.Get(registers.C)), c.Get(registers.A))
		return true
	})
	define(0xF2, "LDH A,(C)", 1, 8, func(c *CPU, _ []byte) bool {
		c.Set(registers.A, c.bus.Read8(0xFF00+uint16(c.Get(registers.C))))
		return true
	})

	// LD (nn),SP — stores SP little-endian at the given address.
	define(0x08, "LD (nn),SP", 3, 20, func(c *CPU, o []byte) bool {
		addr := le16(o)
		c.bus.Write8(addr, uint8(c.SP))
		c.bus.Write8(addr+1, uint8(c.SP>>8))
		return true
	})

	// LD SP,HL.
	define(0xF9, "LD SP,HL", 1, 8, func(c *CPU, _ []byte) bool { c.SP = c.HL().Get(); return true })

	// LD HL,SP+e8 — the signed-displacement load; shares its flag and
	// arithmetic convention with ADD SP,e8.
	define(0xF8, "LD HL,SP+e8", 2, 12, func(c *CPU, o []byte) bool {
		result, f := addSPSigned(c.SP, int8(o[0]))
		c.SetFlags(f)
		c.HL().Set(result)
		return true
	})

	// PUSH/POP, in the bb/dd/hh/AF order the 2-bit qq field selects.
	pushPop := [4]struct {
		name string
		get  func(c *CPU) registers.WordRegister
	}{
		{"BC", func(c *CPU) registers.WordRegister { return c.BC() }},
		{"DE", func(c *CPU) registers.WordRegister { return c.DE() }},
		{"HL", func(c *CPU) registers.WordRegister { return c.HL() }},
		{"AF", func(c *CPU) registers.WordRegister { return c.AF() }},
	}
	for i, rr := range pushPop {
		op := 0xC5 | uint8(i)<<4
		get := rr.get
		define(op, "PUSH "+rr.name, 1, 16, func(c *CPU, _ []byte) bool {
			v := get(c).Get()
			c.SP--
			c.bus.Write8(c.SP, uint8(v>>8))
			c.SP--
			c.bus.Write8(c.SP, uint8(v))
			return true
		})
	}
	for i, rr := range pushPop {
		op := 0xC1 | uint8(i)<<4
		get := rr.get
		define(op, "POP "+rr.name, 1, 12, func(c *CPU, _ []byte) bool {
			lo := c.bus.Read8(c.SP)
			c.SP++
			hi := c.bus.Read8(c.SP)
			c.SP++
			get(c).Set(uint16(hi)<<8 | uint16(lo))
			return true
		})
	}
}
