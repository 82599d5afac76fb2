package cpu

// cb.go programmatically builds the 256-entry CB-prefixed table: the
// eight rotate/shift/swap families across the eight register/(HL)
// operands, followed by BIT/RES/SET across all eight bit positions
// and the same eight operands. Every row follows the same register
// index convention as the main table: 0-5 B,C,D,E,H,L, 6 is (HL), 7
// is A.
func init() {
	shiftFamilies := []struct {
		name string
		op   func(c *CPU, v uint8) (uint8, bool)
	}{
		{"RLC", func(c *CPU, v uint8) (uint8, bool) { return rlc(v) }},
		{"RRC", func(c *CPU, v uint8) (uint8, bool) { return rrc(v) }},
		{"RL", func(c *CPU, v uint8) (uint8, bool) { return rl(v, c.Flags().C) }},
		{"RR", func(c *CPU, v uint8) (uint8, bool) { return rr(v, c.Flags().C) }},
		{"SLA", func(c *CPU, v uint8) (uint8, bool) { return sla(v) }},
		{"SRA", func(c *CPU, v uint8) (uint8, bool) { return sra(v) }},
		{"SWAP", func(c *CPU, v uint8) (uint8, bool) { return swap(v), false }},
		{"SRL", func(c *CPU, v uint8) (uint8, bool) { return srl(v) }},
	}

	for fam, family := range shiftFamilies {
		op := family.op
		for src := uint8(0); src < 8; src++ {
			code := uint8(fam)<<3 | src
			cycles := uint8(8)
			if src == 6 {
				cycles = 16
			}
			s := src
			defineCB(code, family.name+" "+regName(s), cycles, func(c *CPU) {
				result, carry := op(c, c.readSrc(s))
				c.writeSrc(s, result)
				c.rotateFlags(result, carry)
			})
		}
	}

	// BIT b,r — 0x40-0x7F.
	for bit := uint8(0); bit < 8; bit++ {
		for src := uint8(0); src < 8; src++ {
			code := 0x40 | bit<<3 | src
			cycles := uint8(8)
			if src == 6 {
				cycles = 12
			}
			b, s := bit, src
			defineCB(code, "BIT "+string(rune('0'+b))+","+regName(s), cycles, func(c *CPU) {
				c.testBit(c.readSrc(s), b)
			})
		}
	}

	// RES b,r — 0x80-0xBF.
	for bit := uint8(0); bit < 8; bit++ {
		for src := uint8(0); src < 8; src++ {
			code := 0x80 | bit<<3 | src
			cycles := uint8(8)
			if src == 6 {
				cycles = 16
			}
			b, s := bit, src
			defineCB(code, "RES "+string(rune('0'+b))+","+regName(s), cycles, func(c *CPU) {
				c.writeSrc(s, resBit(c.readSrc(s), b))
			})
		}
	}

	// SET b,r — 0xC0-0xFF.
	for bit := uint8(0); bit < 8; bit++ {
		for src := uint8(0); src < 8; src++ {
			code := 0xC0 | bit<<3 | src
			cycles := uint8(8)
			if src == 6 {
				cycles = 16
			}
			b, s := bit, src
			defineCB(code, "SET "+string(rune('0'+b))+","+regName(s), cycles, func(c *CPU) {
				c.writeSrc(s, setBit(c.readSrc(s), b))
			})
		}
	}
}
