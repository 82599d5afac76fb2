package cpu

// push pushes a 16-bit value onto the stack, high byte first.
func (c *CPU) push(v uint16) {
	c.SP--
	c.bus.Write8(c.SP, uint8(v>>8))
	c.SP--
	c.bus.Write8(c.SP, uint8(v))
}

// pop pops a 16-bit value off the stack, low byte first.
func (c *CPU) pop() uint16 {
	lo := c.bus.Read8(c.SP)
	c.SP++
	hi := c.bus.Read8(c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}

func init() {
	// JR e8 / JR cc,e8 — relative jump, displacement signed against
	// PC *after* the 2-byte instruction has been fetched.
	define(0x18, "JR e8", 2, 12, func(c *CPU, o []byte) bool {
		c.PC = uint16(int32(c.PC) + int32(int8(o[0])))
		return true
	})
	jrConds := [4]struct {
		op uint8
		cc Condition
	}{{0x20, NZ}, {0x28, Z}, {0x30, NC}, {0x38, C}}
	for _, jc := range jrConds {
		cc := jc.cc
		defineBranch(jc.op, "JR "+cc.String()+",e8", 2, 12, 8, func(c *CPU, o []byte) bool {
			if !cc.Eval(c.Flags()) {
				return false
			}
			c.PC = uint16(int32(c.PC) + int32(int8(o[0])))
			return true
		})
	}

	// JP nn / JP cc,nn / JP HL.
	define(0xC3, "JP nn", 3, 16, func(c *CPU, o []byte) bool { c.PC = le16(o); return true })
	define(0xE9, "JP HL", 1, 4, func(c *CPU, _ []byte) bool { c.PC = c.HL().Get(); return true })
	jpConds := [4]struct {
		op uint8
		cc Condition
	}{{0xC2, NZ}, {0xCA, Z}, {0xD2, NC}, {0xDA, C}}
	for _, jc := range jpConds {
		cc := jc.cc
		defineBranch(jc.op, "JP "+cc.String()+",nn", 3, 16, 12, func(c *CPU, o []byte) bool {
			if !cc.Eval(c.Flags()) {
				return false
			}
			c.PC = le16(o)
			return true
		})
	}

	// CALL nn / CALL cc,nn.
	define(0xCD, "CALL nn", 3, 24, func(c *CPU, o []byte) bool {
		c.push(c.PC)
		c.PC = le16(o)
		return true
	})
	callConds := [4]struct {
		op uint8
		cc Condition
	}{{0xC4, NZ}, {0xCC, Z}, {0xD4, NC}, {0xDC, C}}
	for _, cc2 := range callConds {
		cc := cc2.cc
		defineBranch(cc2.op, "CALL "+cc.String()+",nn", 3, 24, 12, func(c *CPU, o []byte) bool {
			if !cc.Eval(c.Flags()) {
				return false
			}
			c.push(c.PC)
			c.PC = le16(o)
			return true
		})
	}

	// RET / RET cc / RETI.
	define(0xC9, "RET", 1, 16, func(c *CPU, _ []byte) bool { c.PC = c.pop(); return true })
	define(0xD9, "RETI", 1, 16, func(c *CPU, _ []byte) bool {
		c.PC = c.pop()
		c.ime = true
		c.imeCounter = -1
		return true
	})
	retConds := [4]struct {
		op uint8
		cc Condition
	}{{0xC0, NZ}, {0xC8, Z}, {0xD0, NC}, {0xD8, C}}
	for _, rc := range retConds {
		cc := rc.cc
		defineBranch(rc.op, "RET "+cc.String(), 1, 20, 8, func(c *CPU, _ []byte) bool {
			if !cc.Eval(c.Flags()) {
				return false
			}
			c.PC = c.pop()
			return true
		})
	}

	// RST n — call to one of the eight fixed zero-page vectors.
	for i := uint8(0); i < 8; i++ {
		op := 0xC7 | i<<3
		vector := uint16(i) * 8
		define(op, "RST", 1, 16, func(c *CPU, _ []byte) bool {
			c.push(c.PC)
			c.PC = vector
			return true
		})
	}
}
