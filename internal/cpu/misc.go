package cpu

import "github.com/thelolagemann/gomeboy-core/internal/registers"

func init() {
	define(0x00, "NOP", 1, 4, func(c *CPU, _ []byte) bool { return true })

	// CPL — complement A. Flags: N and H set, Z and C untouched.
	define(0x2F, "CPL", 1, 4, func(c *CPU, _ []byte) bool {
		c.Set(registers.A, ^c.Get(registers.A))
		f := c.Flags()
		c.SetFlags(registers.FlagRegister{Z: f.Z, N: true, H: true, C: f.C})
		return true
	})

	// CCF — complement carry. Flags: N and H cleared, C flipped, Z
	// untouched.
	define(0x3F, "CCF", 1, 4, func(c *CPU, _ []byte) bool {
		f := c.Flags()
		c.SetFlags(registers.FlagRegister{Z: f.Z, C: !f.C})
		return true
	})

	// SCF — set carry. Flags: N and H cleared, C set, Z untouched.
	define(0x37, "SCF", 1, 4, func(c *CPU, _ []byte) bool {
		f := c.Flags()
		c.SetFlags(registers.FlagRegister{Z: f.Z, C: true})
		return true
	})

	// DAA — adjusts A back to valid packed-BCD after an 8-bit add or
	// subtract, using N to know which direction the prior op ran and H/C
	// to know whether a nibble or byte carry/borrow occurred. The
	// correction only ever ADDS after ADD/ADC/INC (N clear) and only
	// ever SUBTRACTS after SUB/SBC/DEC (N set); running the wrong
	// direction's correction after a subtract is the classic emulator
	// bug this avoids. C is set (never cleared) by the byte-level
	// correction, since DAA only ever reports a carry that genuinely
	// occurred.
	define(0x27, "DAA", 1, 4, func(c *CPU, _ []byte) bool {
		a := c.Get(registers.A)
		f := c.Flags()
		var adjust uint8
		carry := f.C

		if !f.N {
			if f.H || a&0xF > 9 {
				adjust |= 0x06
			}
			if f.C || a > 0x99 {
				adjust |= 0x60
				carry = true
			}
			a += adjust
		} else {
			if f.H {
				adjust |= 0x06
			}
			if f.C {
				adjust |= 0x60
			}
			a -= adjust
		}

		c.SetFlags(registers.FlagRegister{Z: a == 0, N: f.N, C: carry})
		c.Set(registers.A, a)
		return true
	})

	// DI — clears IME immediately, with no delay, and cancels any
	// pending EI enable.
	define(0xF3, "DI", 1, 4, func(c *CPU, _ []byte) bool {
		c.ime = false
		c.imeCounter = -1
		return true
	})

	// EI — arms IME to take effect after the NEXT instruction
	// completes. imeCounter=2 accounts for advanceIME running once per
	// Step, including this very instruction's own Step call.
	define(0xFB, "EI", 1, 4, func(c *CPU, _ []byte) bool {
		c.imeCounter = 2
		return true
	})

	// HALT — suspends fetch/execute until an enabled interrupt is
	// pending. If IME is clear and an interrupt is already pending at
	// the moment HALT runs, real hardware exhibits the HALT bug
	// (PC fails to advance past the next byte); this core does not
	// model it, per spec.
	define(0x76, "HALT", 1, 4, func(c *CPU, _ []byte) bool {
		c.halted = true
		return true
	})

	// STOP — low-power mode on real hardware, exited only by a button
	// press. The core has no button/joypad peripheral wired in, so it
	// is treated as a NOP with length 2 (the trailing 0x00 operand
	// byte is consumed but otherwise ignored); low-power behavior is
	// delegated to whatever host owns the peripherals.
	define(0x10, "STOP", 2, 4, func(c *CPU, _ []byte) bool {
		return true
	})
}
