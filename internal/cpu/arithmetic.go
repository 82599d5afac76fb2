package cpu

import "github.com/thelolagemann/gomeboy-core/internal/registers"

// addA adds v (plus carryIn, for ADC) to A.
//
// Flags affected: Z N H C — N cleared, H/C set from the low-nibble
// and full-byte carries respectively.
func (c *CPU) addA(v uint8, carryIn bool) {
	a := c.Get(registers.A)
	var carry uint8
	if carryIn {
		carry = 1
	}
	sum := uint16(a) + uint16(v) + uint16(carry)
	result := uint8(sum)

	c.SetFlags(registers.FlagRegister{
		Z: result == 0,
		H: (a&0xF)+(v&0xF)+carry > 0xF,
		C: sum > 0xFF,
	})
	c.Set(registers.A, result)
}

// subA subtracts v (plus borrowIn, for SBC) from A. When compareOnly
// is true (CP), A is left unchanged and only the flags are reported.
//
// Flags affected: Z N H C — N set, H/C set from the low-nibble and
// full-byte borrows respectively.
func (c *CPU) subA(v uint8, borrowIn, compareOnly bool) {
	a := c.Get(registers.A)
	var borrow uint8
	if borrowIn {
		borrow = 1
	}
	result := a - v - borrow

	c.SetFlags(registers.FlagRegister{
		Z: result == 0,
		N: true,
		H: (a & 0xF) < (v&0xF)+borrow,
		C: uint16(a) < uint16(v)+uint16(borrow),
	})
	if !compareOnly {
		c.Set(registers.A, result)
	}
}

// andA ANDs v into A. Flags: Z set from result, N/C cleared, H always
// set (a quirk of the real ALU's bitwise path).
func (c *CPU) andA(v uint8) {
	result := c.Get(registers.A) & v
	c.SetFlags(registers.FlagRegister{Z: result == 0, H: true})
	c.Set(registers.A, result)
}

// orA ORs v into A. Flags: Z set from result, N/H/C cleared.
func (c *CPU) orA(v uint8) {
	result := c.Get(registers.A) | v
	c.SetFlags(registers.FlagRegister{Z: result == 0})
	c.Set(registers.A, result)
}

// xorA XORs v into A. Flags: Z set from result, N/H/C cleared.
func (c *CPU) xorA(v uint8) {
	result := c.Get(registers.A) ^ v
	c.SetFlags(registers.FlagRegister{Z: result == 0})
	c.Set(registers.A, result)
}

// incR increments an 8-bit value. Flags: Z N H affected, C preserved
// (INC never touches carry).
func (c *CPU) incR(v uint8) uint8 {
	result := v + 1
	f := c.Flags()
	c.SetFlags(registers.FlagRegister{Z: result == 0, H: v&0xF == 0xF, C: f.C})
	return result
}

// decR decrements an 8-bit value. Flags: Z N H affected, C preserved.
func (c *CPU) decR(v uint8) uint8 {
	result := v - 1
	f := c.Flags()
	c.SetFlags(registers.FlagRegister{Z: result == 0, N: true, H: v&0xF == 0, C: f.C})
	return result
}

// addHL adds a 16-bit value into HL. Flags: N cleared, H/C set from
// bit 11 and bit 15 carries, Z preserved.
func (c *CPU) addHL(v uint16) {
	hl := c.HL().Get()
	sum := uint32(hl) + uint32(v)
	f := c.Flags()
	c.SetFlags(registers.FlagRegister{
		Z: f.Z,
		H: (hl&0xFFF)+(v&0xFFF) > 0xFFF,
		C: sum > 0xFFFF,
	})
	c.HL().Set(uint16(sum))
}

// addSPSigned adds a sign-extended 8-bit displacement to base, the
// shared arithmetic behind ADD SP,e8 and LD HL,SP+e8. Both set flags
// identically: Z and N cleared, H/C computed on the LOW byte of base
// as if the addition were an 8-bit unsigned add of base's low byte
// and the raw operand byte — matching the real ALU, which never sees
// the sign extension, only the single byte it adds to SPL.
func addSPSigned(base uint16, e int8) (uint16, registers.FlagRegister) {
	lo := uint8(base)
	raw := uint8(e)
	sum := uint16(lo) + uint16(raw)
	f := registers.FlagRegister{
		H: (lo&0xF)+(raw&0xF) > 0xF,
		C: sum > 0xFF,
	}
	return uint16(int32(base) + int32(e)), f
}
