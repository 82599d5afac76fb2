package cpu

import "github.com/thelolagemann/gomeboy-core/internal/registers"

// rlc rotates v left by one bit, bit 7 going to both bit 0 and carry.
func rlc(v uint8) (uint8, bool) {
	carry := v&0x80 != 0
	result := v<<1 | v>>7
	return result, carry
}

// rl rotates v left through carry: bit 7 becomes the new carry, the
// old carry becomes bit 0.
func rl(v uint8, carryIn bool) (uint8, bool) {
	carry := v&0x80 != 0
	var in uint8
	if carryIn {
		in = 1
	}
	return v<<1 | in, carry
}

// rrc rotates v right by one bit, bit 0 going to both bit 7 and carry.
func rrc(v uint8) (uint8, bool) {
	carry := v&0x1 != 0
	result := v>>1 | v<<7
	return result, carry
}

// rr rotates v right through carry: bit 0 becomes the new carry, the
// old carry becomes bit 7.
func rr(v uint8, carryIn bool) (uint8, bool) {
	carry := v&0x1 != 0
	var in uint8
	if carryIn {
		in = 0x80
	}
	return v>>1 | in, carry
}

// rotateAccFlags applies the flag convention the four bare
// accumulator rotates (RLCA, RLA, RRCA, RRA) share: Z always cleared
// regardless of the result, unlike their CB-prefixed r/(HL)
// counterparts which set Z from the result.
func (c *CPU) rotateAccFlags(carry bool) {
	c.SetFlags(registers.FlagRegister{C: carry})
}

// rotateFlags applies the CB-prefixed rotate convention: Z set from
// the result, N and H cleared, C from the bit shifted out.
func (c *CPU) rotateFlags(result uint8, carry bool) {
	c.SetFlags(registers.FlagRegister{Z: result == 0, C: carry})
}
