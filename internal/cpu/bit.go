package cpu

import "github.com/thelolagemann/gomeboy-core/internal/registers"

// testBit reports whether v has bit n set, updating Z/N/H. C is left
// untouched: BIT never affects carry.
func (c *CPU) testBit(v uint8, n uint8) {
	f := c.Flags()
	c.SetFlags(registers.FlagRegister{Z: v&(1<<n) == 0, H: true, C: f.C})
}

// resBit clears bit n of v.
func resBit(v, n uint8) uint8 {
	return v &^ (1 << n)
}

// setBit sets bit n of v.
func setBit(v, n uint8) uint8 {
	return v | (1 << n)
}
