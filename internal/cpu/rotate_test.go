package cpu_test

import (
	"testing"

	"github.com/thelolagemann/gomeboy-core/internal/registers"
)

func TestRLCACarriesBit7ToCarryAndBit0(t *testing.T) {
	c, bus, _ := newCPU()
	c.Set(registers.A, 0x85) // 1000_0101
	bus.load(0, 0x07)        // RLCA
	step(t, c)
	if got := c.Get(registers.A); got != 0x0B { // 0000_1011
		t.Fatalf("A = %02X, want 0B", got)
	}
	if !c.Flags().C {
		t.Fatal("carry should be set from bit 7")
	}
	if c.Flags().Z {
		t.Fatal("RLCA always clears Z regardless of result")
	}
}

func TestCBRLCSetsZFromResult(t *testing.T) {
	c, bus, _ := newCPU()
	c.Set(registers.B, 0x00)
	bus.load(0, 0xCB, 0x00) // RLC B
	step(t, c)
	if !c.Flags().Z {
		t.Fatal("CB RLC B on 0x00 should set Z, unlike RLCA")
	}
}

func TestSWAPClearsAllButZ(t *testing.T) {
	c, bus, _ := newCPU()
	c.SetFlags(registers.FlagRegister{C: true})
	c.Set(registers.A, 0xAB)
	bus.load(0, 0xCB, 0x37) // SWAP A
	step(t, c)
	if got := c.Get(registers.A); got != 0xBA {
		t.Fatalf("A = %02X, want BA", got)
	}
	f := c.Flags()
	if f.N || f.H || f.C {
		t.Fatalf("SWAP should clear N/H/C, got %+v", f)
	}
}

func TestBITDoesNotTouchCarry(t *testing.T) {
	c, bus, _ := newCPU()
	c.SetFlags(registers.FlagRegister{C: true})
	c.Set(registers.A, 0x00)
	bus.load(0, 0xCB, 0x47) // BIT 0,A
	step(t, c)
	f := c.Flags()
	if !f.Z {
		t.Fatal("BIT 0,A on 0 should set Z")
	}
	if !f.C {
		t.Fatal("BIT must not clear an already-set carry")
	}
}

func TestRESandSET(t *testing.T) {
	c, bus, _ := newCPU()
	c.Set(registers.A, 0xFF)
	bus.load(0, 0xCB, 0x87) // RES 0,A
	step(t, c)
	if got := c.Get(registers.A); got != 0xFE {
		t.Fatalf("A = %02X, want FE", got)
	}
	bus.load(c.PC, 0xCB, 0xC7) // SET 0,A
	step(t, c)
	if got := c.Get(registers.A); got != 0xFF {
		t.Fatalf("A = %02X, want FF", got)
	}
}
