package registers_test

import (
	"testing"

	"github.com/thelolagemann/gomeboy-core/internal/registers"
)

func TestPairRegisterGetSet(t *testing.T) {
	f := &registers.File{}
	f.BC().Set(0x1234)
	if f.B != 0x12 || f.C != 0x34 {
		t.Fatalf("B=%02X C=%02X, want 12/34", f.B, f.C)
	}
	if got := f.BC().Get(); got != 0x1234 {
		t.Fatalf("BC().Get() = %04X, want 1234", got)
	}
}

func TestAFMasksLowNibbleOnWrite(t *testing.T) {
	f := &registers.File{}
	f.AF().Set(0x12FF)
	if f.F != 0xF0 {
		t.Fatalf("F = %02X, want F0 (low nibble masked)", f.F)
	}
	if got := f.AF().Get(); got != 0x12F0 {
		t.Fatalf("AF().Get() = %04X, want 12F0", got)
	}
}

func TestSetFRegisterDirectlyMasksLowNibble(t *testing.T) {
	f := &registers.File{}
	f.Set(registers.F, 0xFF)
	if f.Get(registers.F) != 0xF0 {
		t.Fatalf("F = %02X, want F0", f.Get(registers.F))
	}
}

func TestFlagPackUnpackRoundTrip(t *testing.T) {
	want := registers.FlagRegister{Z: true, N: false, H: true, C: true}
	got := registers.Unpack(want.Pack())
	if got != want {
		t.Fatalf("Unpack(Pack(%+v)) = %+v", want, got)
	}
}

func TestFlagsAndSetFlagsRoundTripThroughFile(t *testing.T) {
	f := &registers.File{}
	fr := registers.FlagRegister{Z: true, C: true}
	f.SetFlags(fr)
	if got := f.Flags(); got != fr {
		t.Fatalf("Flags() = %+v, want %+v", got, fr)
	}
}

func TestWordWrapsStandaloneRegister(t *testing.T) {
	var pc uint16 = 0x0100
	w := registers.Word(&pc)
	w.Set(0x0150)
	if pc != 0x0150 {
		t.Fatalf("pc = %04X, want 0150", pc)
	}
	if got := w.Get(); got != 0x0150 {
		t.Fatalf("Get() = %04X, want 0150", got)
	}
}
