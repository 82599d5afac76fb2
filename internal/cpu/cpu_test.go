package cpu_test

import (
	"testing"

	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/registers"
)

func newCPU() (*cpu.CPU, *ramBus, *interrupts.Controller) {
	irq := interrupts.New()
	bus := newRAMBus(irq)
	c := cpu.New(bus, irq)
	c.PC = 0x0000
	return c, bus, irq
}

func step(t *testing.T, c *cpu.CPU) uint16 {
	t.Helper()
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	return cycles
}

func TestResetZeroed(t *testing.T) {
	c, _, _ := newCPU()
	c.Reset(false)
	if c.PC != 0 || c.SP != 0 {
		t.Fatalf("zeroed reset should leave PC=SP=0, got PC=%04X SP=%04X", c.PC, c.SP)
	}
	if c.Get(registers.A) != 0 {
		t.Fatalf("zeroed reset should leave A=0, got %02X", c.Get(registers.A))
	}
}

func TestResetPostBootState(t *testing.T) {
	irq := interrupts.New()
	bus := newRAMBus(irq)
	c := cpu.New(bus, irq, cpu.WithPostBootState())
	if c.PC != 0x0100 {
		t.Fatalf("post-boot PC = %04X, want 0100", c.PC)
	}
	if c.SP != 0xFFFE {
		t.Fatalf("post-boot SP = %04X, want FFFE", c.SP)
	}
	if c.Get(registers.A) != 0x01 {
		t.Fatalf("post-boot A = %02X, want 01", c.Get(registers.A))
	}
}

func TestLDImmediateAndRegisterToRegister(t *testing.T) {
	c, bus, _ := newCPU()
	bus.load(0, 0x3E, 0x42, 0x47) // LD A,0x42 ; LD B,A
	step(t, c)
	if c.Get(registers.A) != 0x42 {
		t.Fatalf("A = %02X, want 42", c.Get(registers.A))
	}
	step(t, c)
	if c.Get(registers.B) != 0x42 {
		t.Fatalf("B = %02X, want 42", c.Get(registers.B))
	}
}

func TestADDSetsFlags(t *testing.T) {
	c, bus, _ := newCPU()
	bus.load(0, 0x3E, 0xFF, 0xC6, 0x01) // LD A,0xFF ; ADD A,1
	step(t, c)
	step(t, c)
	if c.Get(registers.A) != 0x00 {
		t.Fatalf("A = %02X, want 00", c.Get(registers.A))
	}
	f := c.Flags()
	if !f.Z || f.N || !f.H || !f.C {
		t.Fatalf("flags = %+v, want Z=true N=false H=true C=true", f)
	}
}

func TestINCDECHL(t *testing.T) {
	c, bus, _ := newCPU()
	bus.load(0, 0x21, 0x00, 0xC0) // LD HL,0xC000
	step(t, c)
	bus.Write8(0xC000, 0x0F)
	bus.load(c.PC, 0x34) // INC (HL)
	step(t, c)
	if got := bus.Read8(0xC000); got != 0x10 {
		t.Fatalf("(HL) = %02X, want 10", got)
	}
	f := c.Flags()
	if f.Z || f.N || !f.H {
		t.Fatalf("flags after INC (HL) = %+v", f)
	}

	bus.load(c.PC, 0x35) // DEC (HL)
	step(t, c)
	if got := bus.Read8(0xC000); got != 0x0F {
		t.Fatalf("(HL) = %02X, want 0F", got)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	c, bus, _ := newCPU()
	c.SP = 0xFFFE
	c.BC().Set(0x1234)
	bus.load(0, 0xC5, 0xD1) // PUSH BC ; POP DE
	step(t, c)
	step(t, c)
	if got := c.DE().Get(); got != 0x1234 {
		t.Fatalf("DE = %04X, want 1234", got)
	}
	if c.SP != 0xFFFE {
		t.Fatalf("SP = %04X, want FFFE (balanced push/pop)", c.SP)
	}
}

func TestJRTakenAndNotTakenCycles(t *testing.T) {
	c, bus, _ := newCPU()
	bus.load(0, 0xAF) // XOR A -> Z=1
	step(t, c)
	bus.load(c.PC, 0x28, 0x05) // JR Z,+5 (taken)
	cycles := step(t, c)
	if cycles != 12 {
		t.Fatalf("taken JR Z cycles = %d, want 12", cycles)
	}
	wantPC := uint16(0x0003) + 5
	if c.PC != wantPC {
		t.Fatalf("PC = %04X, want %04X", c.PC, wantPC)
	}

	bus.load(c.PC, 0x20, 0x05) // JR NZ,+5 (not taken: Z is still set)
	cycles = step(t, c)
	if cycles != 8 {
		t.Fatalf("not-taken JR NZ cycles = %d, want 8", cycles)
	}
	if c.PC != wantPC+2 {
		t.Fatalf("PC = %04X, want %04X (fall through)", c.PC, wantPC+2)
	}
}

func TestCallAndRet(t *testing.T) {
	c, bus, _ := newCPU()
	c.SP = 0xFFFE
	bus.load(0, 0xCD, 0x00, 0x10) // CALL 0x1000
	bus.load(0x1000, 0xC9)        // RET
	step(t, c)
	if c.PC != 0x1000 {
		t.Fatalf("PC after CALL = %04X, want 1000", c.PC)
	}
	step(t, c)
	if c.PC != 0x0003 {
		t.Fatalf("PC after RET = %04X, want 0003", c.PC)
	}
	if c.SP != 0xFFFE {
		t.Fatalf("SP after CALL/RET pair = %04X, want FFFE", c.SP)
	}
}

func TestRSTVector(t *testing.T) {
	c, bus, _ := newCPU()
	c.SP = 0xFFFE
	c.PC = 0x0150
	bus.load(0x0150, 0xEF) // RST 28h
	step(t, c)
	if c.PC != 0x0028 {
		t.Fatalf("PC after RST 28h = %04X, want 0028", c.PC)
	}
}

func TestIllegalOpcode(t *testing.T) {
	c, bus, _ := newCPU()
	bus.load(0, 0xD3) // invalid
	_, err := c.Step()
	if err == nil {
		t.Fatal("expected IllegalOpcodeError, got nil")
	}
}

func TestEIDelaysOneInstruction(t *testing.T) {
	c, bus, irq := newCPU()
	bus.load(0, 0xFB, 0x00, 0x00) // EI ; NOP ; NOP
	irq.Enable = interrupts.VBlank.Bit()

	step(t, c) // EI
	if c.IME() {
		t.Fatal("IME set immediately after EI, want delayed by one instruction")
	}
	step(t, c) // NOP — IME takes effect by the end of this step
	if !c.IME() {
		t.Fatal("IME not set after the instruction following EI")
	}
}

func TestDIImmediatelyCancelsPendingEI(t *testing.T) {
	c, bus, _ := newCPU()
	bus.load(0, 0xFB, 0xF3, 0x00) // EI ; DI ; NOP
	step(t, c)
	step(t, c)
	step(t, c)
	if c.IME() {
		t.Fatal("DI after EI should cancel the pending enable")
	}
}

func TestInterruptDispatchPriority(t *testing.T) {
	c, bus, irq := newCPU()
	c.SP = 0xFFFE
	bus.load(0, 0x00) // NOP, just to have a valid fetch
	irq.Enable = interrupts.VBlank.Bit() | interrupts.Timer.Bit()
	irq.Flag = interrupts.VBlank.Bit() | interrupts.Timer.Bit()

	// Force IME on directly via EI + a NOP to clear the delay.
	bus.load(0, 0xFB, 0x00)
	step(t, c) // EI
	step(t, c) // NOP, also dispatches the highest-priority pending source

	if c.PC != interrupts.VBlank.Vector() {
		t.Fatalf("PC = %04X, want VBlank vector %04X", c.PC, interrupts.VBlank.Vector())
	}
	if irq.Flag&interrupts.VBlank.Bit() != 0 {
		t.Fatal("VBlank IF bit should be cleared after dispatch")
	}
	if irq.Flag&interrupts.Timer.Bit() == 0 {
		t.Fatal("Timer IF bit should remain set (not yet serviced)")
	}
	if c.IME() {
		t.Fatal("IME should be cleared on dispatch")
	}
}

func TestHaltWakesWithoutDispatchWhenIMEClear(t *testing.T) {
	c, bus, irq := newCPU()
	bus.load(0, 0x76) // HALT
	step(t, c)
	if !c.Halted() {
		t.Fatal("CPU should be halted")
	}

	irq.Enable = interrupts.Joypad.Bit()
	irq.Flag = interrupts.Joypad.Bit()
	step(t, c)
	if c.Halted() {
		t.Fatal("HALT should exit on a pending source even with IME clear")
	}
	if c.PC != 0x0001 {
		t.Fatalf("PC = %04X, want 0001 (no vector dispatch while IME clear)", c.PC)
	}
}

func TestRETIEnablesImmediately(t *testing.T) {
	c, bus, _ := newCPU()
	c.SP = 0xFFFE
	c.SP--
	bus.Write8(c.SP, 0x00)
	c.SP--
	bus.Write8(c.SP, 0x10)
	bus.load(0, 0xD9) // RETI
	step(t, c)
	if !c.IME() {
		t.Fatal("RETI should enable IME with no delay")
	}
	if c.PC != 0x0010 {
		t.Fatalf("PC = %04X, want 0010", c.PC)
	}
}
