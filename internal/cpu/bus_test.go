package cpu_test

import "github.com/thelolagemann/gomeboy-core/internal/interrupts"

// ramBus is a flat 64KiB RAM implementing types.AddressBus, with the
// interrupt controller wired in at 0xFF0F/0xFFFF the way a real MMU
// would. It has no other memory-mapped I/O: everything else is plain
// RAM, which is all the cpu package's own tests need.
type ramBus struct {
	mem   [0x10000]byte
	irq   *interrupts.Controller
	ticks uint16
}

func newRAMBus(irq *interrupts.Controller) *ramBus {
	return &ramBus{irq: irq}
}

func (b *ramBus) Read8(addr uint16) uint8 {
	if v, ok := b.irq.Read(addr); ok {
		return v
	}
	return b.mem[addr]
}

func (b *ramBus) Write8(addr uint16, v uint8) {
	if b.irq.Write(addr, v) {
		return
	}
	b.mem[addr] = v
}

func (b *ramBus) Tick(cycles uint16) {
	b.ticks += cycles
}

// load copies program starting at addr.
func (b *ramBus) load(addr uint16, program ...byte) {
	copy(b.mem[addr:], program)
}
