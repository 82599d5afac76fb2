// Package cpu implements the Sharp LR35902 instruction decoder and
// executor, together with the dispatch side of the interrupt
// controller's five sources. It is the core of the emulator: given a
// memory bus and an interrupt controller, it fetches, decodes and
// executes one instruction per Step call and reports the cycles that
// instruction actually cost.
package cpu

import (
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/registers"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// CPU holds the register file, program counter, stack pointer and
// interrupt-latency state of the Sharp LR35902, plus the bus and
// interrupt controller it was wired against.
type CPU struct {
	registers.File

	// PC is the program counter.
	PC uint16
	// SP is the stack pointer.
	SP uint16

	bus types.AddressBus
	irq *interrupts.Controller

	// ime is the Interrupt Master Enable flag.
	ime bool
	// imeCounter is the delayed-enable counter armed by EI (RETI
	// sets ime directly). It decrements once per executed instruction; when it
	// reaches zero, ime becomes true and the counter parks at -1.
	imeCounter int8
	// halted is true while the CPU is in the HALT state.
	halted bool

	logger log.Logger
	tracer *Tracer
}

// Option configures a CPU at construction time.
type Option func(*CPU)

// WithLogger overrides the CPU's logger. The default is a null
// logger that discards everything.
func WithLogger(l log.Logger) Option {
	return func(c *CPU) { c.logger = l }
}

// WithTracer attaches a Tracer that records a fingerprint of every
// retired instruction, for deterministic-replay tests.
func WithTracer(t *Tracer) Option {
	return func(c *CPU) { c.tracer = t }
}

// WithPostBootState initializes the register file to the values the
// boot ROM leaves behind, instead of to zero. Use this when the host
// is not going to run a boot ROM itself.
func WithPostBootState() Option {
	return func(c *CPU) { c.Reset(true) }
}

// New creates a CPU wired against bus and irq. Peripherals reach irq
// independently (through interrupts.Controller.Request); the CPU
// only reaches it to poll and dispatch.
func New(bus types.AddressBus, irq *interrupts.Controller, opts ...Option) *CPU {
	c := &CPU{
		bus:    bus,
		irq:    irq,
		logger: log.NewNullLogger(),
	}
	c.Reset(false)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset initializes the register file, SP and PC. When postBoot is
// true, registers hold the values the boot ROM would have left
// (DMG). When false, everything is zeroed, on the assumption the
// host is about to run a boot ROM itself.
func (c *CPU) Reset(postBoot bool) {
	c.imeCounter = -1
	c.ime = false
	c.halted = false

	if !postBoot {
		c.File = registers.File{}
		c.SP = 0
		c.PC = 0
		return
	}

	c.File = registers.File{A: 0x01, F: 0xB0, B: 0x00, C: 0x13, D: 0x00, E: 0xD8, H: 0x01, L: 0x4D}
	c.SP = 0xFFFE
	c.PC = 0x0100
}

// IME reports whether the interrupt master enable is currently set.
func (c *CPU) IME() bool { return c.ime }

// Halted reports whether the CPU is currently in the HALT state.
func (c *CPU) Halted() bool { return c.halted }

// fetch reads the byte at PC and advances PC past it. It is the only
// way the decoder consumes the instruction stream.
func (c *CPU) fetch() uint8 {
	v := c.bus.Read8(c.PC)
	c.PC++
	return v
}

// fetch16 reads a little-endian word from the instruction stream.
func (c *CPU) fetch16() uint16 {
	lo := c.fetch()
	hi := c.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

// Step runs exactly one instruction (or, while halted, one idle
// M-cycle), then advances the delayed-enable counter and dispatches
// at most one pending interrupt. It returns the number of T-cycles
// actually consumed.
func (c *CPU) Step() (uint16, error) {
	if c.halted {
		c.bus.Tick(4)
		extra := c.serviceInterrupts()
		return 4 + extra, nil
	}

	at := c.PC
	op := c.fetch()

	var cycles uint16
	if op == 0xCB {
		cbOp := c.fetch()
		instr := cbInstructionSet[cbOp]
		instr.Execute(c)
		cycles = uint16(instr.Cycles)
	} else {
		instr := mainInstructionSet[op]
		if instr.Execute == nil {
			err := &IllegalOpcodeError{Opcode: op, At: at}
			c.logger.Errorf("%s", err.Error())
			return 0, err
		}

		var operands []byte
		if instr.Length > 1 {
			operands = make([]byte, instr.Length-1)
			for i := range operands {
				operands[i] = c.fetch()
			}
		}

		if instr.Execute(c, operands) {
			cycles = uint16(instr.Cycles)
		} else {
			cycles = uint16(instr.CyclesAlt)
		}
	}

	c.bus.Tick(cycles)
	if c.tracer != nil {
		c.tracer.Record(c, cycles)
	}

	extra := c.serviceInterrupts()
	return cycles + extra, nil
}

// advanceIME ticks the delayed-enable counter armed by EI. It
// runs once per Step call, halted or not, per spec.
func (c *CPU) advanceIME() {
	if c.imeCounter > 0 {
		c.imeCounter--
		if c.imeCounter == 0 {
			c.ime = true
			c.imeCounter = -1
		}
	}
}

// serviceInterrupts advances the delayed-enable counter and then
// polls/dispatches the interrupt controller. It returns the extra
// cycles a dispatch cost (20, or 0 if nothing fired).
func (c *CPU) serviceInterrupts() uint16 {
	c.advanceIME()

	pending := c.irq.Pending()
	if !c.ime {
		if pending && c.halted {
			// HALT exits on pending-but-disabled: no vector taken.
			c.halted = false
		}
		return 0
	}

	src, ok := c.irq.PendingPriority(interrupts.VBlank)
	if !ok {
		return 0
	}

	c.halted = false
	c.ime = false
	c.irq.Clear(src)

	c.SP--
	c.bus.Write8(c.SP, uint8(c.PC>>8))
	c.SP--
	c.bus.Write8(c.SP, uint8(c.PC))

	c.PC = src.Vector()
	return 20
}
