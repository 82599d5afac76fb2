// Command coreboy is a minimal host for the CPU core: it loads a flat
// binary blob onto a RAM-backed bus, wires in an interrupt controller,
// and steps the CPU a fixed number of times, printing register state
// after every step. It has no display, audio or cartridge-banking
// support — those are out of this module's scope — but it is enough
// to drive the core against a hand-assembled test ROM or a disassembly
// fixture.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

// ramBus is a flat 64KiB address space with the interrupt controller
// wired in at 0xFF0F/0xFFFF, the minimum a CPU core needs to run.
type ramBus struct {
	mem [0x10000]byte
	irq *interrupts.Controller
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

func (b *ramBus) Tick(cycles uint16) {}

func main() {
	go func() {
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			log.Println(err)
		}
	}()

	romFile := flag.String("rom", "", "flat binary to load at address 0x0000")
	steps := flag.Int("steps", 1000, "number of Step calls to run")
	postBoot := flag.Bool("post-boot", true, "start from the DMG post-boot register snapshot instead of zeroed")
	trace := flag.Bool("trace", false, "print the xxhash trace fingerprint after running")
	flag.Parse()

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		log.Fatalf("coreboy: %v", err)
	}

	irq := interrupts.New()
	bus := &ramBus{irq: irq}
	copy(bus.mem[:], rom)

	var opts []cpu.Option
	if *postBoot {
		opts = append(opts, cpu.WithPostBootState())
	}
	var tracer *cpu.Tracer
	if *trace {
		tracer = cpu.NewTracer()
		opts = append(opts, cpu.WithTracer(tracer))
	}

	c := cpu.New(bus, irq, opts...)

	for i := 0; i < *steps; i++ {
		cycles, err := c.Step()
		if err != nil {
			fmt.Printf("step %d: %v\n", i, err)
			break
		}
		fmt.Printf("PC=%04X SP=%04X AF=%04X BC=%04X DE=%04X HL=%04X cycles=%d\n",
			c.PC, c.SP, c.AF().Get(), c.BC().Get(), c.DE().Get(), c.HL().Get(), cycles)
	}

	if tracer != nil {
		fmt.Printf("trace: %d steps, sum=%016x\n", tracer.Steps(), tracer.Sum())
	}
}

