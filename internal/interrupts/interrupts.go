// Package interrupts implements the Game Boy's five-source interrupt
// controller: the IE/IF memory-mapped bytes, their fixed priority
// order, and the fixed vector each source dispatches to.
package interrupts

import "fmt"

// Source identifies one of the five interrupt lines, in their fixed
// priority order (lower value wins ties).
type Source uint8

const (
	VBlank Source = iota
	LCD
	Timer
	Serial
	Joypad
)

// sources lists every interrupt source in priority order, highest
// priority first. Dispatch always iterates in this order.
var sources = [5]Source{VBlank, LCD, Timer, Serial, Joypad}

// String returns the source's conventional name.
func (s Source) String() string {
	switch s {
	case VBlank:
		return "VBlank"
	case LCD:
		return "LCD"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	default:
		return fmt.Sprintf("Source(%d)", uint8(s))
	}
}

// Bit returns the source's bit position in both IE and IF.
func (s Source) Bit() uint8 { return 1 << uint8(s) }

// Vector returns the fixed dispatch address for the source.
func (s Source) Vector() uint16 {
	switch s {
	case VBlank:
		return 0x0040
	case LCD:
		return 0x0048
	case Timer:
		return 0x0050
	case Serial:
		return 0x0058
	case Joypad:
		return 0x0060
	default:
		panic(fmt.Sprintf("interrupts: invalid source %d", s))
	}
}

// memory-mapped register addresses.
const (
	FlagAddress   uint16 = 0xFF0F // IF
	EnableAddress uint16 = 0xFFFF // IE
)

// unusedBits are always read back as 1; the physical IF/IE latches
// only wire up the low 5 bits.
const unusedBits = 0xE0

// State classifies a source relative to both IE and IF.
type State uint8

const (
	// Inactive: neither enabled nor requested.
	Inactive State = iota
	// Enabled: IE set, but IF clear.
	Enabled
	// Requested: IF set, but IE clear.
	Requested
	// Active: both IE and IF set — eligible for dispatch.
	Active
)

// Controller is the IE/IF pair owned by the memory bus. The CPU
// holds its own reference to it for polling and dispatch; peripherals
// reach it through Request when they raise an event.
type Controller struct {
	Enable uint8 // IE (0xFFFF)
	Flag   uint8 // IF (0xFF0F)
}

// New returns a Controller with no sources enabled or requested.
func New() *Controller {
	return &Controller{}
}

// Request raises the interrupt request bit for source s. Peripherals
// call this when they detect an event that should interrupt the CPU.
func (c *Controller) Request(s Source) {
	c.Flag |= s.Bit()
}

// Clear lowers the interrupt request bit for source s. The executor
// calls this when it dispatches s.
func (c *Controller) Clear(s Source) {
	c.Flag &^= s.Bit()
}

// Read returns the byte at addr, forcing the unused high bits to 1,
// or false if addr is not one of the two interrupt registers.
func (c *Controller) Read(addr uint16) (uint8, bool) {
	switch addr {
	case FlagAddress:
		return c.Flag | unusedBits, true
	case EnableAddress:
		return c.Enable | unusedBits, true
	default:
		return 0, false
	}
}

// Write stores v (with the unused bits forced to 1, matching the
// physical wiring) at addr, or reports false if addr is not one of
// the two interrupt registers.
func (c *Controller) Write(addr uint16, v uint8) bool {
	switch addr {
	case FlagAddress:
		c.Flag = v | unusedBits
		return true
	case EnableAddress:
		c.Enable = v | unusedBits
		return true
	default:
		return false
	}
}

// State reports how source s currently stands relative to IE and IF.
func (c *Controller) State(s Source) State {
	enabled := c.Enable&s.Bit() != 0
	requested := c.Flag&s.Bit() != 0
	switch {
	case enabled && requested:
		return Active
	case enabled:
		return Enabled
	case requested:
		return Requested
	default:
		return Inactive
	}
}

// Pending reports whether any source is simultaneously enabled and
// requested, regardless of IME. HALT polls this to decide whether to
// wake, independent of whether it may also dispatch. Masked to the
// five real source bits: Enable and Flag both always read back with
// their unused top three bits forced to 1, which would otherwise make
// this permanently true after any write to IE/IF.
func (c *Controller) Pending() bool {
	return c.Enable&c.Flag&0x1F != 0
}

// PendingPriority returns the highest-priority Active source, in
// fixed VBlank>LCD>Timer>Serial>Joypad order. If no source is
// Active, it returns s itself unchanged (per spec.md's
// pending_priority contract) together with false.
func (c *Controller) PendingPriority(s Source) (Source, bool) {
	for _, candidate := range sources {
		if c.State(candidate) == Active {
			return candidate, true
		}
	}
	return s, false
}
