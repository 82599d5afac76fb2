package cpu

import "github.com/thelolagemann/gomeboy-core/internal/registers"

// Instruction is the decoded, typed record the decoder produces for
// every opcode in the main (non-CB) table: a name for disassembly, a
// static encoded length, the cycle cost when taken (or when there is
// no condition), the cycle cost when a condition was not satisfied,
// and the closure that realizes its semantics.
//
// Execute receives the already-decoded operand bytes (immediate
// byte/word or signed displacement, little-endian where applicable)
// and returns whether the instruction's condition was satisfied. Every
// non-branching instruction always returns true.
type Instruction struct {
	Name      string
	Length    uint8
	Cycles    uint8
	CyclesAlt uint8
	Execute   func(c *CPU, operands []byte) bool
}

// cbInstruction is the decoded record for a CB-prefixed opcode. None
// of the 256 CB-prefixed instructions are conditional, so there is no
// alternate cost and no taken/not-taken return value.
type cbInstruction struct {
	Name   string
	Cycles uint8
	Execute func(c *CPU)
}

var mainInstructionSet [256]Instruction
var cbInstructionSet [256]cbInstruction

// define installs an unconditional instruction (Cycles == CyclesAlt).
func define(op uint8, name string, length, cycles uint8, exec func(c *CPU, operands []byte) bool) {
	mainInstructionSet[op] = Instruction{Name: name, Length: length, Cycles: cycles, CyclesAlt: cycles, Execute: exec}
}

// defineBranch installs a conditional instruction with distinct
// taken/not-taken costs.
func defineBranch(op uint8, name string, length, cyclesTaken, cyclesNotTaken uint8, exec func(c *CPU, operands []byte) bool) {
	mainInstructionSet[op] = Instruction{Name: name, Length: length, Cycles: cyclesTaken, CyclesAlt: cyclesNotTaken, Execute: exec}
}

// defineCB installs a CB-prefixed instruction.
func defineCB(op uint8, name string, cycles uint8, exec func(c *CPU)) {
	cbInstructionSet[op] = cbInstruction{Name: name, Cycles: cycles, Execute: exec}
}

// invalidOpcodes is the set of undefined opcodes the decoder reports
// as IllegalOpcodeError: 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC,
// 0xED, 0xF4, 0xFC, 0xFD. They are left with a nil Execute, which
// Step checks for before running anything.
var invalidOpcodes = []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD}

func init() {
	for _, op := range invalidOpcodes {
		mainInstructionSet[op] = Instruction{Name: "INVALID", Length: 1}
	}
}

// srcRegisters maps the standard 3-bit register field (0-7) to a
// ByteRegister, in the hardware's B,C,D,E,H,L,(HL),A order. Index 6
// ((HL)) has no ByteRegister and must be special-cased by callers.
var srcRegisters = [8]registers.ByteRegister{registers.B, registers.C, registers.D, registers.E, registers.H, registers.L, 0, registers.A}

// regName returns the assembly name for register index 0-7,
// including "(HL)" for index 6.
func regName(i uint8) string {
	if i == 6 {
		return "(HL)"
	}
	return srcRegisters[i&7].String()
}

// readSrc returns the value named by register index 0-7: a register
// for any index but 6, or the byte at (HL) for index 6.
func (c *CPU) readSrc(i uint8) uint8 {
	if i == 6 {
		return c.bus.Read8(c.HL().Get())
	}
	return c.Get(srcRegisters[i])
}

// writeSrc stores v to the location named by register index 0-7.
func (c *CPU) writeSrc(i uint8, v uint8) {
	if i == 6 {
		c.bus.Write8(c.HL().Get(), v)
		return
	}
	c.Set(srcRegisters[i], v)
}
