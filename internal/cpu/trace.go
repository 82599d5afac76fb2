package cpu

import (
	"encoding/binary"
	"hash"

	"github.com/cespare/xxhash"
)

// Tracer folds a fingerprint of every retired instruction into a
// running xxhash digest: PC, SP, AF, BC, DE, HL and the cycle cost
// charged for the instruction that just ran. Two runs that produce
// the same Sum started from the same state executed bit-for-bit
// identically — useful as a cheap golden-trace check for regression
// tests, the same role the teacher gives xxhash over cartridge and
// save-state bytes.
type Tracer struct {
	digest hash.Hash64
	steps  uint64
}

// NewTracer returns a Tracer with a fresh digest.
func NewTracer() *Tracer {
	return &Tracer{digest: xxhash.New()}
}

// Record folds the CPU's post-instruction state into the digest.
func (t *Tracer) Record(c *CPU, cycles uint16) {
	var buf [16]byte
	binary.LittleEndian.PutUint16(buf[0:2], c.PC)
	binary.LittleEndian.PutUint16(buf[2:4], c.SP)
	binary.LittleEndian.PutUint16(buf[4:6], c.AF().Get())
	binary.LittleEndian.PutUint16(buf[6:8], c.BC().Get())
	binary.LittleEndian.PutUint16(buf[8:10], c.DE().Get())
	binary.LittleEndian.PutUint16(buf[10:12], c.HL().Get())
	binary.LittleEndian.PutUint16(buf[12:14], cycles)
	binary.LittleEndian.PutUint16(buf[14:16], 0)
	_, _ = t.digest.Write(buf[:])
	t.steps++
}

// Sum returns the current fingerprint.
func (t *Tracer) Sum() uint64 { return t.digest.Sum64() }

// Steps returns the number of instructions folded into the digest.
func (t *Tracer) Steps() uint64 { return t.steps }
