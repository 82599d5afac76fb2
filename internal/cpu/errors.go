package cpu

import "fmt"

// IllegalOpcodeError is returned when the decoder encounters one of
// the undefined opcodes (0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC,
// 0xED, 0xF4, 0xFC, 0xFD). It is fatal: the host should stop or log
// and halt, not attempt to recover mid-instruction.
type IllegalOpcodeError struct {
	Opcode uint8
	At     uint16
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("cpu: illegal opcode %02X at %04X", e.Opcode, e.At)
}

// BusFaultError reports that the bus rejected an address. The
// AddressBus interface this package consumes has no room to surface
// that from Read8/Write8 (real memory-mapped hardware always answers
// something, even if it's open-bus 0xFF); this type exists so a bus
// implementation can wrap a panic recovered at its own boundary into
// a typed error value before handing it back to a host that
// expects one. The core itself never constructs one.
type BusFaultError struct {
	Addr uint16
}

func (e *BusFaultError) Error() string {
	return fmt.Sprintf("cpu: bus fault at %04X", e.Addr)
}
