package utils

import "os"

// LoadFile reads filename into memory whole. This core has no cartridge
// or boot-ROM parsing of its own; callers that need a flat binary blob
// (cmd/coreboy's -rom flag) use this directly.
func LoadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}
