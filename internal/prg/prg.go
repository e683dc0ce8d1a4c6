// Package prg reads and writes Commodore program files: a two byte
// little-endian load address followed by the payload.
package prg

import (
	"fmt"
	"os"
	"strings"
)

type File struct {
	Addr uint16
	Data []byte
}

// Normalize appends the .prg extension when the name has none.
func Normalize(name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	return name + ".prg"
}

// Read loads a PRG file from disk.
func Read(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open program file: %w", err)
	}
	if len(raw) < 2 {
		return nil, fmt.Errorf("program file %s has no load address", path)
	}
	return &File{
		Addr: uint16(raw[0]) | uint16(raw[1])<<8,
		Data: raw[2:],
	}, nil
}

// Write saves a PRG file to disk.
func Write(path string, f *File) error {
	raw := make([]byte, 0, len(f.Data)+2)
	raw = append(raw, uint8(f.Addr&0xff), uint8(f.Addr>>8))
	raw = append(raw, f.Data...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("couldn't write program file: %w", err)
	}
	return nil
}
