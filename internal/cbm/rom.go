package cbm

import (
	"fmt"
	"os"
)

// loadROM reads a firmware image and checks its size. A missing or
// truncated image is a fatal configuration error.
func loadROM(path string, size int) ([]uint8, error) {
	if path == "" {
		return nil, fmt.Errorf("no ROM path configured")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't load ROM: %w", err)
	}
	if len(raw) != size {
		return nil, fmt.Errorf("ROM %s is %d bytes, want %d", path, len(raw), size)
	}
	return raw, nil
}

// loadROMOptional is loadROM for sockets that may be empty (TED function
// ROM). An empty path is not an error and yields a nil image.
func loadROMOptional(path string, size int) ([]uint8, error) {
	if path == "" {
		return nil, nil
	}
	return loadROM(path, size)
}
