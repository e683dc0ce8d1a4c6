package cbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_PETFixedMap(t *testing.T) {
	m, _ := newTestMachine(t, "pet")
	mem := m.mem.(*petMem)
	mem.basic[0x0000] = 0x11
	mem.editor[0x0000] = 0x22
	mem.kernal[0x0000] = 0x33

	mem.Write8(0x0100, 0x44)
	assert.Equal(t, uint8(0x44), mem.Read8(0x0100))

	assert.Equal(t, uint8(0x11), mem.Read8(0xc000))
	assert.Equal(t, uint8(0x22), mem.Read8(0xe000))
	assert.Equal(t, uint8(0x33), mem.Read8(0xf000))

	// ROM takes no writes
	mem.Write8(0xc000, 0x99)
	assert.Equal(t, uint8(0x11), mem.Read8(0xc000))
}

func Test_PETVideoRAM(t *testing.T) {
	m, _ := newTestMachine(t, "pet")
	mem := m.mem.(*petMem)

	mem.Write8(0x8000, 0x01)
	assert.Equal(t, uint8(0x01), mem.Read8(0x8000))
}

func Test_PETKeyboardRow(t *testing.T) {
	m, _ := newTestMachine(t, "pet")
	mem := m.mem.(*petMem)

	mem.Write8(0xe810, 0x00)
	assert.Equal(t, uint8(0xff), mem.Read8(0xe810), "row port always reads no key")
}

func Test_PETSmallRAM(t *testing.T) {
	m, _ := newTestMachine(t, "pet")
	mem := m.mem.(*petMem)
	mem.ram = make([]uint8, 8*1024)

	mem.Write8(0x1fff, 0x55)
	assert.Equal(t, uint8(0x55), mem.Read8(0x1fff))
	mem.Write8(0x2000, 0x66)
	assert.Equal(t, uint8(0xff), mem.Read8(0x2000), "beyond fitted RAM")
}
