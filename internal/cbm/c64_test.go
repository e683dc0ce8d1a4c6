package cbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_C64Banking(t *testing.T) {
	m, _ := newTestMachine(t, "c64")
	mem := m.mem.(*c64Mem)
	mem.basic[0x0123] = 0x99
	mem.kernal[0x0456] = 0x88
	mem.chargen[0x0021] = 0x77

	// RAM under the ROMs takes writes regardless of banking
	mem.Write8(0xa123, 0x42)
	mem.Write8(0xe456, 0x43)

	t.Run("default 0x37 shows BASIC and KERNAL", func(t *testing.T) {
		mem.Write8(0x0001, 0x37)
		assert.Equal(t, uint8(0x99), mem.Read8(0xa123))
		assert.Equal(t, uint8(0x88), mem.Read8(0xe456))
	})

	t.Run("0x35 shows IO at D000", func(t *testing.T) {
		mem.Write8(0x0001, 0x35)
		mem.Write8(0xd020, 0x0e)
		assert.Equal(t, uint8(0x0e), mem.Read8(0xd020))
		assert.Equal(t, uint8(0x42), mem.Read8(0xa123), "BASIC banked out")
		assert.Equal(t, uint8(0x43), mem.Read8(0xe456), "KERNAL banked out")
	})

	t.Run("0x33 shows CHARGEN at D000", func(t *testing.T) {
		mem.Write8(0x0001, 0x33)
		assert.Equal(t, uint8(0x77), mem.Read8(0xd021))
	})

	t.Run("0x30 exposes full RAM", func(t *testing.T) {
		mem.Write8(0xd123, 0x55) // lands in RAM under CHARGEN while $01 is 0x33
		mem.Write8(0x0001, 0x30)
		mem.Write8(0xd124, 0x56)
		assert.Equal(t, uint8(0x42), mem.Read8(0xa123))
		assert.Equal(t, uint8(0x43), mem.Read8(0xe456))
		assert.Equal(t, uint8(0x56), mem.Read8(0xd124))
	})

	t.Run("RAM under ROM survives rebanking", func(t *testing.T) {
		mem.Write8(0x0001, 0x37)
		assert.Equal(t, uint8(0x99), mem.Read8(0xa123))
		mem.Write8(0x0001, 0x30)
		assert.Equal(t, uint8(0x42), mem.Read8(0xa123))
	})
}

func Test_C64ColorRAMNybbles(t *testing.T) {
	m, _ := newTestMachine(t, "c64")
	mem := m.mem.(*c64Mem)

	mem.Write8(0x0001, 0x37)
	mem.Write8(0xd800, 0xab)
	assert.Equal(t, uint8(0xfb), mem.Read8(0xd800), "upper nybble reads as 1s")
}

func Test_C64BackgroundColorPush(t *testing.T) {
	m, con := newTestMachine(t, "c64")
	mem := m.mem.(*c64Mem)

	mem.Write8(0x0001, 0x37)
	mem.ram[646] = 0x0e // current text color
	mem.Write8(0xd021, 0xf6)

	fg, bg := con.Colors()
	assert.Equal(t, uint8(0x0e), fg)
	assert.Equal(t, uint8(0x06), bg, "only the low nybble is stored")
	assert.Equal(t, uint8(0x06), mem.Read8(0xd021)&0x0f)
}

func Test_C64PortRegisters(t *testing.T) {
	m, _ := newTestMachine(t, "c64")
	mem := m.mem.(*c64Mem)

	require.Equal(t, uint8(0x2f), mem.Read8(0x0000), "DDR reset value")
	require.Equal(t, uint8(0x37), mem.Read8(0x0001), "port reset value")

	mem.Write8(0x0000, 0x00)
	assert.Equal(t, uint8(0x00), mem.Read8(0x0000))
}
