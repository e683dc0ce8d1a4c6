package cbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_VICRAMBanks(t *testing.T) {
	m, _ := newTestMachine(t, "vic20")
	mem := m.mem.(*vicMem)

	t.Run("unexpanded 5K", func(t *testing.T) {
		mem.banks = vicBankTable[5]
		mem.Write8(0x0100, 0x11)
		mem.Write8(0x1000, 0x22)
		assert.Equal(t, uint8(0x11), mem.Read8(0x0100), "1K low always present")
		assert.Equal(t, uint8(0x22), mem.Read8(0x1000), "4K base always present")

		mem.Write8(0x0400, 0x33)
		assert.Equal(t, uint8(0xff), mem.Read8(0x0400), "3K hole without bank 0")
		mem.Write8(0x2000, 0x44)
		assert.Equal(t, uint8(0xff), mem.Read8(0x2000), "8K hole without bank 1")
	})

	t.Run("fully expanded 40K", func(t *testing.T) {
		mem.banks = vicBankTable[40]
		for _, addr := range []uint16{0x0400, 0x2000, 0x4000, 0x6000, 0xa000} {
			mem.Write8(addr, 0x55)
			assert.Equal(t, uint8(0x55), mem.Read8(addr), "addr %04X", addr)
		}
	})
}

func Test_VICColorRegister(t *testing.T) {
	m, con := newTestMachine(t, "vic20")
	mem := m.mem.(*vicMem)

	mem.ram[199] = 0x06
	mem.Write8(0x900f, 0x1b) // background 1, border 3

	fg, bg := con.Colors()
	assert.Equal(t, uint8(0x06), fg)
	assert.Equal(t, uint8(0x01), bg)
}

func Test_VICCaseSwitch(t *testing.T) {
	m, con := newTestMachine(t, "vic20")
	mem := m.mem.(*vicMem)

	mem.Write8(0x9005, 0xf2) // bit 1 set: lowercase glyphs
	con.WriteChar(0x41)
	assert.Equal(t, "a", con.String())

	mem.Write8(0x9005, 0xf0)
	con.WriteChar(0x41)
	assert.Equal(t, "aA", con.String())
}
