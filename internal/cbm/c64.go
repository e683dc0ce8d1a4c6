package cbm

import "github.com/nevisdale/cbmtic/internal/config"

// c64Mem is the C64 address space. The 6510 on-chip port at $01 selects
// which of BASIC, KERNAL, character generator and I/O shadow the RAM:
//
//	bit 0 LORAM:  with bit 1, BASIC at A000-BFFF
//	bit 1 HIRAM:  KERNAL at E000-FFFF
//	bit 2 CHAREN: I/O (set) or CHARGEN (clear) at D000-DFFF
//
// With bits 0 and 1 both clear the D000 region is RAM regardless of
// CHAREN. Writes to the ROM ranges land in the RAM underneath; writes to
// D000-DFFF go to the I/O shadow while I/O is visible, to RAM otherwise.
type c64Mem struct {
	m *Machine

	ram     [0x10000]uint8
	basic   []uint8 // 8K at A000
	kernal  []uint8 // 8K at E000
	chargen []uint8 // 4K at D000 when selected
	io      [0x1000]uint8
	color   [0x0400]uint8 // 4 bit nybbles at D800

	ddr  uint8 // $00
	port uint8 // $01
}

func newC64Mem(m *Machine, mc config.Machine, cfg *config.Config) (*c64Mem, error) {
	basic, err := loadROM(cfg.Path(mc.ROM.Basic), 0x2000)
	if err != nil {
		return nil, err
	}
	kernal, err := loadROM(cfg.Path(mc.ROM.Kernal), 0x2000)
	if err != nil {
		return nil, err
	}
	chargen, err := loadROM(cfg.Path(mc.ROM.Chargen), 0x1000)
	if err != nil {
		return nil, err
	}
	return &c64Mem{
		m:       m,
		basic:   basic,
		kernal:  kernal,
		chargen: chargen,
		ddr:     0x2f,
		port:    0x37,
	}, nil
}

func (c *c64Mem) basicVisible() bool {
	return c.port&0x03 == 0x03
}

func (c *c64Mem) kernalVisible() bool {
	return c.port&0x02 != 0
}

func (c *c64Mem) Read8(addr uint16) uint8 {
	switch {
	case addr == 0x0000:
		return c.ddr
	case addr == 0x0001:
		return c.port

	case addr >= 0xa000 && addr <= 0xbfff:
		if c.basicVisible() {
			return c.basic[addr-0xa000]
		}
		return c.ram[addr]

	case addr >= 0xd000 && addr <= 0xdfff:
		if c.port&0x03 == 0 {
			return c.ram[addr]
		}
		if c.port&0x04 == 0 {
			return c.chargen[addr-0xd000]
		}
		if addr >= 0xd800 && addr <= 0xdbff {
			return c.color[addr-0xd800] | 0xf0
		}
		return c.io[addr-0xd000]

	case addr >= 0xe000:
		if c.kernalVisible() {
			return c.kernal[addr-0xe000]
		}
		return c.ram[addr]
	}
	return c.ram[addr]
}

func (c *c64Mem) Write8(addr uint16, data uint8) {
	switch {
	case addr == 0x0000:
		c.ddr = data
		return
	case addr == 0x0001:
		c.port = data
		return

	case addr >= 0xd000 && addr <= 0xdfff:
		// I/O visible: writes hit the shadow, not the RAM underneath
		if c.port&0x03 != 0 && c.port&0x04 != 0 {
			if addr >= 0xd800 && addr <= 0xdbff {
				c.color[addr-0xd800] = data & 0x0f
				return
			}
			if addr == 0xd021 {
				// background register keeps only its low nybble
				c.io[addr-0xd000] = data & 0x0f
				c.m.con.SetColor(c.ram[646]&0x0f, data&0x0f)
				return
			}
			c.io[addr-0xd000] = data
			return
		}
		c.ram[addr] = data
		return
	}
	c.ram[addr] = data
}
