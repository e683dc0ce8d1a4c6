package cbm

import "github.com/nevisdale/cbmtic/internal/config"

// c128Mem is the C128 address space: two 64K RAM banks under the MMU at
// D500-D50B. The configuration register (mirrored at FF00) decodes as:
//
//	bit 0:    I/O at D000-DFFF (clear = visible)
//	bit 1:    BASIC-LO at 4000-7FFF (clear = visible)
//	bits 2-3: 8000-BFFF, 00 = BASIC-HI
//	bits 4-5: C000-FFFF, 00 = KERNAL (CHARGEN at D000 when I/O is out)
//	bit 6:    active RAM bank
//
// Writing FF01-FF04 reloads the CR from one of the four preset load
// registers. D507/D509 relocate the zero page and the stack page, D506
// makes the bottom and/or top of memory common to both banks. Setting
// bit 6 of D505 asks for C64 mode, which this machine surfaces as a
// switch request.
type c128Mem struct {
	m *Machine

	ram     [2][0x10000]uint8
	basiclo []uint8 // 16K at 4000
	basichi []uint8 // 16K at 8000
	kernal  []uint8 // 16K image for C000-FFFF
	chargen []uint8 // 4K at D000
	io      [0x1000]uint8

	cr  uint8
	lcr [4]uint8
	mcr uint8
	rcr uint8
	p0  uint8 // zero page relocation
	p1  uint8 // stack page relocation
}

func newC128Mem(m *Machine, mc config.Machine, cfg *config.Config) (*c128Mem, error) {
	basiclo, err := loadROM(cfg.Path(mc.ROM.Basic), 0x4000)
	if err != nil {
		return nil, err
	}
	basichi, err := loadROM(cfg.Path(mc.ROM.BasicHi), 0x4000)
	if err != nil {
		return nil, err
	}
	kernal, err := loadROM(cfg.Path(mc.ROM.Kernal), 0x4000)
	if err != nil {
		return nil, err
	}
	chargen, err := loadROM(cfg.Path(mc.ROM.Chargen), 0x1000)
	if err != nil {
		return nil, err
	}
	return &c128Mem{
		m:       m,
		basiclo: basiclo,
		basichi: basichi,
		kernal:  kernal,
		chargen: chargen,
		p1:      0x01,
	}, nil
}

func (c *c128Mem) ioVisible() bool {
	return c.cr&0x01 == 0
}

// commonSize returns the span of shared RAM selected by the RAM
// configuration register.
func (c *c128Mem) commonSize() uint32 {
	switch c.rcr & 0x03 {
	case 0:
		return 0x0400
	case 1:
		return 0x1000
	case 2:
		return 0x2000
	}
	return 0x4000
}

// ramAt resolves a CPU address to a RAM cell, applying zero page and
// stack relocation and the common RAM policy.
func (c *c128Mem) ramAt(addr uint16) *uint8 {
	switch addr >> 8 {
	case 0:
		addr = uint16(c.p0)<<8 | addr&0xff
	case 1:
		addr = uint16(c.p1)<<8 | addr&0xff
	}

	bank := int(c.cr >> 6 & 1)
	if c.rcr&0x04 != 0 && uint32(addr) < c.commonSize() {
		bank = 0
	}
	if c.rcr&0x08 != 0 && uint32(addr) >= 0x10000-c.commonSize() {
		bank = 0
	}
	return &c.ram[bank][addr]
}

// readMMU services the D500-D50B register file.
func (c *c128Mem) readMMU(addr uint16) uint8 {
	switch addr {
	case 0xd500:
		return c.cr
	case 0xd501, 0xd502, 0xd503, 0xd504:
		return c.lcr[addr-0xd501]
	case 0xd505:
		return c.mcr
	case 0xd506:
		return c.rcr
	case 0xd507:
		return c.p0
	case 0xd509:
		return c.p1
	}
	return 0x00
}

func (c *c128Mem) writeMMU(addr uint16, data uint8) {
	switch addr {
	case 0xd500:
		c.cr = data
	case 0xd501, 0xd502, 0xd503, 0xd504:
		c.lcr[addr-0xd501] = data
	case 0xd505:
		c.mcr = data
		if data&0x40 != 0 {
			// firmware wants 8502 C64 mode: hand it to the launcher
			c.m.switchTo = "c64"
			c.m.exit = true
		}
	case 0xd506:
		c.rcr = data
	case 0xd507:
		c.p0 = data
	case 0xd509:
		c.p1 = data
	}
}

func (c *c128Mem) Read8(addr uint16) uint8 {
	switch {
	case addr == 0xff00:
		return c.cr
	case addr >= 0xff01 && addr <= 0xff04:
		return c.lcr[addr-0xff01]

	case c.ioVisible() && addr >= 0xd000 && addr <= 0xdfff:
		if addr >= 0xd500 && addr <= 0xd50b {
			return c.readMMU(addr)
		}
		if addr == 0xd011 {
			// raster poll: alternate bit 7 so firmware wait loops end
			c.io[addr-0xd000] ^= 0x80
			return c.io[addr-0xd000]
		}
		return c.io[addr-0xd000]

	case addr >= 0x4000 && addr <= 0x7fff && c.cr&0x02 == 0:
		return c.basiclo[addr-0x4000]
	case addr >= 0x8000 && addr <= 0xbfff && c.cr&0x0c == 0:
		return c.basichi[addr-0x8000]
	case addr >= 0xc000 && c.cr&0x30 == 0:
		if addr >= 0xd000 && addr <= 0xdfff {
			return c.chargen[addr-0xd000]
		}
		return c.kernal[addr-0xc000]
	}
	return *c.ramAt(addr)
}

func (c *c128Mem) Write8(addr uint16, data uint8) {
	switch {
	case addr == 0xff00:
		c.cr = data
		return
	case addr >= 0xff01 && addr <= 0xff04:
		c.cr = c.lcr[addr-0xff01]
		return

	case c.ioVisible() && addr >= 0xd000 && addr <= 0xdfff:
		if addr >= 0xd500 && addr <= 0xd50b {
			c.writeMMU(addr, data)
			return
		}
		c.io[addr-0xd000] = data
		return
	}
	*c.ramAt(addr) = data
}
