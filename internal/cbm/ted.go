package cbm

import "github.com/nevisdale/cbmtic/internal/config"

// tedMem is the C16/Plus4 address space. RAM smaller than 64K mirrors
// through the whole window by address masking. The ROM configuration
// register, set by a write anywhere in FDD0-FDDF, picks what occupies
// the two ROM halves:
//
//	bits 0-1: 8000-BFFF  {BASIC, FUNCTION, CARTRIDGE, RESERVED}
//	bits 2-3: C000-FBFF  {KERNAL, FUNCTION, CARTRIDGE, RESERVED}
//
// FF3E enables ROM visibility, FF3F exposes the RAM underneath. The
// FC00-FCFF KERNAL page and the FD00-FF3F I/O window are never banked.
type tedMem struct {
	m *Machine

	ram  []uint8
	mask uint16

	basic    []uint8 // 16K at 8000
	kernal   []uint8 // 16K at C000
	function []uint8 // optional 32K image, low half at 8000, high at C000
	io       [0x0240]uint8

	romEnabled bool
	romcfg     uint8
}

func newTEDMem(m *Machine, mc config.Machine, cfg *config.Config) (*tedMem, error) {
	basic, err := loadROM(cfg.Path(mc.ROM.Basic), 0x4000)
	if err != nil {
		return nil, err
	}
	kernal, err := loadROM(cfg.Path(mc.ROM.Kernal), 0x4000)
	if err != nil {
		return nil, err
	}
	function, err := loadROMOptional(cfg.Path(mc.ROM.Function), 0x8000)
	if err != nil {
		return nil, err
	}
	return &tedMem{
		m:          m,
		ram:        make([]uint8, mc.RAM*1024),
		mask:       uint16(mc.RAM*1024 - 1),
		basic:      basic,
		kernal:     kernal,
		function:   function,
		romEnabled: true,
	}, nil
}

// romLo resolves 8000-BFFF per the configuration register.
func (t *tedMem) romLo(addr uint16) uint8 {
	switch t.romcfg & 0x03 {
	case 0:
		return t.basic[addr-0x8000]
	case 1:
		if t.function != nil {
			return t.function[addr-0x8000]
		}
	}
	return 0xff
}

// romHi resolves C000-FFFF per the configuration register.
func (t *tedMem) romHi(addr uint16) uint8 {
	switch t.romcfg >> 2 & 0x03 {
	case 0:
		return t.kernal[addr-0xc000]
	case 1:
		if t.function != nil {
			return t.function[0x4000+addr-0xc000]
		}
	}
	return 0xff
}

func (t *tedMem) Read8(addr uint16) uint8 {
	switch {
	case addr >= 0xfd00 && addr <= 0xff3f:
		return t.io[addr-0xfd00]
	case addr >= 0xfc00 && addr <= 0xfcff:
		return t.kernal[addr-0xc000]
	case addr >= 0xc000 && t.romEnabled:
		return t.romHi(addr)
	case addr >= 0x8000 && addr <= 0xbfff && t.romEnabled:
		return t.romLo(addr)
	}
	return t.ram[addr&t.mask]
}

func (t *tedMem) Write8(addr uint16, data uint8) {
	switch {
	case addr == 0xff3e:
		t.romEnabled = true
	case addr == 0xff3f:
		t.romEnabled = false
	case addr >= 0xfdd0 && addr <= 0xfddf:
		t.romcfg = uint8(addr & 0x0f)
	case addr >= 0xfd00 && addr <= 0xff3f:
		t.io[addr-0xfd00] = data
	default:
		t.ram[addr&t.mask] = data
	}
}
