package cbm

import "github.com/nevisdale/cbmtic/internal/config"

// petMem is the PET 2001 address space. The banks are fixed: nothing a
// program writes can change the decode.
type petMem struct {
	m *Machine

	ram    []uint8       // up to 32K at 0000
	vram   [0x1000]uint8 // 8000-8FFF
	io     [0x0800]uint8 // E800-EFFF shadow
	basic  []uint8       // C000-DFFF
	editor []uint8       // E000-E7FF
	kernal []uint8       // F000-FFFF
}

func newPETMem(m *Machine, mc config.Machine, cfg *config.Config) (*petMem, error) {
	basic, err := loadROM(cfg.Path(mc.ROM.Basic), 0x2000)
	if err != nil {
		return nil, err
	}
	editor, err := loadROM(cfg.Path(mc.ROM.Editor), 0x0800)
	if err != nil {
		return nil, err
	}
	kernal, err := loadROM(cfg.Path(mc.ROM.Kernal), 0x1000)
	if err != nil {
		return nil, err
	}
	return &petMem{
		m:      m,
		ram:    make([]uint8, mc.RAM*1024),
		basic:  basic,
		editor: editor,
		kernal: kernal,
	}, nil
}

func (p *petMem) Read8(addr uint16) uint8 {
	switch {
	case int(addr) < len(p.ram):
		return p.ram[addr]
	case addr >= 0x8000 && addr <= 0x8fff:
		return p.vram[addr-0x8000]
	case addr >= 0xc000 && addr <= 0xdfff:
		return p.basic[addr-0xc000]
	case addr >= 0xe000 && addr <= 0xe7ff:
		return p.editor[addr-0xe000]
	case addr == 0xe810:
		// keyboard row port: no key held
		return 0xff
	case addr >= 0xe800 && addr <= 0xefff:
		return p.io[addr-0xe800]
	case addr >= 0xf000:
		return p.kernal[addr-0xf000]
	}
	return 0xff
}

func (p *petMem) Write8(addr uint16, data uint8) {
	switch {
	case int(addr) < len(p.ram):
		p.ram[addr] = data
	case addr >= 0x8000 && addr <= 0x8fff:
		p.vram[addr-0x8000] = data
	case addr >= 0xe800 && addr <= 0xefff:
		p.io[addr-0xe800] = data
	}
}
