package cbm

import (
	"fmt"

	"github.com/nevisdale/cbmtic/internal/config"
)

// expansion bank bits for the VIC-20 RAM map
const (
	vicBank0 = 0x01 // 0400-0FFF, 3K
	vicBank1 = 0x02 // 2000-3FFF
	vicBank2 = 0x04 // 4000-5FFF
	vicBank3 = 0x08 // 6000-7FFF
	vicBank5 = 0x10 // A000-BFFF
)

// vicBankTable maps the configured RAM size in kilobytes to the set of
// populated expansion banks. The 5K base (1K low plus 4K at 1000) is
// always present.
var vicBankTable = map[int]uint8{
	5:  0,
	8:  vicBank0,
	13: vicBank1,
	16: vicBank0 | vicBank1,
	21: vicBank1 | vicBank2,
	24: vicBank0 | vicBank1 | vicBank2,
	29: vicBank1 | vicBank2 | vicBank3,
	32: vicBank0 | vicBank1 | vicBank2 | vicBank3,
	37: vicBank1 | vicBank2 | vicBank3 | vicBank5,
	40: vicBank0 | vicBank1 | vicBank2 | vicBank3 | vicBank5,
}

// vicMem is the VIC-20 address space. RAM presence is patchwork: which
// regions decode depends on the installed expansion banks.
type vicMem struct {
	m *Machine

	ram     [0x10000]uint8
	banks   uint8
	chargen []uint8       // 8000-8FFF
	io      [0x1000]uint8 // 9000-9FFF shadow
	basic   []uint8       // C000-DFFF
	kernal  []uint8       // E000-FFFF
}

func newVICMem(m *Machine, mc config.Machine, cfg *config.Config) (*vicMem, error) {
	banks, ok := vicBankTable[mc.RAM]
	if !ok {
		return nil, fmt.Errorf("no VIC-20 bank layout for %dK", mc.RAM)
	}
	chargen, err := loadROM(cfg.Path(mc.ROM.Chargen), 0x1000)
	if err != nil {
		return nil, err
	}
	basic, err := loadROM(cfg.Path(mc.ROM.Basic), 0x2000)
	if err != nil {
		return nil, err
	}
	kernal, err := loadROM(cfg.Path(mc.ROM.Kernal), 0x2000)
	if err != nil {
		return nil, err
	}
	return &vicMem{
		m:       m,
		banks:   banks,
		chargen: chargen,
		basic:   basic,
		kernal:  kernal,
	}, nil
}

// ramPresent reports whether addr decodes to populated RAM.
func (v *vicMem) ramPresent(addr uint16) bool {
	switch {
	case addr < 0x0400:
		return true
	case addr < 0x1000:
		return v.banks&vicBank0 != 0
	case addr < 0x2000:
		return true
	case addr < 0x4000:
		return v.banks&vicBank1 != 0
	case addr < 0x6000:
		return v.banks&vicBank2 != 0
	case addr < 0x8000:
		return v.banks&vicBank3 != 0
	case addr >= 0xa000 && addr < 0xc000:
		return v.banks&vicBank5 != 0
	}
	return false
}

func (v *vicMem) Read8(addr uint16) uint8 {
	switch {
	case addr >= 0x8000 && addr <= 0x8fff:
		return v.chargen[addr-0x8000]
	case addr >= 0x9000 && addr <= 0x9fff:
		return v.io[addr-0x9000]
	case addr >= 0xc000 && addr <= 0xdfff:
		return v.basic[addr-0xc000]
	case addr >= 0xe000:
		return v.kernal[addr-0xe000]
	case v.ramPresent(addr):
		return v.ram[addr]
	}
	return 0xff
}

func (v *vicMem) Write8(addr uint16, data uint8) {
	switch {
	case addr >= 0x9000 && addr <= 0x9fff:
		v.io[addr-0x9000] = data
		switch addr {
		case 0x900f:
			v.m.con.SetColor(v.ram[199]&0x0f, data>>4)
		case 0x9005:
			v.m.con.SetUppercase(data&0x02 == 0)
		}
	case v.ramPresent(addr):
		v.ram[addr] = data
	}
}
