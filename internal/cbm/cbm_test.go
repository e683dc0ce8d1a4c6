package cbm

import (
	"testing"

	"github.com/nevisdale/cbmtic/internal/console"
	"github.com/nevisdale/cbmtic/internal/cpu"
)

// newTestMachine builds a machine around empty firmware images so the
// address space and hook tests don't need ROM files on disk.
func newTestMachine(t *testing.T, name string) (*Machine, *console.Buffer) {
	t.Helper()

	con := console.NewBuffer()
	m := &Machine{
		Name:     name,
		con:      con,
		prof:     profiles[name],
		loadTrap: -1,
	}

	switch name {
	case "pet":
		m.mem = &petMem{
			m:      m,
			ram:    make([]uint8, 32*1024),
			basic:  make([]uint8, 0x2000),
			editor: make([]uint8, 0x0800),
			kernal: make([]uint8, 0x1000),
		}
	case "vic20":
		m.mem = &vicMem{
			m:       m,
			banks:   vicBankTable[5],
			chargen: make([]uint8, 0x1000),
			basic:   make([]uint8, 0x2000),
			kernal:  make([]uint8, 0x2000),
		}
	case "c64":
		m.mem = &c64Mem{
			m:       m,
			basic:   make([]uint8, 0x2000),
			kernal:  make([]uint8, 0x2000),
			chargen: make([]uint8, 0x1000),
			ddr:     0x2f,
			port:    0x37,
		}
	case "c16":
		m.mem = &tedMem{
			m:          m,
			ram:        make([]uint8, 64*1024),
			mask:       0xffff,
			basic:      make([]uint8, 0x4000),
			kernal:     make([]uint8, 0x4000),
			romEnabled: true,
		}
	case "c128":
		m.mem = &c128Mem{
			m:       m,
			basiclo: make([]uint8, 0x4000),
			basichi: make([]uint8, 0x4000),
			kernal:  make([]uint8, 0x4000),
			chargen: make([]uint8, 0x1000),
			p1:      0x01,
		}
	default:
		t.Fatalf("no test machine %q", name)
	}

	m.cpu = cpu.NewCPU(m.mem)
	m.cpu.AttachHook(m)
	m.initHooks()
	m.cpu.SP = 0xff
	return m, con
}
