// Package cbm holds the machine models: one address space per supported
// Commodore, the KERNAL entry-point hooks, and the auto-load sequence
// that starts at the first READY prompt and ends by typing RUN.
package cbm

import (
	"fmt"

	"github.com/nevisdale/cbmtic/internal/config"
	"github.com/nevisdale/cbmtic/internal/console"
	"github.com/nevisdale/cbmtic/internal/cpu"
)

// profile collects the firmware addresses a machine's hook set watches.
// The KERNAL jump table entries are common to the whole family; the
// BASIC interpreter entry points and zero page pointers move between
// ROM revisions.
type profile struct {
	chrout uint16
	chrin  uint16
	getin  uint16
	stop   uint16
	setlfs uint16 // 0 when the machine has no entry at the family address
	setnam uint16
	load   uint16
	save   uint16

	ready   uint16 // BASIC idle loop: print READY. and wait
	main    uint16 // direct mode input loop, skipping the READY. banner
	linkprg uint16 // rebuild BASIC line links
	clr     uint16 // CLR: reset variable and string pointers
	gone    uint16 // statement dispatch, watched by the GO sniffer

	txttab  uint16 // zero page: start of BASIC program
	vartab  uint16 // zero page: start of variables
	txtptr  uint16 // zero page: current statement text pointer
	linkEnd uint16 // zero page: end-of-program scratch left by linkprg

	goToken uint8
}

var profiles = map[string]profile{
	"pet": {
		chrout: 0xffd2, chrin: 0xffcf, getin: 0xffe4, stop: 0xffe1,
		load: 0xffd5, save: 0xffd8,
		ready: 0xc38b, main: 0xc394, linkprg: 0xc442, clr: 0xc572, gone: 0xc6b8,
		txttab: 0x28, vartab: 0x2a, txtptr: 0x77, linkEnd: 0x22,
		goToken: 0xcb,
	},
	"vic20": {
		chrout: 0xffd2, chrin: 0xffcf, getin: 0xffe4, stop: 0xffe1,
		setlfs: 0xffba, setnam: 0xffbd, load: 0xffd5, save: 0xffd8,
		ready: 0xc474, main: 0xc480, linkprg: 0xc533, clr: 0xc660, gone: 0xc7e4,
		txttab: 0x2b, vartab: 0x2d, txtptr: 0x7a, linkEnd: 0x22,
		goToken: 0xcb,
	},
	"c64": {
		chrout: 0xffd2, chrin: 0xffcf, getin: 0xffe4, stop: 0xffe1,
		setlfs: 0xffba, setnam: 0xffbd, load: 0xffd5, save: 0xffd8,
		ready: 0xa474, main: 0xa480, linkprg: 0xa533, clr: 0xa660, gone: 0xa7e4,
		txttab: 0x2b, vartab: 0x2d, txtptr: 0x7a, linkEnd: 0x22,
		goToken: 0xcb,
	},
	"c16": {
		chrout: 0xffd2, chrin: 0xffcf, getin: 0xffe4, stop: 0xffe1,
		setlfs: 0xffba, setnam: 0xffbd, load: 0xffd5, save: 0xffd8,
		ready: 0x8703, main: 0x8711, linkprg: 0x8818, clr: 0x8a96, gone: 0x8be3,
		txttab: 0x2b, vartab: 0x2d, txtptr: 0x3b, linkEnd: 0x22,
		goToken: 0xcb,
	},
	"c128": {
		chrout: 0xffd2, chrin: 0xffcf, getin: 0xffe4, stop: 0xffe1,
		setlfs: 0xffba, setnam: 0xffbd, load: 0xffd5, save: 0xffd8,
		ready: 0x4d37, main: 0x4d43, linkprg: 0x4f4f, clr: 0x51f8, gone: 0x528f,
		txttab: 0x2d, vartab: 0x2f, txtptr: 0x3d, linkEnd: 0x22,
		goToken: 0xcb,
	},
}

// go targets accepted by the GO sniffer, keyed by the numeric argument
var goTargets = map[int]string{
	2001: "pet",
	20:   "vic20",
	64:   "c64",
	16:   "c16",
	4:    "c16",
	128:  "c128",
}

// Commodore DOS error codes surfaced to the firmware in A when C is set
const (
	errGeneric         = 1
	errFileNotFound    = 4
	errIllegalQuantity = 14
	errVerify          = 28
)

// Machine owns one emulated Commodore: CPU, address space, console and
// the KERNAL hook state. The CPU holds only the Hook interface back to
// the machine, so there is no mutual ownership.
type Machine struct {
	Name string

	cpu   *cpu.CPU
	mem   cpu.Bus
	con   console.Console
	prof  profile
	hooks map[uint16]func() bool

	// file call state captured by SETLFS/SETNAM/LOAD
	fileName   []byte
	fileNum    uint8
	fileDev    uint8
	fileSec    uint8
	fileVerify bool
	fileAddr   uint16
	loadTrap   int32 // hooked LOAD waiting for READY, -1 when inactive

	startupProg  string
	startupState int

	exit     bool
	switchTo string // machine tag requested by the GO sniffer
}

// New builds a machine model for the canonical name using the ROM images
// from cfg, attaches the console, and resets the CPU from the firmware's
// RESET vector. prog, when non-empty, is a PRG file loaded at the first
// READY prompt and then run.
func New(name string, mc config.Machine, cfg *config.Config, con console.Console, prog string) (*Machine, error) {
	prof, ok := profiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown machine %q", name)
	}

	m := &Machine{
		Name:        name,
		con:         con,
		prof:        prof,
		loadTrap:    -1,
		startupProg: prog,
	}

	var err error
	switch name {
	case "pet":
		m.mem, err = newPETMem(m, mc, cfg)
	case "vic20":
		m.mem, err = newVICMem(m, mc, cfg)
	case "c64":
		m.mem, err = newC64Mem(m, mc, cfg)
	case "c16":
		m.mem, err = newTEDMem(m, mc, cfg)
	case "c128":
		m.mem, err = newC128Mem(m, mc, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	m.cpu = cpu.NewCPU(m.mem)
	m.cpu.AttachHook(m)
	m.initHooks()
	m.cpu.Reset()
	return m, nil
}

// CPU exposes the processor for the host-side tooling (walk, tests).
func (m *Machine) CPU() *cpu.CPU {
	return m.cpu
}

// Run executes instructions until the machine asks to stop. It returns
// the machine tag requested by a GO statement, or "" on a plain exit.
func (m *Machine) Run() (string, error) {
	for !m.exit {
		if err := m.cpu.Step(); err != nil {
			return "", err
		}
	}
	return m.switchTo, nil
}

// RequestExit stops the run loop before the next instruction.
func (m *Machine) RequestExit() {
	m.exit = true
}
