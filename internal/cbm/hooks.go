package cbm

import (
	"github.com/nevisdale/cbmtic/internal/console"
	"github.com/nevisdale/cbmtic/internal/cpu"
)

// Hook implements cpu.Hook. It fires before every instruction; anything
// not in the hook table falls through to normal decode.
func (m *Machine) Hook(pc uint16) bool {
	fn, ok := m.hooks[pc]
	if !ok {
		return false
	}
	return fn()
}

func (m *Machine) initHooks() {
	m.hooks = map[uint16]func() bool{
		m.prof.chrout: m.hookChrout,
		m.prof.chrin:  m.hookChrin,
		m.prof.getin:  m.hookGetin,
		m.prof.stop:   m.hookStop,
		m.prof.load:   m.hookLoad,
		m.prof.save:   m.hookSave,
		m.prof.ready:  m.hookReady,
		m.prof.gone:   m.hookGone,
	}
	// machines whose KERNAL predates the file name jump table entries
	// simply don't install them
	if m.prof.setlfs != 0 {
		m.hooks[m.prof.setlfs] = m.hookSetlfs
	}
	if m.prof.setnam != 0 {
		m.hooks[m.prof.setnam] = m.hookSetnam
	}
}

// simRTS pops the return address pushed by the firmware's JSR so a fully
// serviced KERNAL call returns to its caller without executing ROM.
func (m *Machine) simRTS() {
	m.cpu.PC = m.cpu.Pop16() + 1
}

// simJSR arranges for routine to run and return to ret, as if the code
// at ret-1 had executed a JSR.
func (m *Machine) simJSR(routine, ret uint16) {
	m.cpu.Push16(ret - 1)
	m.cpu.PC = routine
}

// CHROUT: emit the character on the console, then let the ROM run so
// screen memory stays in sync.
func (m *Machine) hookChrout() bool {
	m.con.WriteChar(m.cpu.A)
	return false
}

// CHRIN: one byte of buffered line input.
func (m *Machine) hookChrin() bool {
	m.cpu.A = m.con.ReadChar()
	m.cpu.SetZN(m.cpu.A)
	m.cpu.SetFlag(cpu.FlagC, false)
	m.simRTS()
	return true
}

// GETIN: non-blocking keyboard poll. The real ROM leaves the character
// in X as well; programs depend on it.
func (m *Machine) hookGetin() bool {
	m.cpu.A = m.con.GetIn()
	if m.cpu.A != 0 {
		m.cpu.X = m.cpu.A
	}
	m.cpu.SetZN(m.cpu.A)
	m.cpu.SetFlag(cpu.FlagC, false)
	m.simRTS()
	return true
}

// STOP: Z mirrors the host's STOP key event.
func (m *Machine) hookStop() bool {
	m.cpu.SetFlag(cpu.FlagZ, m.con.CheckStop())
	m.simRTS()
	return true
}

// SETLFS: capture logical file, device and secondary address.
func (m *Machine) hookSetlfs() bool {
	m.fileNum = m.cpu.A
	m.fileDev = m.cpu.X
	m.fileSec = m.cpu.Y
	m.simRTS()
	return true
}

// SETNAM: capture the file name out of emulated memory.
func (m *Machine) hookSetnam() bool {
	addr := uint16(m.cpu.Y)<<8 | uint16(m.cpu.X)
	m.fileName = make([]byte, m.cpu.A)
	for i := range m.fileName {
		m.fileName[i] = m.mem.Read8(addr + uint16(i))
	}
	m.simRTS()
	return true
}

// LOAD: validate the call and defer the data transfer to the next READY
// prompt, when BASIC is back in a state that can relink the program.
func (m *Machine) hookLoad() bool {
	// the hook is installed only at the LOAD entry point
	pc := m.prof.load
	m.fileAddr = uint16(m.cpu.Y)<<8 | uint16(m.cpu.X)
	switch m.cpu.A {
	case 0:
		m.fileVerify = false
	case 1:
		m.fileVerify = true
	default:
		m.cpu.A = errIllegalQuantity
		m.cpu.SetFlag(cpu.FlagC, true)
		m.simRTS()
		return true
	}
	m.loadTrap = int32(pc)
	m.cpu.SetFlag(cpu.FlagC, false)
	m.simRTS()
	return true
}

// SAVE: write memory between the zero page start pointer (whose address
// is in A) and X/Y out as a PRG file.
func (m *Machine) hookSave() bool {
	start := m.cpu.Read16(uint16(m.cpu.A))
	end := uint16(m.cpu.Y)<<8 | uint16(m.cpu.X)
	err := m.saveFile(start, end)
	if err != nil {
		m.cpu.A = errGeneric
	}
	m.cpu.SetFlag(cpu.FlagC, err != nil)
	m.simRTS()
	return true
}

// hookReady services a pending LOAD trap and drives the startup
// auto-load sequence.
func (m *Machine) hookReady() bool {
	if m.loadTrap >= 0 {
		m.loadTrap = -1
		m.serviceLoadTrap()
		return true
	}
	return m.stepStartup()
}

// hookGone sniffs the statement about to execute for GO <number> and
// turns a recognized number into a machine switch request.
func (m *Machine) hookGone() bool {
	ptr := m.cpu.Read16(m.prof.txtptr)

	read := func() uint8 { return m.mem.Read8(ptr) }
	skipSpaces := func() {
		for read() == ' ' {
			ptr++
		}
	}

	skipSpaces()
	switch {
	case read() == m.prof.goToken:
		ptr++
	case read() == 'G' && m.mem.Read8(ptr+1) == 'O':
		ptr += 2
	default:
		return false
	}
	skipSpaces()

	n := 0
	digits := 0
	for b := read(); b >= '0' && b <= '9'; b = read() {
		n = n*10 + int(b-'0')
		digits++
		ptr++
	}
	if digits == 0 {
		return false
	}
	target, ok := goTargets[n]
	if !ok {
		return false
	}

	m.switchTo = target
	m.exit = true
	m.cpu.PC = m.prof.ready
	return true
}

// pushRun types RUN for the user once the startup program is in place.
func (m *Machine) pushRun() {
	m.con.Push([]byte{'R', 'U', 'N', console.CodeReturn})
}
