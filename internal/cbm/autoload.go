package cbm

import (
	"github.com/nevisdale/cbmtic/internal/console"
	"github.com/nevisdale/cbmtic/internal/cpu"
	"github.com/nevisdale/cbmtic/internal/prg"
)

// write16 stores a little-endian word through the normal write path so
// zero page relocation and banking are honored.
func (m *Machine) write16(addr, v uint16) {
	m.mem.Write8(addr, uint8(v&0xff))
	m.mem.Write8(addr+1, uint8(v>>8))
}

// hostName converts the PETSCII file name captured by SETNAM to a host
// file name. Unshifted PETSCII letters come out lowercase.
func hostName(name []byte) string {
	out := make([]byte, 0, len(name))
	for _, b := range name {
		if c := console.ToHost(b, false); c != 0 {
			out = append(out, c)
		}
	}
	return prg.Normalize(string(out))
}

// loadFile streams a PRG into emulated RAM, or compares it against RAM
// when verifying. A secondary address of zero loads at BASIC's start of
// program pointer, anything else at the file's own header address.
// Returns the address one past the last byte and a Commodore error code
// (0 for success).
func (m *Machine) loadFile(path string, verify bool) (uint16, uint8) {
	f, err := prg.Read(path)
	if err != nil {
		return 0, errFileNotFound
	}

	dest := f.Addr
	if m.fileSec == 0 {
		dest = m.cpu.Read16(m.prof.txttab)
	}

	for i, b := range f.Data {
		addr := dest + uint16(i)
		if verify {
			if m.mem.Read8(addr) != b {
				return 0, errVerify
			}
			continue
		}
		m.mem.Write8(addr, b)
	}
	return dest + uint16(len(f.Data)), 0
}

// serviceLoadTrap finishes a LOAD/VERIFY that the FFD5 hook deferred to
// the READY prompt. On success the end address is reported in X/Y as the
// real KERNAL does, the end-of-program pointer is updated and the line
// links are rebuilt.
func (m *Machine) serviceLoadTrap() {
	end, code := m.loadFile(hostName(m.fileName), m.fileVerify)
	if code != 0 {
		m.cpu.A = code
		m.cpu.SetFlag(cpu.FlagC, true)
		return
	}

	m.cpu.X = uint8(end & 0xff)
	m.cpu.Y = uint8(end >> 8)
	m.cpu.SetFlag(cpu.FlagC, false)
	if !m.fileVerify {
		m.write16(m.prof.vartab, end)
		m.simJSR(m.prof.linkprg, m.prof.ready)
	}
}

// stepStartup drives the three step "load and type RUN" sequence at the
// READY prompt. Each step hands control back to a ROM routine and waits
// for the next READY.
func (m *Machine) stepStartup() bool {
	if m.startupProg == "" {
		return false
	}

	switch m.startupState {
	case 0:
		// stream the program to BASIC start, then rebuild line links
		m.fileSec = 0
		end, code := m.loadFile(m.startupProg, false)
		if code != 0 {
			m.startupProg = ""
			m.cpu.A = code
			m.cpu.SetFlag(cpu.FlagC, true)
			return false
		}
		m.write16(m.prof.vartab, end)
		m.startupState = 1
		m.simJSR(m.prof.linkprg, m.prof.ready)
		return true

	case 1:
		// linkprg left the end of the last line in zero page; variables
		// start two bytes past it (past the final null link)
		end := m.cpu.Read16(m.prof.linkEnd) + 2
		m.write16(m.prof.vartab, end)
		m.cpu.A = 0
		m.startupState = 2
		m.simJSR(m.prof.clr, m.prof.ready)
		return true

	case 2:
		m.startupProg = ""
		m.startupState = 0
		m.pushRun()
		m.cpu.PC = m.prof.main
		return true
	}
	return false
}

// saveFile writes the memory range [start, end) as a PRG named by the
// last SETNAM call.
func (m *Machine) saveFile(start, end uint16) error {
	data := make([]byte, 0, end-start)
	for addr := start; addr < end; addr++ {
		data = append(data, m.mem.Read8(addr))
	}
	return prg.Write(hostName(m.fileName), &prg.File{Addr: start, Data: data})
}
