package cbm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nevisdale/cbmtic/internal/console"
	"github.com/nevisdale/cbmtic/internal/cpu"
	"github.com/nevisdale/cbmtic/internal/prg"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func writePRG(t *testing.T, addr uint16, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.prg")
	require.NoError(t, prg.Write(path, &prg.File{Addr: addr, Data: data}))
	return path
}

func Test_LoadFileAbsolute(t *testing.T) {
	m, _ := newTestMachine(t, "c64")
	path := writePRG(t, 0x2000, []byte{1, 2, 3})

	m.fileSec = 1
	end, code := m.loadFile(path, false)

	assert.Equal(t, uint8(0), code)
	assert.Equal(t, uint16(0x2003), end)
	assert.Equal(t, uint8(1), m.mem.Read8(0x2000))
	assert.Equal(t, uint8(3), m.mem.Read8(0x2002))
}

func Test_LoadFileRelative(t *testing.T) {
	m, _ := newTestMachine(t, "c64")
	path := writePRG(t, 0x2000, []byte{9, 8})

	// secondary address 0: ignore the header, land at BASIC start
	m.write16(m.prof.txttab, 0x0801)
	m.fileSec = 0
	end, code := m.loadFile(path, false)

	assert.Equal(t, uint8(0), code)
	assert.Equal(t, uint16(0x0803), end)
	assert.Equal(t, uint8(9), m.mem.Read8(0x0801))
}

func Test_LoadFileMissing(t *testing.T) {
	m, _ := newTestMachine(t, "c64")

	_, code := m.loadFile(filepath.Join(t.TempDir(), "nope.prg"), false)
	assert.Equal(t, uint8(errFileNotFound), code)
}

func Test_VerifyMatchAndMismatch(t *testing.T) {
	m, _ := newTestMachine(t, "c64")
	path := writePRG(t, 0x2000, []byte{1, 2, 3})

	m.fileSec = 1
	_, code := m.loadFile(path, false)
	require.Equal(t, uint8(0), code)

	_, code = m.loadFile(path, true)
	assert.Equal(t, uint8(0), code, "identical image verifies clean")

	m.mem.Write8(0x2001, 0x7f)
	_, code = m.loadFile(path, true)
	assert.Equal(t, uint8(errVerify), code)
}

func Test_ServiceLoadTrap(t *testing.T) {
	m, _ := newTestMachine(t, "c64")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo.prg"),
		[]byte{0x00, 0x20, 0xde, 0xad}, 0o644))
	chdir(t, dir)

	// as left by SETNAM/SETLFS/LOAD: PETSCII "DEMO", absolute load
	m.fileName = []byte{0x44, 0x45, 0x4d, 0x4f}
	m.fileSec = 1
	m.fileVerify = false
	m.loadTrap = int32(m.prof.load)

	require.True(t, m.Hook(m.prof.ready))

	assert.Equal(t, int32(-1), m.loadTrap, "trap disarmed")
	assert.False(t, m.cpu.Flag(cpu.FlagC))
	assert.Equal(t, uint8(0xde), m.mem.Read8(0x2000))
	assert.Equal(t, uint8(0x02), m.cpu.X, "end address in X/Y")
	assert.Equal(t, uint8(0x20), m.cpu.Y)
	assert.Equal(t, m.prof.linkprg, m.cpu.PC, "relink runs next")
}

func Test_ServiceLoadTrapVerifyError(t *testing.T) {
	m, _ := newTestMachine(t, "c64")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo.prg"),
		[]byte{0x00, 0x20, 0x55}, 0o644))
	chdir(t, dir)

	m.fileName = []byte{0x44, 0x45, 0x4d, 0x4f}
	m.fileSec = 1
	m.fileVerify = true
	m.loadTrap = int32(m.prof.load)
	m.mem.Write8(0x2000, 0xaa)

	require.True(t, m.Hook(m.prof.ready))

	assert.True(t, m.cpu.Flag(cpu.FlagC))
	assert.Equal(t, uint8(errVerify), m.cpu.A)
}

// The full three step startup: load at READY, relink, CLR, type RUN.
func Test_StartupSequence(t *testing.T) {
	m, con := newTestMachine(t, "c64")
	mem := m.mem.(*c64Mem)

	program := []byte{0x0e, 0x08, 0x0a, 0x00, 0x99, 0x22, 0x48, 0x49, 0x22, 0x00, 0x00, 0x00}
	m.startupProg = writePRG(t, 0x0801, program)

	// enough firmware for the sequence: RTS at LNKPRG and CLR, a NOP at
	// the direct mode loop
	mem.basic[m.prof.linkprg-0xa000] = 0x60
	mem.basic[m.prof.clr-0xa000] = 0x60
	mem.basic[m.prof.main-0xa000] = 0xea

	m.write16(m.prof.txttab, 0x0801)
	m.cpu.PC = m.prof.ready

	// step 0: stream the program, bounce through LNKPRG's RTS
	require.NoError(t, m.cpu.Step())
	assert.Equal(t, uint8(0x99), m.mem.Read8(0x0805), "program in place")
	assert.Equal(t, 1, m.startupState)
	assert.Equal(t, m.prof.ready, m.cpu.PC)

	// step 1: variables pointer from the relink scratch, bounce through CLR
	m.write16(m.prof.linkEnd, 0x080b)
	require.NoError(t, m.cpu.Step())
	assert.Equal(t, 2, m.startupState)
	assert.Equal(t, uint16(0x080d), m.cpu.Read16(m.prof.vartab), "end of program + 2")
	assert.Equal(t, m.prof.ready, m.cpu.PC)

	// step 2: RUN typed, READY banner skipped
	require.NoError(t, m.cpu.Step())
	assert.Equal(t, "", m.startupProg, "sequence complete")
	for _, want := range []uint8{0x52, 0x55, 0x4e, console.CodeReturn} {
		assert.Equal(t, want, con.GetIn())
	}
	assert.Equal(t, m.prof.main+1, m.cpu.PC, "NOP at the input loop ran")
}

func Test_StartupFileNotFound(t *testing.T) {
	m, _ := newTestMachine(t, "c64")
	m.startupProg = filepath.Join(t.TempDir(), "nope.prg")
	m.write16(m.prof.txttab, 0x0801)

	handled := m.Hook(m.prof.ready)

	assert.False(t, handled, "READY continues normally")
	assert.True(t, m.cpu.Flag(cpu.FlagC))
	assert.Equal(t, uint8(errFileNotFound), m.cpu.A)
	assert.Equal(t, "", m.startupProg, "no retry loop")
}

func Test_SaveFile(t *testing.T) {
	m, _ := newTestMachine(t, "c64")
	dir := t.TempDir()
	chdir(t, dir)

	for i, b := range []uint8{0xde, 0xad, 0xbe} {
		m.mem.Write8(0x0801+uint16(i), b)
	}
	m.fileName = []byte{0x4f, 0x55, 0x54} // OUT
	m.write16(0x00a0, 0x0801)             // start pointer in zero page

	m.cpu.A = 0xa0
	m.cpu.X = 0x04
	m.cpu.Y = 0x08 // end 0x0804
	m.cpu.Push16(0x1233)
	require.True(t, m.Hook(m.prof.save))
	assert.False(t, m.cpu.Flag(cpu.FlagC))

	f, err := prg.Read(filepath.Join(dir, "out.prg"))
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0801), f.Addr)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe}, f.Data)
}
