package cbm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nevisdale/cbmtic/internal/config"
	"github.com/nevisdale/cbmtic/internal/console"
	"github.com/nevisdale/cbmtic/internal/prg"
)

func Test_RunReturnsSwitchTarget(t *testing.T) {
	m, _ := newTestMachine(t, "c64")
	mem := m.mem.(*c64Mem)
	mem.basic[m.prof.ready-0xa000] = 0xea

	// a GO 128 statement about to execute
	text := "GO 128"
	for i := 0; i < len(text); i++ {
		m.mem.Write8(0x0200+uint16(i), text[i])
	}
	m.mem.Write8(0x0200+uint16(len(text)), 0)
	m.write16(m.prof.txtptr, 0x0200)
	m.cpu.PC = m.prof.gone

	next, err := m.Run()
	require.NoError(t, err)
	assert.Equal(t, "c128", next)
}

func Test_RunStopsOnRequest(t *testing.T) {
	m, _ := newTestMachine(t, "c64")
	m.cpu.PC = 0x0800
	m.mem.Write8(0x0800, 0xea)
	m.RequestExit()

	next, err := m.Run()
	require.NoError(t, err)
	assert.Equal(t, "", next)
}

func Test_RunReportsIllegalOpcode(t *testing.T) {
	m, _ := newTestMachine(t, "c64")
	m.cpu.PC = 0x0800
	m.mem.Write8(0x0800, 0x02)

	_, err := m.Run()
	assert.Error(t, err)
}

func Test_NewRequiresROMs(t *testing.T) {
	cfg := config.Default(t.TempDir())
	mc, err := cfg.Machine("c64", 0)
	require.NoError(t, err)

	_, err = New("c64", mc, cfg, console.NewBuffer(), "")
	assert.Error(t, err, "missing firmware is fatal at startup")
}

// End to end against recorded firmware: boot to READY, auto-load a BASIC
// program that prints HELLO, and watch it run. Drop the C64 ROM images
// into testdata/c64 to enable.
func Test_C64HelloEndToEnd(t *testing.T) {
	for _, rom := range []string{"basic", "kernal", "chargen"} {
		if _, err := os.Stat(filepath.Join("testdata", "c64", rom)); err != nil {
			t.Skipf("firmware not present: %v", err)
		}
	}

	program := []byte{
		0x0e, 0x08, // link to next line
		0x0a, 0x00, // 10
		0x99, 0x22, 0x48, 0x45, 0x4c, 0x4c, 0x4f, 0x22, 0x00, // PRINT "HELLO"
		0x00, 0x00, // end of program
	}
	path := filepath.Join(t.TempDir(), "hello.prg")
	require.NoError(t, prg.Write(path, &prg.File{Addr: 0x0801, Data: program}))

	cfg := config.Default("testdata")
	mc, err := cfg.Machine("c64", 0)
	require.NoError(t, err)

	con := console.NewBuffer()
	m, err := New("c64", mc, cfg, con, path)
	require.NoError(t, err)

	const maxSteps = 50_000_000
	for i := 0; i < maxSteps; i++ {
		require.NoError(t, m.cpu.Step())
		if i%10_000 != 0 {
			continue
		}
		out := con.String()
		if idx := strings.Index(out, "HELLO\n"); idx >= 0 {
			if strings.Contains(out[idx:], "READY.") {
				return
			}
		}
	}
	t.Fatalf("no HELLO after %d steps, output: %q", maxSteps, con.String())
}
