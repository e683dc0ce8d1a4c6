package cpu

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// The Klaus Dormann 6502 functional test, assembled with ROM_vectors and
// the decimal overflow checks disabled. Drop the binary into testdata to
// enable this test; it is not distributed with the repository.
//
// https://github.com/Klaus2m5/6502_65C02_functional_tests
const (
	functionalTestBin = "testdata/6502_functional_test.bin"

	// binary specific addresses
	functionalLoadAddr    = uint16(0x000a)
	functionalOrigin      = uint16(0x0400)
	functionalSuccessAddr = uint16(0x347d)
)

func Test_Functional(t *testing.T) {
	bin, err := os.ReadFile(functionalTestBin)
	if err != nil {
		t.Skipf("functional test binary not present: %v", err)
	}

	mem := &flatMem{}
	copy(mem.b[functionalLoadAddr:], bin)

	cpu := NewCPU(mem)
	cpu.PC = functionalOrigin
	cpu.SP = 0xff

	// a sub-test failure is a branch-in-place; success is the self-jump
	// at the known end address. either way PC stops moving.
	const maxSteps = 100_000_000
	for i := 0; i < maxSteps; i++ {
		prev := cpu.PC
		require.NoError(t, cpu.Step())
		if cpu.PC != prev {
			continue
		}
		if cpu.PC == functionalSuccessAddr {
			return
		}
		text, _ := cpu.Disasm(cpu.PC)
		t.Fatalf("trapped at %s (A=%02X X=%02X Y=%02X P=%02X SP=%02X)",
			text, cpu.A, cpu.X, cpu.Y, cpu.Status(), cpu.SP)
	}
	t.Fatalf("no verdict after %d steps, PC=$%04X", maxSteps, cpu.PC)
}
