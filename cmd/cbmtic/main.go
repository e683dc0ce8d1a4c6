package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"

	"github.com/pkg/profile"

	"github.com/nevisdale/cbmtic/internal/cbm"
	"github.com/nevisdale/cbmtic/internal/config"
	"github.com/nevisdale/cbmtic/internal/console"
	"github.com/nevisdale/cbmtic/internal/prg"
)

const usage = "cbmtic [-rom-dir dir] [-config file] [-profile] <system> [ram N] [walk addr...] [program[.prg]]"

var (
	romDir     string
	configPath string
	profiling  bool
)

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.StringVar(&romDir, "rom-dir", "roms", "Directory holding the firmware images")
	flag.StringVar(&configPath, "config", "", "Optional machine definition yaml")
	flag.BoolVar(&profiling, "profile", false, "Write a CPU profile of the emulator itself")
	flag.Parse()
}

func cbmtic() int {
	args := flag.Args()
	if len(args) == 0 {
		log.Println(usage)
		return 1
	}

	system, err := config.Normalize(args[0])
	if err != nil {
		log.Println(err)
		return 1
	}

	var (
		ramKB    int
		walk     bool
		walkAddr []uint16
		program  string
	)
	for i := 1; i < len(args); i++ {
		switch {
		case args[i] == "ram" && i+1 < len(args):
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil {
				log.Printf("bad ram size %q", args[i])
				return 1
			}
			ramKB = n
		case args[i] == "walk":
			walk = true
		case walk:
			n, err := strconv.ParseUint(args[i], 16, 16)
			if err != nil {
				log.Printf("bad walk address %q", args[i])
				return 1
			}
			walkAddr = append(walkAddr, uint16(n))
		default:
			program = prg.Normalize(args[i])
		}
	}

	cfg := config.Default(romDir)
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			log.Println(err)
			return 1
		}
	}

	if profiling {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if walk {
		return runWalk(system, ramKB, cfg, walkAddr)
	}
	return run(system, ramKB, cfg, program)
}

// run owns the launcher loop: it keeps instantiating machines until a
// run ends without asking for a different one (GO 64 and friends).
func run(system string, ramKB int, cfg *config.Config, program string) int {
	term := console.NewTerm()
	if err := term.Open(); err != nil {
		log.Println(err)
		return 1
	}
	defer term.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		term.Close()
		os.Exit(0)
	}()

	for {
		mc, err := cfg.Machine(system, ramKB)
		if err != nil {
			log.Println(err)
			return 1
		}
		m, err := cbm.New(system, mc, cfg, term, program)
		if err != nil {
			log.Println(err)
			return 1
		}

		next, err := m.Run()
		if err != nil {
			log.Println(err)
			return 1
		}
		// GO into the machine already running is the exit gesture
		if next == "" || next == system {
			return 0
		}

		// the new machine boots clean: stock RAM, no startup program
		system = next
		ramKB = 0
		program = ""
	}
}

// runWalk prints a linear disassembly from each given address. With no
// addresses it starts at the RESET vector.
func runWalk(system string, ramKB int, cfg *config.Config, addrs []uint16) int {
	mc, err := cfg.Machine(system, ramKB)
	if err != nil {
		log.Println(err)
		return 1
	}
	m, err := cbm.New(system, mc, cfg, console.NewBuffer(), "")
	if err != nil {
		log.Println(err)
		return 1
	}

	c := m.CPU()
	if len(addrs) == 0 {
		addrs = []uint16{c.PC}
	}
	for _, addr := range addrs {
		for n := 0; n < 64; n++ {
			text, size := c.Disasm(addr)
			fmt.Println(text)
			addr += size
		}
		fmt.Println()
	}
	return 0
}

func main() {
	os.Exit(cbmtic())
}
