// Package config resolves per-machine ROM paths and RAM sizes. Built-in
// defaults cover the stock firmware layout under a rom directory; a yaml
// file can override any of it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// ROMSet names the firmware images a machine loads at startup. Paths are
// relative to Dir unless absolute. Empty optional entries (Function) mean
// the socket is empty.
type ROMSet struct {
	Basic    string `yaml:"basic"`
	BasicHi  string `yaml:"basic_hi"`
	Kernal   string `yaml:"kernal"`
	Chargen  string `yaml:"chargen"`
	Editor   string `yaml:"editor"`
	Function string `yaml:"function"`
}

type Machine struct {
	ROM ROMSet `yaml:"rom"`
	RAM int    `yaml:"ram"` // kilobytes
}

type Config struct {
	Dir      string             `yaml:"rom_dir"`
	Machines map[string]Machine `yaml:"machines"`
}

// validRAM is the per-machine set of accepted ram values, in kilobytes.
// The VIC-20 set follows the expansion bank table in the vic20 machine
// model.
var validRAM = map[string][]int{
	"pet":   {4, 8, 16, 32},
	"vic20": {5, 8, 13, 16, 21, 24, 29, 32, 37, 40},
	"c64":   {64},
	"c16":   {16, 32, 64},
	"c128":  {128},
}

// Default returns the stock configuration: firmware under dir/<machine>/.
func Default(dir string) *Config {
	if dir == "" {
		dir = "roms"
	}
	return &Config{
		Dir: dir,
		Machines: map[string]Machine{
			"pet": {
				ROM: ROMSet{Basic: "pet/basic", Kernal: "pet/kernal", Editor: "pet/editor"},
				RAM: 32,
			},
			"vic20": {
				ROM: ROMSet{Basic: "vic20/basic", Kernal: "vic20/kernal", Chargen: "vic20/chargen"},
				RAM: 5,
			},
			"c64": {
				ROM: ROMSet{Basic: "c64/basic", Kernal: "c64/kernal", Chargen: "c64/chargen"},
				RAM: 64,
			},
			"c16": {
				ROM: ROMSet{Basic: "c16/basic", Kernal: "c16/kernal"},
				RAM: 64,
			},
			"c128": {
				ROM: ROMSet{Basic: "c128/basiclo", BasicHi: "c128/basichi", Kernal: "c128/kernal", Chargen: "c128/chargen"},
				RAM: 128,
			},
		},
	}
}

// Load reads a yaml override file on top of the defaults.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read config: %w", err)
	}

	cfg := Default("")
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("couldn't parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Normalize maps the CLI system tags onto canonical machine names.
func Normalize(system string) (string, error) {
	switch system {
	case "pet", "2001":
		return "pet", nil
	case "vic20", "vic", "20":
		return "vic20", nil
	case "c64", "64":
		return "c64", nil
	case "c16", "plus4", "ted", "16", "4":
		return "c16", nil
	case "c128", "128":
		return "c128", nil
	}
	return "", fmt.Errorf("unknown system %q", system)
}

// Machine looks up the definition for a canonical machine name, applying
// a RAM override when ram is non-zero.
func (c *Config) Machine(name string, ram int) (Machine, error) {
	m, ok := c.Machines[name]
	if !ok {
		return Machine{}, fmt.Errorf("no configuration for machine %q", name)
	}
	if ram != 0 {
		m.RAM = ram
	}
	if !slices.Contains(validRAM[name], m.RAM) {
		return Machine{}, fmt.Errorf("invalid RAM size %dK for %s (valid: %v)", m.RAM, name, validRAM[name])
	}
	return m, nil
}

// Path resolves a ROM file name against the configured directory.
func (c *Config) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Dir, name)
}
