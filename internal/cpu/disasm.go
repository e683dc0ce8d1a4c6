package cpu

import "fmt"

// Disasm decodes the instruction at addr and returns its text form and
// length in bytes. Unknown opcodes decode as "???" with length 1.
func (c *CPU) Disasm(addr uint16) (string, uint16) {
	opcode := c.read8(addr)
	in := c.instrs[opcode]
	if in.fn == nil {
		return fmt.Sprintf("$%04X: ???", addr), 1
	}

	pc := addr + 1
	switch in.mode {
	case addrModeIMM:
		return fmt.Sprintf("$%04X: %s #$%02X", addr, in.name, c.read8(pc)), 2
	case addrModeZP:
		return fmt.Sprintf("$%04X: %s $%02X", addr, in.name, c.read8(pc)), 2
	case addrModeZPX:
		return fmt.Sprintf("$%04X: %s $%02X,X", addr, in.name, c.read8(pc)), 2
	case addrModeZPY:
		return fmt.Sprintf("$%04X: %s $%02X,Y", addr, in.name, c.read8(pc)), 2
	case addrModeABS:
		return fmt.Sprintf("$%04X: %s $%04X", addr, in.name, c.Read16(pc)), 3
	case addrModeABSX:
		return fmt.Sprintf("$%04X: %s $%04X,X", addr, in.name, c.Read16(pc)), 3
	case addrModeABSY:
		return fmt.Sprintf("$%04X: %s $%04X,Y", addr, in.name, c.Read16(pc)), 3
	case addrModeIND:
		return fmt.Sprintf("$%04X: %s ($%04X)", addr, in.name, c.Read16(pc)), 3
	case addrModeINDX:
		return fmt.Sprintf("$%04X: %s ($%02X,X)", addr, in.name, c.read8(pc)), 2
	case addrModeINDY:
		return fmt.Sprintf("$%04X: %s ($%02X),Y", addr, in.name, c.read8(pc)), 2
	case addrModeREL:
		offset := uint16(c.read8(pc))
		if offset&0x80 > 0 {
			offset |= 0xff00
		}
		return fmt.Sprintf("$%04X: %s $%04X", addr, in.name, addr+2+offset), 2
	case addrModeACC:
		return fmt.Sprintf("$%04X: %s A", addr, in.name), 1
	}
	return fmt.Sprintf("$%04X: %s", addr, in.name), 1
}

// Opcode returns the mnemonic for an opcode, or "" when it is not part of
// the legal instruction set.
func (c *CPU) Opcode(opcode uint8) string {
	return c.instrs[opcode].name
}
