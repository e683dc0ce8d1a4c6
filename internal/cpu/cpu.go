package cpu

import "fmt"

// Bus is the CPU's window onto the machine. Every byte the CPU touches,
// including stack and vector fetches, goes through here so that machine
// specific banking is honored on every access.
type Bus interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

// Hook runs before each instruction fetch. Returning true means the hook
// serviced the instruction itself (it may have moved PC, changed registers
// or memory); the CPU then re-runs the hook at the new PC instead of
// decoding. Returning false means decode normally.
type Hook interface {
	Hook(pc uint16) bool
}

const stackStartAddr = uint16(0x100)

const (
	FlagC = uint8(1 << iota) // Carry
	FlagZ                    // Zero
	FlagI                    // Interrupt Disable
	FlagD                    // Decimal Mode
	FlagB                    // Break Command
	FlagU                    // Unused, reads as 1
	FlagV                    // Overflow
	FlagN                    // Negative
)

type addrMode uint8

const (
	addrModeIMM  addrMode = iota + 1 // Immediate
	addrModeZP                       // Zero Page
	addrModeZPX                      // Zero Page X
	addrModeZPY                      // Zero Page Y
	addrModeABS                      // Absolute
	addrModeABSX                     // Absolute X
	addrModeABSY                     // Absolute Y
	addrModeIND                      // Indirect
	addrModeINDX                     // Indirect X
	addrModeINDY                     // Indirect Y
	addrModeREL                      // Relative
	addrModeACC                      // Accumulator
	addrModeIMP                      // Implied
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMM:
		return "IMM"
	case addrModeZP:
		return "ZP"
	case addrModeZPX:
		return "ZPX"
	case addrModeZPY:
		return "ZPY"
	case addrModeABS:
		return "ABS"
	case addrModeABSX:
		return "ABSX"
	case addrModeABSY:
		return "ABSY"
	case addrModeIND:
		return "IND"
	case addrModeINDX:
		return "INDX"
	case addrModeINDY:
		return "INDY"
	case addrModeREL:
		return "REL"
	case addrModeACC:
		return "ACC"
	case addrModeIMP:
		return "IMP"
	}
	return "???"
}

type instr struct {
	name string
	mode addrMode
	fn   func()
}

type CPU struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16

	p            uint8
	mem          Bus
	hook         Hook
	instrs       [0x100]instr
	addrMode     addrMode
	operandAddr  uint16
	operandValue uint8
}

func isSameSign(a, b uint8) bool {
	return (a^b)&0x80 == 0
}

func NewCPU(mem Bus) *CPU {
	c := &CPU{
		mem: mem,
	}
	c.initInstructions()
	return c
}

// AttachHook installs the pre-instruction hook. The machine model owns the
// hook; the CPU only holds the interface value.
func (c *CPU) AttachHook(h Hook) {
	c.hook = h
}

func (c CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

// Read16 reads a little-endian word through the bus.
func (c CPU) Read16(addr uint16) uint16 {
	return uint16(c.read8(addr)) | uint16(c.read8(addr+1))<<8
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

// Flag reports whether the given status bit is set.
func (c CPU) Flag(flag uint8) bool {
	return c.p&flag > 0
}

// SetFlag sets or clears the given status bit(s).
func (c *CPU) SetFlag(flag uint8, v bool) {
	if v {
		c.p |= flag
		return
	}
	c.p &= ^flag
}

// SetZN updates Z and N from a result byte.
func (c *CPU) SetZN(value uint8) {
	c.SetFlag(FlagZ, value == 0)
	c.SetFlag(FlagN, value&FlagN > 0)
}

// Status returns the packed NV-BDIZC byte. Bit 5 always reads as 1.
func (c CPU) Status() uint8 {
	return c.p | FlagU
}

// SetStatus unpacks a status byte. Bit 5 is forced on, B is not stored.
func (c *CPU) SetStatus(p uint8) {
	c.p = (p | FlagU) & ^FlagB
}

func (c *CPU) Pop8() uint8 {
	c.SP++
	return c.read8(stackStartAddr | uint16(c.SP))
}

func (c *CPU) Pop16() uint16 {
	lo := uint16(c.Pop8())
	hi := uint16(c.Pop8())
	return lo | hi<<8
}

func (c *CPU) Push8(data uint8) {
	c.write8(stackStartAddr|uint16(c.SP), data)
	c.SP--
}

func (c *CPU) Push16(data uint16) {
	lo := uint8(data & 0xff)
	hi := uint8(data >> 8)
	c.Push8(hi)
	c.Push8(lo)
}

// Reset puts the CPU in its power-on state and loads PC from the RESET
// vector at FFFC/FFFD.
func (c *CPU) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.p = FlagU | FlagI
	c.SP = 0xff
	c.PC = c.Read16(0xfffc)
}

// IRQ services a maskable interrupt request.
func (c *CPU) IRQ() {
	if c.Flag(FlagI) {
		return
	}

	c.Push16(c.PC)
	c.Push8((c.p | FlagU) & ^FlagB)
	c.SetFlag(FlagI, true)
	c.PC = c.Read16(0xfffe)
}

// NMI services a non-maskable interrupt.
func (c *CPU) NMI() {
	c.Push16(c.PC)
	c.Push8((c.p | FlagU) & ^FlagB)
	c.SetFlag(FlagI, true)
	c.PC = c.Read16(0xfffa)
}

// Step runs the pre-instruction hook until it declines, then decodes and
// executes one instruction. An opcode without a table entry is fatal.
func (c *CPU) Step() error {
	if c.hook != nil {
		for c.hook.Hook(c.PC) {
		}
	}

	opcode := c.read8(c.PC)
	in := c.instrs[opcode]
	if in.fn == nil {
		return fmt.Errorf("illegal opcode %02X at $%04X", opcode, c.PC)
	}
	c.PC++
	c.fetch(in.mode)
	in.fn()

	c.addrMode = 0
	c.operandAddr = 0
	c.operandValue = 0
	return nil
}

// fetch fetches the operand for the current instruction
func (c *CPU) fetch(addrMode addrMode) {
	c.addrMode = addrMode
	c.operandAddr = 0
	c.operandValue = 0

	switch addrMode {
	case addrModeIMM:
		c.operandAddr = c.PC
		c.PC++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeZP:
		c.operandAddr = uint16(c.read8(c.PC))
		c.PC++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeZPX:
		c.operandAddr = uint16(c.read8(c.PC) + c.X)
		c.PC++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeZPY:
		c.operandAddr = uint16(c.read8(c.PC) + c.Y)
		c.PC++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeABS:
		c.operandAddr = c.Read16(c.PC)
		c.PC += 2
		c.operandValue = c.read8(c.operandAddr)

	case addrModeABSX:
		c.operandAddr = c.Read16(c.PC) + uint16(c.X)
		c.PC += 2
		c.operandValue = c.read8(c.operandAddr)

	case addrModeABSY:
		c.operandAddr = c.Read16(c.PC) + uint16(c.Y)
		c.PC += 2
		c.operandValue = c.read8(c.operandAddr)

	case addrModeIND:
		addr := c.Read16(c.PC)
		c.PC += 2

		lo := addr
		hi := addr + 1
		if lo&0xff == 0xff { // simulate 6502 page wrap bug
			hi = lo & 0xff00
		}
		c.operandAddr = uint16(c.read8(lo)) | uint16(c.read8(hi))<<8

	case addrModeINDX:
		addr := uint16(c.read8(c.PC)) + uint16(c.X)
		c.PC++
		lo := uint16(c.read8(addr & 0x00ff))
		hi := uint16(c.read8((addr + 1) & 0x00ff))
		c.operandAddr = lo | hi<<8
		c.operandValue = c.read8(c.operandAddr)

	case addrModeINDY:
		addr := uint16(c.read8(c.PC))
		c.PC++
		lo := uint16(c.read8(addr))
		hi := uint16(c.read8((addr + 1) & 0x00ff))
		c.operandAddr = (lo | hi<<8) + uint16(c.Y)
		c.operandValue = c.read8(c.operandAddr)

	case addrModeREL:
		c.operandAddr = uint16(c.read8(c.PC))
		c.PC++
		if c.operandAddr&0x80 > 0 {
			c.operandAddr |= 0xff00 // add leading 1 s to save the sign
		}

	case addrModeACC:
		c.operandValue = c.A

	case addrModeIMP:
	}
}

func (c *CPU) adc() {
	if c.Flag(FlagD) {
		c.adcDecimal()
		return
	}
	r16 := uint16(c.A) + uint16(c.operandValue)
	if c.Flag(FlagC) {
		r16++
	}
	r8 := uint8(r16)
	c.SetFlag(FlagC, r16 > 0xff)
	c.SetZN(r8)
	c.SetFlag(FlagV, isSameSign(c.A, c.operandValue) && !isSameSign(c.A, r8))
	c.A = r8
}

// adcDecimal adds two BCD bytes in the range 0..99. C is set on decimal
// overflow. N and V are undefined on the NMOS 6502 after a decimal add and
// are left cleared here. Z follows the decimal result.
func (c *CPU) adcDecimal() {
	a := uint16(c.A>>4)*10 + uint16(c.A&0x0f)
	m := uint16(c.operandValue>>4)*10 + uint16(c.operandValue&0x0f)
	r := a + m
	if c.Flag(FlagC) {
		r++
	}
	c.SetFlag(FlagC, r > 99)
	r %= 100
	c.A = uint8(r/10)<<4 | uint8(r%10)
	c.SetFlag(FlagZ, c.A == 0)
	c.SetFlag(FlagN|FlagV, false)
}

func (c *CPU) and() {
	c.A &= c.operandValue
	c.SetZN(c.A)
}

func (c *CPU) asl() {
	c.SetFlag(FlagC, c.operandValue&0x80 > 0)
	r8 := c.operandValue << 1
	c.SetZN(r8)
	if c.addrMode == addrModeACC {
		c.A = r8
	} else {
		c.write8(c.operandAddr, r8)
	}
}

func (c *CPU) jmpIf(condition bool) {
	if !condition {
		return
	}
	c.PC += c.operandAddr
}

func (c *CPU) bcc() {
	c.jmpIf(!c.Flag(FlagC))
}

func (c *CPU) bcs() {
	c.jmpIf(c.Flag(FlagC))
}

func (c *CPU) beq() {
	c.jmpIf(c.Flag(FlagZ))
}

func (c *CPU) bit() {
	m := c.A & c.operandValue
	c.SetFlag(FlagZ, m == 0)
	c.SetFlag(FlagN, c.operandValue&FlagN > 0)
	c.SetFlag(FlagV, c.operandValue&FlagV > 0)
}

func (c *CPU) bmi() {
	c.jmpIf(c.Flag(FlagN))
}

func (c *CPU) bne() {
	c.jmpIf(!c.Flag(FlagZ))
}

func (c *CPU) bpl() {
	c.jmpIf(!c.Flag(FlagN))
}

func (c *CPU) brk() {
	// BRK is a two byte instruction: the byte after the opcode is padding
	c.PC++
	c.Push16(c.PC)
	c.Push8(c.p | FlagB | FlagU)
	c.SetFlag(FlagI, true)
	c.PC = c.Read16(0xfffe)
}

func (c *CPU) bvc() {
	c.jmpIf(!c.Flag(FlagV))
}

func (c *CPU) bvs() {
	c.jmpIf(c.Flag(FlagV))
}

func (c *CPU) clc() {
	c.SetFlag(FlagC, false)
}

func (c *CPU) cld() {
	c.SetFlag(FlagD, false)
}

func (c *CPU) cli() {
	c.SetFlag(FlagI, false)
}

func (c *CPU) clv() {
	c.SetFlag(FlagV, false)
}

func (c *CPU) cmp() {
	c.SetFlag(FlagC, c.A >= c.operandValue)
	c.SetZN(c.A - c.operandValue)
}

func (c *CPU) cpx() {
	c.SetFlag(FlagC, c.X >= c.operandValue)
	c.SetZN(c.X - c.operandValue)
}

func (c *CPU) cpy() {
	c.SetFlag(FlagC, c.Y >= c.operandValue)
	c.SetZN(c.Y - c.operandValue)
}

func (c *CPU) dec() {
	r := c.operandValue - 1
	c.SetZN(r)
	c.write8(c.operandAddr, r)
}

func (c *CPU) dex() {
	c.X--
	c.SetZN(c.X)
}

func (c *CPU) dey() {
	c.Y--
	c.SetZN(c.Y)
}

func (c *CPU) eor() {
	c.A ^= c.operandValue
	c.SetZN(c.A)
}

func (c *CPU) inc() {
	r := c.operandValue + 1
	c.SetZN(r)
	c.write8(c.operandAddr, r)
}

func (c *CPU) inx() {
	c.X++
	c.SetZN(c.X)
}

func (c *CPU) iny() {
	c.Y++
	c.SetZN(c.Y)
}

func (c *CPU) jmp() {
	c.PC = c.operandAddr
}

func (c *CPU) jsr() {
	// pc incremented by 1 after the fetch,
	// so we need to decrement it
	c.PC--
	c.Push16(c.PC)
	c.PC = c.operandAddr
}

func (c *CPU) lda() {
	c.A = c.operandValue
	c.SetZN(c.A)
}

func (c *CPU) ldx() {
	c.X = c.operandValue
	c.SetZN(c.X)
}

func (c *CPU) ldy() {
	c.Y = c.operandValue
	c.SetZN(c.Y)
}

func (c *CPU) lsr() {
	c.SetFlag(FlagC, c.operandValue&0x1 > 0)
	r := c.operandValue >> 1
	c.SetZN(r)
	if c.addrMode == addrModeACC {
		c.A = r
	} else {
		c.write8(c.operandAddr, r)
	}
}

func (c *CPU) nop() {
}

func (c *CPU) ora() {
	c.A |= c.operandValue
	c.SetZN(c.A)
}

func (c *CPU) pha() {
	c.Push8(c.A)
}

func (c *CPU) php() {
	c.Push8(c.p | FlagB | FlagU)
}

func (c *CPU) pla() {
	c.A = c.Pop8()
	c.SetZN(c.A)
}

func (c *CPU) plp() {
	c.SetStatus(c.Pop8())
}

func (c *CPU) rol() {
	r := c.operandValue << 1
	if c.Flag(FlagC) {
		r |= 0x1
	}
	c.SetFlag(FlagC, c.operandValue&0x80 > 0)
	c.SetZN(r)
	if c.addrMode == addrModeACC {
		c.A = r
	} else {
		c.write8(c.operandAddr, r)
	}
}

func (c *CPU) ror() {
	r := c.operandValue >> 1
	if c.Flag(FlagC) {
		r |= 0x80
	}
	c.SetFlag(FlagC, c.operandValue&0x1 > 0)
	c.SetZN(r)
	if c.addrMode == addrModeACC {
		c.A = r
	} else {
		c.write8(c.operandAddr, r)
	}
}

func (c *CPU) rti() {
	c.SetStatus(c.Pop8())
	c.PC = c.Pop16()
}

func (c *CPU) rts() {
	c.PC = c.Pop16()
	c.PC++
}

func (c *CPU) sbc() {
	if c.Flag(FlagD) {
		c.sbcDecimal()
		return
	}
	m := ^c.operandValue
	r16 := uint16(c.A) + uint16(m)
	if c.Flag(FlagC) {
		r16++
	}
	r8 := uint8(r16)
	c.SetFlag(FlagC, r16 > 0xff)
	c.SetZN(r8)
	c.SetFlag(FlagV, isSameSign(c.A, m) && !isSameSign(c.A, r8))
	c.A = r8
}

// sbcDecimal subtracts two BCD bytes in the range 0..99 with C as the
// "no borrow" flag. N and V are left cleared, as in adcDecimal.
func (c *CPU) sbcDecimal() {
	a := int(c.A>>4)*10 + int(c.A&0x0f)
	m := int(c.operandValue>>4)*10 + int(c.operandValue&0x0f)
	r := a - m
	if !c.Flag(FlagC) {
		r--
	}
	c.SetFlag(FlagC, r >= 0)
	if r < 0 {
		r += 100
	}
	c.A = uint8(r/10)<<4 | uint8(r%10)
	c.SetFlag(FlagZ, c.A == 0)
	c.SetFlag(FlagN|FlagV, false)
}

func (c *CPU) sec() {
	c.SetFlag(FlagC, true)
}

func (c *CPU) sed() {
	c.SetFlag(FlagD, true)
}

func (c *CPU) sei() {
	c.SetFlag(FlagI, true)
}

func (c *CPU) sta() {
	c.write8(c.operandAddr, c.A)
}

func (c *CPU) stx() {
	c.write8(c.operandAddr, c.X)
}

func (c *CPU) sty() {
	c.write8(c.operandAddr, c.Y)
}

func (c *CPU) tax() {
	c.X = c.A
	c.SetZN(c.X)
}

func (c *CPU) tay() {
	c.Y = c.A
	c.SetZN(c.Y)
}

func (c *CPU) tsx() {
	c.X = c.SP
	c.SetZN(c.X)
}

func (c *CPU) txa() {
	c.A = c.X
	c.SetZN(c.A)
}

func (c *CPU) txs() {
	c.SP = c.X
}

func (c *CPU) tya() {
	c.A = c.Y
	c.SetZN(c.A)
}

func (c *CPU) initInstructions() {
	c.instrs[0x00] = instr{name: "BRK", mode: addrModeIMP, fn: c.brk}
	c.instrs[0x01] = instr{name: "ORA", mode: addrModeINDX, fn: c.ora}
	c.instrs[0x05] = instr{name: "ORA", mode: addrModeZP, fn: c.ora}
	c.instrs[0x06] = instr{name: "ASL", mode: addrModeZP, fn: c.asl}
	c.instrs[0x08] = instr{name: "PHP", mode: addrModeIMP, fn: c.php}
	c.instrs[0x09] = instr{name: "ORA", mode: addrModeIMM, fn: c.ora}
	c.instrs[0x0a] = instr{name: "ASL", mode: addrModeACC, fn: c.asl}
	c.instrs[0x0d] = instr{name: "ORA", mode: addrModeABS, fn: c.ora}
	c.instrs[0x0e] = instr{name: "ASL", mode: addrModeABS, fn: c.asl}
	c.instrs[0x10] = instr{name: "BPL", mode: addrModeREL, fn: c.bpl}
	c.instrs[0x11] = instr{name: "ORA", mode: addrModeINDY, fn: c.ora}
	c.instrs[0x15] = instr{name: "ORA", mode: addrModeZPX, fn: c.ora}
	c.instrs[0x16] = instr{name: "ASL", mode: addrModeZPX, fn: c.asl}
	c.instrs[0x18] = instr{name: "CLC", mode: addrModeIMP, fn: c.clc}
	c.instrs[0x19] = instr{name: "ORA", mode: addrModeABSY, fn: c.ora}
	c.instrs[0x1d] = instr{name: "ORA", mode: addrModeABSX, fn: c.ora}
	c.instrs[0x1e] = instr{name: "ASL", mode: addrModeABSX, fn: c.asl}
	c.instrs[0x20] = instr{name: "JSR", mode: addrModeABS, fn: c.jsr}
	c.instrs[0x21] = instr{name: "AND", mode: addrModeINDX, fn: c.and}
	c.instrs[0x24] = instr{name: "BIT", mode: addrModeZP, fn: c.bit}
	c.instrs[0x25] = instr{name: "AND", mode: addrModeZP, fn: c.and}
	c.instrs[0x26] = instr{name: "ROL", mode: addrModeZP, fn: c.rol}
	c.instrs[0x28] = instr{name: "PLP", mode: addrModeIMP, fn: c.plp}
	c.instrs[0x29] = instr{name: "AND", mode: addrModeIMM, fn: c.and}
	c.instrs[0x2a] = instr{name: "ROL", mode: addrModeACC, fn: c.rol}
	c.instrs[0x2c] = instr{name: "BIT", mode: addrModeABS, fn: c.bit}
	c.instrs[0x2d] = instr{name: "AND", mode: addrModeABS, fn: c.and}
	c.instrs[0x2e] = instr{name: "ROL", mode: addrModeABS, fn: c.rol}
	c.instrs[0x30] = instr{name: "BMI", mode: addrModeREL, fn: c.bmi}
	c.instrs[0x31] = instr{name: "AND", mode: addrModeINDY, fn: c.and}
	c.instrs[0x35] = instr{name: "AND", mode: addrModeZPX, fn: c.and}
	c.instrs[0x36] = instr{name: "ROL", mode: addrModeZPX, fn: c.rol}
	c.instrs[0x38] = instr{name: "SEC", mode: addrModeIMP, fn: c.sec}
	c.instrs[0x39] = instr{name: "AND", mode: addrModeABSY, fn: c.and}
	c.instrs[0x3d] = instr{name: "AND", mode: addrModeABSX, fn: c.and}
	c.instrs[0x3e] = instr{name: "ROL", mode: addrModeABSX, fn: c.rol}
	c.instrs[0x40] = instr{name: "RTI", mode: addrModeIMP, fn: c.rti}
	c.instrs[0x41] = instr{name: "EOR", mode: addrModeINDX, fn: c.eor}
	c.instrs[0x45] = instr{name: "EOR", mode: addrModeZP, fn: c.eor}
	c.instrs[0x46] = instr{name: "LSR", mode: addrModeZP, fn: c.lsr}
	c.instrs[0x48] = instr{name: "PHA", mode: addrModeIMP, fn: c.pha}
	c.instrs[0x49] = instr{name: "EOR", mode: addrModeIMM, fn: c.eor}
	c.instrs[0x4a] = instr{name: "LSR", mode: addrModeACC, fn: c.lsr}
	c.instrs[0x4c] = instr{name: "JMP", mode: addrModeABS, fn: c.jmp}
	c.instrs[0x4d] = instr{name: "EOR", mode: addrModeABS, fn: c.eor}
	c.instrs[0x4e] = instr{name: "LSR", mode: addrModeABS, fn: c.lsr}
	c.instrs[0x50] = instr{name: "BVC", mode: addrModeREL, fn: c.bvc}
	c.instrs[0x51] = instr{name: "EOR", mode: addrModeINDY, fn: c.eor}
	c.instrs[0x55] = instr{name: "EOR", mode: addrModeZPX, fn: c.eor}
	c.instrs[0x56] = instr{name: "LSR", mode: addrModeZPX, fn: c.lsr}
	c.instrs[0x58] = instr{name: "CLI", mode: addrModeIMP, fn: c.cli}
	c.instrs[0x59] = instr{name: "EOR", mode: addrModeABSY, fn: c.eor}
	c.instrs[0x5d] = instr{name: "EOR", mode: addrModeABSX, fn: c.eor}
	c.instrs[0x5e] = instr{name: "LSR", mode: addrModeABSX, fn: c.lsr}
	c.instrs[0x60] = instr{name: "RTS", mode: addrModeIMP, fn: c.rts}
	c.instrs[0x61] = instr{name: "ADC", mode: addrModeINDX, fn: c.adc}
	c.instrs[0x65] = instr{name: "ADC", mode: addrModeZP, fn: c.adc}
	c.instrs[0x66] = instr{name: "ROR", mode: addrModeZP, fn: c.ror}
	c.instrs[0x68] = instr{name: "PLA", mode: addrModeIMP, fn: c.pla}
	c.instrs[0x69] = instr{name: "ADC", mode: addrModeIMM, fn: c.adc}
	c.instrs[0x6a] = instr{name: "ROR", mode: addrModeACC, fn: c.ror}
	c.instrs[0x6c] = instr{name: "JMP", mode: addrModeIND, fn: c.jmp}
	c.instrs[0x6d] = instr{name: "ADC", mode: addrModeABS, fn: c.adc}
	c.instrs[0x6e] = instr{name: "ROR", mode: addrModeABS, fn: c.ror}
	c.instrs[0x70] = instr{name: "BVS", mode: addrModeREL, fn: c.bvs}
	c.instrs[0x71] = instr{name: "ADC", mode: addrModeINDY, fn: c.adc}
	c.instrs[0x75] = instr{name: "ADC", mode: addrModeZPX, fn: c.adc}
	c.instrs[0x76] = instr{name: "ROR", mode: addrModeZPX, fn: c.ror}
	c.instrs[0x78] = instr{name: "SEI", mode: addrModeIMP, fn: c.sei}
	c.instrs[0x79] = instr{name: "ADC", mode: addrModeABSY, fn: c.adc}
	c.instrs[0x7d] = instr{name: "ADC", mode: addrModeABSX, fn: c.adc}
	c.instrs[0x7e] = instr{name: "ROR", mode: addrModeABSX, fn: c.ror}
	c.instrs[0x81] = instr{name: "STA", mode: addrModeINDX, fn: c.sta}
	c.instrs[0x84] = instr{name: "STY", mode: addrModeZP, fn: c.sty}
	c.instrs[0x85] = instr{name: "STA", mode: addrModeZP, fn: c.sta}
	c.instrs[0x86] = instr{name: "STX", mode: addrModeZP, fn: c.stx}
	c.instrs[0x88] = instr{name: "DEY", mode: addrModeIMP, fn: c.dey}
	c.instrs[0x8a] = instr{name: "TXA", mode: addrModeIMP, fn: c.txa}
	c.instrs[0x8c] = instr{name: "STY", mode: addrModeABS, fn: c.sty}
	c.instrs[0x8d] = instr{name: "STA", mode: addrModeABS, fn: c.sta}
	c.instrs[0x8e] = instr{name: "STX", mode: addrModeABS, fn: c.stx}
	c.instrs[0x90] = instr{name: "BCC", mode: addrModeREL, fn: c.bcc}
	c.instrs[0x91] = instr{name: "STA", mode: addrModeINDY, fn: c.sta}
	c.instrs[0x94] = instr{name: "STY", mode: addrModeZPX, fn: c.sty}
	c.instrs[0x95] = instr{name: "STA", mode: addrModeZPX, fn: c.sta}
	c.instrs[0x96] = instr{name: "STX", mode: addrModeZPY, fn: c.stx}
	c.instrs[0x98] = instr{name: "TYA", mode: addrModeIMP, fn: c.tya}
	c.instrs[0x99] = instr{name: "STA", mode: addrModeABSY, fn: c.sta}
	c.instrs[0x9a] = instr{name: "TXS", mode: addrModeIMP, fn: c.txs}
	c.instrs[0x9d] = instr{name: "STA", mode: addrModeABSX, fn: c.sta}
	c.instrs[0xa0] = instr{name: "LDY", mode: addrModeIMM, fn: c.ldy}
	c.instrs[0xa1] = instr{name: "LDA", mode: addrModeINDX, fn: c.lda}
	c.instrs[0xa2] = instr{name: "LDX", mode: addrModeIMM, fn: c.ldx}
	c.instrs[0xa4] = instr{name: "LDY", mode: addrModeZP, fn: c.ldy}
	c.instrs[0xa5] = instr{name: "LDA", mode: addrModeZP, fn: c.lda}
	c.instrs[0xa6] = instr{name: "LDX", mode: addrModeZP, fn: c.ldx}
	c.instrs[0xa8] = instr{name: "TAY", mode: addrModeIMP, fn: c.tay}
	c.instrs[0xa9] = instr{name: "LDA", mode: addrModeIMM, fn: c.lda}
	c.instrs[0xaa] = instr{name: "TAX", mode: addrModeIMP, fn: c.tax}
	c.instrs[0xac] = instr{name: "LDY", mode: addrModeABS, fn: c.ldy}
	c.instrs[0xad] = instr{name: "LDA", mode: addrModeABS, fn: c.lda}
	c.instrs[0xae] = instr{name: "LDX", mode: addrModeABS, fn: c.ldx}
	c.instrs[0xb0] = instr{name: "BCS", mode: addrModeREL, fn: c.bcs}
	c.instrs[0xb1] = instr{name: "LDA", mode: addrModeINDY, fn: c.lda}
	c.instrs[0xb4] = instr{name: "LDY", mode: addrModeZPX, fn: c.ldy}
	c.instrs[0xb5] = instr{name: "LDA", mode: addrModeZPX, fn: c.lda}
	c.instrs[0xb6] = instr{name: "LDX", mode: addrModeZPY, fn: c.ldx}
	c.instrs[0xb8] = instr{name: "CLV", mode: addrModeIMP, fn: c.clv}
	c.instrs[0xb9] = instr{name: "LDA", mode: addrModeABSY, fn: c.lda}
	c.instrs[0xba] = instr{name: "TSX", mode: addrModeIMP, fn: c.tsx}
	c.instrs[0xbc] = instr{name: "LDY", mode: addrModeABSX, fn: c.ldy}
	c.instrs[0xbd] = instr{name: "LDA", mode: addrModeABSX, fn: c.lda}
	c.instrs[0xbe] = instr{name: "LDX", mode: addrModeABSY, fn: c.ldx}
	c.instrs[0xc0] = instr{name: "CPY", mode: addrModeIMM, fn: c.cpy}
	c.instrs[0xc1] = instr{name: "CMP", mode: addrModeINDX, fn: c.cmp}
	c.instrs[0xc4] = instr{name: "CPY", mode: addrModeZP, fn: c.cpy}
	c.instrs[0xc5] = instr{name: "CMP", mode: addrModeZP, fn: c.cmp}
	c.instrs[0xc6] = instr{name: "DEC", mode: addrModeZP, fn: c.dec}
	c.instrs[0xc8] = instr{name: "INY", mode: addrModeIMP, fn: c.iny}
	c.instrs[0xc9] = instr{name: "CMP", mode: addrModeIMM, fn: c.cmp}
	c.instrs[0xca] = instr{name: "DEX", mode: addrModeIMP, fn: c.dex}
	c.instrs[0xcc] = instr{name: "CPY", mode: addrModeABS, fn: c.cpy}
	c.instrs[0xcd] = instr{name: "CMP", mode: addrModeABS, fn: c.cmp}
	c.instrs[0xce] = instr{name: "DEC", mode: addrModeABS, fn: c.dec}
	c.instrs[0xd0] = instr{name: "BNE", mode: addrModeREL, fn: c.bne}
	c.instrs[0xd1] = instr{name: "CMP", mode: addrModeINDY, fn: c.cmp}
	c.instrs[0xd5] = instr{name: "CMP", mode: addrModeZPX, fn: c.cmp}
	c.instrs[0xd6] = instr{name: "DEC", mode: addrModeZPX, fn: c.dec}
	c.instrs[0xd8] = instr{name: "CLD", mode: addrModeIMP, fn: c.cld}
	c.instrs[0xd9] = instr{name: "CMP", mode: addrModeABSY, fn: c.cmp}
	c.instrs[0xdd] = instr{name: "CMP", mode: addrModeABSX, fn: c.cmp}
	c.instrs[0xde] = instr{name: "DEC", mode: addrModeABSX, fn: c.dec}
	c.instrs[0xe0] = instr{name: "CPX", mode: addrModeIMM, fn: c.cpx}
	c.instrs[0xe1] = instr{name: "SBC", mode: addrModeINDX, fn: c.sbc}
	c.instrs[0xe4] = instr{name: "CPX", mode: addrModeZP, fn: c.cpx}
	c.instrs[0xe5] = instr{name: "SBC", mode: addrModeZP, fn: c.sbc}
	c.instrs[0xe6] = instr{name: "INC", mode: addrModeZP, fn: c.inc}
	c.instrs[0xe8] = instr{name: "INX", mode: addrModeIMP, fn: c.inx}
	c.instrs[0xe9] = instr{name: "SBC", mode: addrModeIMM, fn: c.sbc}
	c.instrs[0xea] = instr{name: "NOP", mode: addrModeIMP, fn: c.nop}
	c.instrs[0xec] = instr{name: "CPX", mode: addrModeABS, fn: c.cpx}
	c.instrs[0xed] = instr{name: "SBC", mode: addrModeABS, fn: c.sbc}
	c.instrs[0xee] = instr{name: "INC", mode: addrModeABS, fn: c.inc}
	c.instrs[0xf0] = instr{name: "BEQ", mode: addrModeREL, fn: c.beq}
	c.instrs[0xf1] = instr{name: "SBC", mode: addrModeINDY, fn: c.sbc}
	c.instrs[0xf5] = instr{name: "SBC", mode: addrModeZPX, fn: c.sbc}
	c.instrs[0xf6] = instr{name: "INC", mode: addrModeZPX, fn: c.inc}
	c.instrs[0xf8] = instr{name: "SED", mode: addrModeIMP, fn: c.sed}
	c.instrs[0xf9] = instr{name: "SBC", mode: addrModeABSY, fn: c.sbc}
	c.instrs[0xfd] = instr{name: "SBC", mode: addrModeABSX, fn: c.sbc}
	c.instrs[0xfe] = instr{name: "INC", mode: addrModeABSX, fn: c.inc}
}
