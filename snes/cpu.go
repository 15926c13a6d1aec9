package snes

import "fmt"

// CPU emulates a small 6502-style processor: a register file, an
// instruction table and a fetch/decode/execute cycle over a flat 64KiB
// address space. Only the handful of opcodes below are implemented;
// anything else is a defined no-op (see Step).

const (
	// bootAddress is where PC points on power-on, before any reset vector
	// has been stored.
	bootAddress uint16 = 0x8000
	// stackTop is the power-on stack pointer. No instruction in this set
	// touches the stack, the register exists for display.
	stackTop uint16 = 0x01FF
	// resetVector holds the little-endian address Reset jumps to.
	resetVector uint16 = 0xFFFC
)

type addressingMode int

const (
	implied addressingMode = iota
	immediate
	absolute
)

// status is the P register. Only Zero (bit 1) and Negative (bit 7) are
// maintained by this machine; the remaining bits carry whatever was last
// loaded into them.
type status struct {
	z    bool
	n    bool
	rest byte
}

// encode encodes the status to a byte.
func (s *status) encode() byte {
	res := s.rest
	if s.z {
		res |= 1 << 1
	}
	if s.n {
		res |= 1 << 7
	}
	return res
}

// decodeFrom decodes a byte to the status.
func (s *status) decodeFrom(data byte) {
	s.z = (data>>1)&1 == 1
	s.n = (data>>7)&1 == 1
	s.rest = data &^ 0x82
}

type CPU struct {
	p             *status // Processor status flag bits
	a             byte    // Accumulator register
	x             byte    // Index register
	y             byte    // Index register
	pc            uint16  // Program counter
	sp            uint16  // Stack pointer
	cycles        uint64  // Executed cycles, monotonic
	halted        bool    // Set by BRK, cleared only by rebuilding the CPU
	lastExecution string  // For debug
	ram           *RAM
	instructions  []instruction
}

type instruction struct {
	mnemonic string
	mode     addressingMode
	execute  func(addressingMode, uint16)
	size     uint16
	cycles   int
}

func (c *CPU) createInstructions() []instruction {
	set := make([]instruction, 256)
	set[0x00] = instruction{"BRK", implied, c.brk, 1, 7}
	set[0x4C] = instruction{"JMP", absolute, c.jmp, 3, 3}
	set[0x8D] = instruction{"STA", absolute, c.sta, 3, 4}
	set[0xA9] = instruction{"LDA", immediate, c.lda, 2, 2}
	set[0xAD] = instruction{"LDA", absolute, c.lda, 3, 4}
	set[0xEA] = instruction{"NOP", implied, c.nop, 1, 2}
	return set
}

// NewCPU creates a CPU with exclusive ownership of its address space.
func NewCPU(ram *RAM) *CPU {
	c := &CPU{
		p:   &status{},
		pc:  bootAddress,
		sp:  stackTop,
		ram: ram,
	}
	c.instructions = c.createInstructions()
	return c
}

// Reset loads PC from the reset vector. Other registers and memory keep
// their values; a full power cycle means building a new CPU.
func (c *CPU) Reset() {
	c.pc = c.ram.read16(resetVector)
}

// Halted reports whether BRK has been executed.
func (c *CPU) Halted() bool {
	return c.halted
}

// Cycles returns the total cycles executed since power-on.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// setN sets whether the x is negative or positive.
func (c *CPU) setN(x byte) {
	c.p.n = x&0x80 != 0
}

// setZ sets whether the x is 0 or not.
func (c *CPU) setZ(x byte) {
	c.p.z = x == 0
}

// LDA - Load Accumulator.
func (c *CPU) lda(mode addressingMode, operand uint16) {
	c.a = c.ram.read(operand)
	c.setN(c.a)
	c.setZ(c.a)
}

// STA - Store Accumulator.
func (c *CPU) sta(mode addressingMode, operand uint16) {
	c.ram.write(operand, c.a)
}

// JMP - Jump.
func (c *CPU) jmp(mode addressingMode, operand uint16) {
	c.pc = operand
}

// NOP - No Operation.
func (c *CPU) nop(mode addressingMode, operand uint16) {
}

// BRK - Force Break. Halts the CPU; only a full machine reset resumes.
func (c *CPU) brk(mode addressingMode, operand uint16) {
	c.halted = true
}

// Step performs the instruction cycle - fetch, decode, execute - and
// returns the cycles the instruction consumed. An opcode with no handler
// consumes zero cycles and has no effect beyond moving past the byte, so
// execution always makes forward progress.
func (c *CPU) Step() int {
	opcode := c.ram.read(c.pc)
	instruction := c.instructions[opcode]
	if instruction.mnemonic == "" {
		c.pc++
		return 0
	}
	var operand uint16 = 0
	switch instruction.mode {
	case implied:
		operand = 0
	case immediate:
		operand = c.pc + 1
	case absolute:
		operand = c.ram.read16(c.pc + 1)
	}
	c.pc += instruction.size
	// Save debug string.
	c.lastExecution = fmt.Sprintf("PC=0x%04x, A=0x%02x, X=0x%02x, Y=0x%02x, SP=0x%04x, opcode=0x%02x, mnemonic=%s, operand=0x%04x",
		c.pc, c.a, c.x, c.y, c.sp, opcode, instruction.mnemonic, operand)
	instruction.execute(instruction.mode, operand)
	c.cycles += uint64(instruction.cycles)
	return instruction.cycles
}
