package snes

import (
	"fmt"
	"image/color"
)

// Console wires the CPU and PPU together with their memories and carries
// the loader and read-only debug surface the presentation layer uses. The
// two engines never alias memory: the CPU owns the address space, the PPU
// owns video memory, and only the loader writes into the latter.
type Console struct {
	CPU *CPU
	PPU *PPU
}

// NewConsole creates a console with empty memories.
func NewConsole() *Console {
	ram := NewRAM()
	vram := NewVRAM()
	return &Console{NewCPU(ram), NewPPU(vram)}
}

// LoadProgram copies a program image into the address space at origin.
func (c *Console) LoadProgram(program []byte, origin uint16) {
	address := origin
	for _, b := range program {
		c.CPU.ram.write(address, b)
		address++
	}
}

// SetResetVector stores the address the CPU starts from after Reset.
func (c *Console) SetResetVector(address uint16) {
	c.CPU.ram.write16(resetVector, address)
}

// LoadTiles copies bitplane pattern data into the tile pattern table.
func (c *Console) LoadTiles(data []byte) {
	var address uint16 = 0
	for _, b := range data {
		c.PPU.vram.write(address, b)
		address++
	}
}

// LoadTileMap copies tile indices into the tile map, row-major.
func (c *Console) LoadTileMap(data []byte) {
	var address uint16 = tileMapBase
	for _, b := range data {
		c.PPU.vram.write(address, b)
		address++
	}
}

// SetPalette replaces the leading palette entries. Index 0 is the
// transparent backdrop and is never painted, whatever color it holds.
func (c *Console) SetPalette(colors []color.RGBA) {
	c.PPU.setPalette(colors)
}

// Registers is a read-only register snapshot for display.
type Registers struct {
	A, X, Y byte
	PC, SP  uint16
	P       byte
}

func (r Registers) String() string {
	return fmt.Sprintf("A=0x%02x, X=0x%02x, Y=0x%02x, PC=0x%04x, SP=0x%04x, P=0x%02x",
		r.A, r.X, r.Y, r.PC, r.SP, r.P)
}

// Snapshot returns the current register file.
func (c *Console) Snapshot() Registers {
	return Registers{c.CPU.a, c.CPU.x, c.CPU.y, c.CPU.pc, c.CPU.sp, c.CPU.p.encode()}
}

// AddressedByte is one row of a disassembly window: the raw byte at an
// address. No mnemonic decoding is performed.
type AddressedByte struct {
	Address uint16
	Data    byte
}

// DisassembleWindow returns the raw bytes at center-radius through
// center+radius, clipped to the address space.
func (c *Console) DisassembleWindow(center uint16, radius int) []AddressedByte {
	var window []AddressedByte
	for offset := -radius; offset <= radius; offset++ {
		address := int(center) + offset
		if address < 0 || 0xFFFF < address {
			continue
		}
		window = append(window, AddressedByte{uint16(address), c.CPU.ram.read(uint16(address))})
	}
	return window
}

// Reset re-reads the reset vector. Rebuilding the whole machine from its
// initial image is the scheduler's Reset.
func (c *Console) Reset() {
	c.CPU.Reset()
}
