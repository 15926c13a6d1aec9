package snes

// VRAM memory map (by convention, nothing is enforced in hardware):
// 0x0000 - 0x0FFF	Tile pattern table, 256 tiles x 16 bytes (two bitplanes)
// 0x1000 - 0x7FFF	Tile map, one tile index per screen cell, row-major
const (
	vramSize      = 0x8000
	tileMapBase   = 0x1000
	tileSizeBytes = 16
)

// VRAM is the PPU's 32KiB video memory. It is populated by the loader and
// only ever read during rendering; the CPU has no path into it.
type VRAM struct {
	data [vramSize]byte
}

// NewVRAM creates a VRAM.
func NewVRAM() *VRAM {
	return &VRAM{}
}

// read reads data
func (v *VRAM) read(address uint16) byte {
	return v.data[address%vramSize]
}

// write writes data
func (v *VRAM) write(address uint16, x byte) {
	v.data[address%vramSize] = x
}
