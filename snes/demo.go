package snes

import "image/color"

// demoProgram loops forever storing constants that a fuller machine would
// route to video registers; here the stores land in plain memory. The loop
// keeps the CPU busy for the whole frame budget without ever halting.
var demoProgram = []byte{
	0xA9, 0x01, // LDA #$01
	0x8D, 0x00, 0x20, // STA $2000
	0xA9, 0x3F, // LDA #$3F
	0x8D, 0x06, 0x20, // STA $2006
	0xA9, 0x00, // LDA #$00
	0x8D, 0x06, 0x20, // STA $2006
	0x4C, 0x00, 0x80, // JMP $8000
}

// LoadDemo populates a console with the built-in demo image: a two-plane
// checker pattern for all 256 tiles, a 4-color palette, a tile map of
// diagonal bands, and the demo program with its reset vector. It stands in
// for cartridge loading, which this machine does not do.
func LoadDemo(c *Console) {
	tiles := make([]byte, 256*tileSizeBytes)
	for i := 0; i < 256; i++ {
		tiles[i*tileSizeBytes] = 0xAA   // plane 0: 10101010
		tiles[i*tileSizeBytes+1] = 0x55 // plane 1: 01010101
	}
	c.LoadTiles(tiles)

	c.SetPalette([]color.RGBA{
		{0x00, 0x00, 0x00, 0xFF}, // 0: black, the transparent backdrop
		{0xFF, 0x00, 0x00, 0xFF}, // 1: red
		{0x00, 0xFF, 0x00, 0xFF}, // 2: green
		{0x00, 0x00, 0xFF, 0xFF}, // 3: blue
	})

	tileMap := make([]byte, tileRows*tileColumns)
	for y := 0; y < tileRows; y++ {
		for x := 0; x < tileColumns; x++ {
			tileMap[y*tileColumns+x] = byte(x + y)
		}
	}
	c.LoadTileMap(tileMap)

	c.LoadProgram(demoProgram, bootAddress)
	c.SetResetVector(bootAddress)
	c.Reset()
}
