package snes

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/glog"
)

// The background layer is 32x28 tiles of 8x8 pixels.
const (
	tileColumns = 32
	tileRows    = 28
	Width       = tileColumns * 8
	Height      = tileRows * 8
)

// backdrop shows through wherever a pixel decodes to color index 0.
var backdrop = color.RGBA{0x00, 0x00, 0x00, 0xFF}

// PPU rasterizes the tile-map background into an owned framebuffer, one
// full redraw per frame. A tile occupies 16 bytes of pattern data: 8 rows
// of two bitplane bytes; combining the planes yields a 2-bit palette index
// per pixel, and index 0 is transparent.
type PPU struct {
	vram       *VRAM
	palette    [256]color.RGBA
	background *image.RGBA
}

// NewPPU creates a PPU with exclusive ownership of its video memory.
func NewPPU(vram *VRAM) *PPU {
	return &PPU{
		vram:       vram,
		background: image.NewRGBA(image.Rect(0, 0, Width, Height)),
	}
}

// setPalette replaces the leading palette entries.
func (p *PPU) setPalette(colors []color.RGBA) {
	for i, c := range colors {
		if i >= len(p.palette) {
			break
		}
		p.palette[i] = c
	}
}

// RenderFrame redraws the whole background layer and returns the frame.
// The framebuffer is fully overwritten every time: cleared to the backdrop,
// then tiles painted in row-major order. The returned image is reused by
// the next render.
func (p *PPU) RenderFrame() *image.RGBA {
	glog.V(1).Infoln("rendering frame...")
	draw.Draw(p.background, p.background.Bounds(), image.NewUniform(backdrop), image.Point{}, draw.Src)
	for y := 0; y < tileRows; y++ {
		for x := 0; x < tileColumns; x++ {
			tileIndex := p.vram.read(tileMapBase + uint16(y*tileColumns+x))
			p.renderTile(x*8, y*8, tileIndex)
		}
	}
	return p.background
}

// renderTile paints one 8x8 tile with its top-left pixel at (x, y).
// Columns are decoded most significant bit first.
func (p *PPU) renderTile(x, y int, tileIndex byte) {
	address := uint16(tileIndex) * tileSizeBytes
	for ty := 0; ty < 8; ty++ {
		plane0 := p.vram.read(address)
		plane1 := p.vram.read(address + 1)
		address += 2
		for tx := 0; tx < 8; tx++ {
			bit := 7 - tx
			colorIndex := ((plane1>>bit)&1)<<1 | (plane0>>bit)&1
			if colorIndex == 0 {
				continue
			}
			p.background.SetRGBA(x+tx, y+ty, p.palette[colorIndex])
		}
	}
}
