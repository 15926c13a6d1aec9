package snes

// RAM is the CPU's flat 64KiB address space. There is no bank switching and
// no memory-mapped I/O: every address is an ordinary byte. Addresses are
// uint16, so all address arithmetic wraps within the array by type width.
type RAM struct {
	data [0x10000]byte
}

// NewRAM creates a RAM.
func NewRAM() *RAM {
	return &RAM{}
}

// read reads data
func (r *RAM) read(address uint16) byte {
	return r.data[address]
}

// write writes data
func (r *RAM) write(address uint16, x byte) {
	r.data[address] = x
}

// read16 reads 2 bytes, little-endian.
func (r *RAM) read16(address uint16) uint16 {
	l := r.read(address)
	h := r.read(address + 1)
	return uint16(h)<<8 | uint16(l)
}

// write16 writes 2 bytes, little-endian.
func (r *RAM) write16(address uint16, x uint16) {
	r.write(address, byte(x&0xFF))
	r.write(address+1, byte(x>>8))
}
