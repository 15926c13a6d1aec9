package snes

import "testing"

func TestFlagUpdateTouchesOnlyZAndN(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := NewCPU(NewRAM())
		// Every bit outside Z and N set, both flags initially clear.
		c.p.decodeFrom(0x7D)
		c.setZ(byte(v))
		c.setN(byte(v))
		want := byte(0x7D)
		if v == 0 {
			want |= 0x02
		}
		if v&0x80 != 0 {
			want |= 0x80
		}
		if got := c.p.encode(); got != want {
			t.Fatalf("p after flag update for 0x%02x: got=0x%02x, want=0x%02x", v, got, want)
		}
	}
}

func TestFlagUpdateClearsStaleBits(t *testing.T) {
	c := NewCPU(NewRAM())
	c.p.decodeFrom(0xFF)
	// 0x01 is neither zero nor negative, so both flags drop.
	c.setZ(0x01)
	c.setN(0x01)
	if got := c.p.encode(); got != 0x7D {
		t.Fatalf("p: got=0x%02x, want=0x7d", got)
	}
}

func TestLDAImmediateSTAAbsolute(t *testing.T) {
	c := NewConsole()
	c.LoadProgram([]byte{0xA9, 0x42, 0x8D, 0x00, 0x03}, 0x8000)
	if got := c.CPU.Step(); got != 2 {
		t.Fatalf("LDA immediate cycles: got=%d, want=2", got)
	}
	if c.CPU.a != 0x42 {
		t.Fatalf("cpu.a: got=0x%02x, want=0x42", c.CPU.a)
	}
	if got := c.CPU.Step(); got != 4 {
		t.Fatalf("STA absolute cycles: got=%d, want=4", got)
	}
	if got := c.CPU.ram.read(0x0300); got != 0x42 {
		t.Fatalf("memory[0x0300]: got=0x%02x, want=0x42", got)
	}
	if c.CPU.pc != 0x8005 {
		t.Fatalf("cpu.pc: got=0x%04x, want=0x8005", c.CPU.pc)
	}
}

func TestLDAAbsolute(t *testing.T) {
	c := NewConsole()
	c.LoadProgram([]byte{0xAD, 0x34, 0x12}, 0x8000)
	c.CPU.ram.write(0x1234, 0x80)
	if got := c.CPU.Step(); got != 4 {
		t.Fatalf("LDA absolute cycles: got=%d, want=4", got)
	}
	if c.CPU.a != 0x80 {
		t.Fatalf("cpu.a: got=0x%02x, want=0x80", c.CPU.a)
	}
	if !c.CPU.p.n || c.CPU.p.z {
		t.Fatalf("flags after loading 0x80: n=%v z=%v, want n=true z=false", c.CPU.p.n, c.CPU.p.z)
	}
}

func TestLDAZeroSetsZeroFlag(t *testing.T) {
	c := NewConsole()
	c.LoadProgram([]byte{0xA9, 0x00}, 0x8000)
	c.CPU.Step()
	if !c.CPU.p.z || c.CPU.p.n {
		t.Fatalf("flags after loading 0x00: n=%v z=%v, want n=false z=true", c.CPU.p.n, c.CPU.p.z)
	}
}

func TestJMPAbsolute(t *testing.T) {
	c := NewConsole()
	c.LoadProgram([]byte{0x4C, 0x00, 0x80}, 0x8000)
	for i := 0; i < 3; i++ {
		if got := c.CPU.Step(); got != 3 {
			t.Fatalf("JMP cycles: got=%d, want=3", got)
		}
		if c.CPU.pc != 0x8000 {
			t.Fatalf("cpu.pc after JMP: got=0x%04x, want=0x8000", c.CPU.pc)
		}
	}
}

func TestNOP(t *testing.T) {
	c := NewConsole()
	c.LoadProgram([]byte{0xEA}, 0x8000)
	if got := c.CPU.Step(); got != 2 {
		t.Fatalf("NOP cycles: got=%d, want=2", got)
	}
	if c.CPU.pc != 0x8001 {
		t.Fatalf("cpu.pc: got=0x%04x, want=0x8001", c.CPU.pc)
	}
}

func TestBRKHalts(t *testing.T) {
	c := NewConsole()
	c.LoadProgram([]byte{0x00}, 0x8000)
	if got := c.CPU.Step(); got != 7 {
		t.Fatalf("BRK cycles: got=%d, want=7", got)
	}
	if !c.CPU.Halted() {
		t.Fatal("cpu not halted after BRK")
	}
}

func TestUnknownOpcodeIsSilentNoOp(t *testing.T) {
	c := NewConsole()
	c.LoadProgram([]byte{0xFF, 0xEA}, 0x8000)
	c.CPU.a, c.CPU.x, c.CPU.y = 0x01, 0x02, 0x03
	c.CPU.p.decodeFrom(0x55)
	if got := c.CPU.Step(); got != 0 {
		t.Fatalf("unknown opcode cycles: got=%d, want=0", got)
	}
	// Execution moved past the byte and nothing else changed.
	if c.CPU.pc != 0x8001 {
		t.Fatalf("cpu.pc: got=0x%04x, want=0x8001", c.CPU.pc)
	}
	if c.CPU.a != 0x01 || c.CPU.x != 0x02 || c.CPU.y != 0x03 {
		t.Fatalf("registers changed: a=0x%02x x=0x%02x y=0x%02x", c.CPU.a, c.CPU.x, c.CPU.y)
	}
	if got := c.CPU.p.encode(); got != 0x55 {
		t.Fatalf("cpu.p: got=0x%02x, want=0x55", got)
	}
	if c.CPU.sp != stackTop {
		t.Fatalf("cpu.sp: got=0x%04x, want=0x%04x", c.CPU.sp, stackTop)
	}
	if c.CPU.Halted() {
		t.Fatal("cpu halted on unknown opcode")
	}
	// The following instruction still executes.
	if got := c.CPU.Step(); got != 2 {
		t.Fatalf("NOP after unknown opcode: got=%d cycles, want=2", got)
	}
}

func TestResetLoadsVectorOnly(t *testing.T) {
	c := NewConsole()
	c.SetResetVector(0x9000)
	c.CPU.a = 0x42
	c.CPU.x = 0x01
	c.CPU.p.decodeFrom(0x80)
	c.CPU.Reset()
	if c.CPU.pc != 0x9000 {
		t.Fatalf("cpu.pc: got=0x%04x, want=0x9000", c.CPU.pc)
	}
	if c.CPU.a != 0x42 || c.CPU.x != 0x01 || c.CPU.sp != stackTop {
		t.Fatalf("registers changed by reset: a=0x%02x x=0x%02x sp=0x%04x", c.CPU.a, c.CPU.x, c.CPU.sp)
	}
	if got := c.CPU.p.encode(); got != 0x80 {
		t.Fatalf("cpu.p: got=0x%02x, want=0x80", got)
	}
}
