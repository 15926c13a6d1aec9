package snes

import "testing"

func TestSnapshot(t *testing.T) {
	c := NewConsole()
	c.CPU.a, c.CPU.x, c.CPU.y = 0x11, 0x22, 0x33
	c.CPU.p.decodeFrom(0x82)
	got := c.Snapshot()
	want := Registers{A: 0x11, X: 0x22, Y: 0x33, PC: bootAddress, SP: stackTop, P: 0x82}
	if got != want {
		t.Fatalf("snapshot: got=%+v, want=%+v", got, want)
	}
}

func TestLoadProgramAndResetVector(t *testing.T) {
	c := NewConsole()
	c.LoadProgram([]byte{0xA9, 0x01}, 0x4000)
	if c.CPU.ram.read(0x4000) != 0xA9 || c.CPU.ram.read(0x4001) != 0x01 {
		t.Fatalf("program bytes: got=[0x%02x 0x%02x]", c.CPU.ram.read(0x4000), c.CPU.ram.read(0x4001))
	}
	c.SetResetVector(0x4000)
	if got := c.CPU.ram.read16(resetVector); got != 0x4000 {
		t.Fatalf("reset vector: got=0x%04x, want=0x4000", got)
	}
}

func TestDisassembleWindow(t *testing.T) {
	c := NewConsole()
	c.LoadProgram([]byte{0xA9, 0x01, 0x8D, 0x00, 0x20}, 0x8000)
	window := c.DisassembleWindow(0x8002, 2)
	if len(window) != 5 {
		t.Fatalf("window size: got=%d, want=5", len(window))
	}
	wantData := []byte{0xA9, 0x01, 0x8D, 0x00, 0x20}
	for i, row := range window {
		if row.Address != uint16(0x8000+i) || row.Data != wantData[i] {
			t.Fatalf("row %d: got={0x%04x 0x%02x}, want={0x%04x 0x%02x}",
				i, row.Address, row.Data, 0x8000+i, wantData[i])
		}
	}
}

func TestDisassembleWindowClipsToAddressSpace(t *testing.T) {
	c := NewConsole()
	low := c.DisassembleWindow(0x0001, 3)
	if len(low) != 5 || low[0].Address != 0x0000 {
		t.Fatalf("low window: got=%d rows starting 0x%04x, want 5 rows from 0x0000", len(low), low[0].Address)
	}
	high := c.DisassembleWindow(0xFFFE, 3)
	if len(high) != 5 || high[len(high)-1].Address != 0xFFFF {
		t.Fatalf("high window: got=%d rows ending 0x%04x, want 5 rows to 0xffff", len(high), high[len(high)-1].Address)
	}
}
