package disasm

import "testing"

type fakeMem map[uint16]uint8

func (f fakeMem) Read8(addr uint16) uint8 { return f[addr] }

func TestOneNoOperand(t *testing.T) {
	m := fakeMem{0: 0x00}
	line := One(m, 0)
	if line.Text != "NOP" || line.Len != 1 {
		t.Errorf("One() = %+v, want NOP len 1", line)
	}
}

func TestOneImmediate8(t *testing.T) {
	m := fakeMem{0: 0x3E, 1: 0xAB}
	line := One(m, 0)
	if line.Text != "MVI A,$AB" || line.Len != 2 {
		t.Errorf("One() = %+v, want 'MVI A,$AB' len 2", line)
	}
}

func TestOneAddress16(t *testing.T) {
	m := fakeMem{0: 0xC3, 1: 0x34, 2: 0x12}
	line := One(m, 0)
	if line.Text != "JMP $1234" || line.Len != 3 {
		t.Errorf("One() = %+v, want 'JMP $1234' len 3", line)
	}
}

func TestListingWalksSequentially(t *testing.T) {
	m := fakeMem{0: 0x00, 1: 0x3E, 2: 0xFF, 3: 0x76}
	lines := Listing(m, 0, 4)
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	if lines[0].Addr != 0 || lines[1].Addr != 1 || lines[2].Addr != 3 {
		t.Errorf("addrs = %d,%d,%d, want 0,1,3", lines[0].Addr, lines[1].Addr, lines[2].Addr)
	}
}
