package mem

import "testing"

func TestReadWrite8(t *testing.T) {
	var m Image
	m.Write8(0x1234, 0xAB)
	if got := m.Read8(0x1234); got != 0xAB {
		t.Errorf("Read8 = %02X, want AB", got)
	}
}

func TestReadWrite8Wraps(t *testing.T) {
	var m Image
	m.Write8(0xFFFF, 0x42)
	if got := m.Read8(0xFFFF); got != 0x42 {
		t.Errorf("Read8(0xFFFF) = %02X, want 42", got)
	}
	top := uint16(0xFFFF)
	m.Write8(top+1, 0x24)
	if got := m.Read8(0x0000); got != 0x24 {
		t.Errorf("Read8(0x0000) = %02X, want 24 (0xFFFF+1 wraps to 0x0000)", got)
	}
}

func TestReadWrite16LittleEndian(t *testing.T) {
	var m Image
	m.Write16(0x2000, 0xBEEF)
	if got := m.Read8(0x2000); got != 0xEF {
		t.Errorf("low byte = %02X, want EF", got)
	}
	if got := m.Read8(0x2001); got != 0xBE {
		t.Errorf("high byte = %02X, want BE", got)
	}
	if got := m.Read16(0x2000); got != 0xBEEF {
		t.Errorf("Read16 = %04X, want BEEF", got)
	}
}

func TestSizeIsExactly64K(t *testing.T) {
	var m Image
	if len(m) != 65536 {
		t.Errorf("len(Image) = %d, want 65536", len(m))
	}
}
