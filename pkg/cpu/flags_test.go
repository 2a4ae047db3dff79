package cpu

import "testing"

func TestParity8(t *testing.T) {
	tests := []struct {
		v    uint8
		want bool
	}{
		{0x00, true},
		{0x01, false},
		{0xFF, true},
		{0x03, true},
		{0x07, false},
	}
	for _, tc := range tests {
		if got := parity8(tc.v); got != tc.want {
			t.Errorf("parity8(%#02x) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestSetZSP(t *testing.T) {
	var f Flags
	setZSP(&f, 0x00)
	if !f.Z || f.S || !f.P {
		t.Errorf("setZSP(0) = %+v, want Z=true S=false P=true", f)
	}
	setZSP(&f, 0x80)
	if f.Z || !f.S || f.P {
		t.Errorf("setZSP(0x80) = %+v, want Z=false S=true P=false", f)
	}
	setZSP(&f, 0x01)
	if f.Z || f.S || f.P {
		t.Errorf("setZSP(1) = %+v, want Z=false S=false P=false", f)
	}
}

func TestAuxCarryAdd(t *testing.T) {
	if !auxCarryAdd(0x0F, 0x01, 0) {
		t.Error("auxCarryAdd(0x0F, 1, 0) should carry")
	}
	if auxCarryAdd(0x0E, 0x01, 0) {
		t.Error("auxCarryAdd(0x0E, 1, 0) should not carry")
	}
}

func TestAuxCarrySub(t *testing.T) {
	if !auxCarrySub(0x00, 0x01, 0) {
		t.Error("auxCarrySub(0, 1, 0) should borrow")
	}
	if auxCarrySub(0x11, 0x01, 0) {
		t.Error("auxCarrySub(0x11, 1, 0) should not borrow")
	}
}

func TestPackUnpackFlagsRoundTrip(t *testing.T) {
	f := Flags{Z: true, S: false, P: true, CY: true, AC: false}
	b := packFlags(f)
	if b&bitFixed1 == 0 {
		t.Error("packed byte must have bit 1 set")
	}
	if b&0x08 != 0 || b&0x20 != 0 {
		t.Error("packed byte must have bits 3 and 5 clear")
	}
	got := unpackFlags(b)
	if got != f {
		t.Errorf("unpackFlags(packFlags(%+v)) = %+v", f, got)
	}
}
