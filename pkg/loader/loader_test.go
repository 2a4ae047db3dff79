package loader

import (
	"bytes"
	"testing"

	"github.com/oisee/go-i8080/pkg/mem"
)

func TestLoadWritesAtOffset(t *testing.T) {
	var m mem.Image
	n, err := Load(&m, bytes.NewReader([]byte{0xDE, 0xAD, 0xBE, 0xEF}), 0x0100)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Fatalf("n = %d, want 4", n)
	}
	if m.Read8(0x0100) != 0xDE || m.Read8(0x0103) != 0xEF {
		t.Errorf("bytes not loaded at expected offsets")
	}
	if m.Read8(0x00FF) != 0 {
		t.Errorf("byte before offset must be untouched")
	}
}

func TestApplyPatches(t *testing.T) {
	var m mem.Image
	ApplyPatches(&m, CPUDiagPatches)
	if m.Read8(0x0000) != 0xC3 || m.Read8(0x0001) != 0x00 || m.Read8(0x0002) != 0x01 {
		t.Errorf("boot vector patch not applied")
	}
	if m.Read8(0x059C) != 0xC3 || m.Read8(0x059D) != 0xC2 || m.Read8(0x059E) != 0x05 {
		t.Errorf("DAA-test bypass patch not applied")
	}
}

func TestInvadersROMLayoutIsContiguous(t *testing.T) {
	want := uint16(0)
	for _, r := range InvadersROMLayout {
		if r.Offset != want {
			t.Errorf("%s offset = %#04x, want %#04x", r.Name, r.Offset, want)
		}
		want += uint16(r.Size)
	}
}
