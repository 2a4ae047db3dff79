package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oisee/go-i8080/pkg/cpu"
)

func TestTakeAndRestoreRoundTrip(t *testing.T) {
	s := &cpu.State{A: 0x42, B: 0x01, SP: 0xFF00, PC: 0x0100}
	s.Mem.Write8(0x0100, 0x76)
	snap := Take(s)

	restored := &cpu.State{}
	snap.Restore(restored)

	if restored.A != 0x42 || restored.SP != 0xFF00 || restored.PC != 0x0100 {
		t.Errorf("restored = %+v, want A=0x42 SP=0xFF00 PC=0x0100", restored)
	}
	if restored.Mem.Read8(0x0100) != 0x76 {
		t.Errorf("memory not restored")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := &cpu.State{A: 0x99, PC: 0x1234}
	snap := Take(s)

	path := filepath.Join(t.TempDir(), "snap.gob")
	if err := Save(path, snap); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.A != 0x99 || loaded.PC != 0x1234 {
		t.Errorf("loaded = %+v, want A=0x99 PC=0x1234", loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(os.TempDir(), "definitely-does-not-exist.gob"))
	if err == nil {
		t.Error("expected error loading missing file")
	}
}
