package trace

import (
	"testing"

	"github.com/oisee/go-i8080/pkg/cpu"
)

func TestRecordAndEntriesOrder(t *testing.T) {
	r := NewRecorder(3)
	s := &cpu.State{}
	for pc := uint16(0); pc < 2; pc++ {
		s.PC = pc
		s.Mem.Write8(pc, 0x00) // NOP
		r.Record(s)
	}
	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].PC != 0 || entries[1].PC != 1 {
		t.Errorf("entries out of order: %+v", entries)
	}
}

func TestRecorderWrapsAtCapacity(t *testing.T) {
	r := NewRecorder(2)
	s := &cpu.State{}
	for pc := uint16(0); pc < 3; pc++ {
		s.PC = pc
		s.Mem.Write8(pc, 0x00)
		r.Record(s)
	}
	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].PC != 1 || entries[1].PC != 2 {
		t.Errorf("entries = %+v, want PC 1 then 2 (oldest dropped)", entries)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}
