// Package snapshot saves and restores a complete cpu.State so a debugging
// session can pause and resume execution exactly where it left off.
package snapshot

import (
	"encoding/gob"
	"os"

	"github.com/oisee/go-i8080/pkg/cpu"
	"github.com/oisee/go-i8080/pkg/mem"
)

// Snapshot is the gob-serializable subset of cpu.State: everything except
// Hook and Bus, which are host-installed values (a function and an
// interface) that cannot cross a process boundary. Restore leaves both as
// they are on the target State; the caller installs them if it needs them.
type Snapshot struct {
	A, B, C, D, E, H, L uint8
	F                   cpu.Flags
	SP, PC              uint16
	IntEnable           bool
	Mem                 mem64K
}

// mem64K mirrors mem.Image's layout as a plain array so gob doesn't need to
// know about the mem package's named type.
type mem64K [65536]byte

// Take captures s into a Snapshot.
func Take(s *cpu.State) *Snapshot {
	return &Snapshot{
		A: s.A, B: s.B, C: s.C, D: s.D, E: s.E, H: s.H, L: s.L,
		F:         s.F,
		SP:        s.SP,
		PC:        s.PC,
		IntEnable: s.IntEnable,
		Mem:       mem64K(s.Mem),
	}
}

// Restore writes Snapshot's fields into s, overwriting its registers and
// memory image. s.Hook and s.Bus are left untouched.
func (snap *Snapshot) Restore(s *cpu.State) {
	s.A, s.B, s.C, s.D, s.E, s.H, s.L = snap.A, snap.B, snap.C, snap.D, snap.E, snap.H, snap.L
	s.F = snap.F
	s.SP = snap.SP
	s.PC = snap.PC
	s.IntEnable = snap.IntEnable
	s.Mem = mem.Image(snap.Mem)
}

// Save writes snap to path as gob.
func Save(path string, snap *Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(snap)
}

// Load reads a Snapshot previously written by Save.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var snap Snapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
