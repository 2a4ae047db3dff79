// Package trace records a bounded, thread-safe history of executed
// instructions, so a driver can dump "last N instructions" on an
// unimplemented-opcode error or a crash without the core itself knowing
// anything about logging.
package trace

import (
	"fmt"
	"sync"

	"github.com/oisee/go-i8080/pkg/cpu"
	"github.com/oisee/go-i8080/pkg/disasm"
)

// Entry is one recorded step: the PC it executed from, its disassembly,
// and the register file immediately before execution.
type Entry struct {
	PC   uint16
	Text string
	A    uint8
	BC   uint16
	DE   uint16
	HL   uint16
	SP   uint16
}

func (e Entry) String() string {
	return fmt.Sprintf("%04X  %-16s  A=%02X BC=%04X DE=%04X HL=%04X SP=%04X",
		e.PC, e.Text, e.A, e.BC, e.DE, e.HL, e.SP)
}

// Recorder is a fixed-capacity ring buffer of Entry, safe for concurrent
// use by a driver goroutine and an inspecting goroutine (a REPL command, a
// signal handler) at once.
type Recorder struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry
	next     int
	full     bool
}

// NewRecorder creates a Recorder holding at most capacity entries; once
// full, each Record overwrites the oldest entry.
func NewRecorder(capacity int) *Recorder {
	return &Recorder{capacity: capacity, entries: make([]Entry, capacity)}
}

// Record captures s's state before executing the instruction at s.PC.
func (r *Recorder) Record(s *cpu.State) {
	line := disasm.One(&s.Mem, s.PC)
	entry := Entry{
		PC:   s.PC,
		Text: line.Text,
		A:    s.A,
		BC:   s.GetBC(),
		DE:   s.GetDE(),
		HL:   s.GetHL(),
		SP:   s.SP,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[r.next] = entry
	r.next = (r.next + 1) % r.capacity
	if r.next == 0 {
		r.full = true
	}
}

// Entries returns a copy of all recorded entries in execution order,
// oldest first.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.full {
		out := make([]Entry, r.next)
		copy(out, r.entries[:r.next])
		return out
	}
	out := make([]Entry, r.capacity)
	n := copy(out, r.entries[r.next:])
	copy(out[n:], r.entries[:r.next])
	return out
}

// Len returns the number of entries currently held.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.full {
		return r.capacity
	}
	return r.next
}
