// Package cpu implements the Intel 8080 processor state and its
// fetch-decode-execute interpreter.
package cpu

import "github.com/oisee/go-i8080/pkg/mem"

// CallAction tells Step what the pre-CALL observer decided for an
// unconditional CALL.
type CallAction int

const (
	// CallNormal performs the ordinary CALL push-and-jump.
	CallNormal CallAction = iota
	// CallHandled means the observer fully handled the call (e.g. a CP/M
	// BDOS print); Step neither pushes nor jumps.
	CallHandled
	// CallExit means the observer wants the driver to terminate.
	CallExit
)

// CallObserver is invoked before Step executes an unconditional CALL,
// letting a host (the CP/M diagnostic hook, for instance) intercept known
// addresses without the core knowing anything about CP/M. Step stays
// ignorant of the observer's semantics; see pkg/diag.
type CallObserver func(s *State, target uint16) CallAction

// PortBus is the host-provided handler for the 8080's two-port IN/OUT
// contract. The core treats the result of In as opaque and performs no
// interpretation of it.
type PortBus interface {
	In(port uint8) uint8
	Out(port uint8, value uint8)
}

// NullPortBus is a PortBus that answers every IN with 0 and discards every
// OUT. It is the bus a State uses when Bus is left nil, so hosts that never
// touch ports (cpudiag.bin, for instance) need no wiring.
type NullPortBus struct{}

// In always returns 0.
func (NullPortBus) In(port uint8) uint8 { return 0 }

// Out discards the write.
func (NullPortBus) Out(port uint8, value uint8) {}

// State is the complete Intel 8080 processor state: the eight 8-bit
// registers (A plus B,C,D,E,H,L, the F flag word folded into Flags), the two
// 16-bit registers SP and PC, the interrupt-enable latch, and the 64 KiB
// flat memory image. It is zero-initialized except Mem, which is already
// zero-filled by its array type.
type State struct {
	A, B, C, D, E, H, L uint8
	F                   Flags
	SP, PC              uint16
	IntEnable           bool
	Mem                 mem.Image

	// Hook, when non-nil, observes unconditional CALL targets before the
	// push-and-jump. The core never sets this itself.
	Hook CallObserver

	// Bus handles IN/OUT. A nil Bus behaves like NullPortBus.
	Bus PortBus
}

// bus returns s.Bus, substituting NullPortBus when none is installed.
func (s *State) bus() PortBus {
	if s.Bus == nil {
		return NullPortBus{}
	}
	return s.Bus
}

// GetBC returns the 16-bit view of register pair BC.
func (s *State) GetBC() uint16 { return uint16(s.B)<<8 | uint16(s.C) }

// SetBC distributes a 16-bit value across B (high) and C (low).
func (s *State) SetBC(v uint16) { s.B = uint8(v >> 8); s.C = uint8(v) }

// GetDE returns the 16-bit view of register pair DE.
func (s *State) GetDE() uint16 { return uint16(s.D)<<8 | uint16(s.E) }

// SetDE distributes a 16-bit value across D (high) and E (low).
func (s *State) SetDE(v uint16) { s.D = uint8(v >> 8); s.E = uint8(v) }

// GetHL returns the 16-bit view of register pair HL.
func (s *State) GetHL() uint16 { return uint16(s.H)<<8 | uint16(s.L) }

// SetHL distributes a 16-bit value across H (high) and L (low).
func (s *State) SetHL(v uint16) { s.H = uint8(v >> 8); s.L = uint8(v) }

// GetPSW returns the Program Status Word: A in the high byte, the packed
// flag byte in the low byte.
func (s *State) GetPSW() uint16 { return uint16(s.A)<<8 | uint16(packFlags(s.F)) }

// SetPSW loads A from the high byte and re-derives Flags from the low byte,
// masking away the architecturally fixed bits.
func (s *State) SetPSW(v uint16) {
	s.A = uint8(v >> 8)
	s.F = unpackFlags(uint8(v))
}

// M reads the pseudo-register "memory at HL".
func (s *State) M() uint8 { return s.Mem.Read8(s.GetHL()) }

// SetM writes the pseudo-register "memory at HL".
func (s *State) SetM(v uint8) { s.Mem.Write8(s.GetHL(), v) }
