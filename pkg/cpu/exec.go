package cpu

import "fmt"

// Outcome reports what Step did, distinguishing ordinary progress from the
// two independent ways execution can stop cleanly: the processor halting
// itself (HLT) and a host observer asking to exit (the CP/M diagnostic
// hook's CALL 0 convention). Neither is an error.
type Outcome int

const (
	// Continued means Step executed one instruction and PC now points at
	// the next one.
	Continued Outcome = iota
	// Halted means Step executed HLT.
	Halted
	// Exited means a CallObserver returned CallExit.
	Exited
)

// UnimplementedError reports that Step does not decode the opcode at PC.
// Step returns this rather than panicking; the driver decides what to do.
type UnimplementedError struct {
	Op uint8
	PC uint16
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("unimplemented opcode %#02x at %#04x", e.Op, e.PC)
}

// Step executes exactly one instruction starting at s.PC and reports what
// happened. It never aborts internally: an unrecognized opcode yields a
// non-nil *UnimplementedError with PC left unmodified, rather than a panic.
func Step(s *State) (Outcome, error) {
	op := s.Mem.Read8(s.PC)
	pc := s.PC
	s.PC++

	switch op {
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD: // NOP and the twelve unofficial NOP/JMP/RET/CALL aliases
		// no-op

	// MOV r,r' (0x40-0x7F except 0x76 HLT)
	case 0x76:
		return Halted, nil

	case 0x40:
	case 0x41:
		s.B = s.C
	case 0x42:
		s.B = s.D
	case 0x43:
		s.B = s.E
	case 0x44:
		s.B = s.H
	case 0x45:
		s.B = s.L
	case 0x46:
		s.B = s.M()
	case 0x47:
		s.B = s.A
	case 0x48:
		s.C = s.B
	case 0x49:
	case 0x4A:
		s.C = s.D
	case 0x4B:
		s.C = s.E
	case 0x4C:
		s.C = s.H
	case 0x4D:
		s.C = s.L
	case 0x4E:
		s.C = s.M()
	case 0x4F:
		s.C = s.A
	case 0x50:
		s.D = s.B
	case 0x51:
		s.D = s.C
	case 0x52:
	case 0x53:
		s.D = s.E
	case 0x54:
		s.D = s.H
	case 0x55:
		s.D = s.L
	case 0x56:
		s.D = s.M()
	case 0x57:
		s.D = s.A
	case 0x58:
		s.E = s.B
	case 0x59:
		s.E = s.C
	case 0x5A:
		s.E = s.D
	case 0x5B:
	case 0x5C:
		s.E = s.H
	case 0x5D:
		s.E = s.L
	case 0x5E:
		s.E = s.M()
	case 0x5F:
		s.E = s.A
	case 0x60:
		s.H = s.B
	case 0x61:
		s.H = s.C
	case 0x62:
		s.H = s.D
	case 0x63:
		s.H = s.E
	case 0x64:
	case 0x65:
		s.H = s.L
	case 0x66:
		s.H = s.M()
	case 0x67:
		s.H = s.A
	case 0x68:
		s.L = s.B
	case 0x69:
		s.L = s.C
	case 0x6A:
		s.L = s.D
	case 0x6B:
		s.L = s.E
	case 0x6C:
		s.L = s.H
	case 0x6D:
	case 0x6E:
		s.L = s.M()
	case 0x6F:
		s.L = s.A
	case 0x70:
		s.SetM(s.B)
	case 0x71:
		s.SetM(s.C)
	case 0x72:
		s.SetM(s.D)
	case 0x73:
		s.SetM(s.E)
	case 0x74:
		s.SetM(s.H)
	case 0x75:
		s.SetM(s.L)
	case 0x77:
		s.SetM(s.A)
	case 0x78:
		s.A = s.B
	case 0x79:
		s.A = s.C
	case 0x7A:
		s.A = s.D
	case 0x7B:
		s.A = s.E
	case 0x7C:
		s.A = s.H
	case 0x7D:
		s.A = s.L
	case 0x7E:
		s.A = s.M()
	case 0x7F:

	// MVI r,d8
	case 0x06:
		s.B = s.fetch8()
	case 0x0E:
		s.C = s.fetch8()
	case 0x16:
		s.D = s.fetch8()
	case 0x1E:
		s.E = s.fetch8()
	case 0x26:
		s.H = s.fetch8()
	case 0x2E:
		s.L = s.fetch8()
	case 0x36:
		s.SetM(s.fetch8())
	case 0x3E:
		s.A = s.fetch8()

	// LXI rp,d16
	case 0x01:
		s.SetBC(s.fetch16())
	case 0x11:
		s.SetDE(s.fetch16())
	case 0x21:
		s.SetHL(s.fetch16())
	case 0x31:
		s.SP = s.fetch16()

	// LDA/STA/LHLD/SHLD
	case 0x3A:
		s.A = s.Mem.Read8(s.fetch16())
	case 0x32:
		s.Mem.Write8(s.fetch16(), s.A)
	case 0x2A:
		s.SetHL(s.Mem.Read16(s.fetch16()))
	case 0x22:
		s.Mem.Write16(s.fetch16(), s.GetHL())

	// LDAX/STAX
	case 0x0A:
		s.A = s.Mem.Read8(s.GetBC())
	case 0x1A:
		s.A = s.Mem.Read8(s.GetDE())
	case 0x02:
		s.Mem.Write8(s.GetBC(), s.A)
	case 0x12:
		s.Mem.Write8(s.GetDE(), s.A)

	// XCHG, XTHL, SPHL, PCHL
	case 0xEB:
		h, d := s.GetHL(), s.GetDE()
		s.SetHL(d)
		s.SetDE(h)
	case 0xE3:
		v := s.Mem.Read16(s.SP)
		s.Mem.Write16(s.SP, s.GetHL())
		s.SetHL(v)
	case 0xF9:
		s.SP = s.GetHL()
	case 0xE9:
		s.PC = s.GetHL()

	// INX/DCX
	case 0x03:
		s.SetBC(s.GetBC() + 1)
	case 0x13:
		s.SetDE(s.GetDE() + 1)
	case 0x23:
		s.SetHL(s.GetHL() + 1)
	case 0x33:
		s.SP++
	case 0x0B:
		s.SetBC(s.GetBC() - 1)
	case 0x1B:
		s.SetDE(s.GetDE() - 1)
	case 0x2B:
		s.SetHL(s.GetHL() - 1)
	case 0x3B:
		s.SP--

	// DAD rp (16-bit add into HL, sets CY only)
	case 0x09:
		s.execDad(s.GetBC())
	case 0x19:
		s.execDad(s.GetDE())
	case 0x29:
		s.execDad(s.GetHL())
	case 0x39:
		s.execDad(s.SP)

	// INR/DCR r
	case 0x04:
		s.B = s.execInr(s.B)
	case 0x0C:
		s.C = s.execInr(s.C)
	case 0x14:
		s.D = s.execInr(s.D)
	case 0x1C:
		s.E = s.execInr(s.E)
	case 0x24:
		s.H = s.execInr(s.H)
	case 0x2C:
		s.L = s.execInr(s.L)
	case 0x34:
		s.SetM(s.execInr(s.M()))
	case 0x3C:
		s.A = s.execInr(s.A)
	case 0x05:
		s.B = s.execDcr(s.B)
	case 0x0D:
		s.C = s.execDcr(s.C)
	case 0x15:
		s.D = s.execDcr(s.D)
	case 0x1D:
		s.E = s.execDcr(s.E)
	case 0x25:
		s.H = s.execDcr(s.H)
	case 0x2D:
		s.L = s.execDcr(s.L)
	case 0x35:
		s.SetM(s.execDcr(s.M()))
	case 0x3D:
		s.A = s.execDcr(s.A)

	// ALU A,r / A,M / A,d8
	case 0x80:
		s.execAdd(s.B, 0)
	case 0x81:
		s.execAdd(s.C, 0)
	case 0x82:
		s.execAdd(s.D, 0)
	case 0x83:
		s.execAdd(s.E, 0)
	case 0x84:
		s.execAdd(s.H, 0)
	case 0x85:
		s.execAdd(s.L, 0)
	case 0x86:
		s.execAdd(s.M(), 0)
	case 0x87:
		s.execAdd(s.A, 0)
	case 0xC6:
		s.execAdd(s.fetch8(), 0)

	case 0x88:
		s.execAdd(s.B, s.carryIn())
	case 0x89:
		s.execAdd(s.C, s.carryIn())
	case 0x8A:
		s.execAdd(s.D, s.carryIn())
	case 0x8B:
		s.execAdd(s.E, s.carryIn())
	case 0x8C:
		s.execAdd(s.H, s.carryIn())
	case 0x8D:
		s.execAdd(s.L, s.carryIn())
	case 0x8E:
		s.execAdd(s.M(), s.carryIn())
	case 0x8F:
		s.execAdd(s.A, s.carryIn())
	case 0xCE:
		s.execAdd(s.fetch8(), s.carryIn())

	case 0x90:
		s.execSub(s.B, 0)
	case 0x91:
		s.execSub(s.C, 0)
	case 0x92:
		s.execSub(s.D, 0)
	case 0x93:
		s.execSub(s.E, 0)
	case 0x94:
		s.execSub(s.H, 0)
	case 0x95:
		s.execSub(s.L, 0)
	case 0x96:
		s.execSub(s.M(), 0)
	case 0x97:
		s.execSub(s.A, 0)
	case 0xD6:
		s.execSub(s.fetch8(), 0)

	case 0x98:
		s.execSub(s.B, s.carryIn())
	case 0x99:
		s.execSub(s.C, s.carryIn())
	case 0x9A:
		s.execSub(s.D, s.carryIn())
	case 0x9B:
		s.execSub(s.E, s.carryIn())
	case 0x9C:
		s.execSub(s.H, s.carryIn())
	case 0x9D:
		s.execSub(s.L, s.carryIn())
	case 0x9E:
		s.execSub(s.M(), s.carryIn())
	case 0x9F:
		s.execSub(s.A, s.carryIn())
	case 0xDE:
		s.execSub(s.fetch8(), s.carryIn())

	case 0xA0:
		s.execAna(s.B)
	case 0xA1:
		s.execAna(s.C)
	case 0xA2:
		s.execAna(s.D)
	case 0xA3:
		s.execAna(s.E)
	case 0xA4:
		s.execAna(s.H)
	case 0xA5:
		s.execAna(s.L)
	case 0xA6:
		s.execAna(s.M())
	case 0xA7:
		s.execAna(s.A)
	case 0xE6:
		s.execAna(s.fetch8())

	case 0xA8:
		s.execXra(s.B)
	case 0xA9:
		s.execXra(s.C)
	case 0xAA:
		s.execXra(s.D)
	case 0xAB:
		s.execXra(s.E)
	case 0xAC:
		s.execXra(s.H)
	case 0xAD:
		s.execXra(s.L)
	case 0xAE:
		s.execXra(s.M())
	case 0xAF:
		s.execXra(s.A)
	case 0xEE:
		s.execXra(s.fetch8())

	case 0xB0:
		s.execOra(s.B)
	case 0xB1:
		s.execOra(s.C)
	case 0xB2:
		s.execOra(s.D)
	case 0xB3:
		s.execOra(s.E)
	case 0xB4:
		s.execOra(s.H)
	case 0xB5:
		s.execOra(s.L)
	case 0xB6:
		s.execOra(s.M())
	case 0xB7:
		s.execOra(s.A)
	case 0xF6:
		s.execOra(s.fetch8())

	case 0xB8:
		s.execCmp(s.B)
	case 0xB9:
		s.execCmp(s.C)
	case 0xBA:
		s.execCmp(s.D)
	case 0xBB:
		s.execCmp(s.E)
	case 0xBC:
		s.execCmp(s.H)
	case 0xBD:
		s.execCmp(s.L)
	case 0xBE:
		s.execCmp(s.M())
	case 0xBF:
		s.execCmp(s.A)
	case 0xFE:
		s.execCmp(s.fetch8())

	// Rotates, CMA, CMC, STC, DAA
	case 0x07:
		s.execRlc()
	case 0x0F:
		s.execRrc()
	case 0x17:
		s.execRal()
	case 0x1F:
		s.execRar()
	case 0x2F:
		s.A = ^s.A
	case 0x3F:
		s.F.CY = !s.F.CY
	case 0x37:
		s.F.CY = true
	case 0x27:
		s.execDaa()

	// Stack: PUSH/POP
	case 0xC5:
		s.push(s.GetBC())
	case 0xD5:
		s.push(s.GetDE())
	case 0xE5:
		s.push(s.GetHL())
	case 0xF5:
		s.push(s.GetPSW())
	case 0xC1:
		s.SetBC(s.pop())
	case 0xD1:
		s.SetDE(s.pop())
	case 0xE1:
		s.SetHL(s.pop())
	case 0xF1:
		s.SetPSW(s.pop())

	// Unconditional jump/call/return
	case 0xC3:
		s.PC = s.fetch16()
	case 0xC9:
		s.PC = s.pop()
	case 0xCD:
		target := s.fetch16()
		action := CallNormal
		if s.Hook != nil {
			action = s.Hook(s, target)
		}
		switch action {
		case CallExit:
			return Exited, nil
		case CallHandled:
			// observer fully handled the call; PC already advanced past operand
		default:
			s.push(s.PC)
			s.PC = target
		}

	// Conditional jump/call/return
	case 0xC2:
		s.jmpIf(!s.F.Z)
	case 0xCA:
		s.jmpIf(s.F.Z)
	case 0xD2:
		s.jmpIf(!s.F.CY)
	case 0xDA:
		s.jmpIf(s.F.CY)
	case 0xE2:
		s.jmpIf(!s.F.P)
	case 0xEA:
		s.jmpIf(s.F.P)
	case 0xF2:
		s.jmpIf(!s.F.S)
	case 0xFA:
		s.jmpIf(s.F.S)

	case 0xC4:
		s.callIf(!s.F.Z)
	case 0xCC:
		s.callIf(s.F.Z)
	case 0xD4:
		s.callIf(!s.F.CY)
	case 0xDC:
		s.callIf(s.F.CY)
	case 0xE4:
		s.callIf(!s.F.P)
	case 0xEC:
		s.callIf(s.F.P)
	case 0xF4:
		s.callIf(!s.F.S)
	case 0xFC:
		s.callIf(s.F.S)

	case 0xC0:
		s.retIf(!s.F.Z)
	case 0xC8:
		s.retIf(s.F.Z)
	case 0xD0:
		s.retIf(!s.F.CY)
	case 0xD8:
		s.retIf(s.F.CY)
	case 0xE0:
		s.retIf(!s.F.P)
	case 0xE8:
		s.retIf(s.F.P)
	case 0xF0:
		s.retIf(!s.F.S)
	case 0xF8:
		s.retIf(s.F.S)

	// RST n
	case 0xC7:
		s.rst(0x00)
	case 0xCF:
		s.rst(0x08)
	case 0xD7:
		s.rst(0x10)
	case 0xDF:
		s.rst(0x18)
	case 0xE7:
		s.rst(0x20)
	case 0xEF:
		s.rst(0x28)
	case 0xF7:
		s.rst(0x30)
	case 0xFF:
		s.rst(0x38)

	// Interrupt enable/disable
	case 0xFB:
		s.IntEnable = true
	case 0xF3:
		s.IntEnable = false

	// IN/OUT
	case 0xDB:
		s.A = s.bus().In(s.fetch8())
	case 0xD3:
		s.bus().Out(s.fetch8(), s.A)

	default:
		s.PC = pc
		return Continued, &UnimplementedError{Op: op, PC: pc}
	}

	return Continued, nil
}

func (s *State) fetch8() uint8 {
	v := s.Mem.Read8(s.PC)
	s.PC++
	return v
}

func (s *State) fetch16() uint16 {
	v := s.Mem.Read16(s.PC)
	s.PC += 2
	return v
}

func (s *State) push(v uint16) {
	s.SP -= 2
	s.Mem.Write16(s.SP, v)
}

func (s *State) pop() uint16 {
	v := s.Mem.Read16(s.SP)
	s.SP += 2
	return v
}

func (s *State) carryIn() uint8 {
	if s.F.CY {
		return 1
	}
	return 0
}

func (s *State) jmpIf(cond bool) {
	target := s.fetch16()
	if cond {
		s.PC = target
	}
}

func (s *State) callIf(cond bool) {
	target := s.fetch16()
	if cond {
		s.push(s.PC)
		s.PC = target
	}
}

func (s *State) retIf(cond bool) {
	if cond {
		s.PC = s.pop()
	}
}

func (s *State) rst(addr uint16) {
	s.push(s.PC)
	s.PC = addr
}

// execAdd implements ADD/ADC: A = A + operand + cin, setting all five flags.
func (s *State) execAdd(operand, cin uint8) {
	a := s.A
	sum16 := uint16(a) + uint16(operand) + uint16(cin)
	result := uint8(sum16)
	s.F.AC = auxCarryAdd(a, operand, cin)
	s.F.CY = sum16 > 0xFF
	setZSP(&s.F, result)
	s.A = result
}

// execSub implements SUB/SBB: A = A - operand - bin. It and execCmp share
// subCore, which writes the result back to A only when store is true
// (SUB/SBB); execCmp calls subCore with store=false.
func (s *State) execSub(operand, bin uint8) {
	s.subCore(operand, bin, true)
}

// execCmp implements CMP: same flags as SUB, result discarded.
func (s *State) execCmp(operand uint8) {
	s.subCore(operand, 0, false)
}

func (s *State) subCore(operand, bin uint8, store bool) {
	a := s.A
	diff16 := uint16(a) - uint16(operand) - uint16(bin)
	result := uint8(diff16)
	s.F.AC = auxCarrySub(a, operand, bin)
	s.F.CY = diff16 > 0xFF // borrow shows up as wraparound in the 16-bit subtraction
	setZSP(&s.F, result)
	if store {
		s.A = result
	}
}

func (s *State) execAna(operand uint8) {
	// The 8080 sets AC from the OR of bit 3 of the two operands; widely
	// documented and matched here rather than always clearing it.
	s.F.AC = (s.A|operand)&0x08 != 0
	s.A &= operand
	s.F.CY = false
	setZSP(&s.F, s.A)
}

func (s *State) execXra(operand uint8) {
	s.A ^= operand
	s.F.CY = false
	s.F.AC = false
	setZSP(&s.F, s.A)
}

func (s *State) execOra(operand uint8) {
	s.A |= operand
	s.F.CY = false
	s.F.AC = false
	setZSP(&s.F, s.A)
}

// execInr implements INR r: increments operand, sets Z/S/P/AC, leaves CY
// untouched.
func (s *State) execInr(v uint8) uint8 {
	result := v + 1
	s.F.AC = auxCarryAdd(v, 1, 0)
	setZSP(&s.F, result)
	return result
}

// execDcr implements DCR r: decrements operand, sets Z/S/P/AC, leaves CY
// untouched.
func (s *State) execDcr(v uint8) uint8 {
	result := v - 1
	s.F.AC = auxCarrySub(v, 1, 0)
	setZSP(&s.F, result)
	return result
}

// execDad adds a 16-bit value into HL. Only CY is affected.
func (s *State) execDad(v uint16) {
	hl := s.GetHL()
	sum := uint32(hl) + uint32(v)
	s.F.CY = sum > 0xFFFF
	s.SetHL(uint16(sum))
}

func (s *State) execRlc() {
	carry := s.A&0x80 != 0
	s.A = s.A<<1 | s.A>>7
	s.F.CY = carry
}

func (s *State) execRrc() {
	carry := s.A&0x01 != 0
	s.A = s.A>>1 | s.A<<7
	s.F.CY = carry
}

func (s *State) execRal() {
	carry := s.A&0x80 != 0
	cin := s.carryIn()
	s.A = s.A<<1 | cin
	s.F.CY = carry
}

func (s *State) execRar() {
	carry := s.A&0x01 != 0
	cin := s.carryIn()
	s.A = s.A>>1 | cin<<7
	s.F.CY = carry
}

// execDaa implements decimal adjust: a two-phase correction of A following
// a BCD add. The low-nibble phase adds 0x06 and updates AC; the high-nibble
// phase adds 0x60 and sets CY. CY is sticky: an incoming CY both triggers
// the high-nibble phase and stays set.
func (s *State) execDaa() {
	cy := s.F.CY
	a := s.A

	if a&0x0F > 9 || s.F.AC {
		s.F.AC = auxCarryAdd(a, 0x06, 0)
		a += 0x06
	}
	if a>>4 > 9 || cy {
		a += 0x60
		cy = true
	}

	s.A = a
	s.F.CY = cy
	setZSP(&s.F, a)
}
