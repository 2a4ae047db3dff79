// Package inst catalogs the Intel 8080's 256 opcodes by raw byte: mnemonic
// text and encoded length. The 8080 has no prefix bytes, so the catalog is
// keyed directly by the opcode byte.
package inst

// Info describes one opcode: its assembly mnemonic and its total length in
// bytes, including the opcode byte itself.
type Info struct {
	Mnemonic string
	Length   int
}

// Catalog maps every possible opcode byte to its Info. It is built from the
// Intel 8080 mnemonic table, correcting two transcription bugs present in
// the reference disassembler this package is grounded on: opcode 0x0E is
// MVI C (not the original's "MCI C" typo), and opcodes 0x27 (DAA) and 0xF7
// (RST 6) each print only their own mnemonic rather than falling through to
// print a second, unrelated one. The five unofficial opcodes 0xCB, 0xD9,
// 0xDD, 0xED, and 0xFD are cataloged as NOP: they are undocumented aliases
// of JMP/RET/CALL on real hardware, but the documented behavior this
// catalog follows treats every unofficial opcode as a 1-byte no-op.
var Catalog [256]Info

func init() {
	set := func(op uint8, mnemonic string, length int) {
		Catalog[op] = Info{Mnemonic: mnemonic, Length: length}
	}

	// 0x00-0x3F: NOP, LXI, STAX/LDAX, INX/DCX, INR/DCR, MVI, rotates, DAD,
	// LDA/STA/LHLD/SHLD, CMA/STC/CMC, DAA.
	set(0x00, "NOP", 1)
	set(0x01, "LXI B,d16", 3)
	set(0x02, "STAX B", 1)
	set(0x03, "INX B", 1)
	set(0x04, "INR B", 1)
	set(0x05, "DCR B", 1)
	set(0x06, "MVI B,d8", 2)
	set(0x07, "RLC", 1)
	set(0x08, "NOP", 1)
	set(0x09, "DAD B", 1)
	set(0x0A, "LDAX B", 1)
	set(0x0B, "DCX B", 1)
	set(0x0C, "INR C", 1)
	set(0x0D, "DCR C", 1)
	set(0x0E, "MVI C,d8", 2)
	set(0x0F, "RRC", 1)
	set(0x10, "NOP", 1)
	set(0x11, "LXI D,d16", 3)
	set(0x12, "STAX D", 1)
	set(0x13, "INX D", 1)
	set(0x14, "INR D", 1)
	set(0x15, "DCR D", 1)
	set(0x16, "MVI D,d8", 2)
	set(0x17, "RAL", 1)
	set(0x18, "NOP", 1)
	set(0x19, "DAD D", 1)
	set(0x1A, "LDAX D", 1)
	set(0x1B, "DCX D", 1)
	set(0x1C, "INR E", 1)
	set(0x1D, "DCR E", 1)
	set(0x1E, "MVI E,d8", 2)
	set(0x1F, "RAR", 1)
	set(0x20, "NOP", 1)
	set(0x21, "LXI H,d16", 3)
	set(0x22, "SHLD a16", 3)
	set(0x23, "INX H", 1)
	set(0x24, "INR H", 1)
	set(0x25, "DCR H", 1)
	set(0x26, "MVI H,d8", 2)
	set(0x27, "DAA", 1)
	set(0x28, "NOP", 1)
	set(0x29, "DAD H", 1)
	set(0x2A, "LHLD a16", 3)
	set(0x2B, "DCX H", 1)
	set(0x2C, "INR L", 1)
	set(0x2D, "DCR L", 1)
	set(0x2E, "MVI L,d8", 2)
	set(0x2F, "CMA", 1)
	set(0x30, "NOP", 1)
	set(0x31, "LXI SP,d16", 3)
	set(0x32, "STA a16", 3)
	set(0x33, "INX SP", 1)
	set(0x34, "INR M", 1)
	set(0x35, "DCR M", 1)
	set(0x36, "MVI M,d8", 2)
	set(0x37, "STC", 1)
	set(0x38, "NOP", 1)
	set(0x39, "DAD SP", 1)
	set(0x3A, "LDA a16", 3)
	set(0x3B, "DCX SP", 1)
	set(0x3C, "INR A", 1)
	set(0x3D, "DCR A", 1)
	set(0x3E, "MVI A,d8", 2)
	set(0x3F, "CMC", 1)

	// 0x40-0x7F: MOV r,r' (0x76 is HLT, not MOV M,M).
	regs := []string{"B", "C", "D", "E", "H", "L", "M", "A"}
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			op := uint8(0x40 + dst*8 + src)
			if op == 0x76 {
				set(op, "HLT", 1)
				continue
			}
			set(op, "MOV "+regs[dst]+","+regs[src], 1)
		}
	}

	// 0x80-0xBF: ALU A,r for ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP.
	alu := []string{"ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP"}
	for fam := 0; fam < 8; fam++ {
		for src := 0; src < 8; src++ {
			op := uint8(0x80 + fam*8 + src)
			set(op, alu[fam]+" "+regs[src], 1)
		}
	}

	// 0xC0-0xFF: conditional branches, stack ops, immediates, RST, I/O,
	// interrupt enable/disable, HL/SP transfers.
	set(0xC0, "RNZ", 1)
	set(0xC1, "POP B", 1)
	set(0xC2, "JNZ a16", 3)
	set(0xC3, "JMP a16", 3)
	set(0xC4, "CNZ a16", 3)
	set(0xC5, "PUSH B", 1)
	set(0xC6, "ADI d8", 2)
	set(0xC7, "RST 0", 1)
	set(0xC8, "RZ", 1)
	set(0xC9, "RET", 1)
	set(0xCA, "JZ a16", 3)
	set(0xCB, "NOP", 1)
	set(0xCC, "CZ a16", 3)
	set(0xCD, "CALL a16", 3)
	set(0xCE, "ACI d8", 2)
	set(0xCF, "RST 1", 1)
	set(0xD0, "RNC", 1)
	set(0xD1, "POP D", 1)
	set(0xD2, "JNC a16", 3)
	set(0xD3, "OUT d8", 2)
	set(0xD4, "CNC a16", 3)
	set(0xD5, "PUSH D", 1)
	set(0xD6, "SUI d8", 2)
	set(0xD7, "RST 2", 1)
	set(0xD8, "RC", 1)
	set(0xD9, "NOP", 1)
	set(0xDA, "JC a16", 3)
	set(0xDB, "IN d8", 2)
	set(0xDC, "CC a16", 3)
	set(0xDD, "NOP", 1)
	set(0xDE, "SBI d8", 2)
	set(0xDF, "RST 3", 1)
	set(0xE0, "RPO", 1)
	set(0xE1, "POP H", 1)
	set(0xE2, "JPO a16", 3)
	set(0xE3, "XTHL", 1)
	set(0xE4, "CPO a16", 3)
	set(0xE5, "PUSH H", 1)
	set(0xE6, "ANI d8", 2)
	set(0xE7, "RST 4", 1)
	set(0xE8, "RPE", 1)
	set(0xE9, "PCHL", 1)
	set(0xEA, "JPE a16", 3)
	set(0xEB, "XCHG", 1)
	set(0xEC, "CPE a16", 3)
	set(0xED, "NOP", 1)
	set(0xEE, "XRI d8", 2)
	set(0xEF, "RST 5", 1)
	set(0xF0, "RP", 1)
	set(0xF1, "POP PSW", 1)
	set(0xF2, "JP a16", 3)
	set(0xF3, "DI", 1)
	set(0xF4, "CP a16", 3)
	set(0xF5, "PUSH PSW", 1)
	set(0xF6, "ORI d8", 2)
	set(0xF7, "RST 6", 1)
	set(0xF8, "RM", 1)
	set(0xF9, "SPHL", 1)
	set(0xFA, "JM a16", 3)
	set(0xFB, "EI", 1)
	set(0xFC, "CM a16", 3)
	set(0xFD, "NOP", 1)
	set(0xFE, "CPI d8", 2)
	set(0xFF, "RST 7", 1)
}
