// Package disasm renders 8080 machine code as text. It is a pure, read-only
// second view over the same opcode catalog the interpreter dispatches on:
// disassembly never advances a live CPU, it only walks a MemoryReader.
package disasm

import (
	"fmt"
	"strings"

	"github.com/oisee/go-i8080/pkg/inst"
)

// MemoryReader is the minimal read surface disasm needs. *mem.Image
// satisfies it.
type MemoryReader interface {
	Read8(addr uint16) uint8
}

// Line is one disassembled instruction: the address it starts at, its
// rendered text with any operand bytes substituted in, and its length in
// bytes.
type Line struct {
	Addr uint16
	Text string
	Len  int
}

// One decodes the instruction at addr and returns its rendered Line. The
// caller advances by the returned Len to reach the next instruction.
func One(m MemoryReader, addr uint16) Line {
	op := m.Read8(addr)
	info := inst.Catalog[op]
	text := info.Mnemonic

	switch info.Length {
	case 2:
		d8 := m.Read8(addr + 1)
		text = substOperand(text, fmt.Sprintf("$%02X", d8))
	case 3:
		lo := m.Read8(addr + 1)
		hi := m.Read8(addr + 2)
		text = substOperand(text, fmt.Sprintf("$%02X%02X", hi, lo))
	}

	return Line{Addr: addr, Text: text, Len: info.Length}
}

// substOperand replaces a mnemonic's "d8", "d16" or "a16" placeholder with
// its resolved operand text. Mnemonics with no placeholder are returned as-is.
func substOperand(mnemonic, operand string) string {
	if strings.Contains(mnemonic, "d8") {
		return strings.Replace(mnemonic, "d8", operand, 1)
	}
	if strings.Contains(mnemonic, "d16") {
		return strings.Replace(mnemonic, "d16", operand, 1)
	}
	if strings.Contains(mnemonic, "a16") {
		return strings.Replace(mnemonic, "a16", operand, 1)
	}
	return mnemonic
}

// Listing walks addresses from start up to (not including) end, decoding
// one instruction at a time, and returns every Line produced. A listing
// that runs past end mid-instruction still includes that final line; it is
// not truncated.
func Listing(m MemoryReader, start, end uint16) []Line {
	var lines []Line
	addr := start
	for addr < end {
		line := One(m, addr)
		lines = append(lines, line)
		addr += uint16(line.Len)
		if line.Len == 0 {
			break
		}
	}
	return lines
}
