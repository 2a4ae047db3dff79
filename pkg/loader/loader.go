// Package loader loads raw 8080 ROM images into memory and applies the
// fixed patch tables needed to run classic test ROMs and the Space
// Invaders arcade ROM set under this emulator rather than on real
// hardware.
package loader

import (
	"fmt"
	"io"

	"github.com/oisee/go-i8080/pkg/mem"
)

// Load reads all of r into m starting at offset, returning the number of
// bytes written. It does not clear the rest of memory. An image that would
// extend past 0xFFFF is an error, and nothing is written.
func Load(m *mem.Image, r io.Reader, offset uint16) (int, error) {
	buf := make([]byte, mem.Size-int(offset))
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return n, fmt.Errorf("loader: read ROM image: %w", err)
	}
	if err == nil {
		var extra [1]byte
		if _, xerr := io.ReadFull(r, extra[:]); xerr == nil {
			return 0, fmt.Errorf("loader: ROM image at %#04x extends past 0xFFFF", offset)
		}
	}
	for i := 0; i < n; i++ {
		m.Write8(offset+uint16(i), buf[i])
	}
	return n, nil
}

// Patch is a single byte override applied after loading, used to work
// around a ROM's assumptions about hardware the interpreter doesn't model
// (the disk-boot sequence cpudiag.bin expects, for instance).
type Patch struct {
	Addr uint16
	Byte uint8
}

// CPUDiagPatches adapts the classic cpudiag.bin test ROM to run under this
// emulator instead of CP/M. The three bytes at 0x0000-0x0002 rewrite the
// reset vector into a JMP 0x0100, the ROM's actual load address. The byte
// at 0x0170 corrects a stack-initialization immediate the ROM assembled
// assuming BDOS occupies high memory (0x06 becomes 0x07). The three bytes
// at 0x059C-0x059E become a JMP 0x05C2 that skips over the ROM's DAA test;
// this is the same patch every 8080 emulator author applies to run this
// ROM outside of CP/M.
var CPUDiagPatches = []Patch{
	{Addr: 0x0000, Byte: 0xC3},
	{Addr: 0x0001, Byte: 0x00},
	{Addr: 0x0002, Byte: 0x01},
	{Addr: 0x0170, Byte: 0x07},
	{Addr: 0x059C, Byte: 0xC3},
	{Addr: 0x059D, Byte: 0xC2},
	{Addr: 0x059E, Byte: 0x05},
}

// ApplyPatches writes each Patch's byte into m.
func ApplyPatches(m *mem.Image, patches []Patch) {
	for _, p := range patches {
		m.Write8(p.Addr, p.Byte)
	}
}

// ROMLayout describes where one file of a multi-file ROM set loads in the
// address space, as arcade boards typically split their program ROM
// across several discrete chips.
type ROMLayout struct {
	Name   string
	Offset uint16
	Size   int
}

// InvadersROMLayout is the four-chip program ROM layout of the Space
// Invaders arcade board: invaders.h, invaders.g, invaders.f, invaders.e,
// loaded contiguously from 0x0000.
var InvadersROMLayout = []ROMLayout{
	{Name: "invaders.h", Offset: 0x0000, Size: 0x0800},
	{Name: "invaders.g", Offset: 0x0800, Size: 0x0800},
	{Name: "invaders.f", Offset: 0x1000, Size: 0x0800},
	{Name: "invaders.e", Offset: 0x1800, Size: 0x0800},
}
