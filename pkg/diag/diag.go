// Package diag implements the CP/M BDOS diagnostic hook used by classic
// 8080 test ROMs such as cpudiag.bin: a CallObserver that intercepts calls
// to address 0x0005 and emulates just enough of the BDOS console-output
// functions (2 and 9) to run those ROMs without a real CP/M underneath
// them. Calls to address 0x0000 signal a clean test-program exit.
package diag

import (
	"fmt"
	"io"

	"github.com/oisee/go-i8080/pkg/cpu"
)

// bdosEntry is the fixed CP/M BDOS call address test ROMs target.
const bdosEntry = 0x0005

// warmBoot is the CP/M warm-boot vector; test ROMs CALL it to terminate.
const warmBoot = 0x0000

// fcbStringOffset is the offset from DE to the actual message bytes for
// function 9. cpudiag.bin sets DE to the start of a CP/M FCB-shaped buffer
// rather than directly at the string; the three bytes in between are part
// of that convention, not part of the message.
const fcbStringOffset = 3

// BDOS returns a cpu.CallObserver implementing the subset of the CP/M BDOS
// console functions that cpudiag-style test ROMs rely on. Function 9 prints
// the '$'-terminated string at (DE)+3, followed by a newline. Function 2
// does not print register E; cpudiag.bin never supplies a real character
// there, so the hook emits a fixed notice instead, matching the behavior
// the reference diagnostic driver relies on. Output goes to w. Any other
// target is passed through unhandled so the interpreter performs its
// normal CALL.
func BDOS(w io.Writer) cpu.CallObserver {
	return func(s *cpu.State, target uint16) cpu.CallAction {
		switch target {
		case warmBoot:
			return cpu.CallExit
		case bdosEntry:
			switch s.C {
			case 9:
				printString(w, s)
				fmt.Fprintln(w)
			case 2:
				fmt.Fprintln(w, "Print routine called")
			}
			return cpu.CallHandled
		default:
			return cpu.CallNormal
		}
	}
}

// printString writes the '$'-terminated string at (DE)+3.
func printString(w io.Writer, s *cpu.State) {
	addr := s.GetDE() + fcbStringOffset
	for {
		c := s.Mem.Read8(addr)
		if c == '$' {
			return
		}
		fmt.Fprintf(w, "%c", c)
		addr++
	}
}
