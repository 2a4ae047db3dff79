package diag

import (
	"bytes"
	"testing"

	"github.com/oisee/go-i8080/pkg/cpu"
)

func TestBDOSPrintString(t *testing.T) {
	var buf bytes.Buffer
	s := &cpu.State{}
	s.Hook = BDOS(&buf)
	// DE points at the FCB-shaped buffer; the message starts 3 bytes in.
	msg := "HI$"
	for i, c := range []byte(msg) {
		s.Mem.Write8(uint16(0x2000+fcbStringOffset+i), c)
	}
	s.SetDE(0x2000)
	s.C = 9

	action := s.Hook(s, bdosEntry)
	if action != cpu.CallHandled {
		t.Fatalf("action = %v, want CallHandled", action)
	}
	if buf.String() != "HI\n" {
		t.Errorf("output = %q, want %q", buf.String(), "HI\n")
	}
}

func TestBDOSPrintCharEmitsFixedNotice(t *testing.T) {
	var buf bytes.Buffer
	s := &cpu.State{}
	s.Hook = BDOS(&buf)
	s.C = 2

	s.Hook(s, bdosEntry)
	if buf.String() != "Print routine called\n" {
		t.Errorf("output = %q, want %q", buf.String(), "Print routine called\n")
	}
}

func TestBDOSWarmBootExits(t *testing.T) {
	var buf bytes.Buffer
	s := &cpu.State{}
	s.Hook = BDOS(&buf)

	if action := s.Hook(s, warmBoot); action != cpu.CallExit {
		t.Errorf("action = %v, want CallExit", action)
	}
}

func TestBDOSPassesThroughOtherTargets(t *testing.T) {
	var buf bytes.Buffer
	s := &cpu.State{}
	s.Hook = BDOS(&buf)

	if action := s.Hook(s, 0x1234); action != cpu.CallNormal {
		t.Errorf("action = %v, want CallNormal", action)
	}
}
