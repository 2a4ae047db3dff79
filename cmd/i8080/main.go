package main

import (
	"fmt"
	"os"

	"github.com/oisee/go-i8080/pkg/cpu"
	"github.com/oisee/go-i8080/pkg/diag"
	"github.com/oisee/go-i8080/pkg/disasm"
	"github.com/oisee/go-i8080/pkg/loader"
	"github.com/oisee/go-i8080/pkg/snapshot"
	"github.com/oisee/go-i8080/pkg/trace"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "i8080",
		Short: "Intel 8080 interpreter — run, disassemble, and diagnose 8080 binaries",
	}

	// run command
	var runOrigin uint16
	var runStart uint16
	var cpudiag bool
	var traceLen int
	var saveOnExit string

	runCmd := &cobra.Command{
		Use:   "run [rom]",
		Short: "Load a binary and run it until it halts, exits, or hits an unimplemented opcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open ROM: %w", err)
			}
			defer f.Close()

			s := &cpu.State{}
			if _, err := loader.Load(&s.Mem, f, runOrigin); err != nil {
				return err
			}
			if cpudiag {
				loader.ApplyPatches(&s.Mem, loader.CPUDiagPatches)
			}
			s.PC = runStart
			s.Hook = diag.BDOS(os.Stdout)

			rec := trace.NewRecorder(traceLen)
			for {
				rec.Record(s)
				outcome, err := cpu.Step(s)
				if err != nil {
					dumpTrace(rec)
					return err
				}
				if outcome != cpu.Continued {
					fmt.Fprintf(os.Stderr, "\n[%s at PC=%#04x]\n", outcomeName(outcome), s.PC)
					break
				}
			}

			if saveOnExit != "" {
				if err := snapshot.Save(saveOnExit, snapshot.Take(s)); err != nil {
					return fmt.Errorf("save snapshot: %w", err)
				}
			}
			return nil
		},
	}
	runCmd.Flags().Uint16Var(&runOrigin, "origin", 0x0100, "Load address for the ROM image")
	runCmd.Flags().Uint16Var(&runStart, "start", 0x0100, "Initial PC")
	runCmd.Flags().BoolVar(&cpudiag, "cpudiag", false, "Apply the cpudiag.bin compatibility patches")
	runCmd.Flags().IntVar(&traceLen, "trace-len", 32, "Number of most-recent instructions to show on error")
	runCmd.Flags().StringVar(&saveOnExit, "save", "", "Save a snapshot to this path on clean exit")

	// disasm command
	var disasmOrigin uint16

	disasmCmd := &cobra.Command{
		Use:   "disasm [rom]",
		Short: "Print a disassembly listing of a binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read ROM: %w", err)
			}
			var s cpu.State
			for i, b := range data {
				s.Mem.Write8(disasmOrigin+uint16(i), b)
			}
			end := disasmOrigin + uint16(len(data))
			for _, line := range disasm.Listing(&s.Mem, disasmOrigin, end) {
				fmt.Printf("%04X  %s\n", line.Addr, line.Text)
			}
			return nil
		},
	}
	disasmCmd.Flags().Uint16Var(&disasmOrigin, "origin", 0x0100, "Address the first byte is assumed to load at")

	// diag command: convenience wrapper for cpudiag.bin-style binaries
	diagCmd := &cobra.Command{
		Use:   "diag [rom]",
		Short: "Run a CP/M-style diagnostic ROM (e.g. cpudiag.bin) with the BDOS hook and patches applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open ROM: %w", err)
			}
			defer f.Close()

			s := &cpu.State{}
			if _, err := loader.Load(&s.Mem, f, 0x0100); err != nil {
				return err
			}
			loader.ApplyPatches(&s.Mem, loader.CPUDiagPatches)
			s.PC = 0x0100
			s.Hook = diag.BDOS(os.Stdout)

			rec := trace.NewRecorder(32)
			for {
				rec.Record(s)
				outcome, err := cpu.Step(s)
				if err != nil {
					dumpTrace(rec)
					return err
				}
				if outcome != cpu.Continued {
					break
				}
			}
			return nil
		},
	}

	// invaders command: load the four-chip Space Invaders program ROM set
	var invadersTraceLen int
	var invadersSave string

	invadersCmd := &cobra.Command{
		Use:   "invaders [dir]",
		Short: "Load a Space Invaders ROM set (invaders.h/g/f/e) from a directory and run it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			s := &cpu.State{}
			for _, layout := range loader.InvadersROMLayout {
				path := dir + string(os.PathSeparator) + layout.Name
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("open %s: %w", layout.Name, err)
				}
				n, err := loader.Load(&s.Mem, f, layout.Offset)
				f.Close()
				if err != nil {
					return fmt.Errorf("load %s: %w", layout.Name, err)
				}
				if n != layout.Size {
					return fmt.Errorf("load %s: read %d bytes, want %d", layout.Name, n, layout.Size)
				}
			}
			s.PC = 0x0000

			rec := trace.NewRecorder(invadersTraceLen)
			for {
				rec.Record(s)
				outcome, err := cpu.Step(s)
				if err != nil {
					dumpTrace(rec)
					return err
				}
				if outcome != cpu.Continued {
					fmt.Fprintf(os.Stderr, "\n[%s at PC=%#04x]\n", outcomeName(outcome), s.PC)
					break
				}
			}

			if invadersSave != "" {
				if err := snapshot.Save(invadersSave, snapshot.Take(s)); err != nil {
					return fmt.Errorf("save snapshot: %w", err)
				}
			}
			return nil
		},
	}
	invadersCmd.Flags().IntVar(&invadersTraceLen, "trace-len", 32, "Number of most-recent instructions to show on error")
	invadersCmd.Flags().StringVar(&invadersSave, "save", "", "Save a snapshot to this path on clean exit")

	// snapshot command: inspect a saved snapshot
	snapshotCmd := &cobra.Command{
		Use:   "snapshot [file]",
		Short: "Print the register state stored in a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := snapshot.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("PC=%04X SP=%04X A=%02X BC=%02X%02X DE=%02X%02X HL=%02X%02X\n",
				snap.PC, snap.SP, snap.A, snap.B, snap.C, snap.D, snap.E, snap.H, snap.L)
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, disasmCmd, diagCmd, invadersCmd, snapshotCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func outcomeName(o cpu.Outcome) string {
	switch o {
	case cpu.Halted:
		return "halted"
	case cpu.Exited:
		return "exited"
	default:
		return "continued"
	}
}

func dumpTrace(rec *trace.Recorder) {
	fmt.Fprintln(os.Stderr, "--- trace ---")
	for _, e := range rec.Entries() {
		fmt.Fprintln(os.Stderr, e.String())
	}
}
