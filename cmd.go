package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jcorbin/fibr/internal/flushio"
	"github.com/jcorbin/fibr/internal/logio"
	"github.com/jcorbin/fibr/internal/panicerr"
)

// Version is the interpreter's startup banner version, matching the
// retrieved VERSION constant this rewrite tracks.
const Version = "6"

var (
	traceFlag   bool
	timeoutFlag time.Duration
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "fibr",
	Short: "fibr is a small stack-oriented expression language REPL",
	RunE:  runREPL,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fibr version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "fibr %s\n", Version)
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&traceFlag, "trace", false, "write a disassembly trace of every dispatched opcode to stderr")
	rootCmd.Flags().DurationVar(&timeoutFlag, "timeout", 0, "abort the session if it runs longer than this (0 disables)")
	rootCmd.Flags().StringVar(&configFlag, "config", "", "TOML file overriding the interpreter's capacity limits")
	rootCmd.AddCommand(versionCmd)
}

// runREPL wires one VM to stdin/stdout and drives it to completion (or to
// a timeout, or to a recovered fatal assertion).
func runREPL(cmd *cobra.Command, args []string) error {
	limits, err := LoadLimits(configFlag)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	vm := New(limits)

	if traceFlag {
		log := &logio.Logger{}
		log.SetOutput(os.Stderr)
		vm.SetTrace(&logio.Writer{Logf: log.Leveledf("trace")})
		vm.debug = true
	}

	out := flushio.NewWriteFlusher(cmd.OutOrStdout())
	fmt.Fprintf(out, "fibr %s\n\n", Version)
	out.Flush()

	run := func() error {
		return panicerr.Recover("fibr", func() error {
			vm.RunREPL(newReader("repl", cmd.InOrStdin()), out)
			return nil
		})
	}

	if timeoutFlag <= 0 {
		return reportFatal(run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeoutFlag)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- run() }()

	select {
	case err := <-done:
		return reportFatal(err)
	case <-ctx.Done():
		err := fmt.Errorf("fibr: timed out after %v", timeoutFlag)
		reportFatal(err)
		return err
	}
}

// reportFatal colorizes a recovered capacity/invariant panic (or a
// session timeout) on stderr. Ordinary reader/compiler/eval errors never
// reach here -- RunREPL already buffers and prints those to out itself.
func reportFatal(err error) error {
	if err == nil {
		return nil
	}
	color.New(color.FgRed).Fprintf(os.Stderr, "fibr: %v\n", err)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
