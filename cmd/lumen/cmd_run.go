/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lumenlang/lumen/pkg/errs"
	"github.com/lumenlang/lumen/pkg/examples"
	"github.com/lumenlang/lumen/pkg/romutil"
	"github.com/lumenlang/lumen/pkg/vm"
)

var (
	runExample string
	runSlow    bool
	runTrace   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs one of Lumen's built-in example chunks",
	Long: `Runs one of Lumen's built-in example chunks to completion on a fresh
VM and reports the outcome. There is no source file to pass here: "run"
picks a chunk by name from the ones built into the lumen binary (see
"lumen dev list-examples").`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runExample, "example", "x", "", "name of the built-in example chunk to run (required)")
	runCmd.Flags().BoolVarP(&runSlow, "slow", "s", false, "sleep briefly between instructions")
	runCmd.Flags().BoolVarP(&runTrace, "trace", "t", false, "print the stack and the next instruction before every step")
	_ = runCmd.MarkFlagRequired("example")
}

func runRun(cmd *cobra.Command, args []string) error {
	mouth := romutil.NewWriterMouth(os.Stdout)
	m := vm.New(romutil.MouthWriter(mouth))
	m.Trace = runTrace
	m.Slow = runSlow

	chunk, err := examples.Build(runExample, m.Strings())
	if err != nil {
		errs.ReportAndExit(errs.NewBadUsage("%v", err))
		return nil
	}

	result, _, runErr := m.Interpret(chunk)
	if runErr != nil {
		errs.ReportAndExit(runErr)
		return nil
	}

	cmd.Printf("%v\n", result)
	return nil
}
