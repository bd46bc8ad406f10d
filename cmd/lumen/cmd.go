/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "lumen",
	SilenceUsage: true,
	Short:        "Lumen is a bytecode virtual machine for a small Lox-family language",
	Long: `Lumen runs hand-assembled bytecode chunks on a stack-based virtual
machine: an operand stack, call frames, closures with upvalues, and a
VM-owned string intern pool. There is no compiler here -- "lumen run"
executes one of the chunks built into "lumen", not source text.`,
}

func init() {
	devCmd.AddCommand(devListExamplesCmd, devDisassembleCmd, devTestCmd)
	rootCmd.AddCommand(runCmd, devCmd)
}
