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

	"github.com/lumenlang/lumen/pkg/bytecode"
	"github.com/lumenlang/lumen/pkg/errs"
	"github.com/lumenlang/lumen/pkg/examples"
)

var disassembleExample string

var devDisassembleCmd = &cobra.Command{
	Use:   "disassemble",
	Short: "Disassembles one of the built-in example chunks",
	Long: `Disassembles one of the built-in example chunks: one line per
instruction, with its offset, source line, and operands, the same format
printed during traced "lumen run" steps.`,
	RunE: runDevDisassemble,
}

func init() {
	devDisassembleCmd.Flags().StringVarP(&disassembleExample, "example", "x", "", "name of the built-in example chunk to disassemble (required)")
	_ = devDisassembleCmd.MarkFlagRequired("example")
}

func runDevDisassemble(cmd *cobra.Command, args []string) error {
	in := bytecode.NewInterner()
	chunk, err := examples.Build(disassembleExample, in)
	if err != nil {
		errs.ReportAndExit(errs.NewBadUsage("%v", err))
		return nil
	}
	chunk.Disassemble(os.Stdout, disassembleExample)
	return nil
}
