/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package main

import (
	"github.com/spf13/cobra"

	"github.com/lumenlang/lumen/pkg/errs"
	"github.com/lumenlang/lumen/pkg/suite"
)

var devTestCmd = &cobra.Command{
	Use:   "test <suite-dir>",
	Short: "Runs Lumen's own TOML-driven scenario suite",
	Long: `Runs every scenario.toml found recursively under <suite-dir>, each
naming a built-in example chunk and the observable state interpreting it
must produce.`,
	Args: cobra.ExactArgs(1),
	RunE: runDevTest,
}

func runDevTest(cmd *cobra.Command, args []string) error {
	if err := suite.ExecuteSuite(args[0]); err != nil {
		errs.ReportAndExit(err)
	}
	return nil
}
