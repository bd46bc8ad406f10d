/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package main

import (
	"github.com/spf13/cobra"

	"github.com/lumenlang/lumen/pkg/examples"
)

var devListExamplesCmd = &cobra.Command{
	Use:   "list-examples",
	Short: "Lists the names of the built-in example chunks",
	RunE:  runDevListExamples,
}

func runDevListExamples(cmd *cobra.Command, args []string) error {
	for _, name := range examples.Names() {
		cmd.Println(name)
	}
	return nil
}
