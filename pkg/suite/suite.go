/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

// Package suite runs Lumen's own scenario suite: a directory tree of TOML
// files, each naming one of pkg/examples' built-in chunks and the
// observable state interpreting it must produce. There is no source to
// build here, so a "case" just names a chunk instead of a
// source directory, but the pass/fail reporting follows the same shape as a
// conventional build-and-run test runner.
package suite

import (
	"fmt"
	"os"
	"path"
	"regexp"

	"github.com/pelletier/go-toml/v2"

	"github.com/lumenlang/lumen/pkg/errs"
	"github.com/lumenlang/lumen/pkg/examples"
	"github.com/lumenlang/lumen/pkg/romutil"
	"github.com/lumenlang/lumen/pkg/vm"
)

// caseFileName is the file name (not path) ExecuteSuite looks for while
// walking a suite directory.
var caseFileName = regexp.MustCompile(`^scenario\.toml$`)

// config mirrors one scenario's TOML file.
type config struct {
	// Example names the pkg/examples chunk this scenario runs.
	Example string `toml:"example"`

	// ExitCode is the expected process-level exit code: errs.StatusCodeSuccess
	// on a clean Ok, or one of the Runtime/TestSuite/... codes otherwise.
	ExitCode int `toml:"exit_code"`

	// Output lists the expected PRINT lines, in order.
	Output []string `toml:"output"`

	// ErrorMessages lists regexps that must each match the error text, when
	// ExitCode is non-zero.
	ErrorMessages []string `toml:"error_messages"`

	// Globals lists expected final values of global variables, keyed by
	// name, compared against Value.String().
	Globals map[string]string `toml:"globals"`
}

// ExecuteSuite runs every scenario.toml found under suitePath, recursively.
func ExecuteSuite(suitePath string) errs.Error {
	isDir, err := romutil.IsDir(suitePath)
	if err != nil {
		return errs.NewBadUsage("checking suite directory %v: %v", suitePath, err)
	}
	if !isDir {
		return errs.NewBadUsage("%v is not a directory", suitePath)
	}
	return romutil.ForEachMatchingFileRecursive(suitePath, caseFileName, runCase)
}

// runCase runs a single scenario.toml.
func runCase(configPath string) errs.Error {
	testCase := path.Dir(configPath)

	conf, err := readConfig(configPath)
	if err != nil {
		return err
	}
	if conf.Example == "" {
		return errs.NewTestSuite(testCase, "scenario is missing the required 'example' field")
	}

	mouth := &romutil.MemoryMouth{}
	m := vm.New(romutil.MouthWriter(mouth))

	chunk, buildErr := examples.Build(conf.Example, m.Strings())
	if buildErr != nil {
		return errs.NewTestSuite(testCase, "%v", buildErr)
	}

	_, _, runErr := m.Interpret(chunk)

	gotExitCode := errs.StatusCodeSuccess
	if runErr != nil {
		gotExitCode = runErr.ExitCode()
	}
	if gotExitCode != conf.ExitCode {
		return errs.NewTestSuite(testCase, "expected exit code %v, got %v", conf.ExitCode, gotExitCode)
	}

	for _, expectedErrMsg := range conf.ErrorMessages {
		re, reErr := regexp.Compile(expectedErrMsg)
		if reErr != nil {
			return errs.NewTestSuite(testCase, "compiling regexp %q: %v", expectedErrMsg, reErr)
		}
		if runErr == nil || !re.MatchString(runErr.Error()) {
			return errs.NewTestSuite(testCase, "expected an error matching %q", expectedErrMsg)
		}
	}

	if runErr != nil {
		// A scenario expecting an error doesn't get its output/globals checked:
		// the run aborted partway through on purpose.
		fmt.Printf("Scenario passed: %v.\n", testCase)
		return nil
	}

	if len(mouth.Outputs) != len(conf.Output) {
		return errs.NewTestSuite(testCase, "got %v printed line(s), expected %v", len(mouth.Outputs), len(conf.Output))
	}
	for i, got := range mouth.Outputs {
		if got != conf.Output[i] {
			return errs.NewTestSuite(testCase, "at output %v: expected %q, got %q", i, conf.Output[i], got)
		}
	}

	for name, expected := range conf.Globals {
		value, ok := m.Globals()[name]
		if !ok {
			return errs.NewTestSuite(testCase, "expected global %q to be defined", name)
		}
		if value.String() != expected {
			return errs.NewTestSuite(testCase, "global %q: expected %q, got %q", name, expected, value.String())
		}
	}

	fmt.Printf("Scenario passed: %v.\n", testCase)
	return nil
}

// readConfig reads and unmarshals a scenario TOML file.
func readConfig(p string) (*config, errs.Error) {
	raw, err := os.ReadFile(p)
	if err != nil {
		return nil, errs.NewTestSuite(p, "%v", err)
	}
	conf := &config{}
	if err := toml.Unmarshal(raw, conf); err != nil {
		return nil, errs.NewTestSuite(p, "%v", err)
	}
	return conf, nil
}
