/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package errs

import (
	"errors"
	"fmt"
	"os"
)

// ReportAndExit reports the error err to the end user and exits with the
// appropriate status code. It's fine if err is nil, we handle this case here.
func ReportAndExit(err error) {
	badUsageError := &BadUsage{}
	runtimeError := &Runtime{}
	testSuiteError := &TestSuite{}
	iceErr := &ICE{}
	switch {
	case err == nil:
		os.Exit(StatusCodeSuccess)

	case errors.As(err, &badUsageError):
		fmt.Printf("Usage: %v\n", badUsageError)
		os.Exit(StatusCodeBadUsage)

	case errors.As(err, &runtimeError):
		fmt.Printf("%v\n", runtimeError)
		os.Exit(StatusCodeRuntimeError)

	case errors.As(err, &testSuiteError):
		fmt.Printf("%v\n", testSuiteError)
		os.Exit(StatusCodeTestSuiteError)

	case errors.As(err, &iceErr):
		fmt.Printf("%v\n", iceErr)
		os.Exit(StatusCodeICE)

	default:
		fmt.Printf("Internal error: unexpected error of type %T: %v\n", err, err)
		os.Exit(StatusCodeICE)
	}
}

// ReportAndExitOnError is similar to ReportAndExit, but is a no-op if err is
// nil.
func ReportAndExitOnError(err error) {
	if err == nil {
		return
	}
	ReportAndExit(err)
}
