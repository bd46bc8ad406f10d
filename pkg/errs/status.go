/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package errs

const (
	// StatusCodeSuccess indicates a successful execution.
	StatusCodeSuccess = 0

	// StatusCodeRuntimeError indicates a RuntimeError surfaced by the VM.
	StatusCodeRuntimeError = 1

	// StatusCodeTestSuiteError indicates a failure while running Lumen's own
	// scenario suite.
	StatusCodeTestSuiteError = 2

	// StatusCodeBadUsage indicates some user error in the usage of the lumen
	// tool (e.g., an unknown example name, or a missing required flag).
	StatusCodeBadUsage = 50

	// StatusCodeICE indicates an Internal (VM) Error: something the
	// interpreter loop was not prepared to see, which always means a bug in
	// Lumen itself rather than in the program it's running.
	StatusCodeICE = 125
)
