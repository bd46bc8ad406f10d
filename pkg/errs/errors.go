/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package errs

import (
	"fmt"
	"strings"
)

//
// The Error interface
//

// Error is a Lumen error.
type Error interface {
	error
	ExitCode() int
}

//
// Runtime error kinds
//

// Kind is one of the stable, user-visible RuntimeError classes a running
// Lumen program can fail with.
type Kind int

const (
	// StackUnderflow: pop/peek of an empty or too-shallow operand stack.
	StackUnderflow Kind = iota

	// Type: operand cases do not match the opcode's expectation.
	Type

	// UnboundGlobal: GET_GLOBAL on an undefined name.
	UnboundGlobal

	// InvalidSlot: SET_LOCAL/GET_LOCAL slot out of range.
	InvalidSlot

	// CallTarget: CALL on a non-callable value.
	CallTarget

	// ArityMismatch: a call with argc different from the callee's arity.
	ArityMismatch

	// UnknownOpcode: a byte does not decode to any known opcode.
	UnknownOpcode

	// AllocationFailure: propagated unchanged from the allocator.
	AllocationFailure
)

// String names the Kind, used when formatting a Runtime error.
func (k Kind) String() string {
	switch k {
	case StackUnderflow:
		return "StackUnderflow"
	case Type:
		return "Type"
	case UnboundGlobal:
		return "UnboundGlobal"
	case InvalidSlot:
		return "InvalidSlot"
	case CallTarget:
		return "CallTarget"
	case ArityMismatch:
		return "ArityMismatch"
	case UnknownOpcode:
		return "UnknownOpcode"
	case AllocationFailure:
		return "AllocationFailure"
	default:
		return "Unknown"
	}
}

//
// Runtime
//

// Runtime is an error that happened while running a Lumen program. It
// carries a Kind (one of the classes above) plus a human-readable message
// and, when available, a call-frame trace built at the moment the error was
// raised.
type Runtime struct {
	// Kind classifies the error.
	Kind Kind

	// Message contains a user-friendly description of what went wrong.
	Message string

	// Trace contains one line per active call frame, innermost first, the
	// way the VM's panic handler builds it. May be empty.
	Trace []string
}

// NewRuntime is a handy way to create a Runtime error of the given kind.
func NewRuntime(kind Kind, format string, a ...any) *Runtime {
	return &Runtime{
		Kind:    kind,
		Message: fmt.Sprintf(format, a...),
	}
}

// Error converts the Runtime to a string. Fulfills the error interface.
func (e *Runtime) Error() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "Runtime error (%v): %v", e.Kind, e.Message)
	for _, line := range e.Trace {
		s.WriteByte('\n')
		s.WriteString(line)
	}
	return s.String()
}

// ExitCode fulfills the Error interface.
func (e *Runtime) ExitCode() int {
	return StatusCodeRuntimeError
}

//
// BadUsage
//

// BadUsage is an error that happened because the lumen tool was called in
// the wrong way (like an unknown example name, or a missing required flag).
type BadUsage struct {
	// Message contains a message explaining what happened.
	Message string
}

// NewBadUsage is a handy way to create a BadUsage error.
func NewBadUsage(format string, a ...any) *BadUsage {
	return &BadUsage{
		Message: fmt.Sprintf(format, a...),
	}
}

// Error converts the BadUsage to a string. Fulfills the error interface.
func (e *BadUsage) Error() string {
	return "Usage error: " + e.Message
}

// ExitCode fulfills the Error interface.
func (e *BadUsage) ExitCode() int {
	return StatusCodeBadUsage
}

//
// TestSuite
//

// TestSuite is an error that happened while running Lumen's own scenario
// suite (pkg/suite).
type TestSuite struct {
	// Scenario is the name (or path) of the scenario that failed.
	Scenario string

	// Message contains a message explaining how the scenario failed.
	Message string
}

// NewTestSuite is a handy way to create a TestSuite error.
func NewTestSuite(scenario, format string, a ...any) *TestSuite {
	return &TestSuite{
		Scenario: scenario,
		Message:  fmt.Sprintf(format, a...),
	}
}

// Error converts the TestSuite to a string. Fulfills the error interface.
func (e *TestSuite) Error() string {
	return fmt.Sprintf("%v: %v", e.Scenario, e.Message)
}

// ExitCode fulfills the Error interface.
func (e *TestSuite) ExitCode() int {
	return StatusCodeTestSuiteError
}

//
// ICE
//

// ICE is an Internal (VM) Error. Used to report some unexpected issue with
// the interpreter -- like finding it in a state it wasn't expected to be in.
// It's always a bug in Lumen, never in the program being run.
type ICE struct {
	// Message contains some message to contextualize the situation in which
	// the error happened.
	Message string
}

// NewICE is a handy way to create an ICE.
func NewICE(format string, a ...any) *ICE {
	return &ICE{
		Message: fmt.Sprintf(format, a...),
	}
}

// Error converts the ICE to a string. Fulfills the error interface.
func (e *ICE) Error() string {
	return "Internal error: " + e.Message
}

// ExitCode fulfills the Error interface.
func (e *ICE) ExitCode() int {
	return StatusCodeICE
}
