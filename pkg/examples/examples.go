/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

// Package examples hand-assembles the chunks used to demo and exercise the
// Lumen VM. There is no compiler in this system (programs arrive
// as pre-assembled bytecode), so these constructors play the part a front
// end would otherwise play: producing Chunks by calling the same
// Chunk.Write* methods any bytecode producer would use.
package examples

import (
	"fmt"
	"sort"

	"github.com/lumenlang/lumen/pkg/bytecode"
)

// Builder assembles a runnable Chunk against the given Interner, so any
// string constants it needs come from the same pool the VM running it will
// use: the intern pool is threaded through explicitly, never a package global.
type Builder func(in *bytecode.Interner) *bytecode.Chunk

var registry = map[string]Builder{
	"arithmetic":           buildArithmetic,
	"boolean-chain":        buildBooleanChain,
	"global-roundtrip":     buildGlobalRoundtrip,
	"conditional":          buildConditional,
	"while-loop":           buildWhileLoop,
	"factorial":            buildFactorial,
	"closure-counter":      buildClosureCounter,
	"error-type-add":       buildErrorTypeAdd,
	"error-jump-nonbool":   buildErrorJumpNonBool,
	"error-unbound-global": buildErrorUnboundGlobal,
	"error-call-target":    buildErrorCallTarget,
	"error-native-arity":   buildErrorNativeArity,
	"error-function-arity": buildErrorFunctionArity,
}

// Names returns every registered example name, sorted for stable listing.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named example's Chunk against in. Returns an error if
// name isn't registered.
func Build(name string, in *bytecode.Interner) (*bytecode.Chunk, error) {
	builder, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("no such example %q (known: %v)", name, Names())
	}
	return builder(in), nil
}

const line = 1 // every hand-assembled example pretends to live on one source line

// buildArithmetic: (3.4 + 2.6) * 2.0 == 12.
func buildArithmetic(in *bytecode.Interner) *bytecode.Chunk {
	c := bytecode.NewChunk()
	c.AddConstant(bytecode.NewNumber(2.0)) // 0
	c.AddConstant(bytecode.NewNumber(3.4)) // 1
	c.AddConstant(bytecode.NewNumber(2.6)) // 2

	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(1, line)
	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(2, line)
	c.WriteOpcode(bytecode.OpAdd, line)
	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(0, line)
	c.WriteOpcode(bytecode.OpMul, line)
	c.WriteOpcode(bytecode.OpReturn, line)
	return c
}

// buildBooleanChain: strict AND/OR/NOT,
// leaving false, true, false on the stack (top to bottom) before RETURN.
func buildBooleanChain(in *bytecode.Interner) *bytecode.Chunk {
	c := bytecode.NewChunk()
	c.WriteOpcode(bytecode.OpTrue, line)
	c.WriteOpcode(bytecode.OpFalse, line)
	c.WriteOpcode(bytecode.OpAnd, line)
	c.WriteOpcode(bytecode.OpFalse, line)
	c.WriteOpcode(bytecode.OpTrue, line)
	c.WriteOpcode(bytecode.OpOr, line)
	c.WriteOpcode(bytecode.OpTrue, line)
	c.WriteOpcode(bytecode.OpNot, line)
	c.WriteOpcode(bytecode.OpReturn, line)
	return c
}

// buildGlobalRoundtrip: define then
// reassign a global, leaving globals["myvar"] == 2.71828.
func buildGlobalRoundtrip(in *bytecode.Interner) *bytecode.Chunk {
	c := bytecode.NewChunk()
	name := bytecode.NewStringValue(in.Intern("myvar"))
	c.AddConstant(name)                         // 0
	c.AddConstant(bytecode.NewNumber(2.71828)) // 1

	c.WriteOpcode(bytecode.OpNil, line)
	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(0, line)
	c.WriteOpcode(bytecode.OpDefineGlobal, line)
	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(1, line)
	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(0, line)
	c.WriteOpcode(bytecode.OpSetGlobal, line)
	c.WriteOpcode(bytecode.OpReturn, line)
	return c
}

// buildConditional: JUMP_IF_FALSE skips the
// TRUE push without popping its own condition, leaving false under the
// value RETURN consumes.
func buildConditional(in *bytecode.Interner) *bytecode.Chunk {
	c := bytecode.NewChunk()
	c.WriteOpcode(bytecode.OpFalse, line)
	c.WriteOpcode(bytecode.OpJumpIfFalse, line)
	c.WriteU16(1, line)
	c.WriteOpcode(bytecode.OpTrue, line)
	c.WriteOpcode(bytecode.OpFalse, line)
	c.WriteOpcode(bytecode.OpReturn, line)
	return c
}

// buildWhileLoop: a = 3; while (a > 0) {
// a = a - 1; print a; }, printing 2, 1, 0.
func buildWhileLoop(in *bytecode.Interner) *bytecode.Chunk {
	c := bytecode.NewChunk()
	c.AddConstant(bytecode.NewNumber(3.0)) // 0: initial a
	c.AddConstant(bytecode.NewNumber(0.0)) // 1: loop bound
	c.AddConstant(bytecode.NewNumber(1.0)) // 2: decrement

	// a := 3, living directly on the stack at slot 1 (slot 0 is the script's
	// own reserved callee slot).
	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(0, line)

	loopStart := c.Code.Len()

	c.WriteOpcode(bytecode.OpGetLocal, line)
	c.WriteByte(1, line)
	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(1, line)
	c.WriteOpcode(bytecode.OpGreater, line)

	c.WriteOpcode(bytecode.OpJumpIfFalse, line)
	exitJumpOperand := c.WriteU16(0, line)
	c.WriteOpcode(bytecode.OpPop, line) // discard the true condition

	c.WriteOpcode(bytecode.OpGetLocal, line)
	c.WriteByte(1, line)
	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(2, line)
	c.WriteOpcode(bytecode.OpSub, line)
	c.WriteOpcode(bytecode.OpSetLocal, line)
	c.WriteByte(1, line)
	c.WriteOpcode(bytecode.OpPop, line) // discard SET_LOCAL's leftover copy

	c.WriteOpcode(bytecode.OpGetLocal, line)
	c.WriteByte(1, line)
	c.WriteOpcode(bytecode.OpPrint, line)

	c.WriteOpcode(bytecode.OpLoop, line)
	c.WriteU16(uint16(c.Code.Len()+2-loopStart), line)

	exitTarget := c.Code.Len()
	c.PatchU16(exitJumpOperand, uint16(exitTarget-(exitJumpOperand+2)))
	c.WriteOpcode(bytecode.OpPop, line) // discard the false condition

	c.WriteOpcode(bytecode.OpReturn, line)
	return c
}

// buildFactorial: a recursive, arity-1
// function computing n * fac(n-1) with fac(0) == 1, called as fac(5) from
// top level and printed.
func buildFactorial(in *bytecode.Interner) *bytecode.Chunk {
	facChunk := bytecode.NewChunk()
	facChunk.AddConstant(bytecode.NewNumber(0.0))             // 0: base-case compare
	facChunk.AddConstant(bytecode.NewNumber(1.0))             // 1: base-case result / decrement
	facName := bytecode.NewStringValue(in.Intern("fac"))
	facChunk.AddConstant(facName) // 2: recursive lookup name

	facChunk.WriteOpcode(bytecode.OpGetLocal, line)
	facChunk.WriteByte(1, line)
	facChunk.WriteOpcode(bytecode.OpConstant, line)
	facChunk.WriteByte(0, line)
	facChunk.WriteOpcode(bytecode.OpEqual, line)

	facChunk.WriteOpcode(bytecode.OpJumpIfFalse, line)
	elseJumpOperand := facChunk.WriteU16(0, line)
	facChunk.WriteOpcode(bytecode.OpPop, line)
	facChunk.WriteOpcode(bytecode.OpConstant, line)
	facChunk.WriteByte(1, line)
	facChunk.WriteOpcode(bytecode.OpReturn, line)

	elseTarget := facChunk.Code.Len()
	facChunk.PatchU16(elseJumpOperand, uint16(elseTarget-(elseJumpOperand+2)))
	facChunk.WriteOpcode(bytecode.OpPop, line)

	facChunk.WriteOpcode(bytecode.OpGetLocal, line) // n, left operand of the final MUL
	facChunk.WriteByte(1, line)
	facChunk.WriteOpcode(bytecode.OpConstant, line) // "fac"
	facChunk.WriteByte(2, line)
	facChunk.WriteOpcode(bytecode.OpGetGlobal, line)
	facChunk.WriteOpcode(bytecode.OpGetLocal, line) // n, for n - 1
	facChunk.WriteByte(1, line)
	facChunk.WriteOpcode(bytecode.OpConstant, line)
	facChunk.WriteByte(1, line)
	facChunk.WriteOpcode(bytecode.OpSub, line)
	facChunk.WriteOpcode(bytecode.OpCall, line)
	facChunk.WriteByte(1, line)
	facChunk.WriteOpcode(bytecode.OpMul, line)
	facChunk.WriteOpcode(bytecode.OpReturn, line)

	fac := bytecode.NewFunction("fac", 1, facChunk)

	c := bytecode.NewChunk()
	c.AddConstant(bytecode.NewFunctionValue(fac)) // 0
	c.AddConstant(facName)                        // 1
	c.AddConstant(bytecode.NewNumber(5.0))         // 2

	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(0, line)
	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(1, line)
	c.WriteOpcode(bytecode.OpDefineGlobal, line)

	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(1, line)
	c.WriteOpcode(bytecode.OpGetGlobal, line)
	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(2, line)
	c.WriteOpcode(bytecode.OpCall, line)
	c.WriteByte(1, line)
	c.WriteOpcode(bytecode.OpPrint, line)

	c.WriteOpcode(bytecode.OpNil, line)
	c.WriteOpcode(bytecode.OpReturn, line)
	return c
}

// buildClosureCounter is a closures/upvalues demo: makeCounter() returns a closure over
// a local it captures by reference, so two successive calls observe 1 then
// 2 rather than restarting from 0.
func buildClosureCounter(in *bytecode.Interner) *bytecode.Chunk {
	incChunk := bytecode.NewChunk()
	incChunk.AddConstant(bytecode.NewNumber(1.0)) // 0

	incChunk.WriteOpcode(bytecode.OpGetUpvalue, line)
	incChunk.WriteByte(0, line)
	incChunk.WriteOpcode(bytecode.OpConstant, line)
	incChunk.WriteByte(0, line)
	incChunk.WriteOpcode(bytecode.OpAdd, line)
	incChunk.WriteOpcode(bytecode.OpSetUpvalue, line)
	incChunk.WriteByte(0, line)
	incChunk.WriteOpcode(bytecode.OpPop, line)
	incChunk.WriteOpcode(bytecode.OpGetUpvalue, line)
	incChunk.WriteByte(0, line)
	incChunk.WriteOpcode(bytecode.OpReturn, line)

	increment := bytecode.NewFunction("increment", 0, incChunk)
	increment.UpvalueCount = 1

	makeCounterChunk := bytecode.NewChunk()
	makeCounterChunk.AddConstant(bytecode.NewNumber(0.0))             // 0: initial count
	makeCounterChunk.AddConstant(bytecode.NewFunctionValue(increment)) // 1

	makeCounterChunk.WriteOpcode(bytecode.OpConstant, line) // count := 0, lives at slot 1
	makeCounterChunk.WriteByte(0, line)
	makeCounterChunk.WriteOpcode(bytecode.OpClosure, line)
	makeCounterChunk.WriteByte(1, line) // constant 1: increment
	makeCounterChunk.WriteByte(1, line) // isLocal
	makeCounterChunk.WriteByte(1, line) // index: count is slot 1
	makeCounterChunk.WriteOpcode(bytecode.OpReturn, line)

	makeCounter := bytecode.NewFunction("makeCounter", 0, makeCounterChunk)

	counterName := bytecode.NewStringValue(in.Intern("counter"))

	c := bytecode.NewChunk()
	c.AddConstant(bytecode.NewFunctionValue(makeCounter)) // 0
	c.AddConstant(counterName)                            // 1

	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(0, line)
	c.WriteOpcode(bytecode.OpCall, line)
	c.WriteByte(0, line)
	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(1, line)
	c.WriteOpcode(bytecode.OpDefineGlobal, line)

	for i := 0; i < 2; i++ {
		c.WriteOpcode(bytecode.OpConstant, line)
		c.WriteByte(1, line)
		c.WriteOpcode(bytecode.OpGetGlobal, line)
		c.WriteOpcode(bytecode.OpCall, line)
		c.WriteByte(0, line)
		c.WriteOpcode(bytecode.OpPrint, line)
	}

	c.WriteOpcode(bytecode.OpNil, line)
	c.WriteOpcode(bytecode.OpReturn, line)
	return c
}

// buildErrorTypeAdd exercises the boundary behavior "arithmetic on
// mixed types yields RuntimeError of kind Type": ADD-ing a number to a
// string.
func buildErrorTypeAdd(in *bytecode.Interner) *bytecode.Chunk {
	c := bytecode.NewChunk()
	c.AddConstant(bytecode.NewNumber(1.0))
	c.AddConstant(bytecode.NewStringValue(in.Intern("x")))

	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(0, line)
	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(1, line)
	c.WriteOpcode(bytecode.OpAdd, line)
	c.WriteOpcode(bytecode.OpReturn, line)
	return c
}

// buildErrorJumpNonBool exercises the boundary behavior "JUMP_IF_FALSE with
// a non-boolean top yields RuntimeError of kind Type".
func buildErrorJumpNonBool(in *bytecode.Interner) *bytecode.Chunk {
	c := bytecode.NewChunk()
	c.AddConstant(bytecode.NewNumber(1.0))

	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(0, line)
	c.WriteOpcode(bytecode.OpJumpIfFalse, line)
	c.WriteU16(1, line)
	c.WriteOpcode(bytecode.OpReturn, line)
	return c
}

// buildErrorUnboundGlobal exercises "GET_GLOBAL on undefined name yields
// RuntimeError of kind UnboundGlobal".
func buildErrorUnboundGlobal(in *bytecode.Interner) *bytecode.Chunk {
	c := bytecode.NewChunk()
	c.AddConstant(bytecode.NewStringValue(in.Intern("nope")))

	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(0, line)
	c.WriteOpcode(bytecode.OpGetGlobal, line)
	c.WriteOpcode(bytecode.OpReturn, line)
	return c
}

// buildErrorCallTarget exercises "CALL on nil/number/boolean/string yields
// RuntimeError of kind CallTarget", calling a number.
func buildErrorCallTarget(in *bytecode.Interner) *bytecode.Chunk {
	c := bytecode.NewChunk()
	c.AddConstant(bytecode.NewNumber(1.0))

	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(0, line)
	c.WriteOpcode(bytecode.OpCall, line)
	c.WriteByte(0, line)
	c.WriteOpcode(bytecode.OpReturn, line)
	return c
}

// buildErrorNativeArity exercises "native call with wrong argc yields
// RuntimeError of kind ArityMismatch", calling the zero-arity "clock" native
// with one argument.
func buildErrorNativeArity(in *bytecode.Interner) *bytecode.Chunk {
	c := bytecode.NewChunk()
	c.AddConstant(bytecode.NewStringValue(in.Intern("clock")))
	c.AddConstant(bytecode.NewNumber(1.0))

	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(0, line)
	c.WriteOpcode(bytecode.OpGetGlobal, line)
	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(1, line)
	c.WriteOpcode(bytecode.OpCall, line)
	c.WriteByte(1, line)
	c.WriteOpcode(bytecode.OpReturn, line)
	return c
}

// buildErrorFunctionArity exercises the arity
// open question: calling a user-defined, arity-1 Function with zero
// arguments yields RuntimeError of kind ArityMismatch.
func buildErrorFunctionArity(in *bytecode.Interner) *bytecode.Chunk {
	identityChunk := bytecode.NewChunk()
	identityChunk.WriteOpcode(bytecode.OpGetLocal, line)
	identityChunk.WriteByte(1, line)
	identityChunk.WriteOpcode(bytecode.OpReturn, line)
	identity := bytecode.NewFunction("identity", 1, identityChunk)

	c := bytecode.NewChunk()
	c.AddConstant(bytecode.NewFunctionValue(identity))

	c.WriteOpcode(bytecode.OpConstant, line)
	c.WriteByte(0, line)
	c.WriteOpcode(bytecode.OpCall, line)
	c.WriteByte(0, line)
	c.WriteOpcode(bytecode.OpReturn, line)
	return c
}
