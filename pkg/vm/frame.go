/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package vm

import "github.com/lumenlang/lumen/pkg/bytecode"

// callFrame holds the information needed at runtime about one ongoing
// function activation.
type callFrame struct {
	// function is the Function currently executing.
	function *bytecode.Function

	// closure is the Closure currently executing, or nil if this frame was
	// entered by calling a bare Function (no captured upvalues). Kept
	// separate from function so GET_UPVALUE/SET_UPVALUE have something to
	// index into without requiring every call to go through a Closure.
	closure *bytecode.Closure

	// ip is the index into function.Chunk.Code of the next byte to read.
	ip int

	// slotsBase is the index into the VM's operand stack identifying slot 0
	// for this call: the callee itself, followed by its arguments, followed
	// by its locals and temporaries.
	slotsBase int
}

func (f *callFrame) chunk() *bytecode.Chunk {
	return f.function.Chunk
}
