/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package vm

import (
	"fmt"
	"time"

	"github.com/lumenlang/lumen/pkg/bytecode"
)

// registerNatives binds the host-provided callables every VM starts with
// into its globals table. Producers can rely on "clock" and "sleep" being
// defined without an explicit DEFINE_GLOBAL.
func (vm *VM) registerNatives() {
	vm.defineNative("clock", 0, nativeClock)
	vm.defineNative("sleep", 1, nativeSleep)
}

// defineNative wraps fn as a bytecode.NativeFunction and binds it directly
// into the globals table (bypassing DEFINE_GLOBAL, since these are not
// produced by any chunk).
func (vm *VM) defineNative(name string, arity int, fn bytecode.NativeFunc) {
	native := bytecode.NewNativeFunction(name, arity, fn)
	vm.globals[name] = bytecode.NewNativeValue(native)
}

// nativeClock returns the number of seconds elapsed since the Unix epoch, as
// a Lumen number. Mirrors the classic clox "clock" native used to benchmark
// and demo loops.
func nativeClock(args []bytecode.Value) (bytecode.Value, error) {
	return bytecode.NewNumber(float64(time.Now().UnixNano()) / 1e9), nil
}

// nativeSleep pauses the calling goroutine for its argument, interpreted as
// a number of seconds. Returns nil. This is the VM's only other suspension
// point besides "slow" mode.
func nativeSleep(args []bytecode.Value) (bytecode.Value, error) {
	if !args[0].IsNumber() {
		return bytecode.Value{}, fmt.Errorf("sleep expects a number of seconds, got %v", args[0].TypeName())
	}
	seconds := args[0].AsNumber()
	if seconds > 0 {
		time.Sleep(time.Duration(seconds * float64(time.Second)))
	}
	return bytecode.NilValue, nil
}
