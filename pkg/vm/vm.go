/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

// Package vm implements the Lumen bytecode virtual machine: the operand
// stack, the call-frame stack, the globals table, and the instruction
// dispatch loop described in the system's core specification.
package vm

import (
	"fmt"
	"io"
	"time"

	"github.com/lumenlang/lumen/pkg/bytecode"
	"github.com/lumenlang/lumen/pkg/errs"
)

// InterpretResult is the outcome of a call to VM.Interpret. Only Ok and
// RuntimeError are ever produced here: there is no compiler in this system,
// so CompileError exists only to complete the enumeration external tooling
// may expect.
type InterpretResult int

const (
	Ok InterpretResult = iota
	CompileError
	RuntimeError
)

func (r InterpretResult) String() string {
	switch r {
	case Ok:
		return "Ok"
	case CompileError:
		return "CompileError"
	case RuntimeError:
		return "RuntimeError"
	default:
		return "Unknown"
	}
}

// openUpvalue pairs a captured Upvalue with the absolute stack index it was
// captured from, so VM.closeUpvalues can find which ones belong to a frame
// that's about to unwind.
type openUpvalue struct {
	index int
	uv    *bytecode.Upvalue
}

// VM is a Lumen Virtual Machine. It owns an operand stack, a call-frame
// stack, a globals table, a string intern pool, and a small run-time
// configuration (Trace, Slow).
type VM struct {
	// Trace, when true, makes the VM print the operand stack and disassemble
	// the next instruction before every step.
	Trace bool

	// Slow, when true, makes the VM sleep briefly between steps, for visual
	// demos.
	Slow bool

	// out is where PRINT and tracing output go.
	out io.Writer

	// strings is this VM's string intern pool. Owned here rather than
	// process-wide: it is created alongside the VM and torn
	// down with it.
	strings *bytecode.Interner

	globals map[string]bytecode.Value

	stack stack

	frames []*callFrame
	frame  *callFrame

	openUpvalues []openUpvalue
}

// New creates a new VM. out is where the VM sends PRINT and trace output.
func New(out io.Writer) *VM {
	vm := &VM{
		out:     out,
		strings: bytecode.NewInterner(),
		globals: make(map[string]bytecode.Value),
	}
	vm.registerNatives()
	return vm
}

// Strings returns the VM's string intern pool, so callers assembling chunks
// can intern constants into the same pool the VM will use at run time.
func (vm *VM) Strings() *bytecode.Interner {
	return vm.strings
}

// Globals returns the VM's globals table. Exposed read-only-by-convention
// for tests and tooling that want to inspect the final state after
// Interpret returns.
func (vm *VM) Globals() map[string]bytecode.Value {
	return vm.globals
}

// StackValues returns the live contents of the operand stack, bottom to top,
// as it stands after Interpret returns.
func (vm *VM) StackValues() []bytecode.Value {
	return vm.stack.values()
}

// Interpret wraps chunk in a synthetic, arity-0 "script" Function, runs it
// to completion, and reports the outcome. On a successful run, the second
// return value is the value that was on top of the stack just before the
// bottom frame's RETURN; it is also left on the operand stack, for direct
// inspection.
func (vm *VM) Interpret(chunk *bytecode.Chunk) (result InterpretResult, final bytecode.Value, err errs.Error) {
	script := bytecode.NewFunction("", 0, chunk)

	// The script's own "callable" occupies slot 0, just like any other call
	// would reserve a slot for its callee.
	vm.stack.push(bytecode.NilValue)
	frame := &callFrame{function: script, slotsBase: 0}
	vm.frames = append(vm.frames, frame)
	vm.frame = frame

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*errs.Runtime); ok {
				e.Trace = vm.buildTrace()
				result = RuntimeError
				err = e
				return
			}
			result = RuntimeError
			err = errs.NewICE("unexpected panic: %v", r)
		}
	}()

	final = vm.run()
	result = Ok
	return result, final, nil
}

// run executes instructions starting from the current frame until the
// bottom frame returns. Panics with a *errs.Runtime on any failure; callers
// must recover.
func (vm *VM) run() bytecode.Value {
	for {
		if vm.Trace {
			vm.printTrace()
		}
		if vm.Slow {
			time.Sleep(time.Second)
		}

		op := bytecode.OpCode(vm.readByte())

		switch op {
		case bytecode.OpNil:
			vm.stack.push(bytecode.NilValue)

		case bytecode.OpTrue:
			vm.stack.push(bytecode.NewBool(true))

		case bytecode.OpFalse:
			vm.stack.push(bytecode.NewBool(false))

		case bytecode.OpConstant:
			vm.stack.push(vm.readConstant())

		case bytecode.OpPop:
			vm.stack.pop()

		case bytecode.OpAdd:
			b, a := vm.stack.pop(), vm.stack.pop()
			v, rerr := bytecode.Add(a, b, vm.strings)
			vm.checkValueOp(rerr)
			vm.stack.push(v)

		case bytecode.OpSub:
			b, a := vm.stack.pop(), vm.stack.pop()
			v, rerr := bytecode.Sub(a, b)
			vm.checkValueOp(rerr)
			vm.stack.push(v)

		case bytecode.OpMul:
			b, a := vm.stack.pop(), vm.stack.pop()
			v, rerr := bytecode.Mul(a, b)
			vm.checkValueOp(rerr)
			vm.stack.push(v)

		case bytecode.OpDiv:
			b, a := vm.stack.pop(), vm.stack.pop()
			v, rerr := bytecode.Div(a, b)
			vm.checkValueOp(rerr)
			vm.stack.push(v)

		case bytecode.OpAnd:
			b, a := vm.stack.pop(), vm.stack.pop()
			v, rerr := bytecode.And(a, b)
			vm.checkValueOp(rerr)
			vm.stack.push(v)

		case bytecode.OpOr:
			b, a := vm.stack.pop(), vm.stack.pop()
			v, rerr := bytecode.Or(a, b)
			vm.checkValueOp(rerr)
			vm.stack.push(v)

		case bytecode.OpNot:
			a := vm.stack.pop()
			v, rerr := bytecode.Not(a)
			vm.checkValueOp(rerr)
			vm.stack.push(v)

		case bytecode.OpNegate:
			a := vm.stack.pop()
			v, rerr := bytecode.Negate(a)
			vm.checkValueOp(rerr)
			vm.stack.push(v)

		case bytecode.OpEqual:
			b, a := vm.stack.pop(), vm.stack.pop()
			vm.stack.push(bytecode.NewBool(bytecode.Equal(a, b)))

		case bytecode.OpLess:
			b, a := vm.stack.pop(), vm.stack.pop()
			v, rerr := bytecode.Lt(a, b)
			vm.checkValueOp(rerr)
			vm.stack.push(v)

		case bytecode.OpGreater:
			b, a := vm.stack.pop(), vm.stack.pop()
			v, rerr := bytecode.Gt(a, b)
			vm.checkValueOp(rerr)
			vm.stack.push(v)

		case bytecode.OpPrint:
			fmt.Fprintf(vm.out, "%v\n", vm.stack.pop())

		case bytecode.OpDefineGlobal:
			name := vm.stack.pop()
			value := vm.stack.pop()
			vm.globals[vm.nameOf(name)] = value

		case bytecode.OpSetGlobal:
			name := vm.stack.pop()
			value := vm.stack.pop()
			key := vm.nameOf(name)
			if _, ok := vm.globals[key]; !ok {
				panic(errs.NewRuntime(errs.UnboundGlobal, "undefined variable '%s'", key))
			}
			vm.globals[key] = value

		case bytecode.OpGetGlobal:
			name := vm.stack.pop()
			key := vm.nameOf(name)
			value, ok := vm.globals[key]
			if !ok {
				panic(errs.NewRuntime(errs.UnboundGlobal, "undefined variable '%s'", key))
			}
			vm.stack.push(value)

		case bytecode.OpSetLocal:
			slot := vm.readByte()
			vm.stack.setAt(vm.frame.slotsBase+int(slot), vm.stack.peek(0))

		case bytecode.OpGetLocal:
			slot := vm.readByte()
			vm.stack.push(vm.stack.at(vm.frame.slotsBase + int(slot)))

		case bytecode.OpJump:
			offset := vm.readU16()
			vm.frame.ip += int(offset)

		case bytecode.OpJumpIfFalse:
			offset := vm.readU16()
			falsey, rerr := bytecode.IsFalsey(vm.stack.peek(0))
			vm.checkValueOp(rerr)
			if falsey {
				vm.frame.ip += int(offset)
			}

		case bytecode.OpLoop:
			offset := vm.readU16()
			vm.frame.ip -= int(offset)

		case bytecode.OpCall:
			argc := int(vm.readByte())
			vm.call(argc)

		case bytecode.OpReturn:
			value := vm.stack.pop()
			vm.closeUpvalues(vm.frame.slotsBase)
			vm.stack.truncate(vm.frame.slotsBase)
			vm.stack.push(value)

			if len(vm.frames) == 1 {
				return value
			}

			vm.frames = vm.frames[:len(vm.frames)-1]
			vm.frame = vm.frames[len(vm.frames)-1]

		case bytecode.OpClosure:
			vm.closureOp()

		case bytecode.OpGetUpvalue:
			i := vm.readByte()
			vm.stack.push(vm.frame.closure.Upvalues[i].Get())

		case bytecode.OpSetUpvalue:
			i := vm.readByte()
			vm.frame.closure.Upvalues[i].Set(vm.stack.peek(0))

		default:
			panic(errs.NewRuntime(errs.UnknownOpcode, "unknown opcode %d", op))
		}
	}
}

// checkValueOp panics with rerr if it is non-nil. Centralizes the
// "value operation failed, surface a RuntimeError" rule.
func (vm *VM) checkValueOp(rerr *errs.Runtime) {
	if rerr != nil {
		panic(rerr)
	}
}

// nameOf extracts the Go string backing a Lumen string Value, panicking
// with kind Type if name isn't actually a string (which would mean a
// producer emitted DEFINE_GLOBAL/SET_GLOBAL/GET_GLOBAL against something
// that isn't a name).
func (vm *VM) nameOf(name bytecode.Value) string {
	if !name.IsString() {
		panic(errs.NewRuntime(errs.Type, "global variable name must be a string, got %v", name.TypeName()))
	}
	return name.AsString().Text
}

// readByte reads the byte at the current frame's ip and advances it.
func (vm *VM) readByte() uint8 {
	b, ok := vm.frame.chunk().Code.At(vm.frame.ip)
	if !ok {
		panic(errs.NewRuntime(errs.UnknownOpcode, "ip %d out of range for chunk", vm.frame.ip))
	}
	vm.frame.ip++
	return b
}

// readU16 reads the big-endian 16-bit operand at the current frame's ip and
// advances it by two.
func (vm *VM) readU16() uint16 {
	hi := vm.readByte()
	lo := vm.readByte()
	return uint16(hi)<<8 | uint16(lo)
}

// readConstant reads a 1-byte constant index at the current frame's ip and
// returns the corresponding constant.
func (vm *VM) readConstant() bytecode.Value {
	idx := vm.readByte()
	constants := vm.frame.chunk().Constants
	if int(idx) >= len(constants) {
		panic(errs.NewRuntime(errs.InvalidSlot, "constant index %d out of range", idx))
	}
	return constants[idx]
}

// call implements the CALL instruction: peek the callee at depth argc, and
// dispatch on its kind.
func (vm *VM) call(argc int) {
	callee := vm.stack.peek(argc)

	switch {
	case callee.IsClosure():
		closure := callee.AsClosure()
		vm.pushCallFrame(closure.Function, closure, argc)

	case callee.IsFunction():
		vm.pushCallFrame(callee.AsFunction(), nil, argc)

	case callee.IsNativeFunction():
		vm.callNative(callee.AsNativeFunction(), argc)

	default:
		panic(errs.NewRuntime(errs.CallTarget, "can only call functions, got %v", callee.TypeName()))
	}
}

// pushCallFrame checks fn's arity against argc and pushes a new call frame
// for it. This applies to Function/Closure callees exactly as it already does to
// NativeFunction callees.
func (vm *VM) pushCallFrame(fn *bytecode.Function, closure *bytecode.Closure, argc int) {
	if argc != fn.Arity {
		panic(errs.NewRuntime(errs.ArityMismatch, "%s expects %d argument(s), got %d", fn.Name, fn.Arity, argc))
	}
	frame := &callFrame{
		function:  fn,
		closure:   closure,
		slotsBase: vm.stack.size() - argc - 1,
	}
	vm.frames = append(vm.frames, frame)
	vm.frame = frame
}

// callNative implements the native half of CALL: check arity, gather
// arguments, pop them and the callee, invoke the host callable, push its
// result.
func (vm *VM) callNative(native *bytecode.NativeFunction, argc int) {
	if argc != native.Arity {
		panic(errs.NewRuntime(errs.ArityMismatch, "%s expects %d argument(s), got %d", native.Name, native.Arity, argc))
	}

	args := make([]bytecode.Value, argc)
	base := vm.stack.size() - argc
	for i := 0; i < argc; i++ {
		args[i] = vm.stack.at(base + i)
	}
	vm.stack.popN(argc + 1)

	result, err := native.Fn(args)
	if err != nil {
		panic(errs.NewRuntime(errs.Type, "%s: %v", native.Name, err))
	}
	vm.stack.push(result)
}

// closureOp implements the CLOSURE instruction: read the Function constant,
// then one (isLocal, index) pair per declared upvalue, capturing each from
// either the enclosing frame's locals or the enclosing closure's upvalues.
func (vm *VM) closureOp() {
	fnValue := vm.readConstant()
	fn := fnValue.AsFunction()

	upvalues := make([]*bytecode.Upvalue, fn.UpvalueCount)
	for i := 0; i < fn.UpvalueCount; i++ {
		isLocal := vm.readByte()
		index := vm.readByte()
		if isLocal != 0 {
			upvalues[i] = vm.captureUpvalue(vm.frame.slotsBase + int(index))
		} else {
			upvalues[i] = vm.frame.closure.Upvalues[index]
		}
	}

	closure := bytecode.NewClosure(fn, upvalues)
	vm.stack.push(bytecode.NewClosureValue(closure))
}

// captureUpvalue returns the open Upvalue already capturing the stack slot
// at index, creating and registering one if none exists yet. Two closures
// capturing the same local share a single Upvalue, so that writes through
// one are visible through the other.
func (vm *VM) captureUpvalue(index int) *bytecode.Upvalue {
	for _, entry := range vm.openUpvalues {
		if entry.index == index {
			return entry.uv
		}
	}
	uv := bytecode.NewOpenUpvalue(vm.stack.slotPointer(index))
	vm.openUpvalues = append(vm.openUpvalues, openUpvalue{index: index, uv: uv})
	return uv
}

// closeUpvalues closes every open Upvalue capturing a slot at or above
// from, copying its value onto the heap so it survives the stack slots
// being reused or discarded, then drops them from the open list.
func (vm *VM) closeUpvalues(from int) {
	if len(vm.openUpvalues) == 0 {
		return
	}
	kept := vm.openUpvalues[:0]
	for _, entry := range vm.openUpvalues {
		if entry.index >= from {
			entry.uv.Close()
			continue
		}
		kept = append(kept, entry)
	}
	vm.openUpvalues = kept
}

// printTrace prints the operand stack followed by the next instruction to
// execute.
func (vm *VM) printTrace() {
	fmt.Fprint(vm.out, "          ")
	for _, v := range vm.stack.values() {
		fmt.Fprintf(vm.out, "[ %v ]", v)
	}
	fmt.Fprintln(vm.out)
	vm.frame.chunk().DisassembleInstruction(vm.out, vm.frame.ip)
}

// buildTrace renders one line per active call frame, innermost first,
// suitable for attaching to a *errs.Runtime when a panic is caught.
func (vm *VM) buildTrace() []string {
	lines := make([]string, 0, len(vm.frames))
	for i := len(vm.frames) - 1; i >= 0; i-- {
		f := vm.frames[i]
		name := f.function.Name
		if name == "" {
			name = "<script>"
		}
		offset := f.ip - 1
		if line, ok := f.chunk().Lines.GetLine(offset); ok {
			lines = append(lines, fmt.Sprintf("[line %d] in %s", line, name))
		} else {
			lines = append(lines, fmt.Sprintf("in %s", name))
		}
	}
	return lines
}
