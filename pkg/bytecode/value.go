/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package bytecode

import (
	"fmt"
)

// ValueKind identifies which case a Value currently holds.
type ValueKind int

const (
	ValueNil ValueKind = iota
	ValueNumber
	ValueBool
	ValueString
	ValueFunction
	ValueNativeFunction
	ValueClosure
)

// Value is a tagged variant over the seven cases the Lumen VM can operate on.
// Only the field matching Kind is meaningful; the rest are zero.
type Value struct {
	Kind ValueKind

	number float64
	bool   bool

	str      *String
	function *Function
	native   *NativeFunction
	closure  *Closure
}

// NilValue is the single nil value.
var NilValue = Value{Kind: ValueNil}

// NewNumber creates a number Value.
func NewNumber(n float64) Value {
	return Value{Kind: ValueNumber, number: n}
}

// NewBool creates a boolean Value.
func NewBool(b bool) Value {
	return Value{Kind: ValueBool, bool: b}
}

// NewStringValue creates a Value wrapping an already-interned String.
func NewStringValue(s *String) Value {
	return Value{Kind: ValueString, str: s}
}

// NewFunctionValue creates a Value wrapping a Function.
func NewFunctionValue(f *Function) Value {
	return Value{Kind: ValueFunction, function: f}
}

// NewNativeValue creates a Value wrapping a NativeFunction.
func NewNativeValue(n *NativeFunction) Value {
	return Value{Kind: ValueNativeFunction, native: n}
}

// NewClosureValue creates a Value wrapping a Closure.
func NewClosureValue(c *Closure) Value {
	return Value{Kind: ValueClosure, closure: c}
}

// IsNil reports whether v holds the nil case.
func (v Value) IsNil() bool { return v.Kind == ValueNil }

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool { return v.Kind == ValueNumber }

// IsBool reports whether v holds a boolean.
func (v Value) IsBool() bool { return v.Kind == ValueBool }

// IsString reports whether v holds a string.
func (v Value) IsString() bool { return v.Kind == ValueString }

// IsFunction reports whether v holds a function.
func (v Value) IsFunction() bool { return v.Kind == ValueFunction }

// IsNativeFunction reports whether v holds a native function.
func (v Value) IsNativeFunction() bool { return v.Kind == ValueNativeFunction }

// IsClosure reports whether v holds a closure.
func (v Value) IsClosure() bool { return v.Kind == ValueClosure }

// AsNumber returns v's number payload. Only meaningful if IsNumber().
func (v Value) AsNumber() float64 { return v.number }

// AsBool returns v's boolean payload. Only meaningful if IsBool().
func (v Value) AsBool() bool { return v.bool }

// AsString returns v's String payload. Only meaningful if IsString().
func (v Value) AsString() *String { return v.str }

// AsFunction returns v's Function payload. Only meaningful if IsFunction().
func (v Value) AsFunction() *Function { return v.function }

// AsNativeFunction returns v's NativeFunction payload. Only meaningful if
// IsNativeFunction().
func (v Value) AsNativeFunction() *NativeFunction { return v.native }

// AsClosure returns v's Closure payload. Only meaningful if IsClosure().
func (v Value) AsClosure() *Closure { return v.closure }

// IsCallable reports whether v can appear as the callee of a CALL
// instruction (a Function, NativeFunction, or Closure).
func (v Value) IsCallable() bool {
	switch v.Kind {
	case ValueFunction, ValueNativeFunction, ValueClosure:
		return true
	default:
		return false
	}
}

// String renders v for disassembly, tracing, and the PRINT instruction.
func (v Value) String() string {
	switch v.Kind {
	case ValueNil:
		return "nil"
	case ValueNumber:
		return fmt.Sprintf("%g", v.number)
	case ValueBool:
		if v.bool {
			return "true"
		}
		return "false"
	case ValueString:
		return v.str.Text
	case ValueFunction:
		if v.function.Name == "" {
			return "<script>"
		}
		return fmt.Sprintf("<fn %s>", v.function.Name)
	case ValueNativeFunction:
		return fmt.Sprintf("<native fn %s>", v.native.Name)
	case ValueClosure:
		return fmt.Sprintf("<closure %s>", v.closure.Function.Name)
	default:
		return fmt.Sprintf("<unexpected value kind %d>", v.Kind)
	}
}

// TypeName returns a short, user-facing name for v's case. Used in error
// messages.
func (v Value) TypeName() string {
	switch v.Kind {
	case ValueNil:
		return "nil"
	case ValueNumber:
		return "number"
	case ValueBool:
		return "boolean"
	case ValueString:
		return "string"
	case ValueFunction:
		return "function"
	case ValueNativeFunction:
		return "native function"
	case ValueClosure:
		return "closure"
	default:
		return "unknown"
	}
}

// Equal reports whether a and b are equal under Lumen's equality rules:
// values of different kinds are unequal; numbers and booleans compare by
// value; strings compare by interned identity (pointer equality);
// functions/closures/natives compare by identity.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ValueNil:
		return true
	case ValueNumber:
		return a.number == b.number
	case ValueBool:
		return a.bool == b.bool
	case ValueString:
		return a.str == b.str
	case ValueFunction:
		return a.function == b.function
	case ValueNativeFunction:
		return a.native == b.native
	case ValueClosure:
		return a.closure == b.closure
	default:
		return false
	}
}
