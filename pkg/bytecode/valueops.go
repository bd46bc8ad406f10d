/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package bytecode

import "github.com/lumenlang/lumen/pkg/errs"

// Add implements the ADD instruction's operation: numeric addition, or
// string concatenation (which interns the result through in). Fails with
// kind Type for any other combination of operand cases.
func Add(a, b Value, in *Interner) (Value, *errs.Runtime) {
	if a.IsNumber() && b.IsNumber() {
		return NewNumber(a.AsNumber() + b.AsNumber()), nil
	}
	if a.IsString() && b.IsString() {
		return NewStringValue(in.Intern(a.AsString().Text + b.AsString().Text)), nil
	}
	return Value{}, errs.NewRuntime(errs.Type, "operands to ADD must be two numbers or two strings, got %v and %v", a.TypeName(), b.TypeName())
}

// Sub implements the SUB instruction's operation: numeric subtraction only.
func Sub(a, b Value) (Value, *errs.Runtime) {
	if !a.IsNumber() || !b.IsNumber() {
		return Value{}, errs.NewRuntime(errs.Type, "operands to SUB must be numbers, got %v and %v", a.TypeName(), b.TypeName())
	}
	return NewNumber(a.AsNumber() - b.AsNumber()), nil
}

// Mul implements the MUL instruction's operation: numeric multiplication
// only.
func Mul(a, b Value) (Value, *errs.Runtime) {
	if !a.IsNumber() || !b.IsNumber() {
		return Value{}, errs.NewRuntime(errs.Type, "operands to MUL must be numbers, got %v and %v", a.TypeName(), b.TypeName())
	}
	return NewNumber(a.AsNumber() * b.AsNumber()), nil
}

// Div implements the DIV instruction's operation: numeric division only.
func Div(a, b Value) (Value, *errs.Runtime) {
	if !a.IsNumber() || !b.IsNumber() {
		return Value{}, errs.NewRuntime(errs.Type, "operands to DIV must be numbers, got %v and %v", a.TypeName(), b.TypeName())
	}
	return NewNumber(a.AsNumber() / b.AsNumber()), nil
}

// Lt implements the LESS instruction's operation: numeric less-than only.
func Lt(a, b Value) (Value, *errs.Runtime) {
	if !a.IsNumber() || !b.IsNumber() {
		return Value{}, errs.NewRuntime(errs.Type, "operands to LESS must be numbers, got %v and %v", a.TypeName(), b.TypeName())
	}
	return NewBool(a.AsNumber() < b.AsNumber()), nil
}

// Gt implements the GREATER instruction's operation: numeric
// greater-than only.
func Gt(a, b Value) (Value, *errs.Runtime) {
	if !a.IsNumber() || !b.IsNumber() {
		return Value{}, errs.NewRuntime(errs.Type, "operands to GREATER must be numbers, got %v and %v", a.TypeName(), b.TypeName())
	}
	return NewBool(a.AsNumber() > b.AsNumber()), nil
}

// And implements the AND instruction's operation. Per spec, this is
// stricter than usual Lox truthiness: both operands must be booleans.
func And(a, b Value) (Value, *errs.Runtime) {
	if !a.IsBool() || !b.IsBool() {
		return Value{}, errs.NewRuntime(errs.Type, "operands to AND must be booleans, got %v and %v", a.TypeName(), b.TypeName())
	}
	return NewBool(a.AsBool() && b.AsBool()), nil
}

// Or implements the OR instruction's operation. Like And, both operands
// must be booleans.
func Or(a, b Value) (Value, *errs.Runtime) {
	if !a.IsBool() || !b.IsBool() {
		return Value{}, errs.NewRuntime(errs.Type, "operands to OR must be booleans, got %v and %v", a.TypeName(), b.TypeName())
	}
	return NewBool(a.AsBool() || b.AsBool()), nil
}

// Not implements the NOT instruction's operation: boolean negation only.
func Not(a Value) (Value, *errs.Runtime) {
	if !a.IsBool() {
		return Value{}, errs.NewRuntime(errs.Type, "operand to NOT must be a boolean, got %v", a.TypeName())
	}
	return NewBool(!a.AsBool()), nil
}

// Negate implements the NEGATE instruction's operation: numeric negation
// only.
func Negate(a Value) (Value, *errs.Runtime) {
	if !a.IsNumber() {
		return Value{}, errs.NewRuntime(errs.Type, "operand to NEGATE must be a number, got %v", a.TypeName())
	}
	return NewNumber(-a.AsNumber()), nil
}

// IsFalsey is the predicate JUMP_IF_FALSE tests: true for boolean false,
// false for boolean true, and a Type error for anything else. Defined only
// on booleans, per spec.
func IsFalsey(a Value) (bool, *errs.Runtime) {
	if !a.IsBool() {
		return false, errs.NewRuntime(errs.Type, "condition must be a boolean, got %v", a.TypeName())
	}
	return !a.AsBool(), nil
}
