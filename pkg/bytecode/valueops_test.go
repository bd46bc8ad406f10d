/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package bytecode

import (
	"testing"

	"github.com/lumenlang/lumen/pkg/errs"
)

func TestAddNumbers(t *testing.T) {
	got, err := Add(NewNumber(2), NewNumber(3), NewInterner())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AsNumber() != 5 {
		t.Fatalf("got %v, want 5", got)
	}
}

func TestAddStringsInterns(t *testing.T) {
	in := NewInterner()
	a := NewStringValue(in.Intern("foo"))
	b := NewStringValue(in.Intern("bar"))

	got, err := Add(a, b, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AsString().Text != "foobar" {
		t.Fatalf("got %q, want %q", got.AsString().Text, "foobar")
	}

	// Interning again must return the very same *String.
	again := in.Intern("foobar")
	if got.AsString() != again {
		t.Fatal("expected concatenation result to be interned")
	}
}

func TestAddMixedTypesIsTypeError(t *testing.T) {
	_, err := Add(NewNumber(1), NewBool(true), NewInterner())
	if err == nil || err.Kind != errs.Type {
		t.Fatalf("expected a Type error, got %v", err)
	}
}

func TestArithmeticRejectsNonNumbers(t *testing.T) {
	ops := map[string]func(a, b Value) (Value, *errs.Runtime){
		"SUB":     Sub,
		"MUL":     Mul,
		"DIV":     Div,
		"LESS":    Lt,
		"GREATER": Gt,
	}
	for name, op := range ops {
		if _, err := op(NewNumber(1), NewBool(true)); err == nil || err.Kind != errs.Type {
			t.Errorf("%s: expected Type error for non-number operand, got %v", name, err)
		}
		if got, err := op(NewNumber(4), NewNumber(2)); err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
		} else if got.IsNumber() == got.IsBool() {
			t.Errorf("%s: result %v should be exactly one of number or boolean", name, got)
		}
	}
}

func TestLtAndGt(t *testing.T) {
	lt, err := Lt(NewNumber(1), NewNumber(2))
	if err != nil || !lt.AsBool() {
		t.Fatalf("1 < 2 should be true, got %v, %v", lt, err)
	}
	gt, err := Gt(NewNumber(1), NewNumber(2))
	if err != nil || gt.AsBool() {
		t.Fatalf("1 > 2 should be false, got %v, %v", gt, err)
	}
}

func TestAndOrRequireBooleans(t *testing.T) {
	if _, err := And(NewNumber(1), NewBool(true)); err == nil || err.Kind != errs.Type {
		t.Fatalf("expected Type error from AND with a non-boolean operand, got %v", err)
	}
	if _, err := Or(NewNumber(1), NewBool(true)); err == nil || err.Kind != errs.Type {
		t.Fatalf("expected Type error from OR with a non-boolean operand, got %v", err)
	}

	got, err := And(NewBool(true), NewBool(false))
	if err != nil || got.AsBool() {
		t.Fatalf("true AND false should be false, got %v, %v", got, err)
	}
	got, err = Or(NewBool(true), NewBool(false))
	if err != nil || !got.AsBool() {
		t.Fatalf("true OR false should be true, got %v, %v", got, err)
	}
}

func TestNotRequiresBoolean(t *testing.T) {
	if _, err := Not(NewNumber(1)); err == nil || err.Kind != errs.Type {
		t.Fatalf("expected Type error from NOT on a number, got %v", err)
	}
	got, err := Not(NewBool(false))
	if err != nil || !got.AsBool() {
		t.Fatalf("NOT false should be true, got %v, %v", got, err)
	}
}

func TestNegateRequiresNumber(t *testing.T) {
	if _, err := Negate(NewBool(true)); err == nil || err.Kind != errs.Type {
		t.Fatalf("expected Type error from NEGATE on a boolean, got %v", err)
	}
	got, err := Negate(NewNumber(3))
	if err != nil || got.AsNumber() != -3 {
		t.Fatalf("NEGATE 3 should be -3, got %v, %v", got, err)
	}
}

func TestIsFalseyRequiresBoolean(t *testing.T) {
	if _, err := IsFalsey(NewNumber(0)); err == nil || err.Kind != errs.Type {
		t.Fatalf("expected Type error from IsFalsey on a number, got %v", err)
	}
	falsey, err := IsFalsey(NewBool(false))
	if err != nil || !falsey {
		t.Fatalf("IsFalsey(false) should be true, got %v, %v", falsey, err)
	}
	falsey, err = IsFalsey(NewBool(true))
	if err != nil || falsey {
		t.Fatalf("IsFalsey(true) should be false, got %v, %v", falsey, err)
	}
}
