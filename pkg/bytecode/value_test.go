/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package bytecode

import "testing"

func TestValuePredicatesAndAccessors(t *testing.T) {
	n := NewNumber(3.5)
	if !n.IsNumber() || n.AsNumber() != 3.5 {
		t.Fatalf("expected number 3.5, got %v", n)
	}

	b := NewBool(true)
	if !b.IsBool() || !b.AsBool() {
		t.Fatalf("expected boolean true, got %v", b)
	}

	if !NilValue.IsNil() {
		t.Fatal("expected NilValue.IsNil()")
	}

	in := NewInterner()
	s := NewStringValue(in.Intern("hi"))
	if !s.IsString() || s.AsString().Text != "hi" {
		t.Fatalf("expected string 'hi', got %v", s)
	}
}

func TestValueIsCallable(t *testing.T) {
	fn := NewFunctionValue(NewFunction("f", 0, NewChunk()))
	native := NewNativeValue(NewNativeFunction("n", 0, func(args []Value) (Value, error) { return NilValue, nil }))
	closure := NewClosureValue(NewClosure(NewFunction("c", 0, NewChunk()), nil))

	for _, v := range []Value{fn, native, closure} {
		if !v.IsCallable() {
			t.Fatalf("expected %v to be callable", v)
		}
	}

	for _, v := range []Value{NilValue, NewNumber(1), NewBool(false)} {
		if v.IsCallable() {
			t.Fatalf("expected %v not to be callable", v)
		}
	}
}

func TestValueStringRendering(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{NilValue, "nil"},
		{NewNumber(12), "12"},
		{NewBool(true), "true"},
		{NewBool(false), "false"},
		{NewFunctionValue(NewFunction("", 0, NewChunk())), "<script>"},
		{NewFunctionValue(NewFunction("fac", 1, NewChunk())), "<fn fac>"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestEqual(t *testing.T) {
	in := NewInterner()
	a := NewStringValue(in.Intern("x"))
	b := NewStringValue(in.Intern("x"))
	if !Equal(a, b) {
		t.Fatal("expected two interned strings with the same text to be equal")
	}

	if Equal(NewNumber(1), NewBool(true)) {
		t.Fatal("expected values of different kinds to never be equal")
	}

	if !Equal(NewNumber(1.5), NewNumber(1.5)) {
		t.Fatal("expected equal numbers to compare equal")
	}
	if Equal(NewNumber(1), NewNumber(2)) {
		t.Fatal("expected different numbers to compare unequal")
	}
}
