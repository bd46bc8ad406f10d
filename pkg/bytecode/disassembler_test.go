/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package bytecode

import (
	"strings"
	"testing"
)

func TestDisassembleSimpleInstruction(t *testing.T) {
	c := NewChunk()
	c.WriteOpcode(OpAdd, 7)

	var out strings.Builder
	next := c.DisassembleInstruction(&out, 0)

	if next != 1 {
		t.Fatalf("expected next offset 1, got %d", next)
	}
	got := out.String()
	if !strings.Contains(got, "ADD") {
		t.Fatalf("expected output to mention ADD, got %q", got)
	}
	if !strings.Contains(got, "7") {
		t.Fatalf("expected output to mention line 7, got %q", got)
	}
}

func TestDisassembleConstant(t *testing.T) {
	c := NewChunk()
	idx := c.AddConstant(NewNumber(42))
	c.WriteOpcode(OpConstant, 1)
	c.WriteByte(uint8(idx), 1)

	var out strings.Builder
	next := c.DisassembleInstruction(&out, 0)

	if next != 2 {
		t.Fatalf("expected next offset 2, got %d", next)
	}
	got := out.String()
	if !strings.Contains(got, "CONSTANT") || !strings.Contains(got, "42") {
		t.Fatalf("expected output to mention CONSTANT and 42, got %q", got)
	}
}

func TestDisassembleJumpShowsTarget(t *testing.T) {
	c := NewChunk()
	c.WriteOpcode(OpJumpIfFalse, 1)
	operandOffset := c.WriteU16(0, 1)
	// Target three bytes past the end of this 3-byte jump (offset 0): at
	// offset 6. jumpOffset = target - (operandOffset + 2) = 6 - 3 = 3.
	c.PatchU16(operandOffset, 3)

	var out strings.Builder
	next := c.DisassembleInstruction(&out, 0)

	if next != 3 {
		t.Fatalf("expected next offset 3, got %d", next)
	}
	got := out.String()
	if !strings.Contains(got, "JUMP_IF_FALSE") || !strings.Contains(got, "-> 6") {
		t.Fatalf("expected output to show jump target 6, got %q", got)
	}
}

func TestDisassembleWholeChunkReachesEnd(t *testing.T) {
	c := NewChunk()
	c.WriteOpcode(OpNil, 1)
	c.WriteOpcode(OpTrue, 1)
	c.WriteOpcode(OpReturn, 2)

	var out strings.Builder
	c.Disassemble(&out, "test chunk")

	got := out.String()
	if !strings.Contains(got, "== test chunk ==") {
		t.Fatalf("expected banner in output, got %q", got)
	}
	if !strings.Contains(got, "NIL") || !strings.Contains(got, "TRUE") || !strings.Contains(got, "RETURN") {
		t.Fatalf("expected all three opcodes in output, got %q", got)
	}
}
