/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package bytecode

// Chunk is a bundle of bytecode: an instruction stream, the constant pool it
// indexes into, and the line run-list mapping instruction offsets back to
// source lines. One Chunk backs one Function.
type Chunk struct {
	// Code is the instruction stream: opcodes and their inline operands.
	Code ByteBuffer

	// Constants is the indexed pool of Values this Chunk's CONSTANT and
	// CLOSURE instructions reference. Owned exclusively by this Chunk.
	Constants []Value

	// Lines is the run-length-encoded instruction-offset -> source-line map.
	Lines LineRunList
}

// NewChunk creates an empty Chunk, ready to be written into.
func NewChunk() *Chunk {
	return &Chunk{}
}

// WriteOpcode appends op's byte to Code and records line for it.
func (c *Chunk) WriteOpcode(op OpCode, line int) {
	c.WriteByte(uint8(op), line)
}

// WriteByte appends a raw byte (an opcode or an operand byte) to Code and
// records line for it.
func (c *Chunk) WriteByte(b uint8, line int) {
	c.Code.Push(b)
	c.Lines.Add(line)
}

// WriteU16 appends a big-endian 16-bit operand (used by JUMP/JUMP_IF_FALSE/
// LOOP) to Code, recording line for both bytes. Returns the offset of the
// first of the two bytes, handy for patching a forward jump once its target
// is known.
func (c *Chunk) WriteU16(v uint16, line int) int {
	offset := c.Code.Len()
	c.WriteByte(uint8(v>>8), line)
	c.WriteByte(uint8(v), line)
	return offset
}

// PatchU16 overwrites the big-endian 16-bit operand starting at offset (as
// returned by WriteU16) with v. Used to back-patch a forward jump once the
// bytecode for its target has been emitted.
func (c *Chunk) PatchU16(offset int, v uint16) {
	c.Code.data[offset] = uint8(v >> 8)
	c.Code.data[offset+1] = uint8(v)
}

// ReadU16 decodes the big-endian 16-bit operand at offset.
func (c *Chunk) ReadU16(offset int) uint16 {
	hi, _ := c.Code.At(offset)
	lo, _ := c.Code.At(offset + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// AddConstant appends value to the constant pool and returns its index.
func (c *Chunk) AddConstant(value Value) int {
	c.Constants = append(c.Constants, value)
	return len(c.Constants) - 1
}
