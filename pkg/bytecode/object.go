/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package bytecode

// String is an immutable, interned sequence of bytes. Identity (pointer
// equality) is guaranteed for two Strings with the same contents, as long as
// both were created through the same Interner.
type String struct {
	Text string
}

// Interner is a registry that canonicalizes String handles by byte content.
// Every VM owns exactly one Interner; it is created alongside the VM and
// lives as long as the VM does: a process-wide, lazily-initialized pool
// would let two independent VM instances corrupt each other's strings.
type Interner struct {
	pool map[string]*String
}

// NewInterner creates an empty, ready-to-use Interner.
func NewInterner() *Interner {
	return &Interner{pool: make(map[string]*String)}
}

// Intern returns the canonical *String for text, creating and registering
// one if this is the first time text has been seen.
func (in *Interner) Intern(text string) *String {
	if s, ok := in.pool[text]; ok {
		return s
	}
	s := &String{Text: text}
	in.pool[text] = s
	return s
}

// Len reports how many distinct strings are currently interned. Mostly
// useful for tests asserting on interning behavior.
func (in *Interner) Len() int {
	return len(in.pool)
}

// Function is the immutable, compiled representation of a Lumen function: a
// name, its arity, the Chunk of bytecode implementing its body, and how many
// upvalues its closures must capture.
//
// A Function owns its Chunk: nothing outside the Function holds a reference
// to that specific Chunk, so in a garbage-collected runtime like Go the
// Chunk is reclaimed exactly when the Function is.
type Function struct {
	Name         string
	Arity        int
	Chunk        *Chunk
	UpvalueCount int
}

// NewFunction creates a Function taking ownership of chunk.
func NewFunction(name string, arity int, chunk *Chunk) *Function {
	return &Function{Name: name, Arity: arity, Chunk: chunk}
}

// NativeFunc is the Go-side implementation of a NativeFunction: given the
// arguments (already arity-checked by the caller), it returns the value to
// push, or an error if the native itself fails.
type NativeFunc func(args []Value) (Value, error)

// NativeFunction is a host-provided callable, exposed to Lumen code under a
// name and with a fixed arity that CALL must honor.
type NativeFunction struct {
	Name  string
	Arity int
	Fn    NativeFunc
}

// NewNativeFunction creates a NativeFunction.
func NewNativeFunction(name string, arity int, fn NativeFunc) *NativeFunction {
	return &NativeFunction{Name: name, Arity: arity, Fn: fn}
}

// Upvalue is an indirection cell capturing a variable from an enclosing
// scope. While Location is non-nil, it points at a live operand-stack slot;
// once the enclosing frame returns, the cell is "closed" by copying the
// slot's value into Closed and clearing Location.
type Upvalue struct {
	Location *Value
	Closed   Value
}

// NewOpenUpvalue creates an Upvalue pointing at a live stack slot.
func NewOpenUpvalue(slot *Value) *Upvalue {
	return &Upvalue{Location: slot}
}

// Get returns the value currently captured by this upvalue, whether it is
// still open (reading through Location) or already closed.
func (u *Upvalue) Get() Value {
	if u.Location != nil {
		return *u.Location
	}
	return u.Closed
}

// Set overwrites the value currently captured by this upvalue.
func (u *Upvalue) Set(v Value) {
	if u.Location != nil {
		*u.Location = v
		return
	}
	u.Closed = v
}

// Close detaches the upvalue from the stack slot it was pointing at, copying
// the slot's current value into the cell so it survives the frame unwinding.
// A no-op if the upvalue is already closed.
func (u *Upvalue) Close() {
	if u.Location == nil {
		return
	}
	u.Closed = *u.Location
	u.Location = nil
}

// IsOpen reports whether this upvalue still points at a live stack slot.
func (u *Upvalue) IsOpen() bool {
	return u.Location != nil
}

// Closure pairs a Function with the Upvalues its body captures. A Closure
// does not own its Function: many closures can share one, since the
// Function is immutable compiled data.
type Closure struct {
	Function *Function
	Upvalues []*Upvalue
}

// NewClosure creates a Closure wrapping function with the given upvalues.
// len(upvalues) must equal function.UpvalueCount.
func NewClosure(function *Function, upvalues []*Upvalue) *Closure {
	return &Closure{Function: function, Upvalues: upvalues}
}
