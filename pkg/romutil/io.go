/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package romutil

import (
	"io"
	"strings"
)

//
// Body parts
//

// A Mouth is something that can produce output for Lumen. It is the
// abstraction representing how the VM outputs data. A Mouth never returns an
// error, which is technically wrong but should be true enough for the uses
// cases that matter.
type Mouth interface {
	// Say outputs the given string. In fact, it buffers the string, and only
	// outputs it when Flush is called.
	Say(string)

	// Flush outputs all strings buffered by calls to Say.
	Flush()
}

//
// writerMouth
//

// NewWriterMouth creates a new Mouth that outputs to the given io.Writer.
func NewWriterMouth(w io.Writer) Mouth {
	return &writerMouth{w: w}
}

// writerMouth is a Mouth that outputs to an io.Writer.
type writerMouth struct {
	w       io.Writer
	buffer  strings.Builder
	hasData bool
}

// Say buffers the given string; Flush writes it to the underlying io.Writer.
func (wm *writerMouth) Say(s string) {
	// WriteString() always returns a nil error.
	wm.buffer.WriteString(s)
	wm.hasData = true
}

// Flush effectively outputs the strings previously Say()ed.
func (wm *writerMouth) Flush() {
	if !wm.hasData {
		return
	}

	s := wm.buffer.String()
	wm.buffer.Reset()

	// Ignore errors. Hopefully this will not be too bad for the envisioned use
	// cases (std output and in-memory buffers).
	_, _ = wm.w.Write([]byte(s))
	wm.hasData = false
}

//
// memoryMouth
//

// MemoryMouth is a Mouth that stores all output in memory so we can check it
// later. Good for testing.
type MemoryMouth struct {
	Outputs []string
	buffer  strings.Builder
	hasData bool
}

// Say stores the said string in memory.
func (mm *MemoryMouth) Say(s string) {
	mm.hasData = true
	mm.buffer.WriteString(s)
}

// Flush outputs the buffered strings previously Say()ed.
func (mm *MemoryMouth) Flush() {
	if !mm.hasData {
		return
	}
	s := mm.buffer.String()
	mm.buffer.Reset()
	mm.Outputs = append(mm.Outputs, s)
	mm.hasData = false
}

//
// mouthWriter
//

// MouthWriter adapts a Mouth into an io.Writer, so callers that only know
// how to write to an io.Writer (like the VM's PRINT instruction) can still
// have their output collected by a Mouth, including a MemoryMouth in tests.
// Each Write is Said and immediately Flushed, with its trailing newline (if
// any) trimmed, so one VM PRINT becomes exactly one entry in a MemoryMouth's
// Outputs.
func MouthWriter(m Mouth) io.Writer {
	return &mouthWriter{m: m}
}

type mouthWriter struct {
	m Mouth
}

func (w *mouthWriter) Write(p []byte) (int, error) {
	w.m.Say(strings.TrimSuffix(string(p), "\n"))
	w.m.Flush()
	return len(p), nil
}
