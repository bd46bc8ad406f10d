/******************************************************************************\
* Lumen                                                                        *
*                                                                              *
* Copyright 2024-2026 The Lumen Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package bytecode

// lineRun is one run of consecutive instruction bytes that all came from the
// same source line.
type lineRun struct {
	count int
	line  int
}

// LineRunList is a run-length-encoded mapping from instruction-byte offset to
// source line. Appending the same line repeatedly costs O(1) extra space;
// it only grows when the line actually changes.
type LineRunList struct {
	runs []lineRun
}

// Add records that the next instruction byte was generated by source line.
// Extends the last run if line matches it, otherwise starts a new run.
func (l *LineRunList) Add(line int) {
	if n := len(l.runs); n > 0 && l.runs[n-1].line == line {
		l.runs[n-1].count++
		return
	}
	l.runs = append(l.runs, lineRun{count: 1, line: line})
}

// GetLine returns the source line that generated the instruction byte at
// offset, and true. Returns (0, false) if offset is beyond the total byte
// count recorded so far.
func (l *LineRunList) GetLine(offset int) (int, bool) {
	if offset < 0 {
		return 0, false
	}
	base := 0
	for _, r := range l.runs {
		if offset < base+r.count {
			return r.line, true
		}
		base += r.count
	}
	return 0, false
}

// TotalCount returns the number of instruction bytes this run-list accounts
// for. Must always equal the owning Chunk's Code.Len().
func (l *LineRunList) TotalCount() int {
	total := 0
	for _, r := range l.runs {
		total += r.count
	}
	return total
}
