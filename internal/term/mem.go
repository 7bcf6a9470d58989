package term

import (
	"bytes"
	"io"
)

// Mem is an in-memory Terminal double for tests. Input bytes are
// scripted up front (or appended with Feed); all output, including
// cursor-control sequences, is captured verbatim for assertions.
type Mem struct {
	input    bytes.Buffer
	output   bytes.Buffer
	flushes  int
	rawDepth int
}

// NewMem creates a Mem whose ReadByte serves the given input bytes and
// then reports io.EOF.
func NewMem(input []byte) *Mem {
	m := &Mem{}
	m.input.Write(input)
	return m
}

// Feed appends more scripted input bytes.
func (m *Mem) Feed(p []byte) {
	m.input.Write(p)
}

// ReadByte returns the next scripted byte, or io.EOF when exhausted.
func (m *Mem) ReadByte() (byte, error) {
	b, err := m.input.ReadByte()
	if err != nil {
		return 0, io.EOF
	}
	return b, nil
}

// Write captures output bytes.
func (m *Mem) Write(p []byte) error {
	m.output.Write(p)
	return nil
}

// Flush records that a flush happened. Output is already visible.
func (m *Mem) Flush() error {
	m.flushes++
	return nil
}

// EnterRaw records raw-mode entry. Mem is inherently raw.
func (m *Mem) EnterRaw() error {
	m.rawDepth++
	return nil
}

// ExitRaw records raw-mode exit.
func (m *Mem) ExitRaw() error {
	m.rawDepth--
	return nil
}

// CursorLeft emits the ANSI cursor-back sequence into the output.
func (m *Mem) CursorLeft(n int) error {
	m.output.WriteString(CursorBack(n))
	return nil
}

// CursorRight emits the ANSI cursor-forward sequence into the output.
func (m *Mem) CursorRight(n int) error {
	m.output.WriteString(CursorForward(n))
	return nil
}

// ClearToEnd emits the ANSI erase-to-end-of-line sequence.
func (m *Mem) ClearToEnd() error {
	m.output.WriteString(ClearEOL)
	return nil
}

// WriteNewline emits a bare line feed.
func (m *Mem) WriteNewline() error {
	m.output.WriteByte('\n')
	return nil
}

// Output returns everything written so far.
func (m *Mem) Output() string {
	return m.output.String()
}

// Flushes returns how many times Flush was called.
func (m *Mem) Flushes() int {
	return m.flushes
}

// RawBalanced reports whether every EnterRaw was matched by an ExitRaw.
func (m *Mem) RawBalanced() bool {
	return m.rawDepth == 0
}
