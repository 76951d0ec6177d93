// Package asmbuf is the assembler's output buffer: an append-only ordered
// list of text lines (instructions and labels) that the code generator
// fills in and the compile command writes out verbatim.
package asmbuf

import (
	"fmt"
	"io"
	"strings"
)

// Buffer accumulates assembly lines in emission order.
type Buffer struct {
	lines []string
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// Emit appends "mnemonic operand...", space-separated, as one line.
func (b *Buffer) Emit(mnemonic string, operands ...string) {
	if len(operands) == 0 {
		b.lines = append(b.lines, mnemonic)
		return
	}
	b.lines = append(b.lines, mnemonic+" "+strings.Join(operands, " "))
}

// Label appends "name:" as its own line.
func (b *Buffer) Label(name string) {
	b.lines = append(b.lines, name+":")
}

// Lines returns the accumulated lines in emission order.
func (b *Buffer) Lines() []string {
	return b.lines
}

// Len reports how many lines have been emitted so far.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// WriteTo writes one line per entry, each terminated by "\n".
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, line := range b.lines {
		written, err := io.WriteString(w, line+"\n")
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// String renders the whole buffer as a single newline-terminated string.
func (b *Buffer) String() string {
	var sb strings.Builder
	b.WriteTo(&sb)
	return sb.String()
}

// Dump writes the buffer with 1-based line numbers, for debugging.
func (b *Buffer) Dump(w io.Writer) {
	for i, line := range b.lines {
		fmt.Fprintf(w, "%4d  %s\n", i+1, line)
	}
}
