// Package cerr formats compiler diagnostics (lex, syntax and semantic
// errors) with source context, a line/column header, and a caret pointing
// at the offending column.
package cerr

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/joaomoura/pvmc/internal/token"
)

// CompilerError is a single diagnostic tied to a source position.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New builds a CompilerError from a position, message and the full source
// text it should quote context from.
func New(pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface with color disabled.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format renders the diagnostic: a header, the offending source line, a
// caret under the offending column, and the message. When color is true
// the caret and message are highlighted via fatih/color.
func (e *CompilerError) Format(useColor bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: ", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%d:%d: ", e.Pos.Line, e.Pos.Column)
	}

	highlight := color.New(color.FgRed, color.Bold)
	highlight.EnableColor()

	msg := e.Message
	if useColor {
		msg = highlight.Sprint(msg)
	}
	sb.WriteString(msg)

	if line := e.sourceLine(e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("\n%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		// The prefix on the quoted line is lineNumStr minus its leading
		// "\n"; column 1 sits right after it.
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)-2+e.Pos.Column))
		caret := "^"
		if useColor {
			caret = highlight.Sprint(caret)
		}
		sb.WriteString(caret)
	}

	return sb.String()
}

func (e *CompilerError) sourceLine(n int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// FormatErrors formats a slice of errors, one per Format call, joined by
// blank lines.
func FormatErrors(errs []*CompilerError, useColor bool) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Format(useColor)
	}
	return strings.Join(parts, "\n\n")
}
