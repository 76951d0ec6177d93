package cmd

import (
	"github.com/joaomoura/pvmc/internal/semantic"
	"github.com/joaomoura/pvmc/internal/token"
)

// errPos extracts the diagnostic position carried by a codegen error.
func errPos(err error) token.Position {
	switch e := err.(type) {
	case *semantic.UndeclaredIdentifier:
		return e.Pos
	case *semantic.UndeclaredProcedure:
		return e.Pos
	case *semantic.NotAnArray:
		return e.Pos
	}
	return token.Position{}
}
