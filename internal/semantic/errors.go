package semantic

import (
	"fmt"

	"github.com/joaomoura/pvmc/internal/token"
)

// UndeclaredIdentifier is reported when a variable or array name is used
// without having been declared in the var section.
type UndeclaredIdentifier struct {
	Name string
	Pos  token.Position
}

func (e *UndeclaredIdentifier) Error() string {
	return fmt.Sprintf("undeclared identifier '%s' at %s", e.Name, e.Pos)
}

// UndeclaredProcedure is reported when a bare-identifier statement names a
// procedure that has not been declared (or declared later in the source,
// since forward references are not supported).
type UndeclaredProcedure struct {
	Name string
	Pos  token.Position
}

func (e *UndeclaredProcedure) Error() string {
	return fmt.Sprintf("undeclared procedure '%s' at %s", e.Name, e.Pos)
}

// NotAnArray is reported when an index expression ("name[i]") is applied to
// a name that was declared with a non-array type.
type NotAnArray struct {
	Name string
	Pos  token.Position
}

func (e *NotAnArray) Error() string {
	return fmt.Sprintf("'%s' is not an array at %s", e.Name, e.Pos)
}
