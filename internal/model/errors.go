package model

import "fmt"

// UnknownColumnError reports a requested column the table does not declare.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q", e.Column)
}

// NonNumericColumnError reports a column holding cells that are not numbers.
type NonNumericColumnError struct {
	Column string
}

func (e *NonNumericColumnError) Error() string {
	return fmt.Sprintf("column %q is not numeric", e.Column)
}
