package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter marks a precondition violation detected before any mutation.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsolvable reports that the search exhausted every choice point.
	ErrUnsolvable = errors.New("board is unsolvable")
)

// ParamError carries the offending argument name and value.
type ParamError struct {
	Name  string
	Value int
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%d", e.Name, e.Value)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParameter }
