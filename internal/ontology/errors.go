package ontology

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedOperator is returned for a concrete-domain operator other than equality.
	ErrUnsupportedOperator = errors.New("unsupported concrete-domain operator")
	// ErrRoleCycle is returned when the role hierarchy below the attribute root is cyclic.
	ErrRoleCycle = errors.New("cycle in role hierarchy")
)

// UnsupportedOperatorError names the offending fact.
type UnsupportedOperatorError struct {
	Component string
	Feature   string
	Operator  string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("%v: %s on %s of %s", ErrUnsupportedOperator, e.Operator, e.Feature, e.Component)
}

func (e *UnsupportedOperatorError) Unwrap() error {
	return ErrUnsupportedOperator
}

// CycleError reports the role reached again while it was still being descended.
type CycleError struct {
	Role string
	From string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %s reached again from %s", ErrRoleCycle, e.Role, e.From)
}

func (e *CycleError) Unwrap() error {
	return ErrRoleCycle
}
