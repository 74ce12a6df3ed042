package geotrellis

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMember           = errors.New("unknown member")
	ErrUnknownTag              = errors.New("unknown tag")
	ErrInapplicableCombination = errors.New("inapplicable combination")
)

// UnknownMemberError is returned when a symbolic name is not declared in an
// enumeration.
type UnknownMemberError struct {
	Enumeration string
	Name        string
}

func (e *UnknownMemberError) Error() string {
	return fmt.Sprintf("%s: unknown member %s", e.Enumeration, e.Name)
}

func (e *UnknownMemberError) Unwrap() error {
	return ErrUnknownMember
}

// UnknownTagError is returned when a string tag does not belong to an
// enumeration.
type UnknownTagError struct {
	Enumeration string
	Tag         string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("%s: unknown tag %q", e.Enumeration, e.Tag)
}

func (e *UnknownTagError) Unwrap() error {
	return ErrUnknownTag
}

// InapplicableCombinationError reports a pair of otherwise valid values that
// may not be used together.
type InapplicableCombinationError struct {
	Reason string
}

func (e *InapplicableCombinationError) Error() string {
	return "inapplicable combination: " + e.Reason
}

func (e *InapplicableCombinationError) Unwrap() error {
	return ErrInapplicableCombination
}

func inapplicable(format string, args ...interface{}) error {
	return &InapplicableCombinationError{Reason: fmt.Sprintf(format, args...)}
}
