package regexp

import "errors"

// ErrInvalidFlags indicates that a flag string holds an unknown or repeated
// modifier.
//
// It is wrapped by [CompileWithFlags] with the offending flag.
var ErrInvalidFlags = errors.New("invalid regexp flags")

// ErrPrecondition indicates that a caller broke a documented input contract.
//
// [PreconditionError] unwraps to it.
var ErrPrecondition = errors.New("assert failed")

// PreconditionError is the panic value raised when an operation receives an
// argument it must never be given, such as a non-regexp value passed to
// [Enhance]. It signals a bug in the caller and is not meant to be recovered
// by normal control flow.
type PreconditionError struct {
	// Expr is the asserted expression, e.g. "(regexp? re)".
	Expr string
}

func (e *PreconditionError) Error() string {
	return ErrPrecondition.Error() + ": " + e.Expr
}

func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}
