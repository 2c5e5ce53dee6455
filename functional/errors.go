package functional

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrNotCallable is returned when a value does not denote
	// a callable entity, or denotes an abstract signature where
	// something invocable is required.
	ErrNotCallable = errors.New("not a callable entity")

	// ErrNilFunction is returned when a function value
	// or function reference is nil.
	ErrNilFunction = errors.New("nil function")
)

// ConstraintError is returned by a transformer whose capability
// predicate does not hold. Op names the predicate; Err holds
// every violation found.
type ConstraintError struct {
	Op  string
	Err error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("functional: %s constraint not satisfied: %v", e.Op, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// NoExceptError is the panic value raised when a panic escapes
// a callable that was synthesized with the noexcept specifier.
type NoExceptError struct {
	Op        string
	Signature Signature
	Value     any
}

func (e *NoExceptError) Error() string {
	return fmt.Sprintf("functional: panic in noexcept %s %v: %v", e.Op, e.Signature, e.Value)
}

// Unwrap returns the original panic value if it was an error.
func (e *NoExceptError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// violations accumulates the reasons a capability predicate fails.
type violations struct {
	errs *multierror.Error
}

func (v *violations) addf(format string, args ...any) {
	v.errs = multierror.Append(v.errs, fmt.Errorf(format, args...))
}

// signature returns the signature of c, recording a violation
// if c is not functional.
func (v *violations) signature(what string, c any) (Signature, bool) {
	info := Classify(c)
	if info.Kind == NotCallable {
		v.addf("%s: %w: %T", what, ErrNotCallable, c)
		return Signature{}, false
	}
	return info.Signature, true
}

// invocable is like signature but also records a violation if c
// is a nil function, which no transformer can call. Abstract
// signatures are accepted.
func (v *violations) invocable(what string, c any) (Signature, bool) {
	sig, ok := v.signature(what, c)
	if ok && isNilFunction(c) {
		v.addf("%s: %w: %T", what, ErrNilFunction, c)
		return Signature{}, false
	}
	return sig, ok
}

// err returns the accumulated violations as a *ConstraintError,
// or nil if there were none.
func (v *violations) err(op string) error {
	if v.errs == nil {
		return nil
	}
	v.errs.ErrorFormat = semicolonList
	return &ConstraintError{
		Op:  op,
		Err: v.errs,
	}
}

func semicolonList(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
