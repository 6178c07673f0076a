package result

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/askiada/go-compose/pkg/optional"
)

// ErrAbsent is the reason given to a Result built from an empty Optional without an explicit error.
var ErrAbsent = errors.New("value is absent")

// Result holds a value or the error explaining why there is none.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err returns a failed Result. A nil err is replaced with ErrAbsent so that a failed Result always has a reason.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrAbsent
	}

	return Result[T]{err: err}
}

// From builds a Result from the usual Go "value, error" pair.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}

	return Ok(v)
}

// FromOptional promotes o to a Result, using err as the reason when o is empty.
func FromOptional[T any](o optional.Optional[T], err error) Result[T] {
	v, ok := o.Get()
	if !ok {
		return Err[T](err)
	}

	return Ok(v)
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Error returns the reason r failed, or nil.
func (r Result[T]) Error() error {
	return r.err
}

// Get returns the value and a nil error, or the zero value and the reason.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}

	return r.value, nil
}

// ToOptional drops the reason.
func (r Result[T]) ToOptional() optional.Optional[T] {
	return optional.FromOK(r.value, r.err == nil)
}

// String formats r as Ok(v) or Err(reason).
func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}

	return fmt.Sprintf("Ok(%v)", r.value)
}

// Map applies f to the value of r. f is not called when r failed.
func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	if r.err != nil {
		return Err[B](r.err)
	}

	return Ok(f(r.value))
}

// Bind feeds the value of r to f. f is not called when r failed.
func Bind[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if r.err != nil {
		return Err[B](r.err)
	}

	return f(r.value)
}

// ComposeK chains g then h. h is never called when g fails.
func ComposeK[A, B, C any](g func(A) Result[B], h func(B) Result[C]) func(A) Result[C] {
	return func(a A) Result[C] {
		return Bind(g(a), h)
	}
}

// Wrap annotates the error of a failed Result with message and leaves successful ones untouched.
func Wrap[T any](r Result[T], message string) Result[T] {
	if r.err != nil {
		return Err[T](errors.Wrap(r.err, message))
	}

	return r
}
