package decorator

import "errors"

// ErrUnknownFailure is carried by failure Results that were constructed
// without a usable cause.
var ErrUnknownFailure = errors.New("unknown failure")

// Unit is the value carried by Results of callables that return nothing.
type Unit = struct{}

// Result is the outcome of a wrapped call: either a value or an error.
// Exactly one variant is populated; a Result is immutable once constructed.
type Result[V any] struct {
	data V
	err  error
}

// Success wraps a value into a successful Result.
func Success[V any](data V) Result[V] {
	return Result[V]{data: data}
}

// Failure wraps an error into a failed Result. A nil err is replaced with
// ErrUnknownFailure so a failure always carries a message.
func Failure[V any](err error) Result[V] {
	if err == nil {
		err = ErrUnknownFailure
	}
	return Result[V]{err: err}
}

// Wrap wraps data and an error into a Result. A non-nil error wins: the
// Result holds the failure variant and the data is discarded.
func Wrap[V any](data V, err error) Result[V] {
	if err != nil {
		return Failure[V](err)
	}
	return Success(data)
}

// Unwrap returns the data or an error.
func (r Result[V]) Unwrap() (V, error) {
	return r.data, r.err
}

// IsFailure reports whether r holds the failure variant.
func (r Result[V]) IsFailure() bool {
	return r.err != nil
}

// Err returns the error held by a failure Result, or nil for a success.
func (r Result[V]) Err() error {
	return r.err
}

// MustValue returns the success value. Calling it on a failure Result is a
// programming error: it panics with the held error.
func (r Result[V]) MustValue() V {
	if r.err != nil {
		panic(r.err)
	}
	return r.data
}

// String renders the Result with the package's default textual conversion:
// the value text for a success, the error prefix and message for a failure.
func (r Result[V]) String() string {
	if r.err != nil {
		return defaultErrorPrefix + " " + r.err.Error()
	}
	return formatValue(r.data)
}

// Flatten collapses one level of nesting produced by fail-safing a callable
// that already returns a Result. Prefer composing so that nesting never
// happens; Flatten is the way out when it has.
func Flatten[V any](r Result[Result[V]]) Result[V] {
	if r.err != nil {
		return Failure[V](r.err)
	}
	return r.data
}
