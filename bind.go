package decorator

import "context"

// Lift0 adapts a pure function into the canonical callable shape. The
// produced callable ignores its context and never returns an error.
func Lift0[R any](fn func() R) Func0[R] {
	return func(context.Context) (R, error) {
		return fn(), nil
	}
}

// Lift1 adapts a pure one-argument function.
func Lift1[A, R any](fn func(A) R) Func1[A, R] {
	return func(_ context.Context, a A) (R, error) {
		return fn(a), nil
	}
}

// Lift2 adapts a pure two-argument function.
func Lift2[A, B, R any](fn func(A, B) R) Func2[A, B, R] {
	return func(_ context.Context, a A, b B) (R, error) {
		return fn(a, b), nil
	}
}

// Lift3 adapts a pure three-argument function.
func Lift3[A, B, C, R any](fn func(A, B, C) R) Func3[A, B, C, R] {
	return func(_ context.Context, a A, b B, c C) (R, error) {
		return fn(a, b, c), nil
	}
}

// LiftE0 adapts an error-returning function that takes no context.
func LiftE0[R any](fn func() (R, error)) Func0[R] {
	return func(context.Context) (R, error) {
		return fn()
	}
}

// LiftE1 adapts an error-returning one-argument function.
func LiftE1[A, R any](fn func(A) (R, error)) Func1[A, R] {
	return func(_ context.Context, a A) (R, error) {
		return fn(a)
	}
}

// LiftE2 adapts an error-returning two-argument function.
func LiftE2[A, B, R any](fn func(A, B) (R, error)) Func2[A, B, R] {
	return func(_ context.Context, a A, b B) (R, error) {
		return fn(a, b)
	}
}

// LiftE3 adapts an error-returning three-argument function.
func LiftE3[A, B, C, R any](fn func(A, B, C) (R, error)) Func3[A, B, C, R] {
	return func(_ context.Context, a A, b B, c C) (R, error) {
		return fn(a, b, c)
	}
}

// Effect adapts a function called only for its side effects. The produced
// callable yields Unit.
func Effect(fn func()) Func0[Unit] {
	return func(context.Context) (Unit, error) {
		fn()
		return Unit{}, nil
	}
}

// EffectE adapts a side-effecting function that can fail.
func EffectE(fn func() error) Func0[Unit] {
	return func(context.Context) (Unit, error) {
		return Unit{}, fn()
	}
}

// Effect1 adapts a one-argument side-effecting function.
func Effect1[A any](fn func(A)) Func1[A, Unit] {
	return func(_ context.Context, a A) (Unit, error) {
		fn(a)
		return Unit{}, nil
	}
}

// EffectE1 adapts a one-argument side-effecting function that can fail.
func EffectE1[A any](fn func(A) error) Func1[A, Unit] {
	return func(_ context.Context, a A) (Unit, error) {
		return Unit{}, fn(a)
	}
}

// Bind0 fixes a method to one receiver at adaptation time. Every invocation
// of the produced callable goes through the same receiver, so state the
// method mutates is visible to later invocations.
func Bind0[T, R any](recv T, method func(T) (R, error)) Func0[R] {
	return func(context.Context) (R, error) {
		return method(recv)
	}
}

// Bind1 fixes a one-argument method to one receiver.
func Bind1[T, A, R any](recv T, method func(T, A) (R, error)) Func1[A, R] {
	return func(_ context.Context, a A) (R, error) {
		return method(recv, a)
	}
}

// Bind2 fixes a two-argument method to one receiver.
func Bind2[T, A, B, R any](recv T, method func(T, A, B) (R, error)) Func2[A, B, R] {
	return func(_ context.Context, a A, b B) (R, error) {
		return method(recv, a, b)
	}
}

// Visit0 adapts a method so the receiver is supplied per call as the first
// argument, letting one wrapped callable serve many receivers.
func Visit0[T, R any](method func(T) (R, error)) Func1[T, R] {
	return func(_ context.Context, recv T) (R, error) {
		return method(recv)
	}
}

// Visit1 adapts a one-argument method to a per-call receiver.
func Visit1[T, A, R any](method func(T, A) (R, error)) Func2[T, A, R] {
	return func(_ context.Context, recv T, a A) (R, error) {
		return method(recv, a)
	}
}

// Visit2 adapts a two-argument method to a per-call receiver.
func Visit2[T, A, B, R any](method func(T, A, B) (R, error)) Func3[T, A, B, R] {
	return func(_ context.Context, recv T, a A, b B) (R, error) {
		return method(recv, a, b)
	}
}
