package decorator

import (
	"context"
	"errors"
	"fmt"
)

// FailSafe0 converts fn into a callable that cannot fail. A returned error
// becomes the failure variant of the Result; a panic raised anywhere below
// fn is recovered and converted the same way. Panics rejected by a
// WithPanicFilter option are re-raised instead.
func FailSafe0[R any](fn Func0[R], opts ...SafeOption) SafeFunc0[R] {
	cfg := newSafeConfig(opts)
	return func(ctx context.Context) (res Result[R]) {
		defer recoverToResult(&res, cfg)
		return Wrap(fn(ctx))
	}
}

// FailSafe1 is the one-argument form of FailSafe0.
func FailSafe1[A, R any](fn Func1[A, R], opts ...SafeOption) SafeFunc1[A, R] {
	cfg := newSafeConfig(opts)
	return func(ctx context.Context, a A) (res Result[R]) {
		defer recoverToResult(&res, cfg)
		return Wrap(fn(ctx, a))
	}
}

// FailSafe2 is the two-argument form of FailSafe0.
func FailSafe2[A, B, R any](fn Func2[A, B, R], opts ...SafeOption) SafeFunc2[A, B, R] {
	cfg := newSafeConfig(opts)
	return func(ctx context.Context, a A, b B) (res Result[R]) {
		defer recoverToResult(&res, cfg)
		return Wrap(fn(ctx, a, b))
	}
}

// FailSafe3 is the three-argument form of FailSafe0.
func FailSafe3[A, B, C, R any](fn Func3[A, B, C, R], opts ...SafeOption) SafeFunc3[A, B, C, R] {
	cfg := newSafeConfig(opts)
	return func(ctx context.Context, a A, b B, c C) (res Result[R]) {
		defer recoverToResult(&res, cfg)
		return Wrap(fn(ctx, a, b, c))
	}
}

// recoverToResult must be deferred directly so recover sees the panic.
func recoverToResult[R any](res *Result[R], cfg safeConfig) {
	v := recover()
	if v == nil {
		return
	}
	if cfg.panicFilter != nil && !cfg.panicFilter(v) {
		panic(v)
	}
	*res = Failure[R](recoveredError(v))
}

// recoveredError derives an error from a recovered panic value, keeping its
// description intact.
func recoveredError(v any) error {
	switch e := v.(type) {
	case error:
		return e
	case string:
		return errors.New(e)
	default:
		return fmt.Errorf("%v", e)
	}
}
