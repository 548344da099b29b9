package decorator

import "context"

// Func0 is the canonical shape of a wrappable callable taking no arguments.
// Callables carry a context first and report failures through the error
// return; the adapters in this package bring other shapes into this form.
type Func0[R any] func(ctx context.Context) (R, error)

// Func1 is the canonical shape of a wrappable callable taking one argument.
type Func1[A, R any] func(ctx context.Context, a A) (R, error)

// Func2 is the canonical shape of a wrappable callable taking two arguments.
type Func2[A, B, R any] func(ctx context.Context, a A, b B) (R, error)

// Func3 is the canonical shape of a wrappable callable taking three
// arguments. Three is enough to wrap a two-argument method together with its
// receiver; wider callables should bundle arguments into a struct.
type Func3[A, B, C, R any] func(ctx context.Context, a A, b B, c C) (R, error)

// SafeFunc0 is a callable that cannot fail: every outcome, including a
// converted panic, is folded into the returned Result.
type SafeFunc0[R any] func(ctx context.Context) Result[R]

// SafeFunc1 is the one-argument form of SafeFunc0.
type SafeFunc1[A, R any] func(ctx context.Context, a A) Result[R]

// SafeFunc2 is the two-argument form of SafeFunc0.
type SafeFunc2[A, B, R any] func(ctx context.Context, a A, b B) Result[R]

// SafeFunc3 is the three-argument form of SafeFunc0.
type SafeFunc3[A, B, C, R any] func(ctx context.Context, a A, b B, c C) Result[R]

// Wrapper decorates a callable of shape F with extra behavior. A Wrapper
// must return a callable of the same shape, so wrappers compose freely.
type Wrapper[F any] func(F) F

// Chain applies wrappers to fn so that the first wrapper is the outermost
// layer: Chain(fn, a, b) behaves like a(b(fn)).
func Chain[F any](fn F, wrappers ...Wrapper[F]) F {
	for i := len(wrappers) - 1; i >= 0; i-- {
		fn = wrappers[i](fn)
	}
	return fn
}
