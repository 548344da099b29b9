package decorator

import "context"

// Guard1 returns a wrapper that validates the argument before each call.
// A rejected argument yields the check's error as a Failure without ever
// invoking the inner callable.
func Guard1[A, R any](check func(A) error) Wrapper[SafeFunc1[A, R]] {
	return func(fn SafeFunc1[A, R]) SafeFunc1[A, R] {
		return func(ctx context.Context, a A) Result[R] {
			if err := check(a); err != nil {
				return Failure[R](err)
			}
			return fn(ctx, a)
		}
	}
}

// Guard2 is the two-argument form of Guard1.
func Guard2[A, B, R any](check func(A, B) error) Wrapper[SafeFunc2[A, B, R]] {
	return func(fn SafeFunc2[A, B, R]) SafeFunc2[A, B, R] {
		return func(ctx context.Context, a A, b B) Result[R] {
			if err := check(a, b); err != nil {
				return Failure[R](err)
			}
			return fn(ctx, a, b)
		}
	}
}

// Guard3 is the three-argument form of Guard1.
func Guard3[A, B, C, R any](check func(A, B, C) error) Wrapper[SafeFunc3[A, B, C, R]] {
	return func(fn SafeFunc3[A, B, C, R]) SafeFunc3[A, B, C, R] {
		return func(ctx context.Context, a A, b B, c C) Result[R] {
			if err := check(a, b, c); err != nil {
				return Failure[R](err)
			}
			return fn(ctx, a, b, c)
		}
	}
}
