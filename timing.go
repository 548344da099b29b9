package decorator

import "context"

// LogTime0 returns a wrapper that invokes fn exactly once per call and emits
// one timestamp line to sink. The timestamp is captured after the inner call
// returns; WithCaptureBefore moves it to the start of the call. The Result
// passes through unchanged.
func LogTime0[R any](sink Sink, opts ...TimeOption) Wrapper[SafeFunc0[R]] {
	sink = orStdout(sink)
	cfg := newTimeConfig(opts)
	return func(fn SafeFunc0[R]) SafeFunc0[R] {
		return func(ctx context.Context) Result[R] {
			return timeAndEmit(sink, cfg, func() Result[R] {
				return fn(ctx)
			})
		}
	}
}

// LogTime1 is the one-argument form of LogTime0.
func LogTime1[A, R any](sink Sink, opts ...TimeOption) Wrapper[SafeFunc1[A, R]] {
	sink = orStdout(sink)
	cfg := newTimeConfig(opts)
	return func(fn SafeFunc1[A, R]) SafeFunc1[A, R] {
		return func(ctx context.Context, a A) Result[R] {
			return timeAndEmit(sink, cfg, func() Result[R] {
				return fn(ctx, a)
			})
		}
	}
}

// LogTime2 is the two-argument form of LogTime0.
func LogTime2[A, B, R any](sink Sink, opts ...TimeOption) Wrapper[SafeFunc2[A, B, R]] {
	sink = orStdout(sink)
	cfg := newTimeConfig(opts)
	return func(fn SafeFunc2[A, B, R]) SafeFunc2[A, B, R] {
		return func(ctx context.Context, a A, b B) Result[R] {
			return timeAndEmit(sink, cfg, func() Result[R] {
				return fn(ctx, a, b)
			})
		}
	}
}

// LogTime3 is the three-argument form of LogTime0.
func LogTime3[A, B, C, R any](sink Sink, opts ...TimeOption) Wrapper[SafeFunc3[A, B, C, R]] {
	sink = orStdout(sink)
	cfg := newTimeConfig(opts)
	return func(fn SafeFunc3[A, B, C, R]) SafeFunc3[A, B, C, R] {
		return func(ctx context.Context, a A, b B, c C) Result[R] {
			return timeAndEmit(sink, cfg, func() Result[R] {
				return fn(ctx, a, b, c)
			})
		}
	}
}

func timeAndEmit[R any](sink Sink, cfg timeConfig, call func() Result[R]) Result[R] {
	begin := cfg.now()
	res := call()
	end := cfg.now()

	stamp := end
	if cfg.captureBefore {
		stamp = begin
	}

	line := cfg.prefix + " " + stamp.Format(cfg.layout)
	if cfg.elapsed {
		line += " (" + end.Sub(begin).String() + ")"
	}
	sink.Emit(line)

	return res
}
