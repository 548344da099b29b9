package decorator

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cast"
)

// Sink receives one rendered line per Emit call. Implementations own their
// buffering and delivery; the wrappers never retain emitted lines.
type Sink interface {
	Emit(line string)
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) Emit(line string) {
	fmt.Fprintln(s.w, line)
}

// NewWriterSink returns a Sink that writes one line per Emit to w.
func NewWriterSink(w io.Writer) Sink {
	return writerSink{w: w}
}

// Stdout returns the default Sink, writing to standard output. Wrappers that
// take a Sink treat nil as Stdout().
func Stdout() Sink {
	return NewWriterSink(os.Stdout)
}

func orStdout(sink Sink) Sink {
	if sink == nil {
		return Stdout()
	}
	return sink
}

// formatValue is the default textual conversion for rendered values.
func formatValue(v any) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func emitResult[R any](sink Sink, cfg outputConfig, res Result[R]) {
	data, err := res.Unwrap()
	if err != nil {
		sink.Emit(cfg.errorPrefix + " " + err.Error())
		return
	}
	sink.Emit(cfg.label + cfg.format(data))
}

// Output0 returns a wrapper that renders the Result of each invocation to
// sink and passes the Result through unchanged: one line per invocation,
// the error prefix and message for a failure, the converted value for a
// success.
func Output0[R any](sink Sink, opts ...OutputOption) Wrapper[SafeFunc0[R]] {
	sink = orStdout(sink)
	cfg := newOutputConfig(opts)
	return func(fn SafeFunc0[R]) SafeFunc0[R] {
		return func(ctx context.Context) Result[R] {
			res := fn(ctx)
			emitResult(sink, cfg, res)
			return res
		}
	}
}

// Output1 is the one-argument form of Output0.
func Output1[A, R any](sink Sink, opts ...OutputOption) Wrapper[SafeFunc1[A, R]] {
	sink = orStdout(sink)
	cfg := newOutputConfig(opts)
	return func(fn SafeFunc1[A, R]) SafeFunc1[A, R] {
		return func(ctx context.Context, a A) Result[R] {
			res := fn(ctx, a)
			emitResult(sink, cfg, res)
			return res
		}
	}
}

// Output2 is the two-argument form of Output0.
func Output2[A, B, R any](sink Sink, opts ...OutputOption) Wrapper[SafeFunc2[A, B, R]] {
	sink = orStdout(sink)
	cfg := newOutputConfig(opts)
	return func(fn SafeFunc2[A, B, R]) SafeFunc2[A, B, R] {
		return func(ctx context.Context, a A, b B) Result[R] {
			res := fn(ctx, a, b)
			emitResult(sink, cfg, res)
			return res
		}
	}
}

// Output3 is the three-argument form of Output0.
func Output3[A, B, C, R any](sink Sink, opts ...OutputOption) Wrapper[SafeFunc3[A, B, C, R]] {
	sink = orStdout(sink)
	cfg := newOutputConfig(opts)
	return func(fn SafeFunc3[A, B, C, R]) SafeFunc3[A, B, C, R] {
		return func(ctx context.Context, a A, b B, c C) Result[R] {
			res := fn(ctx, a, b, c)
			emitResult(sink, cfg, res)
			return res
		}
	}
}

// Banner0 returns a wrapper that emits a banner line before and after each
// invocation, passing the Result through unchanged.
func Banner0[R any](sink Sink, opts ...OutputOption) Wrapper[SafeFunc0[R]] {
	sink = orStdout(sink)
	cfg := newOutputConfig(opts)
	return func(fn SafeFunc0[R]) SafeFunc0[R] {
		return func(ctx context.Context) Result[R] {
			sink.Emit(cfg.banner)
			res := fn(ctx)
			sink.Emit(cfg.banner)
			return res
		}
	}
}

// Banner1 is the one-argument form of Banner0.
func Banner1[A, R any](sink Sink, opts ...OutputOption) Wrapper[SafeFunc1[A, R]] {
	sink = orStdout(sink)
	cfg := newOutputConfig(opts)
	return func(fn SafeFunc1[A, R]) SafeFunc1[A, R] {
		return func(ctx context.Context, a A) Result[R] {
			sink.Emit(cfg.banner)
			res := fn(ctx, a)
			sink.Emit(cfg.banner)
			return res
		}
	}
}

// Banner2 is the two-argument form of Banner0.
func Banner2[A, B, R any](sink Sink, opts ...OutputOption) Wrapper[SafeFunc2[A, B, R]] {
	sink = orStdout(sink)
	cfg := newOutputConfig(opts)
	return func(fn SafeFunc2[A, B, R]) SafeFunc2[A, B, R] {
		return func(ctx context.Context, a A, b B) Result[R] {
			sink.Emit(cfg.banner)
			res := fn(ctx, a, b)
			sink.Emit(cfg.banner)
			return res
		}
	}
}

// Banner3 is the three-argument form of Banner0.
func Banner3[A, B, C, R any](sink Sink, opts ...OutputOption) Wrapper[SafeFunc3[A, B, C, R]] {
	sink = orStdout(sink)
	cfg := newOutputConfig(opts)
	return func(fn SafeFunc3[A, B, C, R]) SafeFunc3[A, B, C, R] {
		return func(ctx context.Context, a A, b B, c C) Result[R] {
			sink.Emit(cfg.banner)
			res := fn(ctx, a, b, c)
			sink.Emit(cfg.banner)
			return res
		}
	}
}
