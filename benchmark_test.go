package decorator

import (
	"context"
	"fmt"
	"testing"
)

func BenchmarkDecorator(b *testing.B) {
	load := func(key int) string {
		return fmt.Sprintf("Result for %d", key)
	}

	safe := FailSafe1(Lift1(load))
	memo := Memoize1(safe)
	chained := Chain(safe,
		Guard1[int, string](func(key int) error { return nil }),
		LogTime1[int, string](discardSink{}),
		Output1[int, string](discardSink{}),
	)

	b.Run("direct.Call", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = load(i % 10)
		}
	})

	b.Run("decorator.FailSafe", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = safe(context.Background(), i%10)
		}
	})

	b.Run("decorator.Memoize", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = memo(context.Background(), i%10)
		}
	})

	b.Run("decorator.Chain", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = chained(context.Background(), i%10)
		}
	})
}

type discardSink struct{}

func (discardSink) Emit(string) {}
