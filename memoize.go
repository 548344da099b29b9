package decorator

import (
	"context"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Memo1 memoizes a one-argument callable. Successful Results are cached by
// argument in an expirable LRU; failures are never cached, so a later call
// with the same argument retries the wrapped callable. The cache locks
// internally, so a Memo is safe for concurrent use when the wrapped callable
// is.
type Memo1[A comparable, R any] struct {
	fn    SafeFunc1[A, R]
	cache *expirable.LRU[A, R]
}

// NewMemo1 creates a Memo1 around fn.
func NewMemo1[A comparable, R any](fn SafeFunc1[A, R], opts ...MemoOption) *Memo1[A, R] {
	cfg := newMemoConfig(opts)
	return &Memo1[A, R]{
		fn:    fn,
		cache: expirable.NewLRU[A, R](cfg.size, nil, cfg.ttl),
	}
}

// Call loads from the cache or invokes the wrapped callable.
func (m *Memo1[A, R]) Call(ctx context.Context, a A) Result[R] {
	if v, ok := m.cache.Get(a); ok {
		return Success(v)
	}
	res := m.fn(ctx, a)
	if data, err := res.Unwrap(); err == nil {
		m.cache.Add(a, data)
	}
	return res
}

// Prime seeds the cache with a value, replacing any cached one.
func (m *Memo1[A, R]) Prime(a A, data R) *Memo1[A, R] {
	m.cache.Add(a, data)
	return m
}

// Clear removes one argument's cached value.
func (m *Memo1[A, R]) Clear(a A) *Memo1[A, R] {
	m.cache.Remove(a)
	return m
}

// ClearAll drops every cached value.
func (m *Memo1[A, R]) ClearAll() *Memo1[A, R] {
	m.cache.Purge()
	return m
}

// Len reports the number of cached values.
func (m *Memo1[A, R]) Len() int {
	return m.cache.Len()
}

// Memoize1 is the wrapper-shaped flavor of Memo1 for call sites that do not
// need cache control.
func Memoize1[A comparable, R any](fn SafeFunc1[A, R], opts ...MemoOption) SafeFunc1[A, R] {
	return NewMemo1(fn, opts...).Call
}

type memoKey2[A, B comparable] struct {
	a A
	b B
}

// Memo2 memoizes a two-argument callable. The argument pair forms the cache
// key, so both argument types must be comparable.
type Memo2[A, B comparable, R any] struct {
	fn    SafeFunc2[A, B, R]
	cache *expirable.LRU[memoKey2[A, B], R]
}

// NewMemo2 creates a Memo2 around fn.
func NewMemo2[A, B comparable, R any](fn SafeFunc2[A, B, R], opts ...MemoOption) *Memo2[A, B, R] {
	cfg := newMemoConfig(opts)
	return &Memo2[A, B, R]{
		fn:    fn,
		cache: expirable.NewLRU[memoKey2[A, B], R](cfg.size, nil, cfg.ttl),
	}
}

// Call loads from the cache or invokes the wrapped callable.
func (m *Memo2[A, B, R]) Call(ctx context.Context, a A, b B) Result[R] {
	key := memoKey2[A, B]{a: a, b: b}
	if v, ok := m.cache.Get(key); ok {
		return Success(v)
	}
	res := m.fn(ctx, a, b)
	if data, err := res.Unwrap(); err == nil {
		m.cache.Add(key, data)
	}
	return res
}

// Prime seeds the cache with a value, replacing any cached one.
func (m *Memo2[A, B, R]) Prime(a A, b B, data R) *Memo2[A, B, R] {
	m.cache.Add(memoKey2[A, B]{a: a, b: b}, data)
	return m
}

// Clear removes one argument pair's cached value.
func (m *Memo2[A, B, R]) Clear(a A, b B) *Memo2[A, B, R] {
	m.cache.Remove(memoKey2[A, B]{a: a, b: b})
	return m
}

// ClearAll drops every cached value.
func (m *Memo2[A, B, R]) ClearAll() *Memo2[A, B, R] {
	m.cache.Purge()
	return m
}

// Len reports the number of cached values.
func (m *Memo2[A, B, R]) Len() int {
	return m.cache.Len()
}

// Memoize2 is the wrapper-shaped flavor of Memo2.
func Memoize2[A, B comparable, R any](fn SafeFunc2[A, B, R], opts ...MemoOption) SafeFunc2[A, B, R] {
	return NewMemo2(fn, opts...).Call
}
