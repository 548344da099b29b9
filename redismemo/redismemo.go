package redismemo

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cast"
	"github.com/sysulq/decorator-go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source redismemo.go -destination mocks/mocks.go -package mocks
type ClientInterface interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// redisMemo memoizes a callable through a shared Redis cache
type redisMemo[K comparable, V any] struct {
	redisClient ClientInterface
	fn          decorator.SafeFunc1[K, V]
	opts        option
}

// option defines the options for the RedisMemo
type option struct {
	// Expiration is the expiration time for the redis cache
	// Default is 0, which means no expiration
	Expiration time.Duration
	// KeyFunc is the function to convert the key to a string
	KeyFunc func(any) string
	// MarshalFunc is the function to marshal the value
	// Default is jsoniter's Marshal, but can be changed to other marshal functions like proto.Marshal
	MarshalFunc func(any) ([]byte, error)
	// UnmarshalFunc is the function to unmarshal the value
	// Default is jsoniter's Unmarshal, but can be changed to other unmarshal functions like proto.Unmarshal
	UnmarshalFunc func([]byte, any) error
}

func WithExpiration(expiration time.Duration) func(*option) {
	return func(o *option) {
		o.Expiration = expiration
	}
}

func WithKeyFunc(keyFunc func(any) string) func(*option) {
	return func(o *option) {
		o.KeyFunc = keyFunc
	}
}

func WithMarshalFunc(marshalFunc func(any) ([]byte, error)) func(*option) {
	return func(o *option) {
		o.MarshalFunc = marshalFunc
	}
}

func WithUnmarshalFunc(unmarshalFunc func([]byte, any) error) func(*option) {
	return func(o *option) {
		o.UnmarshalFunc = unmarshalFunc
	}
}

// New creates a new RedisMemo around fn
func New[K comparable, V any](client ClientInterface, fn decorator.SafeFunc1[K, V], options ...func(*option)) *redisMemo[K, V] {
	opts := option{}
	for _, option := range options {
		option(&opts)
	}

	if opts.MarshalFunc == nil {
		opts.MarshalFunc = json.Marshal
	}
	if opts.UnmarshalFunc == nil {
		opts.UnmarshalFunc = json.Unmarshal
	}
	if opts.KeyFunc == nil {
		opts.KeyFunc = func(k any) string {
			return cast.ToString(k)
		}
	}

	return &redisMemo[K, V]{
		redisClient: client,
		fn:          fn,
		opts:        opts,
	}
}

// Call loads the key from Redis or falls back to the wrapped callable
func (rm *redisMemo[K, V]) Call(ctx context.Context, key K) decorator.Result[V] {
	cacheKey := rm.opts.KeyFunc(key)

	// 1. try to get the key from Redis
	cached, err := rm.redisClient.Get(ctx, cacheKey).Result()
	switch {
	case err == nil:
		var value V
		if err := rm.opts.UnmarshalFunc([]byte(cached), &value); err == nil {
			return decorator.Success(value)
		}
		// a corrupt entry counts as a miss and is overwritten below
	case !errors.Is(err, redis.Nil):
		// if Redis is unavailable, just serve from the wrapped callable
		return rm.fn(ctx, key)
	}

	// 2. load the missing key
	res := rm.fn(ctx, key)
	value, err := res.Unwrap()
	if err != nil {
		return res
	}

	// 3. save the loaded value to Redis
	rm.save(ctx, cacheKey, value)

	return res
}

// save stores a loaded value in Redis, best effort
func (rm *redisMemo[K, V]) save(ctx context.Context, cacheKey string, value V) {
	payload, err := rm.opts.MarshalFunc(value)
	if err != nil {
		return
	}
	rm.redisClient.Set(ctx, cacheKey, payload, rm.opts.Expiration)
}
