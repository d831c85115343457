package store

import (
	"context"
	"optreduce/pkg/optional"
)

type CoreKeyValueStoreG[K, V any] interface {
	StateStore
	Get(ctx context.Context, key K) (V, bool, error)
	// Range visits entries in key order from `from` (inclusive) to `to`
	// (exclusive). An empty bound is open on that side.
	Range(ctx context.Context, from optional.Option[K], to optional.Option[K],
		iterFunc func(K, V) error) error
	ApproximateNumEntries() (uint64, error)
	Put(ctx context.Context, key K, value V) error
	// PutIfAbsent returns the existing value if there is one and leaves it untouched.
	PutIfAbsent(ctx context.Context, key K, value V) (optional.Option[V], error)
	Delete(ctx context.Context, key K) error
}
