package store

import (
	"context"
	"optreduce/pkg/optional"
	"optreduce/pkg/utils/syncutils"

	"github.com/google/btree"
	"golang.org/x/xerrors"
)

type kvPairG[K, V any] struct {
	key K
	val V
}

type InMemoryBTreeKeyValueStoreG[K, V any] struct {
	mux   syncutils.Mutex
	store *btree.BTreeG[kvPairG[K, V]]
	less  LessFunc[K]
	name  string
}

var _ = CoreKeyValueStoreG[int, int](&InMemoryBTreeKeyValueStoreG[int, int]{})

func NewInMemoryBTreeKeyValueStoreG[K, V any](name string, lessFunc LessFunc[K]) *InMemoryBTreeKeyValueStoreG[K, V] {
	return &InMemoryBTreeKeyValueStoreG[K, V]{
		name: name,
		less: lessFunc,
		store: btree.NewG(2, btree.LessFunc[kvPairG[K, V]](
			func(a, b kvPairG[K, V]) bool {
				return lessFunc(a.key, b.key)
			})),
	}
}

func (st *InMemoryBTreeKeyValueStoreG[K, V]) Name() string {
	return st.name
}

func (st *InMemoryBTreeKeyValueStoreG[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	st.mux.Lock()
	defer st.mux.Unlock()
	ret, exists := st.store.Get(kvPairG[K, V]{key: key})
	return ret.val, exists, nil
}

func (st *InMemoryBTreeKeyValueStoreG[K, V]) Put(ctx context.Context, key K, value V) error {
	st.mux.Lock()
	defer st.mux.Unlock()
	st.store.ReplaceOrInsert(kvPairG[K, V]{key: key, val: value})
	return nil
}

func (st *InMemoryBTreeKeyValueStoreG[K, V]) PutIfAbsent(ctx context.Context, key K, value V) (optional.Option[V], error) {
	st.mux.Lock()
	defer st.mux.Unlock()
	originalKV, exists := st.store.Get(kvPairG[K, V]{key: key})
	if !exists {
		st.store.ReplaceOrInsert(kvPairG[K, V]{key: key, val: value})
		return optional.None[V](), nil
	}
	return optional.Some(originalKV.val), nil
}

func (st *InMemoryBTreeKeyValueStoreG[K, V]) Delete(ctx context.Context, key K) error {
	st.mux.Lock()
	defer st.mux.Unlock()
	st.store.Delete(kvPairG[K, V]{key: key})
	return nil
}

func (st *InMemoryBTreeKeyValueStoreG[K, V]) ApproximateNumEntries() (uint64, error) {
	st.mux.Lock()
	defer st.mux.Unlock()
	return uint64(st.store.Len()), nil
}

func (st *InMemoryBTreeKeyValueStoreG[K, V]) Range(ctx context.Context,
	from optional.Option[K], to optional.Option[K], iterFunc func(K, V) error,
) error {
	st.mux.Lock()
	defer st.mux.Unlock()
	var iterErr error
	visit := btree.ItemIteratorG[kvPairG[K, V]](func(kv kvPairG[K, V]) bool {
		if err := iterFunc(kv.key, kv.val); err != nil {
			iterErr = err
			return false
		}
		return true
	})
	fromKey, hasFrom := from.Take()
	toKey, hasTo := to.Take()
	switch {
	case !hasFrom && !hasTo:
		st.store.Ascend(visit)
	case !hasFrom && hasTo:
		st.store.AscendLessThan(kvPairG[K, V]{key: toKey}, visit)
	case hasFrom && !hasTo:
		st.store.AscendGreaterOrEqual(kvPairG[K, V]{key: fromKey}, visit)
	default:
		if !st.less(fromKey, toKey) {
			return nil
		}
		st.store.AscendRange(kvPairG[K, V]{key: fromKey}, kvPairG[K, V]{key: toKey}, visit)
	}
	if iterErr != nil {
		return xerrors.Errorf("range over %s: %w", st.name, iterErr)
	}
	return nil
}
