package processor

import (
	"context"
	"optreduce/pkg/commtypes"
	"optreduce/pkg/optional"
	"optreduce/pkg/store"

	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
)

// StreamReduceProcessorG keeps a running aggregate per key. The stored
// aggregate is the reducer's first operand and the incoming value the second.
type StreamReduceProcessorG[K, V any] struct {
	store   store.CoreKeyValueStoreG[K, commtypes.ValueTimestampG[V]]
	reducer ReducerG[V]
	name    string
}

func NewStreamReduceProcessorG[K, V any](name string, reducer ReducerG[V],
	store store.CoreKeyValueStoreG[K, commtypes.ValueTimestampG[V]],
) *StreamReduceProcessorG[K, V] {
	return &StreamReduceProcessorG[K, V]{
		reducer: reducer,
		store:   store,
		name:    name,
	}
}

func (p *StreamReduceProcessorG[K, V]) Name() string {
	return p.name
}

func (p *StreamReduceProcessorG[K, V]) ProcessAndReturn(ctx context.Context, msg commtypes.MessageG[K, V]) ([]commtypes.MessageG[K, V], error) {
	key, ok := msg.Key.Take()
	if !ok {
		log.Warn().Msgf("skipping record due to null key. key=%v, val=%v", msg.Key, msg.Value)
		return nil, nil
	}
	oldAggTs, found, err := p.store.Get(ctx, key)
	if err != nil {
		return nil, xerrors.Errorf("%s: get aggregate: %w", p.name, err)
	}
	oldAgg := optional.None[V]()
	newTs := msg.TimestampMs
	if found {
		oldAgg = optional.Some(oldAggTs.Value)
		if oldAggTs.Timestamp > newTs {
			newTs = oldAggTs.Timestamp
		}
	}
	newAgg := oldAgg.Reduce(msg.Value, p.reducer.Apply)
	aggVal, ok := newAgg.Take()
	if !ok {
		log.Warn().Msgf("skipping record due to null value and no aggregate. key=%v", key)
		return nil, nil
	}
	err = p.store.Put(ctx, key, commtypes.CreateValueTimestampG(aggVal, newTs))
	if err != nil {
		return nil, xerrors.Errorf("%s: put aggregate: %w", p.name, err)
	}
	log.Debug().Str("proc", p.name).Interface("key", key).
		Stringer("oldAgg", oldAgg).Stringer("newAgg", newAgg).Msg("reduced")
	return []commtypes.MessageG[K, V]{{Key: msg.Key, Value: newAgg, TimestampMs: newTs}}, nil
}
