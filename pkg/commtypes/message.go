package commtypes

import (
	"fmt"
	"optreduce/pkg/optional"
)

// MessageG is a keyed record flowing through a processor. Either the key or
// the value may be absent.
type MessageG[K, V any] struct {
	Key         optional.Option[K]
	Value       optional.Option[V]
	TimestampMs int64
}

var _ = fmt.Stringer(MessageG[int, int]{})

func (m MessageG[K, V]) String() string {
	return fmt.Sprintf("MsgG: {Key: %v, Value: %v, Ts: %d}", m.Key, m.Value, m.TimestampMs)
}

func NewMessageG[K, V any](key K, value V, ts int64) MessageG[K, V] {
	return MessageG[K, V]{
		Key:         optional.Some(key),
		Value:       optional.Some(value),
		TimestampMs: ts,
	}
}
