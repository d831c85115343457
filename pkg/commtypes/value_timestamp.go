package commtypes

type ValueTimestampG[V any] struct {
	Value     V
	Timestamp int64
}

func CreateValueTimestampG[V any](val V, ts int64) ValueTimestampG[V] {
	return ValueTimestampG[V]{
		Value:     val,
		Timestamp: ts,
	}
}

// ExtractEventTime returns the timestamp of the latest record folded into Value.
func (s ValueTimestampG[V]) ExtractEventTime() (int64, error) {
	return s.Timestamp, nil
}
