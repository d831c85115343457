package processor

import (
	"optreduce/pkg/optional"

	"golang.org/x/exp/constraints"
)

type ReducerG[V any] interface {
	Apply(value1 V, value2 V) V
}

type ReducerFuncG[V any] func(value1 V, value2 V) V

var _ = ReducerG[int](ReducerFuncG[int](nil))

func (fn ReducerFuncG[V]) Apply(value1 V, value2 V) V {
	return fn(value1, value2)
}

// ReduceOptionalG merges a and b with r. r only runs when both are present.
func ReduceOptionalG[V any](r ReducerG[V], a, b optional.Option[V]) optional.Option[V] {
	return optional.Reduce(a, b, r.Apply)
}

type number interface {
	constraints.Integer | constraints.Float
}

func SumReducerG[V number]() ReducerFuncG[V] {
	return func(value1, value2 V) V {
		return value1 + value2
	}
}

func MinReducerG[V constraints.Ordered]() ReducerFuncG[V] {
	return func(value1, value2 V) V {
		if value2 < value1 {
			return value2
		}
		return value1
	}
}

func MaxReducerG[V constraints.Ordered]() ReducerFuncG[V] {
	return func(value1, value2 V) V {
		if value2 > value1 {
			return value2
		}
		return value1
	}
}

// ConcatReducerG joins the earlier value and the later one with sep.
func ConcatReducerG(sep string) ReducerFuncG[string] {
	return func(value1, value2 string) string {
		return value1 + sep + value2
	}
}
