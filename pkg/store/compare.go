package store

import (
	"strings"

	"golang.org/x/exp/constraints"
)

type LessFunc[K any] func(k1, k2 K) bool

type CompareFuncG[K any] func(lhs, rhs K) int

func IntegerCompare[K constraints.Integer](l, r K) int {
	if l < r {
		return -1
	} else if l == r {
		return 0
	} else {
		return 1
	}
}

func StringCompare(lhs, rhs string) int {
	return strings.Compare(lhs, rhs)
}

func IntegerLess[K constraints.Integer](l, r K) bool {
	return l < r
}

func StringLess(l, r string) bool {
	return l < r
}

// LessFromCompare adapts a three-way comparison into a LessFunc.
func LessFromCompare[K any](cmp CompareFuncG[K]) LessFunc[K] {
	return func(k1, k2 K) bool {
		return cmp(k1, k2) < 0
	}
}
