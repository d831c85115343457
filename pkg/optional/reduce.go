package optional

// Reduce merges a and b into one Option.
//
// If both hold a value, the result holds f(a's value, b's value). If only one
// holds a value, that Option is returned as is. If neither does, the result is
// None. f is called at most once, and never unless both values are present.
func Reduce[T any](a, b Option[T], f func(T, T) T) Option[T] {
	switch {
	case a.exists && b.exists:
		return Some(f(a.value, b.value))
	case a.exists:
		return a
	case b.exists:
		return b
	default:
		return None[T]()
	}
}

// Reduce merges o with other. o.Reduce(other, f) is Reduce(o, other, f).
func (o Option[T]) Reduce(other Option[T], f func(T, T) T) Option[T] {
	return Reduce(o, other, f)
}
