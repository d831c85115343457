// Copyright 2021 Taiki Kawakami (a.k.a. moznion) https://moznion.net
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the "Software"), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package optional provides a generic container for a value that may be absent.
package optional

import "fmt"

// Option holds either nothing (None) or exactly one value (Some).
// The zero value is None.
type Option[T any] struct {
	value  T
	exists bool
}

// Pair is the result of zipping two options.
type Pair[T, U any] struct {
	Value1 T
	Value2 U
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, exists: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsNone() bool {
	return !o.exists
}

func (o Option[T]) IsSome() bool {
	return o.exists
}

// Unwrap returns the held value, or the zero value of T when empty.
func (o Option[T]) Unwrap() T {
	return o.value
}

// Take returns the held value and whether there was one.
func (o Option[T]) Take() (T, bool) {
	return o.value, o.exists
}

func (o Option[T]) TakeOr(fallbackValue T) T {
	if o.exists {
		return o.value
	}
	return fallbackValue
}

// TakeOrElse calls fallbackFunc only when o is empty.
func (o Option[T]) TakeOrElse(fallbackFunc func() T) T {
	if o.exists {
		return o.value
	}
	return fallbackFunc()
}

// Filter keeps the value only if predicate holds for it.
func (o Option[T]) Filter(predicate func(v T) bool) Option[T] {
	if o.exists && predicate(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) IfSome(f func(v T)) {
	if o.exists {
		f(o.value)
	}
}

func (o Option[T]) IfSomeWithError(f func(v T) error) error {
	if o.exists {
		return f(o.value)
	}
	return nil
}

func (o Option[T]) IfNone(f func()) {
	if !o.exists {
		f()
	}
}

func (o Option[T]) IfNoneWithError(f func() error) error {
	if !o.exists {
		return f()
	}
	return nil
}

var _ = fmt.Stringer(Option[int]{})

func (o Option[T]) String() string {
	if o.exists {
		return fmt.Sprintf("Some[%v]", o.value)
	}
	return "None[]"
}

func Map[T, U any](option Option[T], mapper func(v T) U) Option[U] {
	if option.exists {
		return Some(mapper(option.value))
	}
	return None[U]()
}

func MapOr[T, U any](option Option[T], fallbackValue U, mapper func(v T) U) U {
	if option.exists {
		return mapper(option.value)
	}
	return fallbackValue
}

// MapWithError returns None and the mapper's error if the mapper fails.
func MapWithError[T, U any](option Option[T], mapper func(v T) (U, error)) (Option[U], error) {
	if !option.exists {
		return None[U](), nil
	}
	u, err := mapper(option.value)
	if err != nil {
		return None[U](), err
	}
	return Some(u), nil
}

// MapOrWithError returns the zero U and the mapper's error if the mapper fails.
func MapOrWithError[T, U any](option Option[T], fallbackValue U, mapper func(v T) (U, error)) (U, error) {
	if !option.exists {
		return fallbackValue, nil
	}
	u, err := mapper(option.value)
	if err != nil {
		var zero U
		return zero, err
	}
	return u, nil
}

func FlatMap[T, U any](option Option[T], mapper func(v T) Option[U]) Option[U] {
	if option.exists {
		return mapper(option.value)
	}
	return None[U]()
}

func FlatMapOr[T, U any](option Option[T], fallbackValue U, mapper func(v T) Option[U]) U {
	if option.exists {
		return mapper(option.value).TakeOr(fallbackValue)
	}
	return fallbackValue
}

func FlatMapWithError[T, U any](option Option[T], mapper func(v T) (Option[U], error)) (Option[U], error) {
	if !option.exists {
		return None[U](), nil
	}
	mapped, err := mapper(option.value)
	if err != nil {
		return None[U](), err
	}
	return mapped, nil
}

func FlatMapOrWithError[T, U any](option Option[T], fallbackValue U, mapper func(v T) (Option[U], error)) (U, error) {
	if !option.exists {
		return fallbackValue, nil
	}
	mapped, err := mapper(option.value)
	if err != nil {
		var zero U
		return zero, err
	}
	return mapped.TakeOr(fallbackValue), nil
}

// Zip pairs the values of both options. It is None unless both are Some.
func Zip[T, U any](opt1 Option[T], opt2 Option[U]) Option[Pair[T, U]] {
	return ZipWith(opt1, opt2, func(v1 T, v2 U) Pair[T, U] {
		return Pair[T, U]{Value1: v1, Value2: v2}
	})
}

func ZipWith[T, U, V any](opt1 Option[T], opt2 Option[U], zipper func(v1 T, v2 U) V) Option[V] {
	if opt1.exists && opt2.exists {
		return Some(zipper(opt1.value, opt2.value))
	}
	return None[V]()
}

func Unzip[T, U any](zipped Option[Pair[T, U]]) (Option[T], Option[U]) {
	if !zipped.exists {
		return None[T](), None[U]()
	}
	return Some(zipped.value.Value1), Some(zipped.value.Value2)
}

func UnzipWith[T, U, V any](zipped Option[V], unzipper func(zipped V) (T, U)) (Option[T], Option[U]) {
	if !zipped.exists {
		return None[T](), None[U]()
	}
	v1, v2 := unzipper(zipped.value)
	return Some(v1), Some(v2)
}
