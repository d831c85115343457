package optional

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func add(l, r int) int { return l + r }

func minInt(l, r int) int {
	if l < r {
		return l
	}
	return r
}

func sub(l, r int) int { return l - r }

type countingReducer[T any] struct {
	f     func(T, T) T
	calls int
}

func (c *countingReducer[T]) Apply(l, r T) T {
	c.calls++
	return c.f(l, r)
}

func TestReduce(t *testing.T) {
	x := Some(2)
	y := Some(4)

	assert.Equal(t, Some(6), Reduce(x, y, add))
	assert.Equal(t, Some(2), Reduce(x, y, minInt))

	assert.Equal(t, x, Reduce(x, None[int](), add))
	assert.Equal(t, y, Reduce(None[int](), y, minInt))

	assert.Equal(t, None[int](), Reduce(None[int](), None[int](), add))
	assert.True(t, Reduce(None[int](), None[int](), add).IsNone())
}

func TestOption_Reduce(t *testing.T) {
	x := Some(2)
	y := Some(4)

	assert.Equal(t, Some(6), x.Reduce(y, add))
	assert.Equal(t, Some(2), x.Reduce(y, minInt))
	assert.Equal(t, x, x.Reduce(None[int](), add))
	assert.Equal(t, y, None[int]().Reduce(y, minInt))
	assert.Equal(t, None[int](), None[int]().Reduce(None[int](), add))
}

func TestReduce_ArgumentOrder(t *testing.T) {
	assert.Equal(t, Some(-2), Reduce(Some(2), Some(4), sub))
	assert.Equal(t, Some(2), Reduce(Some(4), Some(2), sub))
	assert.NotEqual(t, Reduce(Some(2), Some(4), sub), Reduce(Some(4), Some(2), sub))

	concat := func(l, r string) string { return l + r }
	assert.Equal(t, Some("foobar"), Reduce(Some("foo"), Some("bar"), concat))
	assert.Equal(t, Some("barfoo"), Some("bar").Reduce(Some("foo"), concat))
}

func TestReduce_CombinerInvocationCount(t *testing.T) {
	tests := []struct {
		a, b      Option[int]
		want      Option[int]
		wantCalls int
	}{
		{Some(2), Some(4), Some(6), 1},
		{Some(2), None[int](), Some(2), 0},
		{None[int](), Some(4), Some(4), 0},
		{None[int](), None[int](), None[int](), 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v,%v", tt.a, tt.b), func(t *testing.T) {
			c := &countingReducer[int]{f: add}
			assert.Equal(t, tt.want, Reduce(tt.a, tt.b, c.Apply))
			assert.Equal(t, tt.wantCalls, c.calls)

			c = &countingReducer[int]{f: add}
			assert.Equal(t, tt.want, tt.a.Reduce(tt.b, c.Apply))
			assert.Equal(t, tt.wantCalls, c.calls)
		})
	}
}

func TestReduce_MethodMatchesFunction(t *testing.T) {
	opts := []Option[int]{Some(-3), Some(0), Some(7), None[int]()}
	for _, a := range opts {
		for _, b := range opts {
			for _, f := range []func(int, int) int{add, minInt, sub} {
				assert.Equal(t, Reduce(a, b, f), a.Reduce(b, f), "a=%v b=%v", a, b)
			}
		}
	}
}

func TestReduce_PassThroughIsUnchanged(t *testing.T) {
	s := &strings.Builder{}
	s.WriteString("held")
	o := Some(s)

	got := Reduce(o, None[*strings.Builder](), func(l, r *strings.Builder) *strings.Builder {
		t.Fatal("combiner must not run with one operand")
		return nil
	})
	assert.Same(t, s, got.Unwrap())

	got = Reduce(None[*strings.Builder](), o, func(l, r *strings.Builder) *strings.Builder {
		t.Fatal("combiner must not run with one operand")
		return nil
	})
	assert.Same(t, s, got.Unwrap())
}

func TestReduce_CombinerPanicPropagates(t *testing.T) {
	boom := func(l, r int) int { panic("boom") }
	assert.PanicsWithValue(t, "boom", func() {
		Reduce(Some(1), Some(2), boom)
	})
	assert.NotPanics(t, func() {
		Reduce(Some(1), None[int](), boom)
		Reduce(None[int](), Some(2), boom)
		Reduce(None[int](), None[int](), boom)
	})
}

func TestReduce_DoesNotMutateInputs(t *testing.T) {
	a := Some(2)
	b := Some(4)
	_ = Reduce(a, b, add)
	assert.Equal(t, Some(2), a)
	assert.Equal(t, Some(4), b)
}
