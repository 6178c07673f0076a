package optional_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-compose/pkg/optional"
)

func plus3(val int) int { return val + 3 }

func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, optional.Some(23), optional.Map(optional.Some(20), plus3))
	assert.Equal(t, optional.None[int](), optional.Map(optional.None[int](), plus3))
	assert.Equal(t, optional.Some("20"), optional.Map(optional.Some(20), strconv.Itoa))
}

func TestMapNeverCallsOnEmpty(t *testing.T) {
	t.Parallel()

	called := false
	optional.Map(optional.None[int](), func(i int) int {
		called = true
		return i
	})
	assert.False(t, called)
}

func TestMapLaws(t *testing.T) {
	t.Parallel()

	double := func(i int) int { return i * 2 }

	for _, o := range []optional.Optional[int]{optional.Some(7), optional.None[int]()} {
		assert.Equal(t, o, optional.Map(o, func(i int) int { return i }))
		assert.Equal(t,
			optional.Map(optional.Map(o, plus3), double),
			optional.Map(o, func(i int) int { return double(plus3(i)) }),
		)
	}
}

func TestLiftFunc(t *testing.T) {
	t.Parallel()

	lifted := optional.LiftFunc(plus3)
	assert.Equal(t, optional.Some(4), lifted(optional.Lift(1)))
	assert.Equal(t, optional.None[int](), lifted(optional.None[int]()))
}

func TestAp(t *testing.T) {
	t.Parallel()

	calls := 0
	counted := func(i int) int {
		calls++
		return plus3(i)
	}

	tcs := map[string]struct {
		fn       optional.Optional[func(int) int]
		value    optional.Optional[int]
		expected optional.Optional[int]
		calls    int
	}{
		"both present": {fn: optional.Lift(counted), value: optional.Some(20), expected: optional.Some(23), calls: 1},
		"empty value":  {fn: optional.Lift(counted), value: optional.None[int](), expected: optional.None[int]()},
		"empty fn":     {fn: optional.None[func(int) int](), value: optional.Some(20), expected: optional.None[int]()},
		"both empty":   {fn: optional.None[func(int) int](), value: optional.None[int](), expected: optional.None[int]()},
	}

	for name, tc := range tcs {
		calls = 0
		assert.Equal(t, tc.expected, optional.Ap(tc.fn, tc.value), name)
		assert.Equal(t, tc.calls, calls, name)
	}
}

func TestApTo(t *testing.T) {
	t.Parallel()

	wrapped := optional.Lift(plus3)
	assert.Equal(t, optional.Some(23), optional.ApTo(optional.Some(20), wrapped))
	assert.Equal(t, optional.None[int](), optional.ApTo(optional.None[int](), wrapped))
}

func TestApplicativeIdentity(t *testing.T) {
	t.Parallel()

	id := optional.Lift(func(i int) int { return i })
	assert.Equal(t, optional.Some(5), optional.Ap(id, optional.Some(5)))
	assert.Equal(t, optional.Lift(plus3(5)), optional.Ap(optional.Lift(plus3), optional.Lift(5)))
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	assert.Equal(t, optional.Some(1), optional.Flatten(optional.Some(optional.Some(1))))
	assert.Equal(t, optional.None[int](), optional.Flatten(optional.Some(optional.None[int]())))
	assert.Equal(t, optional.None[int](), optional.Flatten(optional.None[optional.Optional[int]]()))
}

func half(i int) optional.Optional[int] {
	if i%2 != 0 {
		return optional.None[int]()
	}

	return optional.Some(i / 2)
}

func TestBind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, optional.Some(4), optional.Bind(optional.Some(8), half))
	assert.Equal(t, optional.None[int](), optional.Bind(optional.Some(7), half))
	assert.Equal(t, optional.None[int](), optional.Bind(optional.None[int](), half))
}

func TestMonadLaws(t *testing.T) {
	t.Parallel()

	for _, x := range []int{0, 3, 8, 12} {
		// left identity
		assert.Equal(t, half(x), optional.Bind(optional.Lift(x), half))
		// right identity
		assert.Equal(t, half(x), optional.Bind(half(x), optional.Lift[int]))
		// associativity
		assert.Equal(t,
			optional.Bind(optional.Bind(optional.Some(x), half), half),
			optional.Bind(optional.Some(x), func(v int) optional.Optional[int] {
				return optional.Bind(half(v), half)
			}),
		)
	}
}

func TestComposeKShortCircuit(t *testing.T) {
	t.Parallel()

	calls := 0
	second := func(i int) optional.Optional[string] {
		calls++
		return optional.Some(strconv.Itoa(i))
	}

	fn := optional.ComposeK(half, second)

	assert.Equal(t, optional.Some("5"), fn(10))
	assert.Equal(t, 1, calls)

	assert.Equal(t, optional.None[string](), fn(3))
	assert.Equal(t, 1, calls)
}

func TestComposeKAbsorbing(t *testing.T) {
	t.Parallel()

	quarter := optional.ComposeK(half, half)
	eighth := optional.ComposeK(quarter, half)

	assert.Equal(t, optional.Some(1), eighth(8))
	assert.Equal(t, optional.None[int](), eighth(4))
	assert.Equal(t, optional.None[int](), eighth(6))
}

func TestFilter(t *testing.T) {
	t.Parallel()

	even := func(i int) bool { return i%2 == 0 }
	assert.Equal(t, optional.Some(2), optional.Filter(optional.Some(2), even))
	assert.Equal(t, optional.None[int](), optional.Filter(optional.Some(3), even))
	assert.Equal(t, optional.None[int](), optional.Filter(optional.None[int](), even))
}
