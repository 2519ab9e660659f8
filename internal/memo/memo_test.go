package memo

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasherDeterministic(t *testing.T) {
	a := NewHasher().Float(1.5).Int(3).Text("x").Sum()
	b := NewHasher().Float(1.5).Int(3).Text("x").Sum()
	assert.Equal(t, a, b)

	c := NewHasher().Float(1.5).Int(4).Text("x").Sum()
	assert.NotEqual(t, a, c)
}

func TestHasherNormalizesFloats(t *testing.T) {
	assert.Equal(t,
		NewHasher().Float(0).Sum(),
		NewHasher().Float(math.Copysign(0, -1)).Sum())
	assert.Equal(t,
		NewHasher().Float(math.NaN()).Sum(),
		NewHasher().Float(math.Float64frombits(0x7ff8000000000001)).Sum())
}

func TestHasherStringBoundaries(t *testing.T) {
	ab := NewHasher().Text("a").Text("bc").Sum()
	abc := NewHasher().Text("ab").Text("c").Sum()
	assert.NotEqual(t, ab, abc)
}

func TestCacheGetOrCompute(t *testing.T) {
	c := New[string](time.Minute)
	k := NewHasher().Int(1).Sum()

	calls := 0
	compute := func() (string, error) {
		calls++
		return "frame", nil
	}

	v, hit, err := c.GetOrCompute(k, compute)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "frame", v)

	v, hit, err = c.GetOrCompute(k, compute)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "frame", v)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, c.Len())
}

func TestCacheErrorsAreNotStored(t *testing.T) {
	c := New[int](0)
	k := NewHasher().Int(2).Sum()
	boom := errors.New("boom")

	_, _, err := c.GetOrCompute(k, func() (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
	_, ok := c.Get(k)
	assert.False(t, ok)
}

func TestCacheFlush(t *testing.T) {
	c := New[int](time.Minute)
	c.Set(Key(1), 10)
	c.Set(Key(2), 20)
	require.Equal(t, 2, c.Len())
	c.Flush()
	assert.Equal(t, 0, c.Len())
}

func TestCacheDelete(t *testing.T) {
	c := New[int](time.Minute)
	c.Set(1, 10)
	c.Set(2, 20)

	c.Delete(1)
	_, ok := c.Get(1)
	assert.False(t, ok)
	v, ok := c.Get(2)
	require.True(t, ok)
	assert.Equal(t, 20, v)
	assert.Equal(t, 1, c.Len())

	c.Delete(3)
	assert.Equal(t, 1, c.Len())
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "ff", Key(255).String())
}
