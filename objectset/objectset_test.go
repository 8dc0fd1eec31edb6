package objectset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_InsertGetRemove(t *testing.T) {
	s := New[int]()
	h1 := s.Insert(10)
	h2 := s.Insert(20)

	assert.Equal(t, 2, s.Len())

	v1, ok := s.Get(h1)
	assert.True(t, ok)
	assert.Equal(t, 10, *v1)

	removed, ok := s.Remove(h1)
	assert.True(t, ok)
	assert.Equal(t, 10, removed)
	assert.Equal(t, 1, s.Len())

	_, ok = s.Get(h1)
	assert.False(t, ok)

	v2, ok := s.Get(h2)
	assert.True(t, ok)
	assert.Equal(t, 20, *v2)
}

func TestSet_HandlesNeverReused(t *testing.T) {
	s := New[int]()
	h1 := s.Insert(1)
	s.Remove(h1)
	h2 := s.Insert(2)
	assert.NotEqual(t, h1, h2)
}

func TestSet_ZeroHandleInvalid(t *testing.T) {
	var h Handle[int]
	assert.False(t, h.Valid())
}

func TestSet_GetPairMut(t *testing.T) {
	s := New[int]()
	h1 := s.Insert(1)
	h2 := s.Insert(2)

	a, b, ok := s.GetPairMut(h1, h2)
	assert.True(t, ok)
	*a = 100
	*b = 200

	v1, _ := s.Get(h1)
	v2, _ := s.Get(h2)
	assert.Equal(t, 100, *v1)
	assert.Equal(t, 200, *v2)
}

func TestSet_GetPairMut_SameHandleRejected(t *testing.T) {
	s := New[int]()
	h1 := s.Insert(1)
	_, _, ok := s.GetPairMut(h1, h1)
	assert.False(t, ok)
}

func TestSet_GetPairMut_MissingHandleRejected(t *testing.T) {
	s := New[int]()
	h1 := s.Insert(1)
	var missing Handle[int]
	_, _, ok := s.GetPairMut(h1, missing)
	assert.False(t, ok)
}

func TestSet_SwapRemovalPreservesOtherHandles(t *testing.T) {
	s := New[int]()
	h1 := s.Insert(1)
	h2 := s.Insert(2)
	h3 := s.Insert(3)

	s.Remove(h1)

	v2, ok := s.Get(h2)
	assert.True(t, ok)
	assert.Equal(t, 2, *v2)

	v3, ok := s.Get(h3)
	assert.True(t, ok)
	assert.Equal(t, 3, *v3)
}

func TestSet_Each(t *testing.T) {
	s := New[int]()
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	sum := 0
	s.Each(func(h Handle[int], v *int) {
		sum += *v
	})
	assert.Equal(t, 6, sum)
}
