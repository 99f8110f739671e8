package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	{ // Packed undirected edge keys
		en := NewEdgeKey([2]int{1, 0})
		assert.Equal(t, EdgeKey(1<<32), en)
		assert.Equal(t, [2]int{0, 1}, en.GetVertices())

		en = NewEdgeKey([2]int{0, 1})
		assert.Equal(t, EdgeKey(1<<32), en)

		en = NewEdgeKey([2]int{100, 1})
		assert.Equal(t, EdgeKey(100*(1<<32)+1), en)
		assert.Equal(t, [2]int{1, 100}, en.GetVertices())

		en = NewEdgeKey([2]int{1<<32 - 1, 1<<32 - 1})
		assert.Equal(t, EdgeKey(1<<64-1), en)
		assert.Equal(t, [2]int{1<<32 - 1, 1<<32 - 1}, en.GetVertices())

		assert.Panics(t, func() { NewEdgeKey([2]int{-1, 3}) })
	}
	{ // Directed edges keep their orientation
		e := NewEdgeInt([2]int{7, 2})
		assert.True(t, e < 0)
		assert.Equal(t, [2]int{7, 2}, e.GetVertices())
		assert.Equal(t, NewEdgeKey([2]int{2, 7}), e.GetKey())

		e = NewEdgeInt([2]int{2, 7})
		assert.True(t, e > 0)
		assert.Equal(t, [2]int{2, 7}, e.GetVertices())

		e = NewEdgeInt([2]int{1<<31 - 1, 0})
		assert.Equal(t, [2]int{1<<31 - 1, 0}, e.GetVertices())
		assert.Panics(t, func() { NewEdgeInt([2]int{1 << 31, 0}) })
	}
}

func TestEdgeSet(t *testing.T) {
	es := NewEdgeSet(4)
	assert.True(t, es.Add([2]int{0, 1}))
	assert.True(t, es.Add([2]int{1, 2}))
	assert.False(t, es.Add([2]int{1, 0}))
	assert.False(t, es.Add([2]int{2, 1}))
	assert.True(t, es.Add([2]int{2, 0}))
	assert.Equal(t, 3, es.Len())
	assert.Equal(t, [2]int{2, 0}, es.Edges[2].GetVertices())
}
