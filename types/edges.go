package types

import (
	"fmt"
	"math"
)

// EdgeKey packs an undirected edge into one comparable value, smaller point index in the low 32 bits
type EdgeKey uint64

// EdgeInt is a directed edge: the magnitude is the EdgeKey and a negative sign marks an edge
// that runs from the larger index to the smaller one
type EdgeInt int64

// ordered returns the pair low index first and reports whether it had to be swapped
func ordered(verts [2]int, limit int) (lo, hi int, swapped bool) {
	lo, hi = verts[0], verts[1]
	if lo > hi {
		lo, hi, swapped = hi, lo, true
	}
	if lo < 0 || hi > limit {
		panic(fmt.Errorf("point indices %d and %d do not fit an edge key", verts[0], verts[1]))
	}
	return
}

func NewEdgeKey(verts [2]int) EdgeKey {
	lo, hi, _ := ordered(verts, math.MaxUint32)
	return EdgeKey(uint64(lo) | uint64(hi)<<32)
}

// GetVertices returns the point indices in ascending order
func (ek EdgeKey) GetVertices() [2]int {
	return [2]int{int(ek & math.MaxUint32), int(ek >> 32)}
}

func NewEdgeInt(verts [2]int) (e EdgeInt) {
	// the high index keeps the sign bit clear
	lo, hi, swapped := ordered(verts, math.MaxInt32)
	e = EdgeInt(NewEdgeKey([2]int{lo, hi}))
	if swapped {
		e = -e
	}
	return
}

// GetVertices returns the point indices in the direction the edge was created with
func (e EdgeInt) GetVertices() (verts [2]int) {
	verts = e.GetKey().GetVertices()
	if e < 0 {
		verts[0], verts[1] = verts[1], verts[0]
	}
	return
}

func (e EdgeInt) GetKey() EdgeKey {
	if e < 0 {
		e = -e
	}
	return EdgeKey(e)
}

// EdgeSet collects directed edges, keeping the first direction seen for each undirected edge
type EdgeSet struct {
	seen  map[EdgeKey]struct{}
	Edges []EdgeInt
}

func NewEdgeSet(capacity int) *EdgeSet {
	return &EdgeSet{
		seen:  make(map[EdgeKey]struct{}, capacity),
		Edges: make([]EdgeInt, 0, capacity),
	}
}

// Add reports whether the edge was new
func (es *EdgeSet) Add(verts [2]int) bool {
	e := NewEdgeInt(verts)
	ek := e.GetKey()
	if _, ok := es.seen[ek]; ok {
		return false
	}
	es.seen[ek] = struct{}{}
	es.Edges = append(es.Edges, e)
	return true
}

func (es *EdgeSet) Len() int { return len(es.Edges) }
