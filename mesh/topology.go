package mesh

import (
	"fmt"
)

/*
Topology helpers derive faces and lines from rows ("rings") of point indices. Every generator builds its
face list from these so the writer only ever sees an explicit list.

A ring is closed: the edge after the last entry runs back to the first entry.
*/

// Ring returns n consecutive indices starting at start
func Ring(start, n int) (ring []int) {
	ring = make([]int, n)
	for i := range ring {
		ring[i] = start + i
	}
	return
}

// FanFaces builds one triangle per ring edge joined to apex. With apexLast the triangles are
// (ring[j], ring[j+1], apex), otherwise (apex, ring[j], ring[j+1]); both keep the ring's orientation.
func FanFaces(apex int, ring []int, apexLast bool) (faces [][]int) {
	n := len(ring)
	faces = make([][]int, n)
	for j := 0; j < n; j++ {
		a, b := ring[j], ring[(j+1)%n]
		if apexLast {
			faces[j] = []int{a, b, apex}
		} else {
			faces[j] = []int{apex, a, b}
		}
	}
	return
}

// BandFaces joins two rings of equal length with two triangles per quad. The upper ring lies on
// the outward-facing side of the lower ring when both run counter-clockwise seen from the upper pole.
//
//	upper[j] ---- upper[j+1]
//	   |        /     |
//	   |      /       |
//	lower[j] ---- lower[j+1]
func BandFaces(upper, lower []int) (faces [][]int) {
	if len(upper) != len(lower) {
		panic(fmt.Errorf("band rings differ in length, %d and %d", len(upper), len(lower)))
	}
	n := len(lower)
	faces = make([][]int, 0, 2*n)
	for j := 0; j < n; j++ {
		jp := (j + 1) % n
		faces = append(faces,
			[]int{lower[j], lower[jp], upper[jp]},
			[]int{lower[j], upper[jp], upper[j]},
		)
	}
	return
}

// FanPolygon splits a convex polygon into len(poly)-2 triangles sharing poly[0]
func FanPolygon(poly []int) (faces [][]int) {
	for j := 1; j+1 < len(poly); j++ {
		faces = append(faces, []int{poly[0], poly[j], poly[j+1]})
	}
	return
}

// Reversed returns a copy of the ring in the opposite orientation, keeping ring[0] first
func Reversed(ring []int) (rev []int) {
	n := len(ring)
	rev = make([]int, n)
	for j := range ring {
		rev[j] = ring[(n-j)%n]
	}
	return
}

// SpokeLines joins apex to every ring point
func SpokeLines(apex int, ring []int) (lines [][2]int) {
	lines = make([][2]int, len(ring))
	for j, v := range ring {
		lines[j] = [2]int{apex, v}
	}
	return
}

// RingLines joins consecutive ring points, closing back to ring[0]
func RingLines(ring []int) (lines [][2]int) {
	n := len(ring)
	lines = make([][2]int, n)
	for j := 0; j < n; j++ {
		lines[j] = [2]int{ring[j], ring[(j+1)%n]}
	}
	return
}
