package mesh

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

const DefaultTitle = "meshgen output"

// Point is a coordinate plus its index in the mesh point list
type Point struct {
	r3.Vec
	I int
}

// Face is an ordered list of point indices, wound counter-clockwise seen from outside
type Face []int

// Line is a segment between two point indices
type Line [2]int

// Mesh is the single representation shared by the generators and the writer
type Mesh struct {
	Title string

	Points []Point
	Lines  []Line
	Faces  []Face

	// Attributes, CellData is per face, PointData is per point
	CellData  AttributeSet
	PointData AttributeSet
}

// NewMesh creates an empty mesh, sizing hints are optional [points, lines, faces]
func NewMesh(title string, sizes ...int) *Mesh {
	m := &Mesh{Title: title}
	if len(sizes) > 0 {
		m.Points = make([]Point, 0, sizes[0])
	}
	if len(sizes) > 1 {
		m.Lines = make([]Line, 0, sizes[1])
	}
	if len(sizes) > 2 {
		m.Faces = make([]Face, 0, sizes[2])
	}
	return m
}

// AddPoint appends a point and returns its index
func (m *Mesh) AddPoint(v r3.Vec) (i int) {
	i = len(m.Points)
	m.Points = append(m.Points, Point{Vec: v, I: i})
	return
}

func (m *Mesh) AddLine(a, b int) {
	m.Lines = append(m.Lines, Line{a, b})
}

// AddFace copies the indices, the caller may reuse its slice
func (m *Mesh) AddFace(idx ...int) {
	f := make(Face, len(idx))
	copy(f, idx)
	m.Faces = append(m.Faces, f)
}

func (m *Mesh) AddFaces(faces [][]int) {
	for _, f := range faces {
		m.AddFace(f...)
	}
}

func (m *Mesh) AddLines(lines [][2]int) {
	for _, l := range lines {
		m.AddLine(l[0], l[1])
	}
}

func (m *Mesh) NumPoints() int { return len(m.Points) }
func (m *Mesh) NumLines() int  { return len(m.Lines) }
func (m *Mesh) NumFaces() int  { return len(m.Faces) }

// PolygonSize is the integer payload of the POLYGONS block, a length prefix plus the indices per face
func (m *Mesh) PolygonSize() (size int) {
	for _, f := range m.Faces {
		size += 1 + len(f)
	}
	return
}

// GetTitle falls back to DefaultTitle
func (m *Mesh) GetTitle() string {
	if len(m.Title) == 0 {
		return DefaultTitle
	}
	return m.Title
}

// WireFrame replaces the line list with every distinct face edge
func (m *Mesh) WireFrame() {
	edges := m.UniqueEdges()
	m.Lines = make([]Line, len(edges))
	for i, e := range edges {
		m.Lines[i] = Line(e.GetVertices())
	}
}

// PrintStatistics prints mesh statistics
func (m *Mesh) PrintStatistics() {
	fmt.Printf("Mesh Statistics: %s\n", m.GetTitle())
	fmt.Printf("  Points: %d\n", m.NumPoints())
	fmt.Printf("  Lines: %d\n", m.NumLines())
	fmt.Printf("  Faces: %d\n", m.NumFaces())

	sizeCounts := make(map[int]int)
	for _, f := range m.Faces {
		sizeCounts[len(f)]++
	}
	sizes := make([]int, 0, len(sizeCounts))
	for s := range sizeCounts {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)
	fmt.Printf("  Face sizes:\n")
	for _, s := range sizes {
		fmt.Printf("    %d-gon: %d\n", s, sizeCounts[s])
	}
	if !m.CellData.Empty() {
		fmt.Printf("  Cell attributes: %v\n", m.CellData.Names())
	}
	if !m.PointData.Empty() {
		fmt.Printf("  Point attributes: %v\n", m.PointData.Names())
	}
}
