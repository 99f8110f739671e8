package mesh

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/spatial/r3"
)

// unitSquarePyramid is a closed square pyramid, base at z=0 facing down, apex index 4
func unitSquarePyramid() (m *Mesh) {
	m = NewMesh("pyramid")
	base := []r3.Vec{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}
	for _, v := range base {
		m.AddPoint(v)
	}
	apex := m.AddPoint(r3.Vec{Z: 1})
	ring := Ring(0, 4)
	m.AddFaces(FanFaces(apex, ring, true))
	m.AddFace(Reversed(ring)...)
	return
}

func TestMeshBasics(t *testing.T) {
	m := NewMesh("", 3, 0, 1)
	for i := 0; i < 3; i++ {
		assert.Equal(t, i, m.AddPoint(r3.Vec{X: float64(i)}))
	}
	idx := []int{0, 1, 2}
	m.AddFace(idx...)
	idx[0] = 2 // the mesh keeps its own copy
	assert.Equal(t, Face{0, 1, 2}, m.Faces[0])
	assert.Equal(t, 3, m.NumPoints())
	assert.Equal(t, 1, m.NumFaces())
	assert.Equal(t, 0, m.NumLines())
	assert.Equal(t, 4, m.PolygonSize())
	assert.Equal(t, DefaultTitle, m.GetTitle())
	for i, p := range m.Points {
		assert.Equal(t, i, p.I)
	}
	require.NoError(t, m.Validate())
}

func TestTopologyHelpers(t *testing.T) {
	ring := Ring(1, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, ring)
	assert.Equal(t, []int{1, 4, 3, 2}, Reversed(ring))

	assert.Equal(t, [][]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 1}}, FanFaces(0, ring, false))
	assert.Equal(t, [][]int{{1, 2, 0}, {2, 3, 0}, {3, 4, 0}, {4, 1, 0}}, FanFaces(0, ring, true))

	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}, SpokeLines(0, ring))
	assert.Equal(t, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}}, RingLines(ring))

	assert.Equal(t, [][]int{{1, 2, 3}, {1, 3, 4}}, FanPolygon(ring))

	// The last quad wraps back to the first point of each row
	faces := BandFaces([]int{1, 2, 3}, []int{4, 5, 6})
	assert.Equal(t, [][]int{
		{4, 5, 2}, {4, 2, 1},
		{5, 6, 3}, {5, 3, 2},
		{6, 4, 1}, {6, 1, 3},
	}, faces)
	assert.Panics(t, func() { BandFaces([]int{1, 2}, []int{3, 4, 5}) })
}

func TestValidate(t *testing.T) {
	{ // Every problem is reported, not just the first
		m := NewMesh("bad\ntitle")
		m.AddPoint(r3.Vec{})
		m.AddPoint(r3.Vec{X: 1})
		m.AddPoint(r3.Vec{Y: math.NaN()})
		m.AddFace(0, 1, 3)
		m.AddFace(0, 1)
		m.AddFace(0, 1, 1)
		m.AddLine(0, -1)
		m.AddLine(2, 2)
		err := m.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidMesh))
		assert.Len(t, multierr.Errors(err), 7)
	}
	{ // Out of order point indices
		m := unitSquarePyramid()
		m.Points[2].I = 7
		assert.ErrorIs(t, m.Validate(), ErrInvalidMesh)
	}
	{ // Attribute counts must follow their section
		m := unitSquarePyramid()
		require.NoError(t, m.Validate())
		m.CellData.AddScalars(Scalars{Name: "ids", Values: []float64{0, 1, 2}})
		m.PointData.AddNormals(Vectors{Name: "n", Values: make([]r3.Vec, m.NumPoints())})
		err := m.Validate()
		assert.ErrorIs(t, err, ErrInvalidMesh)
		assert.Len(t, multierr.Errors(err), 1)
		assert.Contains(t, err.Error(), "CELL_DATA SCALARS ids has 3 values, want 5")
	}
	{ // Lookup tables must be declared in the same section
		m := unitSquarePyramid()
		m.PointData.AddScalars(Scalars{Name: "s", Values: make([]float64, 5), LookupTable: "mine"})
		assert.ErrorIs(t, m.Validate(), ErrInvalidMesh)
		m.PointData.AddTable(LookupTable{Name: "mine", Colors: [][4]float64{{1, 0, 0, 1}}})
		assert.NoError(t, m.Validate())
		assert.Equal(t, "float", m.PointData.Scalars[0].DataType)
	}
	{ // Coordinates and field values are finite, int scalars integral, colors in [0,1]
		m := unitSquarePyramid()
		m.Points[1].X = math.Inf(1)
		m.CellData.AddScalars(Scalars{Name: "id", DataType: "int", Values: []float64{0, 1, math.NaN(), 3, 4}})
		m.CellData.AddScalars(Scalars{Name: "half", DataType: "int", Values: []float64{0, 1, 2, 3.5, 4}})
		m.CellData.AddScalars(Scalars{Name: "frac", Values: []float64{0, 1, 2, 3.5, 4}})
		vecs := make([]r3.Vec, 5)
		vecs[3].Y = math.NaN()
		m.CellData.AddVectors(Vectors{Name: "v", Values: vecs})
		norms := make([]r3.Vec, 5)
		norms[0].Z = math.Inf(-1)
		m.PointData.AddNormals(Vectors{Name: "n", Values: norms})
		m.PointData.AddTable(LookupTable{Name: "over", Colors: [][4]float64{{0, 1.5, 0, 1}}})
		m.PointData.AddTable(LookupTable{Name: "nan", Colors: [][4]float64{{0, 0, 0, 1}, {math.NaN(), 0, 0, 1}}})
		err := m.Validate()
		assert.ErrorIs(t, err, ErrInvalidMesh)
		assert.Len(t, multierr.Errors(err), 7)
		assert.Contains(t, err.Error(), "point 1 has a non-finite coordinate")
		assert.Contains(t, err.Error(), "CELL_DATA SCALARS half value 3 is 3.5, want an integer")
		assert.NotContains(t, err.Error(), "frac")
		assert.Contains(t, err.Error(), "CELL_DATA VECTORS v value 3")
		assert.Contains(t, err.Error(), "POINT_DATA NORMALS n value 0")
	}
	{ // Field names are single tokens and unique
		m := unitSquarePyramid()
		m.PointData.AddScalars(Scalars{Name: "two words", Values: make([]float64, 5)})
		m.PointData.AddScalars(Scalars{Name: "x", DataType: "complex", Values: make([]float64, 5)})
		m.PointData.AddVectors(Vectors{Name: "x", Values: make([]r3.Vec, 5)})
		assert.Len(t, multierr.Errors(m.Validate()), 3)
	}
}

func TestConnectivity(t *testing.T) {
	m := unitSquarePyramid()
	require.NoError(t, m.Validate())

	edges := m.UniqueEdges()
	assert.Len(t, edges, 8)
	assert.Equal(t, [2]int{0, 1}, edges[0].GetVertices())

	assert.Equal(t, []int{3, 3, 3, 3, 4}, m.Valence())

	A := m.Incidence()
	r, c := A.Dims()
	assert.Equal(t, 5, r)
	assert.Equal(t, 5, c)
	assert.Equal(t, 1., A.At(4, 0))
	assert.Equal(t, 0., A.At(4, 4))

	fn := m.FaceNormals()
	require.Len(t, fn, 5)
	assert.InDelta(t, -1, fn[4].Z, 1.e-12)
	for k, n := range fn {
		assert.InDelta(t, 1, r3.Norm(n), 1.e-12, "face %d", k)
		var centroid r3.Vec
		for _, v := range m.Faces[k] {
			centroid = r3.Add(centroid, m.Points[v].Vec)
		}
		// The pyramid encloses the point (0,0,0.25)
		assert.Greater(t, r3.Dot(n, r3.Sub(centroid, r3.Scale(float64(len(m.Faces[k])), r3.Vec{Z: .25}))), 0., "face %d", k)
	}

	pn := m.PointNormals()
	require.Len(t, pn, 5)
	assert.InDelta(t, 1, pn[4].Z, 1.e-12)
	for i, n := range pn {
		assert.InDelta(t, 1, r3.Norm(n), 1.e-12, "point %d", i)
	}

	m.WireFrame()
	assert.Equal(t, 8, m.NumLines())
	require.NoError(t, m.Validate())
}

func TestEmptyMesh(t *testing.T) {
	m := NewMesh("empty")
	assert.NoError(t, m.Validate())
	assert.Empty(t, m.Valence())
	assert.Empty(t, m.PointNormals())
	assert.Empty(t, m.UniqueEdges())

	m.CellData.AddScalars(Scalars{Name: "s"})
	assert.ErrorIs(t, m.Validate(), ErrInvalidMesh)
}
