package mesh

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/meshgen/types"
)

// UniqueEdges returns every distinct face edge, directed as first traversed, in face order
func (m *Mesh) UniqueEdges() (edges []types.EdgeInt) {
	es := types.NewEdgeSet(2 * m.PolygonSize())
	for _, f := range m.Faces {
		n := len(f)
		for j := 0; j < n; j++ {
			es.Add([2]int{f[j], f[(j+1)%n]})
		}
	}
	return es.Edges
}

// Incidence returns the [NumPoints x NumFaces] point to face incidence matrix, the mesh needs points and faces
func (m *Mesh) Incidence() (A *sparse.CSR) {
	var (
		np, nf = m.NumPoints(), m.NumFaces()
	)
	dok := sparse.NewDOK(np, nf)
	for k, f := range m.Faces {
		for _, v := range f {
			dok.Set(v, k, 1)
		}
	}
	A = dok.ToCSR()
	return
}

// Valence is the number of faces sharing each point
func (m *Mesh) Valence() (valence []int) {
	valence = make([]int, m.NumPoints())
	if m.NumPoints() == 0 || m.NumFaces() == 0 {
		return
	}
	raw := m.Incidence().RawMatrix()
	for i := range valence {
		valence[i] = raw.Indptr[i+1] - raw.Indptr[i]
	}
	return
}

// FaceNormals returns the unit normal of every face using Newell's method, which also
// handles non-triangular faces. Degenerate faces get a zero vector.
func (m *Mesh) FaceNormals() (normals []r3.Vec) {
	normals = make([]r3.Vec, m.NumFaces())
	for k, f := range m.Faces {
		var nv r3.Vec
		n := len(f)
		for j := 0; j < n; j++ {
			p, q := m.Points[f[j]].Vec, m.Points[f[(j+1)%n]].Vec
			nv.X += (p.Y - q.Y) * (p.Z + q.Z)
			nv.Y += (p.Z - q.Z) * (p.X + q.X)
			nv.Z += (p.X - q.X) * (p.Y + q.Y)
		}
		if r3.Norm(nv) > 0 {
			nv = r3.Unit(nv)
		}
		normals[k] = nv
	}
	return
}

// PointNormals averages the normals of the faces around each point: N_p = unit(A * N_f)
func (m *Mesh) PointNormals() (normals []r3.Vec) {
	var (
		np, nf = m.NumPoints(), m.NumFaces()
	)
	normals = make([]r3.Vec, np)
	if np == 0 || nf == 0 {
		return
	}
	fn := mat.NewDense(nf, 3, nil)
	for k, v := range m.FaceNormals() {
		fn.SetRow(k, []float64{v.X, v.Y, v.Z})
	}
	pn := mat.NewDense(np, 3, nil)
	pn.Mul(m.Incidence(), fn)
	for i := range normals {
		v := r3.Vec{X: pn.At(i, 0), Y: pn.At(i, 1), Z: pn.At(i, 2)}
		if r3.Norm(v) > 0 {
			v = r3.Unit(v)
		}
		normals[i] = v
	}
	return
}
