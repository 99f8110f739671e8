package shapes

import (
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/notargets/meshgen/mesh"
	"github.com/notargets/meshgen/utils"
)

const GreenTable = "green_table"

/*
Decorate attaches the default visualization fields to a generated mesh:

	CELL_DATA   cell_scalars (face ordinal), cell_normals
	POINT_DATA  green (point ordinal, colored through green_table), valence, point_normals

green_table ramps the green channel from 0 toward 1 across the points.
*/
func Decorate(m *mesh.Mesh) {
	var (
		np, nf = m.NumPoints(), m.NumFaces()
	)
	if nf > 0 {
		m.CellData.AddScalars(mesh.Scalars{
			Name:     "cell_scalars",
			DataType: "int",
			Values:   utils.Ordinals(nf),
		})
		m.CellData.AddNormals(mesh.Vectors{Name: "cell_normals", Values: m.FaceNormals()})
	}
	if np == 0 {
		return
	}
	colors := make([][4]float64, np)
	for i := range colors {
		colors[i] = [4]float64{0, scalar.Round(float64(i)/float64(np), 3), 0, 1}
	}
	m.PointData.AddScalars(mesh.Scalars{
		Name:        "green",
		DataType:    "float",
		Values:      utils.Ordinals(np),
		LookupTable: GreenTable,
	})
	m.PointData.AddTable(mesh.LookupTable{Name: GreenTable, Colors: colors})
	if nf == 0 {
		return
	}
	valence := m.Valence()
	vf := make([]float64, np)
	for i, v := range valence {
		vf[i] = float64(v)
	}
	m.PointData.AddScalars(mesh.Scalars{Name: "valence", DataType: "int", Values: vf})
	m.PointData.AddNormals(mesh.Vectors{Name: "point_normals", Values: m.PointNormals()})
}
