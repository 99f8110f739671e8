package shapes

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/meshgen/mesh"
)

// IhlanConfig describes a pyramid-like solid: one apex above an n-gon base ring centered on the origin
type IhlanConfig struct {
	Radius     float64 // Base ring radius
	Height     float64 // Apex height above the base plane
	BasePoints int     // Number of base ring points
	Precision  int     // Fractional digits kept in coordinates
	BaseFan    bool    // Split the base polygon into triangles
}

func NewIhlanConfig() (cfg *IhlanConfig) {
	cfg = &IhlanConfig{}
	cfg.Defaults()
	return
}

func (cfg *IhlanConfig) Defaults() {
	cfg.Radius = 5
	cfg.Height = 5
	cfg.BasePoints = 4
	cfg.Precision = DefaultPrecision
	cfg.BaseFan = false
}

func (cfg *IhlanConfig) Validate() error {
	switch {
	case cfg.BasePoints < 3:
		return invalid("ihlan needs at least 3 base points, have %d", cfg.BasePoints)
	case cfg.Radius <= 0:
		return invalid("ihlan radius must be positive, have %v", cfg.Radius)
	case cfg.Height <= 0:
		return invalid("ihlan height must be positive, have %v", cfg.Height)
	}
	return checkPrecision(cfg.Precision)
}

func (cfg *IhlanConfig) N() (numPoints, numLines, numFaces int) {
	n := cfg.BasePoints
	numPoints = n + 1
	numLines = 2 * n
	if cfg.BaseFan {
		numFaces = n + n - 2
	} else {
		numFaces = n + 1
	}
	return
}

func (cfg *IhlanConfig) Generate(title string) (*mesh.Mesh, error) {
	return GenerateIhlan(cfg, title)
}

/*
GenerateIhlan places the apex at index 0 and the base ring at indices 1..n. No closing point is added,
the topology wraps from the last base point back to index 1.

	Lines:  n spokes apex-k, then the base ring k-(k+1) closing n-1
	Faces:  n sides (apex, k, k+1) closing (apex, n, 1), then the base, wound to face -z
*/
func GenerateIhlan(cfg *IhlanConfig, title string) (m *mesh.Mesh, err error) {
	if err = cfg.Validate(); err != nil {
		return
	}
	var (
		n          = cfg.BasePoints
		np, nl, nf = cfg.N()
		r, h       = cfg.Radius, cfg.Height
	)
	m = mesh.NewMesh(title, np, nl, nf)
	apex := m.AddPoint(round(r3.Vec{Z: h}, cfg.Precision))
	for k := 0; k < n; k++ {
		angle := 2 * math.Pi * float64(k) / float64(n)
		m.AddPoint(round(r3.Vec{X: r * math.Cos(angle), Y: r * math.Sin(angle)}, cfg.Precision))
	}
	base := mesh.Ring(apex+1, n)

	m.AddLines(mesh.SpokeLines(apex, base))
	m.AddLines(mesh.RingLines(base))

	m.AddFaces(mesh.FanFaces(apex, base, false))
	bottom := mesh.Reversed(base)
	if cfg.BaseFan {
		m.AddFaces(mesh.FanPolygon(bottom))
	} else {
		m.AddFace(bottom...)
	}
	return
}
