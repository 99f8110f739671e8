package shapes

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/meshgen/mesh"
)

// TorusConfig describes a torus around the z axis
type TorusConfig struct {
	MainRadius float64 // Distance from the z axis to the tube center
	TubeRadius float64
	XCount     int // Segments around the main axis
	YCount     int // Segments around the tube
	Precision  int
}

func NewTorusConfig() (cfg *TorusConfig) {
	cfg = &TorusConfig{}
	cfg.Defaults()
	return
}

func (cfg *TorusConfig) Defaults() {
	cfg.MainRadius = 5
	cfg.TubeRadius = 1
	cfg.XCount = 10
	cfg.YCount = 10
	cfg.Precision = DefaultPrecision
}

func (cfg *TorusConfig) Validate() error {
	switch {
	case cfg.XCount < 3 || cfg.YCount < 3:
		return invalid("torus needs at least 3 segments each way, have %d x %d", cfg.XCount, cfg.YCount)
	case cfg.MainRadius <= 0:
		return invalid("torus main radius must be positive, have %v", cfg.MainRadius)
	case cfg.TubeRadius <= 0:
		return invalid("torus tube radius must be positive, have %v", cfg.TubeRadius)
	}
	return checkPrecision(cfg.Precision)
}

func (cfg *TorusConfig) N() (numPoints, numLines, numFaces int) {
	numPoints = cfg.XCount * cfg.YCount
	numFaces = 2 * numPoints
	return
}

func (cfg *TorusConfig) Generate(title string) (*mesh.Mesh, error) {
	return GenerateTorus(cfg, title)
}

/*
GenerateTorus lays the points on a periodic XCount x YCount grid with index y*XCount + x, where x steps
alpha around the main axis and y steps beta around the tube. Each grid cell (x,y)-(x+1,y)-(x+1,y+1)-(x,y+1)
is split along its (x,y)-(x+1,y+1) diagonal, with x+1 and y+1 taken modulo the grid size.
*/
func GenerateTorus(cfg *TorusConfig, title string) (m *mesh.Mesh, err error) {
	if err = cfg.Validate(); err != nil {
		return
	}
	var (
		nx, ny     = cfg.XCount, cfg.YCount
		R, r       = cfg.MainRadius, cfg.TubeRadius
		np, nl, nf = cfg.N()
	)
	m = mesh.NewMesh(title, np, nl, nf)
	for y := 0; y < ny; y++ {
		beta := 2 * math.Pi * float64(y) / float64(ny)
		sinB, cosB := math.Sincos(beta)
		for x := 0; x < nx; x++ {
			alpha := 2 * math.Pi * float64(x) / float64(nx)
			sinA, cosA := math.Sincos(alpha)
			m.AddPoint(round(r3.Vec{
				X: (R + r*sinB) * cosA,
				Y: (R + r*sinB) * sinA,
				Z: r * cosB,
			}, cfg.Precision))
		}
	}
	idx := func(x, y int) int { return (y%ny)*nx + x%nx }
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			// On the outer side beta grows toward -z, which makes this order counter-clockwise from outside
			m.AddFace(idx(x, y), idx(x+1, y+1), idx(x+1, y))
			m.AddFace(idx(x, y), idx(x, y+1), idx(x+1, y+1))
		}
	}
	return
}
