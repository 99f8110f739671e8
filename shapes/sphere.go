package shapes

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/meshgen/mesh"
)

// SphereConfig describes a UV sphere centered on the origin
type SphereConfig struct {
	Radius    float64
	Meridians int // Points per parallel
	Parallels int // Rings between the poles
	Precision int
}

func NewSphereConfig() (cfg *SphereConfig) {
	cfg = &SphereConfig{}
	cfg.Defaults()
	return
}

func (cfg *SphereConfig) Defaults() {
	cfg.Radius = 5
	cfg.Meridians = 10
	cfg.Parallels = 10
	cfg.Precision = DefaultPrecision
}

func (cfg *SphereConfig) Validate() error {
	switch {
	case cfg.Meridians < 3:
		return invalid("sphere needs at least 3 meridians, have %d", cfg.Meridians)
	case cfg.Parallels < 1:
		return invalid("sphere needs at least 1 parallel, have %d", cfg.Parallels)
	case cfg.Radius <= 0:
		return invalid("sphere radius must be positive, have %v", cfg.Radius)
	}
	return checkPrecision(cfg.Precision)
}

// N counts rows as the two poles plus the parallels, every row pair contributes 2*Meridians triangles
func (cfg *SphereConfig) N() (numPoints, numLines, numFaces int) {
	var (
		P, M = cfg.Parallels, cfg.Meridians
		rows = P + 2
	)
	numPoints = P*M + 2
	numFaces = 2 * (rows - 2) * M
	return
}

func (cfg *SphereConfig) Generate(title string) (*mesh.Mesh, error) {
	return GenerateSphere(cfg, title)
}

/*
GenerateSphere numbers the north pole 0, then each parallel from north to south with its meridians in
increasing azimuth, and the south pole last. Parallel p (1..P) sits at polar angle
theta = pi/2 + p/(P+1)*pi and meridian m at azimuth gamma = m/M*2pi.

The caps are fans around the poles, the bands between parallels get two triangles per quad, and the
last meridian of every row wraps to the first point of the same row.
*/
func GenerateSphere(cfg *SphereConfig, title string) (m *mesh.Mesh, err error) {
	if err = cfg.Validate(); err != nil {
		return
	}
	var (
		P, M       = cfg.Parallels, cfg.Meridians
		r          = cfg.Radius
		np, nl, nf = cfg.N()
		rows       = make([][]int, P)
	)
	m = mesh.NewMesh(title, np, nl, nf)
	north := m.AddPoint(round(r3.Vec{Z: r}, cfg.Precision))
	for p := 1; p <= P; p++ {
		theta := math.Pi/2 + float64(p)/float64(P+1)*math.Pi
		sinT, cosT := math.Sincos(theta)
		for j := 0; j < M; j++ {
			gamma := float64(j) / float64(M) * 2 * math.Pi
			sinG, cosG := math.Sincos(gamma)
			i := m.AddPoint(round(r3.Vec{X: r * cosT * cosG, Y: r * cosT * sinG, Z: r * sinT}, cfg.Precision))
			if j == 0 {
				rows[p-1] = mesh.Ring(i, M)
			}
		}
	}
	south := m.AddPoint(round(r3.Vec{Z: -r}, cfg.Precision))

	m.AddFaces(mesh.FanFaces(north, rows[0], true))
	for p := 1; p < P; p++ {
		m.AddFaces(mesh.BandFaces(rows[p-1], rows[p]))
	}
	last := rows[P-1]
	for j := range last {
		m.AddFace(last[j], south, last[(j+1)%M])
	}
	return
}
