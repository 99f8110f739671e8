package shapes

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/meshgen/mesh"
)

var ErrInvalidConfig = errors.New("invalid shape configuration")

// DefaultPrecision is the number of fractional digits kept in generated coordinates
const DefaultPrecision = 5

type ShapeType uint8

const (
	Ihlan ShapeType = iota
	Sphere
	Torus
)

func (st ShapeType) String() string {
	return [...]string{"ihlan", "sphere", "torus"}[st]
}

func NewShapeType(label string) (st ShapeType, err error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "ihlan", "pyramid", "cone":
		st = Ihlan
	case "sphere", "uvsphere", "uv_sphere":
		st = Sphere
	case "torus":
		st = Torus
	default:
		err = fmt.Errorf("%w: unknown shape type %q", ErrInvalidConfig, label)
	}
	return
}

// Config is implemented by every shape configuration
type Config interface {
	Validate() error
	// N returns the point, line and face counts the generator will produce
	N() (numPoints, numLines, numFaces int)
	Generate(title string) (*mesh.Mesh, error)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidConfig}, args...)...)
}

func checkPrecision(precision int) error {
	if precision < 0 || precision > 15 {
		return invalid("precision must be in [0,15], have %d", precision)
	}
	return nil
}

// round keeps prec fractional digits of each coordinate; -0 is folded into 0
func round(v r3.Vec, prec int) r3.Vec {
	r := func(x float64) float64 {
		x = scalar.Round(x, prec)
		if x == 0 {
			return 0
		}
		return x
	}
	return r3.Vec{X: r(v.X), Y: r(v.Y), Z: r(v.Z)}
}
