package mesh

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/multierr"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/meshgen/utils"
)

var ErrInvalidMesh = errors.New("invalid mesh")

// Validate checks every index and count the writer relies on and returns all problems found.
// Each returned error wraps ErrInvalidMesh.
func (m *Mesh) Validate() (err error) {
	var (
		np = m.NumPoints()
	)
	bad := func(format string, args ...interface{}) {
		err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidMesh}, args...)...))
	}
	if strings.ContainsAny(m.Title, "\r\n") {
		bad("title %q spans more than one line", m.Title)
	}
	for i, p := range m.Points {
		if p.I != i {
			bad("point %d carries index %d", i, p.I)
		}
		if !utils.IsFinite(p.Vec) {
			bad("point %d has a non-finite coordinate %v", i, p.Vec)
		}
	}
	for i, l := range m.Lines {
		for _, v := range l {
			if v < 0 || v >= np {
				bad("line %d references point %d, have %d points", i, v, np)
			}
		}
		if l[0] == l[1] {
			bad("line %d is degenerate [%d %d]", i, l[0], l[1])
		}
	}
	for i, f := range m.Faces {
		if len(f) < 3 {
			bad("face %d has %d points, need at least 3", i, len(f))
		}
		seen := make(map[int]bool, len(f))
		for _, v := range f {
			if v < 0 || v >= np {
				bad("face %d references point %d, have %d points", i, v, np)
			}
			if seen[v] {
				bad("face %d repeats point %d", i, v)
			}
			seen[v] = true
		}
	}
	err = multierr.Append(err, m.CellData.validate("CELL_DATA", m.NumFaces()))
	err = multierr.Append(err, m.PointData.validate("POINT_DATA", np))
	return
}

func (as *AttributeSet) validate(section string, count int) (err error) {
	bad := func(format string, args ...interface{}) {
		err = multierr.Append(err, fmt.Errorf("%w: %s "+format, append([]interface{}{ErrInvalidMesh, section}, args...)...))
	}
	if as.Empty() {
		return
	}
	if count == 0 {
		bad("has attributes but nothing to attach them to")
	}
	for _, fl := range as.lengths() {
		if fl.n != count {
			bad("%s has %d values, want %d", fl.label, fl.n, count)
		}
	}
	for _, s := range as.Scalars {
		switch s.DataType {
		case "int", "float", "double":
		default:
			bad("SCALARS %s has unsupported type %q", s.Name, s.DataType)
		}
		if len(s.LookupTable) != 0 && s.LookupTable != DefaultLookupTable && !as.HasTable(s.LookupTable) {
			bad("SCALARS %s uses undeclared lookup table %q", s.Name, s.LookupTable)
		}
		for i, v := range s.Values {
			if !utils.IsFinite(v) {
				bad("SCALARS %s value %d is %v", s.Name, i, v)
				break
			}
			if s.DataType == "int" && v != math.Trunc(v) {
				bad("SCALARS %s value %d is %v, want an integer", s.Name, i, v)
				break
			}
		}
	}
	checkVecs := func(keyword string, vs []Vectors) {
		for _, v := range vs {
			for i, vec := range v.Values {
				if !utils.IsFinite(vec) {
					bad("%s %s value %d is %v", keyword, v.Name, i, vec)
					break
				}
			}
		}
	}
	checkVecs("VECTORS", as.Vectors)
	checkVecs("NORMALS", as.Normals)
	for _, lt := range as.Tables {
		if len(lt.Colors) == 0 {
			bad("LOOKUP_TABLE %s is empty", lt.Name)
		}
		for i, c := range lt.Colors {
			if !utils.IsFinite(c) || floats.Min(c[:]) < 0 || floats.Max(c[:]) > 1 {
				bad("LOOKUP_TABLE %s color %d is %v, components must lie in [0,1]", lt.Name, i, c)
				break
			}
		}
	}
	names := make(map[string]bool)
	for _, name := range as.Names() {
		if len(name) == 0 || strings.ContainsAny(name, " \t\r\n") {
			bad("attribute name %q must be a single non-empty token", name)
		}
		if names[name] {
			bad("attribute name %q is used twice", name)
		}
		names[name] = true
	}
	return
}
