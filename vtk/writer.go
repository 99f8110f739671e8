package vtk

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"go.uber.org/multierr"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/meshgen/mesh"
)

const (
	Version = "# vtk DataFile Version 3.0"
	Format  = "ASCII"
	Dataset = "DATASET POLYDATA"

	MaxTitle = 255
)

// Stats counts the records written after each block header by the last WriteMesh
type Stats struct {
	Points      int
	Lines       int
	Polygons    int
	CellValues  int // Values across all CELL_DATA fields, lookup table entries excluded
	PointValues int
	TableColors int
}

// Writer emits the legacy ASCII format. The first error is kept and later writes become no-ops,
// so the block writers read top to bottom and the error is checked once at the end.
type Writer struct {
	w     *bufio.Writer
	err   error
	Stats Stats
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write validates the mesh and serializes it, nothing is written if validation fails
func Write(w io.Writer, m *mesh.Mesh) (err error) {
	_, err = NewWriter(w).WriteMesh(m)
	return
}

// WriteFile creates or truncates path, a failed write leaves an unusable file behind that should be
// overwritten on retry
func WriteFile(path string, m *mesh.Mesh) (st Stats, err error) {
	var (
		file *os.File
	)
	if err = m.Validate(); err != nil {
		return
	}
	if file, err = os.Create(path); err != nil {
		return
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()
	st, err = NewWriter(file).WriteMesh(m)
	if err != nil {
		err = fmt.Errorf("writing %s: %w", path, err)
	}
	return
}

func (vw *Writer) WriteMesh(m *mesh.Mesh) (st Stats, err error) {
	if err = m.Validate(); err != nil {
		return
	}
	vw.Stats = Stats{}
	vw.writeHeader(m.GetTitle())
	vw.writePoints(m.Points)
	vw.writeLines(m.Lines)
	vw.writePolygons(m.Faces, m.PolygonSize())
	vw.Stats.CellValues += vw.writeAttributes("CELL_DATA", m.NumFaces(), &m.CellData)
	vw.Stats.PointValues += vw.writeAttributes("POINT_DATA", m.NumPoints(), &m.PointData)
	if vw.err == nil {
		vw.err = vw.w.Flush()
	}
	return vw.Stats, vw.err
}

func (vw *Writer) printf(format string, args ...interface{}) {
	if vw.err != nil {
		return
	}
	_, vw.err = fmt.Fprintf(vw.w, format, args...)
}

func (vw *Writer) writeString(s string) {
	if vw.err != nil {
		return
	}
	_, vw.err = vw.w.WriteString(s)
}

func (vw *Writer) writeHeader(title string) {
	// Legacy readers stop reading the title at 256 bytes, cut on a rune boundary
	if len(title) > MaxTitle {
		cut := MaxTitle
		for cut > 0 && !utf8.RuneStart(title[cut]) {
			cut--
		}
		title = title[:cut]
	}
	vw.printf("%s\n%s\n%s\n%s\n", Version, title, Format, Dataset)
}

func (vw *Writer) writePoints(points []mesh.Point) {
	vw.printf("POINTS %d float\n", len(points))
	for _, p := range points {
		vw.writeVec(p.Vec)
		vw.Stats.Points++
	}
}

func (vw *Writer) writeLines(lines []mesh.Line) {
	if len(lines) == 0 {
		return
	}
	vw.printf("LINES %d %d\n", len(lines), 3*len(lines))
	for _, l := range lines {
		vw.printf("2 %d %d\n", l[0], l[1])
		vw.Stats.Lines++
	}
}

func (vw *Writer) writePolygons(faces []mesh.Face, size int) {
	if len(faces) == 0 {
		return
	}
	vw.printf("POLYGONS %d %d\n", len(faces), size)
	buf := make([]byte, 0, 64)
	for _, f := range faces {
		buf = strconv.AppendInt(buf[:0], int64(len(f)), 10)
		for _, v := range f {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(v), 10)
		}
		buf = append(buf, '\n')
		vw.writeString(string(buf))
		vw.Stats.Polygons++
	}
}

// writeAttributes returns the number of field values written, one per entity per field
func (vw *Writer) writeAttributes(section string, count int, as *mesh.AttributeSet) (written int) {
	if as.Empty() {
		return
	}
	vw.printf("%s %d\n", section, count)
	for _, s := range as.Scalars {
		table := s.LookupTable
		if len(table) == 0 {
			table = mesh.DefaultLookupTable
		}
		vw.printf("SCALARS %s %s 1\nLOOKUP_TABLE %s\n", s.Name, s.DataType, table)
		for _, v := range s.Values {
			vw.writeString(formatScalar(v, s.DataType) + "\n")
			written++
		}
	}
	for _, v := range as.Vectors {
		vw.printf("VECTORS %s float\n", v.Name)
		written += vw.writeVecs(v.Values)
	}
	for _, v := range as.Normals {
		vw.printf("NORMALS %s float\n", v.Name)
		written += vw.writeVecs(v.Values)
	}
	for _, lt := range as.Tables {
		vw.printf("LOOKUP_TABLE %s %d\n", lt.Name, len(lt.Colors))
		for _, c := range lt.Colors {
			vw.printf("%s %s %s %s\n", formatFloat(c[0]), formatFloat(c[1]), formatFloat(c[2]), formatFloat(c[3]))
			vw.Stats.TableColors++
		}
	}
	return
}

func (vw *Writer) writeVecs(vecs []r3.Vec) (written int) {
	for _, v := range vecs {
		vw.writeVec(v)
		written++
	}
	return
}

func (vw *Writer) writeVec(v r3.Vec) {
	vw.writeString(formatFloat(v.X) + " " + formatFloat(v.Y) + " " + formatFloat(v.Z) + "\n")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatScalar(f float64, dataType string) string {
	if dataType == "int" {
		return strconv.FormatInt(int64(f), 10)
	}
	return formatFloat(f)
}
