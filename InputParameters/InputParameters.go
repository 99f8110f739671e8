package InputParameters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/notargets/meshgen/shapes"
)

// Parameters obtained from a YAML or TOML input file, one entry per shape to generate
type InputParameters struct {
	Title     string            `json:"Title" toml:"Title"`
	OutputDir string            `json:"OutputDir" toml:"OutputDir"`
	Shapes    []ShapeParameters `json:"Shapes" toml:"Shapes"`
}

// ShapeParameters holds the union of all shape fields, zero values select the shape defaults
type ShapeParameters struct {
	Type       string `json:"Type" toml:"Type"`
	Title      string `json:"Title" toml:"Title"`
	Output     string `json:"Output" toml:"Output"`
	Attributes bool   `json:"Attributes" toml:"Attributes"`
	WireFrame  bool   `json:"WireFrame" toml:"WireFrame"`
	Precision  *int   `json:"Precision" toml:"Precision"`

	Radius     float64 `json:"Radius" toml:"Radius"`
	Height     float64 `json:"Height" toml:"Height"`
	BasePoints int     `json:"BasePoints" toml:"BasePoints"`
	BaseFan    bool    `json:"BaseFan" toml:"BaseFan"`
	Meridians  int     `json:"Meridians" toml:"Meridians"`
	Parallels  int     `json:"Parallels" toml:"Parallels"`
	MainRadius float64 `json:"MainRadius" toml:"MainRadius"`
	TubeRadius float64 `json:"TubeRadius" toml:"TubeRadius"`
	XCount     int     `json:"XCount" toml:"XCount"`
	YCount     int     `json:"YCount" toml:"YCount"`
}

const ExampleFile = `
########################################
Title: "Shapes"
OutputDir: "."
Shapes:
  - Type: ihlan
    Output: ihlan.vtk
    BasePoints: 6
    Attributes: true
  - Type: sphere
    Output: sphere.vtk
    Meridians: 10
    Parallels: 10
  - Type: torus
    Output: torus.vtk
    MainRadius: 5
    TubeRadius: 1
########################################
`

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) ParseTOML(data []byte) error {
	return toml.Unmarshal(data, ip)
}

// ReadFile parses a .toml file as TOML and anything else as YAML
func ReadFile(fileName string) (ip *InputParameters, err error) {
	var (
		data []byte
	)
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	ip = &InputParameters{}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".toml":
		err = ip.ParseTOML(data)
	default:
		err = ip.Parse(data)
	}
	if err != nil {
		err = fmt.Errorf("parsing %s: %w", fileName, err)
		return
	}
	if len(ip.Shapes) == 0 {
		err = fmt.Errorf("%s: no Shapes listed, example file:%s", fileName, ExampleFile)
	}
	return
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= OutputDir\n", ip.OutputDir)
	for i, sp := range ip.Shapes {
		fmt.Printf("Shapes[%d] = %s -> %s\n", i, sp.Type, sp.OutputName(i))
	}
}

// OutputName defaults to "<type>.vtk", or "<type>_<i>.vtk" past the first shape
func (sp *ShapeParameters) OutputName(i int) string {
	if len(sp.Output) != 0 {
		return sp.Output
	}
	if i == 0 {
		return strings.ToLower(sp.Type) + ".vtk"
	}
	return fmt.Sprintf("%s_%d.vtk", strings.ToLower(sp.Type), i)
}

// Config overlays the non-zero parameters on the defaults of the named shape
func (sp *ShapeParameters) Config() (cfg shapes.Config, err error) {
	var (
		st shapes.ShapeType
	)
	if st, err = shapes.NewShapeType(sp.Type); err != nil {
		return
	}
	setF := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	setI := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}
	setP := func(dst *int) {
		if sp.Precision != nil {
			*dst = *sp.Precision
		}
	}
	switch st {
	case shapes.Ihlan:
		c := shapes.NewIhlanConfig()
		setF(&c.Radius, sp.Radius)
		setF(&c.Height, sp.Height)
		setI(&c.BasePoints, sp.BasePoints)
		setP(&c.Precision)
		c.BaseFan = sp.BaseFan
		cfg = c
	case shapes.Sphere:
		c := shapes.NewSphereConfig()
		setF(&c.Radius, sp.Radius)
		setI(&c.Meridians, sp.Meridians)
		setI(&c.Parallels, sp.Parallels)
		setP(&c.Precision)
		cfg = c
	case shapes.Torus:
		c := shapes.NewTorusConfig()
		setF(&c.MainRadius, sp.MainRadius)
		setF(&c.TubeRadius, sp.TubeRadius)
		setI(&c.XCount, sp.XCount)
		setI(&c.YCount, sp.YCount)
		setP(&c.Precision)
		cfg = c
	}
	err = cfg.Validate()
	return
}
