package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"
)

const DefaultLookupTable = "default"

// Scalars is a single component field, DataType is the legacy type name ("int", "float", "double")
type Scalars struct {
	Name        string
	DataType    string
	Values      []float64
	LookupTable string // Empty selects the default table
}

// Vectors holds a three component field, written as VECTORS or NORMALS
type Vectors struct {
	Name   string
	Values []r3.Vec
}

// LookupTable maps scalar values to RGBA colors, each component in [0,1]
type LookupTable struct {
	Name   string
	Colors [][4]float64
}

// AttributeSet is the attribute data attached to either every face or every point
type AttributeSet struct {
	Scalars []Scalars
	Vectors []Vectors
	Normals []Vectors
	Tables  []LookupTable
}

func (as *AttributeSet) Empty() bool {
	return len(as.Scalars) == 0 && len(as.Vectors) == 0 && len(as.Normals) == 0 && len(as.Tables) == 0
}

func (as *AttributeSet) AddScalars(s Scalars) {
	if len(s.DataType) == 0 {
		s.DataType = "float"
	}
	as.Scalars = append(as.Scalars, s)
}

func (as *AttributeSet) AddVectors(v Vectors) { as.Vectors = append(as.Vectors, v) }

func (as *AttributeSet) AddNormals(v Vectors) { as.Normals = append(as.Normals, v) }

func (as *AttributeSet) AddTable(lt LookupTable) { as.Tables = append(as.Tables, lt) }

// HasTable reports whether a lookup table of that name is declared in this set
func (as *AttributeSet) HasTable(name string) bool {
	for _, lt := range as.Tables {
		if lt.Name == name {
			return true
		}
	}
	return false
}

// Names lists the field names in the order they are written
func (as *AttributeSet) Names() (names []string) {
	for _, s := range as.Scalars {
		names = append(names, s.Name)
	}
	for _, v := range as.Vectors {
		names = append(names, v.Name)
	}
	for _, v := range as.Normals {
		names = append(names, v.Name)
	}
	return
}

type fieldLen struct {
	label string
	n     int
}

// lengths returns the entity count of every field, in write order
func (as *AttributeSet) lengths() (lens []fieldLen) {
	for _, s := range as.Scalars {
		lens = append(lens, fieldLen{"SCALARS " + s.Name, len(s.Values)})
	}
	for _, v := range as.Vectors {
		lens = append(lens, fieldLen{"VECTORS " + v.Name, len(v.Values)})
	}
	for _, v := range as.Normals {
		lens = append(lens, fieldLen{"NORMALS " + v.Name, len(v.Values)})
	}
	return
}
