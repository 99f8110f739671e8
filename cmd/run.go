/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/meshgen/shapes"
	"github.com/notargets/meshgen/utils"
	"github.com/notargets/meshgen/vtk"
)

// ShapeRun is one generate-and-export pass
type ShapeRun struct {
	Config     shapes.Config
	Title      string
	Output     string // Relative paths are placed under OutputDir
	OutputDir  string
	Attributes bool
	WireFrame  bool
	Verbose    bool
}

func (sr *ShapeRun) Path() string {
	if filepath.IsAbs(sr.Output) || len(sr.OutputDir) == 0 {
		return sr.Output
	}
	return filepath.Join(sr.OutputDir, sr.Output)
}

// Run generates the mesh, decorates it on request and writes it out
func (sr *ShapeRun) Run() (st vtk.Stats, err error) {
	m, err := sr.Config.Generate(sr.Title)
	if err != nil {
		return
	}
	if sr.WireFrame {
		m.WireFrame()
	}
	if sr.Attributes {
		shapes.Decorate(m)
	}
	if sr.Verbose {
		m.PrintStatistics()
		fmt.Println(utils.MemUsage("generate"))
	}
	path := sr.Path()
	log.Printf("Writing %s", path)
	if st, err = vtk.WriteFile(path, m); err != nil {
		return
	}
	if sr.Verbose {
		fmt.Printf("Wrote %d points, %d lines, %d polygons, %d cell values, %d point values\n",
			st.Points, st.Lines, st.Polygons, st.CellValues, st.PointValues)
		fmt.Println(utils.MemUsage("write"))
	}
	return
}

// newShapeRun collects the flags shared by the shape commands
func newShapeRun(cmd *cobra.Command, cfg shapes.Config, defaultOutput string) (sr *ShapeRun) {
	sr = &ShapeRun{
		Config:    cfg,
		OutputDir: viper.GetString("outputDir"),
		Verbose:   viper.GetBool("verbose"),
	}
	sr.Output, _ = cmd.Flags().GetString("output")
	if len(sr.Output) == 0 {
		sr.Output = defaultOutput
	}
	sr.Title, _ = cmd.Flags().GetString("title")
	sr.Attributes, _ = cmd.Flags().GetBool("attributes")
	sr.WireFrame, _ = cmd.Flags().GetBool("wireFrame")
	return
}

func addShapeFlags(cmd *cobra.Command, defaultTitle string) {
	cmd.Flags().StringP("output", "o", "", "output file name, placed under --outputDir when relative")
	cmd.Flags().StringP("title", "t", defaultTitle, "title line of the output file")
	cmd.Flags().BoolP("attributes", "a", false, "add cell and point attribute data (ids, normals, valence, color table)")
	cmd.Flags().BoolP("wireFrame", "w", false, "write every face edge in the LINES block")
	cmd.Flags().Int("precision", shapes.DefaultPrecision, "fractional digits kept in coordinates")
}
