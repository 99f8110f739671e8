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
	"github.com/spf13/cobra"

	"github.com/notargets/meshgen/shapes"
)

// TorusCmd represents the torus command
var TorusCmd = &cobra.Command{
	Use:   "torus",
	Short: "Torus on a periodic grid",
	Long: `
Generates a torus around the z axis from an xCount x yCount periodic grid, two triangles per cell,

meshgen torus -R 5 -r 1 -x 10 -y 10 -o torus.vtk`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg := shapes.NewTorusConfig()
		cfg.MainRadius, _ = cmd.Flags().GetFloat64("mainRadius")
		cfg.TubeRadius, _ = cmd.Flags().GetFloat64("tubeRadius")
		cfg.XCount, _ = cmd.Flags().GetInt("xCount")
		cfg.YCount, _ = cmd.Flags().GetInt("yCount")
		cfg.Precision, _ = cmd.Flags().GetInt("precision")
		_, err = newShapeRun(cmd, cfg, "torus.vtk").Run()
		return
	},
}

func init() {
	rootCmd.AddCommand(TorusCmd)
	cfg := shapes.NewTorusConfig()
	TorusCmd.Flags().Float64P("mainRadius", "R", cfg.MainRadius, "distance from the axis to the tube center")
	TorusCmd.Flags().Float64P("tubeRadius", "r", cfg.TubeRadius, "tube radius")
	TorusCmd.Flags().IntP("xCount", "x", cfg.XCount, "segments around the main axis")
	TorusCmd.Flags().IntP("yCount", "y", cfg.YCount, "segments around the tube")
	addShapeFlags(TorusCmd, "Torus")
}
