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

// IhlanCmd represents the ihlan command
var IhlanCmd = &cobra.Command{
	Use:   "ihlan",
	Short: "Pyramid-like solid: one apex above an n-gon base",
	Long: `
Generates an IHLAN, an apex at (0,0,height) joined to n base points on a circle in the z=0 plane,

meshgen ihlan -n 6 -r 5 --height 5 -o ihlan.vtk`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg := shapes.NewIhlanConfig()
		cfg.BasePoints, _ = cmd.Flags().GetInt("basePoints")
		cfg.Radius, _ = cmd.Flags().GetFloat64("radius")
		cfg.Height, _ = cmd.Flags().GetFloat64("height")
		cfg.BaseFan, _ = cmd.Flags().GetBool("baseFan")
		cfg.Precision, _ = cmd.Flags().GetInt("precision")
		_, err = newShapeRun(cmd, cfg, "ihlan.vtk").Run()
		return
	},
}

func init() {
	rootCmd.AddCommand(IhlanCmd)
	cfg := shapes.NewIhlanConfig()
	IhlanCmd.Flags().IntP("basePoints", "n", cfg.BasePoints, "number of base points")
	IhlanCmd.Flags().Float64P("radius", "r", cfg.Radius, "base radius")
	IhlanCmd.Flags().Float64("height", cfg.Height, "apex height")
	IhlanCmd.Flags().Bool("baseFan", cfg.BaseFan, "split the base polygon into triangles")
	addShapeFlags(IhlanCmd, "IHLAN example")
}
