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

// SphereCmd represents the sphere command
var SphereCmd = &cobra.Command{
	Use:   "sphere",
	Short: "UV sphere built from parallels and meridians",
	Long: `
Generates a UV sphere: two poles plus a grid of parallels x meridians,

meshgen sphere -r 5 -m 10 -p 10 -o sphere.vtk`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg := shapes.NewSphereConfig()
		cfg.Radius, _ = cmd.Flags().GetFloat64("radius")
		cfg.Meridians, _ = cmd.Flags().GetInt("meridians")
		cfg.Parallels, _ = cmd.Flags().GetInt("parallels")
		cfg.Precision, _ = cmd.Flags().GetInt("precision")
		_, err = newShapeRun(cmd, cfg, "sphere.vtk").Run()
		return
	},
}

func init() {
	rootCmd.AddCommand(SphereCmd)
	cfg := shapes.NewSphereConfig()
	SphereCmd.Flags().Float64P("radius", "r", cfg.Radius, "sphere radius")
	SphereCmd.Flags().IntP("meridians", "m", cfg.Meridians, "points per parallel")
	SphereCmd.Flags().IntP("parallels", "p", cfg.Parallels, "number of parallels between the poles")
	addShapeFlags(SphereCmd, "UV sphere")
}
