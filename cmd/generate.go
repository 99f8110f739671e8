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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/meshgen/InputParameters"
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate every shape listed in an input parameters file",
	Long: `
Reads a YAML (or .toml) input parameters file listing shapes and writes one file per shape,

meshgen generate -I shapes.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			fileName string
			ip       *InputParameters.InputParameters
		)
		if fileName, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			return
		}
		if len(fileName) == 0 {
			return fmt.Errorf("must supply an input parameters file (-I, --inputParametersFile), example file:%s",
				InputParameters.ExampleFile)
		}
		if ip, err = InputParameters.ReadFile(fileName); err != nil {
			return
		}
		verbose := viper.GetBool("verbose")
		if verbose {
			ip.Print()
		}
		return RunInputParameters(ip, viper.GetString("outputDir"), verbose)
	},
}

func init() {
	rootCmd.AddCommand(GenerateCmd)
	GenerateCmd.Flags().StringP("inputParametersFile", "I", "", "YAML or TOML file listing the shapes to generate")
}

// RunInputParameters writes every listed shape, stopping at the first failure.
// OutputDir from the file wins over the flag default.
func RunInputParameters(ip *InputParameters.InputParameters, outputDir string, verbose bool) (err error) {
	if len(ip.OutputDir) != 0 {
		outputDir = ip.OutputDir
	}
	for i := range ip.Shapes {
		sp := &ip.Shapes[i]
		sr := &ShapeRun{
			Title:      sp.Title,
			Output:     sp.OutputName(i),
			OutputDir:  outputDir,
			Attributes: sp.Attributes,
			WireFrame:  sp.WireFrame,
			Verbose:    verbose,
		}
		if len(sr.Title) == 0 {
			sr.Title = ip.Title
		}
		if sr.Config, err = sp.Config(); err != nil {
			return fmt.Errorf("shape %d (%s): %w", i, sp.Type, err)
		}
		if _, err = sr.Run(); err != nil {
			return fmt.Errorf("shape %d (%s): %w", i, sp.Type, err)
		}
	}
	log.Printf("Generated %d shapes", len(ip.Shapes))
	return
}
