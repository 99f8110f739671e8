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
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "meshgen",
	Short: "Procedural mesh generator with legacy VTK output",
	Long: `
Generates simple procedural surface meshes (IHLAN, UV sphere, torus) and writes them
as legacy ASCII VTK POLYDATA files for inspection in ParaView or other VTK tools,

meshgen torus -R 5 -r 1 -x 10 -y 10 -o torus.vtk`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return startProfile(viper.GetString("profile"))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := execute(os.Args[1:]); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

// execute stops the profiler after the command returns, failed runs included
func execute(args []string) (err error) {
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	stopProfile()
	return
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.meshgen.yaml)")
	rootCmd.PersistentFlags().StringP("outputDir", "D", ".", "directory the output files are written to")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print mesh statistics and memory usage")
	rootCmd.PersistentFlags().String("profile", "", "profile the run: cpu or mem")
	for _, name := range []string{"outputDir", "verbose", "profile"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".meshgen" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".meshgen")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}
	} else if cfgFile != "" {
		fmt.Printf("error reading config file %s: %s\n", cfgFile, err)
		os.Exit(1)
	}
}

var profiler interface{ Stop() }

func startProfile(kind string) (err error) {
	switch strings.ToLower(kind) {
	case "":
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	case "mem":
		profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."))
	default:
		err = fmt.Errorf("unknown profile type %q, use cpu or mem", kind)
	}
	return
}

func stopProfile() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}
