package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/meshgen/InputParameters"
	"github.com/notargets/meshgen/shapes"
)

func TestRunInputParameters(t *testing.T) {
	dir := t.TempDir()
	ip := &InputParameters.InputParameters{}
	require.NoError(t, ip.Parse([]byte(InputParameters.ExampleFile)))
	ip.OutputDir = ""
	require.NoError(t, RunInputParameters(ip, dir, false))
	for _, name := range []string{"ihlan.vtk", "sphere.vtk", "torus.vtk"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		lines := strings.Split(string(data), "\n")
		assert.Equal(t, "# vtk DataFile Version 3.0", lines[0])
		assert.Equal(t, "Shapes", lines[1])
	}
	ihlan, err := os.ReadFile(filepath.Join(dir, "ihlan.vtk"))
	require.NoError(t, err)
	assert.Contains(t, string(ihlan), "\nPOINTS 7 float\n")
	assert.Contains(t, string(ihlan), "\nCELL_DATA 7\n")
	assert.Contains(t, string(ihlan), "\nLOOKUP_TABLE green_table 7\n")

	ip.Shapes[1].Meridians = -1
	err = RunInputParameters(ip, dir, false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "shape 1 (sphere)")
}

func TestShapeRunPath(t *testing.T) {
	sr := &ShapeRun{Output: "a.vtk", OutputDir: "out"}
	assert.Equal(t, filepath.Join("out", "a.vtk"), sr.Path())
	sr.Output = filepath.Join(string(filepath.Separator), "tmp", "a.vtk")
	assert.Equal(t, sr.Output, sr.Path())
	sr = &ShapeRun{Output: "a.vtk"}
	assert.Equal(t, "a.vtk", sr.Path())
}

func TestTorusCommand(t *testing.T) {
	dir := t.TempDir()
	rootCmd.SetArgs([]string{"torus", "--outputDir", dir, "-o", "t.vtk", "-x", "8", "-y", "6", "--attributes"})
	require.NoError(t, rootCmd.Execute())
	data, err := os.ReadFile(filepath.Join(dir, "t.vtk"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\nTorus\n")
	assert.Contains(t, string(data), "\nPOINTS 48 float\n")
	assert.Contains(t, string(data), "\nPOLYGONS 96 384\n")
	assert.Contains(t, string(data), "\nPOINT_DATA 48\n")
}

func TestProfileFlushedOnError(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Cleanup(func() {
		_ = rootCmd.PersistentFlags().Set("profile", "")
		_ = SphereCmd.Flags().Set("meridians", "10")
	})
	err = execute([]string{"sphere", "--profile", "mem", "-m", "2", "-o", "s.vtk"})
	require.Error(t, err)
	assert.ErrorIs(t, err, shapes.ErrInvalidConfig)
	assert.Nil(t, profiler)
	assert.FileExists(t, filepath.Join(dir, "mem.pprof"))

	assert.Error(t, execute([]string{"sphere", "--profile", "gpu"}))
	assert.Nil(t, profiler)
}
