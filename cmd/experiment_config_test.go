package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queueing-sim/queueing-sim/sim"
)

func writeExperimentYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func experimentFlags(t *testing.T, changed ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Float64("lambda", 0.9, "")
	flags.Float64("mu", 1.0, "")
	flags.Int("servers", 1, "")
	flags.Float64("horizon", 10000, "")
	flags.Int64Slice("seeds", defaultSeeds, "")
	flags.Float64("server-cost", 50, "")
	flags.Float64("wait-cost", 10, "")
	flags.Bool("no-cost", false, "")
	for _, name := range changed {
		require.NoError(t, flags.Set(name, "1"))
	}
	return flags
}

func TestLoadExperimentFile(t *testing.T) {
	path := writeExperimentYAML(t, `
lambda: 1.8
mu: 1.0
servers: 3
horizon: 5000
seeds: [11, 22]
cost:
  server_per_hour: 40.0
  wait_per_hour: 8.0
`)

	f, err := loadExperimentFile(path)
	require.NoError(t, err)

	require.NotNil(t, f.Lambda)
	assert.Equal(t, 1.8, *f.Lambda)
	require.NotNil(t, f.Servers)
	assert.Equal(t, 3, *f.Servers)
	assert.Equal(t, []int64{11, 22}, f.Seeds)
	require.NotNil(t, f.Cost)
	assert.Equal(t, 40.0, f.Cost.ServerPerHour)
	assert.Equal(t, 8.0, f.Cost.WaitPerHour)
}

func TestLoadExperimentFile_PartialFileLeavesFieldsNil(t *testing.T) {
	path := writeExperimentYAML(t, "lambda: 2.5\n")

	f, err := loadExperimentFile(path)
	require.NoError(t, err)

	require.NotNil(t, f.Lambda)
	assert.Nil(t, f.Mu)
	assert.Nil(t, f.Servers)
	assert.Nil(t, f.Horizon)
	assert.Empty(t, f.Seeds)
	assert.Nil(t, f.Cost)
}

func TestLoadExperimentFile_Errors(t *testing.T) {
	_, err := loadExperimentFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := writeExperimentYAML(t, "lambda: [not a number\n")
	_, err = loadExperimentFile(bad)
	assert.Error(t, err)
}

func TestMerge_FileFillsUnsetFlags(t *testing.T) {
	lam, m, srv := 1.8, 2.0, 3
	f := &experimentFile{
		Lambda:  &lam,
		Mu:      &m,
		Servers: &srv,
		Seeds:   []int64{11, 22},
		Cost:    &costFile{ServerPerHour: 40, WaitPerHour: 8},
	}
	exp := sim.ExperimentConfig{
		Lambda: 0.9, Mu: 1.0, Servers: 1, Horizon: 10000,
		Seeds: defaultSeeds,
		Cost:  &sim.CostConfig{ServerPerHour: 50, WaitPerHour: 10},
	}

	f.merge(&exp, experimentFlags(t))

	assert.Equal(t, 1.8, exp.Lambda)
	assert.Equal(t, 2.0, exp.Mu)
	assert.Equal(t, 3, exp.Servers)
	assert.Equal(t, 10000.0, exp.Horizon, "field absent from the file keeps the flag default")
	assert.Equal(t, []int64{11, 22}, exp.Seeds)
	assert.Equal(t, &sim.CostConfig{ServerPerHour: 40, WaitPerHour: 8}, exp.Cost)
}

func TestMerge_ExplicitFlagsWin(t *testing.T) {
	lam := 1.8
	f := &experimentFile{
		Lambda: &lam,
		Cost:   &costFile{ServerPerHour: 40, WaitPerHour: 8},
	}
	exp := sim.ExperimentConfig{
		Lambda: 0.5, Mu: 1.0, Servers: 1, Horizon: 10000,
		Seeds: defaultSeeds,
		Cost:  &sim.CostConfig{ServerPerHour: 99, WaitPerHour: 10},
	}

	f.merge(&exp, experimentFlags(t, "lambda", "server-cost"))

	assert.Equal(t, 0.5, exp.Lambda, "command-line lambda overrides the file")
	assert.Equal(t, 99.0, exp.Cost.ServerPerHour, "command-line cost overrides the file")
}
