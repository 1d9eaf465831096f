package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/queueing-sim/queueing-sim/sim"
)

// experimentFile mirrors the YAML experiment schema:
//
//	lambda: 0.9
//	mu: 1.0
//	servers: 1
//	horizon: 10000
//	seeds: [235, 284, 893, 895, 394]
//	cost:
//	  server_per_hour: 50.0
//	  wait_per_hour: 10.0
//
// Cost is optional; omitting it leaves the CLI cost flags in effect.
type experimentFile struct {
	Lambda  *float64  `yaml:"lambda"`
	Mu      *float64  `yaml:"mu"`
	Servers *int      `yaml:"servers"`
	Horizon *float64  `yaml:"horizon"`
	Seeds   []int64   `yaml:"seeds"`
	Cost    *costFile `yaml:"cost"`
}

type costFile struct {
	ServerPerHour float64 `yaml:"server_per_hour"`
	WaitPerHour   float64 `yaml:"wait_per_hour"`
}

// loadExperimentFile reads and decodes a YAML experiment description.
func loadExperimentFile(path string) (*experimentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read experiment config: %w", err)
	}
	var f experimentFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse experiment config %s: %w", path, err)
	}
	return &f, nil
}

// merge applies the file's values to exp, except where the corresponding
// flag was set explicitly on the command line.
func (f *experimentFile) merge(exp *sim.ExperimentConfig, flags *pflag.FlagSet) {
	if f.Lambda != nil && !flags.Changed("lambda") {
		exp.Lambda = *f.Lambda
	}
	if f.Mu != nil && !flags.Changed("mu") {
		exp.Mu = *f.Mu
	}
	if f.Servers != nil && !flags.Changed("servers") {
		exp.Servers = *f.Servers
	}
	if f.Horizon != nil && !flags.Changed("horizon") {
		exp.Horizon = *f.Horizon
	}
	if len(f.Seeds) > 0 && !flags.Changed("seeds") {
		exp.Seeds = f.Seeds
	}
	if f.Cost != nil && !flags.Changed("server-cost") && !flags.Changed("wait-cost") && !flags.Changed("no-cost") {
		exp.Cost = &sim.CostConfig{
			ServerPerHour: f.Cost.ServerPerHour,
			WaitPerHour:   f.Cost.WaitPerHour,
		}
	}
}
