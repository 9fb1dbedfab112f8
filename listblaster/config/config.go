package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

const (
	defaultTieToleranceNS = 1000
	defaultSeed           = 42
)

// Global : benchmark wide settings
type Global struct {
	OperationCounts []int `toml:"operation_counts"`
	TieToleranceNS  int64 `toml:"tie_tolerance_ns"`
	Seed            int64 `toml:"seed"`
	LatencyProfile  bool  `toml:"latency_profile"`
}

// TomlConfig : root of the benchmark config file
type TomlConfig struct {
	Title  string `toml:"title"`
	Global Global `toml:"global"`
}

// LoadConfig : read and validate a benchmark config file
func LoadConfig(fileName string) (TomlConfig, error) {
	var config TomlConfig
	if _, err := toml.DecodeFile(fileName, &config); err != nil {
		return config, err
	}
	if len(config.Global.OperationCounts) == 0 {
		return config, fmt.Errorf("config %s: no operation counts defined", fileName)
	}
	for _, count := range config.Global.OperationCounts {
		if count <= 0 {
			return config, fmt.Errorf("config %s: operation count %d is not positive", fileName, count)
		}
	}
	if config.Global.TieToleranceNS < 0 {
		return config, fmt.Errorf("config %s: tie tolerance %d is negative", fileName, config.Global.TieToleranceNS)
	}
	if config.Global.TieToleranceNS == 0 {
		config.Global.TieToleranceNS = defaultTieToleranceNS
	}
	if config.Global.Seed == 0 {
		config.Global.Seed = defaultSeed
	}
	return config, nil
}
