/*
PURPOSE:
  Defines the configuration structure and loading logic for Solver Bench.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of input files, SGM mode, penalty factor and shift.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Needs to support Environment variable overrides (SOLVER_BENCH_...).
  - Needs validation so a typo in sgm_mode fails before any work is done.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli
  - Dependencies: gopkg.in/yaml.v3, github.com/go-playground/validator/v10

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default config file falls back to defaults.
  - Validation failures wrap ErrInvalid.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml and validate.
  - Defaults mirror the dashboard (use-max mode, X = 5, shift = 10).

USAGE:
  cfg, err := config.Load("solver_bench.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig().

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Environment overrides.
const (
	EnvResults  = "SOLVER_BENCH_RESULTS"
	EnvMetadata = "SOLVER_BENCH_METADATA"
)

// DefaultFiles are searched, in order, when no config path is given.
var DefaultFiles = []string{"solver_bench.yaml", "solver-bench.yaml"}

var validate = validator.New()

// Config represents the full configuration for Solver Bench.
type Config struct {
	ResultsFile  string `yaml:"results_file" validate:"required"`
	MetadataFile string `yaml:"metadata_file" validate:"required"`
	OutputDir    string `yaml:"output_dir"`
	// SGMMode is one of use-max, penalize, intersection.
	SGMMode string  `yaml:"sgm_mode" validate:"oneof=use-max penalize intersection"`
	XFactor float64 `yaml:"x_factor" validate:"gt=0"`
	Shift   float64 `yaml:"shift" validate:"gte=0"`
	// MaxMemoryMB is the memory ceiling for failed runs; 0 uses the largest observed value.
	MaxMemoryMB float64 `yaml:"max_memory_mb" validate:"gte=0"`
	// ExcludeSolvers filters solver names (substring match)
	ExcludeSolvers []string `yaml:"exclude_solvers"`
	LogLevel       string   `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFormat      string   `yaml:"log_format" validate:"omitempty,oneof=text json"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ResultsFile:  "results/benchmark_results.csv",
		MetadataFile: "results/metadata.yaml",
		OutputDir:    ".",
		SGMMode:      "use-max",
		XFactor:      5,
		Shift:        10,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order.
// If no file found, returns default config.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				break
			}
		}
	}

	if path != "" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvResults); v != "" {
		cfg.ResultsFile = v
	}
	if v := os.Getenv(EnvMetadata); v != "" {
		cfg.MetadataFile = v
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
