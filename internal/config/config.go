// Package config loads and validates lesson run configuration.
//
// Configuration comes from a YAML file decoded strictly into a DTO,
// validated field by field, and mapped onto the Config the lessons
// consume. CLI flags override individual fields after loading.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the validated lesson run configuration.
type Config struct {
	Epochs     int
	BatchSize  int
	LR         float64
	Algorithm  string // "sgd" or "adam"
	Seed       int64
	NumSamples int
	NoiseSigma float64
	// TrueWeights and TrueBias define the synthetic generating function
	// the regression lessons learn and report their distance from.
	TrueWeights []float32
	TrueBias    float32
	// DatasetCSV, when set, replaces the synthetic dataset with a file.
	DatasetCSV string
	// OutDir, when set, is where run artifacts are persisted.
	OutDir string
}

// Default returns the lesson defaults: the notebooks' three epochs of
// batch-10 SGD at learning rate 0.03 over 1000 synthetic samples.
func Default() Config {
	return Config{
		Epochs:      3,
		BatchSize:   10,
		LR:          0.03,
		Algorithm:   "sgd",
		Seed:        42,
		NumSamples:  1000,
		NoiseSigma:  0.01,
		TrueWeights: []float32{2, -3.4},
		TrueBias:    4.2,
	}
}

// yamlConfig is the file DTO. Pointer fields distinguish "absent" from
// zero so a file can override any subset of the defaults.
type yamlConfig struct {
	Epochs      *int      `yaml:"epochs"`
	BatchSize   *int      `yaml:"batch_size"`
	LR          *float64  `yaml:"learning_rate"`
	Algorithm   *string   `yaml:"algorithm"`
	Seed        *int64    `yaml:"seed"`
	NumSamples  *int      `yaml:"num_samples"`
	NoiseSigma  *float64  `yaml:"noise_sigma"`
	TrueWeights []float32 `yaml:"true_weights"`
	TrueBias    *float32  `yaml:"true_bias"`
	DatasetCSV  *string   `yaml:"dataset_csv"`
	OutDir      *string   `yaml:"out_dir"`
}

// Load reads a YAML file over the defaults. Unknown keys are rejected,
// so a typoed field name fails loudly instead of silently keeping its
// default.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var dto yamlConfig
	if err := dec.Decode(&dto); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg := Default()
	applyDTO(&cfg, dto)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func applyDTO(cfg *Config, dto yamlConfig) {
	if dto.Epochs != nil {
		cfg.Epochs = *dto.Epochs
	}
	if dto.BatchSize != nil {
		cfg.BatchSize = *dto.BatchSize
	}
	if dto.LR != nil {
		cfg.LR = *dto.LR
	}
	if dto.Algorithm != nil {
		cfg.Algorithm = *dto.Algorithm
	}
	if dto.Seed != nil {
		cfg.Seed = *dto.Seed
	}
	if dto.NumSamples != nil {
		cfg.NumSamples = *dto.NumSamples
	}
	if dto.NoiseSigma != nil {
		cfg.NoiseSigma = *dto.NoiseSigma
	}
	if dto.TrueWeights != nil {
		cfg.TrueWeights = dto.TrueWeights
	}
	if dto.TrueBias != nil {
		cfg.TrueBias = *dto.TrueBias
	}
	if dto.DatasetCSV != nil {
		cfg.DatasetCSV = *dto.DatasetCSV
	}
	if dto.OutDir != nil {
		cfg.OutDir = *dto.OutDir
	}
}

// Validate checks the configuration is runnable.
func (c Config) Validate() error {
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive, got %d", c.Epochs)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive, got %d", c.BatchSize)
	}
	if c.LR <= 0 {
		return fmt.Errorf("learning_rate must be positive, got %v", c.LR)
	}
	switch strings.ToLower(c.Algorithm) {
	case "sgd", "adam":
	default:
		return fmt.Errorf("unknown algorithm %q (supported: sgd, adam)", c.Algorithm)
	}
	if c.DatasetCSV == "" {
		if c.NumSamples <= 0 {
			return fmt.Errorf("num_samples must be positive, got %d", c.NumSamples)
		}
		if c.NoiseSigma < 0 {
			return fmt.Errorf("noise_sigma must be non-negative, got %v", c.NoiseSigma)
		}
		if len(c.TrueWeights) == 0 {
			return fmt.Errorf("true_weights must name at least one coefficient")
		}
	}
	return nil
}
