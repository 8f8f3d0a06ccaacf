package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lesson.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.Epochs)
	assert.Equal(t, 10, cfg.BatchSize)
	assert.Equal(t, 0.03, cfg.LR)
	assert.Equal(t, "sgd", cfg.Algorithm)
	assert.Equal(t, []float32{2, -3.4}, cfg.TrueWeights)
	assert.Equal(t, float32(4.2), cfg.TrueBias)
}

func TestLoad_OverridesSubsetOfDefaults(t *testing.T) {
	path := writeConfig(t, "epochs: 7\nlearning_rate: 0.1\nalgorithm: adam\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Epochs)
	assert.Equal(t, 0.1, cfg.LR)
	assert.Equal(t, "adam", cfg.Algorithm)
	// Untouched fields keep their defaults.
	assert.Equal(t, 10, cfg.BatchSize)
	assert.Equal(t, 1000, cfg.NumSamples)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
epochs: 5
batch_size: 32
learning_rate: 0.05
algorithm: sgd
seed: 7
num_samples: 200
noise_sigma: 0.02
true_weights: [1.5, -2.0, 0.5]
true_bias: 1.0
out_dir: runs
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []float32{1.5, -2.0, 0.5}, cfg.TrueWeights)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "runs", cfg.OutDir)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "epochs: 3\nlerning_rate: 0.1\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero epochs", func(c *Config) { c.Epochs = 0 }},
		{"negative batch", func(c *Config) { c.BatchSize = -1 }},
		{"zero lr", func(c *Config) { c.LR = 0 }},
		{"unknown algorithm", func(c *Config) { c.Algorithm = "rmsprop" }},
		{"no samples", func(c *Config) { c.NumSamples = 0 }},
		{"negative sigma", func(c *Config) { c.NoiseSigma = -0.1 }},
		{"no weights", func(c *Config) { c.TrueWeights = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_CSVReplacesSyntheticFields(t *testing.T) {
	cfg := Default()
	cfg.DatasetCSV = "data.csv"
	cfg.TrueWeights = nil
	cfg.NumSamples = 0

	// Synthetic-only fields are not required when a file is the source.
	assert.NoError(t, cfg.Validate())
}
