// Package runstore persists lesson run artifacts as JSON documents.
//
// Every saved run becomes one pretty-printed file under the store
// directory, named <timestamp>_<lesson-slug>.json. Writes go through a
// temp file and a rename so a crash never leaves a half-written
// artifact behind.
package runstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rajagopal17/KDD19-tutorial/internal/config"
	"github.com/rajagopal17/KDD19-tutorial/internal/lesson"
)

// Record is one persisted lesson run: what ran, when, with which
// configuration, and what came out.
type Record struct {
	Lesson    string        `json:"lesson"`
	StartedAt time.Time     `json:"started_at"`
	Config    ConfigEcho    `json:"config"`
	Report    lesson.Report `json:"report"`
}

// ConfigEcho is the subset of the run configuration worth keeping with
// the artifact.
type ConfigEcho struct {
	Epochs     int       `json:"epochs"`
	BatchSize  int       `json:"batch_size"`
	LR         float64   `json:"learning_rate"`
	Algorithm  string    `json:"algorithm"`
	Seed       int64     `json:"seed"`
	NumSamples int       `json:"num_samples,omitempty"`
	NoiseSigma float64   `json:"noise_sigma,omitempty"`
	DatasetCSV string    `json:"dataset_csv,omitempty"`
	TrueW      []float32 `json:"true_weights,omitempty"`
	TrueB      float32   `json:"true_bias,omitempty"`
}

// EchoConfig maps a run configuration onto its artifact echo.
func EchoConfig(cfg config.Config) ConfigEcho {
	return ConfigEcho{
		Epochs:     cfg.Epochs,
		BatchSize:  cfg.BatchSize,
		LR:         cfg.LR,
		Algorithm:  cfg.Algorithm,
		Seed:       cfg.Seed,
		NumSamples: cfg.NumSamples,
		NoiseSigma: cfg.NoiseSigma,
		DatasetCSV: cfg.DatasetCSV,
		TrueW:      cfg.TrueWeights,
		TrueB:      cfg.TrueBias,
	}
}

// Store writes and reads run artifacts under one directory.
type Store struct {
	dir string
	now func() time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithNow injects the clock, for deterministic IDs in tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a store rooted at dir. The directory is created on first
// save, not here.
func New(dir string, opts ...Option) *Store {
	s := &Store{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save persists one run and returns its ID, the file name without the
// .json extension.
func (s *Store) Save(record Record) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("runstore: mkdir %s: %w", s.dir, err)
	}

	ts := record.StartedAt
	if ts.IsZero() {
		ts = s.now()
		record.StartedAt = ts
	}
	slug := slugify(record.Lesson)
	if slug == "" {
		slug = "run"
	}
	id := fmt.Sprintf("%s_%s", ts.UTC().Format("20060102T150405Z"), slug)
	path := filepath.Join(s.dir, id+".json")

	b, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("runstore: marshal %s: %w", id, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", fmt.Errorf("runstore: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("runstore: rename %s: %w", path, err)
	}
	return id, nil
}

// Load reads one artifact back by ID.
func (s *Store) Load(id string) (Record, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, id+".json"))
	if err != nil {
		return Record{}, fmt.Errorf("runstore: load %s: %w", id, err)
	}
	var record Record
	if err := json.Unmarshal(b, &record); err != nil {
		return Record{}, fmt.Errorf("runstore: parse %s: %w", id, err)
	}
	return record, nil
}

// List returns the IDs of every stored artifact, oldest first. A
// missing store directory is an empty store, not an error.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("runstore: list %s: %w", s.dir, err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

// slugify reduces a lesson name to a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
