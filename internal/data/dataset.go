// Package data provides the datasets and the mini-batch loader the
// regression lessons train on.
//
// A Dataset is an indexed collection of (features, label) rows. The
// lessons use two sources: SyntheticRegression, which draws the classic
// y = Xw + b + noise task from a seeded generator, and LoadCSV for real
// files. Loader slices any Dataset into shuffled mini-batch tensor pairs.
package data

import "fmt"

// Dataset is an indexed collection of feature/label rows.
type Dataset interface {
	// Len returns the number of samples.
	Len() int

	// Sample returns the features and label values of row i. Callers
	// must treat both slices as read-only.
	Sample(i int) (features, label []float32)
}

// ArrayDataset is an in-memory Dataset over parallel feature and label
// slices.
type ArrayDataset struct {
	features [][]float32
	labels   [][]float32
}

// NewArrayDataset validates and wraps in-memory rows. Every feature row
// must have the same width, every label row likewise, and the two sides
// must have equal length.
func NewArrayDataset(features, labels [][]float32) (*ArrayDataset, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("data: dataset has no samples")
	}
	if len(features) != len(labels) {
		return nil, fmt.Errorf("data: %d feature rows but %d label rows", len(features), len(labels))
	}
	for i, row := range features {
		if len(row) != len(features[0]) {
			return nil, fmt.Errorf("data: ragged features: row 0 has %d values, row %d has %d",
				len(features[0]), i, len(row))
		}
	}
	for i, row := range labels {
		if len(row) != len(labels[0]) {
			return nil, fmt.Errorf("data: ragged labels: row 0 has %d values, row %d has %d",
				len(labels[0]), i, len(row))
		}
	}
	return &ArrayDataset{features: features, labels: labels}, nil
}

// Len returns the number of samples.
func (d *ArrayDataset) Len() int { return len(d.features) }

// Sample returns row i.
func (d *ArrayDataset) Sample(i int) (features, label []float32) {
	return d.features[i], d.labels[i]
}

// NumFeatures returns the feature width.
func (d *ArrayDataset) NumFeatures() int { return len(d.features[0]) }

// LabelWidth returns the label width (1 for scalar regression).
func (d *ArrayDataset) LabelWidth() int { return len(d.labels[0]) }
