package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadCSV reads a numeric CSV file into an ArrayDataset. Every column but
// the last is a feature; the last column is the label. A non-numeric
// first row is treated as a header and skipped, so both headed and
// headless files load.
func LoadCSV(path string) (*ArrayDataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("data: open csv: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("data: read csv %s: %w", path, err)
	}
	if len(records) > 0 && !numericRow(records[0]) {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("data: csv %s has no data rows", path)
	}

	features := make([][]float32, len(records))
	labels := make([][]float32, len(records))
	for i, record := range records {
		if len(record) < 2 {
			return nil, fmt.Errorf("data: csv %s row %d has %d columns, need at least 2", path, i+1, len(record))
		}
		row := make([]float32, len(record)-1)
		for j, field := range record[:len(record)-1] {
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, fmt.Errorf("data: csv %s row %d column %d: %w", path, i+1, j+1, err)
			}
			row[j] = float32(v)
		}
		label, err := strconv.ParseFloat(record[len(record)-1], 32)
		if err != nil {
			return nil, fmt.Errorf("data: csv %s row %d label: %w", path, i+1, err)
		}
		features[i] = row
		labels[i] = []float32{float32(label)}
	}
	return NewArrayDataset(features, labels)
}

func numericRow(record []string) bool {
	for _, field := range record {
		if _, err := strconv.ParseFloat(field, 32); err != nil {
			return false
		}
	}
	return len(record) > 0
}
