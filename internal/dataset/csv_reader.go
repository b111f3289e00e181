package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

type CSVReader struct {
	filename string
}

func NewCSVReader(filename string) (*CSVReader, error) {
	return &CSVReader{filename: filename}, nil
}

// LoadSamples reads a headed CSV with columns x1,x2,label. The label
// column may hold -1/+1 directly or two arbitrary class names, which
// are encoded onto {-1,+1}.
func (cr *CSVReader) LoadSamples() ([]Sample, []string, error) {
	file, err := os.Open(cr.filename)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return nil, nil, fmt.Errorf("insufficient data in file")
	}

	headers := records[0]
	if len(headers) != 3 {
		return nil, nil, fmt.Errorf("expected 3 columns (x1,x2,label), got %d", len(headers))
	}
	data := records[1:]

	points := make([]Point2D, 0, len(data))
	rawLabels := make([]string, 0, len(data))

	for i, record := range data {
		if len(record) != 3 {
			return nil, nil, fmt.Errorf("row %d has %d columns, want 3", i+1, len(record))
		}

		hasEmpty := false
		for _, val := range record {
			if strings.TrimSpace(val) == "" {
				hasEmpty = true
				break
			}
		}
		if hasEmpty {
			continue
		}

		x1, err := decimal.NewFromString(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: bad x1 %q: %w", i+1, record[0], err)
		}
		x2, err := decimal.NewFromString(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: bad x2 %q: %w", i+1, record[1], err)
		}

		points = append(points, Point2D{X1: x1, X2: x2})
		rawLabels = append(rawLabels, strings.TrimSpace(record[2]))
	}

	encoder := NewBinaryEncoder()
	y, err := encoder.FitTransform(rawLabels)
	if err != nil {
		return nil, nil, err
	}

	samples := make([]Sample, len(points))
	for i := range points {
		samples[i] = Sample{Point: points[i], Label: y[i]}
	}

	return samples, headers, nil
}
