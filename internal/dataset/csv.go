package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/regress/internal/nn"
)

// LoadCSV reads a dataset from CSV.
//
// CSV Format (no header):
//
//	x0,x1,...,x{dimX-1},y0,...,y{dimY-1}
//	0.5,1.0,2.0
//
// Lines starting with '#' are comments. Every row must have exactly
// dimX+dimY fields.
func LoadCSV(r io.Reader, dimX, dimY int) (*Dataset, error) {
	ds, err := New(dimX, dimY)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if len(record) != dimX+dimY {
			return nil, fmt.Errorf("invalid record at line %d: %w: got %d values, want %d",
				line, nn.ErrDimension, len(record), dimX+dimY)
		}

		values := make([]float64, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value at line %d, column %d: %w", line, i+1, err)
			}
			values[i] = v
		}

		if err := ds.AddPoint(values[:dimX], values[dimX:]); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	return ds, nil
}

// LoadCSVFile opens filename and reads it with LoadCSV.
func LoadCSVFile(filename string, dimX, dimY int) (*Dataset, error) {
	//nolint:gosec // G304: dataset path comes from the user
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return LoadCSV(file, dimX, dimY)
}
