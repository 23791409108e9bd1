package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/murean5/ML-OPS/internal/database"
)

var (
	ErrInvalidFormat = errors.New("invalid dataset format")
	ErrEmptyDataset  = errors.New("dataset contains no rows")
)

// Table is a parsed dataset. By convention the last column is the training
// target and every preceding column is a feature; this is fixed, not
// configurable.
type Table struct {
	Columns []string
	Rows    [][]float64
}

func (t *Table) NumFeatures() int {
	return len(t.Columns) - 1
}

// Split returns the feature matrix and target vector.
func (t *Table) Split() ([][]float64, []float64) {
	features := make([][]float64, len(t.Rows))
	targets := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		features[i] = row[:len(row)-1]
		targets[i] = row[len(row)-1]
	}
	return features, targets
}

// Parse validates that content matches the declared format and decodes it
// into a Table. CSV files may carry a header row; JSON files must be an
// array of flat objects (columns sorted by name) or an array of arrays.
func Parse(format string, content []byte) (*Table, error) {
	var table *Table
	var err error

	switch format {
	case database.FormatCSV:
		table, err = parseCSV(content)
	case database.FormatJSON:
		table, err = parseJSON(content)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidFormat, format)
	}
	if err != nil {
		return nil, err
	}

	if len(table.Rows) == 0 {
		return nil, ErrEmptyDataset
	}
	if len(table.Columns) < 2 {
		return nil, fmt.Errorf("%w: need at least one feature column and one target column", ErrInvalidFormat)
	}
	return table, nil
}

func parseCSV(content []byte) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	columns, dataRows := splitHeader(records)

	rows := make([][]float64, 0, len(dataRows))
	for i, record := range dataRows {
		if len(record) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d values, expected %d", ErrInvalidFormat, i+1, len(record), len(columns))
		}
		row := make([]float64, len(record))
		for j, cell := range record {
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: non-numeric value %q at row %d column %d", ErrInvalidFormat, cell, i+1, j+1)
			}
			row[j] = value
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

// splitHeader treats the first record as a header when any of its cells is
// non-numeric, otherwise synthesizes column names.
func splitHeader(records [][]string) ([]string, [][]string) {
	numericHeader := true
	for _, cell := range records[0] {
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			numericHeader = false
			break
		}
	}

	if numericHeader {
		columns := make([]string, len(records[0]))
		for i := range columns {
			columns[i] = fmt.Sprintf("c%d", i)
		}
		return columns, records
	}

	return records[0], records[1:]
}

func parseJSON(content []byte) (*Table, error) {
	var objects []map[string]float64
	if err := json.Unmarshal(content, &objects); err == nil {
		return tableFromObjects(objects)
	}

	var arrays [][]float64
	if err := json.Unmarshal(content, &arrays); err != nil {
		return nil, fmt.Errorf("%w: expected an array of flat objects or an array of arrays: %v", ErrInvalidFormat, err)
	}

	if len(arrays) == 0 {
		return nil, ErrEmptyDataset
	}
	columns := make([]string, len(arrays[0]))
	for i := range columns {
		columns[i] = fmt.Sprintf("c%d", i)
	}
	for i, row := range arrays {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d values, expected %d", ErrInvalidFormat, i, len(row), len(columns))
		}
	}
	return &Table{Columns: columns, Rows: arrays}, nil
}

func tableFromObjects(objects []map[string]float64) (*Table, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyDataset
	}

	columns := make([]string, 0, len(objects[0]))
	for name := range objects[0] {
		columns = append(columns, name)
	}
	sort.Strings(columns)

	rows := make([][]float64, len(objects))
	for i, object := range objects {
		if len(object) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d keys, expected %d", ErrInvalidFormat, i, len(object), len(columns))
		}
		row := make([]float64, len(columns))
		for j, name := range columns {
			value, ok := object[name]
			if !ok {
				return nil, fmt.Errorf("%w: row %d is missing key %q", ErrInvalidFormat, i, name)
			}
			row[j] = value
		}
		rows[i] = row
	}

	return &Table{Columns: columns, Rows: rows}, nil
}
