// Package loader reads process sets from CSV files.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/core"
)

var ErrMalformedRow = errors.New("malformed process row")

// LoadProcesses parses rows of "id,arrival,burst[,priority]". A first row
// whose id column is not a number is treated as a header. An empty id column
// is numbered by row position, starting at 1.
func LoadProcesses(r io.Reader) ([]core.ProcessSpec, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
	}

	processes := make([]core.ProcessSpec, 0, len(rows))
	for i, row := range rows {
		p, err := parseRow(row, len(processes)+1)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		processes = append(processes, p)
	}
	return processes, nil
}

// LoadFile opens path and parses it with LoadProcesses.
func LoadFile(path string) ([]core.ProcessSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening process file: %w", err)
	}
	defer f.Close()
	return LoadProcesses(f)
}

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	field := strings.TrimSpace(row[0])
	if field == "" {
		return false
	}
	_, err := strconv.Atoi(field)
	return err != nil
}

func parseRow(row []string, position int) (core.ProcessSpec, error) {
	if len(row) < 3 || len(row) > 4 {
		return core.ProcessSpec{}, fmt.Errorf("%w: want 3 or 4 fields, got %d", ErrMalformedRow, len(row))
	}

	values := make([]int, 4)
	for i, field := range row {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return core.ProcessSpec{}, fmt.Errorf("%w: field %d: %v", ErrMalformedRow, i+1, err)
		}
		values[i] = v
	}
	if values[0] == 0 {
		values[0] = position
	}

	return core.ProcessSpec{
		ID:          values[0],
		ArrivalTime: values[1],
		BurstTime:   values[2],
		Priority:    values[3],
	}, nil
}
