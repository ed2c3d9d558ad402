package csvread

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gyeh/patientload/internal/model"
)

// ErrNotFound signals that the source file does not exist. Callers treat
// this as a reported run outcome, not a crash.
var ErrNotFound = errors.New("source file not found")

// Reader streams shaped rows from a patient/appointment CSV file. The first
// record is consumed as a header and validated against the fixed layout.
type Reader struct {
	file   *os.File
	csv    *csv.Reader
	header []string
}

// Open opens a CSV file, reads its header, and returns a streaming Reader.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open csv file: %w", err)
	}

	r := csv.NewReader(f)
	// Rows arrive short or long; shaping happens in Read.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		f.Close()
		return nil, fmt.Errorf("csv file is empty: %s", path)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if err := ValidateHeader(header); err != nil {
		f.Close()
		return nil, err
	}

	return &Reader{file: f, csv: r, header: header}, nil
}

// Read returns the next data row shaped to exactly model.NumFields cells,
// or io.EOF when the file is exhausted.
func (r *Reader) Read() (model.RawRow, error) {
	record, err := r.csv.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("read csv row: %w", err)
	}
	return Shape(record, model.NumFields), nil
}

// Header returns the validated header record.
func (r *Reader) Header() []string {
	return r.header
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// Shape aligns a raw record to exactly n cells: longer records are
// truncated from the end, shorter ones padded with empty strings. This
// guarantees positional field access downstream never indexes out of range.
func Shape(cells []string, n int) model.RawRow {
	row := make(model.RawRow, n)
	copy(row, cells)
	return row
}
