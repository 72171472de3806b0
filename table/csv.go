package table

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
)

var ErrEmptyCSV = errors.New("csv input has no header row")

// CSVOptions holds options for CSV ingestion.
type CSVOptions struct {
	Delimiter rune // field delimiter (default ',')
	SkipRows  int  // rows to skip before the header
}

// DefaultCSVOptions returns the options used when nil is passed to ReadCSV.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{Delimiter: ','}
}

// LoadCSV reads a file into a MemTable. The first non-skipped row is the
// header; all fields are stored as text (or missing when empty).
func LoadCSV(filename string, opts *CSVOptions) (*MemTable, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadCSV(file, opts)
}

// ReadCSV reads CSV from r into a MemTable.
func ReadCSV(r io.Reader, opts *CSVOptions) (*MemTable, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			if err == io.EOF {
				return nil, ErrEmptyCSV
			}
			return nil, err
		}
	}

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrEmptyCSV
		}
		return nil, err
	}

	tbl, err := NewMemTable(header)
	if err != nil {
		return nil, err
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := tbl.AppendRecord(record); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}
