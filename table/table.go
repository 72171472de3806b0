// Package table provides the typed, read-only tabular data model consumed by
// the analytics core. Tables keep a stable row order; typing of string data is
// decided by the consumer through the parse predicates, not at ingestion.
package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNoColumns      = errors.New("table has no columns")
	ErrRaggedRecord   = errors.New("record length does not match column count")
	ErrUnknownColumn  = errors.New("unknown column")
	ErrNotConvertible = errors.New("cell is not convertible to requested type")
)

// Kind identifies the scalar type stored in a Cell.
type Kind int

const (
	KindMissing Kind = iota
	KindNumber
	KindText
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindTime:
		return "time"
	}
	return "missing"
}

// Cell is a tagged scalar. The zero value is a missing cell.
type Cell struct {
	kind Kind
	num  float64
	str  string
	ts   time.Time
}

func Number(v float64) Cell { return Cell{kind: KindNumber, num: v} }
func Text(s string) Cell    { return Cell{kind: KindText, str: s} }
func Time(t time.Time) Cell { return Cell{kind: KindTime, ts: t} }
func Missing() Cell         { return Cell{} }

func (c Cell) Kind() Kind      { return c.kind }
func (c Cell) IsMissing() bool { return c.kind == KindMissing }

// timeLayouts are tried in order when interpreting text as a timestamp.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"2006-01",
}

// AsTime reports the cell interpreted as a timestamp. Text cells are matched
// against a fixed set of layouts; number cells never qualify.
func (c Cell) AsTime() (time.Time, bool) {
	switch c.kind {
	case KindTime:
		return c.ts, true
	case KindText:
		s := strings.TrimSpace(c.str)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// AsFloat reports the cell interpreted as a numeric value. Text cells qualify
// only when the full string parses as a float.
func (c Cell) AsFloat() (float64, bool) {
	switch c.kind {
	case KindNumber:
		return c.num, true
	case KindText:
		v, err := strconv.ParseFloat(strings.TrimSpace(c.str), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

// String renders the cell for display and JSON output.
func (c Cell) String() string {
	switch c.kind {
	case KindNumber:
		return strconv.FormatFloat(c.num, 'g', -1, 64)
	case KindText:
		return c.str
	case KindTime:
		return c.ts.Format(time.RFC3339)
	}
	return ""
}

// Table is the narrow read surface the analytics core consumes. Row order is
// stable across calls and implementations must not mutate rows during reads.
type Table interface {
	Columns() []string
	NumRows() int
	// At returns the cell at the given row for a named column. The second
	// return is false for an unknown column or out-of-range row; a present
	// row with no value yields a missing Cell and true.
	At(row int, col string) (Cell, bool)
}

// MemTable is an in-memory columnar Table with insertion-ordered columns.
type MemTable struct {
	cols  []string
	index map[string]int
	cells [][]Cell // cells[colIdx][row]
	rows  int
}

// NewMemTable creates an empty table with the given column order.
func NewMemTable(cols []string) (*MemTable, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	index := make(map[string]int, len(cols))
	cells := make([][]Cell, len(cols))
	for i, c := range cols {
		index[c] = i
	}
	colsCopy := make([]string, len(cols))
	copy(colsCopy, cols)
	return &MemTable{
		cols:  colsCopy,
		index: index,
		cells: cells,
	}, nil
}

// AppendRow appends one record in column order.
func (m *MemTable) AppendRow(record []Cell) error {
	if len(record) != len(m.cols) {
		return fmt.Errorf("record has %d cells for %d columns, %w", len(record), len(m.cols), ErrRaggedRecord)
	}
	for i, c := range record {
		m.cells[i] = append(m.cells[i], c)
	}
	m.rows++
	return nil
}

// AppendRecord appends one record of raw strings, storing empty fields as
// missing and everything else as text. Interpretation is left to readers.
func (m *MemTable) AppendRecord(record []string) error {
	cells := make([]Cell, len(record))
	for i, s := range record {
		if strings.TrimSpace(s) == "" {
			cells[i] = Missing()
			continue
		}
		cells[i] = Text(s)
	}
	return m.AppendRow(cells)
}

func (m *MemTable) Columns() []string {
	cols := make([]string, len(m.cols))
	copy(cols, m.cols)
	return cols
}

func (m *MemTable) NumRows() int { return m.rows }

func (m *MemTable) At(row int, col string) (Cell, bool) {
	i, ok := m.index[col]
	if !ok || row < 0 || row >= m.rows {
		return Cell{}, false
	}
	return m.cells[i][row], true
}

// Column returns all cells of a named column in row order.
func (m *MemTable) Column(col string) ([]Cell, error) {
	i, ok := m.index[col]
	if !ok {
		return nil, fmt.Errorf("%q, %w", col, ErrUnknownColumn)
	}
	out := make([]Cell, m.rows)
	copy(out, m.cells[i])
	return out, nil
}
