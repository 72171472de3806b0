package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellAsTime(t *testing.T) {
	testData := map[string]struct {
		cell     Cell
		expected time.Time
		ok       bool
	}{
		"typed time": {
			cell:     Time(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
			expected: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		"iso date text": {
			cell:     Text("2024-03-01"),
			expected: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		"rfc3339 text": {
			cell:     Text("2024-03-01T12:30:00Z"),
			expected: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
			ok:       true,
		},
		"plain number text": {
			cell: Text("12.5"),
			ok:   false,
		},
		"numeric cell never temporal": {
			cell: Number(1700000000),
			ok:   false,
		},
		"missing": {
			cell: Missing(),
			ok:   false,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, ok := td.cell.AsTime()
			assert.Equal(t, td.ok, ok)
			if td.ok {
				assert.True(t, td.expected.Equal(res))
			}
		})
	}
}

func TestCellAsFloat(t *testing.T) {
	testData := map[string]struct {
		cell     Cell
		expected float64
		ok       bool
	}{
		"typed number":   {cell: Number(3.5), expected: 3.5, ok: true},
		"numeric text":   {cell: Text(" 42 "), expected: 42, ok: true},
		"negative text":  {cell: Text("-1.25"), expected: -1.25, ok: true},
		"plain text":     {cell: Text("widget"), ok: false},
		"date text":      {cell: Text("2024-03-01"), ok: false},
		"missing":        {cell: Missing(), ok: false},
		"time not float": {cell: Time(time.Now()), ok: false},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, ok := td.cell.AsFloat()
			assert.Equal(t, td.ok, ok)
			if td.ok {
				assert.Equal(t, td.expected, res)
			}
		})
	}
}

func TestMemTable(t *testing.T) {
	tbl, err := NewMemTable([]string{"date", "sales"})
	require.NoError(t, err)

	require.NoError(t, tbl.AppendRow([]Cell{Text("2024-01-01"), Number(10)}))
	require.NoError(t, tbl.AppendRow([]Cell{Text("2024-01-02"), Missing()}))
	require.NoError(t, tbl.AppendRecord([]string{"2024-01-03", "14"}))

	assert.Equal(t, []string{"date", "sales"}, tbl.Columns())
	assert.Equal(t, 3, tbl.NumRows())

	c, ok := tbl.At(1, "sales")
	require.True(t, ok)
	assert.True(t, c.IsMissing())

	c, ok = tbl.At(2, "sales")
	require.True(t, ok)
	v, ok := c.AsFloat()
	require.True(t, ok)
	assert.Equal(t, 14.0, v)

	_, ok = tbl.At(0, "nope")
	assert.False(t, ok)
	_, ok = tbl.At(3, "sales")
	assert.False(t, ok)

	col, err := tbl.Column("date")
	require.NoError(t, err)
	assert.Len(t, col, 3)

	_, err = tbl.Column("nope")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestMemTableErrors(t *testing.T) {
	_, err := NewMemTable(nil)
	assert.ErrorIs(t, err, ErrNoColumns)

	tbl, err := NewMemTable([]string{"a", "b"})
	require.NoError(t, err)
	err = tbl.AppendRow([]Cell{Number(1)})
	assert.ErrorIs(t, err, ErrRaggedRecord)
}
