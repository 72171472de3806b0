package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChimdumebiNebolisa/datuum2.0/table"
)

func buildTable(t *testing.T, cols []string, rows [][]table.Cell) *table.MemTable {
	t.Helper()
	tbl, err := table.NewMemTable(cols)
	require.NoError(t, err)
	for _, row := range rows {
		require.NoError(t, tbl.AppendRow(row))
	}
	return tbl
}

func TestPrepareSeries(t *testing.T) {
	tbl := buildTable(t, []string{"date", "sales"}, [][]table.Cell{
		{table.Text("2024-01-03"), table.Number(30)},
		{table.Text("2024-01-01"), table.Number(10)},
		{table.Missing(), table.Number(99)},
		{table.Text("2024-01-02"), table.Missing()},
		{table.Text("2024-01-02"), table.Number(20)},
	})

	s, err := prepareSeries(tbl, "date", "sales", 2)
	require.NoError(t, err)

	// rows with a missing side are dropped, remainder sorted by timestamp
	require.Equal(t, 3, s.Len())
	assert.Equal(t, []float64{10, 20, 30}, s.Y)
	assert.True(t, s.T[0].Before(s.T[1]))
	assert.True(t, s.T[1].Before(s.T[2]))
}

func TestPrepareSeriesStableOnTies(t *testing.T) {
	tbl := buildTable(t, []string{"date", "v"}, [][]table.Cell{
		{table.Text("2024-01-02"), table.Number(1)},
		{table.Text("2024-01-01"), table.Number(2)},
		{table.Text("2024-01-02"), table.Number(3)},
		{table.Text("2024-01-02"), table.Number(4)},
	})

	s, err := prepareSeries(tbl, "date", "v", 2)
	require.NoError(t, err)
	// equal timestamps keep their original relative order
	assert.Equal(t, []float64{2, 1, 3, 4}, s.Y)
}

func TestPrepareSeriesInsufficient(t *testing.T) {
	tbl := buildTable(t, []string{"date", "v"}, [][]table.Cell{
		{table.Text("2024-01-01"), table.Number(1)},
		{table.Text("2024-01-02"), table.Missing()},
	})

	_, err := prepareSeries(tbl, "date", "v", 2)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestPrepareSeriesUnknownColumn(t *testing.T) {
	tbl := buildTable(t, []string{"date", "v"}, [][]table.Cell{
		{table.Text("2024-01-01"), table.Number(1)},
	})

	_, err := prepareSeries(tbl, "date", "nope", 1)
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestEstimateFreq(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	testData := map[string]struct {
		tSlice   TimeSlice
		expected time.Duration
	}{
		"even sampling": {
			tSlice: TimeSlice{
				base, base.Add(time.Hour), base.Add(2 * time.Hour),
			},
			expected: time.Hour,
		},
		"mode wins over stray gaps": {
			tSlice: TimeSlice{
				base,
				base.Add(24 * time.Hour),
				base.Add(48 * time.Hour),
				base.Add(120 * time.Hour),
				base.Add(144 * time.Hour),
			},
			expected: 24 * time.Hour,
		},
		"tie prefers the smaller interval": {
			tSlice: TimeSlice{
				base, base.Add(time.Hour), base.Add(3 * time.Hour),
			},
			expected: time.Hour,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := td.tSlice.EstimateFreq()
			require.NoError(t, err)
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestEstimateFreqTooShort(t *testing.T) {
	_, err := TimeSlice{time.Now()}.EstimateFreq()
	assert.ErrorIs(t, err, ErrCannotInferFreq)
}

func TestIntervalCounts(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ts := TimeSlice{
		base,
		base.Add(time.Hour),
		base.Add(2 * time.Hour),
		base.Add(5 * time.Hour),
	}

	counts := ts.IntervalCounts()
	require.Len(t, counts, 2)
	assert.Equal(t, IntervalCount{Interval: time.Hour, Count: 2}, counts[0])
	assert.Equal(t, IntervalCount{Interval: 3 * time.Hour, Count: 1}, counts[1])

	assert.Nil(t, TimeSlice{base}.IntervalCounts())
}
