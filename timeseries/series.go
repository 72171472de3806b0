package timeseries

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/ChimdumebiNebolisa/datuum2.0/table"
)

var ErrCannotInferFreq = errors.New("cannot infer interval from fewer than 2 samples")

// DefaultInterval is the step used to project forecast timestamps when the
// source series has no inter-sample mode (fewer than 2 samples).
const DefaultInterval = 24 * time.Hour

// Series is a clean, time-sorted sequence of (timestamp, value) pairs for one
// value column. Sampling need not be uniform; all downstream math runs on the
// ordinal index, with real timestamps used only to project forecasts.
type Series struct {
	T TimeSlice
	Y []float64
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.Y) }

// prepareSeries joins the time and value columns on row position, drops rows
// where either side is missing or unparseable, and sorts ascending by
// timestamp. Ties keep their original relative order.
func prepareSeries(tbl table.Table, timeCol, valueCol string, minPoints int) (*Series, error) {
	n := tbl.NumRows()
	t := make([]time.Time, 0, n)
	y := make([]float64, 0, n)

	for i := 0; i < n; i++ {
		tc, ok := tbl.At(i, timeCol)
		if !ok {
			return nil, fmt.Errorf("time column %q, %w", timeCol, ErrColumnNotFound)
		}
		vc, ok := tbl.At(i, valueCol)
		if !ok {
			return nil, fmt.Errorf("value column %q, %w", valueCol, ErrColumnNotFound)
		}
		ts, ok := tc.AsTime()
		if !ok {
			continue
		}
		v, ok := vc.AsFloat()
		if !ok {
			continue
		}
		t = append(t, ts)
		y = append(y, v)
	}

	if len(y) < minPoints {
		return nil, fmt.Errorf("have %d points, need at least %d, %w", len(y), minPoints, ErrInsufficientData)
	}

	idx := make([]int, len(t))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return t[idx[a]].Before(t[idx[b]])
	})

	sorted := &Series{
		T: make(TimeSlice, len(t)),
		Y: make([]float64, len(y)),
	}
	for i, j := range idx {
		sorted.T[i] = t[j]
		sorted.Y[i] = y[j]
	}
	return sorted, nil
}

// TimeSlice is an ascending sequence of sample timestamps.
type TimeSlice []time.Time

func (t TimeSlice) StartTime() time.Time {
	var startTime time.Time
	if len(t) < 1 {
		return startTime
	}
	return t[0]
}

func (t TimeSlice) EndTime() time.Time {
	var lastTime time.Time
	if len(t) < 1 {
		return lastTime
	}
	return t[len(t)-1]
}

// EstimateFreq returns the modal inter-sample interval. When several
// intervals are equally frequent the smallest wins.
func (t TimeSlice) EstimateFreq() (time.Duration, error) {
	if len(t) < 2 {
		return 0, ErrCannotInferFreq
	}

	frequencies := make(map[time.Duration]int)
	for i := 1; i < len(t); i++ {
		delta := t[i].Sub(t[i-1])
		frequencies[delta] += 1
	}

	var maxCnt int
	maxDelta := time.Duration(math.MaxInt64)

	for delta, cnt := range frequencies {
		if cnt > maxCnt || (cnt == maxCnt && delta < maxDelta) {
			maxCnt = cnt
			maxDelta = delta
		}
	}
	return maxDelta, nil
}

// IntervalCounts returns every observed inter-sample interval with its
// occurrence count, most frequent first, ties broken by smaller interval.
func (t TimeSlice) IntervalCounts() []IntervalCount {
	if len(t) < 2 {
		return nil
	}
	frequencies := make(map[time.Duration]int)
	for i := 1; i < len(t); i++ {
		frequencies[t[i].Sub(t[i-1])] += 1
	}
	counts := make([]IntervalCount, 0, len(frequencies))
	for delta, cnt := range frequencies {
		counts = append(counts, IntervalCount{Interval: delta, Count: cnt})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Interval < counts[j].Interval
	})
	return counts
}
