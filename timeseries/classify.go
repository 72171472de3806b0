package timeseries

import (
	"github.com/ChimdumebiNebolisa/datuum2.0/table"
)

// Classify identifies the temporal column and the numeric value columns of a
// table. The temporal column is the first column, in table order, whose
// present cells all qualify as timestamps; value columns are the remaining
// columns whose present cells all qualify as numbers, order preserved. A pure
// function of the table: no side effects, no state.
func Classify(tbl table.Table) Classification {
	cls := Classification{}
	if tbl == nil {
		return cls
	}

	cols := tbl.Columns()
	for _, col := range cols {
		if columnIsTemporal(tbl, col) {
			cls.TimeColumn = col
			break
		}
	}

	for _, col := range cols {
		if col == cls.TimeColumn {
			continue
		}
		if columnIsNumeric(tbl, col) {
			cls.ValueColumns = append(cls.ValueColumns, col)
		}
	}
	return cls
}

// columnIsTemporal reports whether every present cell of the column can be
// interpreted as a timestamp. Columns with no present cells never qualify.
func columnIsTemporal(tbl table.Table, col string) bool {
	n := tbl.NumRows()
	present := 0
	for i := 0; i < n; i++ {
		c, ok := tbl.At(i, col)
		if !ok {
			return false
		}
		if c.IsMissing() {
			continue
		}
		if _, ok := c.AsTime(); !ok {
			return false
		}
		present++
	}
	return present > 0
}

func columnIsNumeric(tbl table.Table, col string) bool {
	n := tbl.NumRows()
	present := 0
	for i := 0; i < n; i++ {
		c, ok := tbl.At(i, col)
		if !ok {
			return false
		}
		if c.IsMissing() {
			continue
		}
		if _, ok := c.AsFloat(); !ok {
			return false
		}
		present++
	}
	return present > 0
}
