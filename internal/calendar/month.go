package calendar

const (
	// MonthRows is the fixed number of rows in the month view
	MonthRows = 5
	// DaysPerWeek is the number of columns in the month view
	DaysPerWeek = 7
	// MonthCells is the length of every MonthGrid
	MonthCells = MonthRows * DaysPerWeek

	lastRowStart = (MonthRows - 1) * DaysPerWeek
)

// MonthGrid is the 5x7 Monday-first cell sequence of one month
type MonthGrid [MonthCells]Cell

// Rows splits the grid into its five weeks
func (g MonthGrid) Rows() [][]Cell {
	rows := make([][]Cell, 0, MonthRows)
	for r := 0; r < MonthRows; r++ {
		rows = append(rows, g[r*DaysPerWeek:(r+1)*DaysPerWeek])
	}
	return rows
}

// HasStacked reports whether any cell holds two days
func (g MonthGrid) HasStacked() bool {
	for _, c := range g {
		if c.Kind == CellStacked {
			return true
		}
	}
	return false
}

// Overflows reports whether the month needs a sixth row before stacking
func Overflows(year, month int) bool {
	return StartWeekday(year, month)+DaysInMonth(year, month) > MonthCells
}

// BuildMonth lays out the 0-based month of year as 35 cells. Days that
// would fall into a sixth row are merged, in order, into the cells of the
// fifth row starting at its first column.
func BuildMonth(year, month int) (MonthGrid, error) {
	var grid MonthGrid
	if err := ValidateMonth(month); err != nil {
		return grid, err
	}

	startDay := StartWeekday(year, month)
	daysInMonth := DaysInMonth(year, month)

	// Leading padding, then one cell per day
	cells := make([]Cell, 0, startDay+daysInMonth)
	for i := 0; i < startDay; i++ {
		cells = append(cells, Empty())
	}
	for d := 1; d <= daysInMonth; d++ {
		cells = append(cells, Day(d))
	}

	// Fold the sixth row into the fifth by index
	if len(cells) > MonthCells {
		overflow := cells[MonthCells:]
		cells = cells[:MonthCells]
		for k, extra := range overflow {
			target := cells[lastRowStart+k]
			cells[lastRowStart+k] = Stacked(target.Day, extra.Day)
		}
	}

	// Remaining positions stay Empty (zero value)
	copy(grid[:], cells)
	return grid, nil
}

// MustBuildMonth is BuildMonth for callers that have already normalized
// the month; it panics on an invalid month.
func MustBuildMonth(year, month int) MonthGrid {
	grid, err := BuildMonth(year, month)
	if err != nil {
		panic(err)
	}
	return grid
}
