package calendar

// YearRows covers the largest start offset (6) plus the longest month (31)
const YearRows = 37

// YearEntry is a non-empty row of a year grid column
type YearEntry struct {
	Day      int  `json:"day"`
	IsMonday bool `json:"isMonday"`
}

// YearColumn is one month of the year view; nil rows are empty.
// Row r sits on weekday r mod 7 (0 = Monday).
type YearColumn [YearRows]*YearEntry

// Days returns the non-empty day values read top to bottom
func (c YearColumn) Days() []int {
	days := make([]int, 0, 31)
	for _, e := range c {
		if e != nil {
			days = append(days, e.Day)
		}
	}
	return days
}

// YearGrid holds the twelve month columns of a year
type YearGrid [MonthsPerYear]YearColumn

// BuildYear lays out every month of year as weekday-aligned columns
func BuildYear(year int) YearGrid {
	var grid YearGrid
	for m := 0; m < MonthsPerYear; m++ {
		grid[m] = buildYearColumn(year, m)
	}
	return grid
}

func buildYearColumn(year, month int) YearColumn {
	var column YearColumn
	startDay := StartWeekday(year, month)
	daysInMonth := DaysInMonth(year, month)

	for row := 0; row < YearRows; row++ {
		if row < startDay {
			continue
		}
		day := row - startDay + 1
		if day > daysInMonth {
			break
		}
		column[row] = &YearEntry{Day: day, IsMonday: row%DaysPerWeek == 0}
	}
	return column
}
