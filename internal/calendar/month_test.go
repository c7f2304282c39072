package calendar

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthLeapFebruary(t *testing.T) {
	grid, err := BuildMonth(2024, 1)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.True(t, grid[i].IsEmpty(), "index %d", i)
	}
	assert.Equal(t, Day(1), grid[3])
	assert.Equal(t, Day(29), grid[31])
	for i := 32; i < MonthCells; i++ {
		assert.True(t, grid[i].IsEmpty(), "index %d", i)
	}
	assert.False(t, grid.HasStacked())
}

func TestBuildMonthExactFit(t *testing.T) {
	grid, err := BuildMonth(2025, 4)
	require.NoError(t, err)

	assert.Equal(t, Day(1), grid[3])
	assert.Equal(t, Day(31), grid[33])
	assert.True(t, grid[34].IsEmpty())
	assert.False(t, grid.HasStacked())
}

func TestBuildMonthStacksOverflow(t *testing.T) {
	grid, err := BuildMonth(2023, 0)
	require.NoError(t, err)

	// Jan 1 2023 is a Sunday: day 1 at index 6, day 23 at index 28
	assert.Equal(t, Day(1), grid[6])
	assert.Equal(t, Stacked(23, 30), grid[28])
	assert.Equal(t, Stacked(24, 31), grid[29])
	assert.Equal(t, Day(29), grid[34])
	assert.True(t, grid.HasStacked())
}

func TestBuildMonthInvalidMonth(t *testing.T) {
	for _, m := range []int{-1, 12} {
		_, err := BuildMonth(2024, m)
		assert.ErrorIs(t, err, ErrInvalidMonth)
	}

	assert.Panics(t, func() { MustBuildMonth(2024, 12) })
}

// Every month over a 400-year cycle keeps the grid invariants
func TestBuildMonthInvariants(t *testing.T) {
	for year := 2000; year < 2400; year++ {
		for month := 0; month < MonthsPerYear; month++ {
			grid, err := BuildMonth(year, month)
			require.NoError(t, err)

			startDay := StartWeekday(year, month)
			daysInMonth := DaysInMonth(year, month)
			overflow := startDay+daysInMonth > MonthCells

			require.Len(t, grid, MonthCells)
			require.Equal(t, overflow, grid.HasStacked(), "%d-%02d", year, month+1)
			require.Equal(t, overflow, Overflows(year, month))

			var got, seconds []int
			for i, c := range grid {
				if c.Kind == CellStacked {
					require.GreaterOrEqual(t, i, lastRowStart, "stacked cell outside the last row")
					require.Less(t, c.Day, c.Second)
					seconds = append(seconds, c.Second)
				}
				got = append(got, c.Days()...)
			}

			// Every day of the month appears exactly once
			want := make([]int, 0, daysInMonth)
			for d := 1; d <= daysInMonth; d++ {
				want = append(want, d)
			}
			require.ElementsMatch(t, want, got, "%d-%02d", year, month+1)

			// Lower halves in grid order are the last days of the month, ascending
			var tail []int
			for d := MonthCells - startDay + 1; d <= daysInMonth; d++ {
				tail = append(tail, d)
			}
			require.Equal(t, tail, seconds, "%d-%02d", year, month+1)

			// Single and upper days sit at their real weekday position
			for i, c := range grid {
				if c.IsEmpty() {
					continue
				}
				require.Equal(t, i, startDay+c.Day-1, "%d-%02d index %d", year, month+1, i)
				if c.Kind == CellStacked {
					require.Equal(t, i%DaysPerWeek, (startDay+c.Second-1)%DaysPerWeek,
						"stacked day lands on its own weekday")
				}
			}
		}
	}
}

// Whenever the sixth row reaches column k, row five already holds a day
// there, so stacking never lands on a padding cell.
func TestOverflowTargetsAlwaysHoldADay(t *testing.T) {
	for year := 2000; year < 2400; year++ {
		for month := 0; month < MonthsPerYear; month++ {
			startDay := StartWeekday(year, month)
			extra := startDay + DaysInMonth(year, month) - MonthCells
			for k := 0; k < extra; k++ {
				require.GreaterOrEqual(t, lastRowStart+k, startDay)
			}
		}
	}
}

func TestMonthGridRows(t *testing.T) {
	grid := MustBuildMonth(2024, 0)
	rows := grid.Rows()

	require.Len(t, rows, MonthRows)
	for _, row := range rows {
		assert.Len(t, row, DaysPerWeek)
	}
	assert.Equal(t, Day(1), rows[0][0])
	assert.Equal(t, Day(29), rows[4][0])
}

func TestCellJSON(t *testing.T) {
	cells := []Cell{Empty(), Day(7), Stacked(23, 30)}

	data, err := json.Marshal(cells)
	require.NoError(t, err)
	assert.JSONEq(t, `[null, 7, [23, 30]]`, string(data))

	var decoded []Cell
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, cells, decoded)

	var bad Cell
	assert.Error(t, json.Unmarshal([]byte(`[1, 2, 3]`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`"x"`), &bad))
}

func TestCellLabel(t *testing.T) {
	assert.Equal(t, "", Empty().Label())
	assert.Equal(t, "9", Day(9).Label())
	assert.Equal(t, "24/31", Stacked(24, 31).Label())
	assert.Equal(t, "stacked", CellStacked.String())
}
