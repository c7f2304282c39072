package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/klabast/wb-services/fullbleed-calendar/internal/calendar"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatText = "txt"
)

// MonthDocument is the serialized form of a month grid
type MonthDocument struct {
	Year        int                `json:"year"`
	Month       int                `json:"month"`
	Name        string             `json:"name"`
	StartDay    int                `json:"startDay"`
	DaysInMonth int                `json:"daysInMonth"`
	Stacked     bool               `json:"stacked"`
	Cells       []calendar.Cell    `json:"cells"`
	Kerning     map[string]float64 `json:"kerning"`
}

// YearDocument is the serialized form of a year grid
type YearDocument struct {
	Year    int         `json:"year"`
	Months  []YearMonth `json:"months"`
	MaxRows int         `json:"maxRows"`
}

// YearMonth is one column of a YearDocument
type YearMonth struct {
	Month       int                   `json:"month"`
	Letter      string                `json:"letter"`
	StartDay    int                   `json:"startDay"`
	DaysInMonth int                   `json:"daysInMonth"`
	Rows        []*calendar.YearEntry `json:"rows"`
}

// NewMonthDocument describes the grid of d. Kerning is limited to the
// two-digit days present in the month.
func NewMonthDocument(d calendar.Date, grid calendar.MonthGrid) MonthDocument {
	daysInMonth := calendar.DaysInMonth(d.Year, d.Month)
	kerning := make(map[string]float64)
	for day := 10; day <= daysInMonth; day++ {
		if k, ok := calendar.KerningTable[day]; ok {
			kerning[strconv.Itoa(day)] = k
		}
	}

	return MonthDocument{
		Year:        d.Year,
		Month:       d.Month,
		Name:        calendar.MonthName(d.Month),
		StartDay:    calendar.StartWeekday(d.Year, d.Month),
		DaysInMonth: daysInMonth,
		Stacked:     grid.HasStacked(),
		Cells:       grid[:],
		Kerning:     kerning,
	}
}

// NewYearDocument describes the grid of year
func NewYearDocument(year int, grid calendar.YearGrid) YearDocument {
	doc := YearDocument{
		Year:    year,
		Months:  make([]YearMonth, 0, calendar.MonthsPerYear),
		MaxRows: calendar.YearRows,
	}
	for m := range grid {
		column := grid[m]
		doc.Months = append(doc.Months, YearMonth{
			Month:       m,
			Letter:      calendar.MonthLetters[m],
			StartDay:    calendar.StartWeekday(year, m),
			DaysInMonth: calendar.DaysInMonth(year, m),
			Rows:        column[:],
		})
	}
	return doc
}

// WriteMonthCSV writes one CSV row per week, Monday first
func WriteMonthCSV(w io.Writer, grid calendar.MonthGrid) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"week", "mon", "tue", "wed", "thu", "fri", "sat", "sun"}); err != nil {
		return err
	}

	for i, row := range grid.Rows() {
		record := []string{strconv.Itoa(i + 1)}
		for _, c := range row {
			record = append(record, c.Label())
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteYearCSV writes one CSV row per year-grid row
func WriteYearCSV(w io.Writer, grid calendar.YearGrid) error {
	cw := csv.NewWriter(w)
	header := []string{"row", "weekday"}
	for m := 0; m < calendar.MonthsPerYear; m++ {
		header = append(header, calendar.MonthName(m)[:3])
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for row := 0; row < calendar.YearRows; row++ {
		record := []string{strconv.Itoa(row), calendar.WeekdayLetters[row%calendar.DaysPerWeek]}
		for m := range grid {
			if e := grid[m][row]; e != nil {
				record = append(record, strconv.Itoa(e.Day))
			} else {
				record = append(record, "")
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON encodes v as indented JSON
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ExportMonth writes the grid of d in the given format
func ExportMonth(w io.Writer, format string, d calendar.Date, grid calendar.MonthGrid) error {
	switch format {
	case FormatCSV:
		return WriteMonthCSV(w, grid)
	case FormatJSON:
		return WriteJSON(w, NewMonthDocument(d, grid))
	case FormatText:
		return WriteMonthText(w, d, grid)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// ExportYear writes the grid of year in the given format
func ExportYear(w io.Writer, format string, year int, grid calendar.YearGrid) error {
	switch format {
	case FormatCSV:
		return WriteYearCSV(w, grid)
	case FormatJSON:
		return WriteJSON(w, NewYearDocument(year, grid))
	case FormatText:
		return WriteYearText(w, year, grid)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// ContentType returns the MIME type of an export format
func ContentType(format string) string {
	switch format {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
