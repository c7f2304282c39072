package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/klabast/wb-services/fullbleed-calendar/internal/calendar"
)

// Layout widths of the terminal renderings
const (
	MonthColumnWidth = 6
	YearColumnWidth  = 4
	yearLabelWidth   = 3
)

// AccentColor highlights Mondays, matching the web and poster renderings
const AccentColor = "#00A0E4"

// Styles groups the lipgloss styles used for terminal output
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Monday   lipgloss.Style
	Selected lipgloss.Style
}

// ColorStyles returns styles with bold headers and accented Mondays
func ColorStyles() Styles {
	cell := lipgloss.NewStyle().Align(lipgloss.Right)
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Header:   cell.Bold(true),
		Cell:     cell,
		Monday:   cell.Foreground(lipgloss.Color(AccentColor)),
		Selected: cell.Bold(true).Reverse(true),
	}
}

// PlainStyles returns styles that only pad and align
func PlainStyles() Styles {
	cell := lipgloss.NewStyle().Align(lipgloss.Right)
	return Styles{
		Title:    lipgloss.NewStyle(),
		Header:   cell,
		Cell:     cell,
		Monday:   cell,
		Selected: cell,
	}
}

// MonthWidth is the number of columns a month rendering occupies
func MonthWidth() int {
	return calendar.DaysPerWeek * MonthColumnWidth
}

// YearWidth is the number of columns a year rendering occupies
func YearWidth() int {
	return yearLabelWidth + calendar.MonthsPerYear*YearColumnWidth
}

// MonthText renders a month grid; stacked cells print as "23/30"
func MonthText(d calendar.Date, grid calendar.MonthGrid, st Styles) string {
	var b strings.Builder
	width := MonthWidth()

	b.WriteString(st.Title.Render(fmt.Sprintf("%-*s%d", width-4, calendar.MonthName(d.Month), d.Year)))
	b.WriteString("\n")

	for i, letter := range calendar.WeekdayLetters {
		style := st.Header
		if i == 0 {
			style = st.Monday
		}
		b.WriteString(style.Width(MonthColumnWidth).Render(letter))
	}
	b.WriteString("\n")

	for _, row := range grid.Rows() {
		for col, c := range row {
			style := st.Cell
			if col == 0 {
				style = st.Monday
			}
			b.WriteString(style.Width(MonthColumnWidth).Render(c.Label()))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// YearText renders a year grid; selected is the month column to highlight,
// or -1 for none
func YearText(year int, grid calendar.YearGrid, selected int, st Styles) string {
	var b strings.Builder

	b.WriteString(st.Title.Render(fmt.Sprintf("%*d", YearWidth(), year)))
	b.WriteString("\n")

	b.WriteString(st.Header.Width(yearLabelWidth).Render(""))
	for m, letter := range calendar.MonthLetters {
		style := st.Header
		if m == selected {
			style = st.Selected
		}
		b.WriteString(style.Width(YearColumnWidth).Render(letter))
	}
	b.WriteString("\n")

	for row := 0; row < calendar.YearRows; row++ {
		weekday := row % calendar.DaysPerWeek
		label := st.Cell
		if weekday == 0 {
			label = st.Monday
		}
		b.WriteString(label.Width(yearLabelWidth).Render(calendar.WeekdayLetters[weekday]))

		for m := range grid {
			e := grid[m][row]
			style := st.Cell
			text := ""
			if e != nil {
				text = fmt.Sprintf("%d", e.Day)
				if e.IsMonday {
					style = st.Monday
				}
			}
			b.WriteString(style.Width(YearColumnWidth).Render(text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// WriteMonthText writes the plain rendering of a month to w
func WriteMonthText(w io.Writer, d calendar.Date, grid calendar.MonthGrid) error {
	_, err := io.WriteString(w, MonthText(d, grid, PlainStyles()))
	return err
}

// WriteYearText writes the plain rendering of a year to w
func WriteYearText(w io.Writer, year int, grid calendar.YearGrid) error {
	_, err := io.WriteString(w, YearText(year, grid, -1, PlainStyles()))
	return err
}
