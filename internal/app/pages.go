package app

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/klabast/wb-services/fullbleed-calendar/internal/calendar"
)

//go:embed templates/*.html
var templateFiles embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFiles, "templates/index.html"))

// ServeIndex renders the month or year page for the state in the query
func (s *Server) ServeIndex(w http.ResponseWriter, r *http.Request) {
	state, msg := s.currentState(r)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	_, theme := s.sessionTheme(w, r)

	data := buildPage(state, theme)

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		s.Log.WithError(err).Error("rendering page")
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.Log.WithError(err).Warn("writing page")
	}
}

func buildPage(state calendar.State, theme Theme) pageData {
	data := pageData{
		Theme:     theme,
		Themes:    Themes,
		View:      state.View,
		Title:     stateTitle(state),
		Year:      state.Year,
		ReturnURL: stateURL(state),
		PrevURL:   stateURL(state.Prev()),
		NextURL:   stateURL(state.Next()),
		ToggleURL: stateURL(state.ToggleView()),
		Weekdays:  calendar.WeekdayLetters[:],
	}

	posterQuery := url.Values{}
	posterQuery.Set("year", strconv.Itoa(state.Year))

	if state.View == calendar.ViewYear {
		data.Months, data.YearRows = yearViews(state)
	} else {
		posterQuery.Set("month", strconv.Itoa(state.Month))
		data.Weeks = monthViews(calendar.MustBuildMonth(state.Year, state.Month))
	}
	data.PosterURL = "/poster.png?" + posterQuery.Encode()

	return data
}

func letterSpacing(day int) template.CSS {
	k := calendar.Kerning(day)
	if k == 0 {
		return ""
	}
	return template.CSS(fmt.Sprintf("letter-spacing: %.2fem", k))
}

func monthViews(grid calendar.MonthGrid) [][]monthCellView {
	weeks := make([][]monthCellView, 0, calendar.MonthRows)
	for _, row := range grid.Rows() {
		week := make([]monthCellView, 0, calendar.DaysPerWeek)
		for col, c := range row {
			v := monthCellView{Monday: col == 0}
			switch c.Kind {
			case calendar.CellEmpty:
				v.Empty = true
			case calendar.CellDay:
				v.Label = c.Label()
				v.Style = letterSpacing(c.Day)
			case calendar.CellStacked:
				v.Stacked = true
				v.Upper = strconv.Itoa(c.Day)
				v.Lower = strconv.Itoa(c.Second)
				v.UpperCSS = letterSpacing(c.Day)
				v.LowerCSS = letterSpacing(c.Second)
			}
			week = append(week, v)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

func yearViews(state calendar.State) ([]monthHeaderView, []yearRowView) {
	grid := calendar.BuildYear(state.Year)

	months := make([]monthHeaderView, 0, calendar.MonthsPerYear)
	hrefs := make([]string, calendar.MonthsPerYear)
	for m, letter := range calendar.MonthLetters {
		next, _ := state.SelectMonth(m)
		hrefs[m] = stateURL(next)
		months = append(months, monthHeaderView{Letter: letter, Href: hrefs[m]})
	}

	rows := make([]yearRowView, 0, calendar.YearRows)
	for row := 0; row < calendar.YearRows; row++ {
		weekday := row % calendar.DaysPerWeek
		v := yearRowView{
			Weekday: calendar.WeekdayLetters[weekday],
			Monday:  weekday == 0,
			Cells:   make([]yearCellView, 0, calendar.MonthsPerYear),
		}
		for m := range grid {
			cell := yearCellView{Href: hrefs[m]}
			if e := grid[m][row]; e != nil {
				cell.Label = strconv.Itoa(e.Day)
				cell.Monday = e.IsMonday
			}
			v.Cells = append(v.Cells, cell)
		}
		rows = append(rows, v)
	}
	return months, rows
}
