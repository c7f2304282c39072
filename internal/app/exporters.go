package app

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/klabast/wb-services/fullbleed-calendar/internal/calendar"
	"github.com/klabast/wb-services/fullbleed-calendar/internal/render"
)

// HandleExport downloads a grid as CSV, JSON or text.
// Query params: year, month (omit for the whole year), format
func (s *Server) HandleExport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format != render.FormatCSV && format != render.FormatJSON && format != render.FormatText {
		http.Error(w, ErrInvalidFormat, http.StatusBadRequest)
		return
	}

	year, ok := parseYear(q, s.Now().Year())
	if !ok {
		http.Error(w, ErrInvalidYear, http.StatusBadRequest)
		return
	}

	var (
		buf      bytes.Buffer
		filename string
		err      error
	)
	if q.Get("month") == "" {
		filename = fmt.Sprintf("calendar_%d.%s", year, format)
		err = render.ExportYear(&buf, format, year, calendar.BuildYear(year))
	} else {
		month, ok := parseMonth(q, 0)
		if !ok {
			http.Error(w, ErrInvalidMonthMsg, http.StatusBadRequest)
			return
		}
		d := calendar.Date{Year: year, Month: month}
		filename = fmt.Sprintf("calendar_%d-%02d.%s", year, month+1, format)
		err = render.ExportMonth(&buf, format, d, calendar.MustBuildMonth(year, month))
	}

	if err != nil {
		s.Log.WithError(err).WithField("format", format).Error("generating export")
		http.Error(w, ErrFailedToGenerate, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if err := writeCached(w, r, render.ContentType(format), buf.Bytes()); err != nil {
		s.Log.WithError(err).Warn("writing export")
	}
}

// HandlePoster renders a PNG poster of a month, or of the year when month
// is omitted. The palette follows the session theme.
func (s *Server) HandlePoster(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, ok := parseYear(q, s.Now().Year())
	if !ok {
		http.Error(w, ErrInvalidYear, http.StatusBadRequest)
		return
	}

	_, theme := s.sessionTheme(w, r)
	opts := render.PosterOptions{
		Width:  s.Config.PosterWidth,
		Height: s.Config.PosterHeight,
		Dark:   theme == ThemeDark,
	}

	var buf bytes.Buffer
	var err error
	if q.Get("month") == "" {
		err = s.Fonts.WriteYearPoster(&buf, year, opts)
	} else {
		month, ok := parseMonth(q, 0)
		if !ok {
			http.Error(w, ErrInvalidMonthMsg, http.StatusBadRequest)
			return
		}
		err = s.Fonts.WriteMonthPoster(&buf, calendar.Date{Year: year, Month: month}, opts)
	}

	if err != nil {
		s.Log.WithError(err).Error("rendering poster")
		http.Error(w, ErrFailedToRender, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.Log.WithError(err).Warn("writing poster")
	}
}
