package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/klabast/wb-services/fullbleed-calendar/internal/calendar"
	"github.com/klabast/wb-services/fullbleed-calendar/internal/render"
)

// currentState reads view, year and month from the query, defaulting to
// the current month
func (s *Server) currentState(r *http.Request) (calendar.State, string) {
	q := r.URL.Query()
	today := calendar.Today(s.Now())

	view, err := calendar.ParseView(q.Get("view"))
	if err != nil {
		return calendar.State{}, ErrInvalidView
	}
	year, ok := parseYear(q, today.Year)
	if !ok {
		return calendar.State{}, ErrInvalidYear
	}
	month, ok := parseMonth(q, today.Month)
	if !ok {
		return calendar.State{}, ErrInvalidMonthMsg
	}

	return calendar.State{Date: calendar.Date{Year: year, Month: month}, View: view}, ""
}

// HandleMonth returns the month grid as JSON
// Query params: year, month (0-11); both default to the current month
func (s *Server) HandleMonth(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	today := calendar.Today(s.Now())

	year, ok := parseYear(q, today.Year)
	if !ok {
		http.Error(w, ErrInvalidYear, http.StatusBadRequest)
		return
	}
	month, ok := parseMonth(q, today.Month)
	if !ok {
		http.Error(w, ErrInvalidMonthMsg, http.StatusBadRequest)
		return
	}
	d := calendar.Date{Year: year, Month: month}

	grid, err := calendar.BuildMonth(d.Year, d.Month)
	if err != nil {
		http.Error(w, ErrInvalidMonthMsg, http.StatusBadRequest)
		return
	}

	body, err := json.Marshal(render.NewMonthDocument(d, grid))
	if err != nil {
		s.Log.WithError(err).Error("encoding month grid")
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
		return
	}

	if err := writeCached(w, r, "application/json", body); err != nil {
		s.Log.WithError(err).Warn("writing month grid")
	}
}

// HandleYear returns the year grid as JSON
// Query param: year (optional, defaults to current year)
func (s *Server) HandleYear(w http.ResponseWriter, r *http.Request) {
	year, ok := parseYear(r.URL.Query(), s.Now().Year())
	if !ok {
		http.Error(w, ErrInvalidYear, http.StatusBadRequest)
		return
	}

	body, err := json.Marshal(render.NewYearDocument(year, calendar.BuildYear(year)))
	if err != nil {
		s.Log.WithError(err).Error("encoding year grid")
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
		return
	}

	if err := writeCached(w, r, "application/json", body); err != nil {
		s.Log.WithError(err).Warn("writing year grid")
	}
}

// HandleKerning returns the kerning table keyed by day
func (s *Server) HandleKerning(w http.ResponseWriter, r *http.Request) {
	table := make(map[string]float64, len(calendar.KerningTable))
	for day, k := range calendar.KerningTable {
		table[strconv.Itoa(day)] = k
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(table); err != nil {
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
		return
	}
	if err := writeCached(w, r, "application/json", buf.Bytes()); err != nil {
		s.Log.WithError(err).Warn("writing kerning table")
	}
}

// HandleNavigate applies a navigation action to the state in the query
// Query params: view, year, month, action (prev|next|toggle|select), select
func (s *Server) HandleNavigate(w http.ResponseWriter, r *http.Request) {
	state, msg := s.currentState(r)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	next, msg := applyAction(state, r.URL.Query().Get("action"), r.URL.Query().Get("select"))
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	resp := NavigationResponse{State: next, Title: stateTitle(next), URL: stateURL(next)}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		s.Log.WithError(err).Warn("writing navigation response")
	}
}

func applyAction(state calendar.State, action, selected string) (calendar.State, string) {
	switch action {
	case "", "stay":
		return state, ""
	case "prev":
		return state.Prev(), ""
	case "next":
		return state.Next(), ""
	case "toggle":
		return state.ToggleView(), ""
	case "select":
		m, err := strconv.Atoi(selected)
		if err != nil {
			return state, ErrInvalidMonthMsg
		}
		next, err := state.SelectMonth(m)
		if err != nil {
			return state, ErrInvalidMonthMsg
		}
		return next, ""
	default:
		return state, ErrInvalidAction
	}
}

func stateTitle(s calendar.State) string {
	if s.View == calendar.ViewYear {
		return strconv.Itoa(s.Year)
	}
	return s.Date.String()
}

// sessionTheme returns the session id (creating one if the request has
// none) and its stored theme
func (s *Server) sessionTheme(w http.ResponseWriter, r *http.Request) (string, Theme) {
	fallback, _ := ParseTheme(s.Config.DefaultTheme)
	if fallback == "" {
		fallback = ThemeSystem
	}

	session := ""
	if c, err := r.Cookie(SessionCookie); err == nil {
		session = c.Value
	}
	if session == "" {
		id, err := newSessionID()
		if err != nil {
			s.Log.WithError(err).Error("generating session id")
			return "", fallback
		}
		session = id
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    session,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return session, fallback
	}

	theme, err := s.Store.GetTheme(r.Context(), session)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.Log.WithError(err).Warn("reading theme preference")
		}
		return session, fallback
	}
	return session, theme
}

// GetTheme returns the theme of the current session
func (s *Server) GetTheme(w http.ResponseWriter, r *http.Request) {
	_, theme := s.sessionTheme(w, r)
	if err := writeJSON(w, http.StatusOK, ThemeResponse{Theme: theme, Themes: Themes}); err != nil {
		s.Log.WithError(err).Warn("writing theme response")
	}
}

// SetTheme stores the theme of the current session. JSON bodies get a JSON
// answer; form posts from the page are redirected back to "return".
func (s *Server) SetTheme(w http.ResponseWriter, r *http.Request) {
	isJSON := strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")

	var raw string
	if isJSON {
		var req ThemeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, ErrInvalidRequest, http.StatusBadRequest)
			return
		}
		raw = req.Theme
	} else {
		raw = r.FormValue("theme")
	}

	theme, err := ParseTheme(raw)
	if err != nil {
		http.Error(w, ErrInvalidThemeMsg, http.StatusBadRequest)
		return
	}

	session, _ := s.sessionTheme(w, r)
	if session == "" {
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
		return
	}

	if err := s.Store.SetTheme(r.Context(), session, theme); err != nil {
		s.Log.WithError(err).Error("saving theme preference")
		http.Error(w, ErrFailedToSave, http.StatusInternalServerError)
		return
	}

	if !isJSON {
		http.Redirect(w, r, safeReturnURL(r.FormValue("return")), http.StatusSeeOther)
		return
	}

	if err := writeJSON(w, http.StatusOK, ThemeResponse{Theme: theme, Themes: Themes}); err != nil {
		s.Log.WithError(err).Warn("writing theme response")
	}
}
