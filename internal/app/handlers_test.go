package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klabast/wb-services/fullbleed-calendar/internal/calendar"
)

func TestHandleMonth(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/month?year=2023&month=0", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.NotEmpty(t, w.Header().Get("ETag"))

	var doc struct {
		StartDay    int             `json:"startDay"`
		DaysInMonth int             `json:"daysInMonth"`
		Stacked     bool            `json:"stacked"`
		Cells       []calendar.Cell `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, 6, doc.StartDay)
	assert.Equal(t, 31, doc.DaysInMonth)
	assert.True(t, doc.Stacked)
	require.Len(t, doc.Cells, calendar.MonthCells)
	assert.Equal(t, calendar.Stacked(23, 30), doc.Cells[28])
	assert.Equal(t, calendar.Stacked(24, 31), doc.Cells[29])
}

func TestHandleMonthDefaultsToCurrentMonth(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/month", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Year  int `json:"year"`
		Month int `json:"month"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, 2024, doc.Year)
	assert.Equal(t, 1, doc.Month)
}

func TestHandleMonthRejectsBadInput(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		query string
		want  string
	}{
		{"year=2024&month=12", ErrInvalidMonthMsg},
		{"year=2024&month=-1", ErrInvalidMonthMsg},
		{"year=abc&month=1", ErrInvalidYear},
		{"year=0&month=1", ErrInvalidYear},
	}

	for _, tt := range tests {
		w := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/month?"+tt.query, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, tt.query)
		assert.Contains(t, w.Body.String(), tt.want, tt.query)
	}
}

func TestHandleMonthNotModified(t *testing.T) {
	srv := newTestServer(t)

	first := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/month?year=2024&month=1", nil))
	require.Equal(t, http.StatusOK, first.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/month?year=2024&month=1", nil)
	req.Header.Set("If-None-Match", first.Header().Get("ETag"))
	second := doRequest(srv, req)
	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Empty(t, second.Body.String())
}

func TestHandleYear(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/year?year=2024", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		MaxRows int `json:"maxRows"`
		Months  []struct {
			StartDay int                   `json:"startDay"`
			Rows     []*calendar.YearEntry `json:"rows"`
		} `json:"months"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, calendar.YearRows, doc.MaxRows)
	require.Len(t, doc.Months, calendar.MonthsPerYear)

	feb := doc.Months[1]
	assert.Equal(t, 3, feb.StartDay)
	require.Len(t, feb.Rows, calendar.YearRows)
	assert.Nil(t, feb.Rows[0])
	assert.Equal(t, &calendar.YearEntry{Day: 5, IsMonday: true}, feb.Rows[7])
	assert.Equal(t, 29, feb.Rows[31].Day)
}

func TestHandleKerning(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/kerning", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var table map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &table))
	assert.Len(t, table, len(calendar.KerningTable))
	assert.Equal(t, calendar.KerningTable[11], table["11"])
}

func TestHandleNavigate(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name  string
		query string
		want  calendar.State
	}{
		{
			name:  "next wraps into the new year",
			query: "view=month&year=2024&month=11&action=next",
			want:  calendar.State{Date: calendar.Date{Year: 2025, Month: 0}, View: calendar.ViewMonth},
		},
		{
			name:  "prev wraps into the old year",
			query: "view=month&year=2024&month=0&action=prev",
			want:  calendar.State{Date: calendar.Date{Year: 2023, Month: 11}, View: calendar.ViewMonth},
		},
		{
			name:  "year view steps years",
			query: "view=year&year=2024&month=4&action=next",
			want:  calendar.State{Date: calendar.Date{Year: 2025, Month: 4}, View: calendar.ViewYear},
		},
		{
			name:  "select month from year view",
			query: "view=year&year=2024&month=4&action=select&select=1",
			want:  calendar.State{Date: calendar.Date{Year: 2024, Month: 1}, View: calendar.ViewMonth},
		},
		{
			name:  "toggle",
			query: "view=month&year=2024&month=4&action=toggle",
			want:  calendar.State{Date: calendar.Date{Year: 2024, Month: 4}, View: calendar.ViewYear},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/navigate?"+tt.query, nil))
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp NavigationResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.State)
			assert.True(t, strings.HasPrefix(resp.URL, "/?"))
		})
	}

	for _, bad := range []string{"action=jump", "action=select&select=12", "view=week"} {
		w := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/navigate?"+bad, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	// First visit issues a session cookie and the default theme
	w := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/theme", nil))
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)

	var resp ThemeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ThemeSystem, resp.Theme)
	assert.Equal(t, Themes, resp.Themes)

	// Store dark for that session
	req := httptest.NewRequest(http.MethodPost, "/api/theme", strings.NewReader(`{"theme":"dark"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookies[0])
	w = doRequest(srv, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	req.AddCookie(cookies[0])
	w = doRequest(srv, req)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ThemeDark, resp.Theme)
}

func TestThemeFormPostRedirects(t *testing.T) {
	srv := newTestServer(t)

	form := url.Values{}
	form.Set("theme", "light")
	form.Set("return", "/?view=year&year=2024")
	req := httptest.NewRequest(http.MethodPost, "/api/theme", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := doRequest(srv, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?view=year&year=2024", w.Header().Get("Location"))
}

func TestThemeRejectsUnknownTheme(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/theme", strings.NewReader(`{"theme":"sepia"}`))
	req.Header.Set("Content-Type", "application/json")
	w := doRequest(srv, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrInvalidThemeMsg)
}

func TestServeIndexMonthView(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(srv, httptest.NewRequest(http.MethodGet, "/?view=month&year=2023&month=0", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, `class="theme-system"`)
	assert.Contains(t, body, "January 2023")
	assert.Contains(t, body, `<span class="upper" style="letter-spacing: -0.02em">23</span>`)
	assert.Contains(t, body, `<span class="lower" style="letter-spacing: -0.07em">31</span>`)
	assert.Contains(t, body, `href="/?month=11&amp;view=month&amp;year=2022"`)
	assert.Contains(t, body, `href="/?month=1&amp;view=month&amp;year=2023"`)
}

func TestServeIndexYearView(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(srv, httptest.NewRequest(http.MethodGet, "/?view=year&year=2024", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, `<div class="title">2024</div>`)
	assert.Contains(t, body, `href="/?view=year&amp;year=2025"`)
	// Month letters link to the month view of that month
	assert.Contains(t, body, `<a class="mhead" href="/?month=1&amp;view=month&amp;year=2024">F</a>`)
	assert.Equal(t, calendar.YearRows, strings.Count(body, `<div class="label`)-1)
}

func TestServeIndexRejectsBadMonth(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(srv, httptest.NewRequest(http.MethodGet, "/?month=13", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouterMethods(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(srv, httptest.NewRequest(http.MethodPost, "/api/month", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = doRequest(srv, httptest.NewRequest(http.MethodDelete, "/api/theme", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = doRequest(srv, httptest.NewRequest(http.MethodPut, "/api/year", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleMonthIgnoresView(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/month?year=2024&month=1&view=week", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetThemeMalformedJSON(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/theme", strings.NewReader(`{"theme":`))
	req.Header.Set("Content-Type", "application/json")
	w := doRequest(srv, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrInvalidRequest, strings.TrimSpace(w.Body.String()))
}
