package app

import (
	"html/template"

	"github.com/klabast/wb-services/fullbleed-calendar/internal/calendar"
)

// ThemeRequest is the body of POST /api/theme
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ThemeResponse reports the theme stored for the session
type ThemeResponse struct {
	Theme  Theme   `json:"theme"`
	Themes []Theme `json:"themes"`
}

// NavigationResponse is the state after a navigation action
type NavigationResponse struct {
	State calendar.State `json:"state"`
	Title string         `json:"title"`
	URL   string         `json:"url"`
}

// monthCellView is one cell of the rendered month page
type monthCellView struct {
	Empty    bool
	Stacked  bool
	Monday   bool
	Label    string
	Upper    string
	Lower    string
	Style    template.CSS
	UpperCSS template.CSS
	LowerCSS template.CSS
}

// yearCellView is one cell of the rendered year page
type yearCellView struct {
	Label  string
	Monday bool
	Href   string
}

type yearRowView struct {
	Weekday string
	Monday  bool
	Cells   []yearCellView
}

type monthHeaderView struct {
	Letter string
	Href   string
}

// pageData feeds the index template
type pageData struct {
	Theme     Theme
	Themes    []Theme
	View      calendar.View
	Title     string
	Year      int
	ReturnURL string
	PrevURL   string
	NextURL   string
	ToggleURL string
	PosterURL string
	Weekdays  []string
	Weeks     [][]monthCellView
	Months    []monthHeaderView
	YearRows  []yearRowView
}
