package calendar

import "fmt"

// View selects which grid the presentation layer shows
type View string

const (
	ViewMonth View = "month"
	ViewYear  View = "year"
)

// ParseView parses "month" or "year"; an empty string means month
func ParseView(s string) (View, error) {
	switch View(s) {
	case "", ViewMonth:
		return ViewMonth, nil
	case ViewYear:
		return ViewYear, nil
	default:
		return "", fmt.Errorf("unknown view %q", s)
	}
}

// State is the selection held by a display: the month shown and the view.
// Transitions return a new State and leave the receiver untouched.
type State struct {
	Date
	View View `json:"view"`
}

// NewState returns a month-view state for d, normalizing the month
func NewState(d Date) State {
	return State{Date: Normalize(d.Year, d.Month), View: ViewMonth}
}

// Normalize folds an out-of-range month into 0-11, carrying into the year
func Normalize(year, month int) Date {
	year += month / MonthsPerYear
	month %= MonthsPerYear
	if month < 0 {
		month += MonthsPerYear
		year--
	}
	return Date{Year: year, Month: month}
}

// AdvanceMonth moves delta months, wrapping across year boundaries
func (s State) AdvanceMonth(delta int) State {
	s.Date = Normalize(s.Year, s.Month+delta)
	return s
}

// ChangeYear moves delta years without touching the month
func (s State) ChangeYear(delta int) State {
	s.Year += delta
	return s
}

// SelectMonth picks month m from the year view and switches to month view
func (s State) SelectMonth(m int) (State, error) {
	if err := ValidateMonth(m); err != nil {
		return s, err
	}
	s.Month = m
	s.View = ViewMonth
	return s, nil
}

// ToggleView switches between month and year view
func (s State) ToggleView() State {
	if s.View == ViewYear {
		s.View = ViewMonth
	} else {
		s.View = ViewYear
	}
	return s
}

// Prev steps backwards in the current view: a month in month view, a year
// in year view
func (s State) Prev() State {
	if s.View == ViewYear {
		return s.ChangeYear(-1)
	}
	return s.AdvanceMonth(-1)
}

// Next steps forwards in the current view
func (s State) Next() State {
	if s.View == ViewYear {
		return s.ChangeYear(1)
	}
	return s.AdvanceMonth(1)
}
