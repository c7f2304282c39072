package calendar

import (
	"errors"
	"fmt"
	"time"
)

// MonthsPerYear is the number of months in a Gregorian year
const MonthsPerYear = 12

// ErrInvalidMonth is returned for a month outside 0-11
var ErrInvalidMonth = errors.New("invalid month")

// Date identifies a displayed month. Month is 0-based (0 = January).
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Today returns the Date for the month containing t
func Today(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()) - 1}
}

// String formats the date as "January 2024"
func (d Date) String() string {
	if ValidateMonth(d.Month) != nil {
		return fmt.Sprintf("month %d %d", d.Month, d.Year)
	}
	return fmt.Sprintf("%s %d", MonthName(d.Month), d.Year)
}

// ValidateMonth rejects months outside 0-11
func ValidateMonth(month int) error {
	if month < 0 || month >= MonthsPerYear {
		return fmt.Errorf("%w: %d (expected 0-11)", ErrInvalidMonth, month)
	}
	return nil
}

// IsLeapYear reports whether year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthLengths = [MonthsPerYear]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the 0-based month of year
func DaysInMonth(year, month int) int {
	if month == 1 && IsLeapYear(year) {
		return 29
	}
	return monthLengths[month]
}

// StartWeekday returns the Monday-first weekday (Monday = 0 ... Sunday = 6)
// of the first day of the 0-based month
func StartWeekday(year, month int) int {
	native := time.Date(year, time.Month(month+1), 1, 12, 0, 0, 0, time.UTC).Weekday()
	return (int(native) + 6) % 7
}

// MonthName returns the English name of the 0-based month
func MonthName(month int) string {
	return time.Month(month + 1).String()
}

// MonthLetters are the single-letter month headers used by the year view
var MonthLetters = [MonthsPerYear]string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"}

// WeekdayLetters are the Monday-first weekday headers
var WeekdayLetters = [7]string{"M", "T", "W", "T", "F", "S", "S"}
