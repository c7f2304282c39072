// Package calendar builds the month and year grids of the full-bleed
// calendar.
//
// The month view is a fixed 5x7 Monday-first grid: when a month would need
// a sixth row, the overflowing days are stacked into the fifth row by
// position. The year view lays all twelve months side by side as 37-row
// weekday-aligned columns and never stacks.
//
// Every builder is a pure function of its arguments and safe for
// concurrent use.
package calendar
