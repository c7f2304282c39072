package calendar

import (
	"encoding/json"
	"fmt"
)

// CellKind tags the variant held by a Cell
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellDay
	CellStacked
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellDay:
		return "day"
	case CellStacked:
		return "stacked"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// Cell is one display position of a month grid: Empty, a single Day, or a
// Stacked pair of days sharing the position.
type Cell struct {
	Kind CellKind
	// Day is the single day, or the first (upper) day of a stacked pair.
	Day int
	// Second is the later day of a stacked pair; zero otherwise.
	Second int
}

// Empty returns a padding cell
func Empty() Cell { return Cell{} }

// Day returns a cell holding a single day
func Day(n int) Cell { return Cell{Kind: CellDay, Day: n} }

// Stacked returns a cell holding two days, n1 < n2
func Stacked(n1, n2 int) Cell { return Cell{Kind: CellStacked, Day: n1, Second: n2} }

// IsEmpty reports whether the cell holds no day
func (c Cell) IsEmpty() bool { return c.Kind == CellEmpty }

// Days unpacks the day values held by the cell in ascending order
func (c Cell) Days() []int {
	switch c.Kind {
	case CellDay:
		return []int{c.Day}
	case CellStacked:
		return []int{c.Day, c.Second}
	default:
		return nil
	}
}

// Label formats the cell for plain-text output ("", "7", "23/30")
func (c Cell) Label() string {
	switch c.Kind {
	case CellDay:
		return fmt.Sprintf("%d", c.Day)
	case CellStacked:
		return fmt.Sprintf("%d/%d", c.Day, c.Second)
	default:
		return ""
	}
}

// MarshalJSON encodes Empty as null, Day as a number and Stacked as a pair
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CellDay:
		return json.Marshal(c.Day)
	case CellStacked:
		return json.Marshal([2]int{c.Day, c.Second})
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON is the inverse of MarshalJSON
func (c *Cell) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*c = Empty()
	case float64:
		*c = Day(int(v))
	case []interface{}:
		if len(v) != 2 {
			return fmt.Errorf("stacked cell needs 2 days, got %d", len(v))
		}
		first, ok1 := v[0].(float64)
		second, ok2 := v[1].(float64)
		if !ok1 || !ok2 {
			return fmt.Errorf("stacked cell days must be numbers")
		}
		*c = Stacked(int(first), int(second))
	default:
		return fmt.Errorf("unsupported cell value %s", string(data))
	}
	return nil
}
