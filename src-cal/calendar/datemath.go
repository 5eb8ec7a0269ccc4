package calendar

import "time"

// GridSize is the fixed cell count of the month view: 6 full weeks. The
// last row can fall entirely outside the anchor month; the grid never
// shrinks so the layout stays stable across months.
const GridSize = 42

// Cell is one slot of the month grid. Date can belong to the previous or
// next month; InCurrentMonth tells the renderer to dim it.
type Cell struct {
	Date           time.Time
	InCurrentMonth bool
}

// DateKey formats t as a zero-padded YYYY-MM-DD key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDateKey parses a YYYY-MM-DD key back into a local wall-clock date.
func ParseDateKey(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// AddMonths shifts t's month by delta (can be negative) and always lands on
// the first day of the resulting month.
func AddMonths(t time.Time, delta int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(delta), 1, 0, 0, 0, 0, t.Location())
}

// BuildMonthGrid returns the 42-cell grid for anchor's month, starting at
// the Sunday on or before the 1st. Consecutive cells are consecutive days.
func BuildMonthGrid(anchor time.Time) []Cell {
	start := StartOfMonth(anchor)
	firstCell := start.AddDate(0, 0, -int(start.Weekday()))

	cells := make([]Cell, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		date := firstCell.AddDate(0, 0, i)
		cells = append(cells, Cell{
			Date:           date,
			InCurrentMonth: date.Month() == anchor.Month(),
		})
	}
	return cells
}

// MonthLabel renders the anchor month for the view header.
func MonthLabel(anchor time.Time) string {
	return anchor.Format("January 2006")
}

type NavAction int

const (
	NavPrev NavAction = iota
	NavNext
	NavToday
)

// Navigate is the anchor reducer: it returns the new anchor for a navigation
// intent and never mutates shared state. now is only consulted for NavToday.
func Navigate(anchor time.Time, action NavAction, now time.Time) time.Time {
	switch action {
	case NavPrev:
		return AddMonths(anchor, -1)
	case NavNext:
		return AddMonths(anchor, 1)
	case NavToday:
		return StartOfMonth(now)
	default:
		return anchor
	}
}
