package calendar_test

import (
	"testing"
	"time"

	"moncal/src-cal/calendar"
)

func TestBuildMonthGrid(t *testing.T) {
	anchors := []time.Time{
		time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local),
		time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local),  // leap February
		time.Date(2024, time.September, 1, 0, 0, 0, 0, time.Local), // 1st is a Sunday
		time.Date(2024, time.December, 1, 0, 0, 0, 0, time.Local),  // year boundary ahead
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local),   // year boundary behind
	}

	for _, anchor := range anchors {
		cells := calendar.BuildMonthGrid(anchor)

		if len(cells) != calendar.GridSize {
			t.Error("grid size", anchor, len(cells))
		}
		if cells[0].Date.Weekday() != time.Sunday {
			t.Error("first cell not a Sunday", anchor, cells[0].Date)
		}

		// consecutive cells are consecutive days
		for i := 1; i < len(cells); i++ {
			want := cells[i-1].Date.AddDate(0, 0, 1)
			if calendar.DateKey(cells[i].Date) != calendar.DateKey(want) {
				t.Error("cells not consecutive", anchor, i, cells[i].Date)
			}
		}

		// the in-month cells are exactly the days of the anchor month
		inMonth := 0
		for _, cell := range cells {
			if cell.InCurrentMonth != (cell.Date.Month() == anchor.Month()) {
				t.Error("wrong InCurrentMonth flag", anchor, cell.Date)
			}
			if cell.InCurrentMonth {
				inMonth++
			}
		}
		if inMonth != calendar.EndOfMonth(anchor).Day() {
			t.Error("wrong in-month day count", anchor, inMonth)
		}
	}
}

func TestBuildMonthGridAnchorMidMonth(t *testing.T) {
	first := calendar.BuildMonthGrid(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local))
	mid := calendar.BuildMonthGrid(time.Date(2024, time.June, 17, 0, 0, 0, 0, time.Local))
	for i := range first {
		if calendar.DateKey(first[i].Date) != calendar.DateKey(mid[i].Date) {
			t.Error("grid depends on anchor day", i)
		}
	}
}

func TestAddMonths(t *testing.T) {
	for _, testCase := range []struct {
		from  time.Time
		delta int
		want  string
	}{
		{time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local), 1, "2024-07-01"},
		{time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local), -1, "2024-05-01"},
		{time.Date(2024, time.December, 1, 0, 0, 0, 0, time.Local), 1, "2025-01-01"},
		{time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local), -1, "2023-12-01"},
		{time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local), 0, "2024-06-01"},
		{time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local), 13, "2025-07-01"},
	} {
		got := calendar.DateKey(calendar.AddMonths(testCase.from, testCase.delta))
		if got != testCase.want {
			t.Error("AddMonths", testCase.from, testCase.delta, got)
		}
	}
}

func TestStartEndOfMonth(t *testing.T) {
	d := time.Date(2024, time.February, 15, 13, 45, 0, 0, time.Local)
	if calendar.DateKey(calendar.StartOfMonth(d)) != "2024-02-01" {
		t.Error("StartOfMonth", calendar.StartOfMonth(d))
	}
	if calendar.DateKey(calendar.EndOfMonth(d)) != "2024-02-29" {
		t.Error("EndOfMonth", calendar.EndOfMonth(d))
	}
}

func TestDateKey(t *testing.T) {
	d := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.Local)
	if calendar.DateKey(d) != "2024-06-05" {
		t.Error("key not zero-padded", calendar.DateKey(d))
	}

	parsed, err := calendar.ParseDateKey("2024-06-05")
	if err != nil {
		t.Error(err)
	}
	if calendar.DateKey(parsed) != "2024-06-05" {
		t.Error("roundtrip", parsed)
	}

	if _, err := calendar.ParseDateKey("not-a-date"); err == nil {
		t.Error("expected parse error")
	}
}

func TestMonthLabel(t *testing.T) {
	if got := calendar.MonthLabel(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)); got != "June 2024" {
		t.Error("label", got)
	}
}

func TestNavigate(t *testing.T) {
	now := time.Date(2024, time.June, 17, 12, 0, 0, 0, time.Local)
	anchor := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)

	if got := calendar.Navigate(anchor, calendar.NavPrev, now); calendar.DateKey(got) != "2024-02-01" {
		t.Error("prev", got)
	}
	if got := calendar.Navigate(anchor, calendar.NavNext, now); calendar.DateKey(got) != "2024-04-01" {
		t.Error("next", got)
	}
	if got := calendar.Navigate(anchor, calendar.NavToday, now); calendar.DateKey(got) != "2024-06-01" {
		t.Error("today", got)
	}

	// CRUD never moves the anchor; only the reducer does, and it never
	// mutates its input
	if calendar.DateKey(anchor) != "2024-03-01" {
		t.Error("anchor mutated", anchor)
	}
}
