// Package view renders the month grid as text for the terminal loop. It
// only reads state; all mutations go through handler.
package view

import (
	"fmt"
	"strings"
	"time"

	"moncal/src-cal/calendar"
	"moncal/src-cal/event"
)

// Month renders the 42-cell grid for anchor plus the ordered event list of
// every day in the anchor month that has events. Days outside the month
// show as dots, today is starred.
func Month(anchor time.Time, events []event.Event, now time.Time) string {
	var b strings.Builder

	b.WriteString(calendar.MonthLabel(anchor) + "\n")
	b.WriteString("Sun Mon Tue Wed Thu Fri Sat\n")

	todayKey := calendar.DateKey(now)
	cells := calendar.BuildMonthGrid(anchor)
	for i, cell := range cells {
		switch {
		case !cell.InCurrentMonth:
			b.WriteString("  . ")
		case calendar.DateKey(cell.Date) == todayKey:
			b.WriteString(fmt.Sprintf("%3d*", cell.Date.Day()))
		default:
			b.WriteString(fmt.Sprintf("%3d ", cell.Date.Day()))
		}
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}

	byDay := event.GroupByDate(events)
	for _, cell := range cells {
		if !cell.InCurrentMonth {
			continue
		}
		key := calendar.DateKey(cell.Date)
		dayEvents, ok := byDay[key]
		if !ok {
			continue
		}
		b.WriteString(key + "\n")
		for _, ev := range event.ByStart(dayEvents) {
			b.WriteString(fmt.Sprintf("  %-8s  %5s-%-5s  %s\n", shortID(ev.ID), ev.Start, ev.End, ev.Title))
		}
	}

	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
