package models

import (
	"fmt"
	"sort"
	"time"
)

// showDateLayout is the wire format of Event.Date.
const showDateLayout = "01/02/2006"

// ParseShowDate parses an event date in MM/DD/YYYY form.
func ParseShowDate(s string) (time.Time, error) {
	t, err := time.Parse(showDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse show date %q: %w", s, err)
	}
	return t, nil
}

// MonthAbbrev returns the short month name ("Jan".."Dec") of an event date,
// or "" when the date does not parse.
func MonthAbbrev(date string) string {
	t, err := ParseShowDate(date)
	if err != nil {
		return ""
	}
	return t.Format("Jan")
}

// DayOfMonth returns the day number of an event date, or "" when the date
// does not parse.
func DayOfMonth(date string) string {
	t, err := ParseShowDate(date)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d", t.Day())
}

// LineupSlot is a billing entry in display order with its rank label.
type LineupSlot struct {
	Name  string
	Label string
}

// BillingLineup orders billings by position ascending and labels the first
// slot "Headliner" and every other slot "Direct Support". The input slice
// is not modified.
func BillingLineup(billings []EventBilling) []LineupSlot {
	sorted := make([]EventBilling, len(billings))
	copy(sorted, billings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	slots := make([]LineupSlot, len(sorted))
	for i, b := range sorted {
		label := "Direct Support"
		if i == 0 {
			label = "Headliner"
		}
		slots[i] = LineupSlot{Name: b.Name, Label: label}
	}
	return slots
}

// SortScheduleItems orders schedule items by (start_day_offset, start_time)
// ascending. The input slice is not modified.
func SortScheduleItems(items []ScheduleItem) []ScheduleItem {
	sorted := make([]ScheduleItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].StartDayOffset != sorted[j].StartDayOffset {
			return sorted[i].StartDayOffset < sorted[j].StartDayOffset
		}
		ti, erri := parseClock(sorted[i].StartTime)
		tj, errj := parseClock(sorted[j].StartTime)
		if erri != nil || errj != nil {
			return sorted[i].StartTime < sorted[j].StartTime
		}
		return ti.Before(tj)
	})
	return sorted
}

// parseClock parses a time-of-day string, with or without seconds.
func parseClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04:05", s)
	if err == nil {
		return t, nil
	}
	return time.Parse("15:04", s)
}

// formatClock renders a time-of-day string as e.g. "7:30 PM".
// Unparseable values are returned unchanged.
func formatClock(s string) string {
	t, err := parseClock(s)
	if err != nil {
		return s
	}
	return t.Format("3:04 PM")
}

// Duration renders the elapsed time between two clock times as
// "N hr M mins". End times earlier than start wrap past midnight; an event
// is assumed not to span multiple days. Returns "" when either time does
// not parse.
func Duration(startTime, endTime string) string {
	start, err := parseClock(startTime)
	if err != nil {
		return ""
	}
	end, err := parseClock(endTime)
	if err != nil {
		return ""
	}

	hourDiff := end.Hour() - start.Hour()
	minDiff := end.Minute() - start.Minute()

	if minDiff < 0 {
		hourDiff--
		minDiff += 60
	}
	if hourDiff < 0 {
		hourDiff += 24
	}

	hours := ""
	if hourDiff > 0 {
		hours = fmt.Sprintf("%d hr", hourDiff)
	}
	mins := ""
	if minDiff > 0 {
		mins = fmt.Sprintf("%d mins", minDiff)
	}

	switch {
	case hours != "" && mins != "":
		return hours + " " + mins
	case hours != "":
		return hours
	case mins != "":
		return mins
	default:
		return "0 mins"
	}
}

// TimeLabel renders the schedule line shown next to an item's title:
//
//	"7:30 PM Day after"                 offset +1
//	"7:30 PM Day before"                offset -1
//	"7:30 PM - 9:00 PM (1 hr 30 mins)"  show day with an end time
//	"7:30 PM"                           show day, no end time
func (s ScheduleItem) TimeLabel() string {
	start := formatClock(s.StartTime)

	switch {
	case s.StartDayOffset == 1:
		return start + " Day after"
	case s.StartDayOffset == -1:
		return start + " Day before"
	case s.EndTime != "":
		return fmt.Sprintf("%s - %s (%s)", start, formatClock(s.EndTime), Duration(s.StartTime, s.EndTime))
	default:
		return start
	}
}
