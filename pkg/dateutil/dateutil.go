package dateutil

import (
	"time"
)

// DMYLayout is the day-first date layout used throughout the planner
// (loan start dates, settlement dates, report output).
const DMYLayout = "02/01/2006"

// ParseDMY parses a DD/MM/YYYY date string
func ParseDMY(s string) (time.Time, error) {
	return time.Parse(DMYLayout, s)
}

// FormatDMY formats a date as DD/MM/YYYY
func FormatDMY(t time.Time) string {
	return t.Format(DMYLayout)
}

// LoanYear returns the 1-based loan year a date falls in, anchored to the
// anniversary (month, day) of the loan start date. A date on or after the
// anniversary within a calendar year belongs to that year's new loan year.
func LoanYear(startDate, atDate time.Time) int {
	year := atDate.Year() - startDate.Year()
	if atDate.Month() > startDate.Month() ||
		(atDate.Month() == startDate.Month() && atDate.Day() >= startDate.Day()) {
		year++
	}
	return year
}

// NextSunday returns the first Sunday strictly after the given date.
// A date that is already a Sunday advances a full week.
func NextSunday(date time.Time) time.Time {
	days := (7 - int(date.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	return date.AddDate(0, 0, days)
}

// MoveOutDate returns the Saturday of the week after the first full
// weekend following settlement: advance to the next Sunday, then add
// 6 days to land on the following Saturday.
func MoveOutDate(settlement time.Time) time.Time {
	return NextSunday(settlement).AddDate(0, 0, 6)
}

// SettlementWindowEnd returns the analysis window end, two calendar
// months after settlement. November and December settlements roll the
// year over explicitly.
func SettlementWindowEnd(settlement time.Time) time.Time {
	y, m, d := settlement.Date()
	switch m {
	case time.November:
		return time.Date(y+1, time.January, d, 0, 0, 0, 0, settlement.Location())
	case time.December:
		return time.Date(y+1, time.February, d, 0, 0, 0, 0, settlement.Location())
	default:
		return time.Date(y, m+2, d, 0, 0, 0, 0, settlement.Location())
	}
}

// MonthStart returns the first day of the month containing the date.
func MonthStart(date time.Time) time.Time {
	y, m, _ := date.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, date.Location())
}

// NextMonthStart returns the first day of the month after the date.
func NextMonthStart(date time.Time) time.Time {
	y, m, _ := date.Date()
	if m == time.December {
		return time.Date(y+1, time.January, 1, 0, 0, 0, 0, date.Location())
	}
	return time.Date(y, m+1, 1, 0, 0, 0, 0, date.Location())
}

// SameDay reports whether two dates fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// DayKey truncates a date to midnight so it can key a per-day index.
func DayKey(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location())
}
