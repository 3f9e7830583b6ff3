package dateutil

import "time"

// Date returns the calendar date at midnight UTC.
// Out-of-range days normalize the same way time.Date does.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// DaysIn returns the number of days in the given month
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one
	return Date(year, month+1, 0).Day()
}

// WeekdayIndex returns the position of the weekday in a Monday-first week
// (0=Monday, ..., 6=Sunday)
func WeekdayIndex(weekday time.Weekday) int {
	return (int(weekday) + 6) % 7
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date time.Time) time.Time {
	return StartOfDay(date.AddDate(0, 0, -WeekdayIndex(date.Weekday())))
}

// GetWeekNumber returns the ISO week number for the given date
func GetWeekNumber(date time.Time) (year int, week int) {
	year, week = date.ISOWeek()
	return
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
