// Package calendar lays out the month grids of the wall calendar.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/username/kalender/internal/holiday"
)

var (
	// ErrInvalidMonth is returned for months outside 1..12
	ErrInvalidMonth = errors.New("invalid month")
	// ErrHolidayYearMismatch is returned when the holiday set belongs to another year
	ErrHolidayYearMismatch = errors.New("holiday set does not match year")
	// ErrInvalidLabels is returned when a label table is incomplete
	ErrInvalidLabels = errors.New("invalid labels")
)

// Labels holds the display texts used in the grid.
// Weekdays are indexed Monday-first (0=Monday, ..., 6=Sunday).
type Labels struct {
	Weekdays     [7]string
	Months       [12]string
	MonthAbbrevs [12]string
}

// DefaultLabels returns the German labels of the printed calendar
func DefaultLabels() Labels {
	return Labels{
		Weekdays: [7]string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"},
		Months: [12]string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		MonthAbbrevs: [12]string{
			"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
			"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
		},
	}
}

// Validate checks that every label is set
func (l Labels) Validate() error {
	for i, s := range l.Weekdays {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: weekday %d is empty", ErrInvalidLabels, i)
		}
	}
	for i := range l.Months {
		if strings.TrimSpace(l.Months[i]) == "" {
			return fmt.Errorf("%w: month %d is empty", ErrInvalidLabels, i+1)
		}
		if strings.TrimSpace(l.MonthAbbrevs[i]) == "" {
			return fmt.Errorf("%w: month abbreviation %d is empty", ErrInvalidLabels, i+1)
		}
	}
	return nil
}

// DayCell describes one row of a month grid
type DayCell struct {
	Date          time.Time
	Day           int
	Weekday       time.Weekday
	WeekdayAbbrev string
	// ISOWeek is set on Mondays only; 0 otherwise
	ISOWeek int
	// Holiday is nil unless the day is a public holiday
	Holiday          *holiday.Holiday
	WeekendOrHoliday bool
}

// HasISOWeek reports whether the week number is printed on this day
func (c DayCell) HasISOWeek() bool {
	return c.ISOWeek > 0
}

// HolidayCode returns the holiday code, or "" on ordinary days
func (c DayCell) HolidayCode() holiday.Code {
	if c.Holiday == nil {
		return ""
	}
	return c.Holiday.Code
}

// Label renders the leading column text, e.g. "6 Mo [15] Ostrn"
func (c DayCell) Label() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(c.Day))
	b.WriteByte(' ')
	b.WriteString(c.WeekdayAbbrev)
	if c.HasISOWeek() {
		fmt.Fprintf(&b, " [%d]", c.ISOWeek)
	}
	if c.Holiday != nil {
		b.WriteByte(' ')
		b.WriteString(string(c.Holiday.Code))
	}
	return b.String()
}

// MonthGrid is the ordered list of days of one month
type MonthGrid struct {
	Year      int
	Month     time.Month
	Name      string
	SheetName string
	Days      []DayCell
}

// Sink renders month grids into a document
type Sink interface {
	WriteMonth(grid *MonthGrid) error
}

// Render builds all twelve months of year and hands them to sink in order
func Render(ctx context.Context, year int, labels Labels, sink Sink) error {
	holidays, err := holiday.Build(year)
	if err != nil {
		return fmt.Errorf("failed to build holidays: %w", err)
	}

	grids, err := BuildYear(holidays, labels)
	if err != nil {
		return err
	}

	for _, grid := range grids {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sink.WriteMonth(grid); err != nil {
			return fmt.Errorf("failed to write %s: %w", grid.SheetName, err)
		}
	}

	return nil
}
