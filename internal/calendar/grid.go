package calendar

import (
	"fmt"
	"time"

	"github.com/username/kalender/internal/holiday"
	"github.com/username/kalender/pkg/dateutil"
)

// BuildMonthGrid lays out every day of the given month
func BuildMonthGrid(year int, month time.Month, holidays *holiday.Set, labels Labels) (*MonthGrid, error) {
	if err := holiday.ValidateYear(year); err != nil {
		return nil, err
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMonth, int(month))
	}
	if holidays == nil {
		return nil, fmt.Errorf("%w: no holidays for %d", ErrHolidayYearMismatch, year)
	}
	if holidays.Year() != year {
		return nil, fmt.Errorf("%w: set is for %d, grid for %d", ErrHolidayYearMismatch, holidays.Year(), year)
	}
	if err := labels.Validate(); err != nil {
		return nil, err
	}

	daysInMonth := dateutil.DaysIn(year, month)
	grid := &MonthGrid{
		Year:      year,
		Month:     month,
		Name:      labels.Months[month-1],
		SheetName: fmt.Sprintf("%s-%02d", labels.MonthAbbrevs[month-1], year%100),
		Days:      make([]DayCell, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		date := dateutil.Date(year, month, day)
		weekday := date.Weekday()

		cell := DayCell{
			Date:          date,
			Day:           day,
			Weekday:       weekday,
			WeekdayAbbrev: labels.Weekdays[dateutil.WeekdayIndex(weekday)],
		}

		if weekday == time.Monday {
			_, cell.ISOWeek = dateutil.GetWeekNumber(date)
		}

		if h, ok := holidays.Lookup(date); ok {
			cell.Holiday = &h
		}

		cell.WeekendOrHoliday = dateutil.IsWeekend(date) || cell.Holiday != nil

		grid.Days = append(grid.Days, cell)
	}

	return grid, nil
}

// BuildYear lays out all twelve months of the holiday set's year
func BuildYear(holidays *holiday.Set, labels Labels) ([]*MonthGrid, error) {
	if holidays == nil {
		return nil, fmt.Errorf("%w: no holidays", ErrHolidayYearMismatch)
	}

	grids := make([]*MonthGrid, 0, 12)
	for month := time.January; month <= time.December; month++ {
		grid, err := BuildMonthGrid(holidays.Year(), month, holidays, labels)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s %d: %w", month, holidays.Year(), err)
		}
		grids = append(grids, grid)
	}

	return grids, nil
}
