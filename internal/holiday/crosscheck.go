package holiday

import (
	"fmt"
	"time"

	"github.com/rickar/cal/v2"

	"github.com/username/kalender/pkg/dateutil"
)

// Mismatch is a day on which the set and the reference calendar disagree
type Mismatch struct {
	Date     time.Time
	Expected Code // holiday according to the reference calendar, "" if none
	Got      Code // holiday according to the set, "" if none
}

func (m Mismatch) String() string {
	expected, got := string(m.Expected), string(m.Got)
	if expected == "" {
		expected = "-"
	}
	if got == "" {
		got = "-"
	}
	return fmt.Sprintf("%s: expected %s, got %s", m.Date.Format("2006-01-02"), expected, got)
}

// NewReferenceCalendar builds a business calendar carrying the same holiday
// rules, computed by rickar/cal's own Easter engine
func NewReferenceCalendar() *cal.BusinessCalendar {
	bc := cal.NewBusinessCalendar()
	for _, r := range rules {
		h := &cal.Holiday{
			Name: string(r.code),
			Type: cal.ObservancePublic,
		}
		if r.easterBased {
			h.Offset = r.offset
			h.Func = cal.CalcEasterOffset
		} else {
			h.Month = r.month
			h.Day = r.day
			h.Func = cal.CalcDayOfMonth
		}
		bc.AddHoliday(h)
	}
	return bc
}

// CrossCheck walks every day of the set's year and reports days where the
// set disagrees with the reference calendar
func CrossCheck(s *Set) []Mismatch {
	return crossCheck(s, NewReferenceCalendar())
}

func crossCheck(s *Set, bc *cal.BusinessCalendar) []Mismatch {
	var mismatches []Mismatch

	start := dateutil.Date(s.Year(), time.January, 1)
	for date := start; date.Year() == s.Year(); date = date.AddDate(0, 0, 1) {
		var expected Code
		// Query at noon so the reference calendar's location cannot shift the day
		if actual, _, h := bc.IsHoliday(date.Add(12 * time.Hour)); actual && h != nil {
			expected = Code(h.Name)
		}

		var got Code
		if h, ok := s.Lookup(date); ok {
			got = h.Code
		}

		// The reference reports one holiday per day; any of ours on that day may match it
		if expected != got && !hasCode(s.Matches(date), expected) {
			mismatches = append(mismatches, Mismatch{Date: date, Expected: expected, Got: got})
		}
	}

	return mismatches
}

func hasCode(holidays []Holiday, code Code) bool {
	for _, h := range holidays {
		if h.Code == code {
			return true
		}
	}
	return false
}
