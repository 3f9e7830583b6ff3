package holiday

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/kalender/pkg/dateutil"
)

const (
	// MinYear is the first full Gregorian year
	MinYear = 1583
	// MaxYear keeps dates within four-digit years
	MaxYear = 9999
)

// ErrInvalidYear is returned for years outside MinYear..MaxYear
var ErrInvalidYear = errors.New("invalid year")

// Code is the short mnemonic printed next to a holiday
type Code string

const (
	NewYear       Code = "NJ"
	Epiphany      Code = "HDK"
	GoodFriday    Code = "Karfr"
	Easter        Code = "Ostrn"
	LabourDay     Code = "TdArb"
	Ascension     Code = "Himfa"
	WhitSunday    Code = "Pfings"
	CorpusChristi Code = "Fron"
	Assumption    Code = "MarHim"
	UnityDay      Code = "TdDE"
	AllSaints     Code = "Allerh"
	Christmas1    Code = "W1"
	Christmas2    Code = "W2"
)

// Holiday is a single dated public holiday
type Holiday struct {
	Code Code
	Name string
	Date time.Time
}

// rule describes how a holiday is derived for a given year.
// Easter-based rules use offset; fixed rules use month and day.
type rule struct {
	code        Code
	name        string
	easterBased bool
	offset      int
	month       time.Month
	day         int
}

// rules lists the holidays in canonical order. Lookups resolve ties in this order.
var rules = []rule{
	{code: NewYear, name: "Neujahr", month: time.January, day: 1},
	{code: Epiphany, name: "Heilige Drei Könige", month: time.January, day: 6},
	{code: GoodFriday, name: "Karfreitag", easterBased: true, offset: -2},
	// Printed on the Monday after Easter Sunday
	{code: Easter, name: "Ostern", easterBased: true, offset: 1},
	{code: LabourDay, name: "Tag der Arbeit", month: time.May, day: 1},
	{code: Ascension, name: "Christi Himmelfahrt", easterBased: true, offset: 39},
	{code: WhitSunday, name: "Pfingsten", easterBased: true, offset: 50},
	{code: CorpusChristi, name: "Fronleichnam", easterBased: true, offset: 60},
	{code: Assumption, name: "Mariä Himmelfahrt", month: time.August, day: 15},
	{code: UnityDay, name: "Tag der Deutschen Einheit", month: time.October, day: 3},
	{code: AllSaints, name: "Allerheiligen", month: time.November, day: 1},
	{code: Christmas1, name: "1. Weihnachtstag", month: time.December, day: 25},
	{code: Christmas2, name: "2. Weihnachtstag", month: time.December, day: 26},
}

// Count is the number of holidays in every built set
var Count = len(rules)

// ValidateYear checks that year is a supported Gregorian year
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: %d (supported %d..%d)", ErrInvalidYear, year, MinYear, MaxYear)
	}
	return nil
}

// Build derives the holiday set for the given year
func Build(year int) (*Set, error) {
	if err := ValidateYear(year); err != nil {
		return nil, err
	}

	easter := EasterSunday(year)

	holidays := make([]Holiday, 0, len(rules))
	for _, r := range rules {
		date := dateutil.Date(year, r.month, r.day)
		if r.easterBased {
			date = easter.AddDate(0, 0, r.offset)
		}
		holidays = append(holidays, Holiday{Code: r.code, Name: r.name, Date: date})
	}

	return NewSet(year, holidays)
}

// Set is an ordered, read-only collection of holidays for one year
type Set struct {
	year     int
	holidays []Holiday
	byCode   map[Code]int
}

// NewSet creates a set from holidays in the given order.
// Dates are normalized to midnight UTC; codes must be unique.
func NewSet(year int, holidays []Holiday) (*Set, error) {
	s := &Set{
		year:     year,
		holidays: make([]Holiday, 0, len(holidays)),
		byCode:   make(map[Code]int, len(holidays)),
	}

	for _, h := range holidays {
		if h.Code == "" {
			return nil, fmt.Errorf("holiday %q has no code", h.Name)
		}
		if _, ok := s.byCode[h.Code]; ok {
			return nil, fmt.Errorf("duplicate holiday code: %s", h.Code)
		}
		h.Date = dateutil.Date(h.Date.Year(), h.Date.Month(), h.Date.Day())
		s.byCode[h.Code] = len(s.holidays)
		s.holidays = append(s.holidays, h)
	}

	return s, nil
}

// Year returns the year the set was built for
func (s *Set) Year() int {
	return s.year
}

// Len returns the number of holidays in the set
func (s *Set) Len() int {
	return len(s.holidays)
}

// Codes returns the holiday codes in canonical order
func (s *Set) Codes() []Code {
	codes := make([]Code, len(s.holidays))
	for i, h := range s.holidays {
		codes[i] = h.Code
	}
	return codes
}

// All returns a copy of the holidays in canonical order
func (s *Set) All() []Holiday {
	out := make([]Holiday, len(s.holidays))
	copy(out, s.holidays)
	return out
}

// Date returns the date of the holiday with the given code
func (s *Set) Date(code Code) (time.Time, bool) {
	i, ok := s.byCode[code]
	if !ok {
		return time.Time{}, false
	}
	return s.holidays[i].Date, true
}

// Lookup returns the first holiday in canonical order falling on date
func (s *Set) Lookup(date time.Time) (Holiday, bool) {
	for _, h := range s.holidays {
		if dateutil.IsSameDay(h.Date, date) {
			return h, true
		}
	}
	return Holiday{}, false
}

// Matches returns every holiday falling on date, in canonical order
func (s *Set) Matches(date time.Time) []Holiday {
	var out []Holiday
	for _, h := range s.holidays {
		if dateutil.IsSameDay(h.Date, date) {
			out = append(out, h)
		}
	}
	return out
}

// Contains reports whether any holiday falls on date
func (s *Set) Contains(date time.Time) bool {
	_, ok := s.Lookup(date)
	return ok
}
