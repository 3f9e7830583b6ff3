// Package holiday computes Easter Sunday and the fixed set of public holidays
// printed on the wall calendar.
package holiday

import (
	"time"

	"github.com/username/kalender/pkg/dateutil"
)

// EasterSunday calculates Easter Sunday using the anonymous Gregorian
// (Meeus/Jones/Butcher) algorithm. The result is at midnight UTC.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return dateutil.Date(year, time.Month(month), day)
}
