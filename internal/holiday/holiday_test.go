package holiday

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestBuild2026(t *testing.T) {
	set, err := Build(2026)
	if err != nil {
		t.Fatalf("Build(2026) error = %v", err)
	}

	tests := []struct {
		code Code
		want time.Time
	}{
		{NewYear, date(2026, time.January, 1)},
		{Epiphany, date(2026, time.January, 6)},
		{GoodFriday, date(2026, time.April, 3)},
		{Easter, date(2026, time.April, 6)}, // Easter Sunday + 1
		{LabourDay, date(2026, time.May, 1)},
		{Ascension, date(2026, time.May, 14)},
		{WhitSunday, date(2026, time.May, 25)},
		{CorpusChristi, date(2026, time.June, 4)},
		{Assumption, date(2026, time.August, 15)},
		{UnityDay, date(2026, time.October, 3)},
		{AllSaints, date(2026, time.November, 1)},
		{Christmas1, date(2026, time.December, 25)},
		{Christmas2, date(2026, time.December, 26)},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			got, ok := set.Date(tt.code)
			if !ok {
				t.Fatalf("Date(%s) not found", tt.code)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Date(%s) = %s, want %s",
					tt.code, got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestBuildCompleteness(t *testing.T) {
	for year := 1900; year <= 2100; year++ {
		set, err := Build(year)
		if err != nil {
			t.Fatalf("Build(%d) error = %v", year, err)
		}

		if set.Len() != Count || Count != 13 {
			t.Fatalf("Build(%d) has %d holidays, want 13", year, set.Len())
		}

		seen := make(map[Code]bool)
		for _, h := range set.All() {
			if seen[h.Code] {
				t.Fatalf("Build(%d) duplicate code %s", year, h.Code)
			}
			seen[h.Code] = true

			if h.Date.Year() != year {
				t.Errorf("Build(%d) %s falls in %d", year, h.Code, h.Date.Year())
			}
		}
	}
}

func TestBuildCanonicalOrder(t *testing.T) {
	set, err := Build(2026)
	if err != nil {
		t.Fatalf("Build(2026) error = %v", err)
	}

	want := []Code{
		NewYear, Epiphany, GoodFriday, Easter, LabourDay, Ascension, WhitSunday,
		CorpusChristi, Assumption, UnityDay, AllSaints, Christmas1, Christmas2,
	}
	if got := set.Codes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Codes() = %v, want %v", got, want)
	}
}

func TestBuildInvalidYear(t *testing.T) {
	for _, year := range []int{0, 1582, 10000, -5} {
		if _, err := Build(year); !errors.Is(err, ErrInvalidYear) {
			t.Errorf("Build(%d) error = %v, want ErrInvalidYear", year, err)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	first, err := Build(2026)
	if err != nil {
		t.Fatalf("Build(2026) error = %v", err)
	}
	second, err := Build(2026)
	if err != nil {
		t.Fatalf("Build(2026) error = %v", err)
	}

	if !reflect.DeepEqual(first.All(), second.All()) {
		t.Errorf("Build(2026) returned different sets")
	}
}

func TestLookupTieBreak(t *testing.T) {
	// 2008: Ascension (Easter Mar 23 + 39) fell on Labour Day
	set, err := Build(2008)
	if err != nil {
		t.Fatalf("Build(2008) error = %v", err)
	}

	may1 := date(2008, time.May, 1)

	h, ok := set.Lookup(may1)
	if !ok {
		t.Fatalf("Lookup(2008-05-01) found nothing")
	}
	if h.Code != LabourDay {
		t.Errorf("Lookup(2008-05-01) = %s, want %s", h.Code, LabourDay)
	}

	matches := set.Matches(may1)
	if len(matches) != 2 || matches[0].Code != LabourDay || matches[1].Code != Ascension {
		t.Errorf("Matches(2008-05-01) = %v, want [%s %s]", matches, LabourDay, Ascension)
	}
}

func TestNewSetOrderDecidesTies(t *testing.T) {
	day := date(2030, time.March, 3)
	set, err := NewSet(2030, []Holiday{
		{Code: "B", Name: "second", Date: day},
		{Code: "A", Name: "first", Date: day.Add(15 * time.Hour)},
	})
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}

	h, ok := set.Lookup(day)
	if !ok || h.Code != "B" {
		t.Errorf("Lookup() = %v, %v, want B", h.Code, ok)
	}

	got, _ := set.Date("A")
	if !got.Equal(day) {
		t.Errorf("Date(A) = %v, want normalized %v", got, day)
	}
}

func TestNewSetRejectsDuplicateCodes(t *testing.T) {
	_, err := NewSet(2030, []Holiday{
		{Code: "X", Date: date(2030, time.January, 1)},
		{Code: "X", Date: date(2030, time.January, 2)},
	})
	if err == nil {
		t.Error("NewSet() with duplicate codes succeeded, want error")
	}
}

func TestContains(t *testing.T) {
	set, err := Build(2026)
	if err != nil {
		t.Fatalf("Build(2026) error = %v", err)
	}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"Christmas", date(2026, time.December, 25), true},
		{"Easter Sunday itself is not listed", date(2026, time.April, 5), false},
		{"Easter Monday", date(2026, time.April, 6), true},
		{"Ordinary day", date(2026, time.March, 10), false},
		{"Local time on holiday", time.Date(2026, time.October, 3, 23, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := set.Contains(tt.date); got != tt.want {
				t.Errorf("Contains(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestCrossCheck(t *testing.T) {
	for _, year := range []int{2000, 2019, 2024, 2025, 2026, 2027, 2038} {
		set, err := Build(year)
		if err != nil {
			t.Fatalf("Build(%d) error = %v", year, err)
		}

		if mismatches := CrossCheck(set); len(mismatches) > 0 {
			t.Errorf("CrossCheck(%d) = %v, want none", year, mismatches)
		}
	}
}

func TestCrossCheckReportsDrift(t *testing.T) {
	good, err := Build(2026)
	if err != nil {
		t.Fatalf("Build(2026) error = %v", err)
	}

	holidays := good.All()
	for i := range holidays {
		if holidays[i].Code == Easter {
			// Easter Sunday instead of the Monday
			holidays[i].Date = date(2026, time.April, 5)
		}
	}
	bad, err := NewSet(2026, holidays)
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}

	mismatches := CrossCheck(bad)
	if len(mismatches) != 2 {
		t.Fatalf("CrossCheck() = %v, want 2 mismatches", mismatches)
	}
	if mismatches[0].Got != Easter || mismatches[0].Expected != "" {
		t.Errorf("mismatch[0] = %s", mismatches[0])
	}
	if mismatches[1].Expected != Easter || mismatches[1].Got != "" {
		t.Errorf("mismatch[1] = %s", mismatches[1])
	}
}
