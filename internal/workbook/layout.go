package workbook

import (
	"errors"
	"fmt"
)

const (
	cmPerInch     = 2.54
	pointsPerInch = 72.0

	// dateColumnSample is the widest label expected in the date column
	dateColumnSample = "22 Mo [8]..."
)

// ErrInvalidLayout is returned when the page geometry cannot hold the grid
var ErrInvalidLayout = errors.New("invalid layout")

// Layout describes the printed page the workbook is fitted to
type Layout struct {
	// PageWidthChars is the printable page width in character units
	PageWidthChars float64
	PageHeightCM   float64

	MarginTopCM    float64
	MarginRightCM  float64
	MarginBottomCM float64
	MarginLeftCM   float64

	// HeaderReserveCM is kept free for the header row
	HeaderReserveCM float64
	// RowsPerPage is the number of day rows that must fit on one page
	RowsPerPage int
}

// DefaultLayout returns the A4 portrait layout
func DefaultLayout() Layout {
	return Layout{
		PageWidthChars:  95,
		PageHeightCM:    29.7,
		MarginTopCM:     4,
		MarginRightCM:   1,
		MarginBottomCM:  1,
		MarginLeftCM:    1,
		HeaderReserveCM: 1,
		RowsPerPage:     31,
	}
}

// Validate checks the layout leaves room for the grid
func (l Layout) Validate() error {
	if l.PageWidthChars <= 0 || l.PageHeightCM <= 0 {
		return fmt.Errorf("%w: page size must be positive", ErrInvalidLayout)
	}
	if l.MarginTopCM < 0 || l.MarginRightCM < 0 || l.MarginBottomCM < 0 || l.MarginLeftCM < 0 || l.HeaderReserveCM < 0 {
		return fmt.Errorf("%w: margins must not be negative", ErrInvalidLayout)
	}
	if l.RowsPerPage <= 0 {
		return fmt.Errorf("%w: rows per page must be positive", ErrInvalidLayout)
	}
	if l.usableHeightCM() <= 0 {
		return fmt.Errorf("%w: margins leave no room for rows", ErrInvalidLayout)
	}
	if l.PageWidthChars <= l.DateColumnWidth() {
		return fmt.Errorf("%w: page narrower than the date column", ErrInvalidLayout)
	}
	return nil
}

// DateColumnWidth is the width of the leading label column
func (l Layout) DateColumnWidth() float64 {
	return float64(len(dateColumnSample))
}

// ColumnWidth splits the remaining page width evenly across n extra columns
func (l Layout) ColumnWidth(n int) float64 {
	if n <= 0 {
		return 0
	}
	return (l.PageWidthChars - l.DateColumnWidth()) / float64(n)
}

func (l Layout) usableHeightCM() float64 {
	return l.PageHeightCM - l.MarginTopCM - l.MarginBottomCM - l.HeaderReserveCM
}

// RowHeightPoints is the day row height so that RowsPerPage rows fill the page
func (l Layout) RowHeightPoints() float64 {
	return cmToInch(l.usableHeightCM()/float64(l.RowsPerPage)) * pointsPerInch
}

func cmToInch(cm float64) float64 {
	return cm / cmPerInch
}
