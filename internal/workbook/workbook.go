// Package workbook renders month grids into a printable xlsx workbook.
package workbook

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/username/kalender/internal/calendar"
)

const (
	highlightColor = "D3D3D3"
	borderColor    = "D3D3D3"

	// excelize paper size code for A4
	paperA4 = 9
)

// DefaultColumns are the blank columns printed right of the dates
var DefaultColumns = []string{"A", "B", "C", "D", "Alle"}

// Writer implements calendar.Sink on top of an excelize workbook
type Writer struct {
	file    *excelize.File
	layout  Layout
	columns []string
	logger  *zap.Logger

	plainStyle     int
	highlightStyle int
	sheets         int
}

var _ calendar.Sink = (*Writer)(nil)

// New creates an empty workbook writer
func New(layout Layout, columns []string, logger *zap.Logger) (*Writer, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: at least one column is required", ErrInvalidLayout)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	f := excelize.NewFile()

	border := []excelize.Border{
		{Type: "left", Color: borderColor, Style: 1},
		{Type: "right", Color: borderColor, Style: 1},
		{Type: "top", Color: borderColor, Style: 1},
		{Type: "bottom", Color: borderColor, Style: 1},
	}

	plain, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create cell style: %w", err)
	}

	highlight, err := f.NewStyle(&excelize.Style{
		Border: border,
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{highlightColor}},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create highlight style: %w", err)
	}

	return &Writer{
		file:           f,
		layout:         layout,
		columns:        append([]string(nil), columns...),
		logger:         logger,
		plainStyle:     plain,
		highlightStyle: highlight,
	}, nil
}

// WriteMonth adds a worksheet for the month
func (w *Writer) WriteMonth(grid *calendar.MonthGrid) error {
	if grid == nil {
		return errors.New("nil month grid")
	}

	sheet := grid.SheetName
	if err := w.addSheet(sheet); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(w.columns) + 1)
	if err != nil {
		return fmt.Errorf("failed to resolve last column: %w", err)
	}

	// Header row: month name above the dates, column names above the blanks
	header := make([]interface{}, 0, len(w.columns)+1)
	header = append(header, grid.Name)
	for _, col := range w.columns {
		header = append(header, col)
	}
	if err := w.file.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", sheet, err)
	}
	if err := w.file.SetCellStyle(sheet, "A1", lastCol+"1", w.plainStyle); err != nil {
		return fmt.Errorf("failed to style header of %s: %w", sheet, err)
	}

	rowHeight := w.layout.RowHeightPoints()
	for i, cell := range grid.Days {
		row := i + 2
		labelCell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}

		if err := w.file.SetCellStr(sheet, labelCell, cell.Label()); err != nil {
			return fmt.Errorf("failed to write %s!%s: %w", sheet, labelCell, err)
		}
		if err := w.file.SetCellStyle(sheet, labelCell, fmt.Sprintf("%s%d", lastCol, row), w.plainStyle); err != nil {
			return fmt.Errorf("failed to style row %d of %s: %w", row, sheet, err)
		}
		if cell.WeekendOrHoliday {
			if err := w.file.SetCellStyle(sheet, labelCell, labelCell, w.highlightStyle); err != nil {
				return fmt.Errorf("failed to highlight %s!%s: %w", sheet, labelCell, err)
			}
		}
		if err := w.file.SetRowHeight(sheet, row, rowHeight); err != nil {
			return fmt.Errorf("failed to set height of row %d in %s: %w", row, sheet, err)
		}
	}

	if err := w.applyPageSetup(sheet, lastCol); err != nil {
		return err
	}

	w.logger.Debug("Month sheet written",
		zap.String("sheet", sheet),
		zap.Int("days", len(grid.Days)),
		zap.Float64("row_height_pt", rowHeight))

	return nil
}

func (w *Writer) addSheet(sheet string) error {
	// A fresh workbook already carries one default sheet
	if w.sheets == 0 {
		if err := w.file.SetSheetName(w.file.GetSheetName(0), sheet); err != nil {
			return fmt.Errorf("failed to name sheet %s: %w", sheet, err)
		}
	} else {
		if idx, _ := w.file.GetSheetIndex(sheet); idx != -1 {
			return fmt.Errorf("sheet %s already exists", sheet)
		}
		if _, err := w.file.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}
	}
	w.sheets++
	return nil
}

func (w *Writer) applyPageSetup(sheet, lastCol string) error {
	if err := w.file.SetColWidth(sheet, "A", "A", w.layout.DateColumnWidth()); err != nil {
		return fmt.Errorf("failed to set date column width in %s: %w", sheet, err)
	}
	if err := w.file.SetColWidth(sheet, "B", lastCol, w.layout.ColumnWidth(len(w.columns))); err != nil {
		return fmt.Errorf("failed to set column widths in %s: %w", sheet, err)
	}

	top := cmToInch(w.layout.MarginTopCM)
	right := cmToInch(w.layout.MarginRightCM)
	bottom := cmToInch(w.layout.MarginBottomCM)
	left := cmToInch(w.layout.MarginLeftCM)
	if err := w.file.SetPageMargins(sheet, &excelize.PageLayoutMarginsOptions{
		Top:    &top,
		Right:  &right,
		Bottom: &bottom,
		Left:   &left,
	}); err != nil {
		return fmt.Errorf("failed to set margins in %s: %w", sheet, err)
	}

	size := paperA4
	orientation := "portrait"
	if err := w.file.SetPageLayout(sheet, &excelize.PageLayoutOptions{
		Size:        &size,
		Orientation: &orientation,
	}); err != nil {
		return fmt.Errorf("failed to set page layout in %s: %w", sheet, err)
	}

	return nil
}

// Sheets returns the number of month sheets written so far
func (w *Writer) Sheets() int {
	return w.sheets
}

// SaveAs writes the workbook to path, creating the directory if needed
func (w *Writer) SaveAs(path string) error {
	if w.sheets == 0 {
		return errors.New("workbook has no sheets")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	w.file.SetActiveSheet(0)
	if err := w.file.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	w.logger.Info("Workbook saved",
		zap.String("file", path),
		zap.Int("sheets", w.sheets))

	return nil
}

// WriteTo streams the workbook to out
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	if w.sheets == 0 {
		return 0, errors.New("workbook has no sheets")
	}
	w.file.SetActiveSheet(0)
	return w.file.WriteTo(out)
}

// Close releases the workbook resources
func (w *Writer) Close() error {
	return w.file.Close()
}
