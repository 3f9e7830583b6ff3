package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/kalender/internal/calendar"
	"github.com/username/kalender/internal/holiday"
	"github.com/username/kalender/internal/workbook"
)

func generateCmd() *cobra.Command {
	var year int
	var output string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the calendar workbook for a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyYear(cmd, year); err != nil {
				return err
			}

			labels, err := cfg.CalendarLabels()
			if err != nil {
				return err
			}

			path := cfg.OutputPath()
			if output != "" {
				path = output
			}

			logger.Info("Generating calendar",
				zap.Int("year", cfg.Year),
				zap.String("file", path),
				zap.Strings("columns", cfg.Columns),
				zap.Bool("dry_run", dryRun))

			if dryRun {
				return printGrids(cmd.OutOrStdout(), cfg.Year, labels)
			}

			w, err := workbook.New(cfg.WorkbookLayout(), cfg.Columns, logger)
			if err != nil {
				return fmt.Errorf("failed to create workbook: %w", err)
			}
			defer w.Close()

			if err := calendar.Render(cmd.Context(), cfg.Year, labels, w); err != nil {
				return fmt.Errorf("failed to render calendar: %w", err)
			}

			if err := w.SaveAs(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Die Excel-Datei '%s' wurde erfolgreich erstellt.\n", path)
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Calendar year (overrides config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (overrides output.dir/output.file)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the month grids instead of writing the workbook")

	return cmd
}

// printGrids writes a plain-text preview; highlighted days are marked with '*'
func printGrids(out io.Writer, year int, labels calendar.Labels) error {
	holidays, err := holiday.Build(year)
	if err != nil {
		return err
	}

	grids, err := calendar.BuildYear(holidays, labels)
	if err != nil {
		return err
	}

	for _, grid := range grids {
		fmt.Fprintf(out, "%s (%s)\n", grid.Name, grid.SheetName)
		for _, cell := range grid.Days {
			marker := " "
			if cell.WeekendOrHoliday {
				marker = "*"
			}
			fmt.Fprintf(out, "  %s %s\n", marker, cell.Label())
		}
	}

	return nil
}
