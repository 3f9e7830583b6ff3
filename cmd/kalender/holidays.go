package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/kalender/internal/holiday"
)

func holidaysCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List the public holidays of a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyYear(cmd, year); err != nil {
				return err
			}

			set, err := holiday.Build(cfg.Year)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Ostersonntag %d: %s\n", cfg.Year, holiday.EasterSunday(cfg.Year).Format("02.01.2006"))
			for _, h := range set.All() {
				fmt.Fprintf(out, "  %-7s %s  %s\n", h.Code, h.Date.Format("02.01.2006 Mon"), h.Name)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Calendar year (overrides config)")

	return cmd
}

func checkCmd() *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Cross-check the holiday dates against an independent calendar library",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("from") {
				from = cfg.Year
			}
			if !cmd.Flags().Changed("to") {
				to = from
			}
			if from > to {
				return fmt.Errorf("--from %d is after --to %d", from, to)
			}

			total := 0
			for year := from; year <= to; year++ {
				if err := cmd.Context().Err(); err != nil {
					return err
				}

				set, err := holiday.Build(year)
				if err != nil {
					return err
				}

				for _, m := range holiday.CrossCheck(set) {
					total++
					logger.Warn("Holiday mismatch",
						zap.Int("year", year),
						zap.Time("date", m.Date),
						zap.String("expected", string(m.Expected)),
						zap.String("got", string(m.Got)))
					fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", year, m)
				}
			}

			if total > 0 {
				return fmt.Errorf("%d mismatching day(s) in %d..%d", total, from, to)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d..%d match\n", from, to)
			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "First year to check (default: configured year)")
	cmd.Flags().IntVar(&to, "to", 0, "Last year to check (default: --from)")

	return cmd
}
