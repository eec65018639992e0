package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/highlight-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

func generateDaysCmd() *cobra.Command {
	var withHeader bool

	cmd := &cobra.Command{
		Use:   "generate-days-from <start-date> <end-date>",
		Short: "Print calendar file entries for a range of days",
		Long: "Print one [data] entry per day from start-date to end-date inclusive, " +
			"e.g. 2023-01-29.Sun = \"\", ready to paste into a calendar file.",
		Example: "  highlight-calendar generate-days-from 2023-01-29 2023-02-04",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := dateutil.ParseDate(args[0])
			if err != nil {
				return fmt.Errorf("invalid start date: %w", err)
			}
			end, err := dateutil.ParseDate(args[1])
			if err != nil {
				return fmt.Errorf("invalid end date: %w", err)
			}

			days, err := dateutil.GenerateRange(start, end)
			if err != nil {
				return err
			}

			logger.Debug("Generating days",
				zap.Stringer("start", start),
				zap.Stringer("end", end))

			w := bufio.NewWriter(cmd.OutOrStdout())
			if withHeader {
				fmt.Fprintln(w, "[data]")
			}
			for day := range days {
				fmt.Fprintln(w, day.Entry())
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&withHeader, "with-header", false, "Print the [data] table header first")

	return cmd
}
