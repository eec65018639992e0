package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/highlight-calendar/internal/calendar"
	"github.com/username/highlight-calendar/internal/render"
)

func previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Print the calendar to the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := calendar.NewLoader(configPath, logger).Load()
			if err != nil {
				return fmt.Errorf("failed to load calendar: %w", err)
			}

			grids, err := cal.Layout()
			if err != nil {
				return fmt.Errorf("failed to lay out calendar: %w", err)
			}

			return render.Preview(cmd.OutOrStdout(), grids)
		},
	}
}
