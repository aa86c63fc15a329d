package cli

import "github.com/spf13/cobra"

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Current conditions for the station",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := newClient().Current()
		if err != nil {
			return err
		}
		return printJSON(record)
	},
}

var dailySummaryCmd = &cobra.Command{
	Use:   "dailysummary",
	Short: "Daily observation summaries for the last 7 days",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries, err := newClient().DailySummary7Day()
		if err != nil {
			return err
		}
		return printJSON(summaries)
	},
}

var highresCmd = &cobra.Command{
	Use:   "highres",
	Short: "Today's observations at full reporting frequency",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		observations, err := newClient().Observations1DayHighRes()
		if err != nil {
			return err
		}
		return printJSON(observations)
	},
}

var hourlyCmd = &cobra.Command{
	Use:   "hourly",
	Short: "Hourly observations for the last 7 days",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		observations, err := newClient().Observations7DayHourly()
		if err != nil {
			return err
		}
		return printJSON(observations)
	},
}
