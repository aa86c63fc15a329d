package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/wx-tools/pws-client/internal/pws"
)

var (
	flagDate  string
	flagStart string
	flagEnd   string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Historical station data, walking backward day by day",
}

var historyDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily summary history, most recent day first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		if flagDate != "" {
			date, err := pws.ParseDate(flagDate)
			if err != nil {
				return err
			}
			record, err := client.HistoryDaily(date)
			if err != nil {
				return err
			}
			if record == nil {
				return fmt.Errorf("no observations for %s", flagDate)
			}
			return printJSON(record)
		}

		start, end, err := parseRangeFlags()
		if err != nil {
			return err
		}
		return printRange(client.HistoryDailyRange(start, end))
	},
}

var historyHourlyCmd = &cobra.Command{
	Use:   "hourly",
	Short: "Hourly history, latest hour first within each day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		if flagDate != "" {
			date, err := pws.ParseDate(flagDate)
			if err != nil {
				return err
			}
			records, err := client.HistoryHourly(date)
			if err != nil {
				return err
			}
			return printJSON(records)
		}

		start, end, err := parseRangeFlags()
		if err != nil {
			return err
		}
		return printRange(client.HistoryHourlyRange(start, end))
	},
}

func init() {
	historyCmd.PersistentFlags().StringVar(&flagDate, "date", "", "single date to fetch (YYYYMMDD or YYYY-MM-DD)")
	historyCmd.PersistentFlags().StringVar(&flagStart, "start", "", "range start date (default today)")
	historyCmd.PersistentFlags().StringVar(&flagEnd, "end", "", "range end date (default: walk back until history runs out)")

	historyCmd.AddCommand(historyDailyCmd, historyHourlyCmd)
}

func parseRangeFlags() (start, end time.Time, err error) {
	if flagStart != "" {
		if start, err = pws.ParseDate(flagStart); err != nil {
			return
		}
	}
	if flagEnd != "" {
		if end, err = pws.ParseDate(flagEnd); err != nil {
			return
		}
	}
	return
}

// printRange prints records as they arrive so long walks stay lazy.
func printRange(it *pws.HistoryIter) error {
	for it.Next() {
		if err := printJSON(it.Record()); err != nil {
			return err
		}
	}
	return it.Err()
}
