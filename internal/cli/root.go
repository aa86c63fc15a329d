package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wx-tools/pws-client/internal/model"
	"github.com/wx-tools/pws-client/internal/pws"
)

var (
	flagAPIKey  string
	flagStation string
	flagUnits   string
)

var rootCmd = &cobra.Command{
	Use:          "wx",
	Short:        "Query The Weather Company's Personal Weather Station API",
	SilenceUsage: true,
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "TWC API key (default $WX_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&flagStation, "station", "", "PWS station ID (default $WX_STATION)")
	rootCmd.PersistentFlags().StringVar(&flagUnits, "units", "", "units code: e (imperial), m (metric) or h (UK hybrid)")

	rootCmd.AddCommand(currentCmd, dailySummaryCmd, highresCmd, hourlyCmd, historyCmd)
}

func newClient() *pws.Client {
	return pws.NewClient(pws.Options{
		APIKey:  flagAPIKey,
		Station: flagStation,
		Units:   model.Units(flagUnits),
	})
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
