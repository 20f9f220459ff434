package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/harborwatch/route-risk/internal/model"
)

var assessFlags struct {
	from    string
	to      string
	date    string
	carrier string
	goods   string
}

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run a one-shot route assessment and print JSON to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx, "assess", false)
		if err != nil {
			return err
		}
		defer env.Close()

		date, err := parseDate(assessFlags.date)
		if err != nil {
			return err
		}

		a, err := env.Pipeline.Assess(ctx, model.RouteQuery{
			DeparturePort:   assessFlags.from,
			DestinationPort: assessFlags.to,
			DepartureDate:   date,
			CarrierName:     assessFlags.carrier,
			GoodsType:       assessFlags.goods,
		})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	},
}

func init() {
	assessCmd.Flags().StringVar(&assessFlags.from, "from", "", "departure port (required)")
	assessCmd.Flags().StringVar(&assessFlags.to, "to", "", "destination port (required)")
	assessCmd.Flags().StringVar(&assessFlags.date, "date", "", "departure date YYYY-MM-DD (required)")
	assessCmd.Flags().StringVar(&assessFlags.carrier, "carrier", "", "carrier name (required)")
	assessCmd.Flags().StringVar(&assessFlags.goods, "goods", "", "goods type (required)")
	_ = assessCmd.MarkFlagRequired("from")
	_ = assessCmd.MarkFlagRequired("to")
	_ = assessCmd.MarkFlagRequired("date")
	_ = assessCmd.MarkFlagRequired("carrier")
	_ = assessCmd.MarkFlagRequired("goods")
	rootCmd.AddCommand(assessCmd)
}
