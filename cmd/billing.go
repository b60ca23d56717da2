package cmd

import (
	"github.com/spf13/cobra"
)

var billingCmd = &cobra.Command{
	Use:   "billing",
	Short: "Billing information.",
}

var billingCostCmd = &cobra.Command{
	Use:   "cost",
	Short: "Show the project's billing window and account.",
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := requireProject()
		if err != nil {
			return err
		}
		start, _ := cmd.Flags().GetString("start-date")
		end, _ := cmd.Flags().GetString("end-date")
		groupBy, _ := cmd.Flags().GetStringSlice("group-by")

		ts, err := newToolset(cmd.Context())
		if err != nil {
			return err
		}
		resp, err := ts.GetBillingCost(cmd.Context(), project, start, end, groupBy)
		if err != nil {
			return err
		}
		return emit(resp)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Cloud Monitoring metrics.",
}

var metricsGetCmd = &cobra.Command{
	Use:   "get <metric-type>",
	Short: "Fetch a metric for the project.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := requireProject()
		if err != nil {
			return err
		}
		interval, _ := cmd.Flags().GetString("interval")
		aggregation, _ := cmd.Flags().GetString("aggregation")

		ts, err := newToolset(cmd.Context())
		if err != nil {
			return err
		}
		resp, err := ts.GetMetrics(cmd.Context(), project, args[0], interval, aggregation)
		if err != nil {
			return err
		}
		return emit(resp)
	},
}

func init() {
	billingCostCmd.Flags().String("start-date", "", "window start, YYYY-MM-DD or RFC 3339 (default end minus 30 days)")
	billingCostCmd.Flags().String("end-date", "", "window end, YYYY-MM-DD or RFC 3339 (default now)")
	billingCostCmd.Flags().StringSlice("group-by", []string{"service"}, "cost grouping dimensions")
	billingCmd.AddCommand(billingCostCmd)

	metricsGetCmd.Flags().String("interval", "1h", "lookback interval")
	metricsGetCmd.Flags().String("aggregation", "mean", "aggregation function")
	metricsCmd.AddCommand(metricsGetCmd)

	rootCmd.AddCommand(billingCmd, metricsCmd)
}
