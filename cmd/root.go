// Package cmd wires the tool surface into a cobra CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "gcpkit",
	Short: "Read and manage GCP resources from the command line.",
	Long: `gcpkit is a thin facade over a handful of GCP services: storage buckets,
compute instances, IP addresses, persistent disks, VPC networks, load
balancers, billing and monitoring. Every command authenticates with a
service account key file and maps one provider operation to one call.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("credentials", "", "path to a service account key file (default $GOOGLE_APPLICATION_CREDENTIALS)")
	rootCmd.PersistentFlags().StringP("project", "p", "", "GCP project ID")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json, yaml)")

	viper.BindPFlag("credentials", rootCmd.PersistentFlags().Lookup("credentials"))
	viper.BindPFlag("project", rootCmd.PersistentFlags().Lookup("project"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindEnv("credentials", "GOOGLE_APPLICATION_CREDENTIALS")
	viper.BindEnv("project", "GCPKIT_PROJECT")
}
