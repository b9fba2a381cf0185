package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "figstats",
	Short: "Descriptive analytics over fig-product transactions and customers",
	Long: `figstats answers a fixed set of questions about a transactions dataset
and a customers dataset: invalid transactions, the most recent large
transaction, duplicate customers, transaction size buckets and customers
with large transactions.

Without dataset files it runs against the embedded sample.

Examples:
  figstats report
  figstats report --transactions tx.yaml --customers customers.yaml --output json
  figstats run duplicate-customers
  figstats questions`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(questionsCmd)

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().String("transactions", "", "Transactions file (.json, .yaml, .yml)")
	rootCmd.PersistentFlags().String("customers", "", "Customers file (.json, .yaml, .yml)")
	rootCmd.PersistentFlags().Float64("large", 0, "Large transaction threshold (overrides config)")
}
