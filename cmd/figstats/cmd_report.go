package main

import (
	"github.com/spf13/cobra"

	"github.com/hasbyte1/figstats/config"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Answer every registered question",
	Long:  `Run all questions over the dataset and print the answers as text or JSON.`,
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringP("output", "o", "", "Output format: text, json (overrides config)")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, analyzer, err := newAnalyzer(cmd)
	if err != nil {
		return err
	}

	report, err := analyzer.Report(cmd.Context())
	if err != nil {
		return err
	}

	if cfg.Output == config.OutputJSON {
		return report.WriteJSON(cmd.OutOrStdout())
	}
	return report.WriteText(cmd.OutOrStdout())
}
