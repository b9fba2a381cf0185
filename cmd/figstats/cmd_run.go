package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/figstats/config"
)

var runCmd = &cobra.Command{
	Use:   "run <question>",
	Short: "Answer a single question",
	Long:  `Answer one registered question. See "figstats questions" for the names.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runQuestion,
}

func init() {
	runCmd.Flags().StringP("output", "o", "", "Output format: text, json (overrides config)")
}

func runQuestion(cmd *cobra.Command, args []string) error {
	cfg, analyzer, err := newAnalyzer(cmd)
	if err != nil {
		return err
	}

	ans, err := analyzer.Run(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if cfg.Output == config.OutputJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(ans)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), ans.Text)
	return err
}
