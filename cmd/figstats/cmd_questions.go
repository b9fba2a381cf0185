package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/figstats/analytics"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the registered questions",
	Args:  cobra.NoArgs,
	RunE:  runQuestions,
}

func runQuestions(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, q := range analytics.Questions() {
		fmt.Fprintf(w, "%s\t%s\n", q.Name, q.Description)
	}
	return w.Flush()
}
