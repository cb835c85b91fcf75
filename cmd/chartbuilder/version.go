package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chartbuilder/internal/domain/chart"
)

// Set through -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information and supported chart types",
		RunE: func(cmd *cobra.Command, args []string) error {
			types := make([]string, len(chart.ChartTypes))
			for i, t := range chart.ChartTypes {
				types[i] = string(t)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "chartbuilder %s (%s, %s)\n", version, commit, date)
			fmt.Fprintf(out, "chart types: %s\n", strings.Join(types, ", "))
			fmt.Fprintln(out, "outputs: html, png, csv")
			return nil
		},
	}
}
