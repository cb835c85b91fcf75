package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	logFormatAuto    = "auto"
	logFormatJSON    = "json"
	logFormatConsole = "console"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{flags: flags}

	cmd := &cobra.Command{
		Use:           "chartbuilder",
		Short:         "Build charts from label/value data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch flags.logFormat {
			case logFormatAuto, logFormatJSON, logFormatConsole:
				return nil
			default:
				return fmt.Errorf("unknown log format %q (want auto, json or console)", flags.logFormat)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", logFormatAuto, "Log format: auto, json or console")

	cmd.AddCommand(newTUICmd(app))
	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newExportCSVCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
