package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	app "github.com/alexisbeaulieu97/chartbuilder/internal/application/builder"
	"github.com/alexisbeaulieu97/chartbuilder/internal/infrastructure/config"
	"github.com/alexisbeaulieu97/chartbuilder/internal/infrastructure/csvcodec"
	"github.com/alexisbeaulieu97/chartbuilder/internal/infrastructure/files"
	logginginfra "github.com/alexisbeaulieu97/chartbuilder/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/chartbuilder/internal/ports"
)

// AppContext carries the root flags into every command.
type AppContext struct {
	flags *rootFlags
}

// CommandContext returns a context tagged with a fresh correlation id and a
// logger for the named command. Logs go to the command's error stream.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	logger, err := a.newLogger(cmd.ErrOrStderr(), component)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "failed to create logger: %v\n", err)
		return ctx, logginginfra.Discard
	}
	return ctx, logger
}

func (a *AppContext) newLogger(w io.Writer, component string) (ports.Logger, error) {
	level := "warn"
	if a.flags != nil && a.flags.verbose {
		level = "debug"
	}
	return logginginfra.New(logginginfra.Options{
		Writer:    w,
		Level:     level,
		Console:   a.console(w),
		Layer:     "presentation",
		Component: component,
	})
}

func (a *AppContext) console(w io.Writer) bool {
	format := logFormatAuto
	if a.flags != nil && a.flags.logFormat != "" {
		format = a.flags.logFormat
	}
	switch format {
	case logFormatConsole:
		return true
	case logFormatJSON:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// sourceOptions are the flags shared by commands that seed a session.
type sourceOptions struct {
	ConfigPath string
	DataPath   string
}

func (o *sourceOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.ConfigPath, "config", "c", "", "Path to a chart definition (YAML)")
	cmd.Flags().StringVarP(&o.DataPath, "data", "d", "", "CSV file whose rows replace the definition rows")
}

// loadInitial reads the chart definition and optional CSV data into the
// starting state of a session.
func loadInitial(ctx context.Context, logger ports.Logger, opts sourceOptions) (*app.Initial, error) {
	def := config.DefaultDefinition()
	if opts.ConfigPath != "" {
		loaded, err := config.NewYAMLLoader(logger).Load(ctx, opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		def = loaded
	}

	init := &app.Initial{
		Options: def.Options,
		Panels:  def.PanelFlags(),
		Entries: def.Entries(),
	}

	if opts.DataPath != "" {
		text, err := files.NewReader().ReadText(ctx, opts.DataPath)
		if err != nil {
			return nil, err
		}
		init.Entries = csvcodec.DecodeDocument(text)
		logger.Debug(ctx, "data file loaded", "path", opts.DataPath, "rows", len(init.Entries))
	}
	return init, nil
}

// streamNotifier prints session notifications on a writer.
type streamNotifier struct {
	w io.Writer
}

func (n streamNotifier) Notify(message string, severity ports.Severity) {
	prefix := "•"
	switch severity {
	case ports.SeveritySuccess:
		prefix = "✔"
	case ports.SeverityError:
		prefix = "✖"
	}
	fmt.Fprintf(n.w, "%s %s\n", prefix, message)
}
