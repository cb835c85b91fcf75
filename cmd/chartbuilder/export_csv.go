package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	app "github.com/alexisbeaulieu97/chartbuilder/internal/application/builder"
	"github.com/alexisbeaulieu97/chartbuilder/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/chartbuilder/pkg/diff"
)

type exportCSVOptions struct {
	sourceOptions
	OutPath string
	Diff    bool
}

func newExportCSVCmd(appCtx *AppContext) *cobra.Command {
	opts := exportCSVOptions{}

	cmd := &cobra.Command{
		Use:   "export-csv",
		Short: "Write the renderable rows as a Label,Value CSV document",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := appCtx.CommandContext(cmd, "command.export_csv")

			init, err := loadInitial(ctx, logger, opts.sourceOptions)
			if err != nil {
				return err
			}

			session, err := app.New(app.Dependencies{
				Notifier: streamNotifier{w: io.Discard},
				Logger:   logger,
				Events:   events.NewLoggingPublisher(logger),
			}, init)
			if err != nil {
				return err
			}

			name, doc := session.ExportCSV(ctx)
			out := opts.OutPath
			if out == "" {
				out = name
			}
			if out == "-" {
				_, err := io.WriteString(cmd.OutOrStdout(), doc)
				return err
			}

			if opts.Diff {
				if err := printDiff(cmd.OutOrStdout(), out, doc); err != nil {
					return err
				}
			}

			if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
				logger.Error(ctx, "failed to write csv", "path", out, "error", err)
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.OutPath, "out", "o", "", "Output file, or - for stdout; defaults to <title>.csv")
	cmd.Flags().BoolVar(&opts.Diff, "diff", false, "Show how the export differs from the existing output file")

	return cmd
}

// printDiff writes the line changes between the file at path and doc. A
// missing file compares as empty.
func printDiff(w io.Writer, path, doc string) error {
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read %s: %w", path, err)
	}

	listing, summary := diff.Lines(string(existing), doc, path, "export")
	if !summary.Changed() {
		fmt.Fprintln(w, "no changes")
		return nil
	}
	fmt.Fprint(w, listing)
	fmt.Fprintf(w, "%d added, %d removed\n", summary.Added, summary.Removed)
	return nil
}
