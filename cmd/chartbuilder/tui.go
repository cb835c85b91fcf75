package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	app "github.com/alexisbeaulieu97/chartbuilder/internal/application/builder"
	"github.com/alexisbeaulieu97/chartbuilder/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/chartbuilder/internal/infrastructure/files"
	logginginfra "github.com/alexisbeaulieu97/chartbuilder/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/chartbuilder/internal/infrastructure/render"
	"github.com/alexisbeaulieu97/chartbuilder/internal/infrastructure/render/echarts"
	"github.com/alexisbeaulieu97/chartbuilder/internal/infrastructure/render/raster"
	tuibuilder "github.com/alexisbeaulieu97/chartbuilder/internal/tui/builder"
)

type tuiOptions struct {
	sourceOptions
	OutDir   string
	HTMLPath string
}

func newTUICmd(appCtx *AppContext) *cobra.Command {
	opts := tuiOptions{}

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive chart builder",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := appCtx.CommandContext(cmd, "command.tui")

			init, err := loadInitial(ctx, logger, opts.sourceOptions)
			if err != nil {
				return err
			}

			// The terminal belongs to the program until it exits.
			deferred := logginginfra.NewDeferred(0)
			defer deferred.Flush(logger)
			held := deferred.Logger()

			toaster := tuibuilder.NewToaster()
			surface := render.NewSurface("preview")
			session, err := app.New(app.Dependencies{
				Renderer: echarts.New(held),
				Target:   surface,
				Exporter: raster.New(held),
				Reader:   files.NewReader(),
				Notifier: toaster,
				Logger:   held,
				Events:   events.NewLoggingPublisher(held),
			}, init)
			if err != nil {
				return err
			}

			held.Info(ctx, "launching chart builder", "rows", session.Model().Len())
			model := tuibuilder.NewModel(ctx, session, toaster, opts.OutDir)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				held.Error(ctx, "chart builder failed", "error", err)
				return fmt.Errorf("failed to run chart builder: %w", err)
			}

			if opts.HTMLPath != "" && session.Current() != nil {
				if err := os.WriteFile(opts.HTMLPath, surface.Bytes(), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", opts.HTMLPath, err)
				}
				held.Info(ctx, "interactive chart written", "path", opts.HTMLPath)
			}
			session.Close()
			held.Info(ctx, "chart builder closed")
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.OutDir, "out-dir", ".", "Directory for PNG and CSV downloads")
	cmd.Flags().StringVar(&opts.HTMLPath, "html", "", "Write the last preview as an interactive HTML page on exit")

	return cmd
}
