package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	app "github.com/alexisbeaulieu97/chartbuilder/internal/application/builder"
	"github.com/alexisbeaulieu97/chartbuilder/internal/domain/chart"
	"github.com/alexisbeaulieu97/chartbuilder/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/chartbuilder/internal/infrastructure/render"
	"github.com/alexisbeaulieu97/chartbuilder/internal/infrastructure/render/echarts"
	"github.com/alexisbeaulieu97/chartbuilder/internal/infrastructure/render/raster"
)

type renderOptions struct {
	sourceOptions
	OutPath string
}

func newRenderCmd(appCtx *AppContext) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Validate the data and write the chart as PNG or HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := appCtx.CommandContext(cmd, "command.render")

			init, err := loadInitial(ctx, logger, opts.sourceOptions)
			if err != nil {
				return err
			}

			out := opts.OutPath
			if out == "" {
				out = chart.Filename(init.Options.Title, "png")
			}
			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(out), "."))
			if ext != "png" && ext != "html" {
				return fmt.Errorf("unsupported output %q: use .png or .html", out)
			}

			surface := render.NewSurface("render")
			session, err := app.New(app.Dependencies{
				Renderer: echarts.New(logger),
				Target:   surface,
				Exporter: raster.New(logger),
				Notifier: streamNotifier{w: cmd.ErrOrStderr()},
				Logger:   logger,
				Events:   events.NewLoggingPublisher(logger),
			}, init)
			if err != nil {
				return err
			}
			defer session.Close()

			if err := session.Ready(ctx); err != nil {
				return err
			}
			if err := session.Commit(ctx); err != nil {
				return err
			}

			var data []byte
			if ext == "png" {
				_, data, err = session.ExportPNG(ctx)
				if err != nil {
					return err
				}
			} else {
				data = surface.Bytes()
			}

			if err := os.WriteFile(out, data, 0o644); err != nil {
				logger.Error(ctx, "failed to write chart", "path", out, "error", err)
				return fmt.Errorf("write %s: %w", out, err)
			}
			logger.Info(ctx, "chart written", "path", out, "bytes", len(data))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.OutPath, "out", "o", "", "Output file (.png or .html); defaults to <title>.png")

	return cmd
}
