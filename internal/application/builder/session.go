// Package builder is the event-dispatch layer of the chart builder. A Session
// owns the series model, options, colour overrides and panel state, and
// translates user events into model changes, rebuilds and notifications.
//
// A Session is not safe for concurrent use; every method runs on the
// caller's goroutine.
package builder

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/chartbuilder/internal/domain/chart"
	"github.com/alexisbeaulieu97/chartbuilder/internal/domain/panel"
	"github.com/alexisbeaulieu97/chartbuilder/internal/infrastructure/csvcodec"
	logginginfra "github.com/alexisbeaulieu97/chartbuilder/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/chartbuilder/internal/ports"
)

// Dependencies are the collaborators a session drives. Builder, Logger and
// Notifier default to working values when nil; the rest are optional and the
// operations needing them fail with INTERNAL_ERROR when absent.
type Dependencies struct {
	Builder  *chart.Builder
	Renderer ports.Renderer
	Target   ports.Target
	Exporter ports.ImageExporter
	Reader   ports.FileReader
	Notifier ports.Notifier
	Logger   ports.Logger
	Events   ports.EventPublisher
}

// Initial is the starting state of a session.
type Initial struct {
	Options chart.Options
	Panels  map[panel.ID]bool
	Entries []chart.Entry
}

// Session is one chart builder instance.
type Session struct {
	deps Dependencies

	model     *chart.SeriesModel
	options   chart.Options
	overrides *chart.Overrides
	panels    *panel.Controller

	bulk    string
	current *chart.Spec

	ready   bool
	pending bool
}

// New creates a session. A nil init starts from the defaults with a single
// empty row. Entry colours in init seed the overrides.
func New(deps Dependencies, init *Initial) (*Session, error) {
	if deps.Builder == nil {
		deps.Builder = chart.NewBuilder(nil)
	}
	if deps.Logger == nil {
		deps.Logger = logginginfra.Discard
	}
	if deps.Notifier == nil {
		deps.Notifier = discardNotifier{}
	}
	deps.Logger = deps.Logger.With("layer", "application", "component", "session")

	if init == nil {
		init = &Initial{Options: chart.DefaultOptions()}
	}
	if err := init.Options.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		deps:      deps,
		model:     chart.NewSeriesModel(),
		options:   init.Options,
		overrides: chart.NewOverrides(),
		panels:    panel.NewController(init.Panels),
	}
	s.model.ReplaceAll(init.Entries)
	for _, e := range s.model.Entries() {
		if e.Color == "" {
			continue
		}
		if err := s.overrides.Set(e.ID, e.Color); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Model exposes the series model for read access.
func (s *Session) Model() *chart.SeriesModel { return s.model }

// Options returns a copy of the current options.
func (s *Session) Options() chart.Options { return s.options }

// Panels exposes the panel controller for read access.
func (s *Session) Panels() *panel.Controller { return s.panels }

// Current returns the spec produced by the last rebuild, or nil.
func (s *Session) Current() *chart.Spec { return s.current }

// Bulk returns the bulk editor text.
func (s *Session) Bulk() string { return s.bulk }

// SetBulk replaces the bulk editor text without applying it.
func (s *Session) SetBulk(text string) { s.bulk = text }

// Pending reports whether a rebuild was requested before Ready.
func (s *Session) Pending() bool { return s.pending }

// IsReady reports whether Ready has been called.
func (s *Session) IsReady() bool { return s.ready }

// Ready marks the rendering collaborators as available and performs the
// initial live rebuild. Later calls do nothing.
func (s *Session) Ready(ctx context.Context) error {
	if s.ready {
		return nil
	}
	s.ready = true
	s.pending = false
	s.deps.Logger.Debug(ctx, "session ready")
	return s.rebuild(ctx)
}

// Close disposes the last render.
func (s *Session) Close() {
	if s.deps.Renderer != nil && s.deps.Target != nil {
		s.deps.Renderer.Dispose(s.deps.Target)
	}
	s.current = nil
}

// rebuild runs a live build and renders it. Before Ready the request is
// only recorded.
func (s *Session) rebuild(ctx context.Context) error {
	if !s.ready {
		s.pending = true
		return nil
	}
	spec, err := s.deps.Builder.Build(s.model, s.options, s.overrides, chart.BuildLive)
	if err != nil {
		s.deps.Logger.Error(ctx, "live rebuild failed", "error", err)
		return err
	}
	return s.show(ctx, spec, chart.BuildLive)
}

func (s *Session) show(ctx context.Context, spec *chart.Spec, mode chart.BuildMode) error {
	if s.deps.Renderer != nil && s.deps.Target != nil {
		s.deps.Renderer.Dispose(s.deps.Target)
		if err := s.deps.Renderer.Render(ctx, spec, s.deps.Target); err != nil {
			s.deps.Logger.Error(ctx, "render failed", "mode", mode.String(), "error", err)
			return err
		}
	}
	s.current = spec
	publishEvent(ctx, s.deps.Events, s.deps.Logger, ports.EventChartRebuilt, map[string]interface{}{
		"mode":       mode.String(),
		"chart_type": string(spec.Type),
		"points":     spec.Len(),
	})
	return nil
}

// AddRow appends an empty row.
func (s *Session) AddRow(ctx context.Context) chart.Entry {
	e := s.model.Add()
	s.deps.Logger.Debug(ctx, "row added", "rows", s.model.Len())
	return e
}

// RemoveRow deletes the row at index. Removing the last row is refused with
// an error notification.
func (s *Session) RemoveRow(ctx context.Context, index int) error {
	err := s.model.Remove(index)
	switch {
	case err == nil:
		s.overrides.Prune(s.model)
		s.deps.Logger.Debug(ctx, "row removed", "row", index, "rows", s.model.Len())
		return nil
	case chart.IsCode(err, chart.ErrCodeInvariant):
		s.deps.Logger.Debug(ctx, "remove rejected", "row", index, "error", err)
		s.deps.Notifier.Notify(MsgCannotRemoveLast, ports.SeverityError)
		return err
	default:
		s.deps.Logger.Warn(ctx, "remove failed", "row", index, "error", err)
		return err
	}
}

// EditLabel replaces a row label.
func (s *Session) EditLabel(ctx context.Context, index int, text string) error {
	if err := s.model.SetLabel(index, text); err != nil {
		s.deps.Logger.Warn(ctx, "label edit rejected", "row", index, "error", err)
		return err
	}
	return nil
}

// EditValue replaces the raw value text of a row.
func (s *Session) EditValue(ctx context.Context, index int, text string) error {
	if err := s.model.SetValueText(index, text); err != nil {
		s.deps.Logger.Warn(ctx, "value edit rejected", "row", index, "error", err)
		return err
	}
	return nil
}

// Reset returns the model to a single empty row and rebuilds.
func (s *Session) Reset(ctx context.Context) error {
	s.model.Reset()
	s.overrides.Prune(s.model)
	publishEvent(ctx, s.deps.Events, s.deps.Logger, ports.EventDataReplaced, map[string]interface{}{
		"source": "reset",
		"rows":   s.model.Len(),
	})
	if err := s.rebuild(ctx); err != nil {
		return err
	}
	s.deps.Notifier.Notify(MsgDataReset, ports.SeveritySuccess)
	return nil
}

// Commit is the explicit update: it validates the whole model, then renders.
// Validation failures are reported to the user and returned.
func (s *Session) Commit(ctx context.Context) error {
	if !s.ready {
		s.pending = true
		return chart.NewError(chart.ErrCodeNotReady, "renderer not loaded", nil, nil)
	}

	spec, err := s.deps.Builder.Build(s.model, s.options, s.overrides, chart.BuildCommit)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, chart.ErrNoData):
			msg = MsgNeedData
		case errors.Is(err, chart.ErrPartialEntry):
			msg = MsgCompleteEntries
		default:
			s.deps.Logger.Error(ctx, "commit build failed", "error", err)
			return err
		}
		s.deps.Logger.Info(ctx, "commit rejected", "error", err, "rows", chart.PartialRows(err))
		publishEvent(ctx, s.deps.Events, s.deps.Logger, ports.EventCommitRejected, map[string]interface{}{
			"code": string(errorCode(err)),
			"rows": chart.PartialRows(err),
		})
		s.deps.Notifier.Notify(msg, ports.SeverityError)
		return err
	}

	if err := s.show(ctx, spec, chart.BuildCommit); err != nil {
		return err
	}
	s.deps.Logger.Info(ctx, "chart committed", "chart_type", string(spec.Type), "points", spec.Len())
	publishEvent(ctx, s.deps.Events, s.deps.Logger, ports.EventChartCommitted, map[string]interface{}{
		"chart_type": string(spec.Type),
		"points":     spec.Len(),
	})
	s.deps.Notifier.Notify(MsgChartUpdated, ports.SeveritySuccess)
	return nil
}

func errorCode(err error) chart.ErrorCode {
	var de *chart.DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return chart.ErrCodeInternal
}

// ActivatePanel switches the active panel. Activating the preview panel
// triggers a live rebuild. Disabled panels are ignored.
func (s *Session) ActivatePanel(ctx context.Context, id panel.ID) error {
	if !s.panels.Activate(id) {
		return nil
	}
	publishEvent(ctx, s.deps.Events, s.deps.Logger, ports.EventPanelChanged, map[string]interface{}{
		"panel": string(id),
	})
	if id == panel.Preview {
		return s.rebuild(ctx)
	}
	return nil
}

// SetPanelEnabled applies an external enable flag.
func (s *Session) SetPanelEnabled(ctx context.Context, id panel.ID, enabled bool) {
	if s.panels.SetEnabled(id, enabled) {
		publishEvent(ctx, s.deps.Events, s.deps.Logger, ports.EventPanelChanged, map[string]interface{}{
			"panel":  string(s.panels.Active()),
			"reason": "disabled",
		})
	}
}

// BulkText encodes the current renderable rows for the bulk editor and
// stores the result as the bulk buffer.
func (s *Session) BulkText() string {
	s.bulk = csvcodec.Encode(s.model)
	return s.bulk
}

// ApplyCSV replaces every row with the rows parsed from text. A leading
// "Label,Value" header, as written by ExportCSV, is skipped. Text without any
// data line is refused and leaves the model untouched. The chart is not
// rebuilt; the next Commit validates the imported rows.
func (s *Session) ApplyCSV(ctx context.Context, text string) (int, error) {
	entries := csvcodec.DecodeDocument(text)
	if len(entries) == 0 {
		s.deps.Notifier.Notify(MsgNoDataToApply, ports.SeverityError)
		return 0, chart.NewError(chart.ErrCodeNoData, "no data to apply", nil, nil)
	}
	s.model.ReplaceAll(entries)
	s.overrides.Prune(s.model)
	s.bulk = text

	s.deps.Logger.Info(ctx, "bulk data applied", "rows", len(entries))
	publishEvent(ctx, s.deps.Events, s.deps.Logger, ports.EventDataReplaced, map[string]interface{}{
		"source": "bulk",
		"rows":   len(entries),
	})
	s.deps.Notifier.Notify(rowsImported(len(entries)), ports.SeveritySuccess)
	return len(entries), nil
}

// ImportCSV loads a file into the bulk editor buffer. The model is not
// changed until ApplyCSV.
func (s *Session) ImportCSV(ctx context.Context, handle string) (string, error) {
	if s.deps.Reader == nil {
		return "", chart.NewError(chart.ErrCodeInternal, "no file reader configured", nil, nil)
	}
	text, err := s.deps.Reader.ReadText(ctx, handle)
	if err != nil {
		s.deps.Logger.Warn(ctx, "csv import failed", "file", handle, "error", err)
		return "", err
	}
	s.bulk = text
	s.deps.Logger.Info(ctx, "csv imported", "file", handle, "bytes", len(text))
	s.deps.Notifier.Notify(MsgCSVImported, ports.SeveritySuccess)
	return text, nil
}

// ExportPNG encodes the last rendered chart, building one first when nothing
// has been rendered yet. It returns the download filename and image bytes.
func (s *Session) ExportPNG(ctx context.Context) (string, []byte, error) {
	if s.deps.Exporter == nil {
		return "", nil, chart.NewError(chart.ErrCodeInternal, "no image exporter configured", nil, nil)
	}
	spec := s.current
	if spec == nil {
		built, err := s.deps.Builder.Build(s.model, s.options, s.overrides, chart.BuildLive)
		if err != nil {
			return "", nil, err
		}
		spec = built
	}

	data, err := s.deps.Exporter.Export(ctx, spec)
	if err != nil {
		s.deps.Logger.Error(ctx, "png export failed", "error", err)
		return "", nil, err
	}
	name := chart.Filename(s.options.Title, s.deps.Exporter.Extension())
	s.exported(ctx, name, len(data))
	s.deps.Notifier.Notify(MsgPNGDownloaded, ports.SeveritySuccess)
	return name, data, nil
}

// ExportCSV renders the downloadable CSV document and its filename.
func (s *Session) ExportCSV(ctx context.Context) (string, string) {
	doc := csvcodec.Document(s.model)
	name := chart.Filename(s.options.Title, "csv")
	s.exported(ctx, name, len(doc))
	s.deps.Notifier.Notify(MsgCSVDownloaded, ports.SeveritySuccess)
	return name, doc
}

func (s *Session) exported(ctx context.Context, name string, size int) {
	s.deps.Logger.Info(ctx, "chart exported", "file", name, "bytes", size)
	publishEvent(ctx, s.deps.Events, s.deps.Logger, ports.EventChartExported, map[string]interface{}{
		"file":  name,
		"bytes": size,
	})
}

type discardNotifier struct{}

func (discardNotifier) Notify(string, ports.Severity) {}
