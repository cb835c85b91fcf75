// Package echarts renders chart specs as standalone interactive HTML pages
// using go-echarts.
package echarts

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/alexisbeaulieu97/chartbuilder/internal/domain/chart"
	"github.com/alexisbeaulieu97/chartbuilder/internal/ports"
)

const defaultWidth = 900

type page interface {
	Render(w io.Writer) error
}

type resetter interface {
	Reset()
}

// Renderer implements ports.Renderer. It remembers which target holds a
// rendered page so the page can be disposed before the next one is attached.
type Renderer struct {
	Width  int
	logger ports.Logger

	mu    sync.Mutex
	bound map[string]int
	seq   int
}

// New returns a renderer logging through logger, which may be nil.
func New(logger ports.Logger) *Renderer {
	return &Renderer{Width: defaultWidth, logger: logger, bound: make(map[string]int)}
}

// Render writes spec to target as an HTML page.
func (r *Renderer) Render(ctx context.Context, spec *chart.Spec, target ports.Target) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if spec == nil {
		return chart.NewError(chart.ErrCodeRender, "no chart spec", nil, nil)
	}

	r.Dispose(target)

	p, err := r.page(spec)
	if err != nil {
		return err
	}
	if err := p.Render(target); err != nil {
		return chart.NewError(chart.ErrCodeRender, "render html", err, map[string]interface{}{"target": target.ID()})
	}

	r.mu.Lock()
	r.seq++
	r.bound[target.ID()] = r.seq
	instance := r.seq
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Debug(ctx, "chart rendered", "target", target.ID(), "instance", instance, "chart_type", spec.Type, "points", spec.Len())
	}
	return nil
}

// Dispose releases the page bound to target, clearing the target when it
// supports Reset.
func (r *Renderer) Dispose(target ports.Target) {
	if target == nil {
		return
	}
	r.mu.Lock()
	_, ok := r.bound[target.ID()]
	delete(r.bound, target.ID())
	r.mu.Unlock()

	if !ok {
		return
	}
	if rs, ok := target.(resetter); ok {
		rs.Reset()
	}
}

// Bound reports whether a page is currently attached to the target id.
func (r *Renderer) Bound(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.bound[id]
	return ok
}

func (r *Renderer) page(spec *chart.Spec) (page, error) {
	switch spec.Type {
	case chart.TypePie, chart.TypeDoughnut, chart.TypePolarArea:
		return r.pie(spec), nil
	case chart.TypeBar:
		return r.bar(spec), nil
	case chart.TypeLine:
		return r.line(spec), nil
	default:
		return nil, chart.NewError(chart.ErrCodeRender, fmt.Sprintf("unsupported chart type %q", spec.Type), nil, nil)
	}
}

func (r *Renderer) globalOptions(spec *chart.Spec) []charts.GlobalOpts {
	width := r.Width
	if width <= 0 {
		width = defaultWidth
	}
	height := int(float64(width) / float64(spec.AspectRatio))

	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: spec.Title,
			Width:     fmt.Sprintf("%dpx", width),
			Height:    fmt.Sprintf("%dpx", height),
		}),
		charts.WithTitleOpts(opts.Title{Title: spec.Title, Left: "center"}),
		charts.WithLegendOpts(legendOptions(spec.Legend)),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(spec.Tooltips), Trigger: "item"}),
		charts.WithAnimation(spec.Animation),
	}
}

func legendOptions(legend chart.Legend) opts.Legend {
	l := opts.Legend{Show: opts.Bool(legend.Show)}
	switch legend.Position {
	case chart.LegendBottom:
		l.Bottom = "0"
		l.Left = "center"
	case chart.LegendLeft:
		l.Left = "0"
		l.Top = "middle"
		l.Orient = "vertical"
	case chart.LegendRight:
		l.Right = "0"
		l.Top = "middle"
		l.Orient = "vertical"
	default:
		l.Top = "30"
		l.Left = "center"
	}
	return l
}

func (r *Renderer) pie(spec *chart.Spec) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(r.globalOptions(spec)...)

	data := make([]opts.PieData, spec.Len())
	for i := range spec.Labels {
		data[i] = opts.PieData{
			Name:      spec.Labels[i],
			Value:     spec.Values[i],
			ItemStyle: &opts.ItemStyle{Color: spec.Colors[i], BorderColor: spec.BorderColors[i]},
		}
	}

	series := []charts.SeriesOpts{
		charts.WithLabelOpts(dataLabel(spec, "")),
	}
	switch spec.Type {
	case chart.TypeDoughnut:
		series = append(series, charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}))
	case chart.TypePolarArea:
		series = append(series, charts.WithPieChartOpts(opts.PieChart{RoseType: "area"}))
	}

	pie.AddSeries(spec.Title, data, series...)
	return pie
}

func (r *Renderer) bar(spec *chart.Spec) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(r.globalOptions(spec)...)

	data := make([]opts.BarData, spec.Len())
	for i := range spec.Values {
		data[i] = opts.BarData{
			Value:     spec.Values[i],
			ItemStyle: &opts.ItemStyle{Color: spec.Colors[i], BorderColor: spec.BorderColors[i]},
		}
	}

	bar.SetXAxis(spec.Labels).AddSeries(spec.Title, data,
		charts.WithLabelOpts(dataLabel(spec, "top")),
	)
	return bar
}

func (r *Renderer) line(spec *chart.Spec) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(r.globalOptions(spec)...)

	data := make([]opts.LineData, spec.Len())
	for i := range spec.Values {
		data[i] = opts.LineData{Value: spec.Values[i]}
	}

	series := []charts.SeriesOpts{
		charts.WithLabelOpts(dataLabel(spec, "top")),
	}
	if len(spec.Colors) > 0 {
		series = append(series,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: spec.Colors[0]}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: spec.BorderColors[0]}),
		)
	}

	line.SetXAxis(spec.Labels).AddSeries(spec.Title, data, series...)
	return line
}

// dataLabel shows the spec's own percentage text on every point. The page
// looks the text up by data index so the browser never recomputes it.
func dataLabel(spec *chart.Spec, position string) opts.Label {
	formatted := spec.FormattedValues()
	quoted := make([]string, len(formatted))
	for i, text := range formatted {
		quoted[i] = "'" + text + "'"
	}

	return opts.Label{
		Show:      opts.Bool(spec.DataLabels.Enabled),
		Color:     spec.DataLabels.Color,
		Position:  position,
		Formatter: opts.FuncOpts("function (params) { return [" + strings.Join(quoted, ",") + "][params.dataIndex]; }"),
	}
}

var _ ports.Renderer = (*Renderer)(nil)
