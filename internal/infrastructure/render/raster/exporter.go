// Package raster exports chart specs as PNG images using go-chart.
package raster

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	domain "github.com/alexisbeaulieu97/chartbuilder/internal/domain/chart"
	"github.com/alexisbeaulieu97/chartbuilder/internal/ports"
)

const defaultWidth = 1024

type pngRenderer interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Exporter implements ports.ImageExporter.
type Exporter struct {
	Width  int
	logger ports.Logger
}

// New returns an exporter logging through logger, which may be nil.
func New(logger ports.Logger) *Exporter {
	return &Exporter{Width: defaultWidth, logger: logger}
}

// Extension implements ports.ImageExporter.
func (e *Exporter) Extension() string {
	return "png"
}

// Export draws spec into a PNG image.
func (e *Exporter) Export(ctx context.Context, spec *domain.Spec) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if spec.Empty() {
		return nil, domain.NewError(domain.ErrCodeRender, "nothing to export", nil, nil)
	}

	width, height := e.size(spec.AspectRatio)

	var r pngRenderer
	switch spec.Type {
	case domain.TypePie, domain.TypePolarArea:
		r = chart.PieChart{Title: spec.Title, Width: width, Height: height, Values: values(spec)}
	case domain.TypeDoughnut:
		r = chart.DonutChart{Title: spec.Title, Width: width, Height: height, Values: values(spec)}
	case domain.TypeBar:
		r = chart.BarChart{
			Title:      spec.Title,
			Width:      width,
			Height:     height,
			BarWidth:   barWidth(width, spec.Len()),
			Background: chart.Style{Padding: chart.Box{Top: 40}},
			Bars:       values(spec),
		}
	case domain.TypeLine:
		r = lineChart(spec, width, height)
	default:
		return nil, domain.NewError(domain.ErrCodeRender, fmt.Sprintf("unsupported chart type %q", spec.Type), nil, nil)
	}

	var buf bytes.Buffer
	if err := r.Render(chart.PNG, &buf); err != nil {
		return nil, domain.NewError(domain.ErrCodeRender, "render png", err, map[string]interface{}{"chart_type": string(spec.Type)})
	}

	if e.logger != nil {
		e.logger.Debug(ctx, "chart exported", "format", e.Extension(), "bytes", buf.Len(), "width", width, "height", height)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) size(aspect domain.AspectRatio) (int, int) {
	width := e.Width
	if width <= 0 {
		width = defaultWidth
	}
	if aspect <= 0 {
		aspect = domain.AspectRatio(16.0 / 9.0)
	}
	return width, int(float64(width) / float64(aspect))
}

func barWidth(width, count int) int {
	if count <= 0 {
		return 0
	}
	w := width / (count * 2)
	if w > 120 {
		w = 120
	}
	if w < 4 {
		w = 4
	}
	return w
}

// values converts the spec series into go-chart values. Data labels, when
// enabled, carry the value's share of the total.
func values(spec *domain.Spec) []chart.Value {
	out := make([]chart.Value, spec.Len())
	for i := range spec.Labels {
		label := spec.Labels[i]
		if spec.DataLabels.Enabled {
			label = fmt.Sprintf("%s %s", label, spec.DataLabels.Format(spec.Values[i]))
		}
		out[i] = chart.Value{
			Value: spec.Values[i],
			Label: label,
			Style: chart.Style{
				FillColor:   color(spec.Colors[i]),
				StrokeColor: color(spec.BorderColors[i]),
				StrokeWidth: 1,
				FontColor:   color(spec.DataLabels.Color),
			},
		}
	}
	return out
}

func lineChart(spec *domain.Spec, width, height int) *chart.Chart {
	n := spec.Len()
	xs := make([]float64, n)
	ticks := make([]chart.Tick, n)
	minY, maxY := 0.0, 0.0
	for i, v := range spec.Values {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: spec.Labels[i]}
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	if minY == maxY {
		maxY = minY + 1
	}

	ch := &chart.Chart{
		Title:  spec.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(n) - 0.5},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: minY, Max: maxY},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    spec.Title,
				XValues: xs,
				YValues: spec.Values,
				Style: chart.Style{
					StrokeColor: color(spec.BorderColors[0]),
					StrokeWidth: 2,
					DotColor:    color(spec.Colors[0]),
					DotWidth:    4,
				},
			},
		},
	}
	if spec.Legend.Show {
		ch.Elements = []chart.Renderable{chart.Legend(ch)}
	}
	return ch
}

func color(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

var _ ports.ImageExporter = (*Exporter)(nil)
