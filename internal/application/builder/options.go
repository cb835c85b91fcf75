package builder

import (
	"context"

	"github.com/alexisbeaulieu97/chartbuilder/internal/domain/chart"
)

// setOption applies mutate to a copy of the options, validates the result
// and rebuilds. Invalid values leave the options untouched.
func (s *Session) setOption(ctx context.Context, name string, mutate func(*chart.Options)) error {
	next := s.options
	mutate(&next)
	if err := next.Validate(); err != nil {
		s.deps.Logger.Warn(ctx, "option rejected", "option", name, "error", err)
		return err
	}
	s.options = next
	s.deps.Logger.Debug(ctx, "option changed", "option", name)
	return s.rebuild(ctx)
}

// SetType changes the chart type.
func (s *Session) SetType(ctx context.Context, t chart.ChartType) error {
	return s.setOption(ctx, "type", func(o *chart.Options) { o.Type = t })
}

// SetTitle changes the chart title.
func (s *Session) SetTitle(ctx context.Context, title string) error {
	return s.setOption(ctx, "title", func(o *chart.Options) { o.Title = title })
}

// SetShowLegend toggles the legend.
func (s *Session) SetShowLegend(ctx context.Context, show bool) error {
	return s.setOption(ctx, "show_legend", func(o *chart.Options) { o.ShowLegend = show })
}

// SetLegendPosition moves the legend.
func (s *Session) SetLegendPosition(ctx context.Context, pos chart.LegendPosition) error {
	return s.setOption(ctx, "legend_position", func(o *chart.Options) { o.LegendPosition = pos })
}

// SetAnimation toggles animation.
func (s *Session) SetAnimation(ctx context.Context, on bool) error {
	return s.setOption(ctx, "animation", func(o *chart.Options) { o.AnimationEnabled = on })
}

// SetDataLabels toggles percentage data labels.
func (s *Session) SetDataLabels(ctx context.Context, on bool) error {
	return s.setOption(ctx, "data_labels", func(o *chart.Options) { o.DataLabelsEnabled = on })
}

// SetTooltips toggles tooltips.
func (s *Session) SetTooltips(ctx context.Context, on bool) error {
	return s.setOption(ctx, "tooltips", func(o *chart.Options) { o.TooltipsEnabled = on })
}

// SetAspectRatio changes the width to height ratio.
func (s *Session) SetAspectRatio(ctx context.Context, ratio chart.AspectRatio) error {
	return s.setOption(ctx, "aspect_ratio", func(o *chart.Options) { o.AspectRatio = ratio })
}

// SetTheme selects a palette.
func (s *Session) SetTheme(ctx context.Context, theme chart.ThemeName) error {
	return s.setOption(ctx, "theme", func(o *chart.Options) { o.Theme = theme })
}

// SetUseCustomColors switches between theme colours and overrides.
func (s *Session) SetUseCustomColors(ctx context.Context, on bool) error {
	return s.setOption(ctx, "use_custom_colors", func(o *chart.Options) { o.UseCustomColors = on })
}

// SetColor stores a colour override for the entry id. The chart is rebuilt
// only while custom colours are in use.
func (s *Session) SetColor(ctx context.Context, id, color string) error {
	if s.model.IndexOf(id) < 0 {
		return chart.NewError(chart.ErrCodeNotFound, "unknown entry", nil, map[string]interface{}{"id": id})
	}
	if err := s.overrides.Set(id, color); err != nil {
		s.deps.Logger.Warn(ctx, "colour rejected", "id", id, "error", err)
		return err
	}
	if !s.options.UseCustomColors {
		return nil
	}
	return s.rebuild(ctx)
}

// Swatch is one row of the style panel colour list.
type Swatch struct {
	ID     string
	Label  string
	Color  string
	Custom bool
}

// Swatches lists the colour every renderable row would be drawn with. Rows
// with an override report it whether or not custom colours are enabled, so
// the picker always shows the stored choice.
func (s *Session) Swatches() []Swatch {
	entries := s.model.RenderableSlice()
	theme := s.deps.Builder.ThemeColors(s.model, s.options.Theme)
	out := make([]Swatch, len(entries))
	for i, e := range entries {
		sw := Swatch{ID: e.ID, Label: e.TrimmedLabel(), Color: theme[i]}
		if c, ok := s.overrides.Get(e.ID); ok {
			sw.Color = c
			sw.Custom = true
		}
		out[i] = sw
	}
	return out
}
