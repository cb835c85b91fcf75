package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, TypePie, opts.Type)
	assert.Equal(t, "Custom Chart", opts.Title)
	assert.True(t, opts.ShowLegend)
	assert.Equal(t, LegendTop, opts.LegendPosition)
	assert.True(t, opts.AnimationEnabled)
	assert.False(t, opts.DataLabelsEnabled)
	assert.True(t, opts.TooltipsEnabled)
	assert.InDelta(t, 16.0/9.0, float64(opts.AspectRatio), 1e-9)
	assert.Equal(t, ThemeDefault, opts.Theme)
	assert.False(t, opts.UseCustomColors)
	require.NoError(t, opts.Validate())
}

func TestOptionsValidateRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		field  string
	}{
		{"type", func(o *Options) { o.Type = "radar" }, "type"},
		{"legend", func(o *Options) { o.LegendPosition = "middle" }, "legend_position"},
		{"theme", func(o *Options) { o.Theme = "neon" }, "theme"},
		{"aspect", func(o *Options) { o.AspectRatio = 0 }, "aspect_ratio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)

			err := opts.Validate()

			require.Error(t, err)
			var domainErr *DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, ErrCodeInvalidOpt, domainErr.Code)
			assert.Equal(t, tt.field, domainErr.Context["field"])
		})
	}
}

func TestParseAspectRatio(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"16:9", 16.0 / 9.0, false},
		{"4 : 3", 4.0 / 3.0, false},
		{"1.5", 1.5, false},
		{"1:0", 0, true},
		{"wide", 0, true},
		{"a:1", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAspectRatio(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, float64(got), 1e-9)
		})
	}
}

func TestAspectRatioString(t *testing.T) {
	assert.Equal(t, "16:9", DefaultOptions().AspectRatio.String())
	assert.Equal(t, "1:1", AspectRatio(1).String())
	assert.Equal(t, "1.25", AspectRatio(1.25).String())
}

func TestOptionsYAML(t *testing.T) {
	src := `
type: bar
title: Sales
show_legend: false
legend_position: right
aspect_ratio: "4:3"
theme: pastel
use_custom_colors: true
`
	opts := DefaultOptions()
	require.NoError(t, yaml.Unmarshal([]byte(src), &opts))

	assert.Equal(t, TypeBar, opts.Type)
	assert.Equal(t, "Sales", opts.Title)
	assert.False(t, opts.ShowLegend)
	assert.Equal(t, LegendRight, opts.LegendPosition)
	assert.Equal(t, "4:3", opts.AspectRatio.String())
	assert.Equal(t, ThemePastel, opts.Theme)
	assert.True(t, opts.UseCustomColors)
	assert.True(t, opts.TooltipsEnabled, "unset fields keep defaults")

	out, err := yaml.Marshal(opts)
	require.NoError(t, err)
	var back Options
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, opts, back)
}

func TestValidColor(t *testing.T) {
	assert.True(t, ValidColor("#ff0000"))
	assert.True(t, ValidColor("#FFAA00"))
	assert.False(t, ValidColor("ff0000"))
	assert.False(t, ValidColor("#fff"))
	assert.False(t, ValidColor("#gggggg"))
}
