package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommitRejectsPartialRows(t *testing.T) {
	m := modelOf([2]string{"A", "5"}, [2]string{"B", ""})
	b := NewBuilder(nil)

	_, err := b.Build(m, DefaultOptions(), nil, BuildCommit)
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodePartialEntry))
	assert.Equal(t, []int{1}, PartialRows(err))

	spec, err := b.Build(m, DefaultOptions(), nil, BuildLive)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, spec.Labels)
	assert.Equal(t, []float64{5}, spec.Values)
}

func TestBuildTreatsNonFiniteValuesAsPartial(t *testing.T) {
	m := modelOf([2]string{"A", "NaN"}, [2]string{"B", "5"}, [2]string{"C", "inf"})
	b := NewBuilder(nil)

	_, err := b.Build(m, DefaultOptions(), nil, BuildCommit)
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodePartialEntry))
	assert.Equal(t, []int{0, 2}, PartialRows(err))

	spec, err := b.Build(m, DefaultOptions(), nil, BuildLive)
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, spec.Values)
	assert.Equal(t, 5.0, spec.DataLabels.Total)
	assert.Equal(t, []string{"100.0%"}, spec.FormattedValues())
}

func TestBuildEmptyModel(t *testing.T) {
	b := NewBuilder(nil)

	_, err := b.Build(NewSeriesModel(), DefaultOptions(), nil, BuildCommit)
	assert.True(t, IsCode(err, ErrCodeNoData))

	spec, err := b.Build(NewSeriesModel(), DefaultOptions(), nil, BuildLive)
	require.NoError(t, err)
	assert.True(t, spec.Empty())
	assert.Empty(t, spec.Values)
	assert.Empty(t, spec.Colors)
}

func TestBuildPopulatesSpec(t *testing.T) {
	m := modelOf([2]string{" A ", "25"}, [2]string{"B", "75"})
	opts := DefaultOptions()
	opts.Type = TypeBar
	opts.Title = "Revenue"
	opts.LegendPosition = LegendBottom
	opts.DataLabelsEnabled = true
	opts.TooltipsEnabled = false
	opts.Theme = ThemeVibrant

	spec, err := NewBuilder(nil).Build(m, opts, nil, BuildCommit)
	require.NoError(t, err)

	assert.Equal(t, TypeBar, spec.Type)
	assert.Equal(t, "Revenue", spec.Title)
	assert.Equal(t, []string{"A", "B"}, spec.Labels)
	assert.Equal(t, []string{"#ff1744", "#f50057"}, spec.Colors)
	assert.Equal(t, []string{DefaultBorderColor, DefaultBorderColor}, spec.BorderColors)
	assert.Equal(t, Legend{Show: true, Position: LegendBottom}, spec.Legend)
	assert.True(t, spec.DataLabels.Enabled)
	assert.False(t, spec.Tooltips)
	assert.Equal(t, 100.0, spec.Total())
	assert.Equal(t, []string{"25.0%", "75.0%"}, spec.FormattedValues())
}

func TestBuildLineBorderUsesFirstColour(t *testing.T) {
	m := modelOf([2]string{"A", "1"}, [2]string{"B", "2"})
	opts := DefaultOptions()
	opts.Type = TypeLine

	spec, err := NewBuilder(nil).Build(m, opts, nil, BuildLive)
	require.NoError(t, err)
	assert.Equal(t, []string{spec.Colors[0], spec.Colors[0]}, spec.BorderColors)
}

func TestBuildCustomColours(t *testing.T) {
	m := modelOf([2]string{"A", "1"}, [2]string{"", ""}, [2]string{"B", "2"})
	entries := m.Entries()
	overrides := NewOverrides()
	require.NoError(t, overrides.Set(entries[2].ID, "#010203"))

	opts := DefaultOptions()
	b := NewBuilder(nil)

	themed, err := b.Build(m, opts, overrides, BuildLive)
	require.NoError(t, err)
	assert.Equal(t, []string{"#4285f4", "#db4437"}, themed.Colors)

	opts.UseCustomColors = true
	custom, err := b.Build(m, opts, overrides, BuildLive)
	require.NoError(t, err)
	assert.Equal(t, []string{"#4285f4", "#010203"}, custom.Colors, "missing overrides default to the theme colour")
}

func TestBuildIsIdempotent(t *testing.T) {
	m := modelOf([2]string{"A", "1"}, [2]string{"B", "2"})
	b := NewBuilder(nil)

	first, err := b.Build(m, DefaultOptions(), nil, BuildLive)
	require.NoError(t, err)
	second, err := b.Build(m, DefaultOptions(), nil, BuildLive)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
}

func TestBuildDefaultsAspectRatio(t *testing.T) {
	opts := DefaultOptions()
	opts.AspectRatio = 0

	spec, err := NewBuilder(nil).Build(nil, opts, nil, BuildLive)
	require.NoError(t, err)
	assert.Equal(t, defaultAspectRatio, spec.AspectRatio)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "25.0%", FormatPercent(25, 100))
	assert.Equal(t, "75.0%", FormatPercent(75, 100))
	assert.Equal(t, "33.3%", FormatPercent(1, 3))
	assert.Equal(t, "0.0%", FormatPercent(0, 0))
	assert.Equal(t, "0.0%", FormatPercent(5, 0))

	labels := DataLabels{Total: 0}
	assert.Equal(t, "0.0%", labels.Format(0))
}

func TestThemeColors(t *testing.T) {
	m := modelOf([2]string{"A", "1"}, [2]string{"B", ""}, [2]string{"C", "3"})

	colors := NewBuilder(nil).ThemeColors(m, ThemeDark)
	assert.Equal(t, []string{"#1f1f1f", "#424242"}, colors)
}

func TestBuildModeString(t *testing.T) {
	assert.Equal(t, "commit", BuildCommit.String())
	assert.Equal(t, "live", BuildLive.String())
}
