package chart

import "fmt"

// Fixed colours applied outside the theme palette.
const (
	DefaultBorderColor    = "#ffffff"
	DefaultDataLabelColor = "#fff"
)

// Legend configures legend visibility and placement.
type Legend struct {
	Show     bool
	Position LegendPosition
}

// DataLabels configures per-value labels drawn on the chart.
type DataLabels struct {
	Enabled bool
	Color   string
	// Total is the sum of all values in the owning spec.
	Total float64
}

// Format renders value as a share of the spec total with one decimal place.
func (d DataLabels) Format(value float64) string {
	return FormatPercent(value, d.Total)
}

// FormatPercent formats value/total as a percentage with one decimal place.
// A zero total yields "0.0%" instead of dividing by zero.
func FormatPercent(value, total float64) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", value/total*100)
}

// Spec is the renderer-agnostic description of a chart. A new value is built
// on every rebuild; it is never mutated in place. Labels, Values, Colors and
// BorderColors always have the same length.
type Spec struct {
	Type         ChartType
	Title        string
	Labels       []string
	Values       []float64
	Colors       []string
	BorderColors []string
	Legend       Legend
	Animation    bool
	DataLabels   DataLabels
	Tooltips     bool
	AspectRatio  AspectRatio
}

// Len returns the number of data points.
func (s *Spec) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Labels)
}

// Empty reports whether the spec has no data points.
func (s *Spec) Empty() bool {
	return s.Len() == 0
}

// Total returns the sum of all values.
func (s *Spec) Total() float64 {
	if s == nil {
		return 0
	}
	return s.DataLabels.Total
}

// FormattedValues applies the data label formatter to every value.
func (s *Spec) FormattedValues() []string {
	out := make([]string, s.Len())
	for i, v := range s.Values {
		out[i] = s.DataLabels.Format(v)
	}
	return out
}
