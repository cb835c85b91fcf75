package chart

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ChartType names the kind of chart to draw.
type ChartType string

const (
	TypePie       ChartType = "pie"
	TypeDoughnut  ChartType = "doughnut"
	TypeBar       ChartType = "bar"
	TypeLine      ChartType = "line"
	TypePolarArea ChartType = "polarArea"
)

// ChartTypes lists the supported chart types in menu order.
var ChartTypes = []ChartType{TypePie, TypeDoughnut, TypeBar, TypeLine, TypePolarArea}

// LegendPosition places the legend around the plot area.
type LegendPosition string

const (
	LegendTop    LegendPosition = "top"
	LegendBottom LegendPosition = "bottom"
	LegendLeft   LegendPosition = "left"
	LegendRight  LegendPosition = "right"
)

// LegendPositions lists the supported legend positions in menu order.
var LegendPositions = []LegendPosition{LegendTop, LegendBottom, LegendLeft, LegendRight}

// ThemeName selects one of the registered palettes.
type ThemeName string

const (
	ThemeDefault ThemeName = "default"
	ThemePastel  ThemeName = "pastel"
	ThemeDark    ThemeName = "dark"
	ThemeVibrant ThemeName = "vibrant"
)

// ThemeNames lists the built-in themes in menu order.
var ThemeNames = []ThemeName{ThemeDefault, ThemePastel, ThemeVibrant, ThemeDark}

// AspectRatio is width divided by height. In YAML it may be written as a
// number or as "w:h".
type AspectRatio float64

const defaultAspectRatio = AspectRatio(16.0 / 9.0)

// AspectRatioChoice is one of the preset ratios offered in the settings panel.
type AspectRatioChoice struct {
	Label string
	Ratio AspectRatio
}

// AspectRatioChoices are the presets offered to the user.
var AspectRatioChoices = []AspectRatioChoice{
	{Label: "16:9", Ratio: defaultAspectRatio},
	{Label: "4:3", Ratio: AspectRatio(4.0 / 3.0)},
	{Label: "1:1", Ratio: 1},
	{Label: "2:1", Ratio: 2},
}

// ParseAspectRatio accepts "w:h" or a plain decimal.
func ParseAspectRatio(text string) (AspectRatio, error) {
	text = strings.TrimSpace(text)
	if w, h, ok := strings.Cut(text, ":"); ok {
		width, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
		if err != nil {
			return 0, fmt.Errorf("parse aspect ratio width: %w", err)
		}
		height, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
		if err != nil {
			return 0, fmt.Errorf("parse aspect ratio height: %w", err)
		}
		if height == 0 {
			return 0, fmt.Errorf("aspect ratio %q has zero height", text)
		}
		return AspectRatio(width / height), nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("parse aspect ratio: %w", err)
	}
	return AspectRatio(v), nil
}

// String renders the ratio as its preset label when one matches.
func (a AspectRatio) String() string {
	for _, choice := range AspectRatioChoices {
		if approxEqual(float64(choice.Ratio), float64(a)) {
			return choice.Label
		}
	}
	return strconv.FormatFloat(float64(a), 'f', 2, 64)
}

// UnmarshalYAML accepts both numeric and "w:h" forms.
func (a *AspectRatio) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseAspectRatio(value.Value)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML writes the ratio using its preset label when possible.
func (a AspectRatio) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

func approxEqual(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}

// Options are the display settings of a chart. They change only through
// explicit option events and are never inferred from data.
type Options struct {
	Type              ChartType      `yaml:"type" validate:"required,oneof=pie doughnut bar line polarArea"`
	Title             string         `yaml:"title" validate:"max=200"`
	ShowLegend        bool           `yaml:"show_legend"`
	LegendPosition    LegendPosition `yaml:"legend_position" validate:"required,oneof=top bottom left right"`
	AnimationEnabled  bool           `yaml:"animation"`
	DataLabelsEnabled bool           `yaml:"data_labels"`
	TooltipsEnabled   bool           `yaml:"tooltips"`
	AspectRatio       AspectRatio    `yaml:"aspect_ratio" validate:"gt=0"`
	Theme             ThemeName      `yaml:"theme" validate:"required,oneof=default pastel dark vibrant"`
	UseCustomColors   bool           `yaml:"use_custom_colors"`
}

// DefaultOptions returns the settings a new builder starts with.
func DefaultOptions() Options {
	return Options{
		Type:              TypePie,
		Title:             "Custom Chart",
		ShowLegend:        true,
		LegendPosition:    LegendTop,
		AnimationEnabled:  true,
		DataLabelsEnabled: false,
		TooltipsEnabled:   true,
		AspectRatio:       defaultAspectRatio,
		Theme:             ThemeDefault,
		UseCustomColors:   false,
	}
}

// Validate checks the options against the supported enumerations.
func (o Options) Validate() error {
	if err := validatorInstance().Struct(o); err != nil {
		return convertValidationError(err)
	}
	return nil
}
