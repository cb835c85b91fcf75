package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/chartbuilder/internal/domain/chart"
	"github.com/alexisbeaulieu97/chartbuilder/internal/domain/panel"
	"github.com/alexisbeaulieu97/chartbuilder/internal/ports"
	apperrors "github.com/alexisbeaulieu97/chartbuilder/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Row is one initial data row of a chart definition.
type Row struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Color string `yaml:"color,omitempty" validate:"hexcolor_opt"`
}

// Definition is the YAML document a builder session can be seeded from.
type Definition struct {
	Options chart.Options   `yaml:"options"`
	Panels  map[string]bool `yaml:"panels,omitempty" validate:"dive,keys,oneof=data settings style preview,endkeys"`
	Rows    []Row           `yaml:"rows,omitempty" validate:"dive"`
}

// DefaultDefinition returns a definition carrying the default options and no
// rows.
func DefaultDefinition() *Definition {
	return &Definition{Options: chart.DefaultOptions()}
}

// PanelFlags converts the panel map into controller input.
func (d *Definition) PanelFlags() map[panel.ID]bool {
	flags := make(map[panel.ID]bool, len(d.Panels))
	for name, enabled := range d.Panels {
		flags[panel.ID(name)] = enabled
	}
	return flags
}

// Entries converts rows into model entries with fresh ids.
func (d *Definition) Entries() []chart.Entry {
	entries := make([]chart.Entry, len(d.Rows))
	for i, r := range d.Rows {
		e := chart.NewEntry(r.Label, r.Value)
		e.Color = r.Color
		entries[i] = e
	}
	return entries
}

// YAMLLoader reads chart definitions from disk.
type YAMLLoader struct {
	logger ports.Logger
}

// NewYAMLLoader returns a loader logging through logger.
func NewYAMLLoader(logger ports.Logger) *YAMLLoader {
	return &YAMLLoader{logger: logger}
}

// Load reads and validates the definition at path.
func (l *YAMLLoader) Load(ctx context.Context, path string) (*Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.logDebug(ctx, "loading chart definition", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		l.logError(ctx, "failed to read chart definition", "path", path, "error", err)
		return nil, apperrors.NewParseError(path, 0, err)
	}

	def, err := Parse(data)
	if err != nil {
		var parseErr *apperrors.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}
		l.logError(ctx, "chart definition rejected", "path", path, "error", err)
		return nil, err
	}

	l.logInfo(ctx, "chart definition loaded", "path", path, "rows", len(def.Rows), "chart_type", def.Options.Type)
	return def, nil
}

// Parse decodes a definition document. Options missing from the document keep
// their defaults.
func Parse(data []byte) (*Definition, error) {
	def := DefaultDefinition()
	if err := yaml.Unmarshal(data, def); err != nil {
		return nil, apperrors.NewParseError("", extractLine(err), err)
	}
	if err := Validate(def); err != nil {
		return nil, err
	}
	return def, nil
}

// Validate checks the definition with the shared chart validator.
func Validate(def *Definition) error {
	if def == nil {
		return apperrors.NewValidationError("definition", "definition is nil", nil)
	}
	if err := chart.GetValidator().Struct(def); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := ve.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		return apperrors.NewValidationError(field, fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag()), err)
	}
	return apperrors.NewValidationError("definition", err.Error(), err)
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func (l *YAMLLoader) logDebug(ctx context.Context, msg string, fields ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(ctx, msg, fields...)
}

func (l *YAMLLoader) logInfo(ctx context.Context, msg string, fields ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Info(ctx, msg, fields...)
}

func (l *YAMLLoader) logError(ctx context.Context, msg string, fields ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Error(ctx, msg, fields...)
}
