package chart

import (
	"github.com/lucasb-eyer/go-colorful"
)

// PaletteSize is the number of colours every theme palette carries.
const PaletteSize = 10

// Fallback colour parameters used when a theme has no registered palette.
const (
	fallbackSaturation = 0.7
	fallbackLightness  = 0.5
)

// Palette is a fixed ordered set of colours for one theme.
type Palette [PaletteSize]string

// Color returns the palette colour for a series index, cycling every
// PaletteSize entries.
func (p Palette) Color(index int) string {
	if index < 0 {
		index = -index
	}
	return p[index%PaletteSize]
}

// PaletteRegistry maps theme names to palettes. It is read-only once built
// and is passed explicitly to the resolver.
type PaletteRegistry map[ThemeName]Palette

// DefaultPalettes returns the built-in palettes.
func DefaultPalettes() PaletteRegistry {
	return PaletteRegistry{
		ThemeDefault: {
			"#4285f4", "#db4437", "#f4b400", "#0f9d58", "#673ab7",
			"#3f51b5", "#039be5", "#009688", "#ff5722", "#795548",
		},
		ThemePastel: {
			"#ffb3ba", "#ffdfba", "#ffffba", "#baffc9", "#bae1ff",
			"#e2baff", "#f7baff", "#ffbae1", "#bafffc", "#d4ffba",
		},
		ThemeDark: {
			"#1f1f1f", "#424242", "#616161", "#757575", "#9e9e9e",
			"#2f2f2f", "#404040", "#505050", "#606060", "#707070",
		},
		ThemeVibrant: {
			"#ff1744", "#f50057", "#d500f9", "#651fff", "#3d5afe",
			"#2979ff", "#00b0ff", "#00bfa5", "#00c853", "#ffd600",
		},
	}
}

// Lookup returns the palette registered for theme.
func (r PaletteRegistry) Lookup(theme ThemeName) (Palette, bool) {
	p, ok := r[theme]
	return p, ok
}

// Resolver turns a theme, a series count and optional overrides into a
// concrete colour sequence.
type Resolver struct {
	palettes PaletteRegistry
}

// NewResolver builds a resolver over the supplied registry. A nil registry
// uses DefaultPalettes.
func NewResolver(palettes PaletteRegistry) *Resolver {
	if palettes == nil {
		palettes = DefaultPalettes()
	}
	return &Resolver{palettes: palettes}
}

// ThemeColor returns the colour the theme assigns to index in a series of
// count entries.
func (r *Resolver) ThemeColor(theme ThemeName, index, count int) string {
	if palette, ok := r.palettes.Lookup(theme); ok {
		return palette.Color(index)
	}
	return FallbackColor(index, count)
}

// Colors returns exactly count colours. When useCustom is set, a non-empty
// overrides[i] replaces the theme colour at i.
func (r *Resolver) Colors(theme ThemeName, count int, overrides []string, useCustom bool) []string {
	if count <= 0 {
		return []string{}
	}
	colors := make([]string, count)
	for i := range colors {
		if useCustom && i < len(overrides) && overrides[i] != "" {
			colors[i] = overrides[i]
			continue
		}
		colors[i] = r.ThemeColor(theme, i, count)
	}
	return colors
}

// FallbackColor synthesises a deterministic colour by spreading hues evenly
// around the colour wheel.
func FallbackColor(index, count int) string {
	if count <= 0 {
		count = 1
	}
	hue := 360 * float64(index) / float64(count)
	return colorful.Hsl(hue, fallbackSaturation, fallbackLightness).Hex()
}

// Overrides holds user-chosen colours keyed by stable entry id, so removing
// or reordering rows never moves a colour onto a different label.
type Overrides struct {
	byID map[string]string
}

// NewOverrides returns an empty override set.
func NewOverrides() *Overrides {
	return &Overrides{byID: make(map[string]string)}
}

// Set assigns a colour to an entry id.
func (o *Overrides) Set(id, color string) error {
	if o == nil {
		return NewError(ErrCodeInternal, "overrides not initialised", nil, nil)
	}
	if id == "" {
		return NewError(ErrCodeNotFound, "entry id is required", nil, nil)
	}
	if !ValidColor(color) {
		return newInvalidOptionError("color", "colour must be #rrggbb", nil).WithContext(map[string]interface{}{"value": color})
	}
	o.byID[id] = color
	return nil
}

// Get returns the override for id, if any.
func (o *Overrides) Get(id string) (string, bool) {
	if o == nil {
		return "", false
	}
	c, ok := o.byID[id]
	return c, ok
}

// Clear removes the override for id.
func (o *Overrides) Clear(id string) {
	if o == nil {
		return
	}
	delete(o.byID, id)
}

// Len returns the number of stored overrides.
func (o *Overrides) Len() int {
	if o == nil {
		return 0
	}
	return len(o.byID)
}

// Prune drops overrides whose entry no longer exists in model.
func (o *Overrides) Prune(model *SeriesModel) {
	if o == nil || model == nil {
		return
	}
	for id := range o.byID {
		if model.IndexOf(id) < 0 {
			delete(o.byID, id)
		}
	}
}

// ForEntries returns the override sequence aligned with entries; missing
// overrides are empty strings.
func (o *Overrides) ForEntries(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		if c, ok := o.Get(e.ID); ok {
			out[i] = c
		}
	}
	return out
}
