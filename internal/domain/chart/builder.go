package chart

// BuildMode tells the builder why a rebuild was requested.
type BuildMode int

const (
	// BuildLive is an option-driven rebuild for the live preview. It never
	// validates and renders whatever rows are renderable, including none.
	BuildLive BuildMode = iota
	// BuildCommit is the explicit user update. It fails closed on missing
	// data or partial rows.
	BuildCommit
)

// String implements fmt.Stringer.
func (m BuildMode) String() string {
	switch m {
	case BuildCommit:
		return "commit"
	default:
		return "live"
	}
}

// Builder assembles chart specs from a model, options and colour overrides.
type Builder struct {
	resolver *Resolver
}

// NewBuilder returns a builder resolving colours with resolver. A nil
// resolver uses the default palettes.
func NewBuilder(resolver *Resolver) *Builder {
	if resolver == nil {
		resolver = NewResolver(nil)
	}
	return &Builder{resolver: resolver}
}

// Resolver exposes the colour resolver used by the builder.
func (b *Builder) Resolver() *Resolver {
	return b.resolver
}

// Build produces a fresh Spec. Commit builds validate the whole model first;
// live builds never do.
func (b *Builder) Build(model *SeriesModel, opts Options, overrides *Overrides, mode BuildMode) (*Spec, error) {
	if model == nil {
		model = NewSeriesModel()
	}
	if mode == BuildCommit {
		if err := Validate(model).Err(); err != nil {
			return nil, err
		}
	}

	entries := model.RenderableSlice()
	labels := make([]string, len(entries))
	values := make([]float64, len(entries))
	var total float64
	for i, e := range entries {
		labels[i] = e.TrimmedLabel()
		values[i] = e.Number()
		total += values[i]
	}

	colors := b.resolver.Colors(opts.Theme, len(entries), overrides.ForEntries(entries), opts.UseCustomColors)

	aspect := opts.AspectRatio
	if aspect <= 0 {
		aspect = defaultAspectRatio
	}

	return &Spec{
		Type:         opts.Type,
		Title:        opts.Title,
		Labels:       labels,
		Values:       values,
		Colors:       colors,
		BorderColors: borderColors(opts.Type, colors),
		Legend: Legend{
			Show:     opts.ShowLegend,
			Position: opts.LegendPosition,
		},
		Animation: opts.AnimationEnabled,
		DataLabels: DataLabels{
			Enabled: opts.DataLabelsEnabled,
			Color:   DefaultDataLabelColor,
			Total:   total,
		},
		Tooltips:    opts.TooltipsEnabled,
		AspectRatio: aspect,
	}, nil
}

// ThemeColors returns the colours the theme would assign to every renderable
// row, ignoring overrides. The style panel uses it to seed colour pickers.
func (b *Builder) ThemeColors(model *SeriesModel, theme ThemeName) []string {
	count := 0
	for range model.Renderable() {
		count++
	}
	return b.resolver.Colors(theme, count, nil, false)
}

func borderColors(chartType ChartType, colors []string) []string {
	out := make([]string, len(colors))
	for i := range out {
		if chartType == TypeLine {
			out[i] = colors[0]
			continue
		}
		out[i] = DefaultBorderColor
	}
	return out
}
