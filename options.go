package brandkit

// Option configures a Renderer during creation.
//
// Example:
//
//	// The ShiftCrew logo at 300 DPI, fonts from the system
//	r, err := brandkit.NewRenderer()
//
//	// A quick low-resolution preview using only embedded fonts
//	r, err := brandkit.NewRenderer(brandkit.WithDPI(72), brandkit.WithFontDirs())
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	layout   Layout
	dpi      float64  // 0 keeps layout.DPI
	pad      *float64 // nil keeps layout.Pad
	fontDirs []string // nil means DefaultFontDirs
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{layout: DefaultLayout()}
}

// WithLayout replaces the default ShiftCrew layout.
func WithLayout(l Layout) Option {
	return func(o *options) {
		o.layout = l
	}
}

// WithDPI overrides the layout's resolution. Point sizes and padding scale
// with it, so the logo keeps its proportions.
func WithDPI(dpi float64) Option {
	return func(o *options) {
		o.dpi = dpi
	}
}

// WithPadding overrides the background margin, in inches, kept around the
// cropped content.
func WithPadding(inches float64) Option {
	return func(o *options) {
		o.pad = &inches
	}
}

// WithFontDirs sets the directories searched for installed fonts. Calling
// it with no directories disables the search, leaving explicit font files
// and the embedded fallback fonts.
func WithFontDirs(dirs ...string) Option {
	return func(o *options) {
		o.fontDirs = append([]string{}, dirs...)
	}
}
