package storage

// VariantWidths maps a variant name to its maximum width in pixels.
type VariantWidths map[string]int

type Config struct {
	// BaseDir is the single directory every stored-location resolves under.
	BaseDir string `yaml:"base_dir"`
	// TempDir is where the upload intake spools files before the pipeline
	// consumes them. Defaults to BaseDir/tmp.
	TempDir string `yaml:"temp_dir"`
	// Widths overrides the per-call-site variant tables, keyed by site name
	// ("blog", "portfolio_cover", "portfolio_gallery", "media").
	Widths map[string]VariantWidths `yaml:"widths"`
}

// WidthsFor returns the configured table for a call site, or the site's
// fallback when the config does not override it.
func (c Config) WidthsFor(site string, fallback VariantWidths) VariantWidths {
	if w, ok := c.Widths[site]; ok && len(w) > 0 {
		return w
	}

	return fallback
}
