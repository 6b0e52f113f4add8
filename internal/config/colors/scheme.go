package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // creation forms
	Edit   string `yaml:"edit"`   // inline editors
	Delete string `yaml:"delete"` // delete confirmations

	// Pane and grid colors
	PaneBorder    string `yaml:"pane_border"`
	FocusedBorder string `yaml:"focused_border"`
	SelectedBg    string `yaml:"selected_bg"`
	CursorBg      string `yaml:"cursor_bg"`
	Checked       string `yaml:"checked"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// fields lists every color slot, in declaration order, so defaults and
// merges do not have to repeat the field list.
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent,
		&c.Create, &c.Edit, &c.Delete,
		&c.PaneBorder, &c.FocusedBorder, &c.SelectedBg, &c.CursorBg, &c.Checked,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
	}
}

// ApplyDefaults fills in missing color values from the named preset
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	base := preset.fields()
	for i, v := range c.fields() {
		if *v == "" {
			*v = *base[i]
		}
	}
}

// MergeFrom copies every non-empty value of other over c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	src := other.fields()
	for i, v := range c.fields() {
		if *src[i] != "" {
			*v = *src[i]
		}
	}
}
