package theme

import "github.com/thenoetrevino/tasques/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight     string
	Subtle        string
	Normal        string
	Title         string
	Create        string
	Edit          string
	Delete        string
	PaneBorder    string
	FocusedBorder string
	SelectedBg    string
	CursorBg      string
	Checked       string
	InfoFg        string
	InfoBg        string
	WarningFg     string
	WarningBg     string
	ErrorFg       string
	ErrorBg       string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(c colors.ColorScheme) {
	c.ApplyDefaults()

	Highlight = c.Accent
	Subtle = c.Subtle
	Normal = c.Normal
	Title = c.Title
	Create = c.Create
	Edit = c.Edit
	Delete = c.Delete
	PaneBorder = c.PaneBorder
	FocusedBorder = c.FocusedBorder
	SelectedBg = c.SelectedBg
	CursorBg = c.CursorBg
	Checked = c.Checked
	InfoFg = c.InfoFg
	InfoBg = c.InfoBg
	WarningFg = c.WarningFg
	WarningBg = c.WarningBg
	ErrorFg = c.ErrorFg
	ErrorBg = c.ErrorBg
}
