package icons

// ID identifies one chrome icon.
type ID int

const (
	// Unspecified is the zero value and never rendered.
	Unspecified ID = iota
	// SidebarCollapse signals that activating the control collapses the sidebar.
	SidebarCollapse
	// SidebarExpand signals that activating the control expands the sidebar.
	SidebarExpand
	// Language marks the language menu trigger.
	Language
	// Moon is shown while the light color mode is active.
	Moon
	// Sun is shown while the dark color mode is active.
	Sun
)

// Definition describes a chrome icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: SidebarCollapse, Name: "Sidebar collapse", Description: "Sidebar toggle while the sidebar is open."},
	{ID: SidebarExpand, Name: "Sidebar expand", Description: "Sidebar toggle while the sidebar is closed."},
	{ID: Language, Name: "Language", Description: "Language menu trigger."},
	{ID: Moon, Name: "Moon", Description: "Theme toggle in light mode."},
	{ID: Sun, Name: "Sun", Description: "Theme toggle in dark mode."},
}

// Catalog returns a copy of all icon definitions.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// String returns the catalog name for id.
func (id ID) String() string {
	for _, def := range catalog {
		if def.ID == id {
			return def.Name
		}
	}
	return "Unspecified"
}
