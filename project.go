package todoist

// Project is a named, colored container of items, positioned in the
// project tree by indent level (1-4) and order index.
type Project struct {
	ID         ID      `json:"id"`
	Name       string  `json:"name"`
	Color      Color   `json:"color"`
	Indent     int     `json:"indent"`
	ItemOrder  int     `json:"item_order"`
	Collapsed  IntBool `json:"collapsed"`
	Shared     bool    `json:"shared"`
	IsDeleted  IntBool `json:"is_deleted"`
	IsArchived IntBool `json:"is_archived"`
	IsFavorite IntBool `json:"is_favorite"`
	Inbox      bool    `json:"inbox"`
	InboxTeam  bool    `json:"inbox_team"`

	// SyncID groups shared projects; nil for personal projects.
	SyncID *ID `json:"sync_id,omitempty"`
}

// NewProject returns a project ready for submission. Every field has a
// serializable default; the server validates and fills in the rest.
func NewProject(name string) *Project {
	return &Project{Name: name}
}

// Create builds a "project_add" command carrying a fresh temporary ID.
func (p *Project) Create() Command {
	return newCreateCommand("project_add", ProjectAddArgs{
		Name:       p.Name,
		Color:      p.Color,
		Indent:     p.Indent,
		ItemOrder:  p.ItemOrder,
		IsFavorite: p.IsFavorite,
	})
}

// Update builds a "project_update" command keyed by the project's ID.
func (p *Project) Update() Command {
	return newCommand("project_update", ProjectUpdateArgs{
		ID:         p.ID,
		Name:       p.Name,
		Color:      p.Color,
		Indent:     p.Indent,
		ItemOrder:  p.ItemOrder,
		Collapsed:  p.Collapsed,
		IsFavorite: p.IsFavorite,
	})
}

// Delete builds a "project_delete" command.
func (p *Project) Delete() Command {
	return newCommand("project_delete", Identity{IDs: []ID{p.ID}})
}

// Archive builds a "project_archive" command.
func (p *Project) Archive() Command {
	return newCommand("project_archive", Identity{IDs: []ID{p.ID}})
}

// Unarchive builds a "project_unarchive" command.
func (p *Project) Unarchive() Command {
	return newCommand("project_unarchive", Identity{IDs: []ID{p.ID}})
}
