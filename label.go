package todoist

// Label is a named tag items can carry.
type Label struct {
	ID         ID      `json:"id"`
	Name       string  `json:"name"`
	Color      Color   `json:"color"`
	ItemOrder  int     `json:"item_order"`
	IsDeleted  IntBool `json:"is_deleted"`
	IsFavorite IntBool `json:"is_favorite"`
}

// NewLabel returns a label ready for submission.
func NewLabel(name string) *Label {
	return &Label{Name: name}
}

// Create builds a "label_add" command carrying a fresh temporary ID.
func (l *Label) Create() Command {
	return newCreateCommand("label_add", LabelAddArgs{
		Name:       l.Name,
		Color:      l.Color,
		ItemOrder:  l.ItemOrder,
		IsFavorite: l.IsFavorite,
	})
}

// Update builds a "label_update" command keyed by the label's ID.
func (l *Label) Update() Command {
	return newCommand("label_update", LabelUpdateArgs{
		ID:         l.ID,
		Name:       l.Name,
		Color:      l.Color,
		ItemOrder:  l.ItemOrder,
		IsFavorite: l.IsFavorite,
	})
}

// Delete builds a "label_delete" command.
func (l *Label) Delete() Command {
	return newCommand("label_delete", Identity{IDs: []ID{l.ID}})
}
