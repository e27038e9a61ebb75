package todoist

// Filter is a saved query over items.
type Filter struct {
	ID         ID      `json:"id"`
	Name       string  `json:"name"`
	Query      string  `json:"query"`
	Color      Color   `json:"color"`
	ItemOrder  int     `json:"item_order"`
	IsDeleted  IntBool `json:"is_deleted"`
	IsFavorite IntBool `json:"is_favorite"`
}

// NewFilter returns a filter ready for submission.
func NewFilter(name, query string) *Filter {
	return &Filter{Name: name, Query: query}
}

func (f *Filter) args() FilterAddArgs {
	return FilterAddArgs{
		Name:       f.Name,
		Query:      f.Query,
		Color:      f.Color,
		ItemOrder:  f.ItemOrder,
		IsFavorite: f.IsFavorite,
	}
}

// Create builds a "filter_add" command carrying a fresh temporary ID.
func (f *Filter) Create() Command {
	return newCreateCommand("filter_add", f.args())
}

// Update builds a "filter_update" command keyed by the filter's ID.
func (f *Filter) Update() Command {
	a := f.args()

	return newCommand("filter_update", FilterUpdateArgs{
		ID:         f.ID,
		Name:       a.Name,
		Query:      a.Query,
		Color:      a.Color,
		ItemOrder:  a.ItemOrder,
		IsFavorite: a.IsFavorite,
	})
}

// Delete builds a "filter_delete" command.
func (f *Filter) Delete() Command {
	return newCommand("filter_delete", Identity{IDs: []ID{f.ID}})
}
