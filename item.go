package todoist

// Item is a task: free-text content owned by a project, optionally nested
// under a parent item, with a due date, priority, order indices, labels
// and assignment fields.
type Item struct {
	ID         ID       `json:"id"`
	UserID     ID       `json:"user_id"`
	ProjectID  ID       `json:"project_id"`
	Content    string   `json:"content"`
	DateString string   `json:"date_string"`
	DateLang   Language `json:"date_lang"`
	DueDateUTC *Date    `json:"due_date_utc,omitempty"`
	Priority   Priority `json:"priority"`
	Indent     int      `json:"indent"`
	ItemOrder  int      `json:"item_order"`
	DayOrder   int      `json:"day_order"`
	Collapsed  IntBool  `json:"collapsed"`
	Labels     []ID     `json:"labels"`
	Checked    IntBool  `json:"checked"`
	IsDeleted  IntBool  `json:"is_deleted"`
	IsArchived IntBool  `json:"is_archived"`
	IsFavorite IntBool  `json:"is_favorite"`

	// ParentID is set when this item is a subtask.
	ParentID *ID `json:"parent_id,omitempty"`

	AssignedByUID  *ID `json:"assigned_by_uid,omitempty"`
	ResponsibleUID *ID `json:"responsible_uid,omitempty"`

	// SyncID is the universal ID for items in shared projects; Item.ID is
	// per-user.
	SyncID *ID `json:"sync_id,omitempty"`
}

// NewItem returns an item ready for submission into the given project.
func NewItem(projectID ID, content string) *Item {
	return &Item{ProjectID: projectID, Content: content}
}

func (i *Item) addArgs() ItemAddArgs {
	return ItemAddArgs{
		ProjectID:      i.ProjectID,
		Content:        i.Content,
		DateString:     i.DateString,
		DateLang:       i.DateLang,
		DueDateUTC:     i.DueDateUTC,
		Priority:       i.Priority,
		Indent:         i.Indent,
		ItemOrder:      i.ItemOrder,
		DayOrder:       i.DayOrder,
		Labels:         i.Labels,
		AssignedByUID:  i.AssignedByUID,
		ResponsibleUID: i.ResponsibleUID,
	}
}

// Create builds an "item_add" command carrying a fresh temporary ID.
func (i *Item) Create() Command {
	return newCreateCommand("item_add", i.addArgs())
}

// Update builds an "item_update" command keyed by the item's ID.
func (i *Item) Update() Command {
	a := i.addArgs()

	return newCommand("item_update", ItemUpdateArgs{
		ID:             i.ID,
		Content:        a.Content,
		DateString:     a.DateString,
		DateLang:       a.DateLang,
		DueDateUTC:     a.DueDateUTC,
		Priority:       a.Priority,
		Indent:         a.Indent,
		ItemOrder:      a.ItemOrder,
		DayOrder:       a.DayOrder,
		Labels:         a.Labels,
		AssignedByUID:  a.AssignedByUID,
		ResponsibleUID: i.ResponsibleUID,
	})
}

// Delete builds an "item_delete" command.
func (i *Item) Delete() Command {
	return newCommand("item_delete", Identity{IDs: []ID{i.ID}})
}

// Archive builds an "item_archive" command.
func (i *Item) Archive() Command {
	return newCommand("item_archive", Identity{IDs: []ID{i.ID}})
}

// Unarchive builds an "item_unarchive" command.
func (i *Item) Unarchive() Command {
	return newCommand("item_unarchive", Identity{IDs: []ID{i.ID}})
}

// Close builds an "item_close" command: complete the task and archive it
// in one step (what clicking the checkbox does).
func (i *Item) Close() Command {
	return newCommand("item_close", Identity{IDs: []ID{i.ID}})
}

// Complete builds an "item_complete" command.
func (i *Item) Complete() Command {
	return newCommand("item_complete", Identity{IDs: []ID{i.ID}})
}

// Uncomplete builds an "item_uncomplete" command.
func (i *Item) Uncomplete() Command {
	return newCommand("item_uncomplete", Identity{IDs: []ID{i.ID}})
}

// Move builds an "item_move" command reassigning this item to another
// project.
func (i *Item) Move(toProject ID) Command {
	return MoveItems(map[ID]ID{i.ID: i.ProjectID}, toProject)
}
