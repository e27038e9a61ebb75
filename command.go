package todoist

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Command is a single requested mutation, packaged for the command batch
// endpoint. Type is the wire discriminator tag ("project_add",
// "item_delete", ...), Args is the operation-specific payload, and UUID is
// a fresh identifier the server keys its per-command status by. Creation
// commands additionally carry TempID, a client-chosen placeholder the
// server maps to a real ID on success.
//
// Constructing a command never fails; it only packages already-valid
// in-memory data. Validation is the server's job.
type Command struct {
	Type   string      `json:"type"`
	Args   CommandArgs `json:"args"`
	UUID   uuid.UUID   `json:"uuid"`
	TempID *uuid.UUID  `json:"temp_id,omitempty"`
}

// CommandArgs is the closed set of command payloads. Each (kind, operation)
// pair has its own concrete payload type; the interface is sealed so the
// set is enumerable at compile time.
type CommandArgs interface {
	isCommandArgs()
}

// newCommand packages args under the given wire tag with a fresh UUID.
func newCommand(typ string, args CommandArgs) Command {
	return Command{
		Type: typ,
		Args: args,
		UUID: uuid.New(),
	}
}

// newCreateCommand additionally attaches a fresh temporary ID. UUIDs are
// collision-resistant, so temp-ID uniqueness within a transaction holds by
// construction.
func newCreateCommand(typ string, args CommandArgs) Command {
	cmd := newCommand(typ, args)
	tempID := uuid.New()
	cmd.TempID = &tempID

	return cmd
}

// Identity addresses existing objects by permanent ID. It is the payload
// for single-action commands like delete, archive and close.
type Identity struct {
	IDs []ID `json:"ids"`
}

// ProjectAddArgs is the payload for "project_add". Creation payloads never
// include a permanent ID; the server assigns one via the temp-ID mapping.
type ProjectAddArgs struct {
	Name       string  `json:"name"`
	Color      Color   `json:"color"`
	Indent     int     `json:"indent"`
	ItemOrder  int     `json:"item_order"`
	IsFavorite IntBool `json:"is_favorite"`
}

// ProjectUpdateArgs is the payload for "project_update", keyed by
// permanent ID.
type ProjectUpdateArgs struct {
	ID         ID      `json:"id"`
	Name       string  `json:"name"`
	Color      Color   `json:"color"`
	Indent     int     `json:"indent"`
	ItemOrder  int     `json:"item_order"`
	Collapsed  IntBool `json:"collapsed"`
	IsFavorite IntBool `json:"is_favorite"`
}

// ItemAddArgs is the payload for "item_add".
type ItemAddArgs struct {
	ProjectID      ID       `json:"project_id"`
	Content        string   `json:"content"`
	DateString     string   `json:"date_string,omitempty"`
	DateLang       Language `json:"date_lang,omitempty"`
	DueDateUTC     *Date    `json:"due_date_utc,omitempty"`
	Priority       Priority `json:"priority"`
	Indent         int      `json:"indent"`
	ItemOrder      int      `json:"item_order"`
	DayOrder       int      `json:"day_order"`
	Labels         []ID     `json:"labels"`
	AssignedByUID  *ID      `json:"assigned_by_uid,omitempty"`
	ResponsibleUID *ID      `json:"responsible_uid,omitempty"`
}

// ItemUpdateArgs is the payload for "item_update".
type ItemUpdateArgs struct {
	ID             ID       `json:"id"`
	Content        string   `json:"content"`
	DateString     string   `json:"date_string,omitempty"`
	DateLang       Language `json:"date_lang,omitempty"`
	DueDateUTC     *Date    `json:"due_date_utc,omitempty"`
	Priority       Priority `json:"priority"`
	Indent         int      `json:"indent"`
	ItemOrder      int      `json:"item_order"`
	DayOrder       int      `json:"day_order"`
	Labels         []ID     `json:"labels"`
	AssignedByUID  *ID      `json:"assigned_by_uid,omitempty"`
	ResponsibleUID *ID      `json:"responsible_uid,omitempty"`
}

// ItemMoveArgs is the payload for "item_move": a mapping of item ID to its
// current project ID, plus the single target project.
type ItemMoveArgs struct {
	ProjectItems map[ID]ID `json:"project_items"`
	ToProject    ID        `json:"to_project"`
}

// LabelAddArgs is the payload for "label_add".
type LabelAddArgs struct {
	Name       string  `json:"name"`
	Color      Color   `json:"color"`
	ItemOrder  int     `json:"item_order"`
	IsFavorite IntBool `json:"is_favorite"`
}

// LabelUpdateArgs is the payload for "label_update".
type LabelUpdateArgs struct {
	ID         ID      `json:"id"`
	Name       string  `json:"name"`
	Color      Color   `json:"color"`
	ItemOrder  int     `json:"item_order"`
	IsFavorite IntBool `json:"is_favorite"`
}

// NoteAddArgs is the payload for "note_add". Exactly one of ItemID and
// ProjectID is set; a note attaches to a single parent.
type NoteAddArgs struct {
	ItemID         *ID         `json:"item_id,omitempty"`
	ProjectID      *ID         `json:"project_id,omitempty"`
	Content        string      `json:"content"`
	FileAttachment *Attachment `json:"file_attachment,omitempty"`
	UIDsToNotify   []ID        `json:"uids_to_notify,omitempty"`
}

// NoteUpdateArgs is the payload for "note_update".
type NoteUpdateArgs struct {
	ID             ID          `json:"id"`
	Content        string      `json:"content"`
	FileAttachment *Attachment `json:"file_attachment,omitempty"`
}

// FilterAddArgs is the payload for "filter_add".
type FilterAddArgs struct {
	Name       string  `json:"name"`
	Query      string  `json:"query"`
	Color      Color   `json:"color"`
	ItemOrder  int     `json:"item_order"`
	IsFavorite IntBool `json:"is_favorite"`
}

// FilterUpdateArgs is the payload for "filter_update".
type FilterUpdateArgs struct {
	ID         ID      `json:"id"`
	Name       string  `json:"name"`
	Query      string  `json:"query"`
	Color      Color   `json:"color"`
	ItemOrder  int     `json:"item_order"`
	IsFavorite IntBool `json:"is_favorite"`
}

func (Identity) isCommandArgs()          {}
func (ProjectAddArgs) isCommandArgs()    {}
func (ProjectUpdateArgs) isCommandArgs() {}
func (ItemAddArgs) isCommandArgs()       {}
func (ItemUpdateArgs) isCommandArgs()    {}
func (ItemMoveArgs) isCommandArgs()      {}
func (LabelAddArgs) isCommandArgs()      {}
func (LabelUpdateArgs) isCommandArgs()   {}
func (NoteAddArgs) isCommandArgs()       {}
func (NoteUpdateArgs) isCommandArgs()    {}
func (FilterAddArgs) isCommandArgs()     {}
func (FilterUpdateArgs) isCommandArgs()  {}

// MoveItems builds an "item_move" command reassigning the given items to
// another project. Keys are item IDs, values the project each item
// currently belongs to.
func MoveItems(projectItems map[ID]ID, toProject ID) Command {
	return newCommand("item_move", ItemMoveArgs{
		ProjectItems: projectItems,
		ToProject:    toProject,
	})
}

// CommandStatus is the per-command outcome in a batch response: either an
// opaque success marker or a structured error.
type CommandStatus struct {
	Err *CommandError
}

// OK reports whether the command succeeded.
func (s CommandStatus) OK() bool {
	return s.Err == nil
}

// UnmarshalJSON decodes the untagged wire form: the string "ok" on
// success, an {error_code, error} object on failure.
func (s *CommandStatus) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		s.Err = nil

		return nil
	}

	var ce CommandError
	if err := json.Unmarshal(data, &ce); err != nil {
		return err
	}

	s.Err = &ce

	return nil
}

// MarshalJSON encodes the status back to its wire form.
func (s CommandStatus) MarshalJSON() ([]byte, error) {
	if s.Err == nil {
		return json.Marshal("ok")
	}

	return json.Marshal(s.Err)
}

// CommandResponse is the decoded result of a command batch submission.
type CommandResponse struct {
	// SyncStatus keys each command's UUID to its outcome.
	SyncStatus map[uuid.UUID]CommandStatus `json:"sync_status"`

	// TempIDMappings maps the temporary ID of each successful creation
	// command to the real server-issued ID.
	TempIDMappings map[uuid.UUID]ID `json:"temp_id_mappings"`
}
