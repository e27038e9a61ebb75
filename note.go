package todoist

import (
	"encoding/json"
	"fmt"
)

// UploadState is an attachment's server-side upload status.
type UploadState string

const (
	UploadPending   UploadState = "pending"
	UploadCompleted UploadState = "completed"
)

// Thumbnail is one preview variant of an attachment. On the wire it is a
// three-element array: [url, width, height].
type Thumbnail struct {
	URL    string
	Width  int
	Height int
}

func (t Thumbnail) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]any{t.URL, t.Width, t.Height})
}

func (t *Thumbnail) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("todoist: decoding thumbnail: %w", err)
	}

	// Missing trailing elements keep their zero values.
	fields := []any{&t.URL, &t.Width, &t.Height}
	for i, f := range fields {
		if i >= len(raw) {
			break
		}

		if err := json.Unmarshal(raw[i], f); err != nil {
			return fmt.Errorf("todoist: decoding thumbnail: %w", err)
		}
	}

	return nil
}

// Attachment is a file attached to a note, with up to three thumbnail
// variants.
type Attachment struct {
	FileName    string      `json:"file_name"`
	FileSize    int64       `json:"file_size"`
	FileType    string      `json:"file_type"`
	FileURL     string      `json:"file_url"`
	UploadState UploadState `json:"upload_state"`
	TnS         *Thumbnail  `json:"tn_s,omitempty"`
	TnM         *Thumbnail  `json:"tn_m,omitempty"`
	TnL         *Thumbnail  `json:"tn_l,omitempty"`
}

// Note is a comment attached to exactly one parent: an item or a project,
// never both.
type Note struct {
	ID         ID          `json:"id"`
	PostedUID  ID          `json:"posted_uid"`
	ItemID     *ID         `json:"item_id,omitempty"`
	ProjectID  *ID         `json:"project_id,omitempty"`
	Content    string      `json:"content"`
	Attachment *Attachment `json:"file_attachment,omitempty"`

	// UIDsToNotify lists collaborators to notify about this note.
	UIDsToNotify []ID `json:"uids_to_notify,omitempty"`

	IsDeleted  IntBool `json:"is_deleted"`
	IsArchived IntBool `json:"is_archived"`
	Posted     *Date   `json:"posted,omitempty"`
}

// NewItemNote returns a note attached to an item, ready for submission.
func NewItemNote(itemID ID, content string) *Note {
	return &Note{ItemID: &itemID, Content: content}
}

// NewProjectNote returns a note attached to a project, ready for
// submission.
func NewProjectNote(projectID ID, content string) *Note {
	return &Note{ProjectID: &projectID, Content: content}
}

// Create builds a "note_add" command carrying a fresh temporary ID.
func (n *Note) Create() Command {
	return newCreateCommand("note_add", NoteAddArgs{
		ItemID:         n.ItemID,
		ProjectID:      n.ProjectID,
		Content:        n.Content,
		FileAttachment: n.Attachment,
		UIDsToNotify:   n.UIDsToNotify,
	})
}

// Update builds a "note_update" command keyed by the note's ID.
func (n *Note) Update() Command {
	return newCommand("note_update", NoteUpdateArgs{
		ID:             n.ID,
		Content:        n.Content,
		FileAttachment: n.Attachment,
	})
}

// Delete builds a "note_delete" command.
func (n *Note) Delete() Command {
	return newCommand("note_delete", Identity{IDs: []ID{n.ID}})
}
