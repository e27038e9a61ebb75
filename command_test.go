package todoist

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCreate_Envelope(t *testing.T) {
	p := NewProject("my cool project")
	p.IsFavorite = NewIntBool(true)

	cmd := p.Create()
	require.NotNil(t, cmd.TempID)
	assert.NotEqual(t, cmd.UUID, *cmd.TempID, "uuid and temp_id must be distinct fresh identifiers")

	data, err := json.Marshal(cmd)
	require.NoError(t, err)

	want := fmt.Sprintf(`{"type":"project_add",`+
		`"args":{"name":"my cool project","color":0,"indent":0,"item_order":0,"is_favorite":1},`+
		`"uuid":"%s","temp_id":"%s"}`, cmd.UUID, *cmd.TempID)
	assert.Equal(t, want, string(data))
}

func TestCommandTags(t *testing.T) {
	project := &Project{ID: 1}
	item := &Item{ID: 2, ProjectID: 1}
	label := &Label{ID: 3}
	note := &Note{ID: 4}
	filter := &Filter{ID: 5}

	tests := []struct {
		cmd      Command
		wantType string
		creates  bool
	}{
		{project.Create(), "project_add", true},
		{project.Update(), "project_update", false},
		{project.Delete(), "project_delete", false},
		{project.Archive(), "project_archive", false},
		{project.Unarchive(), "project_unarchive", false},
		{item.Create(), "item_add", true},
		{item.Update(), "item_update", false},
		{item.Delete(), "item_delete", false},
		{item.Move(9), "item_move", false},
		{item.Archive(), "item_archive", false},
		{item.Unarchive(), "item_unarchive", false},
		{item.Close(), "item_close", false},
		{item.Complete(), "item_complete", false},
		{item.Uncomplete(), "item_uncomplete", false},
		{label.Create(), "label_add", true},
		{label.Update(), "label_update", false},
		{label.Delete(), "label_delete", false},
		{note.Create(), "note_add", true},
		{note.Update(), "note_update", false},
		{note.Delete(), "note_delete", false},
		{filter.Create(), "filter_add", true},
		{filter.Update(), "filter_update", false},
		{filter.Delete(), "filter_delete", false},
	}

	seen := make(map[string]bool)

	for _, tt := range tests {
		t.Run(tt.wantType, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.cmd.Type)

			if tt.creates {
				assert.NotNil(t, tt.cmd.TempID, "creation commands carry a temp_id")
			} else {
				assert.Nil(t, tt.cmd.TempID, "only creation commands carry a temp_id")
			}

			assert.False(t, seen[tt.cmd.UUID.String()], "every command gets a fresh uuid")
			seen[tt.cmd.UUID.String()] = true
		})
	}
}

func TestItemMove_Payload(t *testing.T) {
	cmd := MoveItems(map[ID]ID{7: 1}, 2)

	data, err := json.Marshal(cmd.Args)
	require.NoError(t, err)
	assert.JSONEq(t, `{"project_items":{"7":1},"to_project":2}`, string(data))
}

func TestDeletePayload_KeysByPermanentID(t *testing.T) {
	item := &Item{ID: 42}
	cmd := item.Delete()

	data, err := json.Marshal(cmd.Args)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ids":[42]}`, string(data))
}

func TestCommandStatus_Unmarshal(t *testing.T) {
	var status CommandStatus
	require.NoError(t, json.Unmarshal([]byte(`"ok"`), &status))
	assert.True(t, status.OK())

	require.NoError(t, json.Unmarshal([]byte(`{"error_code":15,"error":"Invalid temporary id"}`), &status))
	require.False(t, status.OK())
	assert.Equal(t, 15, status.Err.ErrorCode)
	assert.Equal(t, "Invalid temporary id", status.Err.Message)
}
