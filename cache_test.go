package todoist

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectList(projects ...Project) *[]Project {
	return &projects
}

func TestApply_MergeIdempotence(t *testing.T) {
	resp := &SyncResponse{
		SyncToken: "tok-1",
		Projects: projectList(
			Project{ID: 1, Name: "Inbox", Indent: 1},
			Project{ID: 2, Name: "Work", Indent: 2, ItemOrder: 1},
		),
		Items: &[]Item{{ID: 10, ProjectID: 1, Content: "buy milk"}},
	}

	once := NewCache()
	once.Apply(resp)

	twice := NewCache()
	twice.Apply(resp)
	twice.Apply(resp)

	assert.Equal(t, once, twice)
}

func TestApply_OverwritesByID(t *testing.T) {
	c := NewCache()
	c.Apply(&SyncResponse{
		SyncToken: "tok-1",
		Items:     &[]Item{{ID: 10, Content: "old"}},
	})
	c.Apply(&SyncResponse{
		SyncToken: "tok-2",
		Items:     &[]Item{{ID: 10, Content: "new", IsDeleted: 1}},
	})

	require.Contains(t, c.Items, ID(10))
	assert.Equal(t, "new", c.Items[10].Content)

	// A server-side delete is mirrored as a flag flip, never removed.
	assert.True(t, c.Items[10].IsDeleted.Bool())
}

func TestApply_AbsentKindUntouched_TokenAdvances(t *testing.T) {
	c := NewCache()
	c.Apply(&SyncResponse{
		SyncToken: "tok-1",
		Projects:  projectList(Project{ID: 1, Name: "Inbox", Indent: 1}),
		Items:     &[]Item{{ID: 10, Content: "task"}},
	})

	// Projects absent, items present but empty: projects and items both
	// keep their entries, the token still advances.
	c.Apply(&SyncResponse{
		SyncToken: "tok-2",
		Items:     &[]Item{},
	})

	assert.Len(t, c.Projects, 1)
	assert.Len(t, c.Items, 1)
	assert.Equal(t, "tok-2", c.SyncToken)
}

func TestApply_ReplacesUserWholesale(t *testing.T) {
	c := NewCache()
	c.User = User{ID: 1, Email: "old@example.com", Karma: 500}

	c.Apply(&SyncResponse{
		SyncToken: "tok-1",
		User:      &User{ID: 1, Email: "new@example.com"},
	})

	assert.Equal(t, "new@example.com", c.User.Email)
	assert.Zero(t, c.User.Karma, "replacement is wholesale, not a field merge")
}

func TestCache_Client(t *testing.T) {
	c := NewCache()

	_, err := c.Client()
	assert.ErrorIs(t, err, ErrMissingToken)

	c.Token = "secret"
	client, err := c.Client()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestGetProject(t *testing.T) {
	c := NewCache()
	c.Apply(&SyncResponse{
		SyncToken: "tok-1",
		Projects: projectList(
			Project{ID: 1, Name: "Inbox", Indent: 1, ItemOrder: 0},
			Project{ID: 2, Name: "Work", Indent: 2, ItemOrder: 1},
			Project{ID: 3, Name: "Errands", Indent: 1, ItemOrder: 2},
			Project{ID: 4, Name: "Work", Indent: 2, ItemOrder: 3},
		),
	})

	tests := []struct {
		name   string
		path   string
		wantID ID
		found  bool
	}{
		{"leaf under root", "Inbox/Work", 2, true},
		{"root itself", "Inbox", 1, true},
		{"later sibling tree", "Errands/Work", 4, true},
		{"missing leaf", "Inbox/Nonexistent", 0, false},
		{"missing root", "Hobby/Work", 0, false},
		{"empty path", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := c.GetProject(tt.path)
			require.Equal(t, tt.found, ok)

			if tt.found {
				assert.Equal(t, tt.wantID, p.ID)
			} else {
				assert.Nil(t, p)
			}
		})
	}
}

func TestGetProject_OrderPruning(t *testing.T) {
	// "Work" under Errands sits before Errands in order: the scan must not
	// match it because its order index precedes the root match's.
	c := NewCache()
	c.Apply(&SyncResponse{
		SyncToken: "tok-1",
		Projects: projectList(
			Project{ID: 2, Name: "Work", Indent: 2, ItemOrder: 1},
			Project{ID: 3, Name: "Errands", Indent: 1, ItemOrder: 2},
		),
	})

	_, ok := c.GetProject("Errands/Work")
	assert.False(t, ok)
}

func TestCache_JSONRoundTrip(t *testing.T) {
	c := NewCache()
	c.Token = "secret"
	c.Apply(&SyncResponse{
		SyncToken: "tok-1",
		Projects:  projectList(Project{ID: 1, Name: "Inbox", Indent: 1}),
		Items:     &[]Item{{ID: 10, ProjectID: 1, Content: "buy milk", Labels: []ID{5}}},
		Labels:    &[]Label{{ID: 5, Name: "errand"}},
	})

	data, err := json.Marshal(c)
	require.NoError(t, err)

	decoded := NewCache()
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, c, decoded)
}
