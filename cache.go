package todoist

import (
	"context"
	"math"
	"sort"
	"strings"
)

// fullSyncToken is the sentinel sync cursor requesting a full snapshot.
const fullSyncToken = "*"

// mirroredKinds is what Cache.Sync requests on every cycle.
var mirroredKinds = []ResourceType{
	ResourceProjects,
	ResourceItems,
	ResourceNotes,
	ResourceLabels,
	ResourceFilters,
	ResourceCollaborators,
	ResourceUser,
}

// Cache is the authoritative in-memory mirror of server state: one keyed
// collection per entity kind plus the sync cursor. It is exclusively owned
// by a single goroutine; merges perform unconditional overwrite-by-ID with
// no version check, so any concurrent use must serialize them externally.
//
// Entities are never removed: a server-side delete arrives as an
// is_deleted flag flip and is stored as such. Pruning is caller policy.
type Cache struct {
	// Token is the user's API token, if known.
	Token string `json:"token,omitempty"`

	// SyncToken is the cursor returned by the last sync; empty means
	// never synced.
	SyncToken string `json:"sync_token,omitempty"`

	User          User                 `json:"user"`
	Projects      map[ID]*Project      `json:"projects"`
	Items         map[ID]*Item         `json:"items"`
	Labels        map[ID]*Label        `json:"labels"`
	Notes         map[ID]*Note         `json:"notes"`
	Filters       map[ID]*Filter       `json:"filters"`
	Collaborators map[ID]*Collaborator `json:"collaborators"`
}

// NewCache returns an empty cache that has never synced.
func NewCache() *Cache {
	return &Cache{
		Projects:      make(map[ID]*Project),
		Items:         make(map[ID]*Item),
		Labels:        make(map[ID]*Label),
		Notes:         make(map[ID]*Note),
		Filters:       make(map[ID]*Filter),
		Collaborators: make(map[ID]*Collaborator),
	}
}

// Client constructs an API client from the cached token. Returns
// ErrMissingToken when no token has been stored yet.
func (c *Cache) Client() (*Client, error) {
	return New(c.Token)
}

// Sync fetches a delta since the cache's current cursor and merges it.
// A cache that has never synced requests a full snapshot.
func (c *Cache) Sync(ctx context.Context, client *Client) error {
	token := c.SyncToken
	if token == "" {
		token = fullSyncToken
	}

	resp, err := client.Sync(ctx, token, mirroredKinds)
	if err != nil {
		return err
	}

	c.Apply(resp)

	return nil
}

// Apply merges a sync response into the cache: every returned entity
// overwrites or inserts its collection slot by ID (last write wins), a
// returned user record replaces the cached user wholesale, and the cursor
// advances to the response's token. Kinds absent from the response leave
// their collections untouched. Apply is idempotent: merging the same
// response twice yields the same state.
func (c *Cache) Apply(resp *SyncResponse) {
	if resp.User != nil {
		c.User = *resp.User
	}

	if resp.Projects != nil {
		ensureMap(&c.Projects)
		for i := range *resp.Projects {
			p := (*resp.Projects)[i]
			c.Projects[p.ID] = &p
		}
	}

	if resp.Items != nil {
		ensureMap(&c.Items)
		for i := range *resp.Items {
			it := (*resp.Items)[i]
			c.Items[it.ID] = &it
		}
	}

	if resp.Labels != nil {
		ensureMap(&c.Labels)
		for i := range *resp.Labels {
			l := (*resp.Labels)[i]
			c.Labels[l.ID] = &l
		}
	}

	if resp.Notes != nil {
		ensureMap(&c.Notes)
		for i := range *resp.Notes {
			n := (*resp.Notes)[i]
			c.Notes[n.ID] = &n
		}
	}

	if resp.Filters != nil {
		ensureMap(&c.Filters)
		for i := range *resp.Filters {
			f := (*resp.Filters)[i]
			c.Filters[f.ID] = &f
		}
	}

	if resp.Collaborators != nil {
		ensureMap(&c.Collaborators)
		for i := range *resp.Collaborators {
			col := (*resp.Collaborators)[i]
			c.Collaborators[col.ID] = &col
		}
	}

	c.SyncToken = resp.SyncToken
}

// ensureMap allocates a nil collection. Caches decoded from older persisted
// files may lack kinds that were added later.
func ensureMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

// GetProject resolves a slash-separated path of project names ("Inbox/Work")
// to the leaf project. Resolution walks one segment at a time through
// projects sorted by order index: at each step the candidate must match the
// segment name, sit at an indent equal to the current depth, and have an
// order index not less than the previous match's. The first candidate
// satisfying all three wins.
//
// The boolean result distinguishes "path doesn't exist" from I/O failure
// (resolution never performs I/O). The empty path resolves to not found.
// The scan assumes order index is a stable total order consistent with the
// tree; callers must not rely on it under concurrent modification.
func (c *Cache) GetProject(path string) (*Project, bool) {
	if path == "" {
		return nil, false
	}

	sorted := make([]*Project, 0, len(c.Projects))
	for _, p := range c.Projects {
		sorted = append(sorted, p)
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ItemOrder < sorted[j].ItemOrder
	})

	var match *Project

	minOrder := math.MinInt
	for depth, segment := range strings.Split(path, "/") {
		match = nil

		for _, p := range sorted {
			if p.Name == segment && p.Indent == depth+1 && p.ItemOrder >= minOrder {
				match = p

				break
			}
		}

		if match == nil {
			return nil, false
		}

		minOrder = match.ItemOrder
	}

	return match, true
}
