package todoist

// ID is an opaque identifier for a resource instance within its kind.
// IDs are issued by the server; the client only generates temporary UUID
// placeholders for not-yet-committed creations.
type ID uint64

// Priority specifies how important an item is, from 1 (natural) to 4 (urgent).
type Priority uint8

// Language is a two-character language code used for natural-language date
// parsing on the server (e.g. "en", "de", "ja").
type Language string

// ResourceType names an entity kind in sync requests.
type ResourceType string

// Resource kinds accepted by the sync endpoint.
const (
	ResourceAll               ResourceType = "all"
	ResourceProjects          ResourceType = "projects"
	ResourceItems             ResourceType = "items"
	ResourceLabels            ResourceType = "labels"
	ResourceNotes             ResourceType = "notes"
	ResourceFilters           ResourceType = "filters"
	ResourceReminders         ResourceType = "reminders"
	ResourceUser              ResourceType = "user"
	ResourceCollaborators     ResourceType = "collaborators"
	ResourceLiveNotifications ResourceType = "live_notifications"
)
