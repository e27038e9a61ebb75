package todoist

// NotificationService is the channel a reminder fires through.
type NotificationService string

const (
	NotifyEmail  NotificationService = "email"
	NotifyMobile NotificationService = "mobile"
	NotifyPush   NotificationService = "push"
)

// ReminderType distinguishes time-based from location-based reminders.
type ReminderType string

const (
	ReminderRelative ReminderType = "relative"
	ReminderAbsolute ReminderType = "absolute"
	ReminderLocation ReminderType = "location"
)

// Reminder is an ancillary sync kind: a notification scheduled against an
// item. Reminders appear in sync responses but are not mirrored by the
// cache and carry no commands in this client.
type Reminder struct {
	ID         ID                  `json:"id"`
	NotifyUID  ID                  `json:"notify_uid"`
	ItemID     ID                  `json:"item_id"`
	Service    NotificationService `json:"service"`
	Type       ReminderType        `json:"type"`
	DateString string              `json:"date_string,omitempty"`
	DateLang   Language            `json:"date_lang,omitempty"`
	DueDateUTC *Date               `json:"due_date_utc,omitempty"`
	MMOffset   *int                `json:"mm_offset,omitempty"`
	Name       string              `json:"name,omitempty"`
	IsDeleted  IntBool             `json:"is_deleted"`
}

// LiveNotification is an ancillary sync kind: an activity-feed event such
// as a share invitation or karma milestone. Read-only, like Reminder.
type LiveNotification struct {
	ID               ID      `json:"id"`
	Created          int64   `json:"created"`
	FromUID          ID      `json:"from_uid"`
	NotificationKey  string  `json:"notification_key"`
	NotificationType string  `json:"notification_type"`
	SeqNo            int     `json:"seq_no"`
	IsUnread         IntBool `json:"is_unread"`

	// Invitation events carry the sharing context.
	ProjectName  *string `json:"project_name,omitempty"`
	InvitationID *ID     `json:"invitation_id,omitempty"`
}
