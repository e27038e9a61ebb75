package todoist

// Collaborator is another user sharing projects with the authenticated
// account. Collaborators are read-only: they are mirrored from sync
// responses and never created or modified by this client.
type Collaborator struct {
	ID       ID     `json:"id"`
	Email    string `json:"email"`
	Timezone string `json:"timezone"`
	ImageID  string `json:"image_id"`
}

// TimeZoneInfo describes the user's timezone as the server reports it.
type TimeZoneInfo struct {
	Timezone  string `json:"timezone"`
	GMTString string `json:"gmt_string"`
	Hours     int    `json:"hours"`
	Minutes   int    `json:"minutes"`
	IsDST     int    `json:"is_dst"`
}

// Features names optional behaviors enabled on the account.
type Features struct {
	Beta                  IntBool `json:"beta"`
	DateistInlineDisabled bool    `json:"dateist_inline_disabled"`
	DateistLang           *string `json:"dateist_lang"`
	HasPushReminders      bool    `json:"has_push_reminders"`
	KarmaDisabled         bool    `json:"karma_disabled"`
	KarmaVacation         bool    `json:"karma_vacation"`
	Restriction           int     `json:"restriction"`
}

// User is the authenticated account's profile and preferences. Like
// Collaborator it is read-only from this client's perspective: the cache
// replaces it wholesale whenever a sync response includes a user record.
type User struct {
	ID                ID           `json:"id"`
	Token             string       `json:"token"`
	Email             string       `json:"email"`
	FullName          string       `json:"full_name"`
	InboxProject      ID           `json:"inbox_project"`
	TeamInbox         ID           `json:"team_inbox"`
	ImageID           string       `json:"image_id"`
	BusinessAccountID *ID          `json:"business_account_id,omitempty"`
	TzInfo            TimeZoneInfo `json:"tz_info"`
	Features          Features     `json:"features"`

	// StartPage is the user's default view (e.g. "overdue, 7 days").
	StartPage string `json:"start_page"`

	// StartDay is the first day of the week, Monday (1) through Sunday (7).
	StartDay int `json:"start_day"`

	// NextWeek is the day postponed tasks land on, Monday (1) through
	// Sunday (7).
	NextWeek int `json:"next_week"`

	// TimeFormat selects 24h (0) or 12h (1) clock display.
	TimeFormat int `json:"time_format"`

	// DateFormat selects DD-MM-YYYY (0) or MM-DD-YYYY (1).
	DateFormat int `json:"date_format"`

	// SortOrder lists items oldest first (0) or newest first (1).
	SortOrder int `json:"sort_order"`

	// AutoReminder is the default reminder lead time in minutes.
	AutoReminder int `json:"auto_reminder"`

	DailyGoal    int     `json:"daily_goal"`
	Karma        float64 `json:"karma"`
	KarmaTrend   string  `json:"karma_trend"`
	IsPremium    bool    `json:"is_premium"`
	PremiumUntil *Date   `json:"premium_until,omitempty"`
	IsBizAdmin   bool    `json:"is_biz_admin"`
	ThemeID      int     `json:"theme"`
	JoinDate     *Date   `json:"join_date,omitempty"`
}
