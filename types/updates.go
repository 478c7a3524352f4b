package types

// Update represents one incoming event.
// At most one of the optional fields is present in any given update.
// See: https://core.telegram.org/bots/api#update
type Update struct {
	UpdateId          int64          `json:"update_id"`
	Message           *Message       `json:"message,omitempty"`
	EditedMessage     *Message       `json:"edited_message,omitempty"`
	ChannelPost       *Message       `json:"channel_post,omitempty"`
	EditedChannelPost *Message       `json:"edited_channel_post,omitempty"`
	CallbackQuery     *CallbackQuery `json:"callback_query,omitempty"`
	Poll              *Poll          `json:"poll,omitempty"`
	PollAnswer        *PollAnswer    `json:"poll_answer,omitempty"`
}

type CallbackQuery struct {
	Id      string   `json:"id"`
	From    User     `json:"from"`
	Message *Message `json:"message,omitempty"`
	Data    string   `json:"data,omitempty"`
}

type Poll struct {
	Id          string       `json:"id"`
	Question    string       `json:"question"`
	Options     []PollOption `json:"options"`
	TotalVoters int          `json:"total_voter_count"`
	IsClosed    bool         `json:"is_closed"`
	IsAnonymous bool         `json:"is_anonymous"`
}

type PollOption struct {
	Text       string `json:"text"`
	VoterCount int    `json:"voter_count"`
}

type PollAnswer struct {
	PollId    string `json:"poll_id"`
	User      User   `json:"user"`
	OptionIds []int  `json:"option_ids"`
}

// GetUpdatesRequest is the long-poll request body.
// Timeout is in seconds; 0 means short polling.
type GetUpdatesRequest struct {
	Offset         int64    `json:"offset,omitempty"`
	Limit          int      `json:"limit,omitempty"`
	Timeout        int      `json:"timeout,omitempty"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

type SetWebhookRequest struct {
	Url                string   `json:"url"`
	MaxConnections     int      `json:"max_connections,omitempty"`
	AllowedUpdates     []string `json:"allowed_updates,omitempty"`
	SecretToken        string   `json:"secret_token,omitempty"`
	DropPendingUpdates bool     `json:"drop_pending_updates,omitempty"`
}

type DeleteWebhookRequest struct {
	DropPendingUpdates bool `json:"drop_pending_updates,omitempty"`
}

type WebhookInfo struct {
	Url                  string   `json:"url"`
	HasCustomCertificate bool     `json:"has_custom_certificate"`
	PendingUpdateCount   int      `json:"pending_update_count"`
	LastErrorDate        int64    `json:"last_error_date,omitempty"`
	LastErrorMessage     string   `json:"last_error_message,omitempty"`
	MaxConnections       int      `json:"max_connections,omitempty"`
	AllowedUpdates       []string `json:"allowed_updates,omitempty"`
}
