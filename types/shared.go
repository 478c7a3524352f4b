package types

// ResponseParameters carries extra diagnostic information the Bot API
// attaches to failed responses.
// See: https://core.telegram.org/bots/api#responseparameters
type ResponseParameters struct {
	// The group has been migrated to a supergroup with this identifier.
	MigrateToChatId int64 `json:"migrate_to_chat_id,omitempty"`

	// In case of flood control, the number of seconds to wait
	// before the request can be repeated.
	RetryAfter int `json:"retry_after,omitempty"`
}

type User struct {
	Id                    int64  `json:"id"`
	IsBot                 bool   `json:"is_bot"`
	FirstName             string `json:"first_name"`
	LastName              string `json:"last_name,omitempty"`
	Username              string `json:"username,omitempty"`
	LanguageCode          string `json:"language_code,omitempty"`
	CanJoinGroups         bool   `json:"can_join_groups,omitempty"`
	CanReadAllGroupMsgs   bool   `json:"can_read_all_group_messages,omitempty"`
	SupportsInlineQueries bool   `json:"supports_inline_queries,omitempty"`
}

type Chat struct {
	Id        int64  `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title,omitempty"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

const (
	ChatTypePrivate    = "private"
	ChatTypeGroup      = "group"
	ChatTypeSupergroup = "supergroup"
	ChatTypeChannel    = "channel"
)

type ChatMember struct {
	User   User   `json:"user"`
	Status string `json:"status"`
}
