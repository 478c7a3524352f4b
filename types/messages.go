package types

type Message struct {
	MessageId      int64           `json:"message_id"`
	From           *User           `json:"from,omitempty"`
	Date           int64           `json:"date"`
	Chat           Chat            `json:"chat"`
	Text           string          `json:"text,omitempty"`
	Entities       []MessageEntity `json:"entities,omitempty"`
	Caption        string          `json:"caption,omitempty"`
	ReplyToMessage *Message        `json:"reply_to_message,omitempty"`
	EditDate       int64           `json:"edit_date,omitempty"`
	NewChatMembers []User          `json:"new_chat_members,omitempty"`
	LeftChatMember *User           `json:"left_chat_member,omitempty"`
	PinnedMessage  *Message        `json:"pinned_message,omitempty"`
}

type MessageEntity struct {
	Type   string `json:"type"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Url    string `json:"url,omitempty"`
	User   *User  `json:"user,omitempty"`
}

type ReplyParameters struct {
	MessageId int64 `json:"message_id"`
	ChatId    int64 `json:"chat_id,omitempty"`
}

type SendMessageRequest struct {
	ChatId          int64            `json:"chat_id"`
	Text            string           `json:"text"`
	ParseMode       string           `json:"parse_mode,omitempty"`
	ReplyParameters *ReplyParameters `json:"reply_parameters,omitempty"`

	// Sends the message silently. Users will receive
	// a notification with no sound.
	DisableNotification bool `json:"disable_notification,omitempty"`
}

type ForwardMessageRequest struct {
	ChatId              int64 `json:"chat_id"`
	FromChatId          int64 `json:"from_chat_id"`
	MessageId           int64 `json:"message_id"`
	DisableNotification bool  `json:"disable_notification,omitempty"`
}

type EditMessageTextRequest struct {
	ChatId    int64  `json:"chat_id"`
	MessageId int64  `json:"message_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type DeleteMessageRequest struct {
	ChatId    int64 `json:"chat_id"`
	MessageId int64 `json:"message_id"`
}

type SendChatActionRequest struct {
	ChatId int64  `json:"chat_id"`
	Action string `json:"action"`
}

const (
	ChatActionTyping         = "typing"
	ChatActionUploadPhoto    = "upload_photo"
	ChatActionUploadDocument = "upload_document"
)
