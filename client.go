package telegram_go

import (
	"net/http"

	"github.com/python-telegram-bot/python-telegram-bot-sub007/api"
)

// Client is the entry point to the Telegram Bot API. It groups the
// supported method families behind one shared HTTP client; every
// family accessor is safe for concurrent use.
type Client struct {
	httpClient *http.Client

	updates  *api.Updates
	messages *api.Messages
	chats    *api.Chats
	bot      *api.Bot
}

func NewClient(token string, opts ...ConfigOption) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.transport
	httpClient.Timeout = cfg.timeout

	return &Client{
		httpClient: httpClient,
		updates:    api.NewUpdatesApi(token, cfg.baseUrl, httpClient, cfg.logger, cfg.limiter),
		messages:   api.NewMessagesApi(token, cfg.baseUrl, httpClient, cfg.logger, cfg.limiter),
		chats:      api.NewChatsApi(token, cfg.baseUrl, httpClient, cfg.logger, cfg.limiter),
		bot:        api.NewBotApi(token, cfg.baseUrl, httpClient, cfg.logger, cfg.limiter),
	}
}

func (c *Client) Updates() *api.Updates {
	return c.updates
}

func (c *Client) Messages() *api.Messages {
	return c.messages
}

func (c *Client) Chats() *api.Chats {
	return c.chats
}

func (c *Client) Bot() *api.Bot {
	return c.bot
}
