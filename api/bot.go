package api

import (
	"context"
	"net/http"

	"github.com/python-telegram-bot/python-telegram-bot-sub007/logger"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/rate"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/types"
)

const (
	methodGetMe  = "getMe"
	methodLogOut = "logOut"
	methodClose  = "close"
)

// Bot implements the bot identity and session API methods.
// GetMe doubles as the cheapest way to validate a token.
type Bot struct {
	api *apiClient
}

func NewBotApi(
	token string,
	baseUrl string,
	httpClient *http.Client,
	logger logger.Logger,
	limiter rate.Limiter,
) *Bot {
	return &Bot{
		api: newApiClient(token, baseUrl, httpClient, logger, limiter),
	}
}

func (b *Bot) GetMe(ctx context.Context) (*types.User, error) {
	var res types.User
	return toNilErr(&res, b.api.postJson(
		ctx, methodGetMe, nil, &res,
	))
}

// LogOut logs the bot out of the cloud Bot API server, intended
// before switching to a locally hosted server.
func (b *Bot) LogOut(ctx context.Context) (bool, error) {
	var res bool
	return toNilErr(res, b.api.postJson(
		ctx, methodLogOut, nil, &res,
	))
}

// Close shuts down the current API server instance for this bot
// before it is moved to another data center.
func (b *Bot) Close(ctx context.Context) (bool, error) {
	var res bool
	return toNilErr(res, b.api.postJson(
		ctx, methodClose, nil, &res,
	))
}
