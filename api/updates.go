package api

import (
	"context"
	"net/http"

	"github.com/python-telegram-bot/python-telegram-bot-sub007/logger"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/rate"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/types"
)

const (
	methodGetUpdates     = "getUpdates"
	methodSetWebhook     = "setWebhook"
	methodDeleteWebhook  = "deleteWebhook"
	methodGetWebhookInfo = "getWebhookInfo"
)

// Updates implements the update-receiving API methods.
// See: https://core.telegram.org/bots/api#getting-updates
type Updates struct {
	api *apiClient
}

func NewUpdatesApi(
	token string,
	baseUrl string,
	httpClient *http.Client,
	logger logger.Logger,
	limiter rate.Limiter,
) *Updates {
	return &Updates{
		api: newApiClient(token, baseUrl, httpClient, logger, limiter),
	}
}

// Get long-polls for new updates. The HTTP round trip can block for
// up to req.Timeout seconds, so the caller's http.Client timeout must
// exceed it.
func (u *Updates) Get(ctx context.Context, req types.GetUpdatesRequest) ([]types.Update, error) {
	var res []types.Update
	return toNilErr(res, u.api.postJson(
		ctx, methodGetUpdates, req, &res,
	))
}

func (u *Updates) SetWebhook(ctx context.Context, req types.SetWebhookRequest) (bool, error) {
	var res bool
	return toNilErr(res, u.api.postJson(
		ctx, methodSetWebhook, req, &res,
	))
}

func (u *Updates) DeleteWebhook(ctx context.Context, req types.DeleteWebhookRequest) (bool, error) {
	var res bool
	return toNilErr(res, u.api.postJson(
		ctx, methodDeleteWebhook, req, &res,
	))
}

func (u *Updates) WebhookInfo(ctx context.Context) (*types.WebhookInfo, error) {
	var res types.WebhookInfo
	return toNilErr(&res, u.api.postJson(
		ctx, methodGetWebhookInfo, nil, &res,
	))
}
