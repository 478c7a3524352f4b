package api

import (
	"context"
	"net/http"

	"github.com/python-telegram-bot/python-telegram-bot-sub007/logger"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/rate"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/types"
)

const (
	methodSendMessage     = "sendMessage"
	methodForwardMessage  = "forwardMessage"
	methodEditMessageText = "editMessageText"
	methodDeleteMessage   = "deleteMessage"
	methodSendChatAction  = "sendChatAction"
)

// Messages implements the message sending and editing API methods.
// See: https://core.telegram.org/bots/api#sendmessage
type Messages struct {
	api *apiClient
}

func NewMessagesApi(
	token string,
	baseUrl string,
	httpClient *http.Client,
	logger logger.Logger,
	limiter rate.Limiter,
) *Messages {
	return &Messages{
		api: newApiClient(token, baseUrl, httpClient, logger, limiter),
	}
}

func (m *Messages) Send(ctx context.Context, req types.SendMessageRequest) (*types.Message, error) {
	var res types.Message
	return toNilErr(&res, m.api.postJson(
		ctx, methodSendMessage, req, &res,
	))
}

func (m *Messages) Forward(ctx context.Context, req types.ForwardMessageRequest) (*types.Message, error) {
	var res types.Message
	return toNilErr(&res, m.api.postJson(
		ctx, methodForwardMessage, req, &res,
	))
}

func (m *Messages) EditText(ctx context.Context, req types.EditMessageTextRequest) (*types.Message, error) {
	var res types.Message
	return toNilErr(&res, m.api.postJson(
		ctx, methodEditMessageText, req, &res,
	))
}

func (m *Messages) Delete(ctx context.Context, req types.DeleteMessageRequest) (bool, error) {
	var res bool
	return toNilErr(res, m.api.postJson(
		ctx, methodDeleteMessage, req, &res,
	))
}

func (m *Messages) SendChatAction(ctx context.Context, req types.SendChatActionRequest) (bool, error) {
	var res bool
	return toNilErr(res, m.api.postJson(
		ctx, methodSendChatAction, req, &res,
	))
}
