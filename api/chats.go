package api

import (
	"context"
	"net/http"

	"github.com/python-telegram-bot/python-telegram-bot-sub007/logger"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/rate"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/types"
)

const (
	methodGetChat       = "getChat"
	methodGetChatMember = "getChatMember"
	methodLeaveChat     = "leaveChat"
)

// Chats implements the chat information API methods.
type Chats struct {
	api *apiClient
}

func NewChatsApi(
	token string,
	baseUrl string,
	httpClient *http.Client,
	logger logger.Logger,
	limiter rate.Limiter,
) *Chats {
	return &Chats{
		api: newApiClient(token, baseUrl, httpClient, logger, limiter),
	}
}

func (c *Chats) Get(ctx context.Context, chatId int64) (*types.Chat, error) {
	var res types.Chat
	return toNilErr(&res, c.api.postJson(
		ctx, methodGetChat, chatIdRequest{chatId}, &res,
	))
}

func (c *Chats) Member(ctx context.Context, chatId, userId int64) (*types.ChatMember, error) {
	var res types.ChatMember
	return toNilErr(&res, c.api.postJson(
		ctx, methodGetChatMember, chatMemberRequest{chatId, userId}, &res,
	))
}

func (c *Chats) Leave(ctx context.Context, chatId int64) (bool, error) {
	var res bool
	return toNilErr(res, c.api.postJson(
		ctx, methodLeaveChat, chatIdRequest{chatId}, &res,
	))
}

type chatIdRequest struct {
	ChatId int64 `json:"chat_id"`
}

type chatMemberRequest struct {
	ChatId int64 `json:"chat_id"`
	UserId int64 `json:"user_id"`
}
