package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/python-telegram-bot/python-telegram-bot-sub007/logger"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/types"
)

func TestNewMessagesApi(t *testing.T) {
	client := &http.Client{}
	api := NewMessagesApi(testToken, "", client, &logger.Noop{}, nil)

	assert.NotNil(t, api)
	assert.NotNil(t, api.api)
	assert.Equal(t, testToken, api.api.token)
}

func TestMessages_Send(t *testing.T) {
	testCases := []struct {
		name      string
		request   types.SendMessageRequest
		resBody   []byte
		resCode   int
		expectId  int64
		expectErr bool
	}{
		{
			name:     "sent",
			request:  types.SendMessageRequest{ChatId: 5, Text: "hello"},
			resBody:  []byte(`{"ok":true,"result":{"message_id":77,"date":1,"chat":{"id":5,"type":"private"},"text":"hello"}}`),
			resCode:  200,
			expectId: 77,
		},
		{
			name:      "chat not found",
			request:   types.SendMessageRequest{ChatId: 404, Text: "hello"},
			resBody:   []byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`),
			resCode:   400,
			expectErr: true,
		},
		{
			name:      "bot blocked by user",
			request:   types.SendMessageRequest{ChatId: 6, Text: "hello"},
			resBody:   []byte(`{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`),
			resCode:   403,
			expectErr: true,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			c := httpClient(tt.resBody, tt.resCode, nil)
			api := NewMessagesApi(testToken, "", c, &logger.Noop{}, nil)

			msg, err := api.Send(context.Background(), tt.request)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectId, msg.MessageId)

			tr, _ := c.Transport.(*testTransport)
			assert.Equal(
				t,
				"https://api.telegram.org/bot"+testToken+"/sendMessage",
				tr.Url(),
			)
		})
	}
}

func TestMessages_EditText(t *testing.T) {
	c := httpClient(
		[]byte(`{"ok":true,"result":{"message_id":10,"date":1,"chat":{"id":5,"type":"private"},"text":"edited","edit_date":2}}`),
		200,
		nil,
	)
	api := NewMessagesApi(testToken, "", c, &logger.Noop{}, nil)

	msg, err := api.EditText(context.Background(), types.EditMessageTextRequest{
		ChatId: 5, MessageId: 10, Text: "edited",
	})
	require.NoError(t, err)
	assert.Equal(t, "edited", msg.Text)
	assert.EqualValues(t, 2, msg.EditDate)
}

func TestMessages_Delete(t *testing.T) {
	c := httpClient([]byte(`{"ok":true,"result":true}`), 200, nil)
	api := NewMessagesApi(testToken, "", c, &logger.Noop{}, nil)

	ok, err := api.Delete(context.Background(), types.DeleteMessageRequest{ChatId: 5, MessageId: 10})
	require.NoError(t, err)
	assert.True(t, ok)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t, `{"chat_id":5,"message_id":10}`, tr.Body())
}

func TestMessages_Forward(t *testing.T) {
	c := httpClient(
		[]byte(`{"ok":true,"result":{"message_id":11,"date":1,"chat":{"id":6,"type":"private"}}}`),
		200,
		nil,
	)
	api := NewMessagesApi(testToken, "", c, &logger.Noop{}, nil)

	msg, err := api.Forward(context.Background(), types.ForwardMessageRequest{
		ChatId: 6, FromChatId: 5, MessageId: 10,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 11, msg.MessageId)
}

func TestMessages_SendChatAction(t *testing.T) {
	c := httpClient([]byte(`{"ok":true,"result":true}`), 200, nil)
	api := NewMessagesApi(testToken, "", c, &logger.Noop{}, nil)

	ok, err := api.SendChatAction(context.Background(), types.SendChatActionRequest{
		ChatId: 5, Action: types.ChatActionTyping,
	})
	require.NoError(t, err)
	assert.True(t, ok)
}
