package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/python-telegram-bot/python-telegram-bot-sub007/logger"
)

func TestBot_GetMe(t *testing.T) {
	c := httpClient(
		[]byte(`{"ok":true,"result":{"id":42,"is_bot":true,"first_name":"testbot","username":"test_bot"}}`),
		200,
		nil,
	)
	api := NewBotApi(testToken, "", c, &logger.Noop{}, nil)

	me, err := api.GetMe(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 42, me.Id)
	assert.True(t, me.IsBot)
	assert.Equal(t, "test_bot", me.Username)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t, "https://api.telegram.org/bot"+testToken+"/getMe", tr.Url())
}

func TestBot_GetMe_invalid_token(t *testing.T) {
	c := httpClient(
		[]byte(`{"ok":false,"error_code":401,"description":"Unauthorized"}`),
		401,
		nil,
	)
	api := NewBotApi(testToken, "", c, &logger.Noop{}, nil)

	_, err := api.GetMe(context.Background())
	assert.Error(t, err)
}

func TestBot_LogOut(t *testing.T) {
	c := httpClient([]byte(`{"ok":true,"result":true}`), 200, nil)
	api := NewBotApi(testToken, "", c, &logger.Noop{}, nil)

	ok, err := api.LogOut(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBot_Close(t *testing.T) {
	c := httpClient([]byte(`{"ok":true,"result":true}`), 200, nil)
	api := NewBotApi(testToken, "", c, &logger.Noop{}, nil)

	ok, err := api.Close(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}
