package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/python-telegram-bot/python-telegram-bot-sub007/errors"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/logger"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/rate"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/types"
)

const (
	DefaultBaseUrl = "https://api.telegram.org"
)

type apiClient struct {
	token      string
	baseUrl    string
	httpClient *http.Client
	limiter    rate.Limiter
	logger     logger.Logger
}

func newApiClient(
	token string,
	baseUrl string,
	httpClient *http.Client,
	logger logger.Logger,
	limiter rate.Limiter,
) *apiClient {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	if limiter == nil {
		limiter = &rate.NoopLimiter{}
	}
	return &apiClient{
		token:      token,
		baseUrl:    baseUrl,
		httpClient: httpClient,
		limiter:    limiter,
		logger:     logger,
	}
}

// envelope is the response wrapper every Bot API method returns.
// See: https://core.telegram.org/bots/api#making-requests
type envelope struct {
	Ok          bool                      `json:"ok"`
	Result      json.RawMessage           `json:"result,omitempty"`
	ErrorCode   int                       `json:"error_code,omitempty"`
	Description string                    `json:"description,omitempty"`
	Parameters  *types.ResponseParameters `json:"parameters,omitempty"`
}

// postJson calls a Bot API method and unmarshals the envelope's
// result into resData. Every method accepts POST with a JSON body,
// including the read-only ones, so there is a single send path.
func (c *apiClient) postJson(
	ctx context.Context,
	method string,
	reqData any,
	resData any,
) *errors.ApiError {
	body, apiErr := c.send(ctx, method, reqData)
	if apiErr != nil {
		return apiErr
	}
	if resData != nil {
		if jsonErr := json.Unmarshal(body, resData); jsonErr != nil {
			return &errors.ApiError{
				Stage:          errors.STAGE_AFTER_REQUEST,
				Type:           errors.TYPE_JSON_PARSE,
				SourceErr:      jsonErr,
				Body:           body,
				HttpStatusCode: http.StatusOK,
			}
		}
	}
	return nil
}

// send performs one HTTP round trip and peels the envelope,
// returning the raw result bytes.
func (c *apiClient) send(
	ctx context.Context,
	method string,
	reqData any,
) (json.RawMessage, *errors.ApiError) {
	endpoint := c.baseUrl + "/bot" + c.token + "/" + method

	var reqBody io.Reader
	if reqData != nil {
		data, jsonErr := json.Marshal(reqData)
		if jsonErr != nil {
			return nil, &errors.ApiError{
				Stage:     errors.STAGE_BEFORE_REQUEST,
				Type:      errors.TYPE_JSON_PARSE,
				SourceErr: jsonErr,
			}
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, reqBody)
	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_PREP,
			SourceErr: err,
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.limiter.Limit(req)
	c.logger.Debugf("api: calling %s", method)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_IO,
			SourceErr: err,
		}
	}

	body, err := io.ReadAll(res.Body)
	defer func() { _ = res.Body.Close() }()
	if err != nil {
		return nil, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_IO,
			Body:           body,
			HttpStatusCode: res.StatusCode,
			SourceErr:      err,
		}
	}

	// Telegram wraps errors in the same JSON envelope with a non-2xx
	// status, so the body is parsed before the status is judged.
	var env envelope
	if jsonErr := json.Unmarshal(body, &env); jsonErr != nil {
		if res.StatusCode != http.StatusOK {
			return nil, &errors.ApiError{
				Stage:          errors.STAGE_AFTER_REQUEST,
				Type:           errors.TYPE_HTTP_STATUS,
				Body:           body,
				HttpStatusCode: res.StatusCode,
			}
		}
		return nil, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_JSON_PARSE,
			SourceErr:      jsonErr,
			Body:           body,
			HttpStatusCode: res.StatusCode,
		}
	}

	if !env.Ok {
		c.logger.Debugf(
			"api: %s failed. error_code=%d, description=%q",
			method, env.ErrorCode, env.Description,
		)
		return nil, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_API,
			Body:           body,
			HttpStatusCode: res.StatusCode,
			ErrorCode:      env.ErrorCode,
			Description:    env.Description,
			Parameters:     env.Parameters,
		}
	}

	return env.Result, nil
}

// toNilErr converts a *errors.ApiError type to be a true nil interface.
// Internally, a Go interface has a Type and Value.
// An interface value is nil only if the V and T are both unset.
// See: https://go.dev/doc/faq#nil_error
func toNilErr[T any](r T, e *errors.ApiError) (T, error) {
	if e != nil {
		return r, e
	}
	return r, nil
}
