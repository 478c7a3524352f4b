package errors

import (
	"errors"
	"fmt"
	"time"

	"github.com/python-telegram-bot/python-telegram-bot-sub007/types"
)

const (
	STAGE_BEFORE_REQUEST = "before-request"
	STAGE_REQUEST        = "request"
	STAGE_AFTER_REQUEST  = "after-request"

	TYPE_UNKNOWN      = "unknown"
	TYPE_JSON_PARSE   = "json"
	TYPE_REQUEST_PREP = "request-prep"
	TYPE_IO           = "io"
	TYPE_HTTP_STATUS  = "not-ok-http-status"
	TYPE_API          = "telegram-api"
	TYPE_INVALID_DATA = "invalid-data"
)

// ApiError is the error type produced by the HTTP layer for every
// failed Bot API call. ErrorCode, Description and Parameters come
// from the API response envelope when the server returned one;
// SourceErr carries transport-level failures.
type ApiError struct {
	Stage          string
	Type           string
	SourceErr      error
	Body           []byte
	HttpStatusCode int

	ErrorCode   int
	Description string
	Parameters  *types.ResponseParameters
}

var _ error = &ApiError{}

func (e *ApiError) Error() string {
	var err string
	if e.SourceErr != nil {
		err = e.SourceErr.Error()
	} else if e.Description != "" {
		err = e.Description
	} else {
		err = string(e.Body)
	}
	return fmt.Sprintf(
		"request to Telegram failed during '%s' stage with error type '%s', httpStatus: '%d'; original err: %v",
		e.Stage, e.Type, e.HttpStatusCode, err,
	)
}

func (e *ApiError) Unwrap() error {
	return e.SourceErr
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &ApiError{}) returns false:
// ok := errors.Is(errors.Join(&ApiError{}), &ApiError{})
// ^ would be false
func (e *ApiError) Is(other error) bool {
	var err *ApiError
	return errors.As(other, &err) && err != nil
}

// RetryAfter returns the server-mandated cool-down attached to a
// flood-control response, or 0 when the response carried none.
func (e *ApiError) RetryAfter() time.Duration {
	if e.Parameters == nil || e.Parameters.RetryAfter <= 0 {
		return 0
	}
	return time.Duration(e.Parameters.RetryAfter) * time.Second
}
