package model

import (
	"errors"
	"fmt"
)

// ErrNoToken is the cause of the APIError returned when a request that needs
// a token is issued before a successful auth.
var ErrNoToken = errors.New("no authorization token")

// ErrorBody is the JSON error document sent by the server.
type ErrorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// APIError is the only error kind the repository hands back to callers. It
// covers HTTP failures (Status set) and transport failures (Status 0).
type APIError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, msg)
	}
	return fmt.Sprintf("api error (%s): %s", e.Code, msg)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// AsAPIError wraps err into an APIError unless it already is one.
func AsAPIError(code string, err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{Code: code, Err: err}
}

// Codes shared by every layer that builds an APIError.
const (
	CodeInvalidRequest = "invalid_request"
	CodeNotFound       = "not_found"
)
