package api

import (
	"net/http"

	"assistant-client/internal/domain/model"
	"assistant-client/internal/ports"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderAuth      = "Authorization"
)

// AuthInterceptor injects the stored bearer token into every request. Only
// the auth call itself may go out without one.
type AuthInterceptor struct {
	auth ports.AuthRepository
}

func NewAuthInterceptor(auth ports.AuthRepository) *AuthInterceptor {
	return &AuthInterceptor{auth: auth}
}

func (i *AuthInterceptor) Intercept(_ *resty.Client, req *resty.Request) error {
	req.SetHeader(HeaderRequestID, uuid.NewString())

	token, err := i.auth.Token(req.Context())
	if err != nil {
		return &model.APIError{Code: CodeTokenStore, Message: "failed to read token", Err: err}
	}
	if token != "" {
		req.SetHeader(HeaderAuth, "Bearer "+token)
		return nil
	}
	if isAuthRequest(req) {
		return nil
	}
	return &model.APIError{
		Status:  http.StatusUnauthorized,
		Code:    CodeNoToken,
		Message: "not authorized, call auth first",
		Err:     model.ErrNoToken,
	}
}

func isAuthRequest(req *resty.Request) bool {
	return req.Method == http.MethodPost && req.URL == PathAuth
}
