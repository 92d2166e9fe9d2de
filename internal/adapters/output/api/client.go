package api

import (
	"context"
	"fmt"
	"net/http"

	"assistant-client/internal/domain/model"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	PathAuth     = "/auth"
	PathRooms    = "/rooms"
	PathThings   = "/things"
	PathMessages = "/messages"
)

// Error codes carried by model.APIError.
const (
	CodeTransport    = "transport"
	CodeUnauthorized = "unauthorized"
	CodeHTTP         = "http_error"
	CodeNoToken      = "no_token"
	CodeTokenStore   = "token_store"
	CodeRejected     = "rejected"
)

// Client implements ports.AssistantAPI on top of the shared resty client.
type Client struct {
	provider *ClientProvider
	log      *zap.Logger
}

func NewClient(provider *ClientProvider, log *zap.Logger) *Client {
	return &Client{provider: provider, log: log.Named("api")}
}

func (c *Client) Auth(ctx context.Context, authorization model.Authorization) (*model.AuthorizationAnswer, error) {
	var answer model.AuthorizationAnswer
	if err := c.do(ctx, http.MethodPost, PathAuth, authorization, nil, &answer); err != nil {
		return nil, err
	}
	if !answer.Valid() {
		return nil, &model.APIError{
			Status:  http.StatusOK,
			Code:    CodeRejected,
			Message: fmt.Sprintf("authorization rejected (status %q)", answer.Status),
		}
	}
	return &answer, nil
}

func (c *Client) Rooms(ctx context.Context) ([]model.Room, error) {
	var list model.RoomList
	if err := c.do(ctx, http.MethodGet, PathRooms, nil, nil, &list); err != nil {
		return nil, err
	}
	return list.Rooms, nil
}

func (c *Client) Things(ctx context.Context, roomID string) ([]model.Thing, error) {
	var list model.ThingList
	if err := c.do(ctx, http.MethodGet, PathThings, nil, map[string]string{"room": roomID}, &list); err != nil {
		return nil, err
	}
	return list.Things, nil
}

func (c *Client) Action(ctx context.Context, message model.Message) (*model.Message, error) {
	var echo model.Message
	if err := c.do(ctx, http.MethodPost, PathMessages, message, nil, &echo); err != nil {
		return nil, err
	}
	return &echo, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, query map[string]string, result interface{}) error {
	req := c.provider.Provide().R().
		SetContext(ctx).
		SetResult(result).
		SetError(&model.ErrorBody{})
	if body != nil {
		req.SetBody(body)
	}
	if query != nil {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.log.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return model.AsAPIError(CodeTransport, err)
	}
	if !resp.IsSuccess() {
		apiErr := responseError(resp)
		c.log.Warn("request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", apiErr.Status),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	c.log.Debug("request done", zap.String("method", method), zap.String("path", path), zap.Int("status_code", resp.StatusCode()))
	return nil
}

func responseError(resp *resty.Response) *model.APIError {
	apiErr := &model.APIError{Status: resp.StatusCode(), Code: CodeHTTP}
	if apiErr.Status == http.StatusUnauthorized {
		apiErr.Code = CodeUnauthorized
	}
	if body, ok := resp.Error().(*model.ErrorBody); ok && body.Message != "" {
		apiErr.Message = body.Message
	} else {
		apiErr.Message = http.StatusText(apiErr.Status)
	}
	return apiErr
}
