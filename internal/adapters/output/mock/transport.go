package mock

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// DefaultErrorToken is the token that makes every mocked request fail.
const DefaultErrorToken = "Error"

// Transport is the mocking interceptor. It answers requests from a
// RequestMatcher instead of the network.
type Transport struct {
	matcher    *RequestMatcher
	errorToken string
	log        *zap.Logger
}

func NewTransport(matcher *RequestMatcher, errorToken string, log *zap.Logger) *Transport {
	if errorToken == "" {
		errorToken = DefaultErrorToken
	}
	return &Transport{matcher: matcher, errorToken: errorToken, log: log.Named("mock")}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("mock: read request body: %w", err)
		}
	}

	status, payload := t.serve(req, body)
	t.log.Debug("mocked request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", status),
	)

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("mock: encode response: %w", err)
	}
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        http.Header{"Content-Type": []string{"application/json"}},
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentLength: int64(len(data)),
		Request:       req,
	}, nil
}

func (t *Transport) serve(req *http.Request, body []byte) (int, interface{}) {
	token := strings.TrimPrefix(req.Header.Get("Authorization"), "Bearer ")
	if token == t.errorToken {
		return http.StatusUnauthorized, errorBody("invalid token")
	}
	h, ok := t.matcher.Match(req)
	if !ok {
		return http.StatusNotFound, errorBody("no such endpoint")
	}
	return h(req, body)
}
