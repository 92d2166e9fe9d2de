package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"assistant-client/internal/adapters/output/mock"
	"assistant-client/internal/domain/model"
	"assistant-client/internal/infrastructure/metrics"
	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const fixtureToken = "90ff4ba085545c1735ab6c29a916f9cb8c0b7222"

type memoryAuth struct {
	mu    sync.Mutex
	url   string
	token string
}

func (m *memoryAuth) SaveURL(_ context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.url = url
	return nil
}

func (m *memoryAuth) URL(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.url, nil
}

func (m *memoryAuth) SaveAuthorizationAnswer(_ context.Context, a *model.AuthorizationAnswer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = a.Token
	return nil
}

func (m *memoryAuth) Token(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memoryAuth) DeleteToken(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

func newMockedClient(t *testing.T, auth *memoryAuth) (*Client, *ClientProvider) {
	t.Helper()
	matcher, err := mock.NewRequestMatcher()
	require.NoError(t, err)
	provider := NewClientProvider(auth, ProviderConfig{
		DefaultURL: "https://api.ks-cube.tk/",
		Timeout:    time.Second,
		Transport:  mock.NewTransport(matcher, "", zap.NewNop()),
	}, zap.NewNop(), nil)
	return NewClient(provider, zap.NewNop()), provider
}

func TestClientProvider_SingleInstance(t *testing.T) {
	m := metrics.New()
	p := NewClientProvider(&memoryAuth{}, ProviderConfig{DefaultURL: "http://localhost/"}, zap.NewNop(), m)

	assert.True(t, p.IsDeleted())

	var wg sync.WaitGroup
	clients := make([]*resty.Client, 16)
	for i := range clients {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			clients[i] = p.Provide()
		}(i)
	}
	wg.Wait()

	for _, c := range clients {
		assert.Same(t, clients[0], c)
	}
	assert.False(t, p.IsDeleted())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ClientRebuilds))
	assert.Equal(t, "http://localhost", clients[0].BaseURL)
}

func TestClientProvider_DeleteAndRecreate(t *testing.T) {
	auth := &memoryAuth{}
	p := NewClientProvider(auth, ProviderConfig{DefaultURL: "http://localhost/"}, zap.NewNop(), nil)

	first := p.Provide()
	p.Delete()
	assert.True(t, p.IsDeleted())

	second := p.Provide()
	assert.NotSame(t, first, second)

	require.NoError(t, auth.SaveURL(context.Background(), "http://example.test/api/"))
	p.Recreate()
	assert.False(t, p.IsDeleted())
	third := p.Provide()
	assert.NotSame(t, second, third)
	assert.Equal(t, "http://example.test/api", third.BaseURL)
}

func TestClient_Auth(t *testing.T) {
	c, _ := newMockedClient(t, &memoryAuth{})

	answer, err := c.Auth(context.Background(), model.Authorization{Login: "login", Password: "pass"})
	require.NoError(t, err)
	assert.Equal(t, fixtureToken, answer.Token)
}

func TestClient_AuthWithErrorToken(t *testing.T) {
	c, _ := newMockedClient(t, &memoryAuth{token: mock.DefaultErrorToken})

	_, err := c.Auth(context.Background(), model.Authorization{Login: "login", Password: "pass"})
	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, CodeUnauthorized, apiErr.Code)
	assert.Equal(t, "invalid token", apiErr.Message)
}

func TestClient_RequiresToken(t *testing.T) {
	c, _ := newMockedClient(t, &memoryAuth{})

	_, err := c.Rooms(context.Background())
	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeNoToken, apiErr.Code)
	assert.True(t, errors.Is(err, model.ErrNoToken))
}

func TestClient_Resources(t *testing.T) {
	c, _ := newMockedClient(t, &memoryAuth{token: fixtureToken})
	ctx := context.Background()

	rooms, err := c.Rooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 6)

	things, err := c.Things(ctx, "R2")
	require.NoError(t, err)
	assert.Len(t, things, 3)

	echo, err := c.Action(ctx, model.NewMessage(model.ActionToggle, "R2", nil))
	require.NoError(t, err)
	assert.Equal(t, model.ActionToggle, echo.Body.Action)
}

func TestClient_HeadersOnTheWire(t *testing.T) {
	var gotAuth, gotRequestID, gotRoom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(HeaderAuth)
		gotRequestID = r.Header.Get(HeaderRequestID)
		gotRoom = r.URL.Query().Get("room")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"things":[{"id":"T1","type":"lamp","placement":"R1"}]}`))
	}))
	defer srv.Close()

	auth := &memoryAuth{url: srv.URL + "/", token: "secret"}
	p := NewClientProvider(auth, ProviderConfig{Timeout: time.Second}, zap.NewNop(), nil)
	c := NewClient(p, zap.NewNop())

	things, err := c.Things(context.Background(), "R1")
	require.NoError(t, err)
	assert.Len(t, things, 1)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "R1", gotRoom)
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"ERROR","message":"database down"}`))
	}))
	defer srv.Close()

	p := NewClientProvider(&memoryAuth{url: srv.URL, token: "secret"}, ProviderConfig{Timeout: time.Second}, zap.NewNop(), nil)
	c := NewClient(p, zap.NewNop())

	_, err := c.Rooms(context.Background())
	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, CodeHTTP, apiErr.Code)
	assert.Equal(t, "database down", apiErr.Message)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := NewClientProvider(&memoryAuth{url: url, token: "secret"}, ProviderConfig{Timeout: time.Second}, zap.NewNop(), nil)
	c := NewClient(p, zap.NewNop())

	_, err := c.Rooms(context.Background())
	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status)
	assert.Equal(t, CodeTransport, apiErr.Code)
	assert.NotNil(t, apiErr.Unwrap())
}

func TestClient_RejectedAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"","status":"ERROR"}`))
	}))
	defer srv.Close()

	p := NewClientProvider(&memoryAuth{url: srv.URL}, ProviderConfig{Timeout: time.Second}, zap.NewNop(), nil)
	c := NewClient(p, zap.NewNop())

	_, err := c.Auth(context.Background(), model.Authorization{Login: "a", Password: "b"})
	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeRejected, apiErr.Code)
}
