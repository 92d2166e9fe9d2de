package api

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"assistant-client/internal/infrastructure/metrics"
	"assistant-client/internal/ports"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const urlLookupTimeout = 2 * time.Second

type ProviderConfig struct {
	DefaultURL string
	Timeout    time.Duration
	// Transport replaces the network, e.g. with the mocking interceptor.
	Transport http.RoundTripper
}

// ClientProvider lazily builds the shared resty client. The fast path is a
// lock-free load; building happens under mu with a second check.
type ClientProvider struct {
	client atomic.Pointer[resty.Client]
	mu     sync.Mutex

	auth        ports.AuthRepository
	interceptor *AuthInterceptor
	cfg         ProviderConfig
	log         *zap.Logger
	metrics     *metrics.Metrics
}

func NewClientProvider(auth ports.AuthRepository, cfg ProviderConfig, log *zap.Logger, m *metrics.Metrics) *ClientProvider {
	return &ClientProvider{
		auth:        auth,
		interceptor: NewAuthInterceptor(auth),
		cfg:         cfg,
		log:         log.Named("http"),
		metrics:     m,
	}
}

func (p *ClientProvider) Provide() *resty.Client {
	if c := p.client.Load(); c != nil {
		return c
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if c := p.client.Load(); c != nil {
		return c
	}
	c := p.build()
	p.client.Store(c)
	return c
}

// Recreate drops the current client and builds a new one right away.
func (p *ClientProvider) Recreate() {
	p.mu.Lock()
	p.client.Store(nil)
	p.mu.Unlock()
	p.Provide()
}

// Delete drops the current client. The next Provide builds a fresh one.
func (p *ClientProvider) Delete() {
	p.mu.Lock()
	p.client.Store(nil)
	p.mu.Unlock()
	p.log.Debug("http client deleted")
}

func (p *ClientProvider) IsDeleted() bool {
	return p.client.Load() == nil
}

func (p *ClientProvider) build() *resty.Client {
	baseURL := p.baseURL()

	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetLogger(p.log.Sugar()).
		OnBeforeRequest(p.interceptor.Intercept)
	if p.cfg.Timeout > 0 {
		c.SetTimeout(p.cfg.Timeout)
	}
	if p.cfg.Transport != nil {
		c.SetTransport(p.cfg.Transport)
	}

	p.metrics.ObserveRebuild()
	p.log.Debug("http client built", zap.String("base_url", baseURL), zap.Bool("mocked", p.cfg.Transport != nil))
	return c
}

func (p *ClientProvider) baseURL() string {
	ctx, cancel := context.WithTimeout(context.Background(), urlLookupTimeout)
	defer cancel()

	url, err := p.auth.URL(ctx)
	if err != nil {
		p.log.Warn("failed to read stored server url, using default", zap.Error(err))
	}
	if url == "" {
		url = p.cfg.DefaultURL
	}
	return strings.TrimSuffix(url, "/")
}
