package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"assistant-client/internal/domain/model"
	"assistant-client/internal/infrastructure/metrics"
	"assistant-client/internal/ports"
	"go.uber.org/zap"
)

const (
	opAuth   = "auth"
	opRooms  = "rooms"
	opThings = "things"
	opAction = "action"

	codeUnknown    = "unknown"
	codeTokenStore = "token_store"
)

// Repository mediates between the remote API and the local cache. Every
// resource call goes to the network first; on success the result is written
// through to the cache, on failure whatever is cached is returned together
// with the *model.APIError.
type Repository struct {
	api     ports.AssistantAPI
	cache   ports.CacheRepository
	auth    ports.AuthRepository
	client  ports.ClientLifecycle
	log     *zap.Logger
	metrics *metrics.Metrics
}

func NewRepository(
	api ports.AssistantAPI,
	cache ports.CacheRepository,
	auth ports.AuthRepository,
	client ports.ClientLifecycle,
	log *zap.Logger,
	m *metrics.Metrics,
) *Repository {
	return &Repository{
		api:     api,
		cache:   cache,
		auth:    auth,
		client:  client,
		log:     log.Named("repository"),
		metrics: m,
	}
}

// Auth logs in and stores the returned token. A failed auth drops any stored
// token and tears down the shared HTTP client.
func (r *Repository) Auth(ctx context.Context, authorization model.Authorization) (*model.AuthorizationAnswer, error) {
	answer, err := r.api.Auth(ctx, authorization)
	r.metrics.ObserveRequest(opAuth, err)
	if err != nil {
		if derr := r.auth.DeleteToken(context.WithoutCancel(ctx)); derr != nil {
			r.log.Warn("failed to delete token after auth failure", zap.Error(derr))
		}
		r.client.Delete()
		r.log.Info("auth failed", zap.Error(err))
		return nil, model.AsAPIError(codeUnknown, err)
	}

	if err := r.auth.SaveAuthorizationAnswer(ctx, answer); err != nil {
		return nil, &model.APIError{Code: codeTokenStore, Message: "failed to store token", Err: err}
	}
	r.log.Info("auth succeeded")
	return answer, nil
}

func (r *Repository) Rooms(ctx context.Context) ([]model.Room, error) {
	rooms, err := r.api.Rooms(ctx)
	r.metrics.ObserveRequest(opRooms, err)
	if err != nil {
		cached, cerr := r.cache.Rooms(context.WithoutCancel(ctx))
		if cerr != nil {
			r.log.Warn("failed to read cached rooms", zap.Error(cerr))
			cached = nil
		}
		if len(cached) > 0 {
			r.metrics.ObserveFallback(opRooms)
			r.log.Info("serving cached rooms", zap.Int("count", len(cached)), zap.Error(err))
		}
		return cached, model.AsAPIError(codeUnknown, err)
	}

	if err := r.cache.SaveRooms(ctx, rooms); err != nil {
		r.log.Warn("failed to cache rooms", zap.Error(err))
	}
	return rooms, nil
}

func (r *Repository) Things(ctx context.Context, roomID string) ([]model.Thing, error) {
	things, err := r.api.Things(ctx, roomID)
	r.metrics.ObserveRequest(opThings, err)
	if err != nil {
		cached, cerr := r.cache.Things(context.WithoutCancel(ctx), roomID)
		if cerr != nil {
			r.log.Warn("failed to read cached things", zap.String("room_id", roomID), zap.Error(cerr))
			cached = nil
		}
		if len(cached) > 0 {
			r.metrics.ObserveFallback(opThings)
			r.log.Info("serving cached things", zap.String("room_id", roomID), zap.Int("count", len(cached)), zap.Error(err))
		}
		return cached, model.AsAPIError(codeUnknown, err)
	}

	if err := r.cache.SaveThings(ctx, roomID, things); err != nil {
		r.log.Warn("failed to cache things", zap.String("room_id", roomID), zap.Error(err))
	}
	return things, nil
}

// Action sends a control message. Actions are never cached.
func (r *Repository) Action(ctx context.Context, message model.Message) (*model.Message, error) {
	if message.Body.Action == "" || message.Body.ID == "" {
		return nil, &model.APIError{Code: model.CodeInvalidRequest, Message: "action and id are required"}
	}
	echo, err := r.api.Action(ctx, message)
	r.metrics.ObserveRequest(opAction, err)
	if err != nil {
		return nil, model.AsAPIError(codeUnknown, err)
	}
	return echo, nil
}

// Logout forgets the token, empties the cache and drops the HTTP client.
func (r *Repository) Logout(ctx context.Context) error {
	var errs []error
	if err := r.auth.DeleteToken(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := r.cache.Clear(ctx); err != nil {
		errs = append(errs, err)
	}
	r.client.Delete()
	return errors.Join(errs...)
}

// SaveURL stores the server base URL and rebuilds the client so the next
// request goes to it.
func (r *Repository) SaveURL(ctx context.Context, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &model.APIError{Code: model.CodeInvalidRequest, Message: fmt.Sprintf("invalid server url %q", raw), Err: err}
	}
	if err := r.auth.SaveURL(ctx, raw); err != nil {
		return fmt.Errorf("save url: %w", err)
	}
	r.client.Recreate()
	return nil
}

func (r *Repository) URL(ctx context.Context) (string, error) {
	return r.auth.URL(ctx)
}
