package ports

import (
	"context"

	"assistant-client/internal/domain/model"
)

type AuthRepository interface {
	SaveURL(ctx context.Context, url string) error
	URL(ctx context.Context) (string, error)
	SaveAuthorizationAnswer(ctx context.Context, answer *model.AuthorizationAnswer) error
	Token(ctx context.Context) (string, error)
	DeleteToken(ctx context.Context) error
}
