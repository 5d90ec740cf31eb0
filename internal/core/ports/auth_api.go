package ports

import (
	"context"
	"encoding/json"

	"github.com/huellitas/adoption-client/internal/core/domain"
)

// AuthAPI is the slice of the backend the session manager talks to. Login
// and RegisterAdopter return the raw response body because the backend's
// field naming has drifted across builds; the session service owns the
// shape-tolerant extraction.
type AuthAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (json.RawMessage, error)
	RegisterAdopter(ctx context.Context, req domain.RegisterRequest) (json.RawMessage, error)
	Profile(ctx context.Context) (*domain.AccountUser, error)
}
