package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/huellitas/adoption-client/internal/core/domain"
)

// Auth groups the authentication endpoints. It satisfies ports.AuthAPI.
type Auth struct{ c *Client }

func (c *Client) Auth() Auth { return Auth{c} }

// Login authenticates and returns the raw response body; the session
// service owns token and role extraction because the payload shape has
// drifted across backend builds.
func (a Auth) Login(ctx context.Context, creds domain.Credentials) (json.RawMessage, error) {
	res, err := a.c.Do(ctx, http.MethodPost, "/auth/login", creds)
	if err != nil {
		return nil, fmt.Errorf("api.Login: %w", err)
	}
	return res.JSON, nil
}

// RegisterAdopter creates an adopter account and returns the raw body,
// which may or may not carry a token depending on the backend build.
func (a Auth) RegisterAdopter(ctx context.Context, req domain.RegisterRequest) (json.RawMessage, error) {
	res, err := a.c.Do(ctx, http.MethodPost, "/auth/register/adopter", req)
	if err != nil {
		return nil, fmt.Errorf("api.RegisterAdopter: %w", err)
	}
	return res.JSON, nil
}

// Profile fetches the current authenticated user.
func (a Auth) Profile(ctx context.Context) (*domain.AccountUser, error) {
	var user domain.AccountUser
	if err := a.c.get(ctx, "/auth/profile", &user); err != nil {
		return nil, fmt.Errorf("api.Profile: %w", err)
	}
	return &user, nil
}
