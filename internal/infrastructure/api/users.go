package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/huellitas/adoption-client/internal/core/domain"
)

// Users groups the user-management endpoints (privileged).
type Users struct{ c *Client }

func (c *Client) Users() Users { return Users{c} }

func (u Users) List(ctx context.Context) ([]domain.AccountUser, error) {
	var users []domain.AccountUser
	if err := u.c.get(ctx, "/users", &users); err != nil {
		return nil, fmt.Errorf("api.Users.List: %w", err)
	}
	return users, nil
}

func (u Users) Create(ctx context.Context, in domain.UserInput) (*domain.AccountUser, error) {
	var user domain.AccountUser
	if err := u.c.send(ctx, http.MethodPost, "/users", in, &user); err != nil {
		return nil, fmt.Errorf("api.Users.Create: %w", err)
	}
	return &user, nil
}

func (u Users) Update(ctx context.Context, id int, in domain.UserInput) (*domain.AccountUser, error) {
	var user domain.AccountUser
	if err := u.c.send(ctx, http.MethodPut, "/users/"+strconv.Itoa(id), in, &user); err != nil {
		return nil, fmt.Errorf("api.Users.Update: %w", err)
	}
	return &user, nil
}

func (u Users) Delete(ctx context.Context, id int) error {
	if err := u.c.send(ctx, http.MethodDelete, "/users/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("api.Users.Delete: %w", err)
	}
	return nil
}

// Adopters groups the adopter lookup endpoints (privileged).
type Adopters struct{ c *Client }

func (c *Client) Adopters() Adopters { return Adopters{c} }

func (a Adopters) List(ctx context.Context) ([]domain.AccountUser, error) {
	var adopters []domain.AccountUser
	if err := a.c.get(ctx, "/adopters", &adopters); err != nil {
		return nil, fmt.Errorf("api.Adopters.List: %w", err)
	}
	return adopters, nil
}

func (a Adopters) GetByEmail(ctx context.Context, correo string) (*domain.AccountUser, error) {
	var adopter domain.AccountUser
	if err := a.c.get(ctx, "/adopters/by-email/"+url.PathEscape(correo), &adopter); err != nil {
		return nil, fmt.Errorf("api.Adopters.GetByEmail: %w", err)
	}
	return &adopter, nil
}
