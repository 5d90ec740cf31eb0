package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/huellitas/adoption-client/internal/core/domain"
)

// Roles groups the role-management endpoints (privileged).
type Roles struct{ c *Client }

func (c *Client) Roles() Roles { return Roles{c} }

func (r Roles) List(ctx context.Context) ([]domain.RoleRef, error) {
	var roles []domain.RoleRef
	if err := r.c.get(ctx, "/roles", &roles); err != nil {
		return nil, fmt.Errorf("api.Roles.List: %w", err)
	}
	return roles, nil
}

func (r Roles) Get(ctx context.Context, id int) (*domain.RoleRef, error) {
	var role domain.RoleRef
	if err := r.c.get(ctx, "/roles/"+strconv.Itoa(id), &role); err != nil {
		return nil, fmt.Errorf("api.Roles.Get: %w", err)
	}
	return &role, nil
}

func (r Roles) Create(ctx context.Context, nombre string) (*domain.RoleRef, error) {
	var role domain.RoleRef
	body := map[string]string{"nombre": nombre}
	if err := r.c.send(ctx, http.MethodPost, "/roles", body, &role); err != nil {
		return nil, fmt.Errorf("api.Roles.Create: %w", err)
	}
	return &role, nil
}

func (r Roles) Update(ctx context.Context, id int, nombre string) (*domain.RoleRef, error) {
	var role domain.RoleRef
	body := map[string]string{"nombre": nombre}
	if err := r.c.send(ctx, http.MethodPut, "/roles/"+strconv.Itoa(id), body, &role); err != nil {
		return nil, fmt.Errorf("api.Roles.Update: %w", err)
	}
	return &role, nil
}

func (r Roles) Delete(ctx context.Context, id int) error {
	if err := r.c.send(ctx, http.MethodDelete, "/roles/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("api.Roles.Delete: %w", err)
	}
	return nil
}
