package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/huellitas/adoption-client/internal/core/domain"
)

// Adoptions groups the adoption request endpoints.
type Adoptions struct{ c *Client }

func (c *Client) Adoptions() Adoptions { return Adoptions{c} }

// Create submits an adoption request for a pet.
func (a Adoptions) Create(ctx context.Context, req domain.AdoptionRequest) (*domain.Adoption, error) {
	var adoption domain.Adoption
	if err := a.c.send(ctx, http.MethodPost, "/adoptions", req, &adoption); err != nil {
		return nil, fmt.Errorf("api.Adoptions.Create: %w", err)
	}
	return &adoption, nil
}

// My fetches the caller's own adoption requests.
func (a Adoptions) My(ctx context.Context) ([]domain.Adoption, error) {
	var adoptions []domain.Adoption
	if err := a.c.get(ctx, "/adoptions/my-adoptions", &adoptions); err != nil {
		return nil, fmt.Errorf("api.Adoptions.My: %w", err)
	}
	return adoptions, nil
}

// List fetches all adoption requests (privileged).
func (a Adoptions) List(ctx context.Context) ([]domain.Adoption, error) {
	var adoptions []domain.Adoption
	if err := a.c.get(ctx, "/adoptions", &adoptions); err != nil {
		return nil, fmt.Errorf("api.Adoptions.List: %w", err)
	}
	return adoptions, nil
}

// ListByUser fetches a given user's adoption requests (privileged).
func (a Adoptions) ListByUser(ctx context.Context, userID int) ([]domain.Adoption, error) {
	var adoptions []domain.Adoption
	if err := a.c.get(ctx, "/adoptions/"+strconv.Itoa(userID), &adoptions); err != nil {
		return nil, fmt.Errorf("api.Adoptions.ListByUser: %w", err)
	}
	return adoptions, nil
}

// Complete marks an adoption as completed (privileged).
func (a Adoptions) Complete(ctx context.Context, id int) (*domain.Adoption, error) {
	var adoption domain.Adoption
	if err := a.c.send(ctx, http.MethodPut, "/adoptions/"+strconv.Itoa(id)+"/complete", nil, &adoption); err != nil {
		return nil, fmt.Errorf("api.Adoptions.Complete: %w", err)
	}
	return &adoption, nil
}
