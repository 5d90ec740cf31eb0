package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/huellitas/adoption-client/internal/core/domain"
)

// Pets groups the pet inventory endpoints.
type Pets struct{ c *Client }

func (c *Client) Pets() Pets { return Pets{c} }

// List fetches pets matching the filter.
func (p Pets) List(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, error) {
	path := "/pets"
	if q := filter.Query(); q != "" {
		path += "?" + q
	}
	var pets []domain.Pet
	if err := p.c.get(ctx, path, &pets); err != nil {
		return nil, fmt.Errorf("api.Pets.List: %w", err)
	}
	return pets, nil
}

// Get fetches a single pet by ID.
func (p Pets) Get(ctx context.Context, id int) (*domain.Pet, error) {
	var pet domain.Pet
	if err := p.c.get(ctx, "/pets/"+strconv.Itoa(id), &pet); err != nil {
		return nil, fmt.Errorf("api.Pets.Get: %w", err)
	}
	return &pet, nil
}

// Create adds a pet to the inventory (privileged).
func (p Pets) Create(ctx context.Context, in domain.PetInput) (*domain.Pet, error) {
	var pet domain.Pet
	if err := p.c.send(ctx, http.MethodPost, "/pets", in, &pet); err != nil {
		return nil, fmt.Errorf("api.Pets.Create: %w", err)
	}
	return &pet, nil
}

// Update modifies a pet (privileged).
func (p Pets) Update(ctx context.Context, id int, in domain.PetInput) (*domain.Pet, error) {
	var pet domain.Pet
	if err := p.c.send(ctx, http.MethodPut, "/pets/"+strconv.Itoa(id), in, &pet); err != nil {
		return nil, fmt.Errorf("api.Pets.Update: %w", err)
	}
	return &pet, nil
}

// Delete removes a pet from the inventory (privileged).
func (p Pets) Delete(ctx context.Context, id int) error {
	if err := p.c.send(ctx, http.MethodDelete, "/pets/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("api.Pets.Delete: %w", err)
	}
	return nil
}
