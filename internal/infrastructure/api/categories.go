package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/huellitas/adoption-client/internal/core/domain"
)

// Categories groups the category-management endpoints.
type Categories struct{ c *Client }

func (c *Client) Categories() Categories { return Categories{c} }

func (g Categories) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := g.c.get(ctx, "/categories", &categories); err != nil {
		return nil, fmt.Errorf("api.Categories.List: %w", err)
	}
	return categories, nil
}

func (g Categories) Create(ctx context.Context, nombre string) (*domain.Category, error) {
	var category domain.Category
	body := map[string]string{"nombre": nombre}
	if err := g.c.send(ctx, http.MethodPost, "/categories", body, &category); err != nil {
		return nil, fmt.Errorf("api.Categories.Create: %w", err)
	}
	return &category, nil
}

func (g Categories) Delete(ctx context.Context, id int) error {
	if err := g.c.send(ctx, http.MethodDelete, "/categories/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("api.Categories.Delete: %w", err)
	}
	return nil
}
