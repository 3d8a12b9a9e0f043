package api

import (
	"context"
	"net/http"

	"admin-console/internal/models"
)

// CategoryAPI maps category CRUD onto the /categories endpoints
type CategoryAPI struct {
	c *Client
}

// NewCategoryAPI creates the category gateway
func NewCategoryAPI(c *Client) *CategoryAPI {
	return &CategoryAPI{c: c}
}

func (a *CategoryAPI) List(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := a.c.do(ctx, http.MethodGet, pathCategories, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *CategoryAPI) Get(ctx context.Context, id string) (*models.Category, error) {
	var out models.Category
	if err := a.c.do(ctx, http.MethodGet, pathCategories+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CategoryAPI) Create(ctx context.Context, draft models.CategoryDraft) (*models.Category, error) {
	var out models.Category
	if err := a.c.do(ctx, http.MethodPost, pathCategories, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CategoryAPI) Update(ctx context.Context, id string, draft models.CategoryDraft) (*models.Category, error) {
	var out models.Category
	if err := a.c.do(ctx, http.MethodPut, pathCategories+"/"+id, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CategoryAPI) Delete(ctx context.Context, id string) error {
	return a.c.do(ctx, http.MethodDelete, pathCategories+"/"+id, nil, nil)
}
