package api

import (
	"context"
	"net/http"

	"admin-console/internal/models"
)

// VariantOptionAPI maps variant option CRUD onto the /variant-options endpoints
type VariantOptionAPI struct {
	c *Client
}

// NewVariantOptionAPI creates the variant option gateway
func NewVariantOptionAPI(c *Client) *VariantOptionAPI {
	return &VariantOptionAPI{c: c}
}

func (a *VariantOptionAPI) List(ctx context.Context) ([]models.VariantOption, error) {
	var out []models.VariantOption
	if err := a.c.do(ctx, http.MethodGet, pathVariantOptions, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *VariantOptionAPI) Get(ctx context.Context, id string) (*models.VariantOption, error) {
	var out models.VariantOption
	if err := a.c.do(ctx, http.MethodGet, pathVariantOptions+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *VariantOptionAPI) Create(ctx context.Context, draft models.VariantOptionDraft) (*models.VariantOption, error) {
	var out models.VariantOption
	if err := a.c.do(ctx, http.MethodPost, pathVariantOptions, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *VariantOptionAPI) Update(ctx context.Context, id string, draft models.VariantOptionDraft) (*models.VariantOption, error) {
	var out models.VariantOption
	if err := a.c.do(ctx, http.MethodPut, pathVariantOptions+"/"+id, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *VariantOptionAPI) Delete(ctx context.Context, id string) error {
	return a.c.do(ctx, http.MethodDelete, pathVariantOptions+"/"+id, nil, nil)
}
