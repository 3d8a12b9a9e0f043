package api

import (
	"context"
	"net/http"

	"admin-console/internal/models"
)

// ProductAPI maps product CRUD onto the /products endpoints
type ProductAPI struct {
	c *Client
}

// NewProductAPI creates the product gateway
func NewProductAPI(c *Client) *ProductAPI {
	return &ProductAPI{c: c}
}

func (a *ProductAPI) List(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := a.c.do(ctx, http.MethodGet, pathProducts, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *ProductAPI) Get(ctx context.Context, id string) (*models.Product, error) {
	var out models.Product
	if err := a.c.do(ctx, http.MethodGet, pathProducts+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ProductAPI) Create(ctx context.Context, draft models.ProductDraft) (*models.Product, error) {
	var out models.Product
	if err := a.c.do(ctx, http.MethodPost, pathProducts, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ProductAPI) Update(ctx context.Context, id string, draft models.ProductDraft) (*models.Product, error) {
	var out models.Product
	if err := a.c.do(ctx, http.MethodPut, pathProducts+"/"+id, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ProductAPI) Delete(ctx context.Context, id string) error {
	return a.c.do(ctx, http.MethodDelete, pathProducts+"/"+id, nil, nil)
}
