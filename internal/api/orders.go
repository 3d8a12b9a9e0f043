package api

import (
	"context"
	"net/http"

	"admin-console/internal/models"
)

// OrderAPI maps order operations onto the /orders endpoints
type OrderAPI struct {
	c *Client
}

// NewOrderAPI creates the order gateway
func NewOrderAPI(c *Client) *OrderAPI {
	return &OrderAPI{c: c}
}

func (a *OrderAPI) List(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := a.c.do(ctx, http.MethodGet, pathOrders, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *OrderAPI) Get(ctx context.Context, id string) (*models.Order, error) {
	var out models.Order
	if err := a.c.do(ctx, http.MethodGet, pathOrders+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *OrderAPI) Create(ctx context.Context, draft models.OrderDraft) (*models.Order, error) {
	var out models.Order
	if err := a.c.do(ctx, http.MethodPost, pathOrders, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus is the only partial-update path the backend defines: it PUTs
// {"status": s} to /orders/:id/status rather than replacing the resource.
func (a *OrderAPI) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	body := map[string]models.OrderStatus{"status": status}
	var out models.Order
	if err := a.c.do(ctx, http.MethodPut, pathOrders+"/"+id+"/status", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *OrderAPI) Delete(ctx context.Context, id string) error {
	return a.c.do(ctx, http.MethodDelete, pathOrders+"/"+id, nil, nil)
}
