package service

import (
	"context"
	"fmt"

	"admin-console/internal/api"
	"admin-console/internal/models"
	"admin-console/internal/state"
	"admin-console/internal/util"

	"go.uber.org/zap"
)

// OrderService sequences order gateway calls with store transitions. Status
// changes go through the dedicated status endpoint, never the generic update.
type OrderService struct {
	api    *api.OrderAPI
	store  *state.Store[models.Order]
	logger *zap.Logger
}

// NewOrderService creates the order orchestrator
func NewOrderService(orderAPI *api.OrderAPI, store *state.Store[models.Order]) *OrderService {
	return &OrderService{
		api:    orderAPI,
		store:  store,
		logger: util.GetLogger(),
	}
}

// Refresh fetches the full order collection into the store
func (s *OrderService) Refresh(ctx context.Context) error {
	ctx, span := util.StartSpan(ctx, "OrderService.Refresh")
	defer span.End()

	s.store.Apply(state.Requested[models.Order]())

	items, err := s.api.List(ctx)
	if err != nil {
		return s.fail("list", err)
	}

	s.store.Apply(state.Listed(items))
	util.EntityOpsTotal.WithLabelValues("order", "list", "success").Inc()
	return nil
}

// Create posts a new order and appends the server-confirmed result
func (s *OrderService) Create(ctx context.Context, draft models.OrderDraft) error {
	ctx, span := util.StartSpan(ctx, "OrderService.Create")
	defer span.End()

	if len(draft.Items) == 0 {
		return &ValidationError{Field: "items", Message: "an order needs at least one item"}
	}

	s.store.Apply(state.Requested[models.Order]())

	created, err := s.api.Create(ctx, draft)
	if err != nil {
		return s.fail("create", err)
	}

	s.store.Apply(state.Created(*created))
	util.EntityOpsTotal.WithLabelValues("order", "create", "success").Inc()
	s.logger.Info("Order created", zap.String("id", created.ID))
	return nil
}

// UpdateStatus performs exactly one network call against the status endpoint.
// Any valid status may be set from any other; the lifecycle imposes no
// ordering.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	ctx, span := util.StartSpan(ctx, "OrderService.UpdateStatus")
	defer span.End()

	if !models.ValidOrderStatus(status) {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", status)}
	}

	s.store.Apply(state.Requested[models.Order]())

	updated, err := s.api.UpdateStatus(ctx, id, status)
	if err != nil {
		return s.fail("update_status", err)
	}

	s.store.Apply(state.Updated(*updated))
	util.EntityOpsTotal.WithLabelValues("order", "update_status", "success").Inc()
	s.logger.Info("Order status updated",
		zap.String("id", id),
		zap.String("status", string(status)))
	return nil
}

// Delete removes the order and splices it out of the store on success
func (s *OrderService) Delete(ctx context.Context, id string) error {
	ctx, span := util.StartSpan(ctx, "OrderService.Delete")
	defer span.End()

	s.store.Apply(state.Requested[models.Order]())

	if err := s.api.Delete(ctx, id); err != nil {
		return s.fail("delete", err)
	}

	s.store.Apply(state.Deleted[models.Order](id))
	util.EntityOpsTotal.WithLabelValues("order", "delete", "success").Inc()
	return nil
}

func (s *OrderService) fail(op string, err error) error {
	s.store.Apply(state.Failed[models.Order](err.Error()))
	util.EntityOpsTotal.WithLabelValues("order", op, "failure").Inc()
	s.logger.Warn("Order operation failed", zap.String("operation", op), zap.Error(err))
	return err
}
