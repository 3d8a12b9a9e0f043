package service

import (
	"context"
	"fmt"
	"strings"

	"admin-console/internal/api"
	"admin-console/internal/models"
	"admin-console/internal/state"
	"admin-console/internal/util"

	"go.uber.org/zap"
)

// CategoryService sequences category gateway calls with store transitions
type CategoryService struct {
	api    *api.CategoryAPI
	store  *state.Store[models.Category]
	logger *zap.Logger
}

// NewCategoryService creates the category orchestrator
func NewCategoryService(categoryAPI *api.CategoryAPI, store *state.Store[models.Category]) *CategoryService {
	return &CategoryService{
		api:    categoryAPI,
		store:  store,
		logger: util.GetLogger(),
	}
}

// Refresh fetches the full category collection into the store
func (s *CategoryService) Refresh(ctx context.Context) error {
	ctx, span := util.StartSpan(ctx, "CategoryService.Refresh")
	defer span.End()

	s.store.Apply(state.Requested[models.Category]())

	items, err := s.api.List(ctx)
	if err != nil {
		return s.fail("list", err)
	}

	s.store.Apply(state.Listed(items))
	util.EntityOpsTotal.WithLabelValues("category", "list", "success").Inc()
	return nil
}

// Create validates the draft, posts it and appends the server-confirmed
// category. Duplicate names are rejected before any network call.
func (s *CategoryService) Create(ctx context.Context, draft models.CategoryDraft) error {
	ctx, span := util.StartSpan(ctx, "CategoryService.Create")
	defer span.End()

	if err := s.normalize(&draft, ""); err != nil {
		return err
	}

	s.store.Apply(state.Requested[models.Category]())

	created, err := s.api.Create(ctx, draft)
	if err != nil {
		return s.fail("create", err)
	}

	s.store.Apply(state.Created(*created))
	util.EntityOpsTotal.WithLabelValues("category", "create", "success").Inc()
	s.logger.Info("Category created", zap.String("id", created.ID), zap.String("name", created.Name))
	return nil
}

// Update validates the draft and replaces the stored category on success
func (s *CategoryService) Update(ctx context.Context, id string, draft models.CategoryDraft) error {
	ctx, span := util.StartSpan(ctx, "CategoryService.Update")
	defer span.End()

	if err := s.normalize(&draft, id); err != nil {
		return err
	}

	s.store.Apply(state.Requested[models.Category]())

	updated, err := s.api.Update(ctx, id, draft)
	if err != nil {
		return s.fail("update", err)
	}

	s.store.Apply(state.Updated(*updated))
	util.EntityOpsTotal.WithLabelValues("category", "update", "success").Inc()
	return nil
}

// Delete removes the category and splices it out of the store on success
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	ctx, span := util.StartSpan(ctx, "CategoryService.Delete")
	defer span.End()

	s.store.Apply(state.Requested[models.Category]())

	if err := s.api.Delete(ctx, id); err != nil {
		return s.fail("delete", err)
	}

	s.store.Apply(state.Deleted[models.Category](id))
	util.EntityOpsTotal.WithLabelValues("category", "delete", "success").Inc()
	return nil
}

// normalize trims the draft and applies the client-side uniqueness guard.
// The server is not trusted to enforce uniqueness; this check is UX only.
func (s *CategoryService) normalize(draft *models.CategoryDraft, excludeID string) error {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Description = strings.TrimSpace(draft.Description)

	if draft.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}

	want := strings.ToLower(draft.Name)
	for _, cat := range s.store.Items() {
		if cat.ID != excludeID && strings.ToLower(strings.TrimSpace(cat.Name)) == want {
			return &ValidationError{
				Field:   "name",
				Message: fmt.Sprintf("a category named %q already exists", draft.Name),
			}
		}
	}
	return nil
}

func (s *CategoryService) fail(op string, err error) error {
	s.store.Apply(state.Failed[models.Category](err.Error()))
	util.EntityOpsTotal.WithLabelValues("category", op, "failure").Inc()
	s.logger.Warn("Category operation failed", zap.String("operation", op), zap.Error(err))
	return err
}
