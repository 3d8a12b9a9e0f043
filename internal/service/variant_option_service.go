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

// VariantOptionService sequences variant option gateway calls with store
// transitions. Uniqueness is scoped per (type, name) pair.
type VariantOptionService struct {
	api    *api.VariantOptionAPI
	store  *state.Store[models.VariantOption]
	logger *zap.Logger
}

// NewVariantOptionService creates the variant option orchestrator
func NewVariantOptionService(optionAPI *api.VariantOptionAPI, store *state.Store[models.VariantOption]) *VariantOptionService {
	return &VariantOptionService{
		api:    optionAPI,
		store:  store,
		logger: util.GetLogger(),
	}
}

// Refresh fetches the full option collection into the store
func (s *VariantOptionService) Refresh(ctx context.Context) error {
	ctx, span := util.StartSpan(ctx, "VariantOptionService.Refresh")
	defer span.End()

	s.store.Apply(state.Requested[models.VariantOption]())

	items, err := s.api.List(ctx)
	if err != nil {
		return s.fail("list", err)
	}

	s.store.Apply(state.Listed(items))
	util.EntityOpsTotal.WithLabelValues("variant_option", "list", "success").Inc()
	return nil
}

// Create validates the draft and appends the server-confirmed option
func (s *VariantOptionService) Create(ctx context.Context, draft models.VariantOptionDraft) error {
	ctx, span := util.StartSpan(ctx, "VariantOptionService.Create")
	defer span.End()

	if err := s.normalize(&draft, ""); err != nil {
		return err
	}

	s.store.Apply(state.Requested[models.VariantOption]())

	created, err := s.api.Create(ctx, draft)
	if err != nil {
		return s.fail("create", err)
	}

	s.store.Apply(state.Created(*created))
	util.EntityOpsTotal.WithLabelValues("variant_option", "create", "success").Inc()
	s.logger.Info("Variant option created",
		zap.String("id", created.ID),
		zap.String("type", string(created.Type)),
		zap.String("name", created.Name))
	return nil
}

// Update validates the draft and replaces the stored option on success
func (s *VariantOptionService) Update(ctx context.Context, id string, draft models.VariantOptionDraft) error {
	ctx, span := util.StartSpan(ctx, "VariantOptionService.Update")
	defer span.End()

	if err := s.normalize(&draft, id); err != nil {
		return err
	}

	s.store.Apply(state.Requested[models.VariantOption]())

	updated, err := s.api.Update(ctx, id, draft)
	if err != nil {
		return s.fail("update", err)
	}

	s.store.Apply(state.Updated(*updated))
	util.EntityOpsTotal.WithLabelValues("variant_option", "update", "success").Inc()
	return nil
}

// Delete removes the option and splices it out of the store on success
func (s *VariantOptionService) Delete(ctx context.Context, id string) error {
	ctx, span := util.StartSpan(ctx, "VariantOptionService.Delete")
	defer span.End()

	s.store.Apply(state.Requested[models.VariantOption]())

	if err := s.api.Delete(ctx, id); err != nil {
		return s.fail("delete", err)
	}

	s.store.Apply(state.Deleted[models.VariantOption](id))
	util.EntityOpsTotal.WithLabelValues("variant_option", "delete", "success").Inc()
	return nil
}

func (s *VariantOptionService) normalize(draft *models.VariantOptionDraft, excludeID string) error {
	draft.Name = strings.TrimSpace(draft.Name)

	if draft.Name == "" || draft.Type == "" {
		return &ValidationError{Message: "type and name are required"}
	}
	if !models.ValidVariantType(draft.Type) {
		return &ValidationError{Field: "type", Message: fmt.Sprintf("unknown variant type %q", draft.Type)}
	}

	want := strings.ToLower(draft.Name)
	for _, opt := range s.store.Items() {
		if opt.ID != excludeID && opt.Type == draft.Type &&
			strings.ToLower(strings.TrimSpace(opt.Name)) == want {
			return &ValidationError{
				Field:   "name",
				Message: fmt.Sprintf("a %s option named %q already exists", draft.Type, draft.Name),
			}
		}
	}
	return nil
}

func (s *VariantOptionService) fail(op string, err error) error {
	s.store.Apply(state.Failed[models.VariantOption](err.Error()))
	util.EntityOpsTotal.WithLabelValues("variant_option", op, "failure").Inc()
	s.logger.Warn("Variant option operation failed", zap.String("operation", op), zap.Error(err))
	return err
}
