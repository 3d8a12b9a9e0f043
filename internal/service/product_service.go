package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"admin-console/internal/api"
	"admin-console/internal/models"
	"admin-console/internal/state"
	"admin-console/internal/uploader"
	"admin-console/internal/util"

	"go.uber.org/zap"
)

// ProductService sequences product gateway calls with store transitions and
// delegates image uploads to the object-storage collaborator.
type ProductService struct {
	api     *api.ProductAPI
	store   *state.Store[models.Product]
	uploads uploader.Uploader
	logger  *zap.Logger
}

// NewProductService creates the product orchestrator
func NewProductService(productAPI *api.ProductAPI, store *state.Store[models.Product], uploads uploader.Uploader) *ProductService {
	return &ProductService{
		api:     productAPI,
		store:   store,
		uploads: uploads,
		logger:  util.GetLogger(),
	}
}

// Refresh fetches the full product collection into the store
func (s *ProductService) Refresh(ctx context.Context) error {
	ctx, span := util.StartSpan(ctx, "ProductService.Refresh")
	defer span.End()

	s.store.Apply(state.Requested[models.Product]())

	items, err := s.api.List(ctx)
	if err != nil {
		return s.fail("list", err)
	}

	s.store.Apply(state.Listed(items))
	util.EntityOpsTotal.WithLabelValues("product", "list", "success").Inc()
	return nil
}

// Create validates the draft, posts it and appends the server-confirmed product
func (s *ProductService) Create(ctx context.Context, draft models.ProductDraft) error {
	ctx, span := util.StartSpan(ctx, "ProductService.Create")
	defer span.End()

	if err := normalizeProduct(&draft); err != nil {
		return err
	}

	s.store.Apply(state.Requested[models.Product]())

	created, err := s.api.Create(ctx, draft)
	if err != nil {
		return s.fail("create", err)
	}

	s.store.Apply(state.Created(*created))
	util.EntityOpsTotal.WithLabelValues("product", "create", "success").Inc()
	s.logger.Info("Product created", zap.String("id", created.ID), zap.String("name", created.Name))
	return nil
}

// Update validates the draft and replaces the stored product on success
func (s *ProductService) Update(ctx context.Context, id string, draft models.ProductDraft) error {
	ctx, span := util.StartSpan(ctx, "ProductService.Update")
	defer span.End()

	if err := normalizeProduct(&draft); err != nil {
		return err
	}

	s.store.Apply(state.Requested[models.Product]())

	updated, err := s.api.Update(ctx, id, draft)
	if err != nil {
		return s.fail("update", err)
	}

	s.store.Apply(state.Updated(*updated))
	util.EntityOpsTotal.WithLabelValues("product", "update", "success").Inc()
	return nil
}

// Delete removes the product and splices it out of the store on success
func (s *ProductService) Delete(ctx context.Context, id string) error {
	ctx, span := util.StartSpan(ctx, "ProductService.Delete")
	defer span.End()

	s.store.Apply(state.Requested[models.Product]())

	if err := s.api.Delete(ctx, id); err != nil {
		return s.fail("delete", err)
	}

	s.store.Apply(state.Deleted[models.Product](id))
	util.EntityOpsTotal.WithLabelValues("product", "delete", "success").Inc()
	return nil
}

// AttachImages uploads the selected files and appends their public URLs to
// the draft. Only as many files as the draft has remaining capacity for are
// accepted; the rest are ignored. Uploads run concurrently and are joined:
// if any fails, nothing is appended, but URLs already on the draft stay.
func (s *ProductService) AttachImages(ctx context.Context, draft *models.ProductDraft, files ...uploader.File) error {
	ctx, span := util.StartSpan(ctx, "ProductService.AttachImages")
	defer span.End()

	remaining := models.MaxProductImages - len(draft.Images)
	if remaining <= 0 || len(files) == 0 {
		return nil
	}
	if len(files) > remaining {
		s.logger.Debug("Truncating image selection to remaining capacity",
			zap.Int("selected", len(files)),
			zap.Int("remaining", remaining))
		files = files[:remaining]
	}

	urls := make([]string, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup
	for i := range files {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			urls[i], errs[i] = s.uploads.Upload(ctx, files[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			s.logger.Warn("Image upload batch failed", zap.Error(err))
			return fmt.Errorf("image upload failed: %w", err)
		}
	}

	draft.Images = append(draft.Images, urls...)
	return nil
}

func normalizeProduct(draft *models.ProductDraft) error {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Description = strings.TrimSpace(draft.Description)

	tags := draft.Tags[:0]
	for _, tag := range draft.Tags {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}
	draft.Tags = tags

	switch {
	case draft.Name == "":
		return &ValidationError{Field: "name", Message: "name is required"}
	case draft.Category == "":
		return &ValidationError{Field: "category", Message: "category is required"}
	case !models.ValidProductType(draft.Type):
		return &ValidationError{Field: "type", Message: fmt.Sprintf("unknown product type %q", draft.Type)}
	case draft.Price.IsNegative():
		return &ValidationError{Field: "price", Message: "price must not be negative"}
	case draft.Stock < 0:
		return &ValidationError{Field: "stock", Message: "stock must not be negative"}
	case len(draft.Images) > models.MaxProductImages:
		return &ValidationError{Field: "images", Message: fmt.Sprintf("at most %d images allowed", models.MaxProductImages)}
	}
	return nil
}

func (s *ProductService) fail(op string, err error) error {
	s.store.Apply(state.Failed[models.Product](err.Error()))
	util.EntityOpsTotal.WithLabelValues("product", op, "failure").Inc()
	s.logger.Warn("Product operation failed", zap.String("operation", op), zap.Error(err))
	return err
}
