package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"admin-console/internal/api"
	"admin-console/internal/models"
	"admin-console/internal/state"
	"admin-console/internal/uploader"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUploader records calls and can fail on selected files
type fakeUploader struct {
	mu     sync.Mutex
	calls  int
	failOn map[string]bool
}

func (f *fakeUploader) Upload(_ context.Context, file uploader.File) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.failOn[file.Name] {
		return "", &uploader.UploadError{Message: "storage rejected upload: status 500"}
	}
	return "https://cdn.example.com/" + file.Name, nil
}

func newProductFixture(t *testing.T, register func(*gin.Engine)) (*ProductService, *state.Store[models.Product], *fakeUploader) {
	t.Helper()
	srv := newBackend(t, register)
	client := api.NewClient(srv.URL, noToken{}, 0)
	store := state.NewStore[models.Product]()
	uploads := &fakeUploader{failOn: map[string]bool{}}
	return NewProductService(api.NewProductAPI(client), store, uploads), store, uploads
}

func validDraft() models.ProductDraft {
	return models.ProductDraft{
		Name:     "Basic Tee",
		Category: "cat1",
		Type:     models.ProductTShirt,
		Price:    decimal.NewFromInt(199),
		Stock:    10,
	}
}

func files(n int) []uploader.File {
	out := make([]uploader.File, n)
	for i := range out {
		out[i] = uploader.File{Name: fmt.Sprintf("img%d.png", i), ContentType: "image/png", Data: []byte{1}}
	}
	return out
}

func TestAttachImagesRespectsRemainingCapacity(t *testing.T) {
	svc, _, uploads := newProductFixture(t, func(r *gin.Engine) {})

	draft := validDraft()
	draft.Images = []string{"u1", "u2", "u3"}

	// 7 selected, 3 already attached: only 2 may be uploaded
	require.NoError(t, svc.AttachImages(context.Background(), &draft, files(7)...))

	assert.Equal(t, 2, uploads.calls)
	assert.Len(t, draft.Images, models.MaxProductImages)
}

func TestAttachImagesAtCapacityUploadsNothing(t *testing.T) {
	svc, _, uploads := newProductFixture(t, func(r *gin.Engine) {})

	draft := validDraft()
	draft.Images = []string{"u1", "u2", "u3", "u4", "u5"}

	require.NoError(t, svc.AttachImages(context.Background(), &draft, files(2)...))

	assert.Zero(t, uploads.calls)
	assert.Len(t, draft.Images, 5)
}

func TestAttachImagesJoinIsAllOrNone(t *testing.T) {
	svc, _, uploads := newProductFixture(t, func(r *gin.Engine) {})
	uploads.failOn["img1.png"] = true

	draft := validDraft()
	draft.Images = []string{"existing"}

	err := svc.AttachImages(context.Background(), &draft, files(3)...)

	require.Error(t, err)
	var uerr *uploader.UploadError
	assert.True(t, errors.As(err, &uerr))
	// nothing from the failed batch is appended, existing URLs stay
	assert.Equal(t, []string{"existing"}, draft.Images)
	assert.Equal(t, 3, uploads.calls, "uploads run concurrently, all are attempted")
}

func TestProductCreateSendsNormalizedDraft(t *testing.T) {
	var got models.ProductDraft
	svc, store, _ := newProductFixture(t, func(r *gin.Engine) {
		r.POST("/products", func(c *gin.Context) {
			assert.NoError(t, c.ShouldBindJSON(&got))
			c.JSON(http.StatusCreated, models.Product{ID: "p1", Name: got.Name})
		})
	})

	draft := validDraft()
	draft.Name = "  Basic Tee "
	draft.Tags = []string{" yaz ", "", "pamuk"}

	require.NoError(t, svc.Create(context.Background(), draft))

	assert.Equal(t, "Basic Tee", got.Name)
	assert.Equal(t, []string{"yaz", "pamuk"}, got.Tags)
	assert.Equal(t, 1, store.Len())
}

func TestProductValidationBlocksSubmission(t *testing.T) {
	calls := 0
	svc, _, _ := newProductFixture(t, func(r *gin.Engine) {
		r.POST("/products", func(c *gin.Context) { calls++ })
	})
	ctx := context.Background()

	cases := []struct {
		name  string
		edit  func(*models.ProductDraft)
		field string
	}{
		{"missing name", func(d *models.ProductDraft) { d.Name = " " }, "name"},
		{"missing category", func(d *models.ProductDraft) { d.Category = "" }, "category"},
		{"unknown type", func(d *models.ProductDraft) { d.Type = "x" }, "type"},
		{"negative price", func(d *models.ProductDraft) { d.Price = decimal.NewFromInt(-1) }, "price"},
		{"negative stock", func(d *models.ProductDraft) { d.Stock = -1 }, "stock"},
		{"too many images", func(d *models.ProductDraft) {
			d.Images = []string{"1", "2", "3", "4", "5", "6"}
		}, "images"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.edit(&draft)

			err := svc.Create(ctx, draft)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	assert.Zero(t, calls)
}

func TestProductUpdateReplacesStoredEntity(t *testing.T) {
	svc, store, _ := newProductFixture(t, func(r *gin.Engine) {
		r.PUT("/products/:id", func(c *gin.Context) {
			var draft models.ProductDraft
			assert.NoError(t, c.ShouldBindJSON(&draft))
			c.JSON(http.StatusOK, models.Product{ID: c.Param("id"), Name: draft.Name})
		})
	})
	store.Apply(state.Listed([]models.Product{{ID: "a", Name: "Old"}, {ID: "b", Name: "Keep"}}))

	draft := validDraft()
	draft.Name = "New"
	require.NoError(t, svc.Update(context.Background(), "a", draft))

	items := store.Items()
	assert.Equal(t, "New", items[0].Name)
	assert.Equal(t, "Keep", items[1].Name)
}
