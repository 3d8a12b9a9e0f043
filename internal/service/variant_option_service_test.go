package service

import (
	"context"
	"net/http"
	"testing"

	"admin-console/internal/api"
	"admin-console/internal/models"
	"admin-console/internal/state"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVariantOptionFixture(t *testing.T, register func(*gin.Engine)) (*VariantOptionService, *state.Store[models.VariantOption]) {
	t.Helper()
	srv := newBackend(t, register)
	client := api.NewClient(srv.URL, noToken{}, 0)
	store := state.NewStore[models.VariantOption]()
	return NewVariantOptionService(api.NewVariantOptionAPI(client), store), store
}

func TestVariantOptionRefreshPopulatesStore(t *testing.T) {
	fetched := []models.VariantOption{
		{ID: "v1", Type: models.VariantColor, Name: "Siyah"},
		{ID: "v2", Type: models.VariantSize, Name: "M"},
	}
	svc, store := newVariantOptionFixture(t, func(r *gin.Engine) {
		r.GET("/variant-options", func(c *gin.Context) { c.JSON(http.StatusOK, fetched) })
	})

	require.NoError(t, svc.Refresh(context.Background()))

	assert.Equal(t, fetched, store.Items())
	assert.False(t, store.Loading())
}

func TestVariantOptionUniquenessScopedPerType(t *testing.T) {
	calls := 0
	svc, store := newVariantOptionFixture(t, func(r *gin.Engine) {
		r.POST("/variant-options", func(c *gin.Context) {
			calls++
			var draft models.VariantOptionDraft
			assert.NoError(t, c.ShouldBindJSON(&draft))
			c.JSON(http.StatusCreated, models.VariantOption{ID: "new", Type: draft.Type, Name: draft.Name})
		})
	})
	store.Apply(state.Listed([]models.VariantOption{{ID: "v1", Type: models.VariantColor, Name: "Siyah"}}))
	ctx := context.Background()

	// same name under a different type is fine
	require.NoError(t, svc.Create(ctx, models.VariantOptionDraft{Type: models.VariantSize, Name: "Siyah"}))
	assert.Equal(t, 1, calls)

	// same (type, name) pair is rejected before the network, case and padding ignored
	err := svc.Create(ctx, models.VariantOptionDraft{Type: models.VariantColor, Name: " siyah "})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 1, calls)
}

func TestVariantOptionUpdateExcludesItselfFromGuard(t *testing.T) {
	svc, store := newVariantOptionFixture(t, func(r *gin.Engine) {
		r.PUT("/variant-options/:id", func(c *gin.Context) {
			var draft models.VariantOptionDraft
			assert.NoError(t, c.ShouldBindJSON(&draft))
			c.JSON(http.StatusOK, models.VariantOption{ID: c.Param("id"), Type: draft.Type, Name: draft.Name})
		})
	})
	store.Apply(state.Listed([]models.VariantOption{
		{ID: "v1", Type: models.VariantColor, Name: "Siyah"},
		{ID: "v2", Type: models.VariantColor, Name: "Beyaz"},
	}))
	ctx := context.Background()

	require.NoError(t, svc.Update(ctx, "v1", models.VariantOptionDraft{Type: models.VariantColor, Name: "SIYAH"}))

	err := svc.Update(ctx, "v2", models.VariantOptionDraft{Type: models.VariantColor, Name: "siyah"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestVariantOptionUnknownTypeRejected(t *testing.T) {
	calls := 0
	svc, _ := newVariantOptionFixture(t, func(r *gin.Engine) {
		r.POST("/variant-options", func(c *gin.Context) { calls++ })
	})

	err := svc.Create(context.Background(), models.VariantOptionDraft{Type: "texture", Name: "Mat"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "type", verr.Field)
	assert.Zero(t, calls)
}

func TestVariantOptionMissingFieldsRejected(t *testing.T) {
	svc, _ := newVariantOptionFixture(t, func(r *gin.Engine) {})

	err := svc.Create(context.Background(), models.VariantOptionDraft{Name: "Siyah"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestVariantOptionDeleteSplicesOutEntity(t *testing.T) {
	svc, store := newVariantOptionFixture(t, func(r *gin.Engine) {
		r.DELETE("/variant-options/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	})
	store.Apply(state.Listed([]models.VariantOption{
		{ID: "v1", Type: models.VariantColor, Name: "Siyah"},
		{ID: "v2", Type: models.VariantColor, Name: "Beyaz"},
	}))

	require.NoError(t, svc.Delete(context.Background(), "v1"))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "v2", items[0].ID)
}
