package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wemetstudio/internal/domain"
)

func TestCatalogController_Lists(t *testing.T) {
	env := newTestEnv(t, nil)
	ctrl := NewCatalogController(testLogger, env.catalog, env.loader, env.translator)
	s := env.sessions.Create("ru")

	t.Run("products", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ctrl.ListProducts(rr, withSession(httptest.NewRequest(http.MethodGet, "/products", nil), s))
		require.Equal(t, http.StatusOK, rr.Code)
		var resp ProductsResponse
		require.Nil(t, decodeEnvelope(t, rr, &resp))
		require.Len(t, resp.Products, 2)
		assert.Equal(t, "p1", resp.Products[0].ID)
		assert.True(t, resp.Status.Loaded)
		assert.False(t, resp.Status.Loading)
	})

	t.Run("events are localized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ctrl.ListEvents(rr, withSession(httptest.NewRequest(http.MethodGet, "/events", nil), s))
		require.Equal(t, http.StatusOK, rr.Code)
		var resp EventsResponse
		require.Nil(t, decodeEnvelope(t, rr, &resp))
		require.Len(t, resp.Events, 2)
		assert.Equal(t, "Вечерний гончарный круг", resp.Events[0].LocalizedTitle)
		assert.Equal(t, "Kids clay", resp.Events[1].LocalizedTitle, "missing translations fall back to english")
		assert.Equal(t, "Осталось мест: 14", resp.Events[1].SpotsLabel)
	})

	t.Run("testimonials", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ctrl.ListTestimonials(rr, withSession(httptest.NewRequest(http.MethodGet, "/testimonials", nil), s))
		require.Equal(t, http.StatusOK, rr.Code)
		var resp TestimonialsResponse
		require.Nil(t, decodeEnvelope(t, rr, &resp))
		require.Len(t, resp.Testimonials, 1)
		assert.Equal(t, "Dana", resp.Testimonials[0].Name)
	})

	t.Run("gallery", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ctrl.ListGallery(rr, withSession(httptest.NewRequest(http.MethodGet, "/gallery", nil), s))
		require.Equal(t, http.StatusOK, rr.Code)
		var resp GalleryResponse
		require.Nil(t, decodeEnvelope(t, rr, &resp))
		require.Len(t, resp.Gallery, 1)
		assert.Equal(t, "/gallery/1.jpg", resp.Gallery[0].Src)
	})
}

func TestCatalogController_Unavailable(t *testing.T) {
	env := newTestEnv(t, errors.New("upstream down"))
	ctrl := NewCatalogController(testLogger, env.catalog, env.loader, env.translator)
	s := env.sessions.Create("en")

	handlers := map[string]http.HandlerFunc{
		"products":     ctrl.ListProducts,
		"events":       ctrl.ListEvents,
		"testimonials": ctrl.ListTestimonials,
		"gallery":      ctrl.ListGallery,
	}
	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h(rr, withSession(httptest.NewRequest(http.MethodGet, "/"+name, nil), s))
			require.Equal(t, http.StatusServiceUnavailable, rr.Code)
			apiErr := decodeEnvelope(t, rr, nil)
			require.NotNil(t, apiErr)
			assert.Equal(t, "catalog_unavailable", apiErr.Code)
			assert.Equal(t, "Could not load data. Please try again.", apiErr.Message)
		})
	}

	t.Run("status reports the error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ctrl.Status(rr, withSession(httptest.NewRequest(http.MethodGet, "/catalog/status", nil), s))
		require.Equal(t, http.StatusOK, rr.Code)
		var status domain.CatalogStatus
		require.Nil(t, decodeEnvelope(t, rr, &status))
		assert.False(t, status.Loaded)
		assert.Contains(t, status.Error, "upstream down")
	})
}

func TestCatalogController_Reload(t *testing.T) {
	env := newTestEnv(t, nil)
	ctrl := NewCatalogController(testLogger, env.catalog, env.loader, env.translator)
	s := env.sessions.Create("en")
	rr := httptest.NewRecorder()

	ctrl.Reload(rr, withSession(httptest.NewRequest(http.MethodPost, "/catalog/reload", nil), s))

	require.Equal(t, http.StatusAccepted, rr.Code)
	var resp ReloadResponse
	require.Nil(t, decodeEnvelope(t, rr, &resp))
	assert.Equal(t, uint64(2), resp.Generation)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, env.loader.Wait(ctx))
	assert.Equal(t, uint64(2), env.catalog.Version())
}
