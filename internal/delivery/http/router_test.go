package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "wemetstudio/docs"
	"wemetstudio/internal/adapters/auth"
	"wemetstudio/internal/adapters/catalog"
	"wemetstudio/internal/delivery/http/controllers"
	"wemetstudio/internal/delivery/http/middleware"
	"wemetstudio/internal/domain"
	"wemetstudio/internal/i18n"
	"wemetstudio/internal/services"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

type nopSender struct{}

func (nopSender) SendBookingRequest(context.Context, *domain.BookingRequest) error { return nil }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := services.NewCatalog()
	loader := services.NewCatalogLoader(catalog.NewStaticProvider(time.UTC, catalog.Delays{}), store, time.UTC, testLogger, time.Second)
	require.NoError(t, loader.LoadAndWait(context.Background()))

	translator := i18n.NewTranslator()
	clock := services.NewRealClock()
	sessions := services.NewSessionRegistry(store, translator, clock, services.SessionConfig{TTL: time.Hour}, testLogger)
	tokens := auth.NewSessionTokens("router-test-secret")

	router := NewRouter(Controllers{
		Session:      controllers.NewSessionController(testLogger, sessions, tokens, time.Hour),
		Catalog:      controllers.NewCatalogController(testLogger, store, loader, translator),
		Cart:         controllers.NewCartController(testLogger, store, translator),
		Calendar:     controllers.NewCalendarController(testLogger, store, services.NewBookingService(nopSender{}, translator, clock, testLogger), translator),
		Notification: controllers.NewNotificationController(testLogger, nil),
	}, middleware.RequireSession(tokens, sessions, testLogger))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, token, body string) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, r)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &envelope))
	}
	return resp, envelope
}

func TestRouter_SessionFlow(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := do(t, srv, http.MethodGet, "/cart", "", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodGet, "/cart", "not-a-token", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := do(t, srv, http.MethodPost, "/sessions", "", `{"lang":"en"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token := body["data"].(map[string]any)["token"].(string)
	require.NotEmpty(t, token)

	resp, body = do(t, srv, http.MethodPost, "/cart/items", token, `{"product_id":"p3"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 280.0, body["data"].(map[string]any)["total"])

	resp, body = do(t, srv, http.MethodPatch, "/cart/items/p3", token, `{"quantity":2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 560.0, body["data"].(map[string]any)["total"])

	resp, body = do(t, srv, http.MethodGet, "/notification", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Added!", body["data"].(map[string]any)["message"])

	resp, body = do(t, srv, http.MethodGet, "/calendar", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "2025-10-06", data["selected_date"])
	assert.Len(t, data["events"], 1)

	resp, _ = do(t, srv, http.MethodPost, "/calendar/booking/submit", token, `{"name":"Anna","phone":"1","persons":1}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodDelete, "/session", token, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = do(t, srv, http.MethodGet, "/cart", token, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "session expired", body["error"].(map[string]any)["message"])
}

func TestRouter_PublicRoutes(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := do(t, srv, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPut, "/sessions", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
