package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wemetstudio/internal/delivery/http/helpers"
	"wemetstudio/internal/delivery/http/middleware"
	"wemetstudio/internal/domain"
	"wemetstudio/internal/i18n"
	"wemetstudio/internal/services"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var studioZone = time.FixedZone("IDT", 3*60*60)

// stubProvider serves a small fixed catalog, or fails every collection with err.
type stubProvider struct {
	err error
}

func (p stubProvider) fail(collection string) error {
	return domain.NewCatalogLoadError(collection, p.err)
}

func (p stubProvider) LoadProducts(context.Context) ([]domain.Product, error) {
	if p.err != nil {
		return nil, p.fail(domain.CollectionProducts)
	}
	return []domain.Product{
		{ID: "p1", Name: domain.LocalizedText{"en": "Misty Mug", "ru": "Туманная кружка"}, Price: 120},
		{ID: "p2", Name: domain.LocalizedText{"en": "Earthen Bowl"}, Price: 150},
	}, nil
}

func (p stubProvider) LoadEvents(context.Context) ([]domain.Event, error) {
	if p.err != nil {
		return nil, p.fail(domain.CollectionEvents)
	}
	return []domain.Event{
		{
			ID: 1, Type: domain.EventTypeAdults,
			Title:           domain.LocalizedText{"en": "Evening wheel", "ru": "Вечерний гончарный круг"},
			Date:            time.Date(2025, time.October, 6, 19, 0, 0, 0, studioZone),
			DurationMinutes: 120, Spots: 6, Price: 200,
		},
		{
			ID: 2, Type: domain.EventTypeKids,
			Title:           domain.LocalizedText{"en": "Kids clay"},
			Date:            time.Date(2025, time.October, 9, 14, 30, 0, 0, studioZone),
			DurationMinutes: 90, Spots: 14, Price: 150,
		},
	}, nil
}

func (p stubProvider) LoadTestimonials(context.Context) ([]domain.Testimonial, error) {
	if p.err != nil {
		return nil, p.fail(domain.CollectionTestimonials)
	}
	return []domain.Testimonial{{ID: 1, Name: "Dana", Text: domain.LocalizedText{"en": "Lovely evening"}}}, nil
}

func (p stubProvider) LoadGallery(context.Context) ([]domain.GalleryItem, error) {
	if p.err != nil {
		return nil, p.fail(domain.CollectionGallery)
	}
	return []domain.GalleryItem{{Src: "/gallery/1.jpg", Alt: "Bowls"}}, nil
}

// recordingSender implements domain.BookingRequestSender.
type recordingSender struct {
	mu   sync.Mutex
	sent []*domain.BookingRequest
	err  error
}

func (s *recordingSender) SendBookingRequest(_ context.Context, req *domain.BookingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, req)
	return nil
}

type testEnv struct {
	catalog    *services.Catalog
	loader     *services.CatalogLoader
	sessions   *services.SessionRegistry
	translator *i18n.Translator
	sender     *recordingSender
	booking    *services.BookingService
}

// newTestEnv loads the stub catalog; a non-nil providerErr leaves it empty.
func newTestEnv(t *testing.T, providerErr error) *testEnv {
	t.Helper()
	catalog := services.NewCatalog()
	loader := services.NewCatalogLoader(stubProvider{err: providerErr}, catalog, studioZone, testLogger, time.Second)
	err := loader.LoadAndWait(context.Background())
	if providerErr == nil {
		require.NoError(t, err)
	} else {
		require.Error(t, err)
	}
	translator := i18n.NewTranslator()
	clock := services.NewRealClock()
	sender := &recordingSender{}
	return &testEnv{
		catalog:    catalog,
		loader:     loader,
		sessions:   services.NewSessionRegistry(catalog, translator, clock, services.SessionConfig{TTL: time.Hour}, testLogger),
		translator: translator,
		sender:     sender,
		booking:    services.NewBookingService(sender, translator, clock, testLogger),
	}
}

func withSession(req *http.Request, s *services.Session) *http.Request {
	return req.WithContext(middleware.SetSession(req.Context(), s))
}

// decodeEnvelope decodes the response envelope, unmarshalling data into dest when non-nil.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, dest any) *helpers.APIError {
	t.Helper()
	var envelope struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	if dest != nil && envelope.Error == nil {
		require.NoError(t, json.Unmarshal(envelope.Data, dest))
	}
	return envelope.Error
}

var errTokenIssuer = errors.New("signing failed")

type failingIssuer struct{}

func (failingIssuer) Issue(string, time.Duration) (string, error) { return "", errTokenIssuer }
