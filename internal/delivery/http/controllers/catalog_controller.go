package controllers

import (
	"log/slog"
	"net/http"

	"wemetstudio/internal/delivery/http/helpers"
	"wemetstudio/internal/delivery/http/middleware"
	"wemetstudio/internal/domain"
	"wemetstudio/internal/i18n"
	"wemetstudio/internal/services"
)

// ProductsResponse is the response body for GET /products.
type ProductsResponse struct {
	Products []domain.Product    `json:"products"`
	Status   domain.CatalogStatus `json:"status"`
}

// EventView is an event with its labels resolved for the session language.
type EventView struct {
	domain.Event
	LocalizedTitle string `json:"localized_title"`
	PriceLabel     string `json:"price_label"`
	SpotsLabel     string `json:"spots_label"`
}

// EventsResponse is the response body for GET /events.
type EventsResponse struct {
	Events []EventView          `json:"events"`
	Status domain.CatalogStatus `json:"status"`
}

// TestimonialsResponse is the response body for GET /testimonials.
type TestimonialsResponse struct {
	Testimonials []domain.Testimonial `json:"testimonials"`
	Status       domain.CatalogStatus `json:"status"`
}

// GalleryResponse is the response body for GET /gallery.
type GalleryResponse struct {
	Gallery []domain.GalleryItem `json:"gallery"`
	Status  domain.CatalogStatus `json:"status"`
}

// ReloadResponse is the response body for POST /catalog/reload.
type ReloadResponse struct {
	Generation uint64 `json:"generation"`
}

type CatalogController struct {
	Logger     *slog.Logger
	Catalog    *services.Catalog
	Loader     *services.CatalogLoader
	Translator *i18n.Translator
}

func NewCatalogController(logger *slog.Logger, catalog *services.Catalog, loader *services.CatalogLoader, translator *i18n.Translator) *CatalogController {
	return &CatalogController{
		Logger:     logger,
		Catalog:    catalog,
		Loader:     loader,
		Translator: translator,
	}
}

// Status godoc
// @Summary Catalog loading state
// @Description Reports whether a load is in flight, the last load error and the catalog version.
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=domain.CatalogStatus}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /catalog/status [get]
func (c *CatalogController) Status(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Loader.Status())
}

// Reload godoc
// @Summary Reload the catalog
// @Description Starts a new catalog load. An in-flight load is cancelled and its result discarded.
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 202 {object} helpers.APIResponse{data=controllers.ReloadResponse}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /catalog/reload [post]
func (c *CatalogController) Reload(w http.ResponseWriter, r *http.Request) {
	gen := c.Loader.Load(r.Context())
	helpers.WriteJSONSuccess(w, http.StatusAccepted, ReloadResponse{Generation: gen})
}

// ListProducts godoc
// @Summary List shop products
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=controllers.ProductsResponse}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: catalog_unavailable"
// @Router /products [get]
func (c *CatalogController) ListProducts(w http.ResponseWriter, r *http.Request) {
	status, ok := c.available(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ProductsResponse{Products: c.Catalog.Products(), Status: status})
}

// ListEvents godoc
// @Summary List workshops
// @Description Events in catalog order with title, price and spots labels in the session language.
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=controllers.EventsResponse}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: catalog_unavailable"
// @Router /events [get]
func (c *CatalogController) ListEvents(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	status, ok := c.available(w, r)
	if !ok {
		return
	}
	events, _ := c.Catalog.Events()
	helpers.WriteJSONSuccess(w, http.StatusOK, EventsResponse{
		Events: eventViews(c.Translator, s.Lang(), events),
		Status: status,
	})
}

// ListTestimonials godoc
// @Summary List guest testimonials
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=controllers.TestimonialsResponse}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: catalog_unavailable"
// @Router /testimonials [get]
func (c *CatalogController) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	status, ok := c.available(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, TestimonialsResponse{Testimonials: c.Catalog.Testimonials(), Status: status})
}

// ListGallery godoc
// @Summary List gallery pictures
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=controllers.GalleryResponse}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: catalog_unavailable"
// @Router /gallery [get]
func (c *CatalogController) ListGallery(w http.ResponseWriter, r *http.Request) {
	status, ok := c.available(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, GalleryResponse{Gallery: c.Catalog.Gallery(), Status: status})
}

// available writes 503 when nothing was ever loaded and the last load failed.
// While the first load is in flight the lists are empty and status.loading is set.
func (c *CatalogController) available(w http.ResponseWriter, r *http.Request) (domain.CatalogStatus, bool) {
	status := c.Loader.Status()
	if !status.Loaded && !status.Loading {
		if err := c.Loader.Err(); err != nil {
			lang := i18n.DefaultLang
			if s, ok := middleware.SessionFromContext(r.Context()); ok {
				lang = s.Lang()
			}
			c.Logger.WarnContext(r.Context(), "catalog unavailable", "path", r.URL.Path, "err", err)
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeCatalogUnavailable, c.Translator.T(lang, "catalogLoadError"))
			return status, false
		}
	}
	return status, true
}

func eventViews(tr *i18n.Translator, lang string, events []domain.Event) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, EventView{
			Event:          e,
			LocalizedTitle: e.Title.Get(lang),
			PriceLabel:     tr.T(lang, "priceFrom", e.Price),
			SpotsLabel:     tr.T(lang, "spotsLeft", e.Spots),
		})
	}
	return views
}
