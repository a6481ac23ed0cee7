package domain

import "context"

// Catalog collection names used in CatalogLoadError.
const (
	CollectionProducts     = "products"
	CollectionEvents       = "events"
	CollectionTestimonials = "testimonials"
	CollectionGallery      = "gallery"
)

// CatalogProvider is the external source of truth for products and events.
// Each call may block until the data arrives or ctx is done; failures are
// reported as *CatalogLoadError.
type CatalogProvider interface {
	LoadProducts(ctx context.Context) ([]Product, error)
	LoadEvents(ctx context.Context) ([]Event, error)
	LoadTestimonials(ctx context.Context) ([]Testimonial, error)
	LoadGallery(ctx context.Context) ([]GalleryItem, error)
}

// ProductLookup resolves product ids held by the cart.
type ProductLookup interface {
	Product(id string) (Product, bool)
}

// EventSource exposes the current event list together with a version that
// changes whenever the list is replaced.
type EventSource interface {
	Events() (events []Event, version uint64)
	Event(id int) (Event, bool)
	Version() uint64
}

// CatalogStatus is the observable state of catalog loading.
// swagger:model CatalogStatus
type CatalogStatus struct {
	Loading    bool   `json:"loading"`
	Loaded     bool   `json:"loaded"`
	Error      string `json:"error,omitempty"`
	Version    uint64 `json:"version"`
	Generation uint64 `json:"generation"`
}
