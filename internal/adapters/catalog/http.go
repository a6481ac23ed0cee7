package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"wemetstudio/internal/domain"
)

type httpProvider struct {
	client  *http.Client
	baseURL string
}

// NewHTTPProvider returns a provider that reads each collection as a JSON
// array from baseURL + "/" + collection.
func NewHTTPProvider(client *http.Client, baseURL string) domain.CatalogProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpProvider{client: client, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (p *httpProvider) LoadProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := p.get(ctx, domain.CollectionProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (p *httpProvider) LoadEvents(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := p.get(ctx, domain.CollectionEvents, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (p *httpProvider) LoadTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	var testimonials []domain.Testimonial
	if err := p.get(ctx, domain.CollectionTestimonials, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (p *httpProvider) LoadGallery(ctx context.Context) ([]domain.GalleryItem, error) {
	var gallery []domain.GalleryItem
	if err := p.get(ctx, domain.CollectionGallery, &gallery); err != nil {
		return nil, err
	}
	return gallery, nil
}

func (p *httpProvider) get(ctx context.Context, collection string, dest any) error {
	url := fmt.Sprintf("%s/%s", p.baseURL, collection)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.NewCatalogLoadError(collection, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	resp, err := p.client.Do(req)
	if err != nil {
		return domain.NewCatalogLoadError(collection, fmt.Errorf("failed to fetch catalog: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.NewCatalogLoadError(collection, fmt.Errorf("catalog api returned status: %d", resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return domain.NewCatalogLoadError(collection, fmt.Errorf("failed to decode catalog response: %w", err))
	}
	return nil
}
