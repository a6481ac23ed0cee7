package services

import (
	"sync"

	"wemetstudio/internal/domain"
)

// CatalogData is one complete load of the catalog collections.
type CatalogData struct {
	Products     []domain.Product
	Events       []domain.Event
	Testimonials []domain.Testimonial
	Gallery      []domain.GalleryItem
}

// Catalog holds the loaded catalog. Its contents are replaced as a whole and
// never edited in place; Version increases on every replacement.
type Catalog struct {
	mu           sync.RWMutex
	products     []domain.Product
	productIndex map[string]int
	events       []domain.Event
	eventIndex   map[int]int
	testimonials []domain.Testimonial
	gallery      []domain.GalleryItem
	version      uint64
}

// NewCatalog returns an empty catalog at version 0.
func NewCatalog() *Catalog {
	return &Catalog{
		productIndex: map[string]int{},
		eventIndex:   map[int]int{},
	}
}

// Replace swaps in a new load and bumps the version.
func (c *Catalog) Replace(data CatalogData) uint64 {
	productIndex := make(map[string]int, len(data.Products))
	for i, p := range data.Products {
		productIndex[p.ID] = i
	}
	eventIndex := make(map[int]int, len(data.Events))
	for i, e := range data.Events {
		eventIndex[e.ID] = i
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append([]domain.Product(nil), data.Products...)
	c.productIndex = productIndex
	c.events = append([]domain.Event(nil), data.Events...)
	c.eventIndex = eventIndex
	c.testimonials = append([]domain.Testimonial(nil), data.Testimonials...)
	c.gallery = append([]domain.GalleryItem(nil), data.Gallery...)
	c.version++
	return c.version
}

// Version returns the current catalog version. 0 means nothing was loaded yet.
func (c *Catalog) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Products returns the products in catalog order.
func (c *Catalog) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Product{}, c.products...)
}

// Product implements domain.ProductLookup.
func (c *Catalog) Product(id string) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.productIndex[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// Events implements domain.EventSource.
func (c *Catalog) Events() ([]domain.Event, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Event{}, c.events...), c.version
}

// Event implements domain.EventSource.
func (c *Catalog) Event(id int) (domain.Event, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.eventIndex[id]
	if !ok {
		return domain.Event{}, false
	}
	return c.events[i], true
}

// Testimonials returns the guest reviews.
func (c *Catalog) Testimonials() []domain.Testimonial {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Testimonial{}, c.testimonials...)
}

// Gallery returns the gallery pictures.
func (c *Catalog) Gallery() []domain.GalleryItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.GalleryItem{}, c.gallery...)
}
