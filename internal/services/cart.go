package services

import (
	"fmt"
	"sync"

	"wemetstudio/internal/domain"
)

// CartStore owns the cart line items of one session. Line items hold product
// ids only; prices are read from the catalog when totals are computed.
type CartStore struct {
	mu       sync.Mutex
	products domain.ProductLookup
	items    []domain.CartLineItem
	onAdd    func(domain.Product)
}

// NewCartStore returns an empty cart. onAdd, when set, runs after every
// AddToCart outside the store's lock.
func NewCartStore(products domain.ProductLookup, onAdd func(domain.Product)) *CartStore {
	return &CartStore{products: products, onAdd: onAdd}
}

// AddToCart increments the line for product or appends a new line with quantity 1.
func (c *CartStore) AddToCart(product domain.Product) {
	c.mu.Lock()
	if i := c.indexOf(product.ID); i >= 0 {
		c.items[i].Quantity++
	} else {
		c.items = append(c.items, domain.CartLineItem{ProductID: product.ID, Quantity: 1})
	}
	c.mu.Unlock()

	if c.onAdd != nil {
		c.onAdd(product)
	}
}

// UpdateQuantity sets the quantity of a line. Zero removes the line, negative
// quantities are rejected with domain.ErrInvalidQuantity and change nothing.
// Updating a product that is not in the cart is a no-op.
func (c *CartStore) UpdateQuantity(productID string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, quantity)
	}
	if quantity == 0 {
		c.RemoveItem(productID)
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(productID); i >= 0 {
		c.items[i].Quantity = quantity
	}
	return nil
}

// RemoveItem deletes the line for productID if present.
func (c *CartStore) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// Clear empties the cart.
func (c *CartStore) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the line items in insertion order.
func (c *CartStore) Items() []domain.CartLineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.CartLineItem{}, c.items...)
}

// Total returns the sum of quantity × price over all lines.
func (c *CartStore) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, item := range c.items {
		total += float64(item.Quantity) * c.price(item.ProductID)
	}
	return total
}

// ItemCount returns the sum of quantities.
func (c *CartStore) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// Snapshot returns the cart resolved against the catalog.
func (c *CartStore) Snapshot() domain.CartSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := domain.CartSnapshot{Items: make([]domain.CartLineView, 0, len(c.items))}
	for _, item := range c.items {
		view := domain.CartLineView{ProductID: item.ProductID, Quantity: item.Quantity}
		if p, ok := c.products.Product(item.ProductID); ok {
			view.Name = p.Name
			view.Image = p.Image
			view.Price = p.Price
		}
		view.Subtotal = float64(item.Quantity) * view.Price
		snap.Items = append(snap.Items, view)
		snap.Total += view.Subtotal
		snap.ItemCount += item.Quantity
	}
	return snap
}

func (c *CartStore) indexOf(productID string) int {
	for i, item := range c.items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// price of a product no longer in the catalog is 0.
func (c *CartStore) price(productID string) float64 {
	p, ok := c.products.Product(productID)
	if !ok {
		return 0
	}
	return p.Price
}
