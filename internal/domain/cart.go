package domain

// CartLineItem is one product id and its quantity. Quantity is always >= 1.
type CartLineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartLineView is a line item resolved against the catalog for display.
// swagger:model CartLineView
type CartLineView struct {
	ProductID string        `json:"product_id"`
	Name      LocalizedText `json:"name"`
	Image     string        `json:"image"`
	Price     float64       `json:"price"`
	Quantity  int           `json:"quantity"`
	Subtotal  float64       `json:"subtotal"`
}

// CartSnapshot is a read-only copy of the cart for the presentation layer.
// swagger:model CartSnapshot
type CartSnapshot struct {
	Items     []CartLineView `json:"items"`
	Total     float64        `json:"total"`
	ItemCount int            `json:"item_count"`
}
