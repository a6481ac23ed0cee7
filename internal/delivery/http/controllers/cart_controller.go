package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"wemetstudio/internal/delivery/http/helpers"
	"wemetstudio/internal/domain"
	"wemetstudio/internal/i18n"
	"wemetstudio/internal/services"
)

// AddCartItemRequest is the request body for POST /cart/items.
type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
}

// Validate implements Validator.
func (a AddCartItemRequest) Validate() []string {
	if strings.TrimSpace(a.ProductID) == "" {
		return []string{"product_id is required"}
	}
	return nil
}

// UpdateCartItemRequest is the request body for PATCH /cart/items/{productID}.
// Zero removes the line; negative quantities are rejected.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity"`
}

// Validate implements Validator.
func (u UpdateCartItemRequest) Validate() []string {
	if u.Quantity == nil {
		return []string{"quantity is required"}
	}
	return nil
}

// CartResponse is the cart snapshot plus the empty-cart message in the session language.
type CartResponse struct {
	domain.CartSnapshot
	EmptyMessage string `json:"empty_message,omitempty"`
}

type CartController struct {
	Logger     *slog.Logger
	Catalog    *services.Catalog
	Translator *i18n.Translator
}

func NewCartController(logger *slog.Logger, catalog *services.Catalog, translator *i18n.Translator) *CartController {
	return &CartController{
		Logger:     logger,
		Catalog:    catalog,
		Translator: translator,
	}
}

// GetCart godoc
// @Summary Get the cart
// @Description Line items in insertion order with prices resolved from the catalog, the total and the item count.
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=controllers.CartResponse}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /cart [get]
func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	c.writeCart(w, http.StatusOK, s)
}

// AddItem godoc
// @Summary Add a product to the cart
// @Description Increments the product's line or appends a new line with quantity 1, then shows the added-to-cart notification.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AddCartItemRequest true "Product"
// @Success 200 {object} helpers.APIResponse{data=controllers.CartResponse}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /cart/items [post]
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	product, found := c.Catalog.Product(req.ProductID)
	if !found {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "product not found")
		return
	}
	s.Cart.AddToCart(product)
	c.writeCart(w, http.StatusOK, s)
}

// UpdateItem godoc
// @Summary Set the quantity of a cart line
// @Description Zero removes the line. Negative quantities are rejected and leave the cart unchanged. Unknown product ids are ignored.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productID path string true "Product ID"
// @Param body body UpdateCartItemRequest true "Quantity"
// @Success 200 {object} helpers.APIResponse{data=controllers.CartResponse}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /cart/items/{productID} [patch]
func (c *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	productID := r.PathValue("productID")
	if productID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing productID")
		return
	}
	var req UpdateCartItemRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := s.Cart.UpdateQuantity(productID, *req.Quantity); err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	c.writeCart(w, http.StatusOK, s)
}

// RemoveItem godoc
// @Summary Remove a cart line
// @Description Removing a product that is not in the cart is a no-op.
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param productID path string true "Product ID"
// @Success 200 {object} helpers.APIResponse{data=controllers.CartResponse}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /cart/items/{productID} [delete]
func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	s.Cart.RemoveItem(r.PathValue("productID"))
	c.writeCart(w, http.StatusOK, s)
}

// ClearCart godoc
// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=controllers.CartResponse}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /cart [delete]
func (c *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	s.Cart.Clear()
	c.writeCart(w, http.StatusOK, s)
}

func (c *CartController) writeCart(w http.ResponseWriter, status int, s *services.Session) {
	resp := CartResponse{CartSnapshot: s.Cart.Snapshot()}
	if len(resp.Items) == 0 {
		resp.EmptyMessage = c.Translator.T(s.Lang(), "cartEmpty")
	}
	helpers.WriteJSONSuccess(w, status, resp)
}
