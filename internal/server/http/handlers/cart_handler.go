package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/pricecompare/internal/domain/model"
	"github.com/polkiloo/pricecompare/internal/server/http/dto"
)

// CartHandler manages the caller's cart.
type CartHandler struct {
	carts   CartFacade
	catalog CatalogFacade
}

func NewCartHandler(carts CartFacade, catalog CatalogFacade) *CartHandler {
	return &CartHandler{carts: carts, catalog: catalog}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.carts.Cart(c.Request.Context(), CurrentUserID(c))
	h.respond(c, cart, err)
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cart, err := h.carts.AddToCart(c.Request.Context(), CurrentUserID(c), req.ProductID, req.Qty())
	h.respond(c, cart, err)
}

// SetItem handles PUT /api/cart/items/:productId.
func (h *CartHandler) SetItem(c *gin.Context) {
	var req dto.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cart, err := h.carts.SetCartQuantity(c.Request.Context(), CurrentUserID(c), c.Param("productId"), *req.Quantity)
	h.respond(c, cart, err)
}

// RemoveItem handles DELETE /api/cart/items/:productId.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.carts.RemoveFromCart(c.Request.Context(), CurrentUserID(c), c.Param("productId"))
	h.respond(c, cart, err)
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.carts.ClearCart(c.Request.Context(), CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Quotes handles GET /api/cart/quotes.
func (h *CartHandler) Quotes(c *gin.Context) {
	cmp, err := h.carts.Quotes(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ComparisonResponse{Quotes: cmp.Quotes, Best: cmp.Best})
}

func (h *CartHandler) respond(c *gin.Context, cart model.Cart, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(cart, h.catalog.Product))
}
