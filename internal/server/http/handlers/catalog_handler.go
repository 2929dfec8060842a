package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/pricecompare/internal/domain/model"
)

type CatalogHandler struct {
	facade CatalogFacade
}

func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Stores handles GET /api/catalog/stores.
func (h *CatalogHandler) Stores(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.Stores())
}

// Products handles GET /api/catalog/products with an optional ?category= filter.
func (h *CatalogHandler) Products(c *gin.Context) {
	products := h.facade.Products()
	if category := c.Query("category"); category != "" {
		filtered := make([]model.Product, 0, len(products))
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	c.JSON(http.StatusOK, products)
}

// Product handles GET /api/catalog/products/:id.
func (h *CatalogHandler) Product(c *gin.Context) {
	product, ok := h.facade.Product(c.Param("id"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}
