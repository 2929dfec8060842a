package dto

import "github.com/polkiloo/pricecompare/internal/domain/model"

// AddItemRequest adds Quantity units of a product; Quantity defaults to one.
type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"omitempty,min=1,max=999"`
}

func (r AddItemRequest) Qty() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// QuantityRequest replaces the quantity of a cart line.
type QuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,max=999"`
}

// CartLine is a cart entry with the product details the client renders.
type CartLine struct {
	ProductID string         `json:"productId"`
	Quantity  int            `json:"quantity"`
	Product   *model.Product `json:"product"`
}

type CartResponse struct {
	Items      []CartLine `json:"items"`
	TotalUnits int        `json:"totalUnits"`
}

// NewCartResponse joins cart entries with catalog data. Entries whose product left the catalog keep a nil product.
func NewCartResponse(cart model.Cart, lookup func(string) (model.Product, bool)) CartResponse {
	resp := CartResponse{Items: make([]CartLine, 0, len(cart.Items))}
	for _, entry := range cart.Items {
		line := CartLine{ProductID: entry.ProductID, Quantity: entry.Quantity}
		if p, ok := lookup(entry.ProductID); ok {
			line.Product = &p
		}
		resp.Items = append(resp.Items, line)
		resp.TotalUnits += entry.Quantity
	}
	return resp
}

// ComparisonResponse lists a quote per store and the best fully stocked one.
type ComparisonResponse struct {
	Quotes []model.StoreQuote `json:"quotes"`
	Best   *model.StoreQuote  `json:"best"`
}
