package model

// QuoteItem is a cart line a store can fulfil.
type QuoteItem struct {
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice Money   `json:"unitPrice"`
}

// StoreQuote summarises what the current cart costs at one store.
type StoreQuote struct {
	Store                   Store       `json:"store"`
	Total                   Money       `json:"total"`
	AvailableItems          []QuoteItem `json:"availableItems"`
	UnavailableProductNames []string    `json:"unavailableProductNames"`
	AvailableCount          int         `json:"availableCount"`
	MissingCount            int         `json:"missingCount"`
}

// FullyStocked reports whether every cart product is available at the store.
func (q StoreQuote) FullyStocked() bool { return q.MissingCount == 0 }
