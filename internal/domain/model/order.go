package model

import (
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/pricecompare/internal/domain/errors"
)

// OrderStatus describes fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusScanned   OrderStatus = "Scanned"
	OrderStatusFulfilled OrderStatus = "Fulfilled"
)

var orderStatuses = []OrderStatus{OrderStatusPending, OrderStatusScanned, OrderStatusFulfilled}

// ParseOrderStatus matches s case-insensitively against the known statuses.
func ParseOrderStatus(s string) (OrderStatus, error) {
	s = strings.TrimSpace(s)
	for _, st := range orderStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, s)
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Address is free-form shipping information.
type Address struct {
	FullName   string `json:"fullName"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// OrderItem is a cart entry enriched with product details at checkout time.
type OrderItem struct {
	ProductID string   `json:"productId"`
	Name      string   `json:"name"`
	Brand     string   `json:"brand"`
	Category  string   `json:"category"`
	Specs     []string `json:"specs"`
	Quantity  int      `json:"quantity"`
}

// Order is a placed checkout. Items and store comparisons are snapshots and never change.
type Order struct {
	ID                    string       `json:"id"`
	UserID                int64        `json:"userId"`
	PlacedAt              time.Time    `json:"placedAt"`
	Customer              Customer     `json:"customer"`
	Items                 []OrderItem  `json:"items"`
	StoreComparisons      []StoreQuote `json:"storeComparisons"`
	BestStoreID           *string      `json:"bestStoreId"`
	BestStoreName         *string      `json:"bestStoreName"`
	SelectedStoreID       *string      `json:"selectedStoreId"`
	SelectedStoreName     *string      `json:"selectedStoreName"`
	SelectedStoreTotal    *Money       `json:"selectedStoreTotal"`
	SelectedStoreDelivery *Money       `json:"selectedStoreDelivery"`
	PaymentMethod         string       `json:"paymentMethod"`
	PaymentNote           string       `json:"paymentNote"`
	Address               Address      `json:"address"`
	Status                OrderStatus  `json:"status"`
}

func (o Order) IsPending() bool { return o.Status == OrderStatusPending }
