package dto

import "github.com/polkiloo/pricecompare/internal/domain/model"

// CheckoutRequest is the checkout form. An empty StoreID selects the best store.
type CheckoutRequest struct {
	StoreID       string        `json:"storeId"`
	PaymentMethod string        `json:"paymentMethod"`
	PaymentNote   string        `json:"paymentNote"`
	Address       model.Address `json:"address"`
}
