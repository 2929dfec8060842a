// Package pricing compares a cart across every catalog store and turns it into an order snapshot.
// All functions are pure: they never mutate the cart or the catalog.
package pricing

import (
	"time"

	"github.com/polkiloo/pricecompare/internal/domain/model"
)

// ComputeQuotes prices the cart at every store in catalog order.
// Entries referencing unknown products are skipped.
func ComputeQuotes(cart model.Cart, catalog *model.Catalog) []model.StoreQuote {
	stores := catalog.Stores()
	quotes := make([]model.StoreQuote, len(stores))
	for i, s := range stores {
		quotes[i] = model.StoreQuote{
			Store:                   s,
			Total:                   s.DeliveryFee,
			AvailableItems:          []model.QuoteItem{},
			UnavailableProductNames: []string{},
		}
	}

	for _, entry := range cart.Items {
		product, ok := catalog.Product(entry.ProductID)
		if !ok {
			continue
		}
		for i := range quotes {
			q := &quotes[i]
			offer, ok := product.AvailableAt(q.Store.ID)
			if !ok {
				q.UnavailableProductNames = append(q.UnavailableProductNames, product.Name)
				continue
			}
			q.AvailableItems = append(q.AvailableItems, model.QuoteItem{
				Product:   product,
				Quantity:  entry.Quantity,
				UnitPrice: offer.Price,
			})
			q.Total += offer.Price.Times(entry.Quantity)
		}
	}

	for i := range quotes {
		quotes[i].AvailableCount = len(quotes[i].AvailableItems)
		quotes[i].MissingCount = len(quotes[i].UnavailableProductNames)
	}
	return quotes
}

// SelectBestStore returns the cheapest fully stocked quote, or nil when none can fulfil the cart.
// Ties keep the earliest quote.
func SelectBestStore(quotes []model.StoreQuote) *model.StoreQuote {
	var best *model.StoreQuote
	for i := range quotes {
		q := &quotes[i]
		if !q.FullyStocked() {
			continue
		}
		if best == nil || q.Total < best.Total {
			best = q
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}

// CheckoutParams carries the shopper's checkout choices.
type CheckoutParams struct {
	Customer      model.Customer
	StoreID       string
	Address       model.Address
	PaymentMethod string
	PaymentNote   string
}

// BuildOrder snapshots the cart and its store comparison into a pending order.
// It returns nil for an empty cart. The selected store is params.StoreID when it is
// one of the quoted stores, otherwise the best store; with neither the selection stays empty.
func BuildOrder(cart model.Cart, catalog *model.Catalog, params CheckoutParams, id string, placedAt time.Time) *model.Order {
	if cart.IsEmpty() {
		return nil
	}

	quotes := ComputeQuotes(cart, catalog)
	best := SelectBestStore(quotes)

	order := &model.Order{
		ID:               id,
		PlacedAt:         placedAt,
		Customer:         params.Customer,
		Items:            snapshotItems(cart, catalog),
		StoreComparisons: quotes,
		PaymentMethod:    params.PaymentMethod,
		PaymentNote:      params.PaymentNote,
		Address:          params.Address,
		Status:           model.OrderStatusPending,
	}

	if best != nil {
		order.BestStoreID = ptr(best.Store.ID)
		order.BestStoreName = ptr(best.Store.Name)
	}

	if chosen := chooseStore(quotes, params.StoreID, best); chosen != nil {
		order.SelectedStoreID = ptr(chosen.Store.ID)
		order.SelectedStoreName = ptr(chosen.Store.Name)
		order.SelectedStoreTotal = ptr(chosen.Total)
		order.SelectedStoreDelivery = ptr(chosen.Store.DeliveryFee)
	}

	return order
}

func chooseStore(quotes []model.StoreQuote, storeID string, best *model.StoreQuote) *model.StoreQuote {
	if storeID != "" {
		for i := range quotes {
			if quotes[i].Store.ID == storeID {
				return &quotes[i]
			}
		}
	}
	return best
}

func snapshotItems(cart model.Cart, catalog *model.Catalog) []model.OrderItem {
	items := make([]model.OrderItem, 0, len(cart.Items))
	for _, entry := range cart.Items {
		product, ok := catalog.Product(entry.ProductID)
		if !ok {
			continue
		}
		items = append(items, model.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Brand:     product.Brand,
			Category:  product.Category,
			Specs:     product.Specs,
			Quantity:  entry.Quantity,
		})
	}
	return items
}

func ptr[T any](v T) *T { return &v }
