package pricing

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/pricecompare/internal/domain/model"
)

func mustCatalog(t *testing.T, stores []model.Store, products []model.Product) *model.Catalog {
	t.Helper()
	c, err := model.NewCatalog(stores, products)
	require.NoError(t, err)
	return c
}

func cartOf(entries ...model.CartEntry) model.Cart {
	return model.Cart{Items: entries}
}

// Store A 3.99, Store B 2.49; P is 10.00 at A and out of stock at B.
func twoStoreCatalog(t *testing.T) *model.Catalog {
	return mustCatalog(t,
		[]model.Store{
			{ID: "a", Name: "Store A", DeliveryFee: 399},
			{ID: "b", Name: "Store B", DeliveryFee: 249},
		},
		[]model.Product{{
			ID: "p", Name: "P", Brand: "Acme", Category: "phones", Specs: []string{"5G"},
			Pricing: map[string]model.Offer{
				"a": {Price: 1000, Available: true},
				"b": {Price: 900, Available: false},
			},
		}},
	)
}

func TestComputeQuotesPrefersFullyStockedStore(t *testing.T) {
	catalog := twoStoreCatalog(t)
	quotes := ComputeQuotes(cartOf(model.CartEntry{ProductID: "p", Quantity: 1}), catalog)

	require.Len(t, quotes, 2)
	assert.Equal(t, model.Money(1399), quotes[0].Total)
	assert.Equal(t, 0, quotes[0].MissingCount)
	assert.Equal(t, 1, quotes[0].AvailableCount)
	assert.Equal(t, model.Money(1000), quotes[0].AvailableItems[0].UnitPrice)

	assert.Equal(t, model.Money(249), quotes[1].Total)
	assert.Equal(t, 1, quotes[1].MissingCount)
	assert.Equal(t, []string{"P"}, quotes[1].UnavailableProductNames)

	best := SelectBestStore(quotes)
	require.NotNil(t, best)
	assert.Equal(t, "a", best.Store.ID)
}

func TestComputeQuotesSumsQuantities(t *testing.T) {
	catalog := mustCatalog(t,
		[]model.Store{{ID: "c", Name: "Store C", DeliveryFee: 400}},
		[]model.Product{
			{ID: "p", Name: "P", Pricing: map[string]model.Offer{"c": {Price: 500, Available: true}}},
			{ID: "q", Name: "Q", Pricing: map[string]model.Offer{"c": {Price: 2000, Available: true}}},
		},
	)

	quotes := ComputeQuotes(cartOf(
		model.CartEntry{ProductID: "p", Quantity: 2},
		model.CartEntry{ProductID: "q", Quantity: 1},
	), catalog)

	require.Len(t, quotes, 1)
	assert.Equal(t, model.Money(3400), quotes[0].Total)
	assert.Equal(t, "34.00", quotes[0].Total.String())
}

func TestComputeQuotesEmptyCart(t *testing.T) {
	catalog := twoStoreCatalog(t)
	quotes := ComputeQuotes(model.Cart{}, catalog)

	for i, s := range catalog.Stores() {
		assert.Equal(t, s.DeliveryFee, quotes[i].Total)
		assert.Equal(t, 0, quotes[i].MissingCount)
		assert.Empty(t, quotes[i].AvailableItems)
		assert.Empty(t, quotes[i].UnavailableProductNames)
	}
}

func TestComputeQuotesSkipsUnknownProducts(t *testing.T) {
	catalog := twoStoreCatalog(t)
	quotes := ComputeQuotes(cartOf(
		model.CartEntry{ProductID: "ghost", Quantity: 3},
		model.CartEntry{ProductID: "p", Quantity: 1},
	), catalog)

	for _, q := range quotes {
		assert.Equal(t, 1, q.AvailableCount+q.MissingCount)
	}
	assert.Equal(t, model.Money(1399), quotes[0].Total)
}

func TestComputeQuotesAbsentPricingIsUnavailable(t *testing.T) {
	catalog := mustCatalog(t,
		[]model.Store{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
		[]model.Product{{ID: "p", Name: "P", Pricing: map[string]model.Offer{"a": {Price: 100, Available: true}}}},
	)
	quotes := ComputeQuotes(cartOf(model.CartEntry{ProductID: "p", Quantity: 1}), catalog)
	assert.Equal(t, 0, quotes[0].MissingCount)
	assert.Equal(t, 1, quotes[1].MissingCount)
}

func TestComputeQuotesIsDeterministic(t *testing.T) {
	catalog := twoStoreCatalog(t)
	cart := cartOf(model.CartEntry{ProductID: "p", Quantity: 7})
	before := append([]model.CartEntry(nil), cart.Items...)

	first := ComputeQuotes(cart, catalog)
	second := ComputeQuotes(cart, catalog)

	assert.Equal(t, first, second)
	assert.Equal(t, before, cart.Items)
}

func TestSelectBestStore(t *testing.T) {
	quote := func(id string, total model.Money, missing int) model.StoreQuote {
		return model.StoreQuote{Store: model.Store{ID: id}, Total: total, MissingCount: missing}
	}

	assert.Nil(t, SelectBestStore(nil))
	assert.Nil(t, SelectBestStore([]model.StoreQuote{quote("a", 100, 1), quote("b", 50, 2)}))

	best := SelectBestStore([]model.StoreQuote{quote("a", 500, 0), quote("b", 100, 1), quote("c", 300, 0), quote("d", 300, 0)})
	require.NotNil(t, best)
	assert.Equal(t, "c", best.Store.ID)

	tie := SelectBestStore([]model.StoreQuote{quote("x", 200, 0), quote("y", 200, 0)})
	require.NotNil(t, tie)
	assert.Equal(t, "x", tie.Store.ID)
}

func TestBuildOrderEmptyCart(t *testing.T) {
	assert.Nil(t, BuildOrder(model.Cart{}, twoStoreCatalog(t), CheckoutParams{}, "1", time.Now()))
}

func TestBuildOrderDefaultsToBestStore(t *testing.T) {
	catalog := twoStoreCatalog(t)
	placedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	params := CheckoutParams{
		Customer:      model.Customer{Name: "Ann", Email: "ann@example.com"},
		Address:       model.Address{City: "Oslo"},
		PaymentMethod: "card",
		PaymentNote:   "leave at door",
	}

	order := BuildOrder(cartOf(model.CartEntry{ProductID: "p", Quantity: 2}), catalog, params, "42", placedAt)
	require.NotNil(t, order)

	assert.Equal(t, "42", order.ID)
	assert.Equal(t, placedAt, order.PlacedAt)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, params.Customer, order.Customer)
	assert.Equal(t, "card", order.PaymentMethod)
	assert.Len(t, order.StoreComparisons, 2)

	require.Len(t, order.Items, 1)
	assert.Equal(t, model.OrderItem{
		ProductID: "p", Name: "P", Brand: "Acme", Category: "phones", Specs: []string{"5G"}, Quantity: 2,
	}, order.Items[0])

	require.NotNil(t, order.BestStoreID)
	assert.Equal(t, "a", *order.BestStoreID)
	assert.Equal(t, "Store A", *order.BestStoreName)
	require.NotNil(t, order.SelectedStoreID)
	assert.Equal(t, "a", *order.SelectedStoreID)
	assert.Equal(t, model.Money(2399), *order.SelectedStoreTotal)
	assert.Equal(t, model.Money(399), *order.SelectedStoreDelivery)
}

func TestBuildOrderHonoursExplicitStore(t *testing.T) {
	order := BuildOrder(cartOf(model.CartEntry{ProductID: "p", Quantity: 1}), twoStoreCatalog(t),
		CheckoutParams{StoreID: "b"}, "1", time.Now())
	require.NotNil(t, order)
	require.NotNil(t, order.SelectedStoreID)
	assert.Equal(t, "b", *order.SelectedStoreID)
	assert.Equal(t, model.Money(249), *order.SelectedStoreTotal)
	assert.Equal(t, "a", *order.BestStoreID)
}

func TestBuildOrderUnknownStoreFallsBackToBest(t *testing.T) {
	order := BuildOrder(cartOf(model.CartEntry{ProductID: "p", Quantity: 1}), twoStoreCatalog(t),
		CheckoutParams{StoreID: "zzz"}, "1", time.Now())
	require.NotNil(t, order)
	assert.Equal(t, "a", *order.SelectedStoreID)
}

func TestBuildOrderWithoutFullyStockedStore(t *testing.T) {
	catalog := mustCatalog(t,
		[]model.Store{{ID: "a", Name: "A", DeliveryFee: 100}},
		[]model.Product{{ID: "p", Name: "P"}},
	)
	order := BuildOrder(cartOf(model.CartEntry{ProductID: "p", Quantity: 1}), catalog, CheckoutParams{}, "1", time.Now())
	require.NotNil(t, order)

	assert.Nil(t, order.BestStoreID)
	assert.Nil(t, order.SelectedStoreID)
	assert.Nil(t, order.SelectedStoreTotal)
	assert.Nil(t, order.SelectedStoreDelivery)
	require.Len(t, order.StoreComparisons, 1)
	assert.Equal(t, 1, order.StoreComparisons[0].MissingCount)

	data, err := json.Marshal(order)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"selectedStoreId":null`)
}

func TestBuildOrderSnapshotIsDetached(t *testing.T) {
	catalog := twoStoreCatalog(t)
	order := BuildOrder(cartOf(model.CartEntry{ProductID: "p", Quantity: 1}), catalog, CheckoutParams{}, "1", time.Now())
	require.NotNil(t, order)

	order.Items[0].Specs[0] = "edited"
	product, _ := catalog.Product("p")
	assert.Equal(t, "5G", product.Specs[0])
}

func TestOrderJSONRoundTrip(t *testing.T) {
	order := BuildOrder(cartOf(model.CartEntry{ProductID: "p", Quantity: 3}), twoStoreCatalog(t),
		CheckoutParams{PaymentMethod: "cash"}, "7", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NotNil(t, order)

	data, err := json.Marshal(order)
	require.NoError(t, err)

	var decoded model.Order
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *order, decoded)
}

func TestComputeQuotesAtQuantityAndPriceLimits(t *testing.T) {
	catalog := mustCatalog(t,
		[]model.Store{
			{ID: "a", Name: "Store A", DeliveryFee: model.MaxAmount},
			{ID: "b", Name: "Store B", DeliveryFee: 0},
		},
		[]model.Product{
			{ID: "p", Name: "P", Pricing: map[string]model.Offer{
				"a": {Price: model.MaxAmount, Available: true},
				"b": {Price: 1999, Available: true},
			}},
			{ID: "q", Name: "Q", Pricing: map[string]model.Offer{
				"a": {Price: model.MaxAmount, Available: true},
				"b": {Price: 500, Available: true},
			}},
		},
	)

	var cart model.Cart
	require.NoError(t, cart.Add("p", model.MaxQuantity))
	require.NoError(t, cart.Add("q", model.MaxQuantity))

	quotes := ComputeQuotes(cart, catalog)
	require.Len(t, quotes, 2)
	want := model.MaxAmount + 2*model.MaxAmount.Times(model.MaxQuantity)
	assert.Equal(t, want, quotes[0].Total)
	assert.Positive(t, int64(quotes[0].Total))

	best := SelectBestStore(quotes)
	require.NotNil(t, best)
	assert.Equal(t, "b", best.Store.ID)
}
