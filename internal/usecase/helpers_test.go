package usecase

import (
	"io"
	"log/slog"
	"testing"

	"github.com/polkiloo/pricecompare/internal/domain/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// testCatalog has two stores: "a" stocks both products, "b" lacks the cable.
func testCatalog(t *testing.T) *model.Catalog {
	t.Helper()
	c, err := model.NewCatalog(
		[]model.Store{
			{ID: "a", Name: "Alpha", DeliveryFee: model.Cents(500)},
			{ID: "b", Name: "Beta", DeliveryFee: model.Cents(0)},
		},
		[]model.Product{
			{ID: "phone", Name: "Phone", Brand: "Acme", Category: "phones", Specs: []string{"6.1in"}, Pricing: map[string]model.Offer{
				"a": {Price: model.Cents(10000), Available: true},
				"b": {Price: model.Cents(9900), Available: true},
			}},
			{ID: "cable", Name: "Cable", Pricing: map[string]model.Offer{
				"a": {Price: model.Cents(999), Available: true},
				"b": {Price: model.Cents(899), Available: false},
			}},
		},
	)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}
