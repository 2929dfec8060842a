package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/polkiloo/pricecompare/internal/domain/errors"
	"github.com/polkiloo/pricecompare/internal/domain/model"
	"github.com/polkiloo/pricecompare/internal/domain/repository"
	"github.com/polkiloo/pricecompare/internal/pricing"
)

// Comparison is the per-store view of a cart.
type Comparison struct {
	Quotes []model.StoreQuote
	Best   *model.StoreQuote
}

// CartUseCase edits carts and prices them against the catalog.
type CartUseCase struct {
	carts   repository.CartRepository
	catalog *model.Catalog
	locks   *UserLocks
}

func NewCartUseCase(carts repository.CartRepository, catalog *model.Catalog, locks *UserLocks) *CartUseCase {
	return &CartUseCase{carts: carts, catalog: catalog, locks: locks}
}

func (u *CartUseCase) Cart(ctx context.Context, userID int64) (model.Cart, error) {
	return u.carts.Get(ctx, userID)
}

// AddItem increments the quantity of a catalog product.
func (u *CartUseCase) AddItem(ctx context.Context, userID int64, productID string, qty int) (model.Cart, error) {
	if !u.catalog.HasProduct(productID) {
		return model.Cart{}, fmt.Errorf("%w: product %q", domainErrors.ErrNotFound, productID)
	}
	return u.modify(ctx, userID, func(cart *model.Cart) error {
		return cart.Add(productID, qty)
	})
}

// SetQuantity replaces the quantity; zero or less removes the product.
func (u *CartUseCase) SetQuantity(ctx context.Context, userID int64, productID string, qty int) (model.Cart, error) {
	if qty > 0 && !u.catalog.HasProduct(productID) {
		return model.Cart{}, fmt.Errorf("%w: product %q", domainErrors.ErrNotFound, productID)
	}
	return u.modify(ctx, userID, func(cart *model.Cart) error {
		return cart.SetQuantity(productID, qty)
	})
}

func (u *CartUseCase) RemoveItem(ctx context.Context, userID int64, productID string) (model.Cart, error) {
	return u.modify(ctx, userID, func(cart *model.Cart) error {
		cart.Remove(productID)
		return nil
	})
}

func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	unlock := u.locks.Lock(userID)
	defer unlock()
	return u.carts.Clear(ctx, userID)
}

// Quotes prices the stored cart at every store and picks the cheapest fully stocked one.
func (u *CartUseCase) Quotes(ctx context.Context, userID int64) (*Comparison, error) {
	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	quotes := pricing.ComputeQuotes(cart, u.catalog)
	return &Comparison{Quotes: quotes, Best: pricing.SelectBestStore(quotes)}, nil
}

func (u *CartUseCase) modify(ctx context.Context, userID int64, fn func(*model.Cart) error) (model.Cart, error) {
	unlock := u.locks.Lock(userID)
	defer unlock()

	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return model.Cart{}, err
	}
	if err := fn(&cart); err != nil {
		return model.Cart{}, err
	}
	if err := u.carts.Save(ctx, userID, cart); err != nil {
		return model.Cart{}, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}
