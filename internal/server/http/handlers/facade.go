package handlers

import (
	"context"

	"github.com/polkiloo/pricecompare/internal/domain/model"
	"github.com/polkiloo/pricecompare/internal/usecase"
)

// AuthFacade describes account capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, upd usecase.ProfileUpdate) (*model.User, error)
}

// CatalogFacade exposes the read-only catalog.
type CatalogFacade interface {
	Stores() []model.Store
	Products() []model.Product
	Product(id string) (model.Product, bool)
}

// CartFacade encapsulates cart editing and price comparison.
type CartFacade interface {
	Cart(ctx context.Context, userID int64) (model.Cart, error)
	AddToCart(ctx context.Context, userID int64, productID string, qty int) (model.Cart, error)
	SetCartQuantity(ctx context.Context, userID int64, productID string, qty int) (model.Cart, error)
	RemoveFromCart(ctx context.Context, userID int64, productID string) (model.Cart, error)
	ClearCart(ctx context.Context, userID int64) error
	Quotes(ctx context.Context, userID int64) (*usecase.Comparison, error)
}

// OrderFacade covers checkout and the shopper's own history.
type OrderFacade interface {
	Checkout(ctx context.Context, userID int64, in usecase.CheckoutInput) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	DeleteOrder(ctx context.Context, userID int64, orderID string) error
}

// AdminFacade provides account and order management for administrators.
type AdminFacade interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, upd usecase.UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
	AllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status string) error
	AdminDeleteOrder(ctx context.Context, orderID string) error
}

// HealthFacade reports backend availability keyed by component name.
type HealthFacade interface {
	Health(ctx context.Context) (map[string]string, bool)
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	OrderFacade
	AdminFacade
	HealthFacade
}
