package app

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/pricecompare/internal/domain/model"
	"github.com/polkiloo/pricecompare/internal/domain/repository"
	pkgAuth "github.com/polkiloo/pricecompare/internal/pkg/auth"
	"github.com/polkiloo/pricecompare/internal/usecase"
)

const (
	healthCheckTimeout   = 2 * time.Second
	componentUnavailable = "unavailable"
)

// ShopFacade exposes the use cases to the transport layer.
type ShopFacade struct {
	auth    *usecase.AuthUseCase
	users   *usecase.UserAdminUseCase
	carts   *usecase.CartUseCase
	orders  *usecase.OrderUseCase
	catalog *model.Catalog
	checks  []repository.HealthCheck
	logger  *slog.Logger
}

type facadeParams struct {
	fx.In

	Auth    *usecase.AuthUseCase
	Users   *usecase.UserAdminUseCase
	Carts   *usecase.CartUseCase
	Orders  *usecase.OrderUseCase
	Catalog *model.Catalog
	Checks  []repository.HealthCheck `group:"health"`
	Logger  *slog.Logger
}

func NewShopFacade(p facadeParams) *ShopFacade {
	return &ShopFacade{
		auth:    p.Auth,
		users:   p.Users,
		carts:   p.Carts,
		orders:  p.Orders,
		catalog: p.Catalog,
		checks:  p.Checks,
		logger:  p.Logger,
	}
}

func (f *ShopFacade) Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error) {
	return f.auth.Register(ctx, in)
}

func (f *ShopFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *ShopFacade) ParseToken(token string) (pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *ShopFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.Profile(ctx, userID)
}

func (f *ShopFacade) UpdateProfile(ctx context.Context, userID int64, upd usecase.ProfileUpdate) (*model.User, error) {
	return f.auth.UpdateProfile(ctx, userID, upd)
}

func (f *ShopFacade) Stores() []model.Store {
	return f.catalog.Stores()
}

func (f *ShopFacade) Products() []model.Product {
	return f.catalog.Products()
}

func (f *ShopFacade) Product(id string) (model.Product, bool) {
	return f.catalog.Product(id)
}

func (f *ShopFacade) Cart(ctx context.Context, userID int64) (model.Cart, error) {
	return f.carts.Cart(ctx, userID)
}

func (f *ShopFacade) AddToCart(ctx context.Context, userID int64, productID string, qty int) (model.Cart, error) {
	return f.carts.AddItem(ctx, userID, productID, qty)
}

func (f *ShopFacade) SetCartQuantity(ctx context.Context, userID int64, productID string, qty int) (model.Cart, error) {
	return f.carts.SetQuantity(ctx, userID, productID, qty)
}

func (f *ShopFacade) RemoveFromCart(ctx context.Context, userID int64, productID string) (model.Cart, error) {
	return f.carts.RemoveItem(ctx, userID, productID)
}

func (f *ShopFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.carts.Clear(ctx, userID)
}

func (f *ShopFacade) Quotes(ctx context.Context, userID int64) (*usecase.Comparison, error) {
	return f.carts.Quotes(ctx, userID)
}

func (f *ShopFacade) Checkout(ctx context.Context, userID int64, in usecase.CheckoutInput) (*model.Order, error) {
	return f.orders.Checkout(ctx, userID, in)
}

func (f *ShopFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.Orders(ctx, userID)
}

func (f *ShopFacade) DeleteOrder(ctx context.Context, userID int64, orderID string) error {
	return f.orders.DeleteOrder(ctx, userID, orderID)
}

func (f *ShopFacade) ListUsers(ctx context.Context) ([]model.User, error) {
	return f.users.ListUsers(ctx)
}

func (f *ShopFacade) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return f.users.GetUser(ctx, id)
}

func (f *ShopFacade) UpdateUser(ctx context.Context, id int64, upd usecase.UserUpdate) (*model.User, error) {
	return f.users.UpdateUser(ctx, id, upd)
}

func (f *ShopFacade) DeleteUser(ctx context.Context, id int64) error {
	return f.users.DeleteUser(ctx, id)
}

func (f *ShopFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.AllOrders(ctx)
}

func (f *ShopFacade) UpdateOrderStatus(ctx context.Context, orderID string, status string) error {
	return f.orders.UpdateStatus(ctx, orderID, status)
}

func (f *ShopFacade) AdminDeleteOrder(ctx context.Context, orderID string) error {
	return f.orders.AdminDeleteOrder(ctx, orderID)
}

// Health probes every registered backend and reports false when any of them fails.
func (f *ShopFacade) Health(ctx context.Context) (map[string]string, bool) {
	result := make(map[string]string, len(f.checks))
	healthy := true
	for _, check := range f.checks {
		probeCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		err := check.Check(probeCtx)
		cancel()
		if err != nil {
			healthy = false
			result[check.Name] = componentUnavailable
			f.logger.Warn("health check failed", slog.String("component", check.Name), slog.String("error", err.Error()))
			continue
		}
		result[check.Name] = "ok"
	}
	return result, healthy
}
