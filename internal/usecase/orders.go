package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/fx"

	domainErrors "github.com/polkiloo/pricecompare/internal/domain/errors"
	"github.com/polkiloo/pricecompare/internal/domain/model"
	"github.com/polkiloo/pricecompare/internal/domain/repository"
	"github.com/polkiloo/pricecompare/internal/pkg/idgen"
	"github.com/polkiloo/pricecompare/internal/pricing"
)

// CheckoutInput is what the shopper submits at checkout.
type CheckoutInput struct {
	StoreID       string
	Address       model.Address
	PaymentMethod string
	PaymentNote   string
}

// OrderDeps groups the collaborators of OrderUseCase.
type OrderDeps struct {
	fx.In

	Orders  repository.OrderRepository
	Carts   repository.CartRepository
	Users   repository.UserRepository
	Catalog *model.Catalog
	IDs     idgen.Generator
	Locks   *UserLocks
	Logger  *slog.Logger
}

// OrderUseCase encapsulates checkout and order history.
type OrderUseCase struct {
	orders     repository.OrderRepository
	carts      repository.CartRepository
	users      repository.UserRepository
	catalog    *model.Catalog
	ids        idgen.Generator
	userLocks  *UserLocks
	orderLocks *KeyedMutex[string]
	logger     *slog.Logger
	now        func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(d OrderDeps) *OrderUseCase {
	return &OrderUseCase{
		orders:     d.Orders,
		carts:      d.Carts,
		users:      d.Users,
		catalog:    d.Catalog,
		ids:        d.IDs,
		userLocks:  d.Locks,
		orderLocks: NewKeyedMutex[string](),
		logger:     d.Logger,
		now:        time.Now,
	}
}

// Checkout turns the user's cart into a pending order and empties the cart.
// An empty cart yields (nil, nil) and changes nothing.
func (u *OrderUseCase) Checkout(ctx context.Context, userID int64, in CheckoutInput) (*model.Order, error) {
	unlock := u.userLocks.Lock(userID)
	defer unlock()

	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, nil
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load customer: %w", err)
	}

	order := pricing.BuildOrder(cart, u.catalog, pricing.CheckoutParams{
		Customer:      model.Customer{Name: usr.Name, Email: usr.Email},
		StoreID:       in.StoreID,
		Address:       in.Address,
		PaymentMethod: in.PaymentMethod,
		PaymentNote:   in.PaymentNote,
	}, u.ids.NewID(), u.now().UTC())
	order.UserID = userID

	if err := u.orders.Create(ctx, *order); err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}

	if err := u.carts.Clear(ctx, userID); err != nil {
		// The order must not outlive a cart that is still checkout-able.
		if delErr := u.orders.Delete(ctx, order.ID); delErr != nil {
			u.logger.Error("failed to roll back order after cart clear failure",
				slog.String("order_id", order.ID),
				slog.String("error", delErr.Error()),
			)
		}
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	u.logger.Info("order placed",
		slog.String("order_id", order.ID),
		slog.Int64("user_id", userID),
		slog.Int("items", len(order.Items)),
	)
	return order, nil
}

// Orders returns the user's history, newest first.
func (u *OrderUseCase) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// AllOrders returns every order, newest first.
func (u *OrderUseCase) AllOrders(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// UpdateStatus sets any of the known statuses. Unknown ids are ignored.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, status string) error {
	parsed, err := model.ParseOrderStatus(status)
	if err != nil {
		return err
	}

	unlock := u.orderLocks.Lock(orderID)
	defer unlock()

	if err := u.orders.UpdateStatus(ctx, orderID, parsed); err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return err
	}
	return nil
}

// DeleteOrder lets owners withdraw an order that has not been scanned yet. Unknown ids are ignored.
func (u *OrderUseCase) DeleteOrder(ctx context.Context, userID int64, orderID string) error {
	unlock := u.orderLocks.Lock(orderID)
	defer unlock()

	order, err := u.orders.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if order.UserID != userID {
		return domainErrors.ErrForbidden
	}
	if !order.IsPending() {
		return domainErrors.ErrOrderLocked
	}
	return u.remove(ctx, orderID)
}

// AdminDeleteOrder removes an order regardless of status. Unknown ids are ignored.
func (u *OrderUseCase) AdminDeleteOrder(ctx context.Context, orderID string) error {
	unlock := u.orderLocks.Lock(orderID)
	defer unlock()
	return u.remove(ctx, orderID)
}

func (u *OrderUseCase) remove(ctx context.Context, orderID string) error {
	if err := u.orders.Delete(ctx, orderID); err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return err
	}
	return nil
}
