// Package shopstub provides a configurable stand-in for the HTTP facade.
package shopstub

import (
	"context"

	"github.com/polkiloo/pricecompare/internal/domain/model"
	"github.com/polkiloo/pricecompare/internal/usecase"
)

// Facade returns canned data unless a Fn override is set.
type Facade struct {
	RegisterFn      func(context.Context, usecase.RegisterInput) (*model.User, string, error)
	AuthenticateFn  func(context.Context, string, string) (*model.User, string, error)
	ProfileFn       func(context.Context, int64) (*model.User, error)
	UpdateProfileFn func(context.Context, int64, usecase.ProfileUpdate) (*model.User, error)

	Catalog *model.Catalog

	CartFn   func(context.Context, int64) (model.Cart, error)
	AddFn    func(context.Context, int64, string, int) (model.Cart, error)
	SetFn    func(context.Context, int64, string, int) (model.Cart, error)
	RemoveFn func(context.Context, int64, string) (model.Cart, error)
	ClearFn  func(context.Context, int64) error
	QuotesFn func(context.Context, int64) (*usecase.Comparison, error)

	CheckoutFn    func(context.Context, int64, usecase.CheckoutInput) (*model.Order, error)
	OrdersFn      func(context.Context, int64) ([]model.Order, error)
	DeleteOrderFn func(context.Context, int64, string) error

	ListUsersFn        func(context.Context) ([]model.User, error)
	GetUserFn          func(context.Context, int64) (*model.User, error)
	UpdateUserFn       func(context.Context, int64, usecase.UserUpdate) (*model.User, error)
	DeleteUserFn       func(context.Context, int64) error
	AllOrdersFn        func(context.Context) ([]model.Order, error)
	UpdateStatusFn     func(context.Context, string, string) error
	AdminDeleteOrderFn func(context.Context, string) error

	HealthFn func(context.Context) (map[string]string, bool)
}

func defaultUser(id int64) *model.User {
	return &model.User{ID: id, Name: "Test", Email: "test@example.com", Role: model.RoleCustomer}
}

func (f Facade) Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error) {
	if f.RegisterFn != nil {
		return f.RegisterFn(ctx, in)
	}
	u := defaultUser(1)
	u.Name, u.Email = in.Name, in.Email
	return u, "token", nil
}

func (f Facade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if f.AuthenticateFn != nil {
		return f.AuthenticateFn(ctx, email, password)
	}
	u := defaultUser(1)
	u.Email = email
	return u, "token", nil
}

func (f Facade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if f.ProfileFn != nil {
		return f.ProfileFn(ctx, userID)
	}
	return defaultUser(userID), nil
}

func (f Facade) UpdateProfile(ctx context.Context, userID int64, upd usecase.ProfileUpdate) (*model.User, error) {
	if f.UpdateProfileFn != nil {
		return f.UpdateProfileFn(ctx, userID, upd)
	}
	u := defaultUser(userID)
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	return u, nil
}

func (f Facade) Stores() []model.Store {
	if f.Catalog == nil {
		return []model.Store{}
	}
	return f.Catalog.Stores()
}

func (f Facade) Products() []model.Product {
	if f.Catalog == nil {
		return []model.Product{}
	}
	return f.Catalog.Products()
}

func (f Facade) Product(id string) (model.Product, bool) {
	if f.Catalog == nil {
		return model.Product{}, false
	}
	return f.Catalog.Product(id)
}

func (f Facade) Cart(ctx context.Context, userID int64) (model.Cart, error) {
	if f.CartFn != nil {
		return f.CartFn(ctx, userID)
	}
	return model.Cart{}, nil
}

func (f Facade) AddToCart(ctx context.Context, userID int64, productID string, qty int) (model.Cart, error) {
	if f.AddFn != nil {
		return f.AddFn(ctx, userID, productID, qty)
	}
	return model.Cart{Items: []model.CartEntry{{ProductID: productID, Quantity: qty}}}, nil
}

func (f Facade) SetCartQuantity(ctx context.Context, userID int64, productID string, qty int) (model.Cart, error) {
	if f.SetFn != nil {
		return f.SetFn(ctx, userID, productID, qty)
	}
	return model.Cart{Items: []model.CartEntry{{ProductID: productID, Quantity: qty}}}, nil
}

func (f Facade) RemoveFromCart(ctx context.Context, userID int64, productID string) (model.Cart, error) {
	if f.RemoveFn != nil {
		return f.RemoveFn(ctx, userID, productID)
	}
	return model.Cart{}, nil
}

func (f Facade) ClearCart(ctx context.Context, userID int64) error {
	if f.ClearFn != nil {
		return f.ClearFn(ctx, userID)
	}
	return nil
}

func (f Facade) Quotes(ctx context.Context, userID int64) (*usecase.Comparison, error) {
	if f.QuotesFn != nil {
		return f.QuotesFn(ctx, userID)
	}
	return &usecase.Comparison{Quotes: []model.StoreQuote{}}, nil
}

func (f Facade) Checkout(ctx context.Context, userID int64, in usecase.CheckoutInput) (*model.Order, error) {
	if f.CheckoutFn != nil {
		return f.CheckoutFn(ctx, userID, in)
	}
	return &model.Order{ID: "1", UserID: userID, Status: model.OrderStatusPending}, nil
}

func (f Facade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if f.OrdersFn != nil {
		return f.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: "1", UserID: userID, Status: model.OrderStatusPending}}, nil
}

func (f Facade) DeleteOrder(ctx context.Context, userID int64, orderID string) error {
	if f.DeleteOrderFn != nil {
		return f.DeleteOrderFn(ctx, userID, orderID)
	}
	return nil
}

func (f Facade) ListUsers(ctx context.Context) ([]model.User, error) {
	if f.ListUsersFn != nil {
		return f.ListUsersFn(ctx)
	}
	return []model.User{*defaultUser(1)}, nil
}

func (f Facade) GetUser(ctx context.Context, id int64) (*model.User, error) {
	if f.GetUserFn != nil {
		return f.GetUserFn(ctx, id)
	}
	return defaultUser(id), nil
}

func (f Facade) UpdateUser(ctx context.Context, id int64, upd usecase.UserUpdate) (*model.User, error) {
	if f.UpdateUserFn != nil {
		return f.UpdateUserFn(ctx, id, upd)
	}
	u := defaultUser(id)
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	return u, nil
}

func (f Facade) DeleteUser(ctx context.Context, id int64) error {
	if f.DeleteUserFn != nil {
		return f.DeleteUserFn(ctx, id)
	}
	return nil
}

func (f Facade) AllOrders(ctx context.Context) ([]model.Order, error) {
	if f.AllOrdersFn != nil {
		return f.AllOrdersFn(ctx)
	}
	return []model.Order{}, nil
}

func (f Facade) UpdateOrderStatus(ctx context.Context, orderID string, status string) error {
	if f.UpdateStatusFn != nil {
		return f.UpdateStatusFn(ctx, orderID, status)
	}
	_, err := model.ParseOrderStatus(status)
	return err
}

func (f Facade) AdminDeleteOrder(ctx context.Context, orderID string) error {
	if f.AdminDeleteOrderFn != nil {
		return f.AdminDeleteOrderFn(ctx, orderID)
	}
	return nil
}

func (f Facade) Health(ctx context.Context) (map[string]string, bool) {
	if f.HealthFn != nil {
		return f.HealthFn(ctx)
	}
	return map[string]string{"postgres": "ok"}, true
}
