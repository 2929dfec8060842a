package repository

import (
	"context"

	"github.com/polkiloo/pricecompare/internal/domain/model"
)

// OrderRepository describes persistence operations with placed orders.
// Lists are ordered newest first. UpdateStatus and Delete report ErrNotFound for unknown ids.
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) error
	Get(ctx context.Context, id string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
	Delete(ctx context.Context, id string) error
}
