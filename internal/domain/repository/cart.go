package repository

import (
	"context"

	"github.com/polkiloo/pricecompare/internal/domain/model"
)

// CartRepository keeps one cart per user.
type CartRepository interface {
	Get(ctx context.Context, userID int64) (model.Cart, error)
	Save(ctx context.Context, userID int64, cart model.Cart) error
	Clear(ctx context.Context, userID int64) error
}
