// Package rediscart keeps shopper carts in Redis as versioned JSON documents.
package rediscart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/polkiloo/pricecompare/internal/domain/model"
)

const (
	keyPrefix   = "pricecompare:cart:"
	cartVersion = 1
)

type cartDocument struct {
	Version int               `json:"version"`
	Items   []model.CartEntry `json:"items"`
}

// Store implements repository.CartRepository.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New wraps a connected client. A zero ttl keeps carts until they are cleared.
func New(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{client: client, ttl: ttl, logger: logger}
}

func cartKey(userID int64) string {
	return keyPrefix + strconv.FormatInt(userID, 10)
}

// Get loads the cart of userID. Unreadable documents and read failures yield an empty cart.
func (s *Store) Get(ctx context.Context, userID int64) (model.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Error("cart read failed, using empty cart",
				slog.Int64("user_id", userID), slog.Any("error", err))
		}
		return model.Cart{}, nil
	}

	var doc cartDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("cart document corrupt, using empty cart",
			slog.Int64("user_id", userID), slog.Any("error", err))
		return model.Cart{}, nil
	}
	if doc.Version != cartVersion {
		s.logger.Warn("cart document version unsupported, using empty cart",
			slog.Int64("user_id", userID), slog.Int("version", doc.Version))
		return model.Cart{}, nil
	}

	cart := model.Cart{Items: doc.Items}
	cart.Normalize()
	return cart, nil
}

// Save replaces the stored cart. Saving an empty cart removes the key.
func (s *Store) Save(ctx context.Context, userID int64, cart model.Cart) error {
	if cart.IsEmpty() {
		return s.Clear(ctx, userID)
	}
	data, err := json.Marshal(cartDocument{Version: cartVersion, Items: cart.Items})
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(userID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// HealthCheck pings Redis.
func (s *Store) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.client.Ping(ctx).Err()
}
