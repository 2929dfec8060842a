package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	domainErrors "github.com/polkiloo/pricecompare/internal/domain/errors"
	"github.com/polkiloo/pricecompare/internal/domain/model"
)

// snapshotVersion is bumped whenever the stored order document changes shape.
const snapshotVersion = 1

type orderSnapshot struct {
	Version int         `json:"version"`
	Order   model.Order `json:"order"`
}

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, user_id, status, placed_at, snapshot`

type orderRow struct {
	id       string
	userID   int64
	status   string
	placedAt time.Time
	snapshot []byte
}

func scanOrderRow(row rowScanner) (orderRow, error) {
	var r orderRow
	err := row.Scan(&r.id, &r.userID, &r.status, &r.placedAt, &r.snapshot)
	return r, err
}

// decode restores the order document. Columns win over the document since status
// is updated in place.
func (r orderRow) decode() (model.Order, error) {
	var snap orderSnapshot
	if err := json.Unmarshal(r.snapshot, &snap); err != nil {
		return r.bare(), fmt.Errorf("decode order %s: %w", r.id, err)
	}
	if snap.Version != snapshotVersion {
		return r.bare(), fmt.Errorf("decode order %s: unsupported snapshot version %d", r.id, snap.Version)
	}
	order := snap.Order
	order.ID = r.id
	order.UserID = r.userID
	order.Status = model.OrderStatus(r.status)
	order.PlacedAt = r.placedAt
	return order, nil
}

func (r orderRow) bare() model.Order {
	return model.Order{
		ID:       r.id,
		UserID:   r.userID,
		Status:   model.OrderStatus(r.status),
		PlacedAt: r.placedAt,
	}
}

func (r *orderRepository) Create(ctx context.Context, order model.Order) error {
	payload, err := json.Marshal(orderSnapshot{Version: snapshotVersion, Order: order})
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}

	const query = `INSERT INTO orders (id, user_id, status, placed_at, snapshot) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.storage.pool.Exec(ctx, query, order.ID, order.UserID, string(order.Status), order.PlacedAt, payload); err != nil {
		return mapError(err)
	}
	return nil
}

// Get returns the order even when its document is unreadable, so it can still be managed.
func (r *orderRepository) Get(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	row, err := scanOrderRow(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	order, err := row.decode()
	if err != nil {
		r.storage.logger.Warn("order snapshot unreadable", slog.String("order", id), slog.Any("error", err))
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY placed_at DESC, id DESC`
	return r.list(ctx, query, userID)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY placed_at DESC, id DESC`
	return r.list(ctx, query)
}

// list skips rows whose document cannot be decoded.
func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		row, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		order, err := row.decode()
		if err != nil {
			r.storage.logger.Warn("skipping unreadable order", slog.String("order", row.id), slog.Any("error", err))
			continue
		}
		result = append(result, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE orders SET status=$1 WHERE id=$2`, string(status), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
