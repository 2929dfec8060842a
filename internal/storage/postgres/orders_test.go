package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/pricecompare/internal/domain/errors"
	"github.com/polkiloo/pricecompare/internal/domain/model"
)

var orderRowColumns = []string{"id", "user_id", "status", "placed_at", "snapshot"}

func sampleOrder(id string, placedAt time.Time) model.Order {
	total := model.Money(1399)
	store := "a"
	return model.Order{
		ID:                 id,
		UserID:             7,
		PlacedAt:           placedAt,
		Customer:           model.Customer{Name: "Ann", Email: "ann@example.com"},
		Items:              []model.OrderItem{{ProductID: "p", Name: "Phone", Specs: []string{"5G"}, Quantity: 1}},
		SelectedStoreID:    &store,
		SelectedStoreTotal: &total,
		PaymentMethod:      "card",
		Status:             model.OrderStatusPending,
	}
}

func snapshotBytes(t *testing.T, order model.Order) []byte {
	t.Helper()
	data, err := json.Marshal(orderSnapshot{Version: snapshotVersion, Order: order})
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	return data
}

func TestOrderRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	placedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	order := sampleOrder("100", placedAt)

	mock.ExpectExec("INSERT INTO orders").
		WithArgs("100", int64(7), "Pending", placedAt, pgxmockv3.AnyArg()).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	if err := repo.Create(context.Background(), order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("INSERT INTO orders").
		WithArgs("100", int64(7), "Pending", placedAt, pgxmockv3.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	if err := repo.Create(context.Background(), order); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryGet(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	placedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	order := sampleOrder("100", placedAt)

	mock.ExpectQuery("SELECT id, user_id, status, placed_at, snapshot FROM orders WHERE id=").WithArgs("100").WillReturnRows(
		pgxmockv3.NewRows(orderRowColumns).AddRow("100", int64(7), "Scanned", placedAt, snapshotBytes(t, order)))
	got, err := repo.Get(context.Background(), "100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != model.OrderStatusScanned {
		t.Fatalf("expected column status to win, got %s", got.Status)
	}
	if got.Customer.Email != "ann@example.com" || *got.SelectedStoreTotal != 1399 || len(got.Items) != 1 {
		t.Fatalf("unexpected order: %+v", got)
	}

	mock.ExpectQuery("FROM orders WHERE id=").WithArgs("corrupt").WillReturnRows(
		pgxmockv3.NewRows(orderRowColumns).AddRow("corrupt", int64(7), "Pending", placedAt, []byte("{not json")))
	got, err = repo.Get(context.Background(), "corrupt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "corrupt" || got.UserID != 7 || got.Status != model.OrderStatusPending || len(got.Items) != 0 {
		t.Fatalf("expected bare order, got %+v", got)
	}

	mock.ExpectQuery("FROM orders WHERE id=").WithArgs("missing").WillReturnError(pgx.ErrNoRows)
	if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryLists(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	newer := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	older := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	wrongVersion, _ := json.Marshal(orderSnapshot{Version: 99})

	mock.ExpectQuery("FROM orders WHERE user_id=\\$1 ORDER BY placed_at DESC").WithArgs(int64(7)).WillReturnRows(
		pgxmockv3.NewRows(orderRowColumns).
			AddRow("2", int64(7), "Pending", newer, snapshotBytes(t, sampleOrder("2", newer))).
			AddRow("bad", int64(7), "Pending", newer, wrongVersion).
			AddRow("1", int64(7), "Fulfilled", older, snapshotBytes(t, sampleOrder("1", older))))
	orders, err := repo.ListByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != "2" || orders[1].ID != "1" || orders[1].Status != model.OrderStatusFulfilled {
		t.Fatalf("unexpected orders: %+v", orders)
	}

	mock.ExpectQuery("FROM orders ORDER BY placed_at DESC").WillReturnRows(pgxmockv3.NewRows(orderRowColumns))
	orders, err = repo.ListAll(context.Background())
	if err != nil || len(orders) != 0 {
		t.Fatalf("expected empty result, got %v err=%v", orders, err)
	}

	mock.ExpectQuery("FROM orders ORDER BY placed_at DESC").WillReturnError(errors.New("query"))
	if _, err := repo.ListAll(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryListRowsError(t *testing.T) {
	storage := &Storage{pool: &rowsErrorPool{rows: &errorRows{err: errors.New("rows err")}}, logger: discardLogger()}
	repo := &orderRepository{storage: storage}

	if _, err := repo.ListByUser(context.Background(), 1); err == nil || err.Error() != "rows err" {
		t.Fatalf("expected rows err, got %v", err)
	}
}

func TestOrderRepositoryUpdateStatusAndDelete(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	mock.ExpectExec("UPDATE orders SET status=").WithArgs("Scanned", "1").WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.UpdateStatus(context.Background(), "1", model.OrderStatusScanned); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE orders SET status=").WithArgs("Scanned", "2").WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := repo.UpdateStatus(context.Background(), "2", model.OrderStatusScanned); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectExec("UPDATE orders SET status=").WithArgs("Scanned", "3").WillReturnError(errors.New("boom"))
	if err := repo.UpdateStatus(context.Background(), "3", model.OrderStatusScanned); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectExec("DELETE FROM orders WHERE id=").WithArgs("1").WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	if err := repo.Delete(context.Background(), "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("DELETE FROM orders WHERE id=").WithArgs("2").WillReturnResult(pgxmockv3.NewResult("DELETE", 0))
	if err := repo.Delete(context.Background(), "2"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
