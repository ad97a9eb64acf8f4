package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/inkprint/teeshop/internal/domain/errors"
	"github.com/inkprint/teeshop/internal/domain/model"
)

var orderColumnNames = []string{
	"id", "design_prompt", "style", "image_reference", "image_snapshot", "quoted_price", "status",
	"customer_email", "customer_name", "billing_address", "payment_id", "amount_charged", "paid_at",
	"refund_reason", "refunded_at", "created_at",
}

func newMockStore(t *testing.T) (*Store, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	store := &Store{pool: mock, logger: logger}
	return store, mock
}

func pendingRow(id string) []any {
	return []any{
		id, "a red fox", "vibrant and modern", "https://img.example/fox.png", "aGVsbG8...",
		4.99, model.OrderStatusPendingPayment,
		nil, nil, nil, nil, nil, nil,
		nil, nil, time.Unix(0, 0).UTC(),
	}
}

func TestInitSchema(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS orders").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))

	if err := store.initSchema(context.Background()); err != nil {
		t.Fatalf("init schema returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsert(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))

	order := &model.Order{
		ID:             "order-abc123def456",
		DesignPrompt:   "a red fox",
		Style:          "vibrant and modern",
		ImageReference: "https://img.example/fox.png",
		ImageSnapshot:  "aGVsbG8...",
		QuotedPrice:    4.99,
		Status:         model.OrderStatusPendingPayment,
		CreatedAt:      time.Unix(0, 0).UTC(),
	}
	if err := store.Insert(context.Background(), order); err != nil {
		t.Fatalf("insert returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetNotFound(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id=").
		WithArgs("missing").
		WillReturnRows(pgxmockv3.NewRows(orderColumnNames))

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGet(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id=").
		WithArgs("order-abc123def456").
		WillReturnRows(pgxmockv3.NewRows(orderColumnNames).AddRow(pendingRow("order-abc123def456")...))

	order, err := store.Get(context.Background(), "order-abc123def456")
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if order.Status != model.OrderStatusPendingPayment {
		t.Fatalf("unexpected status %v", order.Status)
	}
	if order.QuotedPrice != 4.99 {
		t.Fatalf("unexpected quoted price %v", order.QuotedPrice)
	}
	if order.PaymentID != nil {
		t.Fatalf("expected nil payment id, got %v", *order.PaymentID)
	}
}

func TestListAll(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT (.+) FROM orders ORDER BY seq").
		WillReturnRows(pgxmockv3.NewRows(orderColumnNames).
			AddRow(pendingRow("order-1")...).
			AddRow(pendingRow("order-2")...))

	orders, err := store.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected two orders, got %d", len(orders))
	}
	if orders[0].ID != "order-1" || orders[1].ID != "order-2" {
		t.Fatalf("unexpected order sequence: %s, %s", orders[0].ID, orders[1].ID)
	}
}

func TestMutateAppliesUpdate(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id=").
		WithArgs("order-1").
		WillReturnRows(pgxmockv3.NewRows(orderColumnNames).AddRow(pendingRow("order-1")...))
	mock.ExpectExec("UPDATE orders SET status=").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))

	order, err := store.Mutate(context.Background(), "order-1", func(o *model.Order) {
		o.Status = model.OrderStatusPaid
	})
	if err != nil {
		t.Fatalf("mutate returned error: %v", err)
	}
	if order.Status != model.OrderStatusPaid {
		t.Fatalf("expected paid status, got %v", order.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMutateNotFound(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id=").
		WithArgs("missing").
		WillReturnRows(pgxmockv3.NewRows(orderColumnNames))

	_, err := store.Mutate(context.Background(), "missing", func(*model.Order) {})
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectPing()

	if err := store.HealthCheck(context.Background()); err != nil {
		t.Fatalf("health check returned error: %v", err)
	}
}
