package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/inkprint/teeshop/internal/domain/errors"
	"github.com/inkprint/teeshop/internal/domain/model"
)

// pgxPool is the subset of pgxpool.Pool the store uses, kept narrow so
// tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
	Close()
}

// Store is the PostgreSQL-backed OrderStore. It is the swappable
// persistence seam; the reference deployment with an empty DSN never
// constructs it. Mutations follow the same read-then-write discipline as
// the in-memory store: no transaction, no row lock.
type Store struct {
	pool   pgxPool
	logger *slog.Logger
}

// New creates the store and initializes its schema.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	store := &Store{pool: pool, logger: logger}
	if err := store.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return store, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) initSchema(ctx context.Context) error {
	const stmt = `CREATE TABLE IF NOT EXISTS orders (
        seq BIGSERIAL,
        id TEXT PRIMARY KEY,
        design_prompt TEXT NOT NULL,
        style TEXT NOT NULL,
        image_reference TEXT NOT NULL,
        image_snapshot TEXT NOT NULL,
        quoted_price DOUBLE PRECISION NOT NULL,
        status TEXT NOT NULL,
        customer_email TEXT,
        customer_name TEXT,
        billing_address JSONB,
        payment_id TEXT,
        amount_charged DOUBLE PRECISION,
        paid_at TIMESTAMPTZ,
        refund_reason TEXT,
        refunded_at TIMESTAMPTZ,
        created_at TIMESTAMPTZ NOT NULL
    )`

	if _, err := s.pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

const orderColumns = `id, design_prompt, style, image_reference, image_snapshot, quoted_price, status,
                      customer_email, customer_name, billing_address, payment_id, amount_charged, paid_at,
                      refund_reason, refunded_at, created_at`

// Insert adds a new order row.
func (s *Store) Insert(ctx context.Context, order *model.Order) error {
	const query = `INSERT INTO orders (id, design_prompt, style, image_reference, image_snapshot, quoted_price, status,
                        customer_email, customer_name, billing_address, payment_id, amount_charged, paid_at,
                        refund_reason, refunded_at, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	billing, err := marshalBilling(order.BillingAddress)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, query,
		order.ID, order.DesignPrompt, order.Style, order.ImageReference, order.ImageSnapshot,
		order.QuotedPrice, order.Status, order.CustomerEmail, order.CustomerName, billing,
		order.PaymentID, order.AmountCharged, order.PaidAt, order.RefundReason, order.RefundedAt,
		order.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrDuplicateID
		}
		return err
	}
	return nil
}

// Get returns the order with the given id.
func (s *Store) Get(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(s.pool.QueryRow(ctx, query, id))
}

// ListAll returns every order in insertion order.
func (s *Store) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY seq`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Mutate reads the order, applies fn and writes the result back. The
// sequence runs without a transaction on purpose; concurrent mutators
// overwrite each other the same way the in-memory store allows.
func (s *Store) Mutate(ctx context.Context, id string, fn func(*model.Order)) (*model.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fn(order)

	billing, err := marshalBilling(order.BillingAddress)
	if err != nil {
		return nil, err
	}

	const query = `UPDATE orders SET status=$2, customer_name=$3, billing_address=$4, payment_id=$5,
                        amount_charged=$6, paid_at=$7, refund_reason=$8, refunded_at=$9
                   WHERE id=$1`
	tag, err := s.pool.Exec(ctx, query,
		order.ID, order.Status, order.CustomerName, billing, order.PaymentID,
		order.AmountCharged, order.PaidAt, order.RefundReason, order.RefundedAt,
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// HealthCheck verifies database connectivity.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func marshalBilling(billing map[string]string) ([]byte, error) {
	if billing == nil {
		return nil, nil
	}
	data, err := json.Marshal(billing)
	if err != nil {
		return nil, fmt.Errorf("marshal billing address: %w", err)
	}
	return data, nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		order   model.Order
		billing []byte
	)
	err := row.Scan(
		&order.ID, &order.DesignPrompt, &order.Style, &order.ImageReference, &order.ImageSnapshot,
		&order.QuotedPrice, &order.Status, &order.CustomerEmail, &order.CustomerName, &billing,
		&order.PaymentID, &order.AmountCharged, &order.PaidAt, &order.RefundReason, &order.RefundedAt,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if billing != nil {
		if err := json.Unmarshal(billing, &order.BillingAddress); err != nil {
			return nil, fmt.Errorf("unmarshal billing address: %w", err)
		}
	}
	return &order, nil
}
