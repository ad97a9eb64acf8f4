package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/inkprint/teeshop/internal/domain/model"
)

// OrderLister exposes the subset of application functionality required
// by the auditor.
type OrderLister interface {
	Orders(ctx context.Context) ([]model.Order, error)
}

// PendingAuditor periodically scans the order table and reports orders
// still awaiting payment. It only observes; orders never expire and are
// never deleted.
type PendingAuditor struct {
	orders   OrderLister
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPendingAuditor constructs the audit worker.
func NewPendingAuditor(orders OrderLister, interval time.Duration, logger *slog.Logger) *PendingAuditor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PendingAuditor{orders: orders, interval: interval, logger: logger}
}

// Start launches background auditing.
func (a *PendingAuditor) Start(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	a.wg.Add(1)
	go a.run(runCtx)
}

// Stop waits for the audit loop to finish.
func (a *PendingAuditor) Stop() {
	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.mu.Unlock()

	a.wg.Wait()
}

func (a *PendingAuditor) run(ctx context.Context) {
	defer a.wg.Done()
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.audit(ctx)
		}
	}
}

func (a *PendingAuditor) audit(ctx context.Context) {
	orders, err := a.orders.Orders(ctx)
	if err != nil {
		a.logger.Error("order audit failed", slog.String("error", err.Error()))
		return
	}

	var pending, paid, refunded int
	var oldestPending time.Time
	for _, order := range orders {
		switch order.Status {
		case model.OrderStatusPendingPayment:
			pending++
			if oldestPending.IsZero() || order.CreatedAt.Before(oldestPending) {
				oldestPending = order.CreatedAt
			}
		case model.OrderStatusPaid:
			paid++
		case model.OrderStatusRefunded:
			refunded++
		}
	}

	attrs := []any{
		slog.Int("pending", pending),
		slog.Int("paid", paid),
		slog.Int("refunded", refunded),
	}
	if pending > 0 {
		attrs = append(attrs, slog.Duration("oldest_pending_age", time.Since(oldestPending)))
	}
	a.logger.Info("order audit", attrs...)
}
