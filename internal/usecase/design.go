package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inkprint/teeshop/internal/adapter/imagegen"
	domainErrors "github.com/inkprint/teeshop/internal/domain/errors"
	"github.com/inkprint/teeshop/internal/domain/model"
	"github.com/inkprint/teeshop/internal/domain/repository"
)

// DefaultStyle is applied when the caller does not pick an art style.
const DefaultStyle = "vibrant and modern"

// DesignUseCase turns a design prompt into a priced order awaiting payment.
type DesignUseCase struct {
	store       repository.OrderStore
	images      imagegen.Client
	quotedPrice float64
	snapshotLen int
	logger      *slog.Logger
}

// NewDesignUseCase constructs DesignUseCase.
func NewDesignUseCase(store repository.OrderStore, images imagegen.Client, quotedPrice float64, snapshotLen int, logger *slog.Logger) *DesignUseCase {
	return &DesignUseCase{
		store:       store,
		images:      images,
		quotedPrice: quotedPrice,
		snapshotLen: snapshotLen,
		logger:      logger,
	}
}

// Create generates the design, fetches a snapshot of the rendered image
// and inserts a pending order priced at the flat quote. Provider and
// fetch failures surface as generation failures and leave nothing behind.
func (u *DesignUseCase) Create(ctx context.Context, prompt, style string, customerEmail *string) (*model.Order, error) {
	if style == "" {
		style = DefaultStyle
	}

	u.logger.Info("generating design", slog.String("prompt", prompt), slog.String("style", style))

	reference, err := u.images.Generate(ctx, composePrompt(prompt, style))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrGenerationFailed, err)
	}

	raw, err := u.images.Fetch(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrGenerationFailed, err)
	}

	order := &model.Order{
		ID:             newOrderID(),
		DesignPrompt:   prompt,
		Style:          style,
		ImageReference: reference,
		ImageSnapshot:  snapshot(raw, u.snapshotLen),
		QuotedPrice:    u.quotedPrice,
		Status:         model.OrderStatusPendingPayment,
		CustomerEmail:  customerEmail,
		CreatedAt:      time.Now().UTC(),
	}

	if err := u.store.Insert(ctx, order); err != nil {
		return nil, err
	}

	u.logger.Info("design created", slog.String("order_id", order.ID))
	return order, nil
}

func composePrompt(prompt, style string) string {
	return fmt.Sprintf("A %s t-shirt design featuring: %s. "+
		"The design should be suitable for printing on a t-shirt, "+
		"with a clean composition and vibrant colors.", style, prompt)
}

// snapshot keeps a truncated base64 preview of the image, not the asset.
func snapshot(raw []byte, limit int) string {
	encoded := base64.StdEncoding.EncodeToString(raw)
	if len(encoded) > limit {
		encoded = encoded[:limit]
	}
	return encoded + "..."
}

func newOrderID() string {
	return "order-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
