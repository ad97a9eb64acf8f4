package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/inkprint/teeshop/internal/domain/errors"
	"github.com/inkprint/teeshop/internal/server/http/dto"
)

// RefundHandler processes refund claims. Refunds are auto-approved for
// any paid order; no requester verification takes place.
type RefundHandler struct {
	facade RefundFacade
}

// NewRefundHandler creates RefundHandler instance.
func NewRefundHandler(facade RefundFacade) *RefundHandler {
	return &RefundHandler{facade: facade}
}

// Process handles POST /api/refund.
func (h *RefundHandler) Process(c *gin.Context) {
	var req dto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	order, amount, err := h.facade.Refund(c.Request.Context(), req.OrderID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			abortWithError(c, http.StatusNotFound, "Order not found")
		case errors.Is(err, domainErrors.ErrOrderNotPaid):
			abortWithError(c, http.StatusBadRequest, "Order has not been paid")
		default:
			abortWithError(c, http.StatusInternalServerError, "refund processing failed")
		}
		return
	}

	c.JSON(http.StatusOK, dto.RefundResponse{
		Success:      true,
		OrderID:      order.ID,
		RefundAmount: amount,
		Message:      "Refund processed successfully",
	})
}
