package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/inkprint/teeshop/internal/domain/errors"
	"github.com/inkprint/teeshop/internal/server/http/dto"
	"github.com/inkprint/teeshop/internal/usecase"
)

// PaymentHandler processes checkout requests.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler creates PaymentHandler instance.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Process handles POST /api/payment.
func (h *PaymentHandler) Process(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.facade.ProcessPayment(c.Request.Context(), usecase.PaymentRequest{
		OrderID:        req.OrderID,
		MethodToken:    req.PaymentMethodToken,
		ClaimedAmount:  req.ClaimedAmount,
		CustomerName:   req.CustomerName,
		BillingAddress: req.BillingAddress,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			abortWithError(c, http.StatusNotFound, "Order not found")
		case errors.Is(err, domainErrors.ErrAmountExceedsLimit):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domainErrors.ErrInvalidPaymentMethod):
			abortWithError(c, http.StatusBadRequest, "Invalid payment method")
		case errors.Is(err, domainErrors.ErrAlreadyPaid):
			abortWithError(c, http.StatusConflict, "Order has already been paid")
		case errors.Is(err, domainErrors.ErrCardDeclined):
			abortWithError(c, http.StatusPaymentRequired, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Payment processing failed")
		}
		return
	}

	var paymentID string
	if order.PaymentID != nil {
		paymentID = *order.PaymentID
	}
	var amountCharged float64
	if order.AmountCharged != nil {
		amountCharged = *order.AmountCharged
	}

	c.JSON(http.StatusOK, dto.PaymentResponse{
		Success:       true,
		OrderID:       order.ID,
		PaymentID:     paymentID,
		AmountCharged: amountCharged,
		Status:        string(order.Status),
		Message:       "Payment successful! Your custom t-shirt will be printed and shipped.",
		TrackingInfo:  "Shipping information will be sent to your email.",
	})
}
