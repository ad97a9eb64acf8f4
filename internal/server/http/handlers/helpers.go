package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/inkprint/teeshop/internal/domain/model"
	"github.com/inkprint/teeshop/internal/server/http/dto"
)

// abortWithError writes the shared error body shape.
func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

func toOrderRecord(order model.Order) dto.OrderRecord {
	return dto.OrderRecord{
		OrderID:        order.ID,
		DesignPrompt:   order.DesignPrompt,
		Style:          order.Style,
		ImageReference: order.ImageReference,
		ImageSnapshot:  order.ImageSnapshot,
		QuotedPrice:    order.QuotedPrice,
		Status:         string(order.Status),
		CustomerEmail:  order.CustomerEmail,
		CustomerName:   order.CustomerName,
		BillingAddress: order.BillingAddress,
		PaymentID:      order.PaymentID,
		AmountCharged:  order.AmountCharged,
		PaidAt:         order.PaidAt,
		RefundedAt:     order.RefundedAt,
		RefundReason:   order.RefundReason,
		CreatedAt:      order.CreatedAt,
	}
}
