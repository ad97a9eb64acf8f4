package dto

// RefundRequest describes a refund claim.
type RefundRequest struct {
	OrderID string  `json:"orderId" binding:"required"`
	Reason  *string `json:"reason"`
}

// RefundResponse confirms a processed refund.
type RefundResponse struct {
	Success      bool    `json:"success"`
	OrderID      string  `json:"orderId"`
	RefundAmount float64 `json:"refundAmount"`
	Message      string  `json:"message"`
}
