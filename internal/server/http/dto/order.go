package dto

import "time"

// OrderRecord mirrors a stored order in full, including payment details.
type OrderRecord struct {
	OrderID        string            `json:"orderId"`
	DesignPrompt   string            `json:"designPrompt"`
	Style          string            `json:"style"`
	ImageReference string            `json:"imageReference"`
	ImageSnapshot  string            `json:"imageSnapshot"`
	QuotedPrice    float64           `json:"quotedPrice"`
	Status         string            `json:"status"`
	CustomerEmail  *string           `json:"customerEmail"`
	CustomerName   *string           `json:"customerName"`
	BillingAddress map[string]string `json:"billingAddress"`
	PaymentID      *string           `json:"paymentId"`
	AmountCharged  *float64          `json:"amountCharged"`
	PaidAt         *time.Time        `json:"paidAt"`
	RefundedAt     *time.Time        `json:"refundedAt"`
	RefundReason   *string           `json:"refundReason"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// OrderListResponse wraps the full order table.
type OrderListResponse struct {
	TotalOrders int           `json:"totalOrders"`
	Orders      []OrderRecord `json:"orders"`
}
