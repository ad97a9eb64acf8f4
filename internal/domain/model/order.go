package model

import "time"

// OrderStatus describes the payment lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusRefunded       OrderStatus = "refunded"
)

// Order is a custom design order tracked from generation through payment
// and refund. The prompt, image and quoted price are fixed at creation;
// payment and refund fields are stamped by the respective transitions.
type Order struct {
	ID             string
	DesignPrompt   string
	Style          string
	ImageReference string
	ImageSnapshot  string
	QuotedPrice    float64
	Status         OrderStatus
	CustomerEmail  *string
	CustomerName   *string
	BillingAddress map[string]string
	PaymentID      *string
	AmountCharged  *float64
	PaidAt         *time.Time
	RefundReason   *string
	RefundedAt     *time.Time
	CreatedAt      time.Time
}
