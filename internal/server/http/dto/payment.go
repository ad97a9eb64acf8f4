package dto

// PaymentRequest describes the checkout payload.
type PaymentRequest struct {
	OrderID            string            `json:"orderId" binding:"required"`
	PaymentMethodToken string            `json:"paymentMethodToken" binding:"required"`
	ClaimedAmount      float64           `json:"claimedAmount"`
	CustomerName       *string           `json:"customerName"`
	BillingAddress     map[string]string `json:"billingAddress"`
}

// PaymentResponse confirms a captured charge.
type PaymentResponse struct {
	Success       bool    `json:"success"`
	OrderID       string  `json:"orderId"`
	PaymentID     string  `json:"paymentId"`
	AmountCharged float64 `json:"amountCharged"`
	Status        string  `json:"status"`
	Message       string  `json:"message"`
	TrackingInfo  string  `json:"trackingInfo"`
}
