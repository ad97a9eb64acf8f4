package dto

// DesignRequest describes the design generation payload.
type DesignRequest struct {
	DesignPrompt  string  `json:"designPrompt" binding:"required"`
	Style         string  `json:"style"`
	CustomerEmail *string `json:"customerEmail"`
}

// DesignResponse describes a freshly created order awaiting payment.
type DesignResponse struct {
	OrderID        string  `json:"orderId"`
	ImageReference string  `json:"imageReference"`
	QuotedPrice    float64 `json:"quotedPrice"`
	Message        string  `json:"message"`
	NextStep       string  `json:"nextStep"`
}
