package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inkprint/teeshop/internal/server/http/dto"
)

const serviceVersion = "1.0.0"

// ServiceHandler serves the service description and health probes.
type ServiceHandler struct{}

// NewServiceHandler constructs ServiceHandler.
func NewServiceHandler() *ServiceHandler {
	return &ServiceHandler{}
}

// Info handles GET /.
func (h *ServiceHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ServiceInfoResponse{
		Service: "T-Shirt Retail Agent",
		Version: serviceVersion,
		Status:  "online",
		Endpoints: map[string]string{
			"design":       "/api/design",
			"payment":      "/api/payment",
			"order_status": "/api/order/{orderId}",
			"orders":       "/api/orders",
			"refund":       "/api/refund",
			"health":       "/health",
		},
	})
}

// Health handles GET /health.
func (h *ServiceHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	})
}
