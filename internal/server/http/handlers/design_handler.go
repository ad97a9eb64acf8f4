package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkprint/teeshop/internal/server/http/dto"
)

// DesignHandler processes design generation requests.
type DesignHandler struct {
	facade DesignFacade
}

// NewDesignHandler creates DesignHandler instance.
func NewDesignHandler(facade DesignFacade) *DesignHandler {
	return &DesignHandler{facade: facade}
}

// Create handles POST /api/design.
func (h *DesignHandler) Create(c *gin.Context) {
	var req dto.DesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.facade.CreateDesign(c.Request.Context(), req.DesignPrompt, req.Style, req.CustomerEmail)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("design generation failed: %v", err))
		return
	}

	c.JSON(http.StatusOK, dto.DesignResponse{
		OrderID:        order.ID,
		ImageReference: order.ImageReference,
		QuotedPrice:    order.QuotedPrice,
		Message:        "Design generated successfully! Proceed to payment.",
		NextStep:       fmt.Sprintf("POST /api/payment with orderId=%s", order.ID),
	})
}
