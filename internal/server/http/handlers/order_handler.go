package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/inkprint/teeshop/internal/domain/errors"
	"github.com/inkprint/teeshop/internal/server/http/dto"
)

// OrderHandler exposes stored orders. Neither endpoint requires any
// credential; the full record is returned to any caller.
type OrderHandler struct {
	facade QueryFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade QueryFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Get handles GET /api/order/:orderID.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Order not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "failed to load order")
		return
	}

	c.JSON(http.StatusOK, toOrderRecord(*order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "failed to list orders")
		return
	}

	records := make([]dto.OrderRecord, 0, len(orders))
	for _, o := range orders {
		records = append(records, toOrderRecord(o))
	}

	c.JSON(http.StatusOK, dto.OrderListResponse{
		TotalOrders: len(records),
		Orders:      records,
	})
}
