package handler

import (
	orderapp "github.com/orderdesk/backend/internal/application/order"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles order-related API endpoints
type OrderHandler struct {
	BaseHandler
	orderService *orderapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderapp.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// RegisterRoutes registers order routes on the given group
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.GET("", h.List)
	orders.POST("", h.Create)
	orders.GET("/:id", h.GetByID)
	orders.PUT("/:id", h.Update)
	orders.DELETE("/:id", h.Delete)
	orders.GET("/:id/status_histories", h.ListHistories)
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req orderapp.CreateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// GetByID handles GET /orders/:id. The response embeds the partner and
// the status histories newest-first.
func (h *OrderHandler) GetByID(c *gin.Context) {
	orderID, ok := h.ParseID(c, "Order")
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// List handles GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	var filter orderapp.OrderListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	orders, total, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	h.SuccessList(c, orders, total, page, pageSize)
}

// Update handles PUT /orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	orderID, ok := h.ParseID(c, "Order")
	if !ok {
		return
	}

	var req orderapp.UpdateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.orderService.Update(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Delete handles DELETE /orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	orderID, ok := h.ParseID(c, "Order")
	if !ok {
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), orderID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListHistories handles GET /orders/:id/status_histories
func (h *OrderHandler) ListHistories(c *gin.Context) {
	orderID, ok := h.ParseID(c, "Order")
	if !ok {
		return
	}

	histories, err := h.orderService.ListHistories(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, histories)
}

// StatusHistoryHandler handles standalone status history recording
type StatusHistoryHandler struct {
	BaseHandler
	orderService *orderapp.OrderService
}

// NewStatusHistoryHandler creates a new StatusHistoryHandler
func NewStatusHistoryHandler(orderService *orderapp.OrderService) *StatusHistoryHandler {
	return &StatusHistoryHandler{
		orderService: orderService,
	}
}

// RegisterRoutes registers status history routes on the given group
func (h *StatusHistoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/status_histories", h.Create)
}

// Create handles POST /status_histories. Recording a transition moves
// the order to the recorded to_status in the same write.
func (h *StatusHistoryHandler) Create(c *gin.Context) {
	var req orderapp.CreateStatusHistoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	history, err := h.orderService.CreateStatusHistory(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, history)
}
