package order

import (
	"time"

	partnerapp "github.com/orderdesk/backend/internal/application/partner"
	"github.com/orderdesk/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest represents a request to create a new order
type CreateOrderRequest struct {
	PartnerID    uuid.UUID        `json:"partner_id" binding:"required"`
	Type         string           `json:"order_type" binding:"required,oneof=sale purchase"`
	Status       string           `json:"status" binding:"omitempty,oneof=draft pending approved completed cancelled"`
	Amount       *decimal.Decimal `json:"amount"`
	OrderDate    *time.Time       `json:"order_date"`
	DeliveryDate *time.Time       `json:"delivery_date"`
	Notes        string           `json:"notes"`
}

// UpdateOrderRequest represents a request to update an order
type UpdateOrderRequest struct {
	Status       *string          `json:"status" binding:"omitempty,oneof=draft pending approved completed cancelled"`
	Amount       *decimal.Decimal `json:"amount"`
	OrderDate    *time.Time       `json:"order_date"`
	DeliveryDate *time.Time       `json:"delivery_date"`
	Notes        *string          `json:"notes"`
}

// CreateStatusHistoryRequest represents a request to record a status change
type CreateStatusHistoryRequest struct {
	OrderID    uuid.UUID `json:"order_id" binding:"required"`
	FromStatus *string   `json:"from_status" binding:"omitempty,oneof=draft pending approved completed cancelled"`
	ToStatus   string    `json:"to_status" binding:"required,oneof=draft pending approved completed cancelled"`
	Comment    string    `json:"comment"`
	CreatedBy  string    `json:"created_by" binding:"max=100"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID           uuid.UUID                   `json:"id"`
	PartnerID    uuid.UUID                   `json:"partner_id"`
	Type         string                      `json:"order_type"`
	Amount       *decimal.Decimal            `json:"amount"`
	Status       string                      `json:"status"`
	OrderDate    time.Time                   `json:"order_date"`
	DeliveryDate *time.Time                  `json:"delivery_date"`
	Notes        string                      `json:"notes"`
	Partner      *partnerapp.PartnerResponse `json:"partner,omitempty"`
	Histories    []StatusHistoryResponse     `json:"status_histories,omitempty"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
	Version      int                         `json:"version"`
}

// StatusHistoryResponse represents a status history entry in API responses
type StatusHistoryResponse struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	FromStatus *string   `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Comment    string    `json:"comment"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderListFilter represents filter options for order list
type OrderListFilter struct {
	Search    string `form:"search"`
	Type      string `form:"type" binding:"omitempty,oneof=sale purchase"`
	Status    string `form:"status" binding:"omitempty,oneof=draft pending approved completed cancelled"`
	PartnerID string `form:"partner_id" binding:"omitempty,uuid"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string `form:"order_by"`
	OrderDir  string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:           o.ID,
		PartnerID:    o.PartnerID,
		Type:         string(o.Type),
		Amount:       o.Amount,
		Status:       string(o.Status),
		OrderDate:    o.OrderDate,
		DeliveryDate: o.DeliveryDate,
		Notes:        o.Notes,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		Version:      o.Version,
	}

	if o.Partner != nil {
		partnerResp := partnerapp.ToPartnerResponse(o.Partner)
		resp.Partner = &partnerResp
	}
	if len(o.Histories) > 0 {
		resp.Histories = ToStatusHistoryResponses(o.Histories)
	}

	return resp
}

// ToOrderResponses converts a slice of domain Orders to OrderResponses
func ToOrderResponses(orders []order.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = ToOrderResponse(&o)
	}
	return responses
}

// ToStatusHistoryResponse converts a domain StatusHistory to StatusHistoryResponse
func ToStatusHistoryResponse(h *order.StatusHistory) StatusHistoryResponse {
	resp := StatusHistoryResponse{
		ID:        h.ID,
		OrderID:   h.OrderID,
		ToStatus:  string(h.ToStatus),
		Comment:   h.Comment,
		CreatedBy: h.CreatedBy,
		CreatedAt: h.CreatedAt,
	}
	if h.FromStatus != nil {
		from := string(*h.FromStatus)
		resp.FromStatus = &from
	}
	return resp
}

// ToStatusHistoryResponses converts a slice of domain StatusHistories
func ToStatusHistoryResponses(histories []order.StatusHistory) []StatusHistoryResponse {
	responses := make([]StatusHistoryResponse, len(histories))
	for i, h := range histories {
		responses[i] = ToStatusHistoryResponse(&h)
	}
	return responses
}
