package order

import (
	"context"
	"errors"
	"time"

	"github.com/orderdesk/backend/internal/domain/order"
	"github.com/orderdesk/backend/internal/domain/partner"
	"github.com/orderdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderService handles order-related business operations
type OrderService struct {
	orderRepo   order.Repository
	partnerRepo partner.Repository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo order.Repository, partnerRepo partner.Repository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		partnerRepo: partnerRepo,
	}
}

// Create creates a new order and records its opening history entry
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	// The partner must exist before an order can reference it
	if _, err := s.partnerRepo.FindByID(ctx, req.PartnerID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewValidationError("Partner must exist")
		}
		return nil, err
	}

	orderDate := time.Time{}
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	o, err := order.NewOrder(req.PartnerID, order.Type(req.Type), order.Status(req.Status), orderDate)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if err := o.SetAmount(req.Amount); err != nil {
			return nil, err
		}
	}
	if req.DeliveryDate != nil {
		o.SetDates(o.OrderDate, req.DeliveryDate)
	}
	if req.Notes != "" {
		o.SetNotes(req.Notes)
	}

	// Every order starts its audit trail with an opening entry
	if err := s.orderRepo.SaveWithHistory(ctx, o, order.NewInitialHistory(o)); err != nil {
		return nil, err
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// GetByID retrieves an order with its partner and status histories
func (s *OrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByIDWithDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// List retrieves a list of orders with filtering and pagination
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, int64, error) {
	domainFilter := buildDomainFilter(filter)

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToOrderResponses(orders), total, nil
}

// Update updates an order. A status change goes through the domain
// transition rules and lands one history row alongside the order write.
func (s *OrderService) Update(ctx context.Context, orderID uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if err := o.SetAmount(req.Amount); err != nil {
			return nil, err
		}
	}

	if req.OrderDate != nil || req.DeliveryDate != nil {
		orderDate := o.OrderDate
		deliveryDate := o.DeliveryDate
		if req.OrderDate != nil {
			orderDate = *req.OrderDate
		}
		if req.DeliveryDate != nil {
			deliveryDate = req.DeliveryDate
		}
		o.SetDates(orderDate, deliveryDate)
	}

	if req.Notes != nil {
		o.SetNotes(*req.Notes)
	}

	statusChanged := false
	prev := o.Status
	if req.Status != nil && order.Status(*req.Status) != o.Status {
		if err := o.ChangeStatus(order.Status(*req.Status)); err != nil {
			return nil, err
		}
		statusChanged = true
	}

	if statusChanged {
		h, err := order.NewTransition(o.ID, prev, o.Status, "", "")
		if err != nil {
			return nil, err
		}
		if err := s.orderRepo.SaveWithHistory(ctx, o, h); err != nil {
			return nil, err
		}
	} else {
		if err := s.orderRepo.Save(ctx, o); err != nil {
			return nil, err
		}
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// Delete deletes an order together with its status histories
func (s *OrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return err
	}
	return s.orderRepo.Delete(ctx, orderID)
}

// CreateStatusHistory records a status change on an order. The order's
// status column follows the recorded to_status in the same transaction,
// so the audit trail and the order never drift apart.
func (s *OrderService) CreateStatusHistory(ctx context.Context, req CreateStatusHistoryRequest) (*StatusHistoryResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewValidationError("Order must exist")
		}
		return nil, err
	}

	to := order.Status(req.ToStatus)
	prev := o.Status

	// from_status defaults to the order's status at recording time
	from := prev
	if req.FromStatus != nil {
		from = order.Status(*req.FromStatus)
	}

	if to != o.Status {
		if err := o.ChangeStatus(to); err != nil {
			return nil, err
		}
	}

	h, err := order.NewTransition(o.ID, from, to, req.Comment, req.CreatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithHistory(ctx, o, h); err != nil {
		return nil, err
	}

	response := ToStatusHistoryResponse(h)
	return &response, nil
}

// ListHistories returns an order's status histories newest-first
func (s *OrderService) ListHistories(ctx context.Context, orderID uuid.UUID) ([]StatusHistoryResponse, error) {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return nil, err
	}

	histories, err := s.orderRepo.FindHistories(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return ToStatusHistoryResponses(histories), nil
}

// buildDomainFilter converts an OrderListFilter into a shared.Filter
func buildDomainFilter(filter OrderListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}

	if filter.Type != "" {
		domainFilter.Filters["order_type"] = filter.Type
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.PartnerID != "" {
		domainFilter.Filters["partner_id"] = filter.PartnerID
	}

	return domainFilter
}
