package order

import (
	"context"

	"github.com/orderdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for order persistence. Status
// histories are part of the order aggregate and are persisted through
// the same repository; the *WithHistory methods write the order and the
// history row in one transaction.
type Repository interface {
	// FindByID finds an order by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByIDWithDetails finds an order with its partner and status
	// histories loaded (histories newest-first)
	FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAll finds all orders matching the filter; order type and
	// status constraints are passed via filter.Filters under the
	// "order_type" and "status" keys
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// FindByPartner finds all orders belonging to a partner
	FindByPartner(ctx context.Context, partnerID uuid.UUID, filter shared.Filter) ([]Order, error)

	// Save creates or updates an order without touching its histories
	Save(ctx context.Context, o *Order) error

	// SaveWithHistory writes the order and appends one history row
	// atomically
	SaveWithHistory(ctx context.Context, o *Order, h *StatusHistory) error

	// Delete deletes an order together with its status histories,
	// atomically
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// FindHistories returns an order's status histories newest-first
	FindHistories(ctx context.Context, orderID uuid.UUID) ([]StatusHistory, error)
}
