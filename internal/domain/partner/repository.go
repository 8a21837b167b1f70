package partner

import (
	"context"

	"github.com/orderdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for partner persistence
type Repository interface {
	// FindByID finds a partner by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Partner, error)

	// FindByEmail finds a partner by email
	FindByEmail(ctx context.Context, email string) (*Partner, error)

	// FindAll finds all partners matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Partner, error)

	// FindByType finds partners by type (customer/supplier)
	FindByType(ctx context.Context, partnerType Type, filter shared.Filter) ([]Partner, error)

	// Save creates or updates a partner
	Save(ctx context.Context, p *Partner) error

	// Delete deletes a partner together with its orders and their
	// status histories, atomically
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts partners matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByEmail checks if a partner with the given email exists,
	// excluding the given ID (uuid.Nil to exclude nothing)
	ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
}
