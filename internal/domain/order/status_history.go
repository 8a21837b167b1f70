package order

import (
	"strings"

	"github.com/orderdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SystemActor is recorded as the author of history rows produced by
// order writes rather than explicit history creation.
const SystemActor = "system"

// StatusHistory is one row of an order's append-only status audit trail.
// FromStatus is nil only on the row recorded at order creation.
type StatusHistory struct {
	shared.BaseEntity
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus *Status   `gorm:"type:varchar(20)"`
	ToStatus   Status    `gorm:"type:varchar(20);not null"`
	Comment    string    `gorm:"type:text"`
	CreatedBy  string    `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (StatusHistory) TableName() string {
	return "status_histories"
}

// NewInitialHistory records the creation of an order in its initial status
func NewInitialHistory(o *Order) *StatusHistory {
	return &StatusHistory{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    o.ID,
		FromStatus: nil,
		ToStatus:   o.Status,
		CreatedBy:  SystemActor,
	}
}

// NewTransition records a status change on an order
func NewTransition(orderID uuid.UUID, from, to Status, comment, createdBy string) (*StatusHistory, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewValidationError("Order can't be blank")
	}
	if !to.IsValid() {
		return nil, invalidStatusError(to)
	}
	if from != "" && !from.IsValid() {
		return nil, invalidStatusError(from)
	}
	if strings.TrimSpace(createdBy) == "" {
		createdBy = SystemActor
	}

	h := &StatusHistory{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		ToStatus:   to,
		Comment:    comment,
		CreatedBy:  createdBy,
	}
	if from != "" {
		f := from
		h.FromStatus = &f
	}
	return h, nil
}

// IsInitial returns true for the row recorded at order creation
func (h *StatusHistory) IsInitial() bool {
	return h.FromStatus == nil
}
