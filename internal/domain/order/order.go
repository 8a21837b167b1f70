package order

import (
	"time"

	"github.com/orderdesk/backend/internal/domain/partner"
	"github.com/orderdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type distinguishes sales orders from purchase orders
type Type string

const (
	TypeSale     Type = "sale"
	TypePurchase Type = "purchase"
)

// IsValid checks if the type is a valid order type
func (t Type) IsValid() bool {
	switch t {
	case TypeSale, TypePurchase:
		return true
	}
	return false
}

// String returns the string representation of Type
func (t Type) String() string {
	return string(t)
}

// Order represents a sales or purchase order.
// It is the aggregate root for order-related operations; its status
// histories belong to the same aggregate.
type Order struct {
	shared.BaseAggregateRoot
	PartnerID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Type         Type             `gorm:"column:order_type;type:varchar(20);not null"`
	Amount       *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Status       Status           `gorm:"type:varchar(20);not null;default:'draft'"`
	OrderDate    time.Time        `gorm:"type:date;not null"`
	DeliveryDate *time.Time       `gorm:"type:date"`
	Notes        string           `gorm:"type:text"`

	Partner   *partner.Partner `gorm:"foreignKey:PartnerID"`
	Histories []StatusHistory  `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new order in its initial status
func NewOrder(partnerID uuid.UUID, orderType Type, status Status, orderDate time.Time) (*Order, error) {
	if partnerID == uuid.Nil {
		return nil, shared.NewValidationError("Partner can't be blank")
	}
	if err := validateOrderType(orderType); err != nil {
		return nil, err
	}
	if status == "" {
		status = StatusDraft
	}
	if !status.IsValid() {
		return nil, invalidStatusError(status)
	}
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PartnerID:         partnerID,
		Type:              orderType,
		Status:            status,
		OrderDate:         orderDate,
	}, nil
}

// SetAmount sets the order amount; nil clears it
func (o *Order) SetAmount(amount *decimal.Decimal) error {
	if amount != nil && amount.IsNegative() {
		return shared.NewValidationError("Amount must be greater than or equal to 0")
	}

	o.Amount = amount
	o.Touch()
	o.IncrementVersion()

	return nil
}

// SetDates sets order and delivery dates; a zero orderDate is ignored
func (o *Order) SetDates(orderDate time.Time, deliveryDate *time.Time) {
	if !orderDate.IsZero() {
		o.OrderDate = orderDate
	}
	o.DeliveryDate = deliveryDate
	o.Touch()
	o.IncrementVersion()
}

// SetNotes sets the free-form notes
func (o *Order) SetNotes(notes string) {
	o.Notes = notes
	o.Touch()
	o.IncrementVersion()
}

// ChangeStatus moves the order to the target status. Setting the current
// status again is a no-op; any other target must be reachable in the
// transition graph.
func (o *Order) ChangeStatus(target Status) error {
	if !target.IsValid() {
		return invalidStatusError(target)
	}
	if target == o.Status {
		return nil
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewInvalidStateError(
			"Status cannot transition from '" + o.Status.String() + "' to '" + target.String() + "'")
	}

	o.Status = target
	o.Touch()
	o.IncrementVersion()

	return nil
}

// IsSale returns true if this is a sales order
func (o *Order) IsSale() bool {
	return o.Type == TypeSale
}

// IsPurchase returns true if this is a purchase order
func (o *Order) IsPurchase() bool {
	return o.Type == TypePurchase
}

// IsClosed returns true if the order is in a terminal status
func (o *Order) IsClosed() bool {
	return o.Status.IsTerminal()
}

func validateOrderType(t Type) error {
	if !t.IsValid() {
		return shared.NewValidationError("Order type must be 'sale' or 'purchase'")
	}
	return nil
}

func invalidStatusError(s Status) *shared.DomainError {
	return shared.NewValidationError("Status '" + s.String() + "' is not a valid status")
}
