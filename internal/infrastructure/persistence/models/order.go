package models

import (
	"time"

	"github.com/orderdesk/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order domain entity.
type OrderModel struct {
	AggregateModel
	PartnerID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	OrderType    order.Type           `gorm:"type:varchar(20);not null;index"`
	Amount       *decimal.Decimal     `gorm:"type:decimal(10,2)"`
	Status       order.Status         `gorm:"type:varchar(20);not null;default:'draft';index"`
	OrderDate    time.Time            `gorm:"type:date;not null"`
	DeliveryDate *time.Time           `gorm:"type:date"`
	Notes        string               `gorm:"type:text"`
	Partner      *PartnerModel        `gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE"`
	Histories    []StatusHistoryModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *order.Order {
	o := &order.Order{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		PartnerID:         m.PartnerID,
		Type:              m.OrderType,
		Amount:            m.Amount,
		Status:            m.Status,
		OrderDate:         m.OrderDate,
		DeliveryDate:      m.DeliveryDate,
		Notes:             m.Notes,
	}
	if m.Partner != nil {
		o.Partner = m.Partner.ToDomain()
	}
	if len(m.Histories) > 0 {
		o.Histories = make([]order.StatusHistory, len(m.Histories))
		for i, h := range m.Histories {
			o.Histories[i] = *h.ToDomain()
		}
	}
	return o
}

// FromDomain populates the persistence model from a domain Order entity.
// Associations are persisted separately and left untouched here.
func (m *OrderModel) FromDomain(o *order.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.PartnerID = o.PartnerID
	m.OrderType = o.Type
	m.Amount = o.Amount
	m.Status = o.Status
	m.OrderDate = o.OrderDate
	m.DeliveryDate = o.DeliveryDate
	m.Notes = o.Notes
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(o *order.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// StatusHistoryModel is the persistence model for the StatusHistory entity.
type StatusHistoryModel struct {
	BaseModel
	OrderID    uuid.UUID     `gorm:"type:uuid;not null;index"`
	FromStatus *order.Status `gorm:"type:varchar(20)"`
	ToStatus   order.Status  `gorm:"type:varchar(20);not null"`
	Comment    string        `gorm:"type:text"`
	CreatedBy  string        `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (StatusHistoryModel) TableName() string {
	return "status_histories"
}

// ToDomain converts the persistence model to a domain StatusHistory entity.
func (m *StatusHistoryModel) ToDomain() *order.StatusHistory {
	return &order.StatusHistory{
		BaseEntity: m.BaseModel.ToDomain(),
		OrderID:    m.OrderID,
		FromStatus: m.FromStatus,
		ToStatus:   m.ToStatus,
		Comment:    m.Comment,
		CreatedBy:  m.CreatedBy,
	}
}

// FromDomain populates the persistence model from a domain StatusHistory entity.
func (m *StatusHistoryModel) FromDomain(h *order.StatusHistory) {
	m.FromDomainBaseEntity(h.BaseEntity)
	m.OrderID = h.OrderID
	m.FromStatus = h.FromStatus
	m.ToStatus = h.ToStatus
	m.Comment = h.Comment
	m.CreatedBy = h.CreatedBy
}

// StatusHistoryModelFromDomain creates a new persistence model from a domain StatusHistory entity.
func StatusHistoryModelFromDomain(h *order.StatusHistory) *StatusHistoryModel {
	m := &StatusHistoryModel{}
	m.FromDomain(h)
	return m
}
