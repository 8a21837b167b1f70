package models

import (
	"github.com/orderdesk/backend/internal/domain/partner"
)

// PartnerModel is the persistence model for the Partner domain entity.
// Email is a pointer so an absent address is stored as NULL; the unique
// index then only applies to partners that have one.
type PartnerModel struct {
	AggregateModel
	Name                    string       `gorm:"type:varchar(200);not null"`
	RepresentativeLastName  string       `gorm:"type:varchar(100)"`
	RepresentativeFirstName string       `gorm:"type:varchar(100)"`
	Email                   *string      `gorm:"type:varchar(200);uniqueIndex"`
	Phone                   string       `gorm:"type:varchar(50)"`
	Address                 string       `gorm:"type:text"`
	PartnerType             partner.Type `gorm:"type:varchar(20);not null;index"`
}

// TableName returns the table name for GORM
func (PartnerModel) TableName() string {
	return "partners"
}

// ToDomain converts the persistence model to a domain Partner entity.
func (m *PartnerModel) ToDomain() *partner.Partner {
	email := ""
	if m.Email != nil {
		email = *m.Email
	}
	return &partner.Partner{
		BaseAggregateRoot:       m.ToDomainAggregateRoot(),
		Name:                    m.Name,
		RepresentativeLastName:  m.RepresentativeLastName,
		RepresentativeFirstName: m.RepresentativeFirstName,
		Email:                   email,
		Phone:                   m.Phone,
		Address:                 m.Address,
		Type:                    m.PartnerType,
	}
}

// FromDomain populates the persistence model from a domain Partner entity.
func (m *PartnerModel) FromDomain(p *partner.Partner) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Name = p.Name
	m.RepresentativeLastName = p.RepresentativeLastName
	m.RepresentativeFirstName = p.RepresentativeFirstName
	m.Email = nil
	if p.Email != "" {
		email := p.Email
		m.Email = &email
	}
	m.Phone = p.Phone
	m.Address = p.Address
	m.PartnerType = p.Type
}

// PartnerModelFromDomain creates a new persistence model from a domain Partner entity.
func PartnerModelFromDomain(p *partner.Partner) *PartnerModel {
	m := &PartnerModel{}
	m.FromDomain(p)
	return m
}
