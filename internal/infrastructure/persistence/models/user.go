package models

import (
	"github.com/orderdesk/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	Email     string        `gorm:"type:varchar(200);not null;uniqueIndex"`
	LastName  string        `gorm:"type:varchar(100)"`
	FirstName string        `gorm:"type:varchar(100)"`
	Role      identity.Role `gorm:"type:varchar(20);not null;default:'user'"`
	AvatarURL string        `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Email:             m.Email,
		LastName:          m.LastName,
		FirstName:         m.FirstName,
		Role:              m.Role,
		AvatarURL:         m.AvatarURL,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Email = u.Email
	m.LastName = u.LastName
	m.FirstName = u.FirstName
	m.Role = u.Role
	m.AvatarURL = u.AvatarURL
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
