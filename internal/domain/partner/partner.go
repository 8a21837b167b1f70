package partner

import (
	"regexp"
	"strings"

	"github.com/orderdesk/backend/internal/domain/shared"
)

// Type distinguishes the two kinds of business partners
type Type string

const (
	TypeCustomer Type = "customer"
	TypeSupplier Type = "supplier"
)

// IsValid checks if the type is a valid partner type
func (t Type) IsValid() bool {
	switch t {
	case TypeCustomer, TypeSupplier:
		return true
	}
	return false
}

// String returns the string representation of Type
func (t Type) String() string {
	return string(t)
}

// Partner represents a business partner (customer or supplier).
// It is the aggregate root for partner-related operations.
type Partner struct {
	shared.BaseAggregateRoot
	Name                    string `gorm:"type:varchar(200);not null"`
	RepresentativeLastName  string `gorm:"type:varchar(100)"`
	RepresentativeFirstName string `gorm:"type:varchar(100)"`
	Email                   string `gorm:"type:varchar(200);index"`
	Phone                   string `gorm:"type:varchar(50)"`
	Address                 string `gorm:"type:text"`
	Type                    Type   `gorm:"column:partner_type;type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (Partner) TableName() string {
	return "partners"
}

// NewPartner creates a new partner with required fields
func NewPartner(name string, partnerType Type) (*Partner, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateType(partnerType); err != nil {
		return nil, err
	}

	return &Partner{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Type:              partnerType,
	}, nil
}

// Rename updates the partner's name
func (p *Partner) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.Touch()
	p.IncrementVersion()

	return nil
}

// SetType changes the partner type
func (p *Partner) SetType(partnerType Type) error {
	if err := validateType(partnerType); err != nil {
		return err
	}

	p.Type = partnerType
	p.Touch()
	p.IncrementVersion()

	return nil
}

// SetRepresentative sets the representative's name
func (p *Partner) SetRepresentative(lastName, firstName string) error {
	if len(lastName) > 100 || len(firstName) > 100 {
		return shared.NewValidationError("Representative name cannot exceed 100 characters")
	}

	p.RepresentativeLastName = lastName
	p.RepresentativeFirstName = firstName
	p.Touch()
	p.IncrementVersion()

	return nil
}

// SetContact sets the partner's contact information
func (p *Partner) SetContact(email, phone, address string) error {
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	if address != "" && len(address) > 500 {
		return shared.NewValidationError("Address cannot exceed 500 characters")
	}

	p.Email = email
	p.Phone = phone
	p.Address = address
	p.Touch()
	p.IncrementVersion()

	return nil
}

// IsCustomer returns true if the partner is a customer
func (p *Partner) IsCustomer() bool {
	return p.Type == TypeCustomer
}

// IsSupplier returns true if the partner is a supplier
func (p *Partner) IsSupplier() bool {
	return p.Type == TypeSupplier
}

// Validation functions

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewValidationError("Name can't be blank")
	}
	if len(name) > 200 {
		return shared.NewValidationError("Name cannot exceed 200 characters")
	}
	return nil
}

func validateType(t Type) error {
	if !t.IsValid() {
		return shared.NewValidationError("Partner type must be 'customer' or 'supplier'")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewValidationError("Phone number cannot exceed 50 characters")
	}
	validPhone := regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	if !validPhone.MatchString(phone) {
		return shared.NewValidationError("Phone number format is invalid")
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewValidationError("Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewValidationError("Email format is invalid")
	}
	return nil
}
