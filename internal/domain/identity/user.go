package identity

import (
	"regexp"
	"strings"

	"github.com/orderdesk/backend/internal/domain/shared"
)

// Role represents a user's role in the system
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid checks if the role is a valid Role
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// User represents a user account.
// It is the aggregate root for user-related operations.
type User struct {
	shared.BaseAggregateRoot
	Email     string `gorm:"type:varchar(200);not null;uniqueIndex"`
	LastName  string `gorm:"type:varchar(100)"`
	FirstName string `gorm:"type:varchar(100)"`
	Role      Role   `gorm:"type:varchar(20);not null;default:'user'"`
	AvatarURL string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with required fields
func NewUser(email string, role Role) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if role == "" {
		role = RoleUser
	}
	if !role.IsValid() {
		return nil, shared.NewValidationError("Role must be 'admin' or 'user'")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		Role:              role,
	}, nil
}

// SetEmail changes the user's email address
func (u *User) SetEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}

	u.Email = strings.ToLower(strings.TrimSpace(email))
	u.Touch()
	u.IncrementVersion()

	return nil
}

// SetName sets the user's last and first name
func (u *User) SetName(lastName, firstName string) error {
	if len(lastName) > 100 || len(firstName) > 100 {
		return shared.NewValidationError("Name cannot exceed 100 characters")
	}

	u.LastName = lastName
	u.FirstName = firstName
	u.Touch()
	u.IncrementVersion()

	return nil
}

// SetRole changes the user's role
func (u *User) SetRole(role Role) error {
	if !role.IsValid() {
		return shared.NewValidationError("Role must be 'admin' or 'user'")
	}

	u.Role = role
	u.Touch()
	u.IncrementVersion()

	return nil
}

// SetAvatarURL sets the user's avatar image URL
func (u *User) SetAvatarURL(url string) {
	u.AvatarURL = url
	u.Touch()
	u.IncrementVersion()
}

// FullName returns "FirstName LastName", skipping blank parts
func (u *User) FullName() string {
	parts := make([]string, 0, 2)
	if u.FirstName != "" {
		parts = append(parts, u.FirstName)
	}
	if u.LastName != "" {
		parts = append(parts, u.LastName)
	}
	return strings.Join(parts, " ")
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewValidationError("Email can't be blank")
	}
	if len(email) > 200 {
		return shared.NewValidationError("Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewValidationError("Email format is invalid")
	}
	return nil
}
