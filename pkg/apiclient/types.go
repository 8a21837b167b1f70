package apiclient

// Partner is the wire representation of a partner
type Partner struct {
	ID                      string `json:"id"`
	Name                    string `json:"name"`
	Type                    string `json:"partner_type"`
	RepresentativeLastName  string `json:"representative_last_name"`
	RepresentativeFirstName string `json:"representative_first_name"`
	Email                   string `json:"email"`
	Phone                   string `json:"phone"`
	Address                 string `json:"address"`
	CreatedAt               string `json:"created_at"`
	UpdatedAt               string `json:"updated_at"`
	Version                 int    `json:"version"`
}

// Order is the wire representation of an order
type Order struct {
	ID           string          `json:"id"`
	PartnerID    string          `json:"partner_id"`
	Type         string          `json:"order_type"`
	Amount       *string         `json:"amount"`
	Status       string          `json:"status"`
	OrderDate    string          `json:"order_date"`
	DeliveryDate *string         `json:"delivery_date"`
	Notes        string          `json:"notes"`
	Partner      *Partner        `json:"partner,omitempty"`
	Histories    []StatusHistory `json:"status_histories,omitempty"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
	Version      int             `json:"version"`
}

// StatusHistory is the wire representation of a status history row
type StatusHistory struct {
	ID         string  `json:"id"`
	OrderID    string  `json:"order_id"`
	FromStatus *string `json:"from_status"`
	ToStatus   string  `json:"to_status"`
	Comment    string  `json:"comment"`
	CreatedBy  string  `json:"created_by"`
	CreatedAt  string  `json:"created_at"`
}

// User is the wire representation of a user
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Version   int    `json:"version"`
}

// ListMeta holds pagination metadata returned by index endpoints
type ListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// Health is the health endpoint response
type Health struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// CreatePartnerParams holds the fields for creating a partner
type CreatePartnerParams struct {
	Name                    string `json:"name"`
	Type                    string `json:"partner_type"`
	RepresentativeLastName  string `json:"representative_last_name,omitempty"`
	RepresentativeFirstName string `json:"representative_first_name,omitempty"`
	Email                   string `json:"email,omitempty"`
	Phone                   string `json:"phone,omitempty"`
	Address                 string `json:"address,omitempty"`
}

// UpdatePartnerParams holds the fields for a partial partner update
type UpdatePartnerParams struct {
	Name                    *string `json:"name,omitempty"`
	Type                    *string `json:"partner_type,omitempty"`
	RepresentativeLastName  *string `json:"representative_last_name,omitempty"`
	RepresentativeFirstName *string `json:"representative_first_name,omitempty"`
	Email                   *string `json:"email,omitempty"`
	Phone                   *string `json:"phone,omitempty"`
	Address                 *string `json:"address,omitempty"`
}

// CreateOrderParams holds the fields for creating an order
type CreateOrderParams struct {
	PartnerID    string  `json:"partner_id"`
	Type         string  `json:"order_type"`
	Status       string  `json:"status,omitempty"`
	Amount       *string `json:"amount,omitempty"`
	OrderDate    string  `json:"order_date,omitempty"`
	DeliveryDate *string `json:"delivery_date,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// UpdateOrderParams holds the fields for a partial order update
type UpdateOrderParams struct {
	Status       *string `json:"status,omitempty"`
	Amount       *string `json:"amount,omitempty"`
	OrderDate    *string `json:"order_date,omitempty"`
	DeliveryDate *string `json:"delivery_date,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// CreateStatusHistoryParams holds the fields for recording a transition
type CreateStatusHistoryParams struct {
	OrderID    string  `json:"order_id"`
	FromStatus *string `json:"from_status,omitempty"`
	ToStatus   string  `json:"to_status"`
	Comment    string  `json:"comment,omitempty"`
	CreatedBy  string  `json:"created_by,omitempty"`
}

// CreateUserParams holds the fields for creating a user
type CreateUserParams struct {
	Email     string `json:"email"`
	LastName  string `json:"last_name,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	Role      string `json:"role,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// UpdateUserParams holds the fields for a partial user update
type UpdateUserParams struct {
	Email     *string `json:"email,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	Role      *string `json:"role,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// PartnerListOptions filters partner index requests
type PartnerListOptions struct {
	Type     string
	Search   string
	Page     int
	PageSize int
}

// OrderListOptions filters order index requests
type OrderListOptions struct {
	Type      string
	Status    string
	PartnerID string
	Search    string
	Page      int
	PageSize  int
}

// UserListOptions filters user index requests
type UserListOptions struct {
	Role     string
	Search   string
	Page     int
	PageSize int
}
