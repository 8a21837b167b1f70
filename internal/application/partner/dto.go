package partner

import (
	"time"

	"github.com/orderdesk/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CreatePartnerRequest represents a request to create a new partner
type CreatePartnerRequest struct {
	Name                    string `json:"name" binding:"required,min=1,max=200"`
	Type                    string `json:"partner_type" binding:"required,oneof=customer supplier"`
	RepresentativeLastName  string `json:"representative_last_name" binding:"max=100"`
	RepresentativeFirstName string `json:"representative_first_name" binding:"max=100"`
	Email                   string `json:"email" binding:"omitempty,email,max=200"`
	Phone                   string `json:"phone" binding:"max=50"`
	Address                 string `json:"address" binding:"max=500"`
}

// UpdatePartnerRequest represents a request to update a partner
type UpdatePartnerRequest struct {
	Name                    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Type                    *string `json:"partner_type" binding:"omitempty,oneof=customer supplier"`
	RepresentativeLastName  *string `json:"representative_last_name" binding:"omitempty,max=100"`
	RepresentativeFirstName *string `json:"representative_first_name" binding:"omitempty,max=100"`
	Email                   *string `json:"email" binding:"omitempty,email,max=200"`
	Phone                   *string `json:"phone" binding:"omitempty,max=50"`
	Address                 *string `json:"address" binding:"omitempty,max=500"`
}

// PartnerResponse represents a partner in API responses
type PartnerResponse struct {
	ID                      uuid.UUID `json:"id"`
	Name                    string    `json:"name"`
	Type                    string    `json:"partner_type"`
	RepresentativeLastName  string    `json:"representative_last_name"`
	RepresentativeFirstName string    `json:"representative_first_name"`
	Email                   string    `json:"email"`
	Phone                   string    `json:"phone"`
	Address                 string    `json:"address"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
	Version                 int       `json:"version"`
}

// PartnerListFilter represents filter options for partner list
type PartnerListFilter struct {
	Search   string `form:"search"`
	Type     string `form:"type" binding:"omitempty,oneof=customer supplier"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToPartnerResponse converts a domain Partner to PartnerResponse
func ToPartnerResponse(p *partner.Partner) PartnerResponse {
	return PartnerResponse{
		ID:                      p.ID,
		Name:                    p.Name,
		Type:                    string(p.Type),
		RepresentativeLastName:  p.RepresentativeLastName,
		RepresentativeFirstName: p.RepresentativeFirstName,
		Email:                   p.Email,
		Phone:                   p.Phone,
		Address:                 p.Address,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
		Version:                 p.Version,
	}
}

// ToPartnerResponses converts a slice of domain Partners to PartnerResponses
func ToPartnerResponses(partners []partner.Partner) []PartnerResponse {
	responses := make([]PartnerResponse, len(partners))
	for i, p := range partners {
		responses[i] = ToPartnerResponse(&p)
	}
	return responses
}
