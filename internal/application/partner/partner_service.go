package partner

import (
	"context"

	"github.com/orderdesk/backend/internal/domain/partner"
	"github.com/orderdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PartnerService handles partner-related business operations
type PartnerService struct {
	partnerRepo partner.Repository
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(partnerRepo partner.Repository) *PartnerService {
	return &PartnerService{
		partnerRepo: partnerRepo,
	}
}

// Create creates a new partner
func (s *PartnerService) Create(ctx context.Context, req CreatePartnerRequest) (*PartnerResponse, error) {
	// Check if email already exists (if provided)
	if req.Email != "" {
		exists, err := s.partnerRepo.ExistsByEmail(ctx, req.Email, uuid.Nil)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewAlreadyExistsError("Partner with this email already exists")
		}
	}

	p, err := partner.NewPartner(req.Name, partner.Type(req.Type))
	if err != nil {
		return nil, err
	}

	if req.RepresentativeLastName != "" || req.RepresentativeFirstName != "" {
		if err := p.SetRepresentative(req.RepresentativeLastName, req.RepresentativeFirstName); err != nil {
			return nil, err
		}
	}

	if req.Email != "" || req.Phone != "" || req.Address != "" {
		if err := p.SetContact(req.Email, req.Phone, req.Address); err != nil {
			return nil, err
		}
	}

	if err := s.partnerRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToPartnerResponse(p)
	return &response, nil
}

// GetByID retrieves a partner by ID
func (s *PartnerService) GetByID(ctx context.Context, partnerID uuid.UUID) (*PartnerResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	response := ToPartnerResponse(p)
	return &response, nil
}

// List retrieves a list of partners with filtering and pagination
func (s *PartnerService) List(ctx context.Context, filter PartnerListFilter) ([]PartnerResponse, int64, error) {
	domainFilter := buildDomainFilter(filter)

	partners, err := s.partnerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.partnerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPartnerResponses(partners), total, nil
}

// Update updates a partner
func (s *PartnerService) Update(ctx context.Context, partnerID uuid.UUID, req UpdatePartnerRequest) (*PartnerResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := p.Rename(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.Type != nil {
		if err := p.SetType(partner.Type(*req.Type)); err != nil {
			return nil, err
		}
	}

	if req.RepresentativeLastName != nil || req.RepresentativeFirstName != nil {
		lastName := p.RepresentativeLastName
		firstName := p.RepresentativeFirstName
		if req.RepresentativeLastName != nil {
			lastName = *req.RepresentativeLastName
		}
		if req.RepresentativeFirstName != nil {
			firstName = *req.RepresentativeFirstName
		}
		if err := p.SetRepresentative(lastName, firstName); err != nil {
			return nil, err
		}
	}

	if req.Email != nil || req.Phone != nil || req.Address != nil {
		email := p.Email
		phone := p.Phone
		address := p.Address

		if req.Email != nil {
			// Check for duplicate email, ignoring the partner's own row
			if *req.Email != "" && *req.Email != p.Email {
				exists, err := s.partnerRepo.ExistsByEmail(ctx, *req.Email, p.ID)
				if err != nil {
					return nil, err
				}
				if exists {
					return nil, shared.NewAlreadyExistsError("Partner with this email already exists")
				}
			}
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Address != nil {
			address = *req.Address
		}

		if err := p.SetContact(email, phone, address); err != nil {
			return nil, err
		}
	}

	if err := s.partnerRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToPartnerResponse(p)
	return &response, nil
}

// Delete deletes a partner together with its orders and their histories
func (s *PartnerService) Delete(ctx context.Context, partnerID uuid.UUID) error {
	if _, err := s.partnerRepo.FindByID(ctx, partnerID); err != nil {
		return err
	}
	return s.partnerRepo.Delete(ctx, partnerID)
}

// buildDomainFilter converts a PartnerListFilter into a shared.Filter
func buildDomainFilter(filter PartnerListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}

	if filter.Type != "" {
		domainFilter.Filters["partner_type"] = filter.Type
	}

	return domainFilter
}
