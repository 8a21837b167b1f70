package identity

import (
	"context"

	"github.com/orderdesk/backend/internal/domain/identity"
	"github.com/orderdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserService handles user-related business operations
type UserService struct {
	userRepo identity.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// Create creates a new user
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewAlreadyExistsError("User with this email already exists")
	}

	u, err := identity.NewUser(req.Email, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}

	if req.LastName != "" || req.FirstName != "" {
		if err := u.SetName(req.LastName, req.FirstName); err != nil {
			return nil, err
		}
	}
	if req.AvatarURL != "" {
		u.SetAvatarURL(req.AvatarURL)
	}

	if err := s.userRepo.Save(ctx, u); err != nil {
		return nil, err
	}

	response := ToUserResponse(u)
	return &response, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(u)
	return &response, nil
}

// List retrieves a list of users with filtering and pagination
func (s *UserService) List(ctx context.Context, filter UserListFilter) ([]UserResponse, int64, error) {
	domainFilter := buildDomainFilter(filter)

	users, err := s.userRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.userRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToUserResponses(users), total, nil
}

// Update updates a user
func (s *UserService) Update(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != u.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, *req.Email, u.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewAlreadyExistsError("User with this email already exists")
		}
		if err := u.SetEmail(*req.Email); err != nil {
			return nil, err
		}
	}

	if req.LastName != nil || req.FirstName != nil {
		lastName := u.LastName
		firstName := u.FirstName
		if req.LastName != nil {
			lastName = *req.LastName
		}
		if req.FirstName != nil {
			firstName = *req.FirstName
		}
		if err := u.SetName(lastName, firstName); err != nil {
			return nil, err
		}
	}

	if req.Role != nil {
		if err := u.SetRole(identity.Role(*req.Role)); err != nil {
			return nil, err
		}
	}

	if req.AvatarURL != nil {
		u.SetAvatarURL(*req.AvatarURL)
	}

	if err := s.userRepo.Save(ctx, u); err != nil {
		return nil, err
	}

	response := ToUserResponse(u)
	return &response, nil
}

// buildDomainFilter converts a UserListFilter into a shared.Filter
func buildDomainFilter(filter UserListFilter) shared.Filter {
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

	if filter.Role != "" {
		domainFilter.Filters["role"] = filter.Role
	}

	return domainFilter
}
