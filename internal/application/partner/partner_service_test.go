package partner

import (
	"context"
	"testing"

	"github.com/orderdesk/backend/internal/domain/partner"
	"github.com/orderdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPartnerRepository is a mock implementation of partner.Repository
type MockPartnerRepository struct {
	mock.Mock
}

func (m *MockPartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) FindByEmail(ctx context.Context, email string) (*partner.Partner, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Partner, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) FindByType(ctx context.Context, partnerType partner.Type, filter shared.Filter) ([]partner.Partner, error) {
	args := m.Called(ctx, partnerType, filter)
	return args.Get(0).([]partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) Save(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPartnerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPartnerRepository) ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func createTestPartner(t *testing.T) *partner.Partner {
	p, err := partner.NewPartner("Acme Trading", partner.TypeCustomer)
	require.NoError(t, err)
	return p
}

func TestPartnerService_Create_Success(t *testing.T) {
	mockRepo := new(MockPartnerRepository)
	service := NewPartnerService(mockRepo)

	ctx := context.Background()
	req := CreatePartnerRequest{
		Name:  "Acme Trading",
		Type:  "customer",
		Email: "sales@acme.example",
		Phone: "03-1234-5678",
	}

	mockRepo.On("ExistsByEmail", ctx, req.Email, uuid.Nil).Return(false, nil)
	mockRepo.On("Save", ctx, mock.AnythingOfType("*partner.Partner")).Return(nil)

	result, err := service.Create(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "Acme Trading", result.Name)
	assert.Equal(t, "customer", result.Type)
	assert.Equal(t, "sales@acme.example", result.Email)
	mockRepo.AssertExpectations(t)
}

func TestPartnerService_Create_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockPartnerRepository)
	service := NewPartnerService(mockRepo)

	ctx := context.Background()
	req := CreatePartnerRequest{
		Name:  "Acme Trading",
		Type:  "customer",
		Email: "sales@acme.example",
	}

	mockRepo.On("ExistsByEmail", ctx, req.Email, uuid.Nil).Return(true, nil)

	result, err := service.Create(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	mockRepo.AssertExpectations(t)
}

func TestPartnerService_Create_InvalidType(t *testing.T) {
	mockRepo := new(MockPartnerRepository)
	service := NewPartnerService(mockRepo)

	req := CreatePartnerRequest{
		Name: "Acme Trading",
		Type: "vendor",
	}

	result, err := service.Create(context.Background(), req)

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
}

func TestPartnerService_GetByID_Success(t *testing.T) {
	mockRepo := new(MockPartnerRepository)
	service := NewPartnerService(mockRepo)

	ctx := context.Background()
	p := createTestPartner(t)

	mockRepo.On("FindByID", ctx, p.ID).Return(p, nil)

	result, err := service.GetByID(ctx, p.ID)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, p.Name, result.Name)
	mockRepo.AssertExpectations(t)
}

func TestPartnerService_GetByID_NotFound(t *testing.T) {
	mockRepo := new(MockPartnerRepository)
	service := NewPartnerService(mockRepo)

	ctx := context.Background()
	partnerID := uuid.New()

	mockRepo.On("FindByID", ctx, partnerID).Return(nil, shared.ErrNotFound)

	result, err := service.GetByID(ctx, partnerID)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestPartnerService_List_Success(t *testing.T) {
	mockRepo := new(MockPartnerRepository)
	service := NewPartnerService(mockRepo)

	ctx := context.Background()
	partners := []partner.Partner{*createTestPartner(t)}

	mockRepo.On("FindAll", ctx, mock.AnythingOfType("shared.Filter")).Return(partners, nil)
	mockRepo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

	result, total, err := service.List(ctx, PartnerListFilter{})

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, int64(1), total)
	mockRepo.AssertExpectations(t)
}

func TestPartnerService_List_TypeFilter(t *testing.T) {
	mockRepo := new(MockPartnerRepository)
	service := NewPartnerService(mockRepo)

	ctx := context.Background()

	mockRepo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["partner_type"] == "supplier"
	})).Return([]partner.Partner{}, nil)
	mockRepo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(0), nil)

	_, _, err := service.List(ctx, PartnerListFilter{Type: "supplier"})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestPartnerService_Update_Success(t *testing.T) {
	mockRepo := new(MockPartnerRepository)
	service := NewPartnerService(mockRepo)

	ctx := context.Background()
	p := createTestPartner(t)

	newName := "Acme Holdings"
	newPhone := "06-9876-5432"
	req := UpdatePartnerRequest{
		Name:  &newName,
		Phone: &newPhone,
	}

	mockRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	mockRepo.On("Save", ctx, mock.AnythingOfType("*partner.Partner")).Return(nil)

	result, err := service.Update(ctx, p.ID, req)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, newName, result.Name)
	assert.Equal(t, newPhone, result.Phone)
	mockRepo.AssertExpectations(t)
}

func TestPartnerService_Update_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockPartnerRepository)
	service := NewPartnerService(mockRepo)

	ctx := context.Background()
	p := createTestPartner(t)

	newEmail := "taken@acme.example"
	req := UpdatePartnerRequest{Email: &newEmail}

	mockRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	mockRepo.On("ExistsByEmail", ctx, newEmail, p.ID).Return(true, nil)

	result, err := service.Update(ctx, p.ID, req)

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	mockRepo.AssertExpectations(t)
}

func TestPartnerService_Delete_Success(t *testing.T) {
	mockRepo := new(MockPartnerRepository)
	service := NewPartnerService(mockRepo)

	ctx := context.Background()
	p := createTestPartner(t)

	mockRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	mockRepo.On("Delete", ctx, p.ID).Return(nil)

	err := service.Delete(ctx, p.ID)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestPartnerService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockPartnerRepository)
	service := NewPartnerService(mockRepo)

	ctx := context.Background()
	partnerID := uuid.New()

	mockRepo.On("FindByID", ctx, partnerID).Return(nil, shared.ErrNotFound)

	err := service.Delete(ctx, partnerID)

	assert.ErrorIs(t, err, shared.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
