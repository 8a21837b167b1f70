package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	identityapp "github.com/orderdesk/backend/internal/application/identity"
	"github.com/orderdesk/backend/internal/domain/identity"
	"github.com/orderdesk/backend/internal/domain/shared"
	"github.com/orderdesk/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository implements identity.UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, u *identity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

var _ identity.UserRepository = (*MockUserRepository)(nil)

func setupUserTestRouter() (*gin.Engine, *MockUserRepository) {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	mockRepo := new(MockUserRepository)
	service := identityapp.NewUserService(mockRepo)
	handler := NewUserHandler(service)

	router := gin.New()
	handler.RegisterRoutes(router.Group(""))

	return router, mockRepo
}

func createTestUser(t *testing.T) *identity.User {
	u, err := identity.NewUser("taro@example.com", identity.RoleUser)
	require.NoError(t, err)
	return u
}

func TestUserHandler_Create(t *testing.T) {
	t.Run("creates a user and returns the resource", func(t *testing.T) {
		router, mockRepo := setupUserTestRouter()

		mockRepo.On("ExistsByEmail", mock.Anything, "hanako@example.com", uuid.Nil).Return(false, nil)
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		body, _ := json.Marshal(map[string]any{
			"email":      "hanako@example.com",
			"last_name":  "Sato",
			"first_name": "Hanako",
			"role":       "admin",
		})
		req, _ := http.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "hanako@example.com", response["email"])
		assert.Equal(t, "admin", response["role"])

		mockRepo.AssertExpectations(t)
	})

	t.Run("blank email returns 422", func(t *testing.T) {
		router, mockRepo := setupUserTestRouter()

		body, _ := json.Marshal(map[string]any{"last_name": "Sato"})
		req, _ := http.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string][]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response["errors"], "email: This field is required")

		mockRepo.AssertNotCalled(t, "Save")
	})

	t.Run("duplicate email returns 422", func(t *testing.T) {
		router, mockRepo := setupUserTestRouter()

		mockRepo.On("ExistsByEmail", mock.Anything, "taro@example.com", uuid.Nil).Return(true, nil)

		body, _ := json.Marshal(map[string]any{"email": "taro@example.com"})
		req, _ := http.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestUserHandler_GetByID(t *testing.T) {
	t.Run("returns the user", func(t *testing.T) {
		router, mockRepo := setupUserTestRouter()

		u := createTestUser(t)
		mockRepo.On("FindByID", mock.Anything, u.ID).Return(u, nil)

		req, _ := http.NewRequest(http.MethodGet, "/users/"+u.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "taro@example.com", response["email"])
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		router, mockRepo := setupUserTestRouter()

		userID := uuid.New()
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, shared.ErrNotFound)

		req, _ := http.NewRequest(http.MethodGet, "/users/"+userID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandler_List(t *testing.T) {
	router, mockRepo := setupUserTestRouter()

	users := []identity.User{*createTestUser(t)}
	mockRepo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(users, nil)
	mockRepo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

	req, _ := http.NewRequest(http.MethodGet, "/users", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []map[string]any `json:"data"`
		Meta map[string]any   `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Data, 1)
	assert.Equal(t, float64(1), response.Meta["total"])
}

func TestUserHandler_Update(t *testing.T) {
	router, mockRepo := setupUserTestRouter()

	u := createTestUser(t)
	mockRepo.On("FindByID", mock.Anything, u.ID).Return(u, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

	body, _ := json.Marshal(map[string]any{"role": "admin"})
	req, _ := http.NewRequest(http.MethodPut, "/users/"+u.ID.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "admin", response["role"])
}

func TestUserHandler_NoDeleteRoute(t *testing.T) {
	router, _ := setupUserTestRouter()

	req, _ := http.NewRequest(http.MethodDelete, "/users/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
