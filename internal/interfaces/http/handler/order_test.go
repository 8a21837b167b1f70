package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	orderapp "github.com/orderdesk/backend/internal/application/order"
	"github.com/orderdesk/backend/internal/domain/order"
	"github.com/orderdesk/backend/internal/domain/shared"
	"github.com/orderdesk/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository implements order.Repository for testing
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByPartner(ctx context.Context, partnerID uuid.UUID, filter shared.Filter) ([]order.Order, error) {
	args := m.Called(ctx, partnerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveWithHistory(ctx context.Context, o *order.Order, h *order.StatusHistory) error {
	args := m.Called(ctx, o, h)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindHistories(ctx context.Context, orderID uuid.UUID) ([]order.StatusHistory, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.StatusHistory), args.Error(1)
}

var _ order.Repository = (*MockOrderRepository)(nil)

func setupOrderTestRouter() (*gin.Engine, *MockOrderRepository, *MockPartnerRepository) {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	mockOrderRepo := new(MockOrderRepository)
	mockPartnerRepo := new(MockPartnerRepository)
	service := orderapp.NewOrderService(mockOrderRepo, mockPartnerRepo)

	router := gin.New()
	group := router.Group("")
	NewOrderHandler(service).RegisterRoutes(group)
	NewStatusHistoryHandler(service).RegisterRoutes(group)

	return router, mockOrderRepo, mockPartnerRepo
}

func createTestOrder(t *testing.T, partnerID uuid.UUID) *order.Order {
	o, err := order.NewOrder(partnerID, order.TypeSale, order.StatusDraft, time.Now())
	require.NoError(t, err)
	return o
}

func TestOrderHandler_Create(t *testing.T) {
	t.Run("creates an order with its opening history row", func(t *testing.T) {
		router, mockOrderRepo, mockPartnerRepo := setupOrderTestRouter()

		p := createTestPartner(t)
		mockPartnerRepo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
		mockOrderRepo.On("SaveWithHistory", mock.Anything, mock.AnythingOfType("*order.Order"),
			mock.MatchedBy(func(h *order.StatusHistory) bool {
				return h.IsInitial() && h.ToStatus == order.StatusDraft
			})).Return(nil)

		body, _ := json.Marshal(map[string]any{
			"partner_id": p.ID.String(),
			"order_type": "sale",
			"amount":     "1500.5",
		})
		req, _ := http.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "sale", response["order_type"])
		assert.Equal(t, "draft", response["status"])
		assert.Equal(t, "1500.5", response["amount"])

		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("nonexistent partner returns 422", func(t *testing.T) {
		router, mockOrderRepo, mockPartnerRepo := setupOrderTestRouter()

		partnerID := uuid.New()
		mockPartnerRepo.On("FindByID", mock.Anything, partnerID).Return(nil, shared.ErrNotFound)

		body, _ := json.Marshal(map[string]any{
			"partner_id": partnerID.String(),
			"order_type": "sale",
		})
		req, _ := http.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string][]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response["errors"], "Partner must exist")

		mockOrderRepo.AssertNotCalled(t, "SaveWithHistory")
	})

	t.Run("negative amount returns 422", func(t *testing.T) {
		router, mockOrderRepo, mockPartnerRepo := setupOrderTestRouter()

		p := createTestPartner(t)
		mockPartnerRepo.On("FindByID", mock.Anything, p.ID).Return(p, nil)

		body, _ := json.Marshal(map[string]any{
			"partner_id": p.ID.String(),
			"order_type": "sale",
			"amount":     "-10",
		})
		req, _ := http.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockOrderRepo.AssertNotCalled(t, "SaveWithHistory")
	})
}

func TestOrderHandler_GetByID(t *testing.T) {
	t.Run("embeds partner and status histories", func(t *testing.T) {
		router, mockOrderRepo, _ := setupOrderTestRouter()

		p := createTestPartner(t)
		o := createTestOrder(t, p.ID)
		o.Partner = p
		o.Histories = []order.StatusHistory{*order.NewInitialHistory(o)}

		mockOrderRepo.On("FindByIDWithDetails", mock.Anything, o.ID).Return(o, nil)

		req, _ := http.NewRequest(http.MethodGet, "/orders/"+o.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotNil(t, response["partner"])
		histories, ok := response["status_histories"].([]any)
		require.True(t, ok)
		assert.Len(t, histories, 1)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		router, mockOrderRepo, _ := setupOrderTestRouter()

		orderID := uuid.New()
		mockOrderRepo.On("FindByIDWithDetails", mock.Anything, orderID).Return(nil, shared.ErrNotFound)

		req, _ := http.NewRequest(http.MethodGet, "/orders/"+orderID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOrderHandler_List(t *testing.T) {
	t.Run("type and status filters are passed through", func(t *testing.T) {
		router, mockOrderRepo, _ := setupOrderTestRouter()

		mockOrderRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["order_type"] == "purchase" && f.Filters["status"] == "pending"
		})).Return([]order.Order{}, nil)
		mockOrderRepo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(0), nil)

		req, _ := http.NewRequest(http.MethodGet, "/orders?type=purchase&status=pending", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockOrderRepo.AssertExpectations(t)
	})
}

func TestOrderHandler_Update(t *testing.T) {
	t.Run("status change writes a history row with the save", func(t *testing.T) {
		router, mockOrderRepo, _ := setupOrderTestRouter()

		o := createTestOrder(t, uuid.New())
		mockOrderRepo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
		mockOrderRepo.On("SaveWithHistory", mock.Anything, mock.AnythingOfType("*order.Order"),
			mock.MatchedBy(func(h *order.StatusHistory) bool {
				return h.FromStatus != nil && *h.FromStatus == order.StatusDraft &&
					h.ToStatus == order.StatusPending
			})).Return(nil)

		body, _ := json.Marshal(map[string]any{"status": "pending"})
		req, _ := http.NewRequest(http.MethodPut, "/orders/"+o.ID.String(), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "pending", response["status"])

		mockOrderRepo.AssertExpectations(t)
		mockOrderRepo.AssertNotCalled(t, "Save")
	})

	t.Run("illegal transition returns 422", func(t *testing.T) {
		router, mockOrderRepo, _ := setupOrderTestRouter()

		o := createTestOrder(t, uuid.New())
		mockOrderRepo.On("FindByID", mock.Anything, o.ID).Return(o, nil)

		body, _ := json.Marshal(map[string]any{"status": "completed"})
		req, _ := http.NewRequest(http.MethodPut, "/orders/"+o.ID.String(), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		mockOrderRepo.AssertNotCalled(t, "SaveWithHistory")
		mockOrderRepo.AssertNotCalled(t, "Save")
	})

	t.Run("plain field update saves without history", func(t *testing.T) {
		router, mockOrderRepo, _ := setupOrderTestRouter()

		o := createTestOrder(t, uuid.New())
		mockOrderRepo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
		mockOrderRepo.On("Save", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil)

		body, _ := json.Marshal(map[string]any{"notes": "Deliver to the warehouse entrance"})
		req, _ := http.NewRequest(http.MethodPut, "/orders/"+o.ID.String(), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockOrderRepo.AssertNotCalled(t, "SaveWithHistory")
	})
}

func TestOrderHandler_Delete(t *testing.T) {
	router, mockOrderRepo, _ := setupOrderTestRouter()

	o := createTestOrder(t, uuid.New())
	mockOrderRepo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
	mockOrderRepo.On("Delete", mock.Anything, o.ID).Return(nil)

	req, _ := http.NewRequest(http.MethodDelete, "/orders/"+o.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	mockOrderRepo.AssertExpectations(t)
}

func TestOrderHandler_ListHistories(t *testing.T) {
	router, mockOrderRepo, _ := setupOrderTestRouter()

	o := createTestOrder(t, uuid.New())
	histories := []order.StatusHistory{*order.NewInitialHistory(o)}

	mockOrderRepo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
	mockOrderRepo.On("FindHistories", mock.Anything, o.ID).Return(histories, nil)

	req, _ := http.NewRequest(http.MethodGet, "/orders/"+o.ID.String()+"/status_histories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 1)
	assert.Equal(t, "draft", response[0]["to_status"])
}

func TestStatusHistoryHandler_Create(t *testing.T) {
	t.Run("moves the order alongside the history row", func(t *testing.T) {
		router, mockOrderRepo, _ := setupOrderTestRouter()

		o := createTestOrder(t, uuid.New())
		mockOrderRepo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
		mockOrderRepo.On("SaveWithHistory", mock.Anything,
			mock.MatchedBy(func(saved *order.Order) bool {
				return saved.Status == order.StatusPending
			}),
			mock.MatchedBy(func(h *order.StatusHistory) bool {
				return h.FromStatus != nil && *h.FromStatus == order.StatusDraft &&
					h.ToStatus == order.StatusPending && h.CreatedBy == "yamada"
			})).Return(nil)

		body, _ := json.Marshal(map[string]any{
			"order_id":   o.ID.String(),
			"to_status":  "pending",
			"comment":    "Confirmed by phone",
			"created_by": "yamada",
		})
		req, _ := http.NewRequest(http.MethodPost, "/status_histories", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "pending", response["to_status"])
		assert.Equal(t, "draft", response["from_status"])
		assert.Equal(t, "yamada", response["created_by"])

		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("recording the current status inserts without moving", func(t *testing.T) {
		router, mockOrderRepo, _ := setupOrderTestRouter()

		o := createTestOrder(t, uuid.New())
		mockOrderRepo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
		mockOrderRepo.On("SaveWithHistory", mock.Anything,
			mock.MatchedBy(func(saved *order.Order) bool {
				return saved.Status == order.StatusDraft
			}),
			mock.AnythingOfType("*order.StatusHistory")).Return(nil)

		body, _ := json.Marshal(map[string]any{
			"order_id":  o.ID.String(),
			"to_status": "draft",
		})
		req, _ := http.NewRequest(http.MethodPost, "/status_histories", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("unknown order returns 422", func(t *testing.T) {
		router, mockOrderRepo, _ := setupOrderTestRouter()

		orderID := uuid.New()
		mockOrderRepo.On("FindByID", mock.Anything, orderID).Return(nil, shared.ErrNotFound)

		body, _ := json.Marshal(map[string]any{
			"order_id":  orderID.String(),
			"to_status": "pending",
		})
		req, _ := http.NewRequest(http.MethodPost, "/status_histories", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string][]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response["errors"], "Order must exist")
	})

	t.Run("illegal transition returns 422", func(t *testing.T) {
		router, mockOrderRepo, _ := setupOrderTestRouter()

		o := createTestOrder(t, uuid.New())
		mockOrderRepo.On("FindByID", mock.Anything, o.ID).Return(o, nil)

		body, _ := json.Marshal(map[string]any{
			"order_id":  o.ID.String(),
			"to_status": "completed",
		})
		req, _ := http.NewRequest(http.MethodPost, "/status_histories", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockOrderRepo.AssertNotCalled(t, "SaveWithHistory")
	})
}
