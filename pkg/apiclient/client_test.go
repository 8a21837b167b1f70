package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetPartner(t *testing.T) {
	t.Run("decodes the resource", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/partners/p1", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":           "p1",
				"name":         "Yamada Trading",
				"partner_type": "customer",
			})
		}))
		defer server.Close()

		client := NewClient(server.URL + "/api/v1")
		partner, err := client.GetPartner(context.Background(), "p1")

		require.NoError(t, err)
		assert.Equal(t, "Yamada Trading", partner.Name)
		assert.Equal(t, "customer", partner.Type)
	})

	t.Run("404 becomes NotFoundError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": "Partner not found"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL + "/api/v1")
		partner, err := client.GetPartner(context.Background(), "missing")

		assert.Nil(t, partner)
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "Partner not found", notFound.Message)
	})
}

func TestClient_CreateOrder(t *testing.T) {
	t.Run("sends wire keys and decodes 201", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/orders", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "sale", body["order_type"])
			assert.Equal(t, "p1", body["partner_id"])

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":         "o1",
				"partner_id": "p1",
				"order_type": "sale",
				"status":     "draft",
			})
		}))
		defer server.Close()

		client := NewClient(server.URL + "/api/v1")
		order, err := client.CreateOrder(context.Background(), CreateOrderParams{
			PartnerID: "p1",
			Type:      "sale",
		})

		require.NoError(t, err)
		assert.Equal(t, "o1", order.ID)
		assert.Equal(t, "draft", order.Status)
	})

	t.Run("422 becomes ValidationError with all messages", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"errors": ["Partner must exist", "order_type: Must be one of: sale purchase"]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL + "/api/v1")
		order, err := client.CreateOrder(context.Background(), CreateOrderParams{})

		assert.Nil(t, order)
		var validation *ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, http.StatusUnprocessableEntity, validation.StatusCode)
		assert.Len(t, validation.Messages, 2)
		assert.Contains(t, validation.Messages, "Partner must exist")
	})
}

func TestClient_ListOrders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "purchase", r.URL.Query().Get("type"))
		assert.Equal(t, "pending", r.URL.Query().Get("status"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "o1", "order_type": "purchase", "status": "pending"},
			},
			"meta": map[string]any{"total": 1, "page": 1, "page_size": 20, "total_pages": 1},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL + "/api/v1")
	orders, meta, err := client.ListOrders(context.Background(), OrderListOptions{
		Type:   "purchase",
		Status: "pending",
	})

	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, int64(1), meta.Total)
}

func TestClient_DeletePartner(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL + "/api/v1")
	assert.NoError(t, client.DeletePartner(context.Background(), "p1"))
}

func TestClient_ErrorsDoNotMask(t *testing.T) {
	// One failing resource call must not affect the error of another.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/partners":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error": "An unexpected error occurred"}`))
		case "/api/v1/users":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{{"id": "u1", "email": "taro@example.com"}},
				"meta": map[string]any{"total": 1, "page": 1, "page_size": 20, "total_pages": 1},
			})
		}
	}))
	defer server.Close()

	client := NewClient(server.URL + "/api/v1")

	_, _, partnersErr := client.ListPartners(context.Background(), PartnerListOptions{})
	users, _, usersErr := client.ListUsers(context.Background(), UserListOptions{})

	var apiErr *APIError
	require.ErrorAs(t, partnersErr, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)

	require.NoError(t, usersErr)
	assert.Len(t, users, 1)
}
