package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// NotFoundError is returned when the API answers 404
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ValidationError is returned when the API rejects a request with 422
// (or a malformed-body 400); Messages holds one entry per failed check
type ValidationError struct {
	StatusCode int
	Messages   []string
}

func (e *ValidationError) Error() string {
	return "request rejected: " + strings.Join(e.Messages, "; ")
}

// APIError is returned for any other non-2xx response
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Client is a typed HTTP client for the REST API. Every call returns
// its own error; a failure in one resource fetch never masks another.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption is a functional option for Client configuration
type ClientOption func(*Client)

// WithHTTPClient sets a custom http.Client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Client for the API at baseURL, e.g.
// "http://localhost:8080/api/v1"
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// listEnvelope mirrors the paginated index response
type listEnvelope[T any] struct {
	Data []T      `json:"data"`
	Meta ListMeta `json:"meta"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp.StatusCode, payload)
	}

	if out != nil && len(payload) > 0 {
		return json.Unmarshal(payload, out)
	}
	return nil
}

// decodeAPIError maps the API's error shapes onto typed errors
func decodeAPIError(statusCode int, payload []byte) error {
	var multi struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(payload, &multi); err == nil && len(multi.Errors) > 0 {
		return &ValidationError{StatusCode: statusCode, Messages: multi.Errors}
	}

	var single struct {
		Error string `json:"error"`
	}
	message := http.StatusText(statusCode)
	if err := json.Unmarshal(payload, &single); err == nil && single.Error != "" {
		message = single.Error
	}

	if statusCode == http.StatusNotFound {
		return &NotFoundError{Message: message}
	}
	return &APIError{StatusCode: statusCode, Message: message}
}

func listQuery(page, pageSize int, extra map[string]string) string {
	values := url.Values{}
	for key, value := range extra {
		if value != "" {
			values.Set(key, value)
		}
	}
	if page > 0 {
		values.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		values.Set("page_size", strconv.Itoa(pageSize))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// ListPartners fetches partners, optionally filtered by type
func (c *Client) ListPartners(ctx context.Context, opts PartnerListOptions) ([]Partner, ListMeta, error) {
	query := listQuery(opts.Page, opts.PageSize, map[string]string{
		"type":   opts.Type,
		"search": opts.Search,
	})

	var envelope listEnvelope[Partner]
	if err := c.do(ctx, http.MethodGet, "/partners"+query, nil, &envelope); err != nil {
		return nil, ListMeta{}, err
	}
	return envelope.Data, envelope.Meta, nil
}

// GetPartner fetches one partner by id
func (c *Client) GetPartner(ctx context.Context, id string) (*Partner, error) {
	var partner Partner
	if err := c.do(ctx, http.MethodGet, "/partners/"+id, nil, &partner); err != nil {
		return nil, err
	}
	return &partner, nil
}

// CreatePartner creates a partner
func (c *Client) CreatePartner(ctx context.Context, params CreatePartnerParams) (*Partner, error) {
	var partner Partner
	if err := c.do(ctx, http.MethodPost, "/partners", params, &partner); err != nil {
		return nil, err
	}
	return &partner, nil
}

// UpdatePartner partially updates a partner
func (c *Client) UpdatePartner(ctx context.Context, id string, params UpdatePartnerParams) (*Partner, error) {
	var partner Partner
	if err := c.do(ctx, http.MethodPut, "/partners/"+id, params, &partner); err != nil {
		return nil, err
	}
	return &partner, nil
}

// DeletePartner deletes a partner together with its orders
func (c *Client) DeletePartner(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/partners/"+id, nil, nil)
}

// ListOrders fetches orders, optionally filtered by type and status
func (c *Client) ListOrders(ctx context.Context, opts OrderListOptions) ([]Order, ListMeta, error) {
	query := listQuery(opts.Page, opts.PageSize, map[string]string{
		"type":       opts.Type,
		"status":     opts.Status,
		"partner_id": opts.PartnerID,
		"search":     opts.Search,
	})

	var envelope listEnvelope[Order]
	if err := c.do(ctx, http.MethodGet, "/orders"+query, nil, &envelope); err != nil {
		return nil, ListMeta{}, err
	}
	return envelope.Data, envelope.Meta, nil
}

// GetOrder fetches one order with its partner and status histories
func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+id, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder creates an order
func (c *Client) CreateOrder(ctx context.Context, params CreateOrderParams) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/orders", params, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrder partially updates an order
func (c *Client) UpdateOrder(ctx context.Context, id string, params UpdateOrderParams) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPut, "/orders/"+id, params, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteOrder deletes an order together with its status histories
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/orders/"+id, nil, nil)
}

// ListOrderHistories fetches an order's status histories newest-first
func (c *Client) ListOrderHistories(ctx context.Context, orderID string) ([]StatusHistory, error) {
	var histories []StatusHistory
	if err := c.do(ctx, http.MethodGet, "/orders/"+orderID+"/status_histories", nil, &histories); err != nil {
		return nil, err
	}
	return histories, nil
}

// CreateStatusHistory records a status transition; the order follows
// the recorded to_status
func (c *Client) CreateStatusHistory(ctx context.Context, params CreateStatusHistoryParams) (*StatusHistory, error) {
	var history StatusHistory
	if err := c.do(ctx, http.MethodPost, "/status_histories", params, &history); err != nil {
		return nil, err
	}
	return &history, nil
}

// ListUsers fetches users, optionally filtered by role
func (c *Client) ListUsers(ctx context.Context, opts UserListOptions) ([]User, ListMeta, error) {
	query := listQuery(opts.Page, opts.PageSize, map[string]string{
		"role":   opts.Role,
		"search": opts.Search,
	})

	var envelope listEnvelope[User]
	if err := c.do(ctx, http.MethodGet, "/users"+query, nil, &envelope); err != nil {
		return nil, ListMeta{}, err
	}
	return envelope.Data, envelope.Meta, nil
}

// GetUser fetches one user by id
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a user
func (c *Client) CreateUser(ctx context.Context, params CreateUserParams) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/users", params, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser partially updates a user
func (c *Client) UpdateUser(ctx context.Context, id string, params UpdateUserParams) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPut, "/users/"+id, params, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetHealth fetches the service health
func (c *Client) GetHealth(ctx context.Context) (*Health, error) {
	var health Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}
