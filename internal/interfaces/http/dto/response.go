package dto

// ErrorResponse is the body of a single-message error, e.g. a 404
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an ErrorResponse
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// ValidationErrorResponse is the body of a 422 (or a malformed-body 400).
// Errors holds one human-readable message per failed check.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// NewValidationErrorResponse creates a ValidationErrorResponse
func NewValidationErrorResponse(messages ...string) ValidationErrorResponse {
	return ValidationErrorResponse{Errors: messages}
}

// ListMeta holds pagination metadata for list responses
type ListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// ListResponse is the envelope for paginated index endpoints
type ListResponse struct {
	Data any      `json:"data"`
	Meta ListMeta `json:"meta"`
}

// NewListResponse creates a ListResponse with computed total pages
func NewListResponse(data any, total int64, page, pageSize int) ListResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}

	return ListResponse{
		Data: data,
		Meta: ListMeta{
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		},
	}
}
